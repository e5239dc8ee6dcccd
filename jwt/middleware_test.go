package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perillat/noteshare/errors"
)

func TestMiddleware(t *testing.T) {
	key := []byte("test key")
	token, err := NewEncodeDecoder(key, 0).Encode(42, "pizza")
	require.NoError(t, err, "encoding should not fail")

	passthrough := func(ctx context.Context, req interface{}) (interface{}, error) {
		return ClaimsFromContext(ctx)
	}
	ep := Middleware(key)(passthrough)

	var tts = []struct {
		name  string
		token string
		code  int
	}{
		{
			name: "no token in context",
			code: 401,
		},
		{
			name:  "garbage token",
			token: "not.a.token",
			code:  401,
		},
		{
			name:  "valid token",
			token: token,
			code:  200,
		},
	}

	for _, tt := range tts {
		ctx := context.Background()
		if tt.token != "" {
			ctx = context.WithValue(ctx, kitjwt.JWTContextKey, tt.token)
		}

		res, err := ep(ctx, nil)
		if tt.code != 200 {
			require.Error(t, err, tt.name)
			errors.AssertCode(t, err, tt.code)
			continue
		}

		require.NoError(t, err, tt.name)
		claims, ok := res.(*Claims)
		require.True(t, ok, "%s - endpoint should receive claims", tt.name)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "pizza", claims.Username)
	}
}

func TestMiddleware_ForwardsRequest(t *testing.T) {
	key := []byte("test key")
	token, err := NewEncodeDecoder(key, 0).Encode(42, "pizza")
	require.NoError(t, err, "encoding should not fail")

	echo := func(ctx context.Context, req interface{}) (interface{}, error) {
		return req, nil
	}
	ep := Middleware(key)(echo)

	ctx := context.WithValue(context.Background(), kitjwt.JWTContextKey, token)
	res, err := ep(ctx, "payload")
	require.NoError(t, err, "the endpoint should not fail")
	assert.Equal(t, "payload", res, "the request should reach the wrapped endpoint unchanged")
}

func TestTokenToContext(t *testing.T) {
	before := TokenToContext()

	var tts = []struct {
		name   string
		cookie string
		header string
		token  string
	}{
		{
			name: "nothing set",
		},
		{
			name:   "cookie",
			cookie: "cookie-token",
			token:  "cookie-token",
		},
		{
			name:   "bearer header",
			header: "Bearer header-token",
			token:  "header-token",
		},
		{
			name:   "cookie wins over header",
			cookie: "cookie-token",
			header: "Bearer header-token",
			token:  "cookie-token",
		},
		{
			name:   "not a bearer",
			header: "Basic dXNlcjpwdw==",
		},
	}

	for _, tt := range tts {
		req := httptest.NewRequest("GET", "/notes", nil)
		if tt.cookie != "" {
			req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
		}
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}

		ctx := before(context.Background(), req)
		token, _ := ctx.Value(kitjwt.JWTContextKey).(string)
		assert.Equal(t, tt.token, token, tt.name)
	}
}
