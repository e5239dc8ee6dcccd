package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perillat/noteshare/auth"
	"github.com/perillat/noteshare/jwt"
	"github.com/perillat/noteshare/log"
	"github.com/perillat/noteshare/web"
)

func createRouter(t *testing.T) (http.Handler, *auth.Service) {
	service, _ := createService()

	srv := web.NewServer(log.New("test"))
	auth.RegisterHTTPRoutes(srv, service)

	return srv.Handler(), service
}

func post(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	require.NoError(t, err, "could not marshal body")

	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSignUpHTTP(t *testing.T) {
	router, _ := createRouter(t)

	var tts = []struct {
		name     string
		username string
		password string
		errCode  float64
		message  string
	}{
		{
			name:     "valid signup",
			username: "alice",
			password: "pw1",
			errCode:  0,
			message:  "User created successfully",
		},
		{
			name:     "empty username",
			username: "",
			password: "pw",
			errCode:  1,
			message:  "Username can't be empty",
		},
		{
			name:     "empty password",
			username: "bob",
			password: "",
			errCode:  1,
			message:  "Password can't be empty",
		},
		{
			name:     "duplicate username",
			username: "alice",
			password: "pw2",
			errCode:  1,
			message:  "username must be unique",
		},
	}

	for _, tt := range tts {
		resp := post(t, router, "/signup", map[string]string{
			"username": tt.username,
			"password": tt.password,
		})
		require.Equal(t, 200, resp.Code, tt.name)

		var r map[string]interface{}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &r), tt.name)
		assert.Equal(t, tt.errCode, r["error"], tt.name)
		assert.Equal(t, tt.message, r["message"], tt.name)

		if tt.errCode == 0 {
			data, ok := r["data"].(map[string]interface{})
			require.True(t, ok, "%s - response should carry the user", tt.name)
			assert.Equal(t, tt.username, data["username"], tt.name)
			assert.NotZero(t, data["id"], tt.name)
			assert.NotEmpty(t, data["createdAt"], tt.name)
		}
	}
}

func TestLogInHTTP(t *testing.T) {
	router, service := createRouter(t)

	_, err := service.SignUp("alice", "pw1")
	require.NoError(t, err, "signup should not fail")

	t.Run("valid credentials", func(t *testing.T) {
		resp := post(t, router, "/", map[string]string{"username": "alice", "password": "pw1"})
		require.Equal(t, 200, resp.Code)

		var r map[string]interface{}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &r))
		assert.Equal(t, float64(0), r["error"])
		assert.Equal(t, "Login as alice successfully", r["message"])

		var token string
		for _, cookie := range resp.Result().Cookies() {
			if cookie.Name == jwt.CookieName {
				token = cookie.Value
			}
		}
		require.NotEmpty(t, token, "login should set the auth cookie")

		claims, err := jwt.NewEncodeDecoder(testKey, 0).Decode(token)
		require.NoError(t, err, "cookie should hold a verifiable token")
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("unknown username", func(t *testing.T) {
		resp := post(t, router, "/", map[string]string{"username": "bob", "password": "pw1"})
		require.Equal(t, 200, resp.Code)
		assert.Equal(t, "Invalid Username", resp.Body.String())
		assert.Empty(t, resp.Result().Cookies(), "no token should be issued")
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := post(t, router, "/", map[string]string{"username": "alice", "password": "nope"})
		require.Equal(t, 200, resp.Code)
		assert.Equal(t, "Invalid Password", resp.Body.String())
		assert.Empty(t, resp.Result().Cookies(), "no token should be issued")
	})

	t.Run("malformed payload", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte("not json")))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		assert.Equal(t, 400, resp.Code)
	})
}
