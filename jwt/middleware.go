package jwt

import (
	"context"
	"net/http"
	"strings"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/perillat/noteshare/errors"
)

// CookieName is the cookie the token is written to on login and read
// from on authenticated requests.
const CookieName = "auth"

// TokenToContext extracts the token from the auth cookie, falling
// back to a bearer Authorization header, and stores it in the context
// for the parsing middleware.
func TokenToContext() kithttp.RequestFunc {
	return func(ctx context.Context, r *http.Request) context.Context {
		if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
			return context.WithValue(ctx, kitjwt.JWTContextKey, cookie.Value)
		}

		bearer := r.Header.Get("Authorization")
		if len(bearer) > 7 && strings.EqualFold(bearer[:7], "bearer ") {
			return context.WithValue(ctx, kitjwt.JWTContextKey, bearer[7:])
		}

		return ctx
	}
}

// Middleware parses and verifies the token found in the context and
// makes the claims available to the wrapped endpoint. Verification is
// stateless: the user is not looked up again.
func Middleware(key []byte) endpoint.Middleware {
	decoder := NewEncodeDecoder(key, 0)

	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (interface{}, error) {
			bearer, ok := ctx.Value(kitjwt.JWTContextKey).(string)
			if !ok || bearer == "" {
				return nil, errors.New("no token found", errors.Unauthorized())
			}

			claims, err := decoder.Decode(bearer)
			if err != nil {
				return nil, errors.New("invalid token", errors.Unauthorized(), errors.WithCause(err))
			}

			return next(context.WithValue(ctx, kitjwt.JWTClaimsContextKey, claims), request)
		}
	}
}

// ClaimsFromContext retrieves the claims stored by Middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, error) {
	v := ctx.Value(kitjwt.JWTClaimsContextKey)
	if v == nil {
		return nil, errors.New("no user", errors.Unauthorized())
	}

	claims, ok := v.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims", errors.Unauthorized())
	}

	return claims, nil
}
