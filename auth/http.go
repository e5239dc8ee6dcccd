package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/perillat/noteshare/errors"
	"github.com/perillat/noteshare/jwt"
)

type Server interface {
	RegisterHandler(path, method string, f http.Handler)
}

// RegisterHTTPRoutes mounts the two public routes: login on the root
// path and signup. Neither requires a token.
func RegisterHTTPRoutes(srv Server, service *Service) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	ep := NewEndpoint(service)

	loginHandler := kithttp.NewServer(
		ep.LogIn,
		decodeLoginRequest,
		encodeLoginResponse,
		opts...,
	)

	signUpHandler := kithttp.NewServer(
		ep.SignUp,
		decodeSignUpRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/", "POST", loginHandler)
	srv.RegisterHandler("/signup", "POST", signUpHandler)
}

func decodeLoginRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return loginRequest{
		Username: body.Username,
		Password: body.Password,
	}, nil
}

func decodeSignUpRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return signUpRequest{
		Username: body.Username,
		Password: body.Password,
	}, nil
}

func encodeLoginResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	resp, ok := response.(loginResponse)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return nil
	}

	// Bad credentials are reported as a plain-text message, not JSON.
	if resp.Invalid != "" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err := io.WriteString(w, resp.Invalid)
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:  jwt.CookieName,
		Value: resp.Token,
		Path:  "/",
	})

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   0,
		"message": resp.Message,
	})
}

// encodeError maps the error code to the HTTP status. Unexpected
// errors are a bare status so internals do not leak to the caller.
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	statusCode := errors.DefaultCode
	if err, ok := err.(errors.Error); ok {
		statusCode = err.Code()
	}

	if errors.KindOf(err) == errors.KindUnexpected {
		w.WriteHeader(statusCode)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": err.Error(),
	})
}
