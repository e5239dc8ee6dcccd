package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/perillat/noteshare/errors"
)

var errInvalidRequest = errors.New("invalid request", errors.BadRequest())

type Endpoint struct {
	service *Service
}

func NewEndpoint(s *Service) Endpoint {
	return Endpoint{
		service: s,
	}
}

type loginRequest struct {
	Username string
	Password string
}

// loginResponse drives the response encoder: Invalid is sent as a
// plain-text body, otherwise the token is attached as a cookie next
// to a JSON status payload.
type loginResponse struct {
	Token   string
	Message string
	Invalid string
}

func (ep Endpoint) LogIn(_ context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(loginRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	token, user, err := ep.service.LogIn(req.Username, req.Password)
	if err != nil {
		switch errors.KindOf(err) {
		case errors.KindNotFound, errors.KindUnauthorized:
			return loginResponse{Invalid: message(err)}, nil
		}
		return nil, errors.New("could not log in", errors.WithCode(http.StatusNotFound), errors.WithCause(err))
	}

	return loginResponse{
		Token:   token,
		Message: fmt.Sprintf("Login as %s successfully", user.Username),
	}, nil
}

type signUpRequest struct {
	Username string
	Password string
}

type signUpResponse struct {
	Error   int         `json:"error"`
	Message string      `json:"message"`
	Data    *signUpData `json:"data,omitempty"`
}

type signUpData struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ep Endpoint) SignUp(_ context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(signUpRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	user, err := ep.service.SignUp(req.Username, req.Password)
	if err != nil {
		if errors.KindOf(err) == errors.KindValidation {
			return signUpResponse{Error: 1, Message: message(err)}, nil
		}
		return nil, err
	}

	return signUpResponse{
		Error:   0,
		Message: "User created successfully",
		Data: &signUpData{
			ID:        user.ID,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func message(err error) string {
	if err, ok := err.(errors.Error); ok {
		return err.Message()
	}

	return err.Error()
}
