package notes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/perillat/noteshare/errors"
	"github.com/perillat/noteshare/jwt"
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

// identity is the caller as established by the access guard.
type identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type createNoteRequest struct {
	Title string
	Body  string
	Type  string
}

type createNoteResponse struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
	Data    *Note  `json:"data"`
}

func (ep Endpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(createNoteRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	note, err := ep.service.Create(claims.UserID, req.Title, req.Body, req.Type)
	if err != nil {
		return nil, err
	}

	return createNoteResponse{
		Error:   0,
		Message: "Note saved Successfully",
		Data:    note,
	}, nil
}

type getNoteRequest struct {
	NoteID int
}

type getNoteResponse struct {
	Note *Note    `json:"note"`
	User identity `json:"user"`
}

func (ep Endpoint) Get(ctx context.Context, r interface{}) (interface{}, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(getNoteRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	note, err := ep.service.Get(req.NoteID)
	if err != nil {
		return nil, errors.New("could not get note", errors.WithCode(http.StatusUnauthorized), errors.WithCause(err))
	}

	return getNoteResponse{
		Note: note,
		User: identity{ID: claims.UserID, Username: claims.Username},
	}, nil
}

type shareNoteRequest struct {
	NoteID     int
	SharedUser string
}

type shareNoteResponse struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func (ep Endpoint) Share(ctx context.Context, r interface{}) (interface{}, error) {
	if _, err := jwt.ClaimsFromContext(ctx); err != nil {
		return nil, err
	}

	req, ok := r.(shareNoteRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if _, err := ep.service.Share(req.NoteID, req.SharedUser); err != nil {
		if errors.KindOf(err) == errors.KindNotFound {
			return shareNoteResponse{Error: 1, Message: "User not found"}, nil
		}
		return nil, errors.New("could not share note", errors.WithCode(http.StatusUnauthorized), errors.WithCause(err))
	}

	return shareNoteResponse{
		Error:   0,
		Message: fmt.Sprintf("Shared to %s successfully", req.SharedUser),
	}, nil
}

type sharedNotes struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	Notes     []*Note   `json:"notes"`
}

type listNotesResponse struct {
	Data        []*Note      `json:"data"`
	User        identity     `json:"user"`
	SharedNotes *sharedNotes `json:"sharedNotes"`
}

func (ep Endpoint) List(ctx context.Context, _ interface{}) (interface{}, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	owned, err := ep.service.ListOwnedBy(claims.UserID)
	if err != nil {
		return nil, errors.New("could not list notes", errors.WithCode(http.StatusUnauthorized), errors.WithCause(err))
	}

	user, shared, err := ep.service.SharedWith(claims.UserID)
	if err != nil {
		return nil, errors.New("could not list shared notes", errors.WithCode(http.StatusUnauthorized), errors.WithCause(err))
	}

	return listNotesResponse{
		Data: owned,
		User: identity{ID: claims.UserID, Username: claims.Username},
		SharedNotes: &sharedNotes{
			ID:        user.ID,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
			Notes:     shared,
		},
	}, nil
}
