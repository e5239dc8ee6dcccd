package notes

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/perillat/noteshare/errors"
	"github.com/perillat/noteshare/jwt"
	"github.com/perillat/noteshare/web"
)

type Server interface {
	RegisterHandler(path, method string, f http.Handler)
}

// RegisterHTTPRoutes mounts the note routes. All of them sit behind
// the token middleware; the token is read from the auth cookie or a
// bearer header.
func RegisterHTTPRoutes(srv Server, service *Service, jwtKey []byte) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(jwt.TokenToContext()),
	}

	authenticationMiddleware := jwt.Middleware(jwtKey)

	ep := NewEndpoint(service)

	createNoteHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Create),
		decodeCreateNoteRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	getNoteHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Get),
		decodeGetNoteRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	shareNoteHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Share),
		decodeShareNoteRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	listNotesHandler := kithttp.NewServer(
		authenticationMiddleware(ep.List),
		decodeListNotesRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/create-notes", "POST", createNoteHandler)
	srv.RegisterHandler("/note/:id", "GET", getNoteHandler)
	srv.RegisterHandler("/note/:id", "POST", shareNoteHandler)
	srv.RegisterHandler("/notes", "GET", listNotesHandler)
}

func decodeCreateNoteRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var body struct {
		Title string `json:"title"`
		Body  string `json:"body"`
		Type  string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return createNoteRequest{
		Title: body.Title,
		Body:  body.Body,
		Type:  body.Type,
	}, nil
}

func decodeGetNoteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	noteID, err := noteIDParam(ctx)
	if err != nil {
		return nil, err
	}

	return getNoteRequest{NoteID: noteID}, nil
}

func decodeShareNoteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	noteID, err := noteIDParam(ctx)
	if err != nil {
		return nil, err
	}

	var body struct {
		SharedUser string `json:"sharedUser"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	return shareNoteRequest{
		NoteID:     noteID,
		SharedUser: body.SharedUser,
	}, nil
}

func decodeListNotesRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return nil, nil
}

func noteIDParam(ctx context.Context) (int, error) {
	params, ok := web.ParamsFromContext(ctx)
	if !ok {
		return 0, errors.New("no route params", errors.Unauthorized())
	}

	noteID, err := strconv.Atoi(params["id"])
	if err != nil {
		return 0, errors.New("invalid note id", errors.Unauthorized(), errors.WithCause(err))
	}

	return noteID, nil
}

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
