package notes

import (
	"github.com/perillat/noteshare/auth"
	"github.com/perillat/noteshare/errors"
)

type Service struct {
	repository Repository
	users      auth.UserRepository
}

func NewService(repo Repository, users auth.UserRepository) *Service {
	return &Service{
		repository: repo,
		users:      users,
	}
}

func (s *Service) Create(ownerID int, title, body, noteType string) (*Note, error) {
	note := &Note{
		Title:   title,
		Body:    body,
		Type:    noteType,
		OwnerID: ownerID,
	}
	if err := s.repository.Insert(note); err != nil {
		return nil, err
	}

	return note, nil
}

// Get fetches a note by id for any authenticated caller. There is no
// owner or grant check on reads.
func (s *Service) Get(id int) (*Note, error) {
	return s.repository.Get(id)
}

func (s *Service) ListOwnedBy(userID int) ([]*Note, error) {
	return s.repository.ListByOwner(userID)
}

// SharedWith returns the user together with the notes shared with
// them.
func (s *Service) SharedWith(userID int) (*auth.User, []*Note, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return nil, nil, err
	} else if user == nil {
		return nil, nil, errors.New("unknown user", errors.Unauthorized())
	}

	shared, err := s.repository.ListGrantedTo(userID)
	if err != nil {
		return nil, nil, err
	}

	return user, shared, nil
}

// Share grants the user named granteeUsername access to the note. The
// caller is not required to own the note. Sharing the same note twice
// with the same user returns the existing grant instead of inserting a
// second row.
func (s *Service) Share(noteID int, granteeUsername string) (*ShareGrant, error) {
	grantee, err := s.users.GetByUsername(granteeUsername)
	if err != nil {
		return nil, err
	} else if grantee == nil {
		return nil, errors.New("User not found", errors.NotFound())
	}

	grant, err := s.repository.GetGrant(noteID, grantee.ID)
	if err != nil {
		return nil, err
	} else if grant != nil {
		return grant, nil
	}

	grant = &ShareGrant{
		NoteID:    noteID,
		GranteeID: grantee.ID,
	}
	if err := s.repository.InsertGrant(grant); err != nil {
		return nil, err
	}

	return grant, nil
}
