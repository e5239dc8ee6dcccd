package auth

import (
	"fmt"

	"github.com/perillat/noteshare/errors"
	"github.com/perillat/noteshare/jwt"
)

type Service struct {
	repository UserRepository
	encoder    *jwt.EncodeDecoder
	cost       int
}

func NewService(repo UserRepository, encoder *jwt.EncodeDecoder, cost int) *Service {
	return &Service{
		repository: repo,
		encoder:    encoder,
		cost:       cost,
	}
}

// SignUp validates the credentials before hashing: empty fields and
// duplicate usernames are reported as validation errors. Username
// uniqueness is left to the repository, which enforces it atomically
// on insert.
func (s *Service) SignUp(username, password string) (*User, error) {
	if username == "" {
		return nil, errors.New("Username can't be empty", errors.BadRequest())
	}
	if password == "" {
		return nil, errors.New("Password can't be empty", errors.BadRequest())
	}

	hash, err := HashPassword(password, s.cost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.repository.Insert(user); err != nil {
		return nil, err
	}

	return user, nil
}

// LogIn verifies the credentials and mints a token. The two failure
// messages are part of the wire contract.
func (s *Service) LogIn(username, password string) (string, *User, error) {
	user, err := s.repository.GetByUsername(username)
	if err != nil {
		return "", nil, err
	} else if user == nil {
		return "", nil, errors.New("Invalid Username", errors.NotFound())
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", nil, errors.New("Invalid Password", errors.Unauthorized())
	}

	token, err := s.encoder.Encode(user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *Service) Get(id int) (*User, error) {
	user, err := s.repository.Get(id)
	if err != nil {
		return nil, err
	} else if user == nil {
		return nil, errors.New(fmt.Sprintf("<User %d> not found", id), errors.NotFound())
	}

	return user, nil
}

func (s *Service) List() ([]*User, error) {
	return s.repository.List()
}
