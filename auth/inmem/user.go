package inmem

import (
	"sync"
	"time"

	"github.com/perillat/noteshare/auth"
)

type UserRepository struct {
	mu    sync.Mutex
	users []auth.User
	maxID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make([]auth.User, 0),
	}
}

func (r *UserRepository) Get(id int) (*auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			u := user
			return &u, nil
		}
	}

	return nil, nil
}

func (r *UserRepository) GetByUsername(username string) (*auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}

	return nil, nil
}

func (r *UserRepository) Insert(user *auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return auth.ErrUsernameTaken
		}
	}

	r.maxID++
	user.ID = r.maxID
	user.CreatedAt = time.Now()

	r.users = append(r.users, *user)
	return nil
}

func (r *UserRepository) List() ([]*auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*auth.User, len(r.users))
	for i := range r.users {
		u := r.users[i]
		users[i] = &u
	}
	return users, nil
}
