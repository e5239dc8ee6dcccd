package auth

import (
	"time"

	"github.com/perillat/noteshare/errors"
)

// ErrUsernameTaken is returned by Insert when another user already
// has the username. Uniqueness is enforced by the repository itself so
// two concurrent inserts cannot both go through.
var ErrUsernameTaken = errors.New("username must be unique", errors.BadRequest())

// User is created on signup and immutable afterwards. The password
// hash travels with the record for storage; API responses use
// dedicated payload types and never include it.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UserRepository interface {
	// Get returns nil when no user has the given id.
	Get(id int) (*User, error)

	// GetByUsername returns nil when no user has the given username.
	GetByUsername(username string) (*User, error)

	// Insert assigns the id and creation time of the user. It fails
	// with ErrUsernameTaken when the username is already used.
	Insert(*User) error

	List() ([]*User, error)
}
