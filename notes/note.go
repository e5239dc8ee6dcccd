package notes

import (
	"time"
)

// Note has exactly one owner, fixed at creation. Title, body and type
// are free-form and may be empty.
type Note struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Type      string    `json:"type"`
	OwnerID   int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShareGrant authorizes a user to view a note they do not own.
type ShareGrant struct {
	ID        int       `json:"id"`
	NoteID    int       `json:"noteId"`
	GranteeID int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repository interface {
	// Get returns nil when no note has the given id.
	Get(id int) (*Note, error)

	// Insert assigns the id and creation time of the note.
	Insert(*Note) error

	// ListByOwner returns the notes owned by a user, in no particular
	// order.
	ListByOwner(ownerID int) ([]*Note, error)

	// InsertGrant assigns the id and creation time of the grant.
	InsertGrant(*ShareGrant) error

	// GetGrant returns nil when the note has not been shared with the
	// user.
	GetGrant(noteID, granteeID int) (*ShareGrant, error)

	// ListGrantedTo returns the notes shared with a user.
	ListGrantedTo(granteeID int) ([]*Note, error)
}
