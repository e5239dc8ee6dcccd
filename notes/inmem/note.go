package inmem

import (
	"sync"
	"time"

	"github.com/perillat/noteshare/notes"
)

type NoteRepository struct {
	mu         sync.Mutex
	notes      []notes.Note
	grants     []notes.ShareGrant
	maxNoteID  int
	maxGrantID int
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		notes:  make([]notes.Note, 0),
		grants: make([]notes.ShareGrant, 0),
	}
}

func (r *NoteRepository) Get(id int) (*notes.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.get(id), nil
}

func (r *NoteRepository) Insert(note *notes.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.maxNoteID++
	note.ID = r.maxNoteID
	note.CreatedAt = time.Now()

	r.notes = append(r.notes, *note)
	return nil
}

func (r *NoteRepository) ListByOwner(ownerID int) ([]*notes.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := make([]*notes.Note, 0)
	for i := range r.notes {
		if r.notes[i].OwnerID == ownerID {
			n := r.notes[i]
			owned = append(owned, &n)
		}
	}
	return owned, nil
}

func (r *NoteRepository) InsertGrant(grant *notes.ShareGrant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.maxGrantID++
	grant.ID = r.maxGrantID
	grant.CreatedAt = time.Now()

	r.grants = append(r.grants, *grant)
	return nil
}

func (r *NoteRepository) GetGrant(noteID, granteeID int) (*notes.ShareGrant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.grants {
		if r.grants[i].NoteID == noteID && r.grants[i].GranteeID == granteeID {
			g := r.grants[i]
			return &g, nil
		}
	}
	return nil, nil
}

func (r *NoteRepository) ListGrantedTo(granteeID int) ([]*notes.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	shared := make([]*notes.Note, 0)
	for i := range r.grants {
		if r.grants[i].GranteeID != granteeID {
			continue
		}
		if note := r.get(r.grants[i].NoteID); note != nil {
			shared = append(shared, note)
		}
	}
	return shared, nil
}

func (r *NoteRepository) get(id int) *notes.Note {
	for i := range r.notes {
		if r.notes[i].ID == id {
			n := r.notes[i]
			return &n
		}
	}
	return nil
}
