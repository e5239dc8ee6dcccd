package bolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/perillat/noteshare/notes"
)

var (
	noteBucket  = []byte("notes")
	shareBucket = []byte("shares")
)

type NoteRepository struct {
	driver *Driver
}

func NewNoteRepository(driver *Driver) (*NoteRepository, error) {
	err := driver.store.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(noteBucket); err != nil {
			return fmt.Errorf("error creating notes bucket: %v", err)
		}
		if _, err := tx.CreateBucketIfNotExists(shareBucket); err != nil {
			return fmt.Errorf("error creating shares bucket: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &NoteRepository{
		driver: driver,
	}, nil
}

func (r *NoteRepository) Get(id int) (*notes.Note, error) {
	var note *notes.Note
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		note = &notes.Note{}
		return json.Unmarshal(data, note)
	})
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (r *NoteRepository) Insert(note *notes.Note) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		id, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("error incrementing id: %v", err)
		}
		note.ID = int(id)
		note.CreatedAt = time.Now()

		data, err := json.Marshal(note)
		if err != nil {
			return err
		}

		return bucket.Put(itob(note.ID), data)
	})
}

func (r *NoteRepository) ListByOwner(ownerID int) ([]*notes.Note, error) {
	owned := make([]*notes.Note, 0)

	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var note notes.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}

			if note.OwnerID == ownerID {
				owned = append(owned, &note)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return owned, nil
}

func (r *NoteRepository) InsertGrant(grant *notes.ShareGrant) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(shareBucket)

		id, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("error incrementing id: %v", err)
		}
		grant.ID = int(id)
		grant.CreatedAt = time.Now()

		data, err := json.Marshal(grant)
		if err != nil {
			return err
		}

		return bucket.Put(itob(grant.ID), data)
	})
}

func (r *NoteRepository) GetGrant(noteID, granteeID int) (*notes.ShareGrant, error) {
	var grant *notes.ShareGrant
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(shareBucket)
		c := bucket.Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var g notes.ShareGrant
			if err := json.Unmarshal(data, &g); err != nil {
				return err
			}

			if g.NoteID == noteID && g.GranteeID == granteeID {
				grant = &g
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return grant, nil
}

func (r *NoteRepository) ListGrantedTo(granteeID int) ([]*notes.Note, error) {
	shared := make([]*notes.Note, 0)

	err := r.driver.store.View(func(tx *bolt.Tx) error {
		grants := tx.Bucket(shareBucket)
		bucket := tx.Bucket(noteBucket)

		c := grants.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var grant notes.ShareGrant
			if err := json.Unmarshal(data, &grant); err != nil {
				return err
			}

			if grant.GranteeID != granteeID {
				continue
			}

			// Skip grants whose note is missing.
			noteData := bucket.Get(itob(grant.NoteID))
			if noteData == nil {
				continue
			}

			var note notes.Note
			if err := json.Unmarshal(noteData, &note); err != nil {
				return err
			}
			shared = append(shared, &note)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return shared, nil
}
