package bolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/perillat/noteshare/auth"
)

var userBucket = []byte("users")

type UserRepository struct {
	driver *Driver
}

func NewUserRepository(driver *Driver) (*UserRepository, error) {
	err := driver.store.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(userBucket); err != nil {
			return fmt.Errorf("error creating users bucket: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UserRepository{
		driver: driver,
	}, nil
}

func (r *UserRepository) Get(id int) (*auth.User, error) {
	var user *auth.User
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		user = &auth.User{}
		return json.Unmarshal(data, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) GetByUsername(username string) (*auth.User, error) {
	var user *auth.User
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)
		c := bucket.Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var u auth.User
			if err := json.Unmarshal(data, &u); err != nil {
				return err
			}

			if u.Username == username {
				user = &u
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) Insert(user *auth.User) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		// The uniqueness check runs in the same transaction as the
		// write, so concurrent inserts cannot both pass it.
		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var u auth.User
			if err := json.Unmarshal(data, &u); err != nil {
				return err
			}
			if u.Username == user.Username {
				return auth.ErrUsernameTaken
			}
		}

		id, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("error incrementing id: %v", err)
		}
		user.ID = int(id)
		user.CreatedAt = time.Now()

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}

		return bucket.Put(itob(user.ID), data)
	})
}

func (r *UserRepository) List() ([]*auth.User, error) {
	users := make([]*auth.User, 0)

	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var user auth.User
			if err := json.Unmarshal(data, &user); err != nil {
				return err
			}
			users = append(users, &user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}
