package bolt

import (
	"encoding/binary"
	"time"

	"github.com/boltdb/bolt"
)

// Driver holds the bolt database shared by the repositories. Each
// repository creates its own buckets when constructed.
type Driver struct {
	store *bolt.DB
}

func (d *Driver) Open(path string) error {
	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return err
	}

	d.store = store
	return nil
}

func (d *Driver) Close() error {
	return d.store.Close()
}

// itob returns an 8-byte big endian representation of v.
func itob(v int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
