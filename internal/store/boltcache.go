package store

import (
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// responsesBucket holds raw upstream response bodies keyed by request path.
var responsesBucket = []byte("responses")

// BoltCache is the on-disk pass-through cache in front of the upstream timing
// provider. Entries are written once and never evicted or invalidated: the
// upstream data is historical and immutable, so a hit is always served as-is.
type BoltCache struct {
	db *bolt.DB
}

// NewBoltCache opens (or creates) the cache file and fails fast if the file
// is unusable, mirroring how the service treats its storage dependency.
func NewBoltCache(path string) (*BoltCache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "could not open cache file %q", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(responsesBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "could not create cache bucket")
	}

	return &BoltCache{db: db}, nil
}

// Get returns the cached body for key. The second return is false on a miss.
func (c *BoltCache) Get(key string) ([]byte, bool, error) {
	var out []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(responsesBucket).Get([]byte(key))
		if v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "cache read failed")
	}
	return out, out != nil, nil
}

// Put stores a response body under key, overwriting any previous value.
func (c *BoltCache) Put(key string, value []byte) error {
	err := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(responsesBucket).Put([]byte(key), value)
	})
	return errors.Wrap(err, "cache write failed")
}

// Ping is used by the readiness endpoint to confirm the cache file is usable.
func (c *BoltCache) Ping() error {
	return c.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(responsesBucket) == nil {
			return errors.New("cache bucket missing")
		}
		return nil
	})
}

// Close releases the underlying database file.
func (c *BoltCache) Close() error {
	return c.db.Close()
}
