// Package docstore is the embedded document backend: one bbolt bucket per
// collection, documents stored as JSON keyed by their uuid.
package docstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	bolt "go.etcd.io/bbolt"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// Store wraps the bbolt database.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database file and initializes every bucket.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range table.Collections {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Begin starts a read-write transaction. bbolt allows a single writer, so
// concurrent Begin calls wait for each other.
func (s *Store) Begin() (*bolt.Tx, error) {
	return s.db.Begin(true)
}

// Scope returns a scope where every call runs in its own transaction.
func (s *Store) Scope() Scope {
	return Scope{db: s.db}
}

// TxScope returns a scope bound to an open read-write transaction.
func TxScope(tx *bolt.Tx) Scope {
	return Scope{tx: tx}
}

// Scope decides which transaction a collection call runs in.
type Scope struct {
	db *bolt.DB
	tx *bolt.Tx
}

func (s Scope) view(fn func(*bolt.Tx) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	return s.db.View(fn)
}

func (s Scope) update(fn func(*bolt.Tx) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	return s.db.Update(fn)
}

// collection is the typed view over one bucket.
type collection[T any] struct {
	scope Scope
	name  string
}

func newCollection[T any](scope Scope, name string) collection[T] {
	return collection[T]{scope: scope, name: name}
}

func (c collection[T]) bucket(tx *bolt.Tx) (*bolt.Bucket, error) {
	b := tx.Bucket([]byte(c.name))
	if b == nil {
		return nil, fmt.Errorf("bucket %s not found", c.name)
	}
	return b, nil
}

func (c collection[T]) get(id uuid.UUID) (*T, error) {
	var doc T
	err := c.scope.view(func(tx *bolt.Tx) error {
		b, err := c.bucket(tx)
		if err != nil {
			return err
		}
		data := b.Get(id.Bytes())
		if data == nil {
			return table.ErrNotFound
		}
		return json.Unmarshal(data, &doc)
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c collection[T]) all() ([]*T, error) {
	var docs []*T
	err := c.scope.view(func(tx *bolt.Tx) error {
		b, err := c.bucket(tx)
		if err != nil {
			return err
		}
		return b.ForEach(func(_, v []byte) error {
			var doc T
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("failed to decode %s document: %w", c.name, err)
			}
			docs = append(docs, &doc)
			return nil
		})
	})
	return docs, err
}

func (c collection[T]) put(id uuid.UUID, doc *T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return c.scope.update(func(tx *bolt.Tx) error {
		b, err := c.bucket(tx)
		if err != nil {
			return err
		}
		return b.Put(id.Bytes(), data)
	})
}

// modify reads, changes and writes back one document in a single transaction.
func (c collection[T]) modify(id uuid.UUID, fn func(doc *T)) error {
	return c.scope.update(func(tx *bolt.Tx) error {
		b, err := c.bucket(tx)
		if err != nil {
			return err
		}
		data := b.Get(id.Bytes())
		if data == nil {
			return table.ErrNotFound
		}
		var doc T
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		fn(&doc)
		data, err = json.Marshal(&doc)
		if err != nil {
			return fmt.Errorf("failed to marshal value: %w", err)
		}
		return b.Put(id.Bytes(), data)
	})
}

func (c collection[T]) delete(id uuid.UUID) error {
	return c.scope.update(func(tx *bolt.Tx) error {
		b, err := c.bucket(tx)
		if err != nil {
			return err
		}
		if b.Get(id.Bytes()) == nil {
			return table.ErrNotFound
		}
		return b.Delete(id.Bytes())
	})
}

func newID() (uuid.UUID, error) {
	return uuid.NewV4()
}
