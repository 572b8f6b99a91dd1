// Package memory implements store.Store on process memory. Data is lost on
// restart; it backs tests and local development.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
)

// collection keeps the records of one resource family keyed by id.
// Ids come from a counter and are never handed out twice.
type collection[T any] struct {
	lastID  uint64
	records map[uint64]T
}

func newCollection[T any]() collection[T] {
	return collection[T]{records: make(map[uint64]T)}
}

func (c *collection[T]) nextID() uint64 {
	c.lastID++

	return c.lastID
}

func (c *collection[T]) get(id uint64) (T, error) {
	r, ok := c.records[id]
	if !ok {
		return r, store.ErrNotFound
	}

	return r, nil
}

// update applies fn to a copy of the record and stores the result.
func (c *collection[T]) update(id uint64, fn func(r *T)) (T, error) {
	r, ok := c.records[id]
	if !ok {
		return r, store.ErrNotFound
	}

	fn(&r)
	c.records[id] = r

	return r, nil
}

func (c *collection[T]) delete(id uint64) {
	delete(c.records, id)
}

// sorted returns the records matching keep ordered by less.
func (c *collection[T]) sorted(keep func(T) bool, less func(a, b T) bool) []T {
	out := make([]T, 0, len(c.records))

	for _, r := range c.records {
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })

	return out
}

// Store implements store.Store with maps guarded by a single lock.
type Store struct {
	mu sync.RWMutex

	now func() time.Time

	services collection[models.Service]
	posts    collection[models.BlogPost]
	jobs     collection[models.Job]
	contacts collection[models.ContactSubmission]
	clients  collection[models.Client]
	partners collection[models.Partner]
	admins   collection[models.Admin]
}

var _ store.Store = (*Store)(nil)

// New creates an empty memory store.
func New() *Store {
	return &Store{
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		services: newCollection[models.Service](),
		posts:    newCollection[models.BlogPost](),
		jobs:     newCollection[models.Job](),
		contacts: newCollection[models.ContactSubmission](),
		clients:  newCollection[models.Client](),
		partners: newCollection[models.Partner](),
		admins:   newCollection[models.Admin](),
	}
}

// Ping always succeeds.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }

// byOrder is the listing order of services, clients and partners.
func byOrder(orderA int, idA uint64, orderB int, idB uint64) bool {
	if orderA != orderB {
		return orderA < orderB
	}

	return idA < idB
}
