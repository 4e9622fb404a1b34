package client

import (
	"context"
	"errors"
	"sync"
)

// Notifier receives user-visible failure notifications from a store.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

// Notify implements Notifier.
func (f NotifierFunc) Notify(message string) { f(message) }

// Store is a per-page cache of one record collection. It mirrors server
// state locally: Load replaces the cache wholesale, each successful
// mutation reconciles the server's response into the cache, and each
// failure surfaces a notification while leaving the cache untouched.
type Store[T any, I any] struct {
	resource *Resource[T, I]
	getID    func(*T) int
	notifier Notifier

	mu      sync.Mutex
	records []T
	loadErr error
}

// NewStore creates a store over a resource. getID extracts a record's
// identity; notifier may be nil to drop failure notifications.
func NewStore[T any, I any](resource *Resource[T, I], getID func(*T) int, notifier Notifier) *Store[T, I] {
	return &Store[T, I]{
		resource: resource,
		getID:    getID,
		notifier: notifier,
	}
}

// notify surfaces a failure to the notifier, preferring the server's
// stated reason over transport detail.
func (s *Store[T, I]) notify(err error) {
	if s.notifier == nil {
		return
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		s.notifier.Notify(apiErr.Message)
		return
	}
	s.notifier.Notify(err.Error())
}

// Load fetches the full collection and replaces the cache wholesale. On
// failure the cache keeps its previous contents and Err reports the
// failure until the next successful Load.
func (s *Store[T, I]) Load(ctx context.Context) error {
	records, err := s.resource.List(ctx)
	if err != nil {
		s.mu.Lock()
		s.loadErr = err
		s.mu.Unlock()
		s.notify(err)
		return err
	}
	s.mu.Lock()
	s.records = records
	s.loadErr = nil
	s.mu.Unlock()
	return nil
}

// Err reports the most recent Load failure. A nil error with zero
// records means the collection really is empty.
func (s *Store[T, I]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Records returns a snapshot of the cached records.
func (s *Store[T, I]) Records() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]T, len(s.records))
	copy(snapshot, s.records)
	return snapshot
}

// Len returns the number of cached records.
func (s *Store[T, I]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Filter applies a pure predicate over the cached records without any
// server round-trip.
func (s *Store[T, I]) Filter(keep func(*T) bool) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []T
	for i := range s.records {
		if keep(&s.records[i]) {
			matched = append(matched, s.records[i])
		}
	}
	return matched
}

// Create adds a record on the server and prepends it to the cache.
func (s *Store[T, I]) Create(ctx context.Context, in *I) (*T, error) {
	record, err := s.resource.Create(ctx, in)
	if err != nil {
		s.notify(err)
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]T{*record}, s.records...)
	return record, nil
}

// Update replaces a record on the server and reconciles the response
// into the cache by identity.
func (s *Store[T, I]) Update(ctx context.Context, id int, in *I) (*T, error) {
	record, err := s.resource.Update(ctx, id, in)
	if err != nil {
		s.notify(err)
		return nil, err
	}
	s.replace(id, record)
	return record, nil
}

// SetStatus patches a record's status on the server and merges the
// response into the cache by identity.
func (s *Store[T, I]) SetStatus(ctx context.Context, id int, status string) (*T, error) {
	record, err := s.resource.UpdateStatus(ctx, id, status)
	if err != nil {
		s.notify(err)
		return nil, err
	}
	s.replace(id, record)
	return record, nil
}

// Delete removes a record on the server and drops it from the cache.
func (s *Store[T, I]) Delete(ctx context.Context, id int) error {
	if err := s.resource.Delete(ctx, id); err != nil {
		s.notify(err)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.getID(&s.records[i]) == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store[T, I]) replace(id int, record *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.getID(&s.records[i]) == id {
			s.records[i] = *record
			return
		}
	}
}
