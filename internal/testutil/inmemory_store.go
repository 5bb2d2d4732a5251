package testutil

import (
	"context"
	"sync"

	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
)

// InMemoryStore is a generic, thread-safe in-memory key-value store used as
// the backing for the typed repository implementations below.
type InMemoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func NewInMemoryStore[T any]() *InMemoryStore[T] {
	return &InMemoryStore[T]{
		items: make(map[string]T),
	}
}

// Create stores a new item under id
func (s *InMemoryStore[T]) Create(ctx context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[id]; exists {
		return ierr.NewErrorf("item with id %s already exists", id).
			Mark(ierr.ErrAlreadyExists)
	}
	s.items[id] = item
	s.order = append(s.order, id)
	return nil
}

// Get retrieves an item by id
func (s *InMemoryStore[T]) Get(ctx context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, exists := s.items[id]
	if !exists {
		var zero T
		return zero, ierr.NewErrorf("item with id %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return item, nil
}

// List returns all items in insertion order
func (s *InMemoryStore[T]) List(ctx context.Context) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]T, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return items
}

// Update replaces an existing item
func (s *InMemoryStore[T]) Update(ctx context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[id]; !exists {
		return ierr.NewErrorf("item with id %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	s.items[id] = item
	return nil
}

// Delete removes an item
func (s *InMemoryStore[T]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[id]; !exists {
		return ierr.NewErrorf("item with id %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes all items
func (s *InMemoryStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T)
	s.order = nil
}
