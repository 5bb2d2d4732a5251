package testutil

import (
	"context"
	"sync"

	"github.com/chosenhack/toprentbillfinal/internal/domain/activity"
	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
)

// InMemoryActivityStore implements activity.Repository
type InMemoryActivityStore struct {
	mu      sync.RWMutex
	entries []*activity.Activity
}

func NewInMemoryActivityStore() *InMemoryActivityStore {
	return &InMemoryActivityStore{}
}

// Create appends an activity entry
func (s *InMemoryActivityStore) Create(ctx context.Context, a *activity.Activity) error {
	if a == nil {
		return ierr.NewError("activity is nil").Mark(ierr.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, a)
	return nil
}

// List returns all entries, newest first
func (s *InMemoryActivityStore) List(ctx context.Context) ([]*activity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*activity.Activity, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}

// ListByCustomer returns the entries for a customer, newest first
func (s *InMemoryActivityStore) ListByCustomer(ctx context.Context, customerID string) ([]*activity.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*activity.Activity, 0)
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].CustomerID == customerID {
			out = append(out, s.entries[i])
		}
	}
	return out, nil
}
