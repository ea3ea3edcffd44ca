// Package memory is the in-memory Store backend, used by tests and as the
// zero-configuration default for trying the app out. The collection is held
// in its encoded form so the backend exercises the same codec path as the
// durable ones.
package memory

import (
	"context"
	"sync"

	"github.com/snehilworks/finance-expense/internal/core"
	"github.com/snehilworks/finance-expense/internal/store"
)

type Store struct {
	mu      sync.Mutex
	payload []byte
}

func New() *Store {
	return &Store{}
}

// NewWithPayload seeds the store with a raw slot payload. Tests use this to
// exercise the corruption policy.
func NewWithPayload(payload []byte) *Store {
	return &Store{payload: payload}
}

func (s *Store) LoadAll(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return store.Decode(s.payload), nil
}

func (s *Store) ReplaceAll(_ context.Context, items []core.Expense) error {
	payload, err := store.Encode(items)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = payload
	return nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = nil
	return nil
}
