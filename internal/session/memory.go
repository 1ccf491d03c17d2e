package session

import (
	"context"
	"sync"

	"github.com/muzaffarov/splitbill/internal/billing"
)

// MemoryStore is the default backend: bills live in process memory and die
// with it.
type MemoryStore struct {
	mu    sync.Mutex
	bills map[string]*billing.Bill
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bills: make(map[string]*billing.Bill)}
}

func (s *MemoryStore) Get(_ context.Context, channelID string) (*billing.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bills[channelID], nil
}

func (s *MemoryStore) Put(_ context.Context, channelID string, bill *billing.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills[channelID] = bill
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bills, channelID)
	return nil
}
