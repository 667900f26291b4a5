package marker

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu   sync.Mutex
	done bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Initialized(context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done, nil
}

func (s *MemoryStore) MarkInitialized(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = true
	return nil
}
