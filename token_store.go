package appclient

import (
	"context"
	"sync"
)

var _ TokenStore = &MemoryTokenStore{}

// MemoryTokenStore keeps the token in process memory. It satisfies the
// single-writer contract with a mutex since Go callers, unlike the
// original event loop, may touch the store from several goroutines.
//
// Use the Bun or Redis stores when the token must survive a restart.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Get(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
