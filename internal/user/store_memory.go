package user

import (
	"context"
	"sync"

	"hiu/internal/sentinel"
)

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]User)}
}

func (s *MemoryStore) GetByUsername(_ context.Context, username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := u
	return &out, nil
}

func (s *MemoryStore) Save(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.Username]; ok {
		return sentinel.ErrInvalidInput
	}
	s.users[u.Username] = *u
	return nil
}

func (s *MemoryStore) UpdatePassword(_ context.Context, username, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return sentinel.ErrNotFound
	}
	u.Password = passwordHash
	s.users[username] = u
	return nil
}
