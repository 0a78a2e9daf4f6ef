package store

import (
	"context"
	"fmt"
	"sync"

	"hiu/internal/dataflow/models"
	"hiu/internal/sentinel"
)

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu       sync.RWMutex
	requests map[string]*models.DataFlowRequest
	keys     map[string]*models.SessionKeyMaterial
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		requests: make(map[string]*models.DataFlowRequest),
		keys:     make(map[string]*models.SessionKeyMaterial),
	}
}

func (s *MemoryStore) SaveDataFlowRequest(_ context.Context, transactionID string, request *models.DataFlowRequest) error {
	if request == nil {
		return fmt.Errorf("data flow request is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *request
	s.requests[transactionID] = &cp
	return nil
}

func (s *MemoryStore) SaveKeyMaterial(_ context.Context, transactionID string, keys *models.SessionKeyMaterial) error {
	if keys == nil {
		return fmt.Errorf("key material is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *keys
	s.keys[transactionID] = &cp
	return nil
}

func (s *MemoryStore) KeyMaterialFor(_ context.Context, transactionID string) (*models.SessionKeyMaterial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys, ok := s.keys[transactionID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *keys
	return &cp, nil
}

func (s *MemoryStore) RequestFor(_ context.Context, transactionID string) (*models.DataFlowRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[transactionID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *request
	return &cp, nil
}
