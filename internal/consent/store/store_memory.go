package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"hiu/internal/consent/models"
	"hiu/internal/sentinel"
)

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu        sync.RWMutex
	requests  map[uuid.UUID]*models.ConsentRequest
	artefacts map[string]*models.ConsentArtefact
	// byConsentRequestID indexes requests by their CM-assigned id once known.
	byConsentRequestID map[string]uuid.UUID
}

// NewMemory creates an empty in-memory consent store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		requests:           make(map[uuid.UUID]*models.ConsentRequest),
		artefacts:          make(map[string]*models.ConsentArtefact),
		byConsentRequestID: make(map[string]uuid.UUID),
	}
}

func (s *MemoryStore) InsertConsentRequest(_ context.Context, request *models.ConsentRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *request
	s.requests[request.ID] = &cp
	if request.ConsentRequestID != "" {
		s.byConsentRequestID[request.ConsentRequestID] = request.ID
	}
	return nil
}

func (s *MemoryStore) StatusOf(_ context.Context, gatewayRequestID uuid.UUID) (models.Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[gatewayRequestID]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return request.Status, nil
}

func (s *MemoryStore) StatusByConsentRequestID(_ context.Context, consentRequestID string) (models.Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byConsentRequestID[consentRequestID]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return s.requests[id].Status, nil
}

func (s *MemoryStore) GetByConsentRequestID(_ context.Context, consentRequestID string) (*models.ConsentRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byConsentRequestID[consentRequestID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *s.requests[id]
	return &cp, nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, gatewayRequestID uuid.UUID, status models.Status, consentRequestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[gatewayRequestID]
	if !ok {
		return sentinel.ErrNotFound
	}
	request.Status = status
	request.UpdatedAt = time.Now()
	if consentRequestID != "" {
		request.ConsentRequestID = consentRequestID
		s.byConsentRequestID[consentRequestID] = gatewayRequestID
	}
	return nil
}

func (s *MemoryStore) UpdateStatusByConsentRequestID(_ context.Context, consentRequestID string, status models.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byConsentRequestID[consentRequestID]
	if !ok {
		return sentinel.ErrNotFound
	}
	s.requests[id].Status = status
	s.requests[id].UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) RequestsOf(_ context.Context, requesterID string, limit int) ([]*models.ConsentRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.ConsentRequest
	for _, request := range s.requests {
		if request.RequesterID == requesterID {
			cp := *request
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *MemoryStore) InsertConsentArtefact(_ context.Context, artefact *models.ConsentArtefact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.artefacts[artefact.ID]; exists {
		return fmt.Errorf("artefact %s already stored", artefact.ID)
	}
	cp := *artefact
	s.artefacts[artefact.ID] = &cp
	return nil
}

func (s *MemoryStore) GetConsentArtefact(_ context.Context, artefactID string, status models.Status) (*models.ConsentArtefact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	artefact, ok := s.artefacts[artefactID]
	if !ok || artefact.Status != status {
		return nil, sentinel.ErrNotFound
	}
	cp := *artefact
	return &cp, nil
}

func (s *MemoryStore) UpdateArtefactStatus(_ context.Context, artefactID string, status models.Status, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	artefact, ok := s.artefacts[artefactID]
	if !ok {
		return sentinel.ErrNotFound
	}
	artefact.Status = status
	artefact.UpdatedAt = at
	return nil
}

func (s *MemoryStore) ArtefactStatusFor(_ context.Context, consentRequestID string) (models.Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.artefacts))
	for id := range s.artefacts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if s.artefacts[id].ConsentRequestID == consentRequestID {
			return s.artefacts[id].Status, nil
		}
	}
	return "", sentinel.ErrNotFound
}
