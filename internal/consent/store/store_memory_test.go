package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"hiu/internal/consent/models"
	"hiu/internal/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *MemoryStore
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewMemory()
}

func (s *MemoryStoreSuite) newRequest(requesterID string) *models.ConsentRequest {
	return &models.ConsentRequest{
		ID:          uuid.New(),
		RequesterID: requesterID,
		Patient:     models.Patient{ID: "aruna@ncg"},
		Purpose:     models.Purpose{Code: "CAREMGT", Text: "Care Management"},
		HIUID:       "10000002",
		Status:      models.StatusPosted,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func (s *MemoryStoreSuite) TestInsertAndStatusOf() {
	request := s.newRequest("dr-lakshmi")
	s.Require().NoError(s.store.InsertConsentRequest(s.ctx, request))

	status, err := s.store.StatusOf(s.ctx, request.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusPosted, status)
}

func (s *MemoryStoreSuite) TestStatusOfUnknownRequest() {
	_, err := s.store.StatusOf(s.ctx, uuid.New())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestUpdateStatusBindsConsentRequestID() {
	request := s.newRequest("dr-lakshmi")
	s.Require().NoError(s.store.InsertConsentRequest(s.ctx, request))

	err := s.store.UpdateStatus(s.ctx, request.ID, models.StatusRequested, "cm-consent-1")
	s.Require().NoError(err)

	status, err := s.store.StatusByConsentRequestID(s.ctx, "cm-consent-1")
	s.Require().NoError(err)
	s.Equal(models.StatusRequested, status)
}

func (s *MemoryStoreSuite) TestUpdateStatusByConsentRequestID() {
	request := s.newRequest("dr-lakshmi")
	s.Require().NoError(s.store.InsertConsentRequest(s.ctx, request))
	s.Require().NoError(s.store.UpdateStatus(s.ctx, request.ID, models.StatusRequested, "cm-consent-2"))

	err := s.store.UpdateStatusByConsentRequestID(s.ctx, "cm-consent-2", models.StatusGranted)
	s.Require().NoError(err)

	status, err := s.store.StatusOf(s.ctx, request.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusGranted, status)
}

func (s *MemoryStoreSuite) TestUpdateUnknownConsentRequestID() {
	err := s.store.UpdateStatusByConsentRequestID(s.ctx, "missing", models.StatusGranted)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestRequestsOfOrdersNewestFirst() {
	older := s.newRequest("dr-lakshmi")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := s.newRequest("dr-lakshmi")
	other := s.newRequest("dr-someone-else")

	s.Require().NoError(s.store.InsertConsentRequest(s.ctx, older))
	s.Require().NoError(s.store.InsertConsentRequest(s.ctx, newer))
	s.Require().NoError(s.store.InsertConsentRequest(s.ctx, other))

	requests, err := s.store.RequestsOf(s.ctx, "dr-lakshmi", 10)
	s.Require().NoError(err)
	s.Require().Len(requests, 2)
	s.Equal(newer.ID, requests[0].ID)
	s.Equal(older.ID, requests[1].ID)
}

func (s *MemoryStoreSuite) TestRequestsOfHonoursLimit() {
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.store.InsertConsentRequest(s.ctx, s.newRequest("dr-lakshmi")))
	}

	requests, err := s.store.RequestsOf(s.ctx, "dr-lakshmi", 3)
	s.Require().NoError(err)
	s.Len(requests, 3)
}

func (s *MemoryStoreSuite) TestArtefactStatusConditionalFetch() {
	artefact := &models.ConsentArtefact{
		ID:               "artefact-1",
		ConsentRequestID: "cm-consent-3",
		Status:           models.StatusGranted,
		UpdatedAt:        time.Now(),
	}
	s.Require().NoError(s.store.InsertConsentArtefact(s.ctx, artefact))

	got, err := s.store.GetConsentArtefact(s.ctx, "artefact-1", models.StatusGranted)
	s.Require().NoError(err)
	s.Equal("cm-consent-3", got.ConsentRequestID)

	_, err = s.store.GetConsentArtefact(s.ctx, "artefact-1", models.StatusRevoked)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestUpdateArtefactStatus() {
	artefact := &models.ConsentArtefact{
		ID:               "artefact-2",
		ConsentRequestID: "cm-consent-4",
		Status:           models.StatusGranted,
		UpdatedAt:        time.Now(),
	}
	s.Require().NoError(s.store.InsertConsentArtefact(s.ctx, artefact))

	at := time.Now()
	s.Require().NoError(s.store.UpdateArtefactStatus(s.ctx, "artefact-2", models.StatusExpired, at))

	got, err := s.store.GetConsentArtefact(s.ctx, "artefact-2", models.StatusExpired)
	s.Require().NoError(err)
	s.Equal(models.StatusExpired, got.Status)

	status, err := s.store.ArtefactStatusFor(s.ctx, "cm-consent-4")
	s.Require().NoError(err)
	s.Equal(models.StatusExpired, status)
}

func (s *MemoryStoreSuite) TestArtefactStatusForUnknownRequest() {
	_, err := s.store.ArtefactStatusFor(s.ctx, "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
