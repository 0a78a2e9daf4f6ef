package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hiu/internal/consent/models"
)

// Store persists consent requests and artefacts.
//
// Error Contract:
// - Lookups return sentinel.ErrNotFound (optionally wrapped) when no row exists
// - Mutations return nil on success or wrapped errors on failure
type Store interface {
	// InsertConsentRequest persists a freshly created request (status POSTED).
	InsertConsentRequest(ctx context.Context, request *models.ConsentRequest) error

	// StatusOf returns the current status of the request keyed by its gateway
	// request id.
	StatusOf(ctx context.Context, gatewayRequestID uuid.UUID) (models.Status, error)

	// StatusByConsentRequestID returns the current status of the request the
	// Consent Manager knows by consentRequestID.
	StatusByConsentRequestID(ctx context.Context, consentRequestID string) (models.Status, error)

	// GetByConsentRequestID returns the full request the Consent Manager
	// knows by consentRequestID.
	GetByConsentRequestID(ctx context.Context, consentRequestID string) (*models.ConsentRequest, error)

	// UpdateStatus advances the request keyed by gateway request id, recording
	// the CM-assigned consent request id when non-empty.
	UpdateStatus(ctx context.Context, gatewayRequestID uuid.UUID, status models.Status, consentRequestID string) error

	// UpdateStatusByConsentRequestID advances the request the Consent Manager
	// knows by consentRequestID.
	UpdateStatusByConsentRequestID(ctx context.Context, consentRequestID string, status models.Status) error

	// RequestsOf lists a requester's consent requests, newest first, bounded
	// by limit.
	RequestsOf(ctx context.Context, requesterID string, limit int) ([]*models.ConsentRequest, error)

	// InsertConsentArtefact persists a full artefact received from the gateway.
	InsertConsentArtefact(ctx context.Context, artefact *models.ConsentArtefact) error

	// GetConsentArtefact returns the artefact only when it currently holds the
	// given status; sentinel.ErrNotFound otherwise.
	GetConsentArtefact(ctx context.Context, artefactID string, status models.Status) (*models.ConsentArtefact, error)

	// UpdateArtefactStatus moves one artefact to status at the given time.
	UpdateArtefactStatus(ctx context.Context, artefactID string, status models.Status, at time.Time) error

	// ArtefactStatusFor returns the status of the first artefact recorded for
	// a consent request; sentinel.ErrNotFound when none exists yet.
	ArtefactStatusFor(ctx context.Context, consentRequestID string) (models.Status, error)
}
