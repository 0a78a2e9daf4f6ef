// Package tasks holds the status-specific reactions to consent notifications.
// Each task is stateless, constructed once with its collaborators, and safe to
// invoke concurrently for different requests.
package tasks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hiu/internal/consent/models"
)

// Store is the persistence surface the tasks mutate.
// Error Contract:
// - Lookups return sentinel.ErrNotFound when no record exists
// - Other methods return nil on success or wrapped errors on failure
type Store interface {
	GetByConsentRequestID(ctx context.Context, consentRequestID string) (*models.ConsentRequest, error)
	UpdateStatusByConsentRequestID(ctx context.Context, consentRequestID string, status models.Status) error
	GetConsentArtefact(ctx context.Context, artefactID string, status models.Status) (*models.ConsentArtefact, error)
	UpdateArtefactStatus(ctx context.Context, artefactID string, status models.Status, at time.Time) error
}

// Gateway is the outbound surface the tasks acknowledge and fetch through.
type Gateway interface {
	SendConsentOnNotify(ctx context.Context, cmSuffix string, ack *models.ConsentOnNotifyRequest) error
	FetchConsentArtefact(ctx context.Context, cmSuffix string, request *models.ConsentFetchRequest) error
}

// DeleteBroadcaster publishes a data-flow teardown event for one artefact.
type DeleteBroadcaster interface {
	Publish(ctx context.Context, consentID, consentRequestID string) error
}

// HealthInfoRetractor publishes a retraction event for health information
// already received under a now-revoked artefact.
type HealthInfoRetractor interface {
	Retract(ctx context.Context, consentID, consentRequestID string) error
}

// okAcknowledgement builds the batch acknowledgement for a set of artefact
// references, echoing the gateway request id the notification arrived with.
func okAcknowledgement(artefacts []models.ConsentArtefactReference, requestID uuid.UUID) *models.ConsentOnNotifyRequest {
	var acks []models.ConsentAcknowledgement
	for _, artefact := range artefacts {
		acks = append(acks, models.ConsentAcknowledgement{
			Status:    models.AcknowledgementOK,
			ConsentID: artefact.ID,
		})
	}
	return &models.ConsentOnNotifyRequest{
		RequestID:       uuid.New(),
		Timestamp:       time.Now().UTC(),
		Acknowledgement: acks,
		Resp:            models.GatewayResponse{RequestID: requestID.String()},
	}
}

// errorAcknowledgement signals rejection of a notification back to the gateway.
func errorAcknowledgement(requestID uuid.UUID, code int, message string) *models.ConsentOnNotifyRequest {
	return &models.ConsentOnNotifyRequest{
		RequestID: uuid.New(),
		Timestamp: time.Now().UTC(),
		Error:     &models.GatewayError{Code: code, Message: message},
		Resp:      models.GatewayResponse{RequestID: requestID.String()},
	}
}
