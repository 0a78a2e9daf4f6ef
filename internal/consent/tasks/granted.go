package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hiu/internal/consent/models"
	"hiu/internal/platform/cache"
	"hiu/internal/sentinel"
	pkgerrors "hiu/pkg/domain-errors"
)

// cmErrorCodeInvalidRequest is the consent manager's code for a notification
// this HIU cannot honour.
const cmErrorCodeInvalidRequest = 1510

// GrantedTask reacts to a GRANTED notification: it records the grant,
// acknowledges the batch back to the gateway and fetches every referenced
// artefact, remembering the fetch correlation so the artefact callback can be
// resolved later.
type GrantedTask struct {
	store         Store
	gateway       Gateway
	responseCache cache.Adapter
	logger        *slog.Logger
}

func NewGrantedTask(store Store, gateway Gateway, responseCache cache.Adapter, logger *slog.Logger) *GrantedTask {
	return &GrantedTask{
		store:         store,
		gateway:       gateway,
		responseCache: responseCache,
		logger:        logger,
	}
}

func (t *GrantedTask) Perform(ctx context.Context, notification models.ConsentNotification, timestamp time.Time, requestID uuid.UUID) error {
	request, err := t.store.GetByConsentRequestID(ctx, notification.ConsentRequestID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			ack := errorAcknowledgement(requestID, cmErrorCodeInvalidRequest, "unknown consent request")
			if sendErr := t.gateway.SendConsentOnNotify(ctx, "", ack); sendErr != nil {
				t.log(ctx, slog.LevelError, "failed to reject grant notification", "error", sendErr)
			}
			return pkgerrors.New(pkgerrors.CodeConsentRequestNotFound,
				fmt.Sprintf("unknown consent request %s", notification.ConsentRequestID))
		}
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to read consent request")
	}

	cmSuffix := request.Patient.CMSuffix()
	if !request.Status.CanTransition(models.StatusGranted) {
		if request.Status == models.StatusGranted {
			// Duplicate delivery: the grant is already recorded, so the
			// consent manager must have missed our acknowledgement.
			// Re-acknowledge without touching the request or fetching again.
			t.log(ctx, slog.LevelDebug, "re-acknowledging duplicate grant notification",
				"consent_request_id", notification.ConsentRequestID)
			ack := okAcknowledgement(notification.ConsentArtefacts, requestID)
			if err := t.gateway.SendConsentOnNotify(ctx, cmSuffix, ack); err != nil {
				return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to acknowledge grant notification")
			}
			return nil
		}
		ack := errorAcknowledgement(requestID, cmErrorCodeInvalidRequest,
			fmt.Sprintf("consent request in status %s cannot be granted", request.Status))
		if sendErr := t.gateway.SendConsentOnNotify(ctx, cmSuffix, ack); sendErr != nil {
			t.log(ctx, slog.LevelError, "failed to reject grant notification", "error", sendErr)
		}
		return pkgerrors.New(pkgerrors.CodeInvalidDataFromGateway,
			fmt.Sprintf("grant notification for consent request in status %s", request.Status))
	}

	if err := t.store.UpdateStatusByConsentRequestID(ctx, notification.ConsentRequestID, models.StatusGranted); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to record grant")
	}

	ack := okAcknowledgement(notification.ConsentArtefacts, requestID)
	if err := t.gateway.SendConsentOnNotify(ctx, cmSuffix, ack); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to acknowledge grant notification")
	}

	for _, artefact := range notification.ConsentArtefacts {
		fetchRequestID := uuid.New()
		if err := t.responseCache.Put(ctx, fetchRequestID.String(), notification.ConsentRequestID); err != nil {
			return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to record fetch correlation")
		}
		fetch := &models.ConsentFetchRequest{
			RequestID: fetchRequestID,
			Timestamp: time.Now().UTC(),
			ConsentID: artefact.ID,
		}
		if err := t.gateway.FetchConsentArtefact(ctx, cmSuffix, fetch); err != nil {
			return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable,
				fmt.Sprintf("failed to fetch consent artefact %s", artefact.ID))
		}
	}
	return nil
}

func (t *GrantedTask) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if t.logger == nil {
		return
	}
	t.logger.Log(ctx, level, msg, args...)
}
