package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hiu/internal/consent/models"
	"hiu/internal/sentinel"
	pkgerrors "hiu/pkg/domain-errors"
)

// ExpiredTask reacts to an EXPIRED notification. Without artefact references
// it is a pure request-level expiry. With references it re-validates each
// artefact is currently GRANTED, acknowledges the batch once, and then per
// artefact records the expiry and broadcasts a data-flow teardown.
//
// The acknowledgement goes out before the per-artefact teardown begins, so
// the gateway is told "received" even when teardown later fails; those
// failures surface as this task's own error and are not retried here.
type ExpiredTask struct {
	store   Store
	gateway Gateway
	deletes DeleteBroadcaster
	logger  *slog.Logger
}

func NewExpiredTask(store Store, gateway Gateway, deletes DeleteBroadcaster, logger *slog.Logger) *ExpiredTask {
	return &ExpiredTask{store: store, gateway: gateway, deletes: deletes, logger: logger}
}

func (t *ExpiredTask) Perform(ctx context.Context, notification models.ConsentNotification, timestamp time.Time, requestID uuid.UUID) error {
	if len(notification.ConsentArtefacts) == 0 {
		if err := t.store.UpdateStatusByConsentRequestID(ctx, notification.ConsentRequestID, models.StatusExpired); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return pkgerrors.New(pkgerrors.CodeConsentRequestNotFound,
					fmt.Sprintf("unknown consent request %s", notification.ConsentRequestID))
			}
			return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to record request expiry")
		}
		return nil
	}

	request, err := t.store.GetByConsentRequestID(ctx, notification.ConsentRequestID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return pkgerrors.New(pkgerrors.CodeConsentRequestNotFound,
				fmt.Sprintf("unknown consent request %s", notification.ConsentRequestID))
		}
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to read consent request")
	}

	// Expiring a never-granted or already-expired artefact is an error, not a
	// no-op, so duplicate deliveries stay visible upstream.
	for _, artefact := range notification.ConsentArtefacts {
		if _, err := t.store.GetConsentArtefact(ctx, artefact.ID, models.StatusGranted); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return pkgerrors.New(pkgerrors.CodeConsentArtefactNotFound,
					fmt.Sprintf("consent artefact %s is not in a granted state", artefact.ID))
			}
			return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to read consent artefact")
		}
	}

	ack := okAcknowledgement(notification.ConsentArtefacts, requestID)
	if err := t.gateway.SendConsentOnNotify(ctx, request.Patient.CMSuffix(), ack); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to acknowledge expiry notification")
	}

	for _, artefact := range notification.ConsentArtefacts {
		if err := t.store.UpdateArtefactStatus(ctx, artefact.ID, models.StatusExpired, timestamp); err != nil {
			return pkgerrors.Wrap(err, pkgerrors.CodeInternal,
				fmt.Sprintf("failed to record expiry of artefact %s", artefact.ID))
		}
		if err := t.deletes.Publish(ctx, artefact.ID, notification.ConsentRequestID); err != nil {
			return pkgerrors.Wrap(err, pkgerrors.CodeInternal,
				fmt.Sprintf("failed to broadcast deletion for artefact %s", artefact.ID))
		}
		if t.logger != nil {
			t.logger.InfoContext(ctx, "consent artefact expired",
				"consent_artefact_id", artefact.ID,
				"consent_request_id", notification.ConsentRequestID,
			)
		}
	}
	return nil
}
