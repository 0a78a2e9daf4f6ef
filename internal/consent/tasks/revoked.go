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

// RevokedTask reacts to a REVOKED notification. It mirrors the expiry flow
// but publishes a health-information retraction instead of a plain teardown,
// since revocation means data may already have been received under the
// artefact and must be withdrawn.
type RevokedTask struct {
	store     Store
	gateway   Gateway
	retractor HealthInfoRetractor
	logger    *slog.Logger
}

func NewRevokedTask(store Store, gateway Gateway, retractor HealthInfoRetractor, logger *slog.Logger) *RevokedTask {
	return &RevokedTask{store: store, gateway: gateway, retractor: retractor, logger: logger}
}

func (t *RevokedTask) Perform(ctx context.Context, notification models.ConsentNotification, timestamp time.Time, requestID uuid.UUID) error {
	request, err := t.store.GetByConsentRequestID(ctx, notification.ConsentRequestID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return pkgerrors.New(pkgerrors.CodeConsentRequestNotFound,
				fmt.Sprintf("unknown consent request %s", notification.ConsentRequestID))
		}
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to read consent request")
	}

	if len(notification.ConsentArtefacts) == 0 {
		if err := t.store.UpdateStatusByConsentRequestID(ctx, notification.ConsentRequestID, models.StatusRevoked); err != nil {
			return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to record request revocation")
		}
		return nil
	}

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
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to acknowledge revocation notification")
	}

	for _, artefact := range notification.ConsentArtefacts {
		if err := t.store.UpdateArtefactStatus(ctx, artefact.ID, models.StatusRevoked, timestamp); err != nil {
			return pkgerrors.Wrap(err, pkgerrors.CodeInternal,
				fmt.Sprintf("failed to record revocation of artefact %s", artefact.ID))
		}
		if err := t.retractor.Retract(ctx, artefact.ID, notification.ConsentRequestID); err != nil {
			return pkgerrors.Wrap(err, pkgerrors.CodeInternal,
				fmt.Sprintf("failed to retract health information for artefact %s", artefact.ID))
		}
		if t.logger != nil {
			t.logger.InfoContext(ctx, "consent artefact revoked",
				"consent_artefact_id", artefact.ID,
				"consent_request_id", notification.ConsentRequestID,
			)
		}
	}
	return nil
}
