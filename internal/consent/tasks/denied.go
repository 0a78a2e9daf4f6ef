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

// DeniedTask reacts to a DENIED notification. Denial carries no artefact
// level work since no artefact was ever created.
type DeniedTask struct {
	store   Store
	gateway Gateway
	logger  *slog.Logger
}

func NewDeniedTask(store Store, gateway Gateway, logger *slog.Logger) *DeniedTask {
	return &DeniedTask{store: store, gateway: gateway, logger: logger}
}

func (t *DeniedTask) Perform(ctx context.Context, notification models.ConsentNotification, timestamp time.Time, requestID uuid.UUID) error {
	request, err := t.store.GetByConsentRequestID(ctx, notification.ConsentRequestID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return pkgerrors.New(pkgerrors.CodeConsentRequestNotFound,
				fmt.Sprintf("unknown consent request %s", notification.ConsentRequestID))
		}
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to read consent request")
	}
	if request.Status == models.StatusDenied {
		// Duplicate delivery: re-acknowledge so the consent manager stops
		// redelivering, without a second status write.
		if t.logger != nil {
			t.logger.DebugContext(ctx, "re-acknowledging duplicate denial notification",
				"consent_request_id", notification.ConsentRequestID)
		}
		ack := okAcknowledgement(nil, requestID)
		if err := t.gateway.SendConsentOnNotify(ctx, request.Patient.CMSuffix(), ack); err != nil {
			return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to acknowledge denial notification")
		}
		return nil
	}

	if err := t.store.UpdateStatusByConsentRequestID(ctx, notification.ConsentRequestID, models.StatusDenied); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "failed to record denial")
	}

	ack := okAcknowledgement(nil, requestID)
	if err := t.gateway.SendConsentOnNotify(ctx, request.Patient.CMSuffix(), ack); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeUnavailable, "failed to acknowledge denial notification")
	}
	return nil
}
