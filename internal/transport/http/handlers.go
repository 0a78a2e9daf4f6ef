// Package httptransport is the thin HTTP layer over the HIU services. It
// delegates to domain services without embedding business logic so transport
// concerns remain isolated.
package httptransport

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	consentModel "hiu/internal/consent/models"
	"hiu/internal/platform/middleware"
	"hiu/internal/user"
)

// ConsentService is the consent orchestration surface the handlers call.
type ConsentService interface {
	CreateRequest(ctx context.Context, requesterID string, data *consentModel.ConsentRequestData) (uuid.UUID, error)
	CreatePatientRequest(ctx context.Context, requesterID, clientRequestID string, data *consentModel.ConsentRequestData) (uuid.UUID, error)
	RequestsOf(ctx context.Context, requesterID string) ([]*consentModel.ConsentRequestRepresentation, error)
	ConsentRequestIDFor(ctx context.Context, clientRequestID string) (string, error)
	UpdatePostedRequest(ctx context.Context, response *consentModel.ConsentRequestInitResponse) error
	HandleNotification(ctx context.Context, notification *consentModel.HiuConsentNotification) error
	HandleConsentArtefact(ctx context.Context, response *consentModel.GatewayConsentArtefactResponse) error
	HandleConsentRequestStatus(ctx context.Context, response *consentModel.ConsentStatusResponse) error
}

// UserService manages requester accounts and session tokens.
type UserService interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
	Create(ctx context.Context, username, password string, role user.Role) error
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
}

// Handler holds the wired services behind the HIU endpoints.
type Handler struct {
	consents ConsentService
	users    UserService
	logger   *slog.Logger
}

func NewHandler(consents ConsentService, users UserService, logger *slog.Logger) *Handler {
	return &Handler{
		consents: consents,
		users:    users,
		logger:   logger,
	}
}

// TokenValidator adapts a user token issuer to the middleware contract.
type TokenValidator struct {
	issuer *user.TokenIssuer
}

func NewTokenValidator(issuer *user.TokenIssuer) *TokenValidator {
	return &TokenValidator{issuer: issuer}
}

func (v *TokenValidator) Validate(tokenString string) (*middleware.Claims, error) {
	claims, err := v.issuer.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.Claims{
		Username: claims.Username,
		Role:     string(claims.Role),
		Verified: claims.IsVerified,
	}, nil
}
