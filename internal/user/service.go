package user

import (
	"context"
	"errors"
	"log/slog"

	"hiu/internal/sentinel"
	pkgerrors "hiu/pkg/domain-errors"
	"hiu/pkg/secrets"
)

// Service authenticates requester accounts and manages their passwords.
type Service struct {
	store  Store
	tokens *TokenIssuer
	logger *slog.Logger
}

func NewService(store Store, tokens *TokenIssuer, logger *slog.Logger) *Service {
	return &Service{store: store, tokens: tokens, logger: logger}
}

// Authenticate verifies the password for username and issues a session
// token. Unknown users and wrong passwords are indistinguishable to the
// caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	u, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", pkgerrors.New(pkgerrors.CodeAuthenticationFailed, "invalid username or password")
		}
		return "", pkgerrors.Wrap(err, pkgerrors.CodeInternal, "could not fetch user")
	}
	if err := secrets.Verify(password, u.Password); err != nil {
		if pkgerrors.HasCode(err, pkgerrors.CodeUnauthorized) {
			return "", pkgerrors.New(pkgerrors.CodeAuthenticationFailed, "invalid username or password")
		}
		return "", err
	}
	return s.tokens.Issue(u)
}

// Create registers a new requester account with a hashed password.
func (s *Service) Create(ctx context.Context, username, password string, role Role) error {
	hashed, err := secrets.Hash(password)
	if err != nil {
		return err
	}
	u := &User{Username: username, Password: hashed, Role: role, Verified: true}
	if err := u.Validate(); err != nil {
		return err
	}
	if err := s.store.Save(ctx, u); err != nil {
		if errors.Is(err, sentinel.ErrInvalidInput) {
			return pkgerrors.New(pkgerrors.CodeConflict, "username is already taken")
		}
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "could not save user")
	}
	s.log(ctx, "user created", slog.String("username", username), slog.String("role", string(role)))
	return nil
}

// ChangePassword replaces the password for username after verifying the
// current one.
func (s *Service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	u, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return pkgerrors.New(pkgerrors.CodeAuthenticationFailed, "invalid username or password")
		}
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "could not fetch user")
	}
	if err := secrets.Verify(oldPassword, u.Password); err != nil {
		if pkgerrors.HasCode(err, pkgerrors.CodeUnauthorized) {
			return pkgerrors.New(pkgerrors.CodeAuthenticationFailed, "invalid username or password")
		}
		return err
	}
	hashed, err := secrets.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.store.UpdatePassword(ctx, username, hashed); err != nil {
		return pkgerrors.Wrap(err, pkgerrors.CodeInternal, "could not update password")
	}
	s.log(ctx, "password changed", slog.String("username", username))
	return nil
}

func (s *Service) log(ctx context.Context, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.InfoContext(ctx, msg, args...)
}
