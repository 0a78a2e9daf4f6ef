package user

import "context"

// Store persists requester accounts.
//
// Error Contract:
//   - GetByUsername returns sentinel.ErrNotFound when no such user exists.
//   - Save returns sentinel.ErrInvalidInput when the username is already taken.
//   - UpdatePassword returns sentinel.ErrNotFound when no such user exists.
type Store interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	Save(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}
