// Package user manages HIU requester accounts and their session tokens.
package user

import (
	"strings"

	pkgerrors "hiu/pkg/domain-errors"
)

// Role controls what a requester may do through the HIU APIs.
type Role string

const (
	// RoleAdmin may create other users and reset their passwords.
	RoleAdmin Role = "ADMIN"
	// RoleDoctor may raise consent requests and view health information.
	RoleDoctor Role = "DOCTOR"
)

// ParseRole maps a stored role string to a Role. Unknown or empty values
// default to DOCTOR, matching how legacy rows without a role are treated.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin
	default:
		return RoleDoctor
	}
}

// User is a requester account. Password holds the bcrypt hash, never the
// plaintext, and is excluded from serialization.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	Verified bool   `json:"verified"`
}

// Validate rejects usernames that cannot be stored or routed.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "username cannot be empty")
	}
	if u.Password == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "password cannot be empty")
	}
	return nil
}
