package user

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	pkgerrors "hiu/pkg/domain-errors"
)

const defaultTokenTTL = time.Hour

// Claims are the JWT claims carried by HIU session tokens.
type Claims struct {
	Username   string `json:"username"`
	Role       Role   `json:"role"`
	IsVerified bool   `json:"isVerified"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates HS256 session tokens for requester accounts.
type TokenIssuer struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

// TokenIssuerOption configures a TokenIssuer.
type TokenIssuerOption func(*TokenIssuer)

// WithTokenTTL overrides the default one hour token lifetime.
func WithTokenTTL(ttl time.Duration) TokenIssuerOption {
	return func(t *TokenIssuer) {
		t.ttl = ttl
	}
}

// WithTokenClock overrides the issuer's clock. Intended for tests.
func WithTokenClock(now func() time.Time) TokenIssuerOption {
	return func(t *TokenIssuer) {
		t.now = now
	}
}

func NewTokenIssuer(signingKey string, opts ...TokenIssuerOption) *TokenIssuer {
	t := &TokenIssuer{
		signingKey: []byte(signingKey),
		ttl:        defaultTokenTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Issue signs a session token for the given user.
func (t *TokenIssuer) Issue(u *User) (string, error) {
	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username:   u.Username,
		Role:       u.Role,
		IsVerified: u.Verified,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	signed, err := token.SignedString(t.signingKey)
	if err != nil {
		return "", pkgerrors.Wrap(err, pkgerrors.CodeInternal, "could not sign session token")
	}
	return signed, nil
}

// Validate parses a session token and returns its claims. An optional
// "Bearer " prefix is accepted so Authorization header values can be
// passed through unchanged.
func (t *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tokenString), "Bearer"))
	if tokenString == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "empty token")
	}

	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return t.signingKey, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeUnauthorized, "invalid token")
	}
	if !parsed.Valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid token")
	}
	return claims, nil
}
