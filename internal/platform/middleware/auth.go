package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// TokenValidator validates a session token and returns its claims.
type TokenValidator interface {
	Validate(tokenString string) (*Claims, error)
}

// Claims are the authenticated caller attributes handlers may rely on.
type Claims struct {
	Username string
	Role     string
	Verified bool
}

type contextKeyCaller struct{}

// GetCaller retrieves the authenticated caller from the context.
// It returns nil outside an authenticated route.
func GetCaller(ctx context.Context) *Claims {
	caller, ok := ctx.Value(contextKeyCaller{}).(*Claims)
	if !ok {
		return nil
	}
	return caller
}

// WithCaller stores caller claims in the context. Exported for handler tests.
func WithCaller(ctx context.Context, caller *Claims) context.Context {
	return context.WithValue(ctx, contextKeyCaller{}, caller)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller claims in the request context.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				writeUnauthorized(w, "Missing bearer token")
				return
			}

			claims, err := validator.Validate(token)
			if err != nil {
				ctx := r.Context()
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(ctx),
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := WithCaller(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated requests whose caller lacks the role.
// It must be mounted inside RequireAuth.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := GetCaller(r.Context())
			if caller == nil || caller.Role != role {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"forbidden","error_description":"Insufficient role"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
