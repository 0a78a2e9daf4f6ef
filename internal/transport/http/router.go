package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hiu/internal/platform/health"
	"hiu/internal/platform/middleware"
	"hiu/internal/user"
)

// NewRouter wires all HIU endpoints with the shared middleware stack: the
// requester-facing consent API, the gateway callback surface, and the
// operational endpoints.
func NewRouter(
	h *Handler,
	validator middleware.TokenValidator,
	healthHandler *health.Handler,
	metricsHandler http.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	// Requester-facing API
	r.Post("/sessions", h.handleCreateSession)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(validator, logger))

		r.Post("/consent-requests", h.handleCreateConsentRequest)
		r.Get("/consent-requests", h.handleListConsentRequests)
		r.Get("/consent-requests/{requestId}", h.handleConsentRequestLookup)
		r.Put("/users/password", h.handleChangePassword)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(string(user.RoleAdmin)))
			r.Post("/users", h.handleCreateUser)
		})
	})

	// Gateway callback surface
	r.Route("/v0.5", func(r chi.Router) {
		r.Post("/consent-requests/on-init", h.handleConsentRequestOnInit)
		r.Post("/consent-requests/on-status", h.handleConsentRequestOnStatus)
		r.Post("/consents/hiu/notify", h.handleConsentNotify)
		r.Post("/consents/on-fetch", h.handleConsentOnFetch)
	})

	// Operational endpoints
	if healthHandler != nil {
		healthHandler.Register(r)
	}
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	return r
}
