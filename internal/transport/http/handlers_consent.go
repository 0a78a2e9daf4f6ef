package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	consentModel "hiu/internal/consent/models"
	"hiu/internal/platform/middleware"
	transportjson "hiu/internal/transport/http/json"
	"hiu/internal/transport/http/shared"
	pkgerrors "hiu/pkg/domain-errors"
)

// CreateConsentRequest is the requester-facing payload for raising a consent
// request. RequestID is optional; when set, the caller can later resolve the
// consent-request id the gateway assigned through the lookup endpoint.
type CreateConsentRequest struct {
	RequestID string                   `json:"requestId,omitempty"`
	Consent   consentModel.ConsentSpec `json:"consent"`
}

// ConsentRequestCreated acknowledges a raised consent request.
type ConsentRequestCreated struct {
	ID string `json:"id"`
}

func (h *Handler) handleCreateConsentRequest(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetCaller(r.Context())
	if caller == nil {
		shared.WriteError(w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
		return
	}

	var req CreateConsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, pkgerrors.New(pkgerrors.CodeInvalidInput, "could not decode consent request"))
		return
	}

	data := &consentModel.ConsentRequestData{Consent: req.Consent}

	var (
		id  uuid.UUID
		err error
	)
	if req.RequestID != "" {
		id, err = h.consents.CreatePatientRequest(r.Context(), caller.Username, req.RequestID, data)
	} else {
		id, err = h.consents.CreateRequest(r.Context(), caller.Username, data)
	}
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	transportjson.WriteJSON(w, http.StatusCreated, ConsentRequestCreated{ID: id.String()})
}

func (h *Handler) handleListConsentRequests(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetCaller(r.Context())
	if caller == nil {
		shared.WriteError(w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
		return
	}

	requests, err := h.consents.RequestsOf(r.Context(), caller.Username)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	transportjson.WriteJSON(w, http.StatusOK, map[string]any{
		"requests": requests,
	})
}

func (h *Handler) handleConsentRequestLookup(w http.ResponseWriter, r *http.Request) {
	clientRequestID := chi.URLParam(r, "requestId")

	consentRequestID, err := h.consents.ConsentRequestIDFor(r.Context(), clientRequestID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	transportjson.WriteJSON(w, http.StatusOK, map[string]string{
		"consentRequestId": consentRequestID,
	})
}
