package httptransport

import (
	"context"
	"encoding/json"
	"net/http"

	consentModel "hiu/internal/consent/models"
	"hiu/internal/gateway"
	transportjson "hiu/internal/transport/http/json"
	"hiu/internal/transport/http/shared"
	pkgerrors "hiu/pkg/domain-errors"
)

// Gateway callbacks have no direct caller to report to: the gateway only
// cares that the callback was received, so processing failures are logged
// and the request is still acknowledged with 202.

func (h *Handler) handleConsentRequestOnInit(w http.ResponseWriter, r *http.Request) {
	var response consentModel.ConsentRequestInitResponse
	if err := json.NewDecoder(r.Body).Decode(&response); err != nil {
		shared.WriteError(w, pkgerrors.New(pkgerrors.CodeInvalidInput, "could not decode callback"))
		return
	}

	ctx := callbackContext(r)
	if err := h.consents.UpdatePostedRequest(ctx, &response); err != nil {
		h.logCallbackFailure(ctx, "consent-request on-init failed", err)
	}
	transportjson.WriteJSON(w, http.StatusAccepted, struct{}{})
}

func (h *Handler) handleConsentNotify(w http.ResponseWriter, r *http.Request) {
	var notification consentModel.HiuConsentNotification
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		shared.WriteError(w, pkgerrors.New(pkgerrors.CodeInvalidInput, "could not decode callback"))
		return
	}

	ctx := callbackContext(r)
	if err := h.consents.HandleNotification(ctx, &notification); err != nil {
		h.logCallbackFailure(ctx, "consent notification failed", err)
	}
	transportjson.WriteJSON(w, http.StatusAccepted, struct{}{})
}

func (h *Handler) handleConsentOnFetch(w http.ResponseWriter, r *http.Request) {
	var response consentModel.GatewayConsentArtefactResponse
	if err := json.NewDecoder(r.Body).Decode(&response); err != nil {
		shared.WriteError(w, pkgerrors.New(pkgerrors.CodeInvalidInput, "could not decode callback"))
		return
	}

	ctx := callbackContext(r)
	if err := h.consents.HandleConsentArtefact(ctx, &response); err != nil {
		h.logCallbackFailure(ctx, "consent artefact fetch failed", err)
	}
	transportjson.WriteJSON(w, http.StatusAccepted, struct{}{})
}

func (h *Handler) handleConsentRequestOnStatus(w http.ResponseWriter, r *http.Request) {
	var response consentModel.ConsentStatusResponse
	if err := json.NewDecoder(r.Body).Decode(&response); err != nil {
		shared.WriteError(w, pkgerrors.New(pkgerrors.CodeInvalidInput, "could not decode callback"))
		return
	}

	ctx := callbackContext(r)
	if err := h.consents.HandleConsentRequestStatus(ctx, &response); err != nil {
		h.logCallbackFailure(ctx, "consent-request on-status failed", err)
	}
	transportjson.WriteJSON(w, http.StatusAccepted, struct{}{})
}

// callbackContext carries the gateway correlation id through the processing
// chain so outbound calls triggered by the callback reuse it.
func callbackContext(r *http.Request) context.Context {
	ctx := r.Context()
	if id := r.Header.Get("X-CORRELATION-ID"); id != "" {
		ctx = gateway.WithCorrelationID(ctx, id)
	}
	return ctx
}

func (h *Handler) logCallbackFailure(ctx context.Context, msg string, err error) {
	if h.logger == nil {
		return
	}
	h.logger.ErrorContext(ctx, msg, "error", err)
}
