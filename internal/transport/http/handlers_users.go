package httptransport

import (
	"encoding/json"
	"net/http"

	"hiu/internal/platform/middleware"
	transportjson "hiu/internal/transport/http/json"
	"hiu/internal/transport/http/shared"
	"hiu/internal/user"
	pkgerrors "hiu/pkg/domain-errors"
)

// SessionRequest carries requester credentials for token issuance.
type SessionRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse carries an issued session token.
type SessionResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, pkgerrors.New(pkgerrors.CodeInvalidInput, "could not decode session request"))
		return
	}

	token, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	transportjson.WriteJSON(w, http.StatusOK, SessionResponse{
		Token:     token,
		TokenType: "Bearer",
	})
}

// CreateUserRequest registers a new requester account.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, pkgerrors.New(pkgerrors.CodeInvalidInput, "could not decode user request"))
		return
	}

	if err := h.users.Create(r.Context(), req.Username, req.Password, user.ParseRole(req.Role)); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// ChangePasswordRequest replaces the caller's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetCaller(r.Context())
	if caller == nil {
		shared.WriteError(w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, pkgerrors.New(pkgerrors.CodeInvalidInput, "could not decode password request"))
		return
	}

	if err := h.users.ChangePassword(r.Context(), caller.Username, req.OldPassword, req.NewPassword); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
