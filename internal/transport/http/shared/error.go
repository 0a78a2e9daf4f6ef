package shared

import (
	"errors"
	"net/http"

	"hiu/internal/transport/http/json"
	pkgerrors "hiu/pkg/domain-errors"
)

// WriteError centralizes domain error translation to HTTP responses.
// It translates transport-agnostic domain errors into HTTP status codes and error responses.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *pkgerrors.Error
	if errors.As(err, &domainErr) {
		response := map[string]string{
			"error": string(domainErr.Code),
		}
		if domainErr.Message != "" {
			response["error_description"] = domainErr.Message
		}
		json.WriteJSON(w, DomainCodeToHTTPStatus(domainErr.Code), response)
		return
	}

	// Fallback for unexpected errors
	json.WriteJSON(w, http.StatusInternalServerError, map[string]string{
		"error": string(pkgerrors.CodeInternal),
	})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code pkgerrors.Code) int {
	switch code {
	case pkgerrors.CodeNotFound,
		pkgerrors.CodeConsentRequestNotFound,
		pkgerrors.CodeConsentArtefactNotFound:
		return http.StatusNotFound
	case pkgerrors.CodeBadRequest,
		pkgerrors.CodeValidation,
		pkgerrors.CodeInvalidInput,
		pkgerrors.CodeInvalidPurposeOfUse,
		pkgerrors.CodeInvalidDataFromGateway:
		return http.StatusBadRequest
	case pkgerrors.CodeConflict:
		return http.StatusConflict
	case pkgerrors.CodeUnauthorized, pkgerrors.CodeAuthenticationFailed:
		return http.StatusUnauthorized
	case pkgerrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	case pkgerrors.CodeQueueNotFound, pkgerrors.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
