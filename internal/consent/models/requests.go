package models

import (
	"time"

	"github.com/google/uuid"
)

// GatewayResponse echoes the request id a callback responds to.
type GatewayResponse struct {
	RequestID string `json:"requestId"`
}

// GatewayError is the error block of a gateway callback.
type GatewayError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Requester describes who asks for health information.
type Requester struct {
	Name string `json:"name"`
}

// ConsentSpec is the consent block of a creation request.
type ConsentSpec struct {
	Purpose    Purpose    `json:"purpose"`
	Patient    Patient    `json:"patient"`
	Requester  Requester  `json:"requester"`
	Permission Permission `json:"permission"`
}

// ConsentRequestData is the inbound body for consent request creation.
type ConsentRequestData struct {
	Consent ConsentSpec `json:"consent"`
}

// HIURef identifies this HIU in outbound gateway payloads.
type HIURef struct {
	ID string `json:"id"`
}

// CMConsentSpec is the consent block sent to the Consent Manager, the
// client-supplied spec stamped with the HIU identity.
type CMConsentSpec struct {
	Purpose    Purpose    `json:"purpose"`
	Patient    Patient    `json:"patient"`
	HIU        HIURef     `json:"hiu"`
	Requester  Requester  `json:"requester"`
	Permission Permission `json:"permission"`
}

// CMConsentRequest is the outbound consent creation payload.
type CMConsentRequest struct {
	RequestID uuid.UUID     `json:"requestId"`
	Timestamp time.Time     `json:"timestamp"`
	Consent   CMConsentSpec `json:"consent"`
}

// ConsentRequestReference carries the CM-assigned consent request id.
type ConsentRequestReference struct {
	ID string `json:"id"`
}

// ConsentRequestInitResponse is the asynchronous acknowledgement of a
// previously sent consent request.
type ConsentRequestInitResponse struct {
	Resp           GatewayResponse          `json:"resp"`
	Error          *GatewayError            `json:"error,omitempty"`
	ConsentRequest *ConsentRequestReference `json:"consentRequest,omitempty"`
}

// ConsentArtefactPayload is the consent block of an artefact callback.
type ConsentArtefactPayload struct {
	Status        Status        `json:"status"`
	ConsentDetail ConsentDetail `json:"consentDetail"`
	Signature     string        `json:"signature"`
}

// GatewayConsentArtefactResponse is the artefact fetch callback.
type GatewayConsentArtefactResponse struct {
	Resp    GatewayResponse         `json:"resp"`
	Error   *GatewayError           `json:"error,omitempty"`
	Consent *ConsentArtefactPayload `json:"consent,omitempty"`
}

// ConsentRequestStatusDetail carries a consent request's current CM-side status.
type ConsentRequestStatusDetail struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
}

// ConsentStatusResponse is the consent-status callback.
type ConsentStatusResponse struct {
	Resp           GatewayResponse             `json:"resp"`
	Error          *GatewayError               `json:"error,omitempty"`
	ConsentRequest *ConsentRequestStatusDetail `json:"consentRequest,omitempty"`
}

// ConsentFetchRequest asks the gateway for a full consent artefact.
type ConsentFetchRequest struct {
	RequestID uuid.UUID `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
	ConsentID string    `json:"consentId"`
}

// AcknowledgementStatus is the per-artefact verdict in an on-notify ack.
type AcknowledgementStatus string

const (
	AcknowledgementOK AcknowledgementStatus = "OK"
)

// ConsentAcknowledgement acknowledges receipt of one artefact notification.
type ConsentAcknowledgement struct {
	Status    AcknowledgementStatus `json:"status"`
	ConsentID string                `json:"consentId"`
}

// ConsentOnNotifyRequest acknowledges a consent notification back to the
// gateway, one batch acknowledgement per notification.
type ConsentOnNotifyRequest struct {
	RequestID       uuid.UUID                `json:"requestId"`
	Timestamp       time.Time                `json:"timestamp"`
	Acknowledgement []ConsentAcknowledgement `json:"acknowledgement,omitempty"`
	Error           *GatewayError            `json:"error,omitempty"`
	Resp            GatewayResponse          `json:"resp"`
}
