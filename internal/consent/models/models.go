package models

import (
	"time"

	"github.com/google/uuid"
)

// Patient identifies a patient at a Consent Manager. The id carries the CM
// suffix after the "@" (e.g. "priya@ncg").
type Patient struct {
	ID string `json:"id"`
}

// CMSuffix returns the Consent Manager routing suffix of the patient id, or
// the empty string when the id carries none.
func (p Patient) CMSuffix() string {
	for i := len(p.ID) - 1; i >= 0; i-- {
		if p.ID[i] == '@' {
			return p.ID[i+1:]
		}
	}
	return ""
}

// Purpose labels why health information is requested.
type Purpose struct {
	Code string `json:"code"`
	Text string `json:"text,omitempty"`
}

// DateRange bounds the health information a consent covers.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Permission captures the access a consent request asks for.
type Permission struct {
	DateRange   DateRange  `json:"dateRange"`
	DataEraseAt *time.Time `json:"dataEraseAt,omitempty"`
}

// ConsentRequest is the durable record of one consent request. It is keyed by
// the gateway request id generated at creation; the Consent Manager assigns
// ConsentRequestID asynchronously once it acknowledges the request.
type ConsentRequest struct {
	ID               uuid.UUID
	ConsentRequestID string
	RequesterID      string
	Patient          Patient
	Purpose          Purpose
	HIUID            string
	Permission       Permission
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ConsentArtefactReference points at one artefact inside a notification.
type ConsentArtefactReference struct {
	ID string `json:"id"`
}

// ConsentDetail is the consent blob inside an artefact, immutable once stored.
type ConsentDetail struct {
	ConsentID  string     `json:"consentId"`
	Patient    Patient    `json:"patient"`
	Purpose    Purpose    `json:"purpose"`
	Permission Permission `json:"permission"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ConsentArtefact is the signed grant produced when a consent request is
// approved. Only the status field changes after insert.
type ConsentArtefact struct {
	ID               string
	ConsentRequestID string
	Detail           ConsentDetail
	Signature        string
	Status           Status
	UpdatedAt        time.Time
}

// ConsentNotification is the transient payload of one gateway notification.
type ConsentNotification struct {
	Status           Status                     `json:"status"`
	ConsentRequestID string                     `json:"consentRequestId"`
	ConsentArtefacts []ConsentArtefactReference `json:"consentArtefacts"`
}

// HiuConsentNotification wraps a notification with its gateway envelope.
type HiuConsentNotification struct {
	RequestID    uuid.UUID           `json:"requestId"`
	Timestamp    time.Time           `json:"timestamp"`
	Notification ConsentNotification `json:"notification"`
}

// PatientRepresentation is the display data merged into request listings.
type PatientRepresentation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ConsentRequestRepresentation is one row of a requester's listing: the
// request enriched with patient display data and the merged status (artefact
// status wins once an artefact exists).
type ConsentRequestRepresentation struct {
	ID               uuid.UUID             `json:"id"`
	ConsentRequestID string                `json:"consentRequestId"`
	Patient          PatientRepresentation `json:"patient"`
	Purpose          Purpose               `json:"purpose"`
	Permission       Permission            `json:"permission"`
	Status           Status                `json:"status"`
	CreatedAt        time.Time             `json:"createdAt"`
}
