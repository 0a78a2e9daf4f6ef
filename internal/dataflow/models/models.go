package models

import (
	consentmodels "hiu/internal/consent/models"
)

// Key material identifiers sent with every key-exchange payload.
const (
	CryptoAlgECDH = "ECDH"
	CurveX25519   = "Curve25519"
)

// KeyStructure is one half of a Diffie-Hellman exchange: a base64 key value
// with its expiry and encoding parameters.
type KeyStructure struct {
	Expiry     string `json:"expiry"`
	Parameters string `json:"parameters"`
	KeyValue   string `json:"keyValue"`
}

// KeyMaterial is the outward-facing half of a transaction's key material.
// It never carries the private key.
type KeyMaterial struct {
	CryptoAlg   string       `json:"cryptoAlg"`
	Curve       string       `json:"curve"`
	DHPublicKey KeyStructure `json:"dhPublicKey"`
	Nonce       string       `json:"nonce"`
}

// SessionKeyMaterial pairs the outward key material with the HIU-side private
// key. The private key is excluded from serialization; it is persisted only
// through the data-flow store's dedicated column.
type SessionKeyMaterial struct {
	KeyMaterial
	PrivateKey string `json:"-"`
}

// Consent references the artefact a data-flow request is authorized by.
type Consent struct {
	ID               string `json:"id"`
	DigitalSignature string `json:"digitalSignature"`
}

// DataFlowRequest asks a data source to transfer health information covered
// by one consent artefact. Queued without key material; the pipeline attaches
// freshly generated key material before forwarding.
type DataFlowRequest struct {
	Consent     Consent                 `json:"consent"`
	DateRange   consentmodels.DateRange `json:"dateRange"`
	DataPushURL string                  `json:"dataPushUrl"`
	KeyMaterial *KeyMaterial            `json:"keyMaterial,omitempty"`
}

// DataFlowRequestResponse carries the transaction id the data source assigned.
type DataFlowRequestResponse struct {
	TransactionID string `json:"transactionId"`
}

// DataFlowDelete broadcasts teardown of the data flow for one artefact.
type DataFlowDelete struct {
	ConsentID        string `json:"consentId"`
	ConsentRequestID string `json:"consentRequestId"`
}

// HealthInfoRetraction asks downstream processors to withdraw health
// information already received under a revoked artefact.
type HealthInfoRetraction struct {
	ConsentID        string `json:"consentId"`
	ConsentRequestID string `json:"consentRequestId"`
}
