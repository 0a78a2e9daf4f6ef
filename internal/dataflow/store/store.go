package store

import (
	"context"

	"hiu/internal/dataflow/models"
)

// Store persists the transaction↔request and transaction↔key-material
// bindings created by the data-flow pipeline. The key material row is the
// only durable home of a transaction's private key.
//
// Error Contract:
// - Lookups return sentinel.ErrNotFound when no row exists
// - Mutations return nil on success or wrapped errors on failure
type Store interface {
	// SaveDataFlowRequest binds the request to the transaction id the data
	// source assigned.
	SaveDataFlowRequest(ctx context.Context, transactionID string, request *models.DataFlowRequest) error

	// SaveKeyMaterial persists the full session key material for one
	// transaction, private key included.
	SaveKeyMaterial(ctx context.Context, transactionID string, keys *models.SessionKeyMaterial) error

	// KeyMaterialFor returns the session key material bound to a transaction,
	// needed to decrypt the health-information payload pushed for it.
	KeyMaterialFor(ctx context.Context, transactionID string) (*models.SessionKeyMaterial, error)

	// RequestFor returns the data-flow request bound to a transaction.
	RequestFor(ctx context.Context, transactionID string) (*models.DataFlowRequest, error)
}
