package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"hiu/internal/dataflow/models"
	"hiu/internal/sentinel"
)

// PostgresStore persists data-flow bindings in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed data-flow store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) SaveDataFlowRequest(ctx context.Context, transactionID string, request *models.DataFlowRequest) error {
	if request == nil {
		return fmt.Errorf("data flow request is required")
	}
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("marshal data flow request: %w", err)
	}
	query := `
		INSERT INTO data_flow_request (transaction_id, consent_artefact_id, request, created_at)
		VALUES ($1, $2, $3, now())
	`
	if _, err := s.db.ExecContext(ctx, query, transactionID, request.Consent.ID, body); err != nil {
		return fmt.Errorf("insert data flow request: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveKeyMaterial(ctx context.Context, transactionID string, keys *models.SessionKeyMaterial) error {
	if keys == nil {
		return fmt.Errorf("key material is required")
	}
	outward, err := json.Marshal(keys.KeyMaterial)
	if err != nil {
		return fmt.Errorf("marshal key material: %w", err)
	}
	query := `
		INSERT INTO data_flow_key_material (transaction_id, key_material, private_key, created_at)
		VALUES ($1, $2, $3, now())
	`
	if _, err := s.db.ExecContext(ctx, query, transactionID, outward, keys.PrivateKey); err != nil {
		return fmt.Errorf("insert key material: %w", err)
	}
	return nil
}

func (s *PostgresStore) KeyMaterialFor(ctx context.Context, transactionID string) (*models.SessionKeyMaterial, error) {
	query := `SELECT key_material, private_key FROM data_flow_key_material WHERE transaction_id = $1`

	var (
		outward    []byte
		privateKey string
	)
	err := s.db.QueryRowContext(ctx, query, transactionID).Scan(&outward, &privateKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get key material: %w", err)
	}

	var keys models.SessionKeyMaterial
	if err := json.Unmarshal(outward, &keys.KeyMaterial); err != nil {
		return nil, fmt.Errorf("unmarshal key material: %w", err)
	}
	keys.PrivateKey = privateKey
	return &keys, nil
}

func (s *PostgresStore) RequestFor(ctx context.Context, transactionID string) (*models.DataFlowRequest, error) {
	query := `SELECT request FROM data_flow_request WHERE transaction_id = $1`

	var body []byte
	err := s.db.QueryRowContext(ctx, query, transactionID).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get data flow request: %w", err)
	}

	var request models.DataFlowRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return nil, fmt.Errorf("unmarshal data flow request: %w", err)
	}
	return &request, nil
}
