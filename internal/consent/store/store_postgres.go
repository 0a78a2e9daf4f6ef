package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hiu/internal/consent/models"
	"hiu/internal/sentinel"
)

// PostgresStore persists consent requests and artefacts in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
	tx *sql.Tx
}

// NewPostgres constructs a PostgreSQL-backed consent store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// NewPostgresTx constructs a PostgreSQL-backed consent store bound to a transaction.
func NewPostgresTx(tx *sql.Tx) *PostgresStore {
	return &PostgresStore{tx: tx}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer() dbExecutor {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *PostgresStore) InsertConsentRequest(ctx context.Context, request *models.ConsentRequest) error {
	if request == nil {
		return fmt.Errorf("consent request is required")
	}
	query := `
		INSERT INTO consent_request
			(id, consent_request_id, requester_id, patient_id, purpose_code, purpose_text,
			 hiu_id, date_from, date_to, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
	`
	_, err := s.execer().ExecContext(ctx, query,
		request.ID,
		nullable(request.ConsentRequestID),
		request.RequesterID,
		request.Patient.ID,
		request.Purpose.Code,
		request.Purpose.Text,
		request.HIUID,
		request.Permission.DateRange.From,
		request.Permission.DateRange.To,
		string(request.Status),
		request.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert consent request: %w", err)
	}
	return nil
}

func (s *PostgresStore) StatusOf(ctx context.Context, gatewayRequestID uuid.UUID) (models.Status, error) {
	query := `SELECT status FROM consent_request WHERE id = $1`
	var status string
	err := s.execer().QueryRowContext(ctx, query, gatewayRequestID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", sentinel.ErrNotFound
		}
		return "", fmt.Errorf("consent request status: %w", err)
	}
	return models.Status(status), nil
}

func (s *PostgresStore) StatusByConsentRequestID(ctx context.Context, consentRequestID string) (models.Status, error) {
	query := `SELECT status FROM consent_request WHERE consent_request_id = $1`
	var status string
	err := s.execer().QueryRowContext(ctx, query, consentRequestID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", sentinel.ErrNotFound
		}
		return "", fmt.Errorf("consent request status: %w", err)
	}
	return models.Status(status), nil
}

func (s *PostgresStore) GetByConsentRequestID(ctx context.Context, consentRequestID string) (*models.ConsentRequest, error) {
	query := `
		SELECT id, consent_request_id, requester_id, patient_id, purpose_code, purpose_text,
		       hiu_id, date_from, date_to, status, created_at, updated_at
		FROM consent_request
		WHERE consent_request_id = $1
	`
	rows, err := s.execer().QueryContext(ctx, query, consentRequestID)
	if err != nil {
		return nil, fmt.Errorf("get consent request: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get consent request: %w", err)
		}
		return nil, sentinel.ErrNotFound
	}
	return scanConsentRequest(rows)
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, gatewayRequestID uuid.UUID, status models.Status, consentRequestID string) error {
	query := `
		UPDATE consent_request
		SET status = $2,
		    consent_request_id = COALESCE($3, consent_request_id),
		    updated_at = now()
		WHERE id = $1
	`
	res, err := s.execer().ExecContext(ctx, query, gatewayRequestID, string(status), nullable(consentRequestID))
	if err != nil {
		return fmt.Errorf("update consent request status: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) UpdateStatusByConsentRequestID(ctx context.Context, consentRequestID string, status models.Status) error {
	query := `
		UPDATE consent_request
		SET status = $2, updated_at = now()
		WHERE consent_request_id = $1
	`
	res, err := s.execer().ExecContext(ctx, query, consentRequestID, string(status))
	if err != nil {
		return fmt.Errorf("update consent request status: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) RequestsOf(ctx context.Context, requesterID string, limit int) ([]*models.ConsentRequest, error) {
	query := `
		SELECT id, consent_request_id, requester_id, patient_id, purpose_code, purpose_text,
		       hiu_id, date_from, date_to, status, created_at, updated_at
		FROM consent_request
		WHERE requester_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := s.execer().QueryContext(ctx, query, requesterID, limit)
	if err != nil {
		return nil, fmt.Errorf("list consent requests: %w", err)
	}
	defer rows.Close()

	var result []*models.ConsentRequest
	for rows.Next() {
		request, err := scanConsentRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list consent requests: %w", err)
	}
	return result, nil
}

func (s *PostgresStore) InsertConsentArtefact(ctx context.Context, artefact *models.ConsentArtefact) error {
	if artefact == nil {
		return fmt.Errorf("consent artefact is required")
	}
	detail, err := json.Marshal(artefact.Detail)
	if err != nil {
		return fmt.Errorf("marshal consent detail: %w", err)
	}
	query := `
		INSERT INTO consent_artefact (id, consent_request_id, detail, signature, status, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
	`
	_, err = s.execer().ExecContext(ctx, query,
		artefact.ID,
		artefact.ConsentRequestID,
		detail,
		artefact.Signature,
		string(artefact.Status),
	)
	if err != nil {
		return fmt.Errorf("insert consent artefact: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetConsentArtefact(ctx context.Context, artefactID string, status models.Status) (*models.ConsentArtefact, error) {
	query := `
		SELECT id, consent_request_id, detail, signature, status, updated_at
		FROM consent_artefact
		WHERE id = $1 AND status = $2
	`
	row := s.execer().QueryRowContext(ctx, query, artefactID, string(status))

	var (
		artefact models.ConsentArtefact
		detail   []byte
		st       string
	)
	err := row.Scan(&artefact.ID, &artefact.ConsentRequestID, &detail, &artefact.Signature, &st, &artefact.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get consent artefact: %w", err)
	}
	if err := json.Unmarshal(detail, &artefact.Detail); err != nil {
		return nil, fmt.Errorf("unmarshal consent detail: %w", err)
	}
	artefact.Status = models.Status(st)
	return &artefact, nil
}

func (s *PostgresStore) UpdateArtefactStatus(ctx context.Context, artefactID string, status models.Status, at time.Time) error {
	query := `
		UPDATE consent_artefact
		SET status = $2, updated_at = $3
		WHERE id = $1
	`
	res, err := s.execer().ExecContext(ctx, query, artefactID, string(status), at)
	if err != nil {
		return fmt.Errorf("update consent artefact status: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) ArtefactStatusFor(ctx context.Context, consentRequestID string) (models.Status, error) {
	query := `
		SELECT status FROM consent_artefact
		WHERE consent_request_id = $1
		ORDER BY id
		LIMIT 1
	`
	var status string
	err := s.execer().QueryRowContext(ctx, query, consentRequestID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", sentinel.ErrNotFound
		}
		return "", fmt.Errorf("artefact status: %w", err)
	}
	return models.Status(status), nil
}

func scanConsentRequest(rows *sql.Rows) (*models.ConsentRequest, error) {
	var (
		request          models.ConsentRequest
		consentRequestID sql.NullString
		status           string
	)
	err := rows.Scan(
		&request.ID,
		&consentRequestID,
		&request.RequesterID,
		&request.Patient.ID,
		&request.Purpose.Code,
		&request.Purpose.Text,
		&request.HIUID,
		&request.Permission.DateRange.From,
		&request.Permission.DateRange.To,
		&status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan consent request: %w", err)
	}
	request.ConsentRequestID = consentRequestID.String
	request.Status = models.Status(status)
	return &request, nil
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
