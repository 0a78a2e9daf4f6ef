package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hiu/internal/sentinel"
)

// PostgresStore persists requester accounts in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT username, password, role, verified FROM "user" WHERE username = $1`

	var (
		u    User
		role sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, username).Scan(&u.Username, &u.Password, &role, &u.Verified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Role = ParseRole(role.String)
	return &u, nil
}

func (s *PostgresStore) Save(ctx context.Context, u *User) error {
	query := `
		INSERT INTO "user" (username, password, role, verified)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING
	`
	res, err := s.db.ExecContext(ctx, query, u.Username, u.Password, string(u.Role), u.Verified)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrInvalidInput
	}
	return nil
}

func (s *PostgresStore) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	query := `UPDATE "user" SET password = $2 WHERE username = $1`

	res, err := s.db.ExecContext(ctx, query, username, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
