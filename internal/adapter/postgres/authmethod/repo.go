// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xploar/xploar-backend/internal/adapter/postgres"
	"github.com/xploar/xploar-backend/internal/domain"
)

const authMethodColumns = `id, user_id, method, password_hash, created_at, updated_at`

const (
	queryCreate = `INSERT INTO auth_methods (user_id, method, password_hash)
VALUES ($1, $2, $3)
RETURNING ` + authMethodColumns

	queryGetByUserAndMethod = `SELECT ` + authMethodColumns + ` FROM auth_methods
WHERE user_id = $1 AND method = $2`

	queryUpdatePasswordHash = `UPDATE auth_methods SET password_hash = $3, updated_at = now()
WHERE user_id = $1 AND method = $2
RETURNING ` + authMethodColumns
)

// Repo provides auth-method persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new auth-method repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new auth method for a user.
func (r *Repo) Create(ctx context.Context, m *domain.AuthMethod) (*domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanAuthMethod(q.QueryRow(ctx, queryCreate,
		m.UserID, string(m.Method), m.PasswordHash))
	if err != nil {
		return nil, mapError(err, "auth_method", m.UserID)
	}

	return created, nil
}

// GetByUserAndMethod returns the credential of the given type for a user.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanAuthMethod(q.QueryRow(ctx, queryGetByUserAndMethod, userID, string(method)))
	if err != nil {
		return nil, mapError(err, "auth_method", userID)
	}

	return m, nil
}

// UpdatePasswordHash replaces the stored password hash for a user.
func (r *Repo) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) (*domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanAuthMethod(q.QueryRow(ctx, queryUpdatePasswordHash,
		userID, string(domain.AuthMethodPassword), hash))
	if err != nil {
		return nil, mapError(err, "auth_method", userID)
	}

	return m, nil
}

// scanAuthMethod reads a single auth_methods row.
func scanAuthMethod(row pgx.Row) (*domain.AuthMethod, error) {
	var m domain.AuthMethod
	var method string
	err := row.Scan(&m.ID, &m.UserID, &method, &m.PasswordHash, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Method = domain.AuthMethodType(method)
	return &m, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
