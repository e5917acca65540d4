// Package mockrun implements the MockRun repository using PostgreSQL.
package mockrun

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xploar/xploar-backend/internal/adapter/postgres"
	"github.com/xploar/xploar-backend/internal/domain"
)

const mockRunColumns = `id, user_id, run_date, topic_id, score, total_questions, time_taken_mins, uses_negative_marking`

const queryCreate = `INSERT INTO mock_runs (` + mockRunColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + mockRunColumns

// psql builds queries with PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides mock-run persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mock-run repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a completed mock run. Rows are append-only.
func (r *Repo) Create(ctx context.Context, run *domain.MockRun) (*domain.MockRun, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanMockRun(q.QueryRow(ctx, queryCreate,
		run.ID, run.UserID, run.Date, run.TopicID, run.Score,
		run.TotalQuestions, run.TimeTakenMins, run.UsesNegativeMarking))
	if err != nil {
		return nil, mapError(err, "mock_run", run.ID)
	}

	return created, nil
}

// ListByUser returns the user's mock runs, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.MockRunFilter) ([]domain.MockRun, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := psql.Select("id", "user_id", "run_date", "topic_id", "score",
		"total_questions", "time_taken_mins", "uses_negative_marking").
		From("mock_runs").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("run_date DESC", "id")

	if filter.TopicID != "" {
		query = query.Where(squirrel.Eq{"topic_id": filter.TopicID})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mock_runs select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "mock_run", userID)
	}
	defer rows.Close()

	var runs []domain.MockRun
	for rows.Next() {
		run, err := scanMockRun(rows)
		if err != nil {
			return nil, mapError(err, "mock_run", userID)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "mock_run", userID)
	}

	return runs, nil
}

// scanMockRun reads a single mock_runs row.
func scanMockRun(row pgx.Row) (*domain.MockRun, error) {
	var run domain.MockRun
	err := row.Scan(&run.ID, &run.UserID, &run.Date, &run.TopicID, &run.Score,
		&run.TotalQuestions, &run.TimeTakenMins, &run.UsesNegativeMarking)
	if err != nil {
		return nil, err
	}
	return &run, nil
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
