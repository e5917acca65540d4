// Package performance implements the per-topic MCQ performance repository
// using PostgreSQL.
package performance

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

const (
	// Each new result replaces the previous one for the topic. The
	// platform tracks the latest attempt, not a running total.
	queryUpsertStat = `INSERT INTO mcq_performance (user_id, topic_id, correct, total, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (user_id, topic_id) DO UPDATE
SET correct = EXCLUDED.correct,
    total = EXCLUDED.total,
    updated_at = EXCLUDED.updated_at`

	queryGetStat = `SELECT topic_id, correct, total FROM mcq_performance
WHERE user_id = $1 AND topic_id = $2`

	queryListStats = `SELECT topic_id, correct, total FROM mcq_performance
WHERE user_id = $1
ORDER BY topic_id`
)

// Repo provides MCQ performance persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new performance repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// UpsertStat stores the latest MCQ result for a user and topic,
// overwriting any previous result.
func (r *Repo) UpsertStat(ctx context.Context, userID uuid.UUID, stat domain.TopicStat) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, queryUpsertStat, userID, stat.TopicID, stat.Correct, stat.Total)
	if err != nil {
		return mapError(err, "mcq_performance", userID)
	}

	return nil
}

// GetStat returns the stored result for a user and topic.
// Returns domain.ErrNotFound when the topic has no recorded result.
func (r *Repo) GetStat(ctx context.Context, userID uuid.UUID, topicID string) (*domain.TopicStat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var stat domain.TopicStat
	err := q.QueryRow(ctx, queryGetStat, userID, topicID).
		Scan(&stat.TopicID, &stat.Correct, &stat.Total)
	if err != nil {
		return nil, mapError(err, "mcq_performance", userID)
	}

	return &stat, nil
}

// ListStats returns all recorded per-topic results for a user, ordered by topic.
func (r *Repo) ListStats(ctx context.Context, userID uuid.UUID) ([]domain.TopicStat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, queryListStats, userID)
	if err != nil {
		return nil, mapError(err, "mcq_performance", userID)
	}
	defer rows.Close()

	var stats []domain.TopicStat
	for rows.Next() {
		var stat domain.TopicStat
		if err := rows.Scan(&stat.TopicID, &stat.Correct, &stat.Total); err != nil {
			return nil, mapError(err, "mcq_performance", userID)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "mcq_performance", userID)
	}

	return stats, nil
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
