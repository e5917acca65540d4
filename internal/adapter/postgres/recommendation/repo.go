// Package recommendation implements the Recommendation repository using PostgreSQL.
package recommendation

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

const recommendationColumns = `id, user_id, created_at, rec_type, related_topic_id, related_resource_id, reasoning, is_completed`

const (
	queryCreate = `INSERT INTO ai_recommendations (id, user_id, rec_type, related_topic_id, related_resource_id, reasoning, is_completed)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + recommendationColumns

	queryMarkCompleted = `UPDATE ai_recommendations SET is_completed = true
WHERE id = $1 AND user_id = $2`
)

// psql builds queries with PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides recommendation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recommendation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a recommendation for a user.
func (r *Repo) Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanRecommendation(q.QueryRow(ctx, queryCreate,
		rec.ID, rec.UserID, string(rec.Type), rec.RelatedTopicID,
		rec.RelatedResourceID, rec.Reasoning, rec.IsCompleted))
	if err != nil {
		return nil, mapError(err, "recommendation", rec.ID)
	}

	return created, nil
}

// ListByUser returns the user's recommendations, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.RecommendationFilter) ([]domain.Recommendation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := psql.Select("id", "user_id", "created_at", "rec_type",
		"related_topic_id", "related_resource_id", "reasoning", "is_completed").
		From("ai_recommendations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")

	if filter.OnlyPending {
		query = query.Where(squirrel.Eq{"is_completed": false})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recommendations select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "recommendation", userID)
	}
	defer rows.Close()

	var recs []domain.Recommendation
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, mapError(err, "recommendation", userID)
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "recommendation", userID)
	}

	return recs, nil
}

// MarkCompleted flips is_completed for a recommendation owned by the user.
// Returns domain.ErrNotFound when the recommendation does not exist or
// belongs to a different user. Completion is one-way: marking an already
// completed recommendation is not an error.
func (r *Repo) MarkCompleted(ctx context.Context, id, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, queryMarkCompleted, id, userID)
	if err != nil {
		return mapError(err, "recommendation", id)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "recommendation", id)
	}

	return nil
}

// scanRecommendation reads a single ai_recommendations row.
func scanRecommendation(row pgx.Row) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	var recType string
	err := row.Scan(&rec.ID, &rec.UserID, &rec.CreatedAt, &recType,
		&rec.RelatedTopicID, &rec.RelatedResourceID, &rec.Reasoning, &rec.IsCompleted)
	if err != nil {
		return nil, err
	}
	rec.Type = domain.RecommendationType(recType)
	return &rec, nil
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
