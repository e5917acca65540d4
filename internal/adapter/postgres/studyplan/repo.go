// Package studyplan implements the StudyPlan repository using PostgreSQL.
//
// A plan is stored as a header row in study_plans plus one study_tasks row
// per task. Regeneration replaces the full task set inside a transaction
// while the header keeps its identity.
package studyplan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/xploar/xploar-backend/internal/adapter/postgres"
	"github.com/xploar/xploar-backend/internal/domain"
)

const (
	queryUpsertHeader = `INSERT INTO study_plans (id, user_id, start_date, hours_per_day, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (user_id) DO UPDATE
SET start_date = EXCLUDED.start_date,
    hours_per_day = EXCLUDED.hours_per_day,
    updated_at = EXCLUDED.updated_at
RETURNING id, user_id, start_date, hours_per_day, created_at, updated_at`

	queryGetHeaderByUserID = `SELECT id, user_id, start_date, hours_per_day, created_at, updated_at
FROM study_plans WHERE user_id = $1`

	queryListTasksByPlanID = `SELECT id, day_num, topic_id, kind, duration_mins, is_done
FROM study_tasks WHERE plan_id = $1
ORDER BY day_num, id`

	queryDeleteTasksByPlanID = `DELETE FROM study_tasks WHERE plan_id = $1`

	querySetTaskDone = `UPDATE study_tasks SET is_done = $2 WHERE id = $1`

	queryDeleteByUserID = `DELETE FROM study_plans WHERE user_id = $1`
)

// psql builds queries with PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides study-plan persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new study-plan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// UpsertHeader inserts or updates the plan header for the plan's user.
// On conflict the existing row keeps its id and created_at; the returned
// plan carries the persisted values.
func (r *Repo) UpsertHeader(ctx context.Context, plan *domain.StudyPlan) (*domain.StudyPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	row := q.QueryRow(ctx, queryUpsertHeader,
		plan.ID, plan.UserID, plan.StartDate, plan.HoursPerDay, now)

	var header domain.StudyPlan
	err := row.Scan(&header.ID, &header.UserID, &header.StartDate,
		&header.HoursPerDay, &header.CreatedAt, &header.UpdatedAt)
	if err != nil {
		return nil, mapError(err, "study_plan", plan.ID)
	}

	header.StartDate = header.StartDate.UTC()
	return &header, nil
}

// ReplaceTasks deletes all tasks of the plan and inserts the given days'
// tasks. Call inside a transaction together with UpsertHeader so a failed
// regeneration never leaves a half-written plan.
func (r *Repo) ReplaceTasks(ctx context.Context, planID uuid.UUID, days []domain.PlanDay) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, queryDeleteTasksByPlanID, planID); err != nil {
		return mapError(err, "study_task", planID)
	}

	insert := psql.Insert("study_tasks").
		Columns("id", "plan_id", "day_num", "topic_id", "kind", "duration_mins", "is_done")

	count := 0
	for _, day := range days {
		for _, task := range day.Tasks {
			insert = insert.Values(task.ID, planID, day.Day, task.TopicID,
				string(task.Kind), task.DurationMins, task.IsDone)
			count++
		}
	}
	if count == 0 {
		return nil
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build task insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "study_task", planID)
	}

	return nil
}

// GetByUserID returns the user's plan with all days and tasks.
// Returns domain.ErrNotFound when the user has no plan.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.StudyPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, queryGetHeaderByUserID, userID)

	var plan domain.StudyPlan
	err := row.Scan(&plan.ID, &plan.UserID, &plan.StartDate,
		&plan.HoursPerDay, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return nil, mapError(err, "study_plan", userID)
	}
	plan.StartDate = plan.StartDate.UTC()

	rows, err := q.Query(ctx, queryListTasksByPlanID, plan.ID)
	if err != nil {
		return nil, mapError(err, "study_task", plan.ID)
	}
	defer rows.Close()

	byDay := map[int][]domain.Task{}
	maxDay := 0
	for rows.Next() {
		var (
			task domain.Task
			day  int
			kind string
		)
		if err := rows.Scan(&task.ID, &day, &task.TopicID, &kind,
			&task.DurationMins, &task.IsDone); err != nil {
			return nil, mapError(err, "study_task", plan.ID)
		}
		task.Kind = domain.TaskKind(kind)
		byDay[day] = append(byDay[day], task)
		if day > maxDay {
			maxDay = day
		}
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "study_task", plan.ID)
	}

	for day := 1; day <= maxDay; day++ {
		plan.Days = append(plan.Days, domain.PlanDay{
			Day:   day,
			Date:  plan.StartDate.AddDate(0, 0, day-1),
			Tasks: byDay[day],
		})
	}

	return &plan, nil
}

// SetTaskDone updates the completion flag of a single task.
// Returns domain.ErrNotFound when the task does not exist.
func (r *Repo) SetTaskDone(ctx context.Context, taskID uuid.UUID, done bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, querySetTaskDone, taskID, done)
	if err != nil {
		return mapError(err, "study_task", taskID)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "study_task", taskID)
	}

	return nil
}

// DeleteByUserID removes the user's plan and, via cascade, all its tasks.
// Deleting a non-existent plan is not an error.
func (r *Repo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, queryDeleteByUserID, userID); err != nil {
		return mapError(err, "study_plan", userID)
	}

	return nil
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
