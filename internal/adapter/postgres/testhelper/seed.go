package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xploar/xploar-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedPlan creates a study plan header with one task per day for the given
// number of days. Returns the filled domain.StudyPlan.
func SeedPlan(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, days int) domain.StudyPlan {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	plan := domain.StudyPlan{
		ID:          uuid.New(),
		UserID:      userID,
		StartDate:   start,
		HoursPerDay: 2,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO study_plans (id, user_id, start_date, hours_per_day, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		plan.ID, plan.UserID, plan.StartDate, plan.HoursPerDay, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan insert plan: %v", err)
	}

	for day := 1; day <= days; day++ {
		task := domain.Task{
			ID:           uuid.New(),
			TopicID:      "polity",
			Kind:         domain.TaskKindRead,
			DurationMins: 120,
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO study_tasks (id, plan_id, day_num, topic_id, kind, duration_mins, is_done)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			task.ID, plan.ID, day, task.TopicID, string(task.Kind), task.DurationMins, task.IsDone,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedPlan insert task day %d: %v", day, err)
		}

		plan.Days = append(plan.Days, domain.PlanDay{
			Day:   day,
			Date:  start.AddDate(0, 0, day-1),
			Tasks: []domain.Task{task},
		})
	}

	return plan
}

// SeedMockRun creates a mock run row for the user. Returns the filled domain.MockRun.
func SeedMockRun(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, topicID string) domain.MockRun {
	t.Helper()
	ctx := context.Background()

	run := domain.MockRun{
		ID:                  uuid.New(),
		UserID:              userID,
		Date:                time.Now().UTC().Truncate(time.Microsecond),
		TopicID:             topicID,
		Score:               7,
		TotalQuestions:      10,
		TimeTakenMins:       12,
		UsesNegativeMarking: true,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO mock_runs (id, user_id, run_date, topic_id, score, total_questions, time_taken_mins, uses_negative_marking)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		run.ID, run.UserID, run.Date, run.TopicID, run.Score, run.TotalQuestions, run.TimeTakenMins, run.UsesNegativeMarking,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMockRun insert: %v", err)
	}

	return run
}
