// Package planner generates deterministic study plans and keeps the
// persisted copy in sync with user actions.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/config"
	"github.com/xploar/xploar-backend/internal/domain"
)

// planRepo defines the study plan repository interface needed by the planner.
type planRepo interface {
	UpsertHeader(ctx context.Context, plan *domain.StudyPlan) (*domain.StudyPlan, error)
	ReplaceTasks(ctx context.Context, planID uuid.UUID, days []domain.PlanDay) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.StudyPlan, error)
	SetTaskDone(ctx context.Context, taskID uuid.UUID, done bool) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by the planner.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service orchestrates plan generation and persistence.
type Service struct {
	log   *slog.Logger
	plans planRepo
	tx    txManager
	cfg   config.PlanConfig
}

// NewService creates a new planner service instance.
func NewService(logger *slog.Logger, plans planRepo, tx txManager, cfg config.PlanConfig) *Service {
	return &Service{
		log:   logger.With("service", "planner"),
		plans: plans,
		tx:    tx,
		cfg:   cfg,
	}
}

// Generate builds a plan from the config and replaces the user's stored
// plan. Header upsert and task replacement run in one transaction, so a
// failed regeneration leaves the previous plan intact.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, cfg domain.StudyConfig) (*domain.StudyPlan, error) {
	if err := s.checkLimits(cfg); err != nil {
		return nil, err
	}

	days, err := Generate(cfg)
	if err != nil {
		return nil, err
	}

	plan := &domain.StudyPlan{
		ID:          uuid.New(),
		UserID:      userID,
		StartDate:   cfg.StartDate,
		HoursPerDay: cfg.HoursPerDay,
		Days:        days,
	}

	var saved *domain.StudyPlan
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		header, err := s.plans.UpsertHeader(txCtx, plan)
		if err != nil {
			return fmt.Errorf("upsert header: %w", err)
		}
		if err := s.plans.ReplaceTasks(txCtx, header.ID, days); err != nil {
			return fmt.Errorf("replace tasks: %w", err)
		}
		header.Days = days
		saved = header
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("planner.Generate: %w", err)
	}

	s.log.InfoContext(ctx, "study plan generated",
		slog.String("user_id", userID.String()),
		slog.Int("days", len(days)))

	return saved, nil
}

// Save persists an already-built plan for the user, replacing any
// stored one. Used when a client hands back a locally held plan.
func (s *Service) Save(ctx context.Context, plan *domain.StudyPlan) (*domain.StudyPlan, error) {
	if plan == nil || plan.UserID == uuid.Nil {
		return nil, fmt.Errorf("planner.Save: %w", domain.ErrValidation)
	}

	var saved *domain.StudyPlan
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		header, err := s.plans.UpsertHeader(txCtx, plan)
		if err != nil {
			return fmt.Errorf("upsert header: %w", err)
		}
		if err := s.plans.ReplaceTasks(txCtx, header.ID, plan.Days); err != nil {
			return fmt.Errorf("replace tasks: %w", err)
		}
		header.Days = plan.Days
		saved = header
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("planner.Save: %w", err)
	}
	return saved, nil
}

// Load returns the user's stored plan. Returns ErrNotFound when the
// user has never generated one.
func (s *Service) Load(ctx context.Context, userID uuid.UUID) (*domain.StudyPlan, error) {
	plan, err := s.plans.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("planner.Load: %w", err)
	}
	return plan, nil
}

// ToggleTask flips the completion flag of one task in the user's plan
// and returns the updated task. Tasks outside the user's own plan are
// reported as ErrNotFound.
func (s *Service) ToggleTask(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	plan, err := s.plans.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("planner.ToggleTask get plan: %w", err)
	}

	task := plan.FindTask(taskID)
	if task == nil {
		return nil, domain.ErrNotFound
	}

	if err := s.plans.SetTaskDone(ctx, taskID, !task.IsDone); err != nil {
		return nil, fmt.Errorf("planner.ToggleTask set done: %w", err)
	}

	task.IsDone = !task.IsDone
	return task, nil
}

// Delete removes the user's stored plan. No-op when none exists.
func (s *Service) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.plans.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("planner.Delete: %w", err)
	}
	return nil
}

// checkLimits enforces the configured generation ceilings on top of the
// generator's own input validation.
func (s *Service) checkLimits(cfg domain.StudyConfig) error {
	var errs []domain.FieldError

	if s.cfg.MaxDurationDays > 0 && cfg.DurationDays > s.cfg.MaxDurationDays {
		errs = append(errs, domain.FieldError{
			Field:   "duration_days",
			Message: fmt.Sprintf("must be at most %d", s.cfg.MaxDurationDays),
		})
	}
	if s.cfg.MaxHoursPerDay > 0 && cfg.HoursPerDay > s.cfg.MaxHoursPerDay {
		errs = append(errs, domain.FieldError{
			Field:   "hours_per_day",
			Message: fmt.Sprintf("must be at most %g", s.cfg.MaxHoursPerDay),
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CurrentDay returns the 1-based day number of the plan for the given
// wall-clock time, clamped to plan bounds. Used by clients to pick the
// initially visible day.
func CurrentDay(plan *domain.StudyPlan, now time.Time) int {
	if plan == nil || len(plan.Days) == 0 {
		return 1
	}
	day := int(now.Sub(plan.StartDate).Hours()/24) + 1
	if day < 1 {
		return 1
	}
	if day > len(plan.Days) {
		return len(plan.Days)
	}
	return day
}
