package store

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/domain"
	"github.com/xploar/xploar-backend/internal/service/auth"
	"github.com/xploar/xploar-backend/internal/service/planner"
)

// userNamespace derives stable IDs for locally signed-in users so a
// re-sign-in with the same email maps to the same local identity.
var userNamespace = uuid.MustParse("9b1c4f2e-6a8d-4e3b-b5f0-7c2d9e4a1f68")

// SignIn establishes a local session without backend authentication.
// The user ID is derived from the email, so repeated sign-ins with the
// same address resolve to the same identity.
func (s *Store) SignIn(ctx context.Context, email, name string) error {
	if email == "" {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "email", Message: "required"},
		}}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "email", Message: "invalid format"},
		}}
	}
	if name == "" {
		name = email
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.user = &domain.User{
		ID:    uuid.NewSHA1(userNamespace, []byte(email)),
		Email: email,
		Name:  name,
	}
	s.persistLocal()
	return nil
}

// LoginWithPassword authenticates against the backend and, on success,
// adopts the returned user and restores their persisted study plan.
// A failed login leaves the state untouched.
func (s *Store) LoginWithPassword(ctx context.Context, email, password string) (*auth.AuthResult, error) {
	result, err := s.auth.LoginWithPassword(ctx, auth.LoginPasswordInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("store.LoginWithPassword: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.user = result.User
	if err := s.loadPlanLocked(ctx); err != nil {
		// The session stands even when the plan cannot be fetched.
		s.log.Warn("store: loading plan after login failed", "error", err)
	}
	s.persistLocal()
	return result, nil
}

// SignOut ends the session and returns to onboarding. Device-local
// data (study config, mock history, MCQ stats) survives sign-out.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.user = nil
	s.state.plan = nil
	s.state.visibleDay = 0
	s.state.activeFeature = domain.FeatureOnboarding
	s.persistLocal()
	return nil
}

// NavigateTo switches the active feature. Navigation is unguarded:
// any known feature is reachable regardless of auth or plan state.
func (s *Store) NavigateTo(ctx context.Context, feature domain.FeatureID) error {
	if !feature.IsValid() {
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "feature", Message: "unknown feature"},
		}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.activeFeature = feature
	s.persistLocal()
	return nil
}

// ConfigPatch is a partial study-config update. Nil fields keep their
// current value.
type ConfigPatch struct {
	Goal         *string
	StartDate    *time.Time
	DurationDays *int
	HoursPerDay  *float64
}

// UpdateStudyConfig merges the patch into the stored configuration.
// It never regenerates the plan: an existing plan stays as it is until
// GenerateStudyPlan is called again.
func (s *Store) UpdateStudyConfig(ctx context.Context, patch ConfigPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Goal != nil {
		s.state.studyConfig.Goal = *patch.Goal
	}
	if patch.StartDate != nil {
		s.state.studyConfig.StartDate = *patch.StartDate
	}
	if patch.DurationDays != nil {
		s.state.studyConfig.DurationDays = *patch.DurationDays
	}
	if patch.HoursPerDay != nil {
		s.state.studyConfig.HoursPerDay = *patch.HoursPerDay
	}
	s.persistLocal()
	return nil
}

// GenerateStudyPlan builds a plan from the current configuration,
// replaces any existing plan, focuses day 1 and switches to the
// planner view. Authenticated sessions persist the plan to the
// backend; anonymous ones keep it local.
func (s *Store) GenerateStudyPlan(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	days, err := s.generate(s.state.studyConfig)
	if err != nil {
		return fmt.Errorf("store.GenerateStudyPlan: %w", err)
	}

	plan := &domain.StudyPlan{
		ID:          uuid.New(),
		StartDate:   s.state.studyConfig.StartDate,
		HoursPerDay: s.state.studyConfig.HoursPerDay,
		Days:        days,
	}
	if s.state.user != nil {
		plan.UserID = s.state.user.ID
	}
	if s.state.user != nil && s.plans != nil {
		saved, err := s.plans.Save(ctx, plan)
		if err != nil {
			return fmt.Errorf("store.GenerateStudyPlan: persist: %w", err)
		}
		plan = saved
	}

	s.state.plan = plan
	s.state.visibleDay = 1
	s.state.activeFeature = domain.FeatureStudyPlanner
	s.persistLocal()
	return nil
}

// ToggleTaskCompletion flips the done flag of one task and persists
// the whole plan for authenticated sessions. The local flip survives
// a persistence failure; the error still reaches the caller.
func (s *Store) ToggleTaskCompletion(ctx context.Context, taskID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.plan == nil {
		return fmt.Errorf("store.ToggleTaskCompletion: no plan: %w", domain.ErrNotFound)
	}
	task := s.state.plan.FindTask(taskID)
	if task == nil {
		return fmt.Errorf("store.ToggleTaskCompletion: task %s: %w", taskID, domain.ErrNotFound)
	}

	task.IsDone = !task.IsDone
	s.persistLocal()

	if s.state.user != nil && s.plans != nil {
		if _, err := s.plans.Save(ctx, s.state.plan); err != nil {
			return fmt.Errorf("store.ToggleTaskCompletion: persist: %w", err)
		}
	}
	return nil
}

// SetVisibleDay moves the planner focus, clamped to the plan range.
func (s *Store) SetVisibleDay(ctx context.Context, day int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.plan == nil || len(s.state.plan.Days) == 0 {
		return fmt.Errorf("store.SetVisibleDay: no plan: %w", domain.ErrNotFound)
	}
	if day < 1 {
		day = 1
	}
	if n := len(s.state.plan.Days); day > n {
		day = n
	}
	s.state.visibleDay = day
	s.persistLocal()
	return nil
}

// RecordMcqResult overwrites the stat for a topic with the latest
// attempt. Only the most recent attempt per topic is kept.
func (s *Store) RecordMcqResult(ctx context.Context, topicID string, correct, total int) error {
	var errs []domain.FieldError
	if topicID == "" {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if total < 1 {
		errs = append(errs, domain.FieldError{Field: "total", Message: "must be at least 1"})
	}
	if correct < 0 || correct > total {
		errs = append(errs, domain.FieldError{Field: "correct", Message: "must be between 0 and total"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.mcqPerformance[topicID] = domain.TopicStat{
		TopicID: topicID,
		Correct: correct,
		Total:   total,
	}
	s.persistLocal()
	return nil
}

// SaveMockTest appends a run to the local history. Mock history lives
// in the mirror only; it is not written to the backend by this action.
func (s *Store) SaveMockTest(ctx context.Context, run domain.MockRun) error {
	var errs []domain.FieldError
	if run.TopicID == "" {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if run.TotalQuestions < 1 {
		errs = append(errs, domain.FieldError{Field: "total_questions", Message: "must be at least 1"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.Date.IsZero() {
		run.Date = time.Now()
	}
	if run.UserID == uuid.Nil && s.state.user != nil {
		run.UserID = s.state.user.ID
	}

	s.state.mockHistory = append(s.state.mockHistory, run)
	s.persistLocal()
	return nil
}

// PersistStudyPlan writes the current plan to the backend. It fails
// for anonymous sessions and is a no-op when no plan exists or the
// store runs without a gateway.
func (s *Store) PersistStudyPlan(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.user == nil {
		return fmt.Errorf("store.PersistStudyPlan: %w", domain.ErrUnauthorized)
	}
	if s.state.plan == nil || s.plans == nil {
		return nil
	}

	s.state.plan.UserID = s.state.user.ID
	saved, err := s.plans.Save(ctx, s.state.plan)
	if err != nil {
		return fmt.Errorf("store.PersistStudyPlan: %w", err)
	}
	s.state.plan = saved
	s.persistLocal()
	return nil
}

// LoadStudyPlan fetches the persisted plan for the current user. It is
// a no-op for anonymous sessions and when no plan is stored.
func (s *Store) LoadStudyPlan(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadPlanLocked(ctx); err != nil {
		return fmt.Errorf("store.LoadStudyPlan: %w", err)
	}
	s.persistLocal()
	return nil
}

// loadPlanLocked is LoadStudyPlan without locking or mirroring, for
// composition into other actions. Called with s.mu held.
func (s *Store) loadPlanLocked(ctx context.Context) error {
	if s.state.user == nil || s.plans == nil {
		return nil
	}

	plan, err := s.plans.Load(ctx, s.state.user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	s.state.plan = plan
	s.state.studyConfig.StartDate = plan.StartDate
	s.state.studyConfig.HoursPerDay = plan.HoursPerDay
	s.state.studyConfig.DurationDays = len(plan.Days)
	s.state.visibleDay = planner.CurrentDay(plan, time.Now())
	return nil
}
