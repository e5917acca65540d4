// Package store holds the live application state: the signed-in user,
// the active feature, the study plan and the performance history. All
// mutations go through Store methods, which serialize access, mirror
// the result to local storage and report failures as errors instead of
// swallowing them.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/domain"
	"github.com/xploar/xploar-backend/internal/localstate"
	"github.com/xploar/xploar-backend/internal/service/auth"
	"github.com/xploar/xploar-backend/internal/service/planner"
)

//go:generate moq -rm -out plan_gateway_mock_test.go . planGateway:planGatewayMock
//go:generate moq -rm -out auth_client_mock_test.go . authClient:authClientMock
//go:generate moq -rm -out mirror_mock_test.go . mirror:mirrorMock

type planGateway interface {
	Save(ctx context.Context, plan *domain.StudyPlan) (*domain.StudyPlan, error)
	Load(ctx context.Context, userID uuid.UUID) (*domain.StudyPlan, error)
}

type authClient interface {
	LoginWithPassword(ctx context.Context, input auth.LoginPasswordInput) (*auth.AuthResult, error)
}

type mirror interface {
	Save(s localstate.Snapshot) error
	Load() (*localstate.Snapshot, bool, error)
}

type generateFunc func(cfg domain.StudyConfig) ([]domain.PlanDay, error)

// Deps are the collaborators a Store needs. Generate may be nil, in
// which case the default plan generator is used. A nil Plans makes the
// store local-only: plans are generated and mirrored but never written
// to or read from the backend, even for a signed-in user.
type Deps struct {
	Log      *slog.Logger
	Plans    planGateway
	Auth     authClient
	Mirror   mirror
	Generate generateFunc
}

// Store is the application state container. Safe for concurrent use.
type Store struct {
	log      *slog.Logger
	plans    planGateway
	auth     authClient
	mirror   mirror
	generate generateFunc

	mu    sync.Mutex
	state state
}

type state struct {
	user           *domain.User
	activeFeature  domain.FeatureID
	studyConfig    domain.StudyConfig
	plan           *domain.StudyPlan
	visibleDay     int
	mockHistory    []domain.MockRun
	mcqPerformance map[string]domain.TopicStat
}

// New builds a Store and restores any previous session from the local
// mirror. A missing or stale mirror yields the initial onboarding state.
func New(deps Deps) *Store {
	gen := deps.Generate
	if gen == nil {
		gen = planner.Generate
	}

	s := &Store{
		log:      deps.Log,
		plans:    deps.Plans,
		auth:     deps.Auth,
		mirror:   deps.Mirror,
		generate: gen,
		state: state{
			activeFeature:  domain.FeatureOnboarding,
			mcqPerformance: make(map[string]domain.TopicStat),
		},
	}

	if deps.Mirror != nil {
		snap, ok, err := deps.Mirror.Load()
		if err != nil {
			deps.Log.Warn("store: restoring local state failed", "error", err)
		} else if ok {
			s.restore(snap)
		}
	}
	return s
}

func (s *Store) restore(snap *localstate.Snapshot) {
	s.state.user = snap.User
	if snap.ActiveFeature.IsValid() {
		s.state.activeFeature = snap.ActiveFeature
	}
	s.state.studyConfig = snap.StudyConfig
	s.state.plan = snap.StudyPlan
	s.state.visibleDay = snap.CurrentVisibleDay
	s.state.mockHistory = snap.MockHistory
	if snap.McqPerformance != nil {
		s.state.mcqPerformance = snap.McqPerformance
	}
}

// persistLocal mirrors the current state. Called with s.mu held. A
// mirror failure is logged but never fails the action that triggered
// it: local storage is a cache, not the source of truth.
func (s *Store) persistLocal() {
	if s.mirror == nil {
		return
	}

	perf := make(map[string]domain.TopicStat, len(s.state.mcqPerformance))
	for k, v := range s.state.mcqPerformance {
		perf[k] = v
	}

	snap := localstate.Snapshot{
		User:              s.state.user,
		ActiveFeature:     s.state.activeFeature,
		StudyConfig:       s.state.studyConfig,
		StudyPlan:         s.state.plan,
		CurrentVisibleDay: s.state.visibleDay,
		MockHistory:       append([]domain.MockRun(nil), s.state.mockHistory...),
		McqPerformance:    perf,
	}
	if err := s.mirror.Save(snap); err != nil {
		s.log.Warn("store: mirroring state failed", "error", err)
	}
}

// CurrentUser returns the signed-in user, nil when anonymous.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.user == nil {
		return nil
	}
	u := *s.state.user
	return &u
}

// ActiveFeature returns the feature the user is currently on.
func (s *Store) ActiveFeature() domain.FeatureID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.activeFeature
}

// StudyConfig returns the current plan-generation configuration.
func (s *Store) StudyConfig() domain.StudyConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.studyConfig
}

// Plan returns the current study plan, nil when none exists.
func (s *Store) Plan() *domain.StudyPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePlan(s.state.plan)
}

// VisibleDay returns the day number the planner view is focused on.
func (s *Store) VisibleDay() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.visibleDay
}

// MockHistory returns all recorded mock-test runs, oldest first.
func (s *Store) MockHistory() []domain.MockRun {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.MockRun(nil), s.state.mockHistory...)
}

// McqPerformance returns the per-topic MCQ stats.
func (s *Store) McqPerformance() map[string]domain.TopicStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]domain.TopicStat, len(s.state.mcqPerformance))
	for k, v := range s.state.mcqPerformance {
		out[k] = v
	}
	return out
}

func clonePlan(p *domain.StudyPlan) *domain.StudyPlan {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Days = make([]domain.PlanDay, len(p.Days))
	for i, d := range p.Days {
		cp.Days[i] = d
		cp.Days[i].Tasks = append([]domain.Task(nil), d.Tasks...)
	}
	return &cp
}
