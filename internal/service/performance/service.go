// Package performance tracks mock-test history and per-topic MCQ stats.
package performance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/domain"
)

// mockRunRepo defines the mock-run repository interface needed by the service.
type mockRunRepo interface {
	Create(ctx context.Context, run *domain.MockRun) (*domain.MockRun, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter domain.MockRunFilter) ([]domain.MockRun, error)
}

// statRepo defines the MCQ performance repository interface needed by the service.
type statRepo interface {
	UpsertStat(ctx context.Context, userID uuid.UUID, stat domain.TopicStat) error
	GetStat(ctx context.Context, userID uuid.UUID, topicID string) (*domain.TopicStat, error)
	ListStats(ctx context.Context, userID uuid.UUID) ([]domain.TopicStat, error)
}

// Service implements performance tracking operations.
type Service struct {
	log   *slog.Logger
	runs  mockRunRepo
	stats statRepo
}

// NewService creates a new performance service instance.
func NewService(logger *slog.Logger, runs mockRunRepo, stats statRepo) *Service {
	return &Service{
		log:   logger.With("service", "performance"),
		runs:  runs,
		stats: stats,
	}
}

// SaveMockRun appends a completed mock test to the user's history.
func (s *Service) SaveMockRun(ctx context.Context, userID uuid.UUID, input SaveMockRunInput) (*domain.MockRun, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	run := &domain.MockRun{
		ID:                  uuid.New(),
		UserID:              userID,
		Date:                date,
		TopicID:             input.TopicID,
		Score:               input.Score,
		TotalQuestions:      input.TotalQuestions,
		TimeTakenMins:       input.TimeTakenMins,
		UsesNegativeMarking: input.UsesNegativeMarking,
	}

	created, err := s.runs.Create(ctx, run)
	if err != nil {
		return nil, fmt.Errorf("performance.SaveMockRun: %w", err)
	}

	s.log.InfoContext(ctx, "mock run saved",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", input.TopicID),
		slog.Int("score", input.Score))

	return created, nil
}

// ListMockRuns returns the user's mock history, newest first.
func (s *Service) ListMockRuns(ctx context.Context, userID uuid.UUID, filter domain.MockRunFilter) ([]domain.MockRun, error) {
	runs, err := s.runs.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("performance.ListMockRuns: %w", err)
	}
	return runs, nil
}

// RecordMcqResult stores the latest MCQ attempt for a topic. Each call
// overwrites the previous stat for that topic rather than accumulating:
// the platform tracks the most recent attempt only.
func (s *Service) RecordMcqResult(ctx context.Context, userID uuid.UUID, input McqResultInput) (*domain.TopicStat, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stat := domain.TopicStat{
		TopicID: input.TopicID,
		Correct: input.Correct,
		Total:   input.Total,
	}

	if err := s.stats.UpsertStat(ctx, userID, stat); err != nil {
		return nil, fmt.Errorf("performance.RecordMcqResult: %w", err)
	}

	return &stat, nil
}

// TopicStats returns the per-topic MCQ stats for a user.
func (s *Service) TopicStats(ctx context.Context, userID uuid.UUID) ([]domain.TopicStat, error) {
	stats, err := s.stats.ListStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("performance.TopicStats: %w", err)
	}
	return stats, nil
}

// TopicStat returns one topic's stat, ErrNotFound when never attempted.
func (s *Service) TopicStat(ctx context.Context, userID uuid.UUID, topicID string) (*domain.TopicStat, error) {
	stat, err := s.stats.GetStat(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("performance.TopicStat: %w", err)
	}
	return stat, nil
}

// WeakestTopics returns up to limit topics ordered by ascending
// accuracy. Feeds the recommendation generator.
func (s *Service) WeakestTopics(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TopicStat, error) {
	stats, err := s.stats.ListStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("performance.WeakestTopics: %w", err)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Accuracy() < stats[j].Accuracy()
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}
