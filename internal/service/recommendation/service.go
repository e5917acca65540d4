// Package recommendation turns a user's performance picture into
// persisted study suggestions via an external generative text endpoint.
package recommendation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/domain"
)

// maxGenerated caps how many suggestions one generation call may produce.
const maxGenerated = 3

// recRepo defines the recommendation repository interface needed by the service.
type recRepo interface {
	Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter domain.RecommendationFilter) ([]domain.Recommendation, error)
	MarkCompleted(ctx context.Context, id, userID uuid.UUID) error
}

// statRepo provides the per-topic stats the prompt is built from.
type statRepo interface {
	ListStats(ctx context.Context, userID uuid.UUID) ([]domain.TopicStat, error)
}

// textGenerator is the external generative endpoint.
type textGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service implements recommendation generation and tracking.
type Service struct {
	log   *slog.Logger
	recs  recRepo
	stats statRepo
	ai    textGenerator
}

// NewService creates a new recommendation service instance.
func NewService(logger *slog.Logger, recs recRepo, stats statRepo, ai textGenerator) *Service {
	return &Service{
		log:   logger.With("service", "recommendation"),
		recs:  recs,
		stats: stats,
		ai:    ai,
	}
}

// Generate asks the model for study suggestions based on the user's MCQ
// stats and persists what comes back. Suggestions the model returns in
// an unknown shape are skipped, not failed.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID) ([]domain.Recommendation, error) {
	stats, err := s.stats.ListStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recommendation.Generate list stats: %w", err)
	}

	raw, err := s.ai.GenerateContent(ctx, buildPrompt(stats))
	if err != nil {
		return nil, fmt.Errorf("recommendation.Generate call model: %w", err)
	}

	suggestions, err := parseSuggestions(raw)
	if err != nil {
		return nil, fmt.Errorf("recommendation.Generate parse reply: %w", err)
	}

	var created []domain.Recommendation
	for _, sg := range suggestions {
		if len(created) >= maxGenerated {
			break
		}

		recType := domain.RecommendationType(strings.ToUpper(strings.TrimSpace(sg.Type)))
		if !recType.IsValid() {
			s.log.WarnContext(ctx, "skipping suggestion with unknown type",
				slog.String("type", sg.Type))
			continue
		}
		if strings.TrimSpace(sg.Reasoning) == "" {
			continue
		}

		rec := &domain.Recommendation{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      recType,
			Reasoning: strings.TrimSpace(sg.Reasoning),
		}
		if topic := strings.TrimSpace(sg.TopicID); topic != "" {
			rec.RelatedTopicID = &topic
		}

		saved, err := s.recs.Create(ctx, rec)
		if err != nil {
			return nil, fmt.Errorf("recommendation.Generate store: %w", err)
		}
		created = append(created, *saved)
	}

	s.log.InfoContext(ctx, "recommendations generated",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(created)))

	return created, nil
}

// List returns the user's recommendations, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, filter domain.RecommendationFilter) ([]domain.Recommendation, error) {
	recs, err := s.recs.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("recommendation.List: %w", err)
	}
	return recs, nil
}

// Complete marks one of the user's recommendations as done. Completing
// an already-completed recommendation is a no-op.
func (s *Service) Complete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.recs.MarkCompleted(ctx, id, userID); err != nil {
		return fmt.Errorf("recommendation.Complete: %w", err)
	}
	return nil
}

// buildPrompt renders the user's per-topic accuracy into instructions
// the model can answer in a machine-readable way.
func buildPrompt(stats []domain.TopicStat) string {
	var b strings.Builder

	b.WriteString("You are a UPSC civil services exam mentor. ")
	if len(stats) == 0 {
		b.WriteString("The student has not attempted any MCQ practice yet.\n")
	} else {
		b.WriteString("The student's latest MCQ results per topic:\n")
		for _, st := range stats {
			fmt.Fprintf(&b, "- %s: %d/%d correct (%.0f%%)\n",
				st.TopicID, st.Correct, st.Total, st.Accuracy()*100)
		}
	}

	fmt.Fprintf(&b, `
Suggest up to %d next study actions. Respond with ONLY a JSON array, no
prose, where each element is:
{"type": "STUDY_TOPIC"|"PRACTICE_MOCKS"|"REVISE"|"READ_RESOURCE", "topic_id": "<topic or empty>", "reasoning": "<one sentence>"}
`, maxGenerated)

	return b.String()
}
