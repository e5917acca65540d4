package domain

import (
	"time"

	"github.com/google/uuid"
)

// MockRun is a completed practice-test attempt. Append-only: rows are
// never mutated after creation.
type MockRun struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Date                time.Time
	TopicID             string
	Score               int
	TotalQuestions      int
	TimeTakenMins       int
	UsesNegativeMarking bool
}

// MockRunFilter narrows mock-run listings. Zero values mean no filtering.
type MockRunFilter struct {
	TopicID string
	Limit   int
}

// TopicStat holds the per-topic MCQ performance for a user. Each new
// result overwrites the previous one for the topic: the platform tracks
// the latest attempt, not a running total.
type TopicStat struct {
	TopicID string
	Correct int
	Total   int
}

// Accuracy returns the fraction of correct answers, 0 when no questions
// were attempted.
func (s TopicStat) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}
