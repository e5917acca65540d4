package performance

import (
	"time"

	"github.com/xploar/xploar-backend/internal/domain"
)

// SaveMockRunInput holds parameters for recording a mock test.
type SaveMockRunInput struct {
	Date                time.Time // zero means "now"
	TopicID             string
	Score               int
	TotalQuestions      int
	TimeTakenMins       int
	UsesNegativeMarking bool
}

// Validate validates the mock-run input.
func (i SaveMockRunInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == "" {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.TotalQuestions < 1 {
		errs = append(errs, domain.FieldError{Field: "total_questions", Message: "must be at least 1"})
	}
	// Negative scores are legal under negative marking.
	if i.Score < 0 && !i.UsesNegativeMarking {
		errs = append(errs, domain.FieldError{Field: "score", Message: "must not be negative"})
	}
	if i.TimeTakenMins < 0 {
		errs = append(errs, domain.FieldError{Field: "time_taken_mins", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// McqResultInput holds parameters for recording an MCQ attempt.
type McqResultInput struct {
	TopicID string
	Correct int
	Total   int
}

// Validate validates the MCQ result input.
func (i McqResultInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == "" {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.Total < 1 {
		errs = append(errs, domain.FieldError{Field: "total", Message: "must be at least 1"})
	}
	if i.Correct < 0 {
		errs = append(errs, domain.FieldError{Field: "correct", Message: "must not be negative"})
	} else if i.Total >= 1 && i.Correct > i.Total {
		errs = append(errs, domain.FieldError{Field: "correct", Message: "must not exceed total"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
