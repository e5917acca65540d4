package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationType classifies what a recommendation asks the user to do.
type RecommendationType string

const (
	RecommendationStudyTopic    RecommendationType = "STUDY_TOPIC"
	RecommendationPracticeMocks RecommendationType = "PRACTICE_MOCKS"
	RecommendationRevise        RecommendationType = "REVISE"
	RecommendationReadResource  RecommendationType = "READ_RESOURCE"
)

func (t RecommendationType) String() string { return string(t) }

// IsValid returns true if the type is a known value.
func (t RecommendationType) IsValid() bool {
	switch t {
	case RecommendationStudyTopic, RecommendationPracticeMocks,
		RecommendationRevise, RecommendationReadResource:
		return true
	}
	return false
}

// RecommendationFilter narrows recommendation listings. Zero values
// mean no filtering.
type RecommendationFilter struct {
	OnlyPending bool
	Limit       int
}

// Recommendation is a study suggestion produced by the external
// recommendation generator. IsCompleted flips once and stays set.
type Recommendation struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	CreatedAt         time.Time
	Type              RecommendationType
	RelatedTopicID    *string
	RelatedResourceID *string
	Reasoning         string
	IsCompleted       bool
}
