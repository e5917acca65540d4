package planner

import "github.com/xploar/xploar-backend/internal/domain"

// syllabus is the fixed topic catalogue task generation rotates over.
// Order matters: rotation position is derived from the day number, so
// reordering entries changes every generated plan.
var syllabus = []domain.Topic{
	{ID: "polity", Name: "Indian Polity and Governance"},
	{ID: "modern-history", Name: "Modern Indian History"},
	{ID: "geography", Name: "Indian and World Geography"},
	{ID: "economy", Name: "Indian Economy"},
	{ID: "environment", Name: "Environment and Ecology"},
	{ID: "science-tech", Name: "Science and Technology"},
	{ID: "ancient-history", Name: "Ancient and Medieval History"},
	{ID: "art-culture", Name: "Art and Culture"},
	{ID: "international-relations", Name: "International Relations"},
	{ID: "ethics", Name: "Ethics, Integrity and Aptitude"},
	{ID: "current-affairs", Name: "Current Affairs"},
	{ID: "csat", Name: "CSAT Aptitude"},
}

// Topics returns the syllabus catalogue.
func Topics() []domain.Topic {
	out := make([]domain.Topic, len(syllabus))
	copy(out, syllabus)
	return out
}

// TopicByID returns the catalogue entry with the given id, or false.
func TopicByID(id string) (domain.Topic, bool) {
	for _, t := range syllabus {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Topic{}, false
}
