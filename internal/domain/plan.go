package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskKind is one of the four pedagogical modes a task can take.
type TaskKind string

const (
	TaskKindRead     TaskKind = "READ"
	TaskKindPractice TaskKind = "PRACTICE"
	TaskKindExplain  TaskKind = "EXPLAIN"
	TaskKindRecall   TaskKind = "RECALL"
)

func (k TaskKind) String() string { return string(k) }

// IsValid returns true if the kind is a known value.
func (k TaskKind) IsValid() bool {
	switch k {
	case TaskKindRead, TaskKindPractice, TaskKindExplain, TaskKindRecall:
		return true
	}
	return false
}

// TaskKinds lists all kinds in the order they appear within a day.
func TaskKinds() []TaskKind {
	return []TaskKind{TaskKindRead, TaskKindPractice, TaskKindExplain, TaskKindRecall}
}

// StudyConfig is the user's plan-generation configuration.
// Regenerating a plan from the same config is idempotent.
type StudyConfig struct {
	Goal         string
	StartDate    time.Time
	DurationDays int
	HoursPerDay  float64
}

// Validate checks the configuration against generator input constraints.
func (c StudyConfig) Validate() error {
	var errs []FieldError

	if c.DurationDays < 1 {
		errs = append(errs, FieldError{Field: "duration_days", Message: "must be at least 1"})
	}
	if c.HoursPerDay <= 0 {
		errs = append(errs, FieldError{Field: "hours_per_day", Message: "must be greater than 0"})
	}
	if c.StartDate.IsZero() {
		errs = append(errs, FieldError{Field: "start_date", Message: "required"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Task is a single study activity within a plan day.
// Task IDs are globally unique and stable across persistence round-trips.
type Task struct {
	ID           uuid.UUID
	TopicID      string
	Kind         TaskKind
	DurationMins int
	IsDone       bool
}

// PlanDay is one day of a study plan. Day numbers are contiguous
// 1-based integers matching the configured duration.
type PlanDay struct {
	Day   int
	Date  time.Time
	Tasks []Task
}

// TotalMinutes returns the summed duration of all tasks in the day.
func (d PlanDay) TotalMinutes() int {
	total := 0
	for _, t := range d.Tasks {
		total += t.DurationMins
	}
	return total
}

// StudyPlan is the persisted plan: one per user, header plus ordered days.
type StudyPlan struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	StartDate   time.Time
	HoursPerDay float64
	Days        []PlanDay
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FindTask returns the task with the given id, searching all days.
func (p *StudyPlan) FindTask(taskID uuid.UUID) *Task {
	for di := range p.Days {
		for ti := range p.Days[di].Tasks {
			if p.Days[di].Tasks[ti].ID == taskID {
				return &p.Days[di].Tasks[ti]
			}
		}
	}
	return nil
}

// Topic is an entry in the fixed syllabus catalogue tasks rotate over.
type Topic struct {
	ID   string
	Name string
}
