package planner

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/domain"
)

// taskNamespace seeds deterministic task IDs. Regenerating a plan from
// the same config must produce identical task IDs so that completion
// state survives an idempotent regeneration.
var taskNamespace = uuid.MustParse("5d3f9a60-7c1e-4b8a-9f44-2e0b6d8c1a57")

// Generate maps a study configuration to a deterministic day-by-day
// plan. Each day carries one task per kind, the minutes of a day sum
// to HoursPerDay*60, and topics rotate over the syllabus catalogue so
// consecutive days cover different ground. Every task lasts at least
// one minute; when a day is shorter than one minute per kind, the
// trailing kinds are dropped for that day.
func Generate(cfg domain.StudyConfig) ([]domain.PlanDay, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	kinds := domain.TaskKinds()
	dayMinutes := int(cfg.HoursPerDay*60 + 0.5)
	if dayMinutes < 1 {
		dayMinutes = 1
	}
	if dayMinutes < len(kinds) {
		kinds = kinds[:dayMinutes]
	}

	days := make([]domain.PlanDay, 0, cfg.DurationDays)
	for day := 1; day <= cfg.DurationDays; day++ {
		tasks := make([]domain.Task, 0, len(kinds))
		for i, kind := range kinds {
			topic := syllabus[(day-1+i)%len(syllabus)]
			tasks = append(tasks, domain.Task{
				ID:           taskID(cfg.Goal, day, kind, topic.ID),
				TopicID:      topic.ID,
				Kind:         kind,
				DurationMins: splitMinutes(dayMinutes, len(kinds), i),
			})
		}
		days = append(days, domain.PlanDay{
			Day:   day,
			Date:  cfg.StartDate.AddDate(0, 0, day-1),
			Tasks: tasks,
		})
	}
	return days, nil
}

// taskID derives a stable UUID from the generation coordinates.
func taskID(goal string, day int, kind domain.TaskKind, topicID string) uuid.UUID {
	key := fmt.Sprintf("%s|%d|%s|%s", goal, day, kind, topicID)
	return uuid.NewSHA1(taskNamespace, []byte(key))
}

// splitMinutes divides total minutes into parts equal shares, handing
// the remainder one minute at a time to the earliest parts. The shares
// always sum back to total.
func splitMinutes(total, parts, idx int) int {
	share := total / parts
	if idx < total%parts {
		share++
	}
	return share
}
