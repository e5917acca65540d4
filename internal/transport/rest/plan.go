package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/domain"
	"github.com/xploar/xploar-backend/internal/service/planner"
)

// plannerService defines the minimal interface needed by PlanHandler.
type plannerService interface {
	Generate(ctx context.Context, userID uuid.UUID, cfg domain.StudyConfig) (*domain.StudyPlan, error)
	Load(ctx context.Context, userID uuid.UUID) (*domain.StudyPlan, error)
	ToggleTask(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// PlanHandler serves study-plan endpoints.
type PlanHandler struct {
	svc plannerService
	log *slog.Logger
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(svc plannerService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{svc: svc, log: logger.With("handler", "plan")}
}

type generatePlanRequest struct {
	Goal         string    `json:"goal"`
	StartDate    time.Time `json:"startDate"`
	DurationDays int       `json:"durationDays"`
	HoursPerDay  float64   `json:"hoursPerDay"`
}

type taskResponse struct {
	ID           string `json:"id"`
	TopicID      string `json:"topicId"`
	Kind         string `json:"kind"`
	DurationMins int    `json:"durationMins"`
	IsDone       bool   `json:"isDone"`
}

type planDayResponse struct {
	Day   int            `json:"day"`
	Date  time.Time      `json:"date"`
	Tasks []taskResponse `json:"tasks"`
}

type planResponse struct {
	ID          string            `json:"id"`
	StartDate   time.Time         `json:"startDate"`
	HoursPerDay float64           `json:"hoursPerDay"`
	CurrentDay  int               `json:"currentDay"`
	Days        []planDayResponse `json:"days"`
}

// Get handles GET /api/plan.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	plan, err := h.svc.Load(r.Context(), userID)
	if err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(plan))
}

// Generate handles POST /api/plan/generate. Regeneration replaces any
// existing plan for the user.
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req generatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := h.svc.Generate(r.Context(), userID, domain.StudyConfig{
		Goal:         req.Goal,
		StartDate:    req.StartDate,
		DurationDays: req.DurationDays,
		HoursPerDay:  req.HoursPerDay,
	})
	if err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlanResponse(plan))
}

// ToggleTask handles POST /api/plan/tasks/{id}/toggle.
func (h *PlanHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := h.svc.ToggleTask(r.Context(), userID, taskID)
	if err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*task))
}

// Delete handles DELETE /api/plan.
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID); err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toPlanResponse(plan *domain.StudyPlan) planResponse {
	days := make([]planDayResponse, len(plan.Days))
	for i, d := range plan.Days {
		tasks := make([]taskResponse, len(d.Tasks))
		for j, t := range d.Tasks {
			tasks[j] = toTaskResponse(t)
		}
		days[i] = planDayResponse{Day: d.Day, Date: d.Date, Tasks: tasks}
	}
	return planResponse{
		ID:          plan.ID.String(),
		StartDate:   plan.StartDate,
		HoursPerDay: plan.HoursPerDay,
		CurrentDay:  planner.CurrentDay(plan, time.Now()),
		Days:        days,
	}
}

func toTaskResponse(t domain.Task) taskResponse {
	return taskResponse{
		ID:           t.ID.String(),
		TopicID:      t.TopicID,
		Kind:         string(t.Kind),
		DurationMins: t.DurationMins,
		IsDone:       t.IsDone,
	}
}
