package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/domain"
	"github.com/xploar/xploar-backend/internal/service/performance"
)

// performanceService defines the minimal interface needed by PerformanceHandler.
type performanceService interface {
	SaveMockRun(ctx context.Context, userID uuid.UUID, input performance.SaveMockRunInput) (*domain.MockRun, error)
	ListMockRuns(ctx context.Context, userID uuid.UUID, filter domain.MockRunFilter) ([]domain.MockRun, error)
	RecordMcqResult(ctx context.Context, userID uuid.UUID, input performance.McqResultInput) (*domain.TopicStat, error)
	TopicStats(ctx context.Context, userID uuid.UUID) ([]domain.TopicStat, error)
	WeakestTopics(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TopicStat, error)
}

// PerformanceHandler serves mock-test and MCQ performance endpoints.
type PerformanceHandler struct {
	svc performanceService
	log *slog.Logger
}

// NewPerformanceHandler creates a PerformanceHandler.
func NewPerformanceHandler(svc performanceService, logger *slog.Logger) *PerformanceHandler {
	return &PerformanceHandler{svc: svc, log: logger.With("handler", "performance")}
}

type mockRunRequest struct {
	Date                time.Time `json:"date"`
	TopicID             string    `json:"topicId"`
	Score               int       `json:"score"`
	TotalQuestions      int       `json:"totalQuestions"`
	TimeTakenMins       int       `json:"timeTakenMins"`
	UsesNegativeMarking bool      `json:"usesNegativeMarking"`
}

type mockRunResponse struct {
	ID                  string    `json:"id"`
	Date                time.Time `json:"date"`
	TopicID             string    `json:"topicId"`
	Score               int       `json:"score"`
	TotalQuestions      int       `json:"totalQuestions"`
	TimeTakenMins       int       `json:"timeTakenMins"`
	UsesNegativeMarking bool      `json:"usesNegativeMarking"`
}

type mcqResultRequest struct {
	TopicID string `json:"topicId"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

type topicStatResponse struct {
	TopicID  string  `json:"topicId"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

// SaveMockRun handles POST /api/mocks.
func (h *PerformanceHandler) SaveMockRun(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req mockRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	run, err := h.svc.SaveMockRun(r.Context(), userID, performance.SaveMockRunInput{
		Date:                req.Date,
		TopicID:             req.TopicID,
		Score:               req.Score,
		TotalQuestions:      req.TotalQuestions,
		TimeTakenMins:       req.TimeTakenMins,
		UsesNegativeMarking: req.UsesNegativeMarking,
	})
	if err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMockRunResponse(*run))
}

// ListMockRuns handles GET /api/mocks?topicId=&limit=.
func (h *PerformanceHandler) ListMockRuns(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	filter := domain.MockRunFilter{
		TopicID: r.URL.Query().Get("topicId"),
		Limit:   queryInt(r, "limit", 0),
	}

	runs, err := h.svc.ListMockRuns(r.Context(), userID, filter)
	if err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	out := make([]mockRunResponse, len(runs))
	for i, run := range runs {
		out[i] = toMockRunResponse(run)
	}
	writeJSON(w, http.StatusOK, out)
}

// RecordMcq handles POST /api/performance/mcq. A repeat result for the
// same topic replaces the previous one.
func (h *PerformanceHandler) RecordMcq(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req mcqResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stat, err := h.svc.RecordMcqResult(r.Context(), userID, performance.McqResultInput{
		TopicID: req.TopicID,
		Correct: req.Correct,
		Total:   req.Total,
	})
	if err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicStatResponse(*stat))
}

// Stats handles GET /api/performance.
func (h *PerformanceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.TopicStats(r.Context(), userID)
	if err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	out := make([]topicStatResponse, len(stats))
	for i, stat := range stats {
		out[i] = toTopicStatResponse(stat)
	}
	writeJSON(w, http.StatusOK, out)
}

// WeakestTopics handles GET /api/performance/weakest?limit=.
func (h *PerformanceHandler) WeakestTopics(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.WeakestTopics(r.Context(), userID, queryInt(r, "limit", 3))
	if err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	out := make([]topicStatResponse, len(stats))
	for i, stat := range stats {
		out[i] = toTopicStatResponse(stat)
	}
	writeJSON(w, http.StatusOK, out)
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func toMockRunResponse(run domain.MockRun) mockRunResponse {
	return mockRunResponse{
		ID:                  run.ID.String(),
		Date:                run.Date,
		TopicID:             run.TopicID,
		Score:               run.Score,
		TotalQuestions:      run.TotalQuestions,
		TimeTakenMins:       run.TimeTakenMins,
		UsesNegativeMarking: run.UsesNegativeMarking,
	}
}

func toTopicStatResponse(stat domain.TopicStat) topicStatResponse {
	return topicStatResponse{
		TopicID:  stat.TopicID,
		Correct:  stat.Correct,
		Total:    stat.Total,
		Accuracy: stat.Accuracy(),
	}
}
