package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/xploar/xploar-backend/internal/domain"
)

// recommendationService defines the minimal interface needed by RecommendationHandler.
type recommendationService interface {
	Generate(ctx context.Context, userID uuid.UUID) ([]domain.Recommendation, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.RecommendationFilter) ([]domain.Recommendation, error)
	Complete(ctx context.Context, userID, id uuid.UUID) error
}

// RecommendationHandler serves AI study-recommendation endpoints.
type RecommendationHandler struct {
	svc recommendationService
	log *slog.Logger
}

// NewRecommendationHandler creates a RecommendationHandler.
func NewRecommendationHandler(svc recommendationService, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{svc: svc, log: logger.With("handler", "recommendation")}
}

type recommendationResponse struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	Type           string    `json:"type"`
	RelatedTopicID *string   `json:"relatedTopicId,omitempty"`
	Reasoning      string    `json:"reasoning"`
	IsCompleted    bool      `json:"isCompleted"`
}

// Generate handles POST /api/recommendations/generate.
func (h *RecommendationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	recs, err := h.svc.Generate(r.Context(), userID)
	if err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecommendationResponses(recs))
}

// List handles GET /api/recommendations?pending=true&limit=.
func (h *RecommendationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	filter := domain.RecommendationFilter{
		OnlyPending: r.URL.Query().Get("pending") == "true",
		Limit:       queryInt(r, "limit", 0),
	}

	recs, err := h.svc.List(r.Context(), userID, filter)
	if err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecommendationResponses(recs))
}

// Complete handles POST /api/recommendations/{id}/complete.
func (h *RecommendationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid recommendation id")
		return
	}

	if err := h.svc.Complete(r.Context(), userID, id); err != nil {
		handleDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toRecommendationResponses(recs []domain.Recommendation) []recommendationResponse {
	out := make([]recommendationResponse, len(recs))
	for i, rec := range recs {
		out[i] = recommendationResponse{
			ID:             rec.ID.String(),
			CreatedAt:      rec.CreatedAt,
			Type:           string(rec.Type),
			RelatedTopicID: rec.RelatedTopicID,
			Reasoning:      rec.Reasoning,
			IsCompleted:    rec.IsCompleted,
		}
	}
	return out
}
