package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/xploar/xploar-backend/internal/config"
	"github.com/xploar/xploar-backend/internal/domain"
	"github.com/xploar/xploar-backend/internal/service/evaluation"
)

// EssayHandler serves the synchronous essay evaluation endpoint. The
// scorer is deterministic, so no model call happens here.
type EssayHandler struct {
	cfg config.EvaluationConfig
	log *slog.Logger
}

// NewEssayHandler creates an EssayHandler.
func NewEssayHandler(cfg config.EvaluationConfig, logger *slog.Logger) *EssayHandler {
	return &EssayHandler{cfg: cfg, log: logger.With("handler", "essay")}
}

type evaluateRequest struct {
	Essay    string `json:"essay"`
	Criteria struct {
		Genre     string `json:"genre"`
		Question  string `json:"question"`
		WordCount int    `json:"wordCount"`
		TimeSpent int    `json:"timeSpent"`
	} `json:"criteria"`
}

type evaluateResponse struct {
	Accuracy        int      `json:"accuracy"`
	Coverage        int      `json:"coverage"`
	TimeEfficiency  int      `json:"timeEfficiency"`
	Recommendations []string `json:"recommendations"`
	Feedback        string   `json:"feedback"`
	WordCount       int      `json:"wordCount"`
}

// Evaluate handles POST /api/essays/evaluate.
func (h *EssayHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Essay) > h.cfg.MaxEssayBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "essay too large")
		return
	}

	result := evaluation.Evaluate(req.Essay, domain.EssayCriteria{
		Genre:     req.Criteria.Genre,
		Question:  req.Criteria.Question,
		WordCount: req.Criteria.WordCount,
		TimeSpent: req.Criteria.TimeSpent,
	})

	writeJSON(w, http.StatusOK, evaluateResponse{
		Accuracy:        result.Accuracy,
		Coverage:        result.Coverage,
		TimeEfficiency:  result.TimeEfficiency,
		Recommendations: result.Recommendations,
		Feedback:        result.Feedback,
		WordCount:       result.WordCount,
	})
}
