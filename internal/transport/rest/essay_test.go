package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/xploar/xploar-backend/internal/config"
)

func testEssayHandler(maxBytes int) *EssayHandler {
	return NewEssayHandler(config.EvaluationConfig{MaxEssayBytes: maxBytes}, slog.Default())
}

func TestEvaluate_EmptyEssayReturnsZeroScores(t *testing.T) {
	t.Parallel()

	h := testEssayHandler(1 << 18)

	rec := postJSON(t, h.Evaluate, "/api/essays/evaluate", map[string]any{
		"essay": "",
		"criteria": map[string]any{
			"genre":     "polity",
			"question":  "Discuss the basic structure doctrine.",
			"wordCount": 250,
			"timeSpent": 20,
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp evaluateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Accuracy != 0 || resp.Coverage != 0 || resp.TimeEfficiency != 0 {
		t.Errorf("scores = %d/%d/%d, want all zero", resp.Accuracy, resp.Coverage, resp.TimeEfficiency)
	}
	if len(resp.Recommendations) == 0 {
		t.Error("expected at least one recommendation for an empty essay")
	}
}

func TestEvaluate_ScoresWithinRange(t *testing.T) {
	t.Parallel()

	h := testEssayHandler(1 << 18)

	essay := "The constitution establishes a federal structure with separation of powers.\n\n" +
		"Parliament legislates while the judiciary interprets through judicial review.\n\n" +
		"In conclusion, constitutional governance balances the organs of the state."

	rec := postJSON(t, h.Evaluate, "/api/essays/evaluate", map[string]any{
		"essay": essay,
		"criteria": map[string]any{
			"genre":     "polity",
			"question":  "Examine the separation of powers.",
			"wordCount": 200,
			"timeSpent": 10,
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp evaluateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for name, score := range map[string]int{
		"accuracy":       resp.Accuracy,
		"coverage":       resp.Coverage,
		"timeEfficiency": resp.TimeEfficiency,
	} {
		if score < 0 || score > 100 {
			t.Errorf("%s = %d, want within [0, 100]", name, score)
		}
	}
	if resp.Feedback == "" {
		t.Error("expected non-empty feedback")
	}
}

func TestEvaluate_EssayTooLarge(t *testing.T) {
	t.Parallel()

	h := testEssayHandler(64)

	rec := postJSON(t, h.Evaluate, "/api/essays/evaluate", map[string]any{
		"essay": strings.Repeat("constitution ", 100),
		"criteria": map[string]any{
			"genre": "polity",
		},
	})

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status 413, got %d", rec.Code)
	}
}
