package recommendation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// suggestion is one element of the model's JSON reply.
type suggestion struct {
	Type      string `json:"type"`
	TopicID   string `json:"topic_id"`
	Reasoning string `json:"reasoning"`
}

// parseSuggestions extracts the JSON array from a model reply. Models
// routinely wrap JSON in markdown fences or surround it with prose, so
// the parser cuts from the first '[' to the last ']'.
func parseSuggestions(raw string) ([]suggestion, error) {
	start := strings.IndexByte(raw, '[')
	end := strings.LastIndexByte(raw, ']')
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in model reply")
	}

	var out []suggestion
	if err := json.Unmarshal([]byte(raw[start:end+1]), &out); err != nil {
		return nil, fmt.Errorf("decode model reply: %w", err)
	}
	return out, nil
}
