// Package evaluation scores essays with deterministic textual
// heuristics. It never calls out to a network service: the rest of the
// system assumes scoring is synchronous and repeatable.
package evaluation

import (
	"fmt"
	"strings"

	"github.com/xploar/xploar-backend/internal/domain"
)

const (
	maxLexicalScore   = 40
	maxStructureScore = 60

	// Writing-pace target: 200 words in 15 minutes.
	targetWords   = 200.0
	targetMinutes = 15.0

	maxRecommendations = 5
)

// conclusionMarkers signal a closing paragraph.
var conclusionMarkers = []string{
	"in conclusion", "to conclude", "to sum up", "in sum", "overall",
	"thus", "therefore", "hence", "going forward", "way forward",
}

// stopwords are skipped when decomposing the question into keywords.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "what": true, "how": true, "why": true,
	"are": true, "was": true, "were": true, "has": true, "have": true,
	"its": true, "their": true, "does": true, "can": true, "into": true,
	"discuss": true, "examine": true, "explain": true, "describe": true,
	"critically": true, "comment": true, "elaborate": true, "analyse": true,
}

// Evaluate scores an essay against the prompt criteria. It is total:
// any input, including an empty essay, yields a well-formed result.
func Evaluate(essay string, c domain.EssayCriteria) domain.EssayEvaluation {
	words := tokenize(essay)
	wordCount := len(words)

	if wordCount == 0 {
		return domain.EssayEvaluation{
			Recommendations: []string{"Write a complete response before submitting for evaluation."},
			Feedback:        "No essay text was submitted, so no scores could be assigned.",
		}
	}

	wordSet := make(map[string]bool, wordCount)
	for _, w := range words {
		wordSet[w] = true
	}

	lexical := lexicalScore(wordSet, c.Genre)
	structure := structureScore(essay)
	accuracy := lexical + structure
	if accuracy > 100 {
		accuracy = 100
	}

	coverage := coverageScore(wordSet, c.Question)
	timeEff := timeEfficiencyScore(wordCount, c.TimeSpent)

	return domain.EssayEvaluation{
		Accuracy:        accuracy,
		Coverage:        coverage,
		TimeEfficiency:  timeEff,
		Recommendations: recommend(c, lexical, structure, coverage, timeEff, wordCount),
		Feedback:        feedback(accuracy, coverage, timeEff, wordCount),
		WordCount:       wordCount,
	}
}

// tokenize lowercases the text and strips everything but letters and
// digits, so punctuation never hides a keyword match.
func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, text)
	return strings.Fields(cleaned)
}

// lexicalScore rewards overlap with the genre lexicon, up to 40 points.
func lexicalScore(wordSet map[string]bool, genre string) int {
	lexicon := lexiconFor(strings.ToLower(strings.TrimSpace(genre)))

	matched := 0
	for _, term := range lexicon {
		if wordSet[term] {
			matched++
		}
	}
	if len(lexicon) == 0 {
		return 0
	}

	score := matched * maxLexicalScore * 2 / len(lexicon)
	if score > maxLexicalScore {
		score = maxLexicalScore
	}
	return score
}

// structureScore checks for intro, developed body and conclusion, up
// to 60 points split evenly across the three.
func structureScore(essay string) int {
	paragraphs := splitParagraphs(essay)

	score := 0
	if len(paragraphs) >= 1 && len(strings.Fields(paragraphs[0])) >= 20 {
		score += 20 // substantial opening paragraph
	}
	if len(paragraphs) >= 3 {
		score += 20 // body developed across multiple paragraphs
	}
	if len(paragraphs) >= 2 && hasConclusion(paragraphs[len(paragraphs)-1]) {
		score += 20
	}
	return score
}

func splitParagraphs(essay string) []string {
	var out []string
	for _, p := range strings.Split(essay, "\n\n") {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func hasConclusion(paragraph string) bool {
	lower := strings.ToLower(paragraph)
	for _, marker := range conclusionMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// coverageScore decomposes the question into clauses and reports the
// percentage whose keywords appear in the essay.
func coverageScore(wordSet map[string]bool, question string) int {
	clauses := splitClauses(question)
	if len(clauses) == 0 {
		return 0
	}

	covered := 0
	for _, clause := range clauses {
		keywords := clauseKeywords(clause)
		if len(keywords) == 0 {
			covered++ // nothing substantive to cover
			continue
		}
		for _, kw := range keywords {
			if wordSet[kw] {
				covered++
				break
			}
		}
	}
	return covered * 100 / len(clauses)
}

func splitClauses(question string) []string {
	parts := strings.FieldsFunc(question, func(r rune) bool {
		return r == ',' || r == ';' || r == '?' || r == '.'
	})
	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func clauseKeywords(clause string) []string {
	var out []string
	for _, w := range tokenize(clause) {
		if len(w) > 3 && !stopwords[w] {
			out = append(out, w)
		}
	}
	return out
}

// timeEfficiencyScore compares writing pace against the 200-words-in-
// 15-minutes target, with a bonus for finishing within the target time.
func timeEfficiencyScore(wordCount, timeSpentMins int) int {
	if timeSpentMins <= 0 {
		return 0
	}

	targetWPM := targetWords / targetMinutes
	wpm := float64(wordCount) / float64(timeSpentMins)

	score := int(wpm / targetWPM * 80)
	if score > 80 {
		score = 80
	}
	if timeSpentMins <= int(targetMinutes) {
		score += 20
	}
	if score > 100 {
		score = 100
	}
	return score
}

// recommend produces up to five genre- and score-conditioned pointers,
// worst gaps first.
func recommend(c domain.EssayCriteria, lexical, structure, coverage, timeEff, wordCount int) []string {
	var recs []string

	genre := strings.ToLower(strings.TrimSpace(c.Genre))
	if lexical < maxLexicalScore/2 {
		if _, known := genreLexicons[genre]; known {
			recs = append(recs, fmt.Sprintf("Use more %s-specific terminology to anchor your arguments.", genre))
		} else {
			recs = append(recs, "Strengthen your analytical vocabulary with connective and evaluative terms.")
		}
	}
	if structure < maxStructureScore {
		recs = append(recs, "Structure the essay into a clear introduction, developed body paragraphs and a conclusion.")
	}
	if coverage < 60 {
		recs = append(recs, "Address every part of the question; some clauses are not reflected in your answer.")
	}
	if timeEff < 50 {
		recs = append(recs, "Practice timed writing to raise your pace toward 200 words in 15 minutes.")
	}
	if c.WordCount > 0 && wordCount < c.WordCount {
		recs = append(recs, fmt.Sprintf("Expand the answer toward the expected %d words (currently %d).", c.WordCount, wordCount))
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// feedback renders a short templated narrative from the sub-scores.
func feedback(accuracy, coverage, timeEff, wordCount int) string {
	return fmt.Sprintf(
		"Your %d-word essay scored %d/100 on content accuracy (%s), covered %d%% of the question's components and earned %d/100 for time efficiency.",
		wordCount, accuracy, band(accuracy), coverage, timeEff,
	)
}

func band(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "developing"
	default:
		return "needs significant work"
	}
}
