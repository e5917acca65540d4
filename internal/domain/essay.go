package domain

// EssayCriteria describes the prompt an essay answers.
type EssayCriteria struct {
	Genre     string
	Question  string
	WordCount int
	TimeSpent int // minutes
}

// EssayEvaluation is the result of the rule-based essay scorer.
// All scores are in [0, 100].
type EssayEvaluation struct {
	Accuracy        int
	Coverage        int
	TimeEfficiency  int
	Recommendations []string
	Feedback        string
	WordCount       int
}
