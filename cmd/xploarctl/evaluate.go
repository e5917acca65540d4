package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xploar/xploar-backend/internal/domain"
	"github.com/xploar/xploar-backend/internal/service/evaluation"
)

func newEvaluateCmd() *cobra.Command {
	var (
		genre     string
		question  string
		wordCount int
		timeSpent int
	)

	cmd := &cobra.Command{
		Use:   "evaluate <essay-file>",
		Short: "Score an essay file with the offline evaluator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read essay: %w", err)
			}

			result := evaluation.Evaluate(string(data), domain.EssayCriteria{
				Genre:     genre,
				Question:  question,
				WordCount: wordCount,
				TimeSpent: timeSpent,
			})

			cmd.Printf("accuracy:        %d\n", result.Accuracy)
			cmd.Printf("coverage:        %d\n", result.Coverage)
			cmd.Printf("time efficiency: %d\n", result.TimeEfficiency)
			cmd.Printf("word count:      %d\n", result.WordCount)
			cmd.Printf("\n%s\n", result.Feedback)
			if len(result.Recommendations) > 0 {
				cmd.Println("\nrecommendations:")
				for _, rec := range result.Recommendations {
					cmd.Printf("  - %s\n", rec)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "essay genre (polity, economy, ethics, ...)")
	cmd.Flags().StringVar(&question, "question", "", "the question the essay answers")
	cmd.Flags().IntVar(&wordCount, "words", 250, "expected word count")
	cmd.Flags().IntVar(&timeSpent, "time", 0, "minutes spent writing")
	return cmd
}
