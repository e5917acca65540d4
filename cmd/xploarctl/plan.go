package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/xploar/xploar-backend/internal/localstate"
	"github.com/xploar/xploar-backend/internal/store"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Study plan utilities",
	}
	cmd.AddCommand(newPlanPreviewCmd())
	return cmd
}

func newPlanPreviewCmd() *cobra.Command {
	var (
		goal     string
		start    string
		days     int
		hours    float64
		stateDir string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Generate a study plan offline and print it",
		Long: "Runs the deterministic plan generator without a backend. With\n" +
			"--state-dir the result is mirrored to a local state file, the same\n" +
			"format a client session uses.",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("parse --start: %w", err)
			}

			deps := store.Deps{Log: slog.Default()}
			if stateDir != "" {
				deps.Mirror = localstate.NewFile(stateDir)
			}
			st := store.New(deps)

			ctx := cmd.Context()
			err = st.UpdateStudyConfig(ctx, store.ConfigPatch{
				Goal:         &goal,
				StartDate:    &startDate,
				DurationDays: &days,
				HoursPerDay:  &hours,
			})
			if err != nil {
				return err
			}
			if err := st.GenerateStudyPlan(ctx); err != nil {
				return err
			}

			plan := st.Plan()
			cmd.Printf("%s: %d days, %.1f h/day, starting %s\n\n",
				goal, len(plan.Days), hours, startDate.Format("2006-01-02"))
			for _, day := range plan.Days {
				cmd.Printf("Day %d (%s), %d min\n", day.Day, day.Date.Format("Mon 02 Jan"), day.TotalMinutes())
				for _, task := range day.Tasks {
					cmd.Printf("  %-9s %-24s %3d min\n", task.Kind, task.TopicID, task.DurationMins)
				}
			}
			if stateDir != "" {
				cmd.Printf("\nstate mirrored to %s\n", localstate.NewFile(stateDir).Path())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "UPSC CSE", "preparation goal")
	cmd.Flags().StringVar(&start, "start", time.Now().Format("2006-01-02"), "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 90, "plan duration in days")
	cmd.Flags().Float64Var(&hours, "hours", 4, "study hours per day")
	cmd.Flags().StringVar(&stateDir, "state-dir", "", "directory for the local state mirror")
	return cmd
}
