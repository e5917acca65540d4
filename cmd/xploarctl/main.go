// Command xploarctl is the operations CLI for the xploar backend. It
// bundles the recurring deployment chores into subcommands: running
// migrations, probing a deployment, previewing a study plan and
// scoring an essay offline.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "xploarctl",
		Short:         "Operations CLI for the xploar backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newHealthCmd(),
		newPlanCmd(),
		newEvaluateCmd(),
		newTokensCmd(),
	)

	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
