package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// sumo-ilp generate
func Generate() *cobra.Command {
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a tournament schedule with no objective",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`generate builds the base scheduling model and asks the
			solver for any schedule satisfying it: each wrestler fights
			at most once a day and the configured number of bouts over
			the tournament, no pair meets twice, and every day's bout
			count stays within the configured band.

			With --include-scores the model also picks a winner for
			every bout and tracks running scores, at the cost of extra
			variables and constraints.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			include, _ := cmd.Flags().GetBool("include-scores")
			return run(cmd, runConfig{includeScores: include})
		},
	}

	generate.Flags().BoolP("include-scores", "i", false, "Include bout outcomes and scores in the generated schedule")

	return generate
}
