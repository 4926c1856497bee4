package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/slyubomirsky/sumo-ilp/pkg/basho"
)

// sumo-ilp opt-score
func OptimizeScore() *cobra.Command {
	optScore := &cobra.Command{
		Use:   "opt-score",
		Short: "Maximize or minimize the number of wrestlers with a score in a range",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`opt-score generates a schedule with outcomes chosen so that
			the number of wrestlers whose score on the target day clears
			the given inclusive bounds is as large (--max) or as small
			(--min) as possible.

			The objective sums two counts, wrestlers at or above the
			lower bound plus wrestlers at or below the upper bound; pass
			--in-band to instead count wrestlers satisfying both bounds
			at once.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			query := basho.ScoreRangeQuery{}
			query.Lower, _ = flags.GetInt("lower-score")
			query.Upper, _ = flags.GetInt("upper-score")
			query.Day, _ = flags.GetInt("day")
			query.Maximize, _ = flags.GetBool("max")
			query.Conjunctive, _ = flags.GetBool("in-band")

			return run(cmd, runConfig{includeScores: true, strategy: query})
		},
	}

	optScore.Flags().Bool("max", false, "Maximize the objective")
	optScore.Flags().Bool("min", false, "Minimize the objective")
	optScore.Flags().Int("lower-score", 0, "Minimum threshold for the score (inclusive)")
	optScore.Flags().Int("upper-score", 0, "Maximum threshold for the score (inclusive)")
	optScore.Flags().Int("day", -1, "Day (0-based) on which the criterion applies (default: the last day)")
	optScore.Flags().Bool("in-band", false, "Count wrestlers satisfying both bounds simultaneously")

	optScore.MarkFlagsMutuallyExclusive("max", "min")
	optScore.MarkFlagsOneRequired("max", "min")
	_ = optScore.MarkFlagRequired("lower-score")
	_ = optScore.MarkFlagRequired("upper-score")

	return optScore
}
