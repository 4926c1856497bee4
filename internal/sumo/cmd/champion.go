package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/slyubomirsky/sumo-ilp/pkg/basho"
)

// sumo-ilp champ
func Champion() *cobra.Command {
	champ := &cobra.Command{
		Use:   "champ",
		Short: "Generate a schedule where a chosen wrestler wins the tournament",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`champ fixes a wrestler as (at least one of) the tournament
			champion(s) and generates a schedule of bouts and outcomes
			consistent with that.

			The champion's winning score defaults to winning every bout
			and can be fixed lower with --score. With --secure the title
			must be mathematically decided by the given day: no rival
			can catch up even by winning all their remaining bouts.

			--no-ties demands a sole champion, while --max-tie and
			--min-tie ask the solver to maximize or minimize the number
			of wrestlers tied for the championship.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			query := basho.ChampionQuery{}
			query.Champion, _ = flags.GetInt("idx")
			query.TargetScore, _ = flags.GetInt("score")
			query.SecuredBy, _ = flags.GetInt("secure")
			query.NoTies, _ = flags.GetBool("no-ties")
			if maxTie, _ := flags.GetBool("max-tie"); maxTie {
				query.Ties = basho.TiesMaximize
			}
			if minTie, _ := flags.GetBool("min-tie"); minTie {
				query.Ties = basho.TiesMinimize
			}

			return run(cmd, runConfig{includeScores: true, strategy: query})
		},
	}

	champ.Flags().Int("idx", 0, "Index of the wrestler to fix as champion")
	champ.Flags().Int("score", -1, "Winning score for the champion (default: bouts-each)")
	champ.Flags().Int("secure", -1, "Day (0-based) by which the championship is mathematically secure")
	champ.Flags().Bool("no-ties", false, "Demand a single champion, no playoff")
	champ.Flags().Bool("max-tie", false, "Maximize the number of wrestlers tied for the championship")
	champ.Flags().Bool("min-tie", false, "Minimize the number of wrestlers tied for the championship")
	champ.MarkFlagsMutuallyExclusive("no-ties", "max-tie", "min-tie")

	return champ
}
