// Copyright © 2025 the sumo-ilp authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/slyubomirsky/sumo-ilp/pkg/basho"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "sumo-ilp",
		Short: "Generate sumo tournament schedules with integer linear programming",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show sumo-ilp's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	// tournament shape
	root.PersistentFlags().String("division", "makuuchi", "Division preset for the tournament shape (makuuchi, juryo, makushita)")
	root.PersistentFlags().IntP("wrestlers", "N", 42, "Number of wrestlers in the division (must be even)")
	root.PersistentFlags().IntP("days", "D", 15, "Number of tournament days")
	root.PersistentFlags().Int("min-bouts", 21, "Minimum number of bouts per day")
	root.PersistentFlags().Int("max-bouts", 21, "Maximum number of bouts per day")
	root.PersistentFlags().IntP("bouts-each", "M", 15, "Number of bouts each wrestler fights in a tournament")

	// query environment
	root.PersistentFlags().Int("time", 300, "Solver time budget in seconds")
	root.PersistentFlags().String("names", "", "JSON or YAML file giving wrestler names, ranks, and sides")
	root.PersistentFlags().String("conflicts", "", "JSON or YAML file listing disallowed matchups (stablemates, blood relatives)")
	root.PersistentFlags().IntP("reserve", "k", 1, "Reserve the final k matches of the final day for the k top-ranked pairings (0 disables)")
	root.PersistentFlags().Bool("ascii", false, "Use ASCII win marks instead of HTML entities")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Generate())
	root.AddCommand(Champion())
	root.AddCommand(OptimizeScore())

	return root
}

// tournamentParams resolves the division preset and any explicit shape
// overrides into validated parameters.
func tournamentParams(flags *pflag.FlagSet) (basho.Params, error) {
	division, _ := flags.GetString("division")
	preset, ok := basho.Divisions[strings.ToLower(division)]
	if !ok {
		return basho.Params{}, fmt.Errorf("unknown division %q", division)
	}

	if flags.Changed("wrestlers") {
		preset.Wrestlers, _ = flags.GetInt("wrestlers")
	}
	if flags.Changed("days") {
		preset.Days, _ = flags.GetInt("days")
	}
	if flags.Changed("min-bouts") {
		preset.MinBouts, _ = flags.GetInt("min-bouts")
	}
	if flags.Changed("max-bouts") {
		preset.MaxBouts, _ = flags.GetInt("max-bouts")
	}
	if flags.Changed("bouts-each") {
		preset.BoutsEach, _ = flags.GetInt("bouts-each")
	}

	return basho.New(preset.Wrestlers, preset.Days, preset.MinBouts, preset.MaxBouts, preset.BoutsEach)
}
