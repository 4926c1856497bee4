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
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/slyubomirsky/sumo-ilp/pkg/banzuke"
	"github.com/slyubomirsky/sumo-ilp/pkg/basho"
	"github.com/slyubomirsky/sumo-ilp/pkg/torikumi"
)

const spinChars = 11

type runConfig struct {
	includeScores bool
	strategy      basho.Query // nil for plain generation
}

// run is the pipeline every query goes through: resolve parameters, load the
// optional roster files, build the model, apply modifiers and the query
// strategy, solve within the time budget, and render the extracted schedule.
func run(cmd *cobra.Command, cfg runConfig) error {
	flags := cmd.Flags()

	params, err := tournamentParams(flags)
	if err != nil {
		return err
	}

	var names []banzuke.Rikishi
	if path, _ := flags.GetString("names"); path != "" {
		if names, err = banzuke.LoadNames(path, params.Wrestlers); err != nil {
			return err
		}
	}
	var conflicts []basho.Pair
	if path, _ := flags.GetString("conflicts"); path != "" {
		if conflicts, err = banzuke.LoadConflicts(path, params.Wrestlers); err != nil {
			return err
		}
	}

	model := basho.NewModel(params)
	if cfg.includeScores {
		model.TrackScores()
	}
	if len(conflicts) > 0 {
		model.ForbidPairings(conflicts)
	}
	if reserve, _ := flags.GetInt("reserve"); reserve > 0 {
		reserved := model.ReserveTopMatches(reserve, conflicts)
		if len(reserved) < reserve {
			logrus.Warnf("Reserved only %d of %d top matches.", len(reserved), reserve)
		}
	}
	if cfg.strategy != nil {
		if err := cfg.strategy.Apply(model); err != nil {
			return err
		}
	}

	budget, _ := flags.GetInt("time")

	logrus.Info("Solving the schedule model...")
	s := spinner.New(spinner.CharSets[spinChars], 100*time.Millisecond)
	s.Start()
	solution, status := model.Solve(time.Duration(budget) * time.Second)
	s.Stop()
	logrus.Debugf("Solver finished with status: %s", status)

	switch status.Outcome() {
	case basho.Fatal:
		return status.Err()
	case basho.Warn:
		logrus.Warn("Solution not guaranteed optimal.")
	}

	opts := torikumi.Options{Names: names}
	opts.ASCII, _ = flags.GetBool("ascii")
	if cfg.includeScores {
		if opts.Victors, opts.Scores, err = solution.VictorsAndScores(); err != nil {
			return err
		}
	}
	torikumi.Write(os.Stdout, params, solution.Assignments(), opts)
	return nil
}
