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

// Package torikumi renders a solved schedule as a markdown bout listing in
// the layout of the official torikumi: one table per day with east and west
// columns, the top-ranked matches listed last, and optional win marks and
// running scores.
package torikumi

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/slyubomirsky/sumo-ilp/pkg/banzuke"
	"github.com/slyubomirsky/sumo-ilp/pkg/basho"
)

// Options control the optional parts of the report.
type Options struct {
	// Names substitutes wrestler names, ranks and sides for the default
	// R<i> labels. When nil, even indices are treated as the east side.
	Names []banzuke.Rikishi
	// Victors marks each bout's winner. Requires Scores.
	Victors basho.VictorMap
	// Scores adds a running (wins - losses) tally and the winner summary.
	Scores basho.ScoreTable
	// ASCII replaces the HTML circle entities with * and o.
	ASCII bool
}

type fields struct {
	name, score, mark string
}

// Write renders the schedule for the given tournament shape to w.
func Write(w io.Writer, params basho.Params, schedule basho.Assignment, opts Options) {
	byDay := make([][]basho.Pair, params.Days)
	for pair, day := range schedule {
		byDay[day] = append(byDay[day], pair)
	}
	// The torikumi list the top-ranked matches last, so sort each day in
	// reverse by the first wrestler's index.
	for _, day := range byDay {
		sort.Slice(day, func(a, b int) bool {
			if day[a].Low != day[b].Low {
				return day[a].Low > day[b].Low
			}
			return day[a].High > day[b].High
		})
	}

	var defeats [][]int
	if opts.Victors != nil {
		defeats = cumulativeDefeats(params, byDay, opts.Victors)
	}

	r := reporter{params: params, opts: opts, defeats: defeats}
	for d := 0; d < params.Days; d++ {
		fmt.Fprintf(w, "# Matchups for Day %d\n", d+1)

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"East", "West"})
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetBorders(tablewriter.Border{Left: true, Right: true})
		table.SetCenterSeparator("|")

		for _, pair := range byDay[d] {
			lowMark, highMark := r.winMarks(pair)
			east := fields{r.name(pair.Low), r.scoreIndicator(pair.Low, d), lowMark}
			west := fields{r.name(pair.High), r.scoreIndicator(pair.High, d), highMark}

			// The lower index leads only when it is actually the east-side
			// wrestler; swap the columns when the sides demand it.
			if r.eastSide(pair.High) && !r.eastSide(pair.Low) {
				east, west = west, east
			}
			table.Append([]string{
				join(east.mark, east.name, east.score),
				join(west.name, west.score, west.mark),
			})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	if opts.Scores != nil {
		r.writeSummary(w)
	}
}

type reporter struct {
	params  basho.Params
	opts    Options
	defeats [][]int
}

func (r reporter) name(i int) string {
	if r.opts.Names == nil {
		return fmt.Sprintf("R%d", i)
	}
	entry := r.opts.Names[i]
	side := "W"
	if entry.East {
		side = "E"
	}
	return fmt.Sprintf("%s%s %s", entry.Rank, side, entry.Name)
}

func (r reporter) eastSide(i int) bool {
	if r.opts.Names == nil {
		return i%2 == 0
	}
	return r.opts.Names[i].East
}

func (r reporter) winMarks(pair basho.Pair) (string, string) {
	if r.opts.Victors == nil {
		return "", ""
	}
	winStar, loseStar := "&#9675;", "&#9679;"
	if r.opts.ASCII {
		winStar, loseStar = "*", "o"
	}
	if r.opts.Victors[pair] {
		return winStar, loseStar
	}
	return loseStar, winStar
}

func (r reporter) scoreIndicator(i, day int) string {
	if r.opts.Scores == nil {
		return ""
	}
	score := fmt.Sprintf("(%d - %d)", r.opts.Scores[i][day], r.defeats[i][day])
	// Emphasize a winning record.
	if r.opts.Scores[i][day] > r.params.BoutsEach/2 {
		score = "_" + score + "_"
	}
	return score
}

func (r reporter) writeSummary(w io.Writer) {
	last := r.params.Days - 1
	best, second := -1, -1
	for i := 0; i < r.params.Wrestlers; i++ {
		if final := r.opts.Scores[i][last]; final > best {
			best = final
		}
	}
	for i := 0; i < r.params.Wrestlers; i++ {
		if final := r.opts.Scores[i][last]; final != best && final > second {
			second = final
		}
	}

	var winners, runnersUp []string
	for i := 0; i < r.params.Wrestlers; i++ {
		switch r.opts.Scores[i][last] {
		case best:
			winners = append(winners, r.name(i))
		case second:
			runnersUp = append(runnersUp, r.name(i))
		}
	}

	title := "Winner"
	if len(winners) > 1 {
		title = "Playoff"
	}
	fmt.Fprintf(w, "## %s\n%s\n", title, strings.Join(winners, ", "))

	// With multiple winners only the playoff losers would be runners-up.
	if len(winners) == 1 && second >= 0 {
		fmt.Fprintf(w, "## Runner(s)-Up\n%s\n", strings.Join(runnersUp, ", "))
	}
}

func cumulativeDefeats(params basho.Params, byDay [][]basho.Pair, victors basho.VictorMap) [][]int {
	defeats := make([][]int, params.Wrestlers)
	for i := range defeats {
		defeats[i] = make([]int, params.Days)
	}
	for d, pairs := range byDay {
		for _, pair := range pairs {
			loser := pair.Low
			if victors[pair] {
				loser = pair.High
			}
			defeats[loser][d] = 1
		}
	}
	for i := range defeats {
		for d := 1; d < params.Days; d++ {
			defeats[i][d] += defeats[i][d-1]
		}
	}
	return defeats
}

func join(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}
