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

package basho

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

// Pair identifies a matchup between two wrestlers. Pairs are canonical:
// Low < High, and the model only ever allocates variables for the canonical
// orientation. The lower triangle is never populated.
type Pair struct {
	Low, High int
}

func canon(i, j int) Pair {
	if i < j {
		return Pair{Low: i, High: j}
	}
	return Pair{Low: j, High: i}
}

// Model holds the variable scaffold for one query. A model is built once,
// solved once and then read; it is never shared or reused across queries.
type Model struct {
	Params Params

	builder *cpmodel.Builder
	fights  map[Pair][]cpmodel.BoolVar // day-indexed, canonical pairs only
	wins    map[Pair][]cpmodel.BoolVar // nil until TrackScores
	scores  [][]cpmodel.IntVar         // [wrestler][day], nil until TrackScores
}

// NewModel allocates the fight variables and the base feasibility
// constraints for the given tournament shape:
//
//   - each wrestler fights at most once a day,
//   - each matchup happens at most once,
//   - between MinBouts and MaxBouts bouts are scheduled each day,
//   - each wrestler fights exactly BoutsEach bouts overall.
//
// No objective is set; on its own this is a pure feasibility problem.
func NewModel(p Params) *Model {
	b := cpmodel.NewCpModelBuilder()
	m := &Model{
		Params:  p,
		builder: b,
		fights:  make(map[Pair][]cpmodel.BoolVar, p.Wrestlers*(p.Wrestlers-1)/2),
	}

	for i := 0; i < p.Wrestlers; i++ {
		for j := i + 1; j < p.Wrestlers; j++ {
			vars := make([]cpmodel.BoolVar, p.Days)
			for d := range vars {
				vars[d] = b.NewBoolVar().WithName(fmt.Sprintf("f_%d_%d_%d", i, j, d))
			}
			m.fights[Pair{Low: i, High: j}] = vars
		}
	}

	for i := 0; i < p.Wrestlers; i++ {
		total := cpmodel.NewLinearExpr()
		for d := 0; d < p.Days; d++ {
			day := cpmodel.NewLinearExpr()
			for _, f := range m.bouts(i, d) {
				day.Add(f)
				total.Add(f)
			}
			b.AddLessOrEqual(day, cpmodel.NewConstant(1))
		}
		b.AddEquality(total, cpmodel.NewConstant(int64(p.BoutsEach)))
	}

	for i := 0; i < p.Wrestlers; i++ {
		for j := i + 1; j < p.Wrestlers; j++ {
			meetings := cpmodel.NewLinearExpr()
			for _, f := range m.fights[Pair{Low: i, High: j}] {
				meetings.Add(f)
			}
			b.AddLessOrEqual(meetings, cpmodel.NewConstant(1))
		}
	}

	for d := 0; d < p.Days; d++ {
		day := cpmodel.NewLinearExpr()
		for i := 0; i < p.Wrestlers; i++ {
			for j := i + 1; j < p.Wrestlers; j++ {
				day.Add(m.fights[Pair{Low: i, High: j}][d])
			}
		}
		b.AddGreaterOrEqual(day, cpmodel.NewConstant(int64(p.MinBouts)))
		b.AddLessOrEqual(day, cpmodel.NewConstant(int64(p.MaxBouts)))
	}

	return m
}

// bouts returns every fight variable involving wrestler i on day d,
// regardless of which side of the canonical pair i sits on.
func (m *Model) bouts(i, d int) []cpmodel.BoolVar {
	out := make([]cpmodel.BoolVar, 0, m.Params.Wrestlers-1)
	for j := 0; j < m.Params.Wrestlers; j++ {
		if j == i {
			continue
		}
		out = append(out, m.fights[canon(i, j)][d])
	}
	return out
}

// TrackScores extends the model with winner and cumulative-score variables.
// For every fight variable a winner variable on the same (pair, day) key is
// constrained w <= f: a bout that does not happen cannot be won, and when it
// does happen w=1 means the lower-indexed wrestler won. Scores follow the
// recurrence
//
//	score[i][0] = wins(i, 0)
//	score[i][d] = score[i][d-1] + wins(i, d)
//
// where wins(i, d) sums (f[j][i][d] - w[j][i][d]) over opponents j < i and
// w[i][j][d] over opponents j > i. Both terms are 0 or 1 given w <= f, so
// the sum is an exact win count. TrackScores is idempotent.
func (m *Model) TrackScores() {
	if m.scores != nil {
		return
	}
	p := m.Params
	b := m.builder

	m.wins = make(map[Pair][]cpmodel.BoolVar, len(m.fights))
	for i := 0; i < p.Wrestlers; i++ {
		for j := i + 1; j < p.Wrestlers; j++ {
			pair := Pair{Low: i, High: j}
			vars := make([]cpmodel.BoolVar, p.Days)
			for d := range vars {
				vars[d] = b.NewBoolVar().WithName(fmt.Sprintf("w_%d_%d_%d", i, j, d))
				b.AddLessOrEqual(vars[d], m.fights[pair][d])
			}
			m.wins[pair] = vars
		}
	}

	m.scores = make([][]cpmodel.IntVar, p.Wrestlers)
	for i := range m.scores {
		m.scores[i] = make([]cpmodel.IntVar, p.Days)
		for d := range m.scores[i] {
			m.scores[i][d] = b.NewIntVar(0, int64(p.BoutsEach)).WithName(fmt.Sprintf("s_%d_%d", i, d))
		}
	}

	for i := 0; i < p.Wrestlers; i++ {
		for d := 0; d < p.Days; d++ {
			wins := cpmodel.NewLinearExpr()
			for j := 0; j < i; j++ {
				pair := Pair{Low: j, High: i}
				wins.Add(m.fights[pair][d]).AddTerm(m.wins[pair][d], -1)
			}
			for j := i + 1; j < p.Wrestlers; j++ {
				wins.Add(m.wins[Pair{Low: i, High: j}][d])
			}
			if d > 0 {
				wins.Add(m.scores[i][d-1])
			}
			b.AddEquality(m.scores[i][d], wins)
		}
	}
}

// TracksScores reports whether TrackScores has been called.
func (m *Model) TracksScores() bool {
	return m.scores != nil
}
