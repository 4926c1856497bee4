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

// A Query injects extra constraints or an objective into a score-tracking
// model before it is solved.
type Query interface {
	Apply(*Model) error
}

// TieObjective selects what, if anything, to optimize about championship
// ties.
type TieObjective int

const (
	TiesNone TieObjective = iota
	TiesMaximize
	TiesMinimize
)

// ChampionQuery constrains a fixed wrestler to win the tournament.
type ChampionQuery struct {
	// Champion is the index of the wrestler to fix as (a or the) champion.
	Champion int
	// NoTies demands a sole champion: every rival finishes strictly below.
	NoTies bool
	// TargetScore fixes the champion's final score. Negative means the
	// maximum possible score, BoutsEach. Fixing the score to a constant is
	// what lets the tie objectives use the indicator encoding.
	TargetScore int
	// SecuredBy, if non-negative, is the 0-based day by which the title must
	// be mathematically secure: no combination of remaining results can deny
	// the champion.
	SecuredBy int
	// Ties optionally maximizes or minimizes the number of wrestlers tied
	// with the champion's score.
	Ties TieObjective
}

// Apply adds the championship constraints to m. The model must already be
// tracking scores.
func (q ChampionQuery) Apply(m *Model) error {
	if !m.TracksScores() {
		return ErrScoresNotTracked
	}
	p := m.Params
	if q.Champion < 0 || q.Champion >= p.Wrestlers {
		return fmt.Errorf("%w: champion index %d out of range", ErrInvalidQuery, q.Champion)
	}
	target := q.TargetScore
	if target < 0 {
		target = p.BoutsEach
	}
	if target > p.BoutsEach {
		return fmt.Errorf("%w: target score %d exceeds the %d bouts each wrestler fights",
			ErrInvalidQuery, target, p.BoutsEach)
	}
	if q.SecuredBy >= p.Days {
		return fmt.Errorf("%w: security day %d outside the %d-day tournament", ErrInvalidQuery, q.SecuredBy, p.Days)
	}

	b := m.builder
	last := p.Days - 1
	margin := int64(0)
	if q.NoTies {
		margin = 1
	}

	// The champion finishes at least level with (or strictly above) every
	// rival, at exactly the target score.
	for i := 0; i < p.Wrestlers; i++ {
		if i == q.Champion {
			continue
		}
		rival := cpmodel.NewLinearExpr().Add(m.scores[i][last]).AddConstant(margin)
		b.AddGreaterOrEqual(m.scores[q.Champion][last], rival)
	}
	b.AddEquality(m.scores[q.Champion][last], cpmodel.NewConstant(int64(target)))

	// Mathematically secure by day s: on day s the champion already meets
	// (or beats, with no ties) every rival's ceiling, their score so far
	// plus all of their still-unplayed bouts counted as wins.
	if q.SecuredBy >= 0 {
		s := q.SecuredBy
		for i := 0; i < p.Wrestlers; i++ {
			if i == q.Champion {
				continue
			}
			ceiling := cpmodel.NewLinearExpr().Add(m.scores[i][s]).AddConstant(margin)
			for d := s + 1; d < p.Days; d++ {
				for _, f := range m.bouts(i, d) {
					ceiling.Add(f)
				}
			}
			b.AddGreaterOrEqual(m.scores[q.Champion][s], ceiling)
		}
	}

	// With a variable l that is 1 iff a rival's score < the target, (1-l) is
	// 1 iff the rival is level with the champion; rivals are already
	// constrained not to finish above. Summing the complements counts ties.
	if q.Ties != TiesNone {
		obj := cpmodel.NewLinearExpr()
		for i := 0; i < p.Wrestlers; i++ {
			if i == q.Champion {
				continue
			}
			l := LessThanIndicator(b, m.scores[i][last], int64(target), int64(p.BoutsEach))
			obj.AddConstant(1).AddTerm(l, -1)
		}
		if q.Ties == TiesMaximize {
			b.Maximize(obj)
		} else {
			b.Minimize(obj)
		}
	}

	return nil
}

// ScoreRangeQuery maximizes or minimizes the number of wrestlers whose score
// on a given day clears the band's bounds.
//
// By default the objective sums two separate counts, wrestlers at or above
// Lower plus wrestlers at or below Upper, reproducing the behavior of the
// original formulation rather than counting wrestlers inside the band.
// Conjunctive switches to a true in-band count.
type ScoreRangeQuery struct {
	Lower, Upper int // inclusive score bounds
	// Day is the 0-based day the band applies to; negative means the last.
	Day int
	// Maximize the objective instead of minimizing it.
	Maximize bool
	// Conjunctive counts wrestlers satisfying both bounds at once.
	Conjunctive bool
}

// Apply sets the band objective on m. The model must already be tracking
// scores.
func (q ScoreRangeQuery) Apply(m *Model) error {
	if !m.TracksScores() {
		return ErrScoresNotTracked
	}
	p := m.Params
	day := q.Day
	if day < 0 {
		day = p.Days - 1
	}
	if day >= p.Days {
		return fmt.Errorf("%w: day %d outside the %d-day tournament", ErrInvalidQuery, day, p.Days)
	}
	if q.Lower < 0 || q.Upper > p.BoutsEach || q.Lower > q.Upper {
		return fmt.Errorf("%w: score band [%d, %d] not within [0, %d]",
			ErrInvalidQuery, q.Lower, q.Upper, p.BoutsEach)
	}

	b := m.builder
	u := int64(p.BoutsEach)
	obj := cpmodel.NewLinearExpr()
	for i := 0; i < p.Wrestlers; i++ {
		below := LessThanIndicator(b, m.scores[i][day], int64(q.Lower), u)
		// Strictly less than Upper+1 is at most Upper.
		atMost := LessThanIndicator(b, m.scores[i][day], int64(q.Upper)+1, u)

		if q.Conjunctive {
			// z = (1-below) AND atMost, linearized.
			z := b.NewBoolVar()
			notBelow := cpmodel.NewLinearExpr().AddConstant(1).AddTerm(below, -1)
			b.AddLessOrEqual(z, notBelow)
			b.AddLessOrEqual(z, atMost)
			both := cpmodel.NewLinearExpr().AddTerm(below, -1).Add(atMost)
			b.AddGreaterOrEqual(z, both)
			obj.Add(z)
		} else {
			obj.AddConstant(1).AddTerm(below, -1)
			obj.Add(atMost)
		}
	}

	if q.Maximize {
		b.Maximize(obj)
	} else {
		b.Minimize(obj)
	}
	return nil
}
