package basho

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
)

// Assignment maps each scheduled matchup to the day it takes place.
type Assignment map[Pair]int

// VictorMap records, for each matchup that took place, whether the
// lower-indexed wrestler won.
type VictorMap map[Pair]bool

// ScoreTable holds each wrestler's cumulative score for every day,
// indexed [wrestler][day].
type ScoreTable [][]int

// Solution wraps a solver response for extraction. It is read-only and only
// valid for the model that produced it.
type Solution struct {
	model    *Model
	response *cmpb.CpSolverResponse
}

// Assignments reads the solved fight variables into an Assignment. For each
// pair the first day with a positive value is recorded; pairs that never
// meet are omitted (the total-bouts constraint prevents that for feasible
// schedules unless the shape allows it).
func (s *Solution) Assignments() Assignment {
	p := s.model.Params
	out := make(Assignment, len(s.model.fights))
	for i := 0; i < p.Wrestlers; i++ {
		for j := i + 1; j < p.Wrestlers; j++ {
			pair := Pair{Low: i, High: j}
			for d := 0; d < p.Days; d++ {
				if cpmodel.SolutionBooleanValue(s.response, s.model.fights[pair][d]) {
					out[pair] = d
					break
				}
			}
		}
	}
	return out
}

// VictorsAndScores reads the solved winner and score variables. The winner
// flag is read on the day the pair actually met, mirroring the Assignments
// scan. Fails with ErrScoresNotTracked when the model was built without
// score tracking.
func (s *Solution) VictorsAndScores() (VictorMap, ScoreTable, error) {
	if !s.model.TracksScores() {
		return nil, nil, ErrScoresNotTracked
	}
	p := s.model.Params

	victors := make(VictorMap, len(s.model.fights))
	for i := 0; i < p.Wrestlers; i++ {
		for j := i + 1; j < p.Wrestlers; j++ {
			pair := Pair{Low: i, High: j}
			for d := 0; d < p.Days; d++ {
				if cpmodel.SolutionBooleanValue(s.response, s.model.fights[pair][d]) {
					victors[pair] = cpmodel.SolutionBooleanValue(s.response, s.model.wins[pair][d])
					break
				}
			}
		}
	}

	scores := make(ScoreTable, p.Wrestlers)
	for i := range scores {
		scores[i] = make([]int, p.Days)
		for d := range scores[i] {
			scores[i][d] = int(cpmodel.SolutionIntegerValue(s.response, s.model.scores[i][d]))
		}
	}
	return victors, scores, nil
}
