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

import "fmt"

// Params describes the shape of a tournament. Instances produced by New are
// validated once and trusted everywhere else; no model builder re-checks
// them.
type Params struct {
	Wrestlers int // number of wrestlers, must be even
	Days      int // number of tournament days
	MinBouts  int // lower bound of bouts per day
	MaxBouts  int // upper bound of bouts per day
	BoutsEach int // bouts each wrestler fights over the tournament
}

// Divisions are the canonical real-world tournament shapes. Makuuchi is the
// top division and the default: 42 wrestlers over 15 days with 21 bouts a
// day, each wrestler fighting 15 bouts. Juryo runs 28 wrestlers at 14 bouts
// a day, and makushita 120 wrestlers fighting only 7 bouts each, with the
// daily bout count allowed to drift between 20 and 30.
var Divisions = map[string]Params{
	"makuuchi":  {Wrestlers: 42, Days: 15, MinBouts: 21, MaxBouts: 21, BoutsEach: 15},
	"juryo":     {Wrestlers: 28, Days: 15, MinBouts: 14, MaxBouts: 14, BoutsEach: 15},
	"makushita": {Wrestlers: 120, Days: 15, MinBouts: 20, MaxBouts: 30, BoutsEach: 7},
}

// New validates a tournament shape. Perhaps not every criterion that could
// be checked, but enough to be useful.
func New(wrestlers, days, minBouts, maxBouts, boutsEach int) (Params, error) {
	p := Params{
		Wrestlers: wrestlers,
		Days:      days,
		MinBouts:  minBouts,
		MaxBouts:  maxBouts,
		BoutsEach: boutsEach,
	}

	switch {
	case wrestlers <= 0 || days <= 0:
		return p, fmt.Errorf("%w: wrestler and day counts must be positive", ErrInvalidParams)
	case wrestlers%2 != 0:
		return p, fmt.Errorf("%w: must have an even number of wrestlers, got %d", ErrInvalidParams, wrestlers)
	case minBouts > wrestlers/2:
		return p, fmt.Errorf("%w: %d bouts a day is too many for %d wrestlers", ErrInvalidParams, minBouts, wrestlers)
	case minBouts*days > wrestlers*(wrestlers-1)/2:
		// N choose 2 distinct pairings is the hard ceiling on total bouts.
		return p, fmt.Errorf("%w: %d total bouts exceeds the %d possible matchups",
			ErrInvalidParams, minBouts*days, wrestlers*(wrestlers-1)/2)
	}

	return p, nil
}
