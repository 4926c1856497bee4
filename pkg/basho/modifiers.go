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

import "github.com/google/or-tools/ortools/sat/go/cpmodel"

// ForbidPairings prevents each of the given matchups (stablemates or close
// relatives) from ever being scheduled by forcing their fight variables to
// zero on every day. Pairs must be canonical (Low < High). This may leave
// the model infeasible, which the solver will report as such.
func (m *Model) ForbidPairings(pairs []Pair) {
	for _, pair := range pairs {
		for d := 0; d < m.Params.Days; d++ {
			m.builder.AddEquality(m.fights[pair][d], cpmodel.NewConstant(0))
		}
	}
}

// ReserveTopMatches enforces the convention that the final day's last bouts
// are fought between the highest-ranked wrestlers, where a lower index means
// a higher rank (the caller's indexing must already reflect rank; it is not
// derived here). The greedy pairing walks indices in ascending order and
// pairs each unmatched wrestler with the first unmatched, non-forbidden
// opponent below them. If the forbidden set leaves fewer than count pairs
// available, the shortfall is silent; the reserved pairs are returned so the
// caller can tell. Each reserved pair is forced to meet on the last day,
// which may make the model infeasible.
func (m *Model) ReserveTopMatches(count int, forbidden []Pair) []Pair {
	reserved := topPairs(m.Params.Wrestlers, count, forbidden)
	last := m.Params.Days - 1
	for _, pair := range reserved {
		m.builder.AddEquality(m.fights[pair][last], cpmodel.NewConstant(1))
	}
	return reserved
}

func topPairs(n, count int, forbidden []Pair) []Pair {
	banned := make(map[Pair]struct{}, len(forbidden))
	for _, pair := range forbidden {
		banned[pair] = struct{}{}
	}

	matched := make(map[int]struct{}, 2*count)
	var pairs []Pair
	for i := 0; i < n && len(pairs) < count; i++ {
		if _, ok := matched[i]; ok {
			continue
		}
		for j := i + 1; j < n; j++ {
			if _, ok := matched[j]; ok {
				continue
			}
			if _, ok := banned[Pair{Low: i, High: j}]; ok {
				continue
			}
			pairs = append(pairs, Pair{Low: i, High: j})
			matched[i] = struct{}{}
			matched[j] = struct{}{}
			break
		}
	}
	return pairs
}
