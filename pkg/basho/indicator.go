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

// LessThanIndicator returns a fresh binary variable that the model forces to
// 1 exactly when the expression a is strictly less than the constant c, and
// to 0 otherwise. It is the mechanism behind every "count how many scores
// clear a threshold" objective.
//
// The caller must supply a bound u with 0 <= a <= u and 0 <= c <= u. The
// bound is not verifiable at runtime: a u that is too small yields a
// silently wrong indicator, so justify it analytically (for scores, u is
// BoutsEach, the maximum possible score).
//
// Big-M encoding with M = u+1:
//
//	a - c <= (1-L)*(u+1) - 1
//	-L*(u+1) <= a - c
//
// If a >= c the second constraint forces L=0 and the first is slack since
// a <= u. If a < c the second constraint fails at L=0, forcing L=1, under
// which the first reduces to a - c <= -1, true. The encoding stays correct
// through c = u+1, where the indicator is constantly 1.
func LessThanIndicator(b *cpmodel.Builder, a cpmodel.LinearArgument, c, u int64) cpmodel.BoolVar {
	l := b.NewBoolVar()
	// Both constraints rearranged around the shared term a + L*(u+1).
	shifted := cpmodel.NewLinearExpr().Add(a).AddTerm(l, u+1)
	b.AddLessOrEqual(shifted, cpmodel.NewConstant(u+c))
	b.AddGreaterOrEqual(shifted, cpmodel.NewConstant(c))
	return l
}
