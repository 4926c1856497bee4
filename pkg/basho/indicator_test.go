package basho_test

import (
	"testing"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	"github.com/stretchr/testify/require"

	"github.com/slyubomirsky/sumo-ilp/pkg/basho"
)

// Exhaustively check the big-M encoding over a small bound, including the
// boundary cases a=c, a=c-1, a=c+1, a=0 and a=u, plus the degenerate
// threshold c=u+1 the score-band query relies on.
func TestLessThanIndicatorExhaustive(t *testing.T) {
	const u = 10

	for a := int64(0); a <= u; a++ {
		for c := int64(0); c <= u+1; c++ {
			b := cpmodel.NewCpModelBuilder()
			v := b.NewIntVar(0, u)
			b.AddEquality(v, cpmodel.NewConstant(a))

			l := basho.LessThanIndicator(b, v, c, u)

			instance, err := b.Model()
			require.NoError(t, err)
			response, err := cpmodel.SolveCpModel(instance)
			require.NoError(t, err)
			require.Equal(t, cmpb.CpSolverStatus_OPTIMAL, response.GetStatus(),
				"a=%d c=%d", a, c)

			require.Equal(t, a < c, cpmodel.SolutionBooleanValue(response, l),
				"a=%d c=%d", a, c)
		}
	}
}
