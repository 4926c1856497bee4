package basho_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slyubomirsky/sumo-ilp/pkg/basho"
)

// Every status maps to exactly one disposition, independent of any model.
func TestStatusOutcomeTable(t *testing.T) {
	outcomes := map[basho.Status]basho.Outcome{
		basho.StatusOptimal:       basho.Proceed,
		basho.StatusFeasible:      basho.Warn,
		basho.StatusNoSolution:    basho.Fatal,
		basho.StatusInfeasible:    basho.Fatal,
		basho.StatusIntInfeasible: basho.Fatal,
		basho.StatusNotLoaded:     basho.Fatal,
		basho.StatusError:         basho.Fatal,
		basho.StatusUnbounded:     basho.Fatal,
	}

	for status, outcome := range outcomes {
		require.Equal(t, outcome, status.Outcome(), "status %s", status)

		if outcome == basho.Fatal {
			require.ErrorIs(t, status.Err(), basho.ErrSolver, "status %s", status)
		} else {
			require.NoError(t, status.Err(), "status %s", status)
		}
	}
}

func TestStatusStrings(t *testing.T) {
	require.Equal(t, "optimal", basho.StatusOptimal.String())
	require.Equal(t, "feasible", basho.StatusFeasible.String())
	require.Equal(t, "infeasible", basho.StatusInfeasible.String())
	require.NotEmpty(t, basho.Status(99).String())
}
