package basho_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slyubomirsky/sumo-ilp/pkg/basho"
)

func TestNewValidatesShape(t *testing.T) {
	_, err := basho.New(4, 3, 1, 2, 2)
	require.NoError(t, err)

	// Odd number of wrestlers.
	_, err = basho.New(5, 3, 1, 2, 2)
	require.ErrorIs(t, err, basho.ErrInvalidParams)

	// More simultaneous bouts than wrestler pairs on one day.
	_, err = basho.New(4, 3, 3, 3, 2)
	require.ErrorIs(t, err, basho.ErrInvalidParams)

	// More total bouts than distinct matchups: 4 wrestlers have 6 pairings
	// but 2 bouts a day over 4 days demands 8.
	_, err = basho.New(4, 4, 2, 2, 2)
	require.ErrorIs(t, err, basho.ErrInvalidParams)

	// Degenerate counts.
	_, err = basho.New(0, 3, 1, 2, 2)
	require.ErrorIs(t, err, basho.ErrInvalidParams)
	_, err = basho.New(4, 0, 1, 2, 2)
	require.ErrorIs(t, err, basho.ErrInvalidParams)
}

func TestDivisionPresetsAreValid(t *testing.T) {
	for name, preset := range basho.Divisions {
		_, err := basho.New(preset.Wrestlers, preset.Days, preset.MinBouts, preset.MaxBouts, preset.BoutsEach)
		require.NoError(t, err, "division %s", name)
	}
}
