package basho

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTopPairsGreedyOrder(t *testing.T) {
	pairs := topPairs(6, 3, nil)
	require.Equal(t, []Pair{{0, 1}, {2, 3}, {4, 5}}, pairs)
}

func TestTopPairsSkipsForbidden(t *testing.T) {
	pairs := topPairs(6, 3, []Pair{{Low: 0, High: 1}})
	require.Equal(t, []Pair{{0, 2}, {1, 3}, {4, 5}}, pairs)
}

func TestTopPairsShortfallIsSilent(t *testing.T) {
	// Only two pairs fit in four wrestlers.
	pairs := topPairs(4, 3, nil)
	require.Equal(t, []Pair{{0, 1}, {2, 3}}, pairs)

	// Forbidding everything around wrestler 0 strands both 0 and, after
	// (1, 2) is taken, wrestler 3.
	forbidden := []Pair{{0, 1}, {0, 2}, {0, 3}}
	pairs = topPairs(4, 2, forbidden)
	require.Equal(t, []Pair{{1, 2}}, pairs)
}

func TestTopPairsZeroCount(t *testing.T) {
	require.Empty(t, topPairs(6, 0, nil))
}
