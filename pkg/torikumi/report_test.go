package torikumi_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slyubomirsky/sumo-ilp/pkg/banzuke"
	"github.com/slyubomirsky/sumo-ilp/pkg/basho"
	"github.com/slyubomirsky/sumo-ilp/pkg/torikumi"
)

var reportParams = basho.Params{Wrestlers: 4, Days: 2, MinBouts: 2, MaxBouts: 2, BoutsEach: 2}

// Two days, full card each day.
var reportSchedule = basho.Assignment{
	{Low: 0, High: 1}: 0,
	{Low: 2, High: 3}: 0,
	{Low: 0, High: 2}: 1,
	{Low: 1, High: 3}: 1,
}

func TestWritePlainSchedule(t *testing.T) {
	var out strings.Builder
	torikumi.Write(&out, reportParams, reportSchedule, torikumi.Options{})
	report := out.String()

	require.Contains(t, report, "# Matchups for Day 1")
	require.Contains(t, report, "# Matchups for Day 2")
	require.Contains(t, report, "East")
	require.Contains(t, report, "West")
	for _, label := range []string{"R0", "R1", "R2", "R3"} {
		require.Contains(t, report, label)
	}
	require.NotContains(t, report, "## Winner")
}

func TestWriteListsTopMatchesLast(t *testing.T) {
	var out strings.Builder
	torikumi.Write(&out, reportParams, reportSchedule, torikumi.Options{})
	report := out.String()

	// Within day 1, the (2, 3) bout comes before the (0, 1) bout.
	day := report[:strings.Index(report, "Day 2")]
	require.Less(t, strings.Index(day, "R2"), strings.Index(day, "R0"))
}

func TestWriteWithScores(t *testing.T) {
	// Wrestler 0 wins both bouts; 3 beats 2 and loses to 1.
	victors := basho.VictorMap{
		{Low: 0, High: 1}: true,
		{Low: 2, High: 3}: false,
		{Low: 0, High: 2}: true,
		{Low: 1, High: 3}: true,
	}
	scores := basho.ScoreTable{
		{1, 2}, // wrestler 0: champion
		{0, 1},
		{0, 0},
		{1, 1},
	}

	var out strings.Builder
	torikumi.Write(&out, reportParams, reportSchedule, torikumi.Options{
		Victors: victors,
		Scores:  scores,
		ASCII:   true,
	})
	report := out.String()

	require.Contains(t, report, "## Winner")
	require.Contains(t, report, "R0")
	require.Contains(t, report, "## Runner(s)-Up")
	// Wrestler 0 finished 2-0 with a winning record, hence emphasized.
	require.Contains(t, report, "_(2 - 0)_")
	// ASCII marks instead of HTML entities.
	require.Contains(t, report, "*")
	require.NotContains(t, report, "&#9675;")
}

func TestWriteUnicodeMarksByDefault(t *testing.T) {
	victors := basho.VictorMap{
		{Low: 0, High: 1}: true,
		{Low: 2, High: 3}: false,
		{Low: 0, High: 2}: true,
		{Low: 1, High: 3}: true,
	}
	scores := basho.ScoreTable{{1, 2}, {0, 1}, {0, 0}, {1, 1}}

	var out strings.Builder
	torikumi.Write(&out, reportParams, reportSchedule, torikumi.Options{Victors: victors, Scores: scores})

	require.Contains(t, out.String(), "&#9675;")
	require.Contains(t, out.String(), "&#9679;")
}

func TestWriteWithNamesAndSides(t *testing.T) {
	names := []banzuke.Rikishi{
		{Name: "Hakkiyoi", Rank: "Y1", East: false},
		{Name: "Nokotta", Rank: "O1", East: true},
		{Name: "Matta", Rank: "S1", East: true},
		{Name: "Gunbai", Rank: "K1", East: false},
	}

	var out strings.Builder
	torikumi.Write(&out, reportParams, reportSchedule, torikumi.Options{Names: names})
	report := out.String()

	require.Contains(t, report, "Y1W Hakkiyoi")
	require.Contains(t, report, "O1E Nokotta")

	// Wrestler 1 is east-side and wrestler 0 is not, so in their bout the
	// columns swap: Nokotta is listed in the east column, first.
	day := report[:strings.Index(report, "Day 2")]
	require.Less(t, strings.Index(day, "O1E Nokotta"), strings.Index(day, "Y1W Hakkiyoi"))
}
