package banzuke_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slyubomirsky/sumo-ilp/pkg/banzuke"
	"github.com/slyubomirsky/sumo-ilp/pkg/basho"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadNamesJSON(t *testing.T) {
	path := writeFile(t, "names.json", `[
		["Hakkiyoi", "Y1", true],
		["Nokotta", "O1", false],
		["Matta", "S1", true],
		["Gunbai", "K1", false]
	]`)

	roster, err := banzuke.LoadNames(path, 4)
	require.NoError(t, err)
	require.Len(t, roster, 4)
	require.Equal(t, banzuke.Rikishi{Name: "Hakkiyoi", Rank: "Y1", East: true}, roster[0])
	require.Equal(t, banzuke.Rikishi{Name: "Nokotta", Rank: "O1", East: false}, roster[1])
}

func TestLoadNamesYAML(t *testing.T) {
	path := writeFile(t, "names.yaml", `
- [Hakkiyoi, Y1, true]
- [Nokotta, O1, false]
`)

	roster, err := banzuke.LoadNames(path, 2)
	require.NoError(t, err)
	require.Equal(t, "Hakkiyoi", roster[0].Name)
	require.False(t, roster[1].East)
}

func TestLoadNamesRejectsWrongLength(t *testing.T) {
	path := writeFile(t, "names.json", `[["Hakkiyoi", "Y1", true]]`)

	_, err := banzuke.LoadNames(path, 4)
	require.ErrorIs(t, err, banzuke.ErrInvalidRoster)
}

func TestLoadNamesRejectsBadEntries(t *testing.T) {
	for _, contents := range []string{
		`[["Hakkiyoi", "Y1"]]`,        // too short
		`[["Hakkiyoi", "Y1", "yes"]]`, // side not a boolean
		`[[1, "Y1", true]]`,           // name not a string
		`[{"name": "Hakkiyoi"}]`,      // not a triple at all
	} {
		path := writeFile(t, "names.json", contents)
		_, err := banzuke.LoadNames(path, 1)
		require.ErrorIs(t, err, banzuke.ErrInvalidRoster, "contents: %s", contents)
	}
}

func TestLoadConflicts(t *testing.T) {
	path := writeFile(t, "conflicts.json", `[[1, 3], [], [3], []]`)

	pairs, err := banzuke.LoadConflicts(path, 4)
	require.NoError(t, err)
	require.Equal(t, []basho.Pair{
		{Low: 0, High: 1},
		{Low: 0, High: 3},
		{Low: 2, High: 3},
	}, pairs)
}

func TestLoadConflictsRejectsBadIndices(t *testing.T) {
	// Entry not greater than its own index.
	path := writeFile(t, "conflicts.json", `[[], [0], [], []]`)
	_, err := banzuke.LoadConflicts(path, 4)
	require.ErrorIs(t, err, banzuke.ErrInvalidConflicts)

	// Entry beyond the roster.
	path = writeFile(t, "conflicts.json", `[[9], [], [], []]`)
	_, err = banzuke.LoadConflicts(path, 4)
	require.ErrorIs(t, err, banzuke.ErrInvalidConflicts)

	// Wrong number of entries.
	path = writeFile(t, "conflicts.json", `[[1]]`)
	_, err = banzuke.LoadConflicts(path, 4)
	require.ErrorIs(t, err, banzuke.ErrInvalidConflicts)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := banzuke.LoadNames(filepath.Join(t.TempDir(), "absent.json"), 4)
	require.Error(t, err)
}
