package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func decodeReport(t *testing.T, out string) routeReport {
	t.Helper()
	var rep routeReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	return rep
}

func TestShortestCmd_Text(t *testing.T) {
	out, _, err := run(t, "shortest", "--graph", "testdata/diamond.toml", "--from", "A", "--to", "D")
	require.NoError(t, err)
	assert.Equal(t, "1. A → B → C → D (cost 3)\n", out)
}

func TestShortestCmd_Unreachable(t *testing.T) {
	out, _, err := run(t, "shortest", "-g", "testdata/diamond.yaml", "--from", "A", "--to", "Z")
	require.NoError(t, err)
	assert.Equal(t, "no path from A to Z\n", out)
}

func TestShortestCmd_MaxDist(t *testing.T) {
	out, _, err := run(t, "shortest", "-g", "testdata/diamond.toml", "--from", "A", "--to", "D", "--max-dist", "2")
	require.NoError(t, err)
	assert.Equal(t, "no path from A to D\n", out)
}

func TestShortestCmd_UnknownVertex(t *testing.T) {
	_, _, err := run(t, "shortest", "-g", "testdata/diamond.toml", "--from", "A", "--to", "Q")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestKShortestCmd_JSON(t *testing.T) {
	for _, file := range []string{"testdata/diamond.toml", "testdata/diamond.yaml"} {
		t.Run(filepath.Ext(file), func(t *testing.T) {
			out, _, err := run(t, "kshortest", "-g", file, "--from", "A", "--to", "D", "-k", "3", "--format", "json")
			require.NoError(t, err)
			rep := decodeReport(t, out)
			assert.Equal(t, "A", rep.From)
			assert.Equal(t, "D", rep.To)
			require.Len(t, rep.Paths, 3)
			assert.Equal(t, pathReport{Rank: 1, Cost: 3, Nodes: []string{"A", "B", "C", "D"}}, rep.Paths[0])
			assert.Equal(t, pathReport{Rank: 2, Cost: 5, Nodes: []string{"A", "C", "D"}}, rep.Paths[1])
			assert.Equal(t, pathReport{Rank: 3, Cost: 6, Nodes: []string{"A", "B", "D"}}, rep.Paths[2])
		})
	}
}

func TestKShortestCmd_EmptyJSON(t *testing.T) {
	out, _, err := run(t, "kshortest", "-g", "testdata/diamond.toml", "--from", "A", "--to", "Z", "-f", "json")
	require.NoError(t, err)
	rep := decodeReport(t, out)
	assert.NotNil(t, rep.Paths)
	assert.Empty(t, rep.Paths)
}

func TestKShortestCmd_Verbose(t *testing.T) {
	_, stderr, err := run(t, "kshortest", "-v", "-g", "testdata/diamond.toml", "--from", "A", "--to", "D", "-k", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "accepted path")
	assert.Contains(t, stderr, "Ranked 2 paths")
}

func TestKShortestCmd_IterationLimitIsWarning(t *testing.T) {
	out, stderr, err := run(t, "kshortest", "-g", "testdata/diamond.toml", "--from", "A", "--to", "D",
		"-k", "0", "--max-iterations", "1")
	require.NoError(t, err)
	assert.Equal(t, "1. A → B → C → D (cost 3)\n2. A → C → D (cost 5)\n", out)
	assert.Contains(t, stderr, "ranking stopped early")
}

func TestKShortestCmd_BadWorkers(t *testing.T) {
	_, _, err := run(t, "kshortest", "-g", "testdata/diamond.toml", "--from", "A", "--to", "D", "--workers", "0")
	require.Error(t, err)
}

func TestGridCmd(t *testing.T) {
	out, _, err := run(t, "grid", "--map", "testdata/maze.txt")
	require.NoError(t, err)
	assert.Equal(t, "1. 0,0 → 0,1 → 0,2 → 1,2 → 2,2 → 2,1 → 2,0 → 3,0 → 4,0 → 4,1 → 4,2 (cost 10)\n"+
		"*#***\n*#*#*\n***#*\n\n", out)
}

func TestGridCmd_Walled(t *testing.T) {
	out, _, err := run(t, "grid", "--map", "testdata/walled.txt", "-f", "json")
	require.NoError(t, err)
	rep := decodeReport(t, out)
	assert.Equal(t, "0,0", rep.From)
	assert.Equal(t, "3,1", rep.To)
	assert.Empty(t, rep.Paths)
}

func TestGridCmd_MissingMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nomarks.txt")
	require.NoError(t, os.WriteFile(path, []byte("...\n...\n"), 0o644))
	_, _, err := run(t, "grid", "--map", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S and one E")
}

func TestRootCmd_BadFormat(t *testing.T) {
	_, _, err := run(t, "shortest", "-g", "testdata/diamond.toml", "--from", "A", "--to", "D", "-f", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRootCmd_MissingFlags(t *testing.T) {
	_, _, err := run(t, "kshortest", "--from", "A", "--to", "D")
	require.Error(t, err)
}
