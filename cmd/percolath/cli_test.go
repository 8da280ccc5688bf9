package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolath/core"
	"github.com/katalvlaran/percolath/store"
)

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

// writeGraph stores two disjoint triangles in a temp file.
func writeGraph(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "triangles.edge")
	require.NoError(t, os.WriteFile(p, []byte("# two triangles\na b\nb c\nc a\nd e\ne f\nf d\n"), 0o600))

	return p
}

func TestRunCmd(t *testing.T) {
	out, _, err := execute(t, "run", writeGraph(t), "--t", "1", "--seed", "4", "--dist")
	require.NoError(t, err)

	assert.Contains(t, out, "vertices:               6\n")
	assert.Contains(t, out, "retained edges:         6\n")
	assert.Contains(t, out, "components:             2\n")
	assert.Contains(t, out, "second largest:         3\n")
	assert.Contains(t, out, "random component size:  3\n")
	assert.Contains(t, out, "# size count\n3 2\n")
}

func TestRunCmd_MissingFile(t *testing.T) {
	_, _, err := execute(t, "run", filepath.Join(t.TempDir(), "none.edge"))
	assert.ErrorIs(t, err, core.ErrSourceUnavailable)
}

func TestSweepCmd_Table(t *testing.T) {
	out, _, err := execute(t, "sweep", writeGraph(t), "--seed", "2", "--t-min", "0", "--t-max", "1", "--step", "0.5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.Equal(t, []string{"0", "6", "0", "1", "1", "6"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "6", "6", "3", "3", "2"}, strings.Fields(lines[3]))
}

func TestSweepCmd_SummaryAndSQLite(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "runs.db")
	outPath := filepath.Join(dir, "summary.dat")

	_, _, err := execute(t, "sweep", writeGraph(t), "--seed", "2", "--step", "0.25",
		"--simulations", "3", "--summary", "--out", outPath, "--sqlite", dbPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 6) // header + 5 grid points
	assert.Equal(t, []string{"1", "3", "3", "0", "3", "0", "2"}, strings.Fields(lines[5]))

	db, err := store.OpenDB(dbPath)
	require.NoError(t, err)
	defer db.Close()
	ids, err := db.RunIDs()
	require.NoError(t, err)
	require.Len(t, ids, 1)
	rows, err := db.Rows(ids[0])
	require.NoError(t, err)
	assert.Len(t, rows, 15)
}

func TestSweepCmd_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "percolath.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("sweep:\n  t_min: 0.5\n  t_max: 0.5\n  step: 0.1\n  simulations: 2\n"), 0o600))

	out, _, err := execute(t, "sweep", writeGraph(t), "--config", cfgPath, "--seed", "1")
	require.NoError(t, err)
	// header + one point × two simulations
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 3)
}

func TestSweepCmd_InvalidGrid(t *testing.T) {
	_, _, err := execute(t, "sweep", writeGraph(t), "--step", "0")
	assert.Error(t, err)
}

func TestInspectCmd(t *testing.T) {
	out, _, err := execute(t, "inspect", writeGraph(t))
	require.NoError(t, err)
	assert.Contains(t, out, "vertices:           6\n")
	assert.Contains(t, out, "mean degree:        2.0000\n")
	assert.Contains(t, out, "degree std:         0.0000\n")
	assert.Contains(t, out, "components:         2\n")
	assert.Contains(t, out, "largest component:  3\n")
	assert.Contains(t, out, "tc molloy-reed:     1.0000\n")
	assert.Contains(t, out, "tc spectral:        0.5000\n")
}

func TestGenerateCmd_RoundTrip(t *testing.T) {
	out, _, err := execute(t, "generate", "cycle", "--n", "5", "--copies", "2", "--seed", "1")
	require.NoError(t, err)

	g, err := core.ReadEdgeList(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 10, g.NumVertices())
	assert.Equal(t, 10, g.NumEdges())

	_, _, err = execute(t, "generate", "hexagon")
	assert.Error(t, err)
}

func TestGenerateCmd_Lattice(t *testing.T) {
	mask := filepath.Join(t.TempDir(), "mask.txt")
	require.NoError(t, os.WriteFile(mask, []byte("1 1 0\n0 1 1\n1 0 1\n"), 0o600))

	out, _, err := execute(t, "generate", "lattice", "--mask", mask)
	require.NoError(t, err)
	g, err := core.ReadEdgeList(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumVertices()) // the isolated corner site has no edge line
	assert.Equal(t, 4, g.NumEdges())

	out, _, err = execute(t, "generate", "lattice", "--mask", mask, "--diagonal")
	require.NoError(t, err)
	g, err = core.ReadEdgeList(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 6, g.NumVertices())

	_, _, err = execute(t, "generate", "lattice")
	assert.Error(t, err)
}
