package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolateConfig(t)

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	out, err := execute(t, "testdata/sample.txt", "--row", "10", "--max", "20")
	require.NoError(t, err)
	assert.Equal(t, "26\n56000011\n", out)
}

func TestSolveCommandYAML(t *testing.T) {
	out, err := execute(t, "testdata/sample.txt", "--row", "10", "--max", "20", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "impossible: 26\n")
	assert.Contains(t, out, "frequency: 56000011\n")
}

func TestSolveCommandEnv(t *testing.T) {
	t.Setenv("BEACON_ROW", "10")
	t.Setenv("BEACON_MAX", "20")

	out, err := execute(t, "testdata/sample.txt", "-v")
	require.NoError(t, err)
	assert.Equal(t, "26\n56000011\n", out)
}

func TestSolveCommandErrors(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)

	_, err = execute(t, filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("Sensor at x=1, y=2: closest beacon is at x=3\n"), 0644))
	_, err = execute(t, bad, "--max", "20")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)

	_, err = execute(t, "testdata/sample.txt", "--row", "10", "--max", "40")
	var cerr *ConsistencyError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, err.Error(), "inconsistent sensor data")

	_, err = execute(t, "testdata/sample.txt", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestRowCommand(t *testing.T) {
	out, err := execute(t, "row", "testdata/sample.txt", "--row", "10")
	require.NoError(t, err)

	out = strings.ToUpper(out)
	assert.Contains(t, out, "ROW 10")
	assert.Contains(t, out, "-2")
	assert.Contains(t, out, "24")
	assert.Contains(t, out, "COVERAGE")
	assert.Contains(t, out, "IMPOSSIBLE")
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render", "testdata/sample.txt",
		"--from", "12,10", "--to", "16,12", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"  10 #####\n"+
		"  11 ##.##\n"+
		"  12 #####\n", out)

	_, err = execute(t, "render", "testdata/sample.txt", "--from", "1,2,3")
	assert.ErrorContains(t, err, "--from wants x,y")
}
