package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/profilekit/store"
)

const testCatalog = `
context:
  dimensionality: 1
  domain_length: [10]
  duration: 10
profiles:
  - id: inlet
    name: trapezoidal
    params: {value: 2, xslope1: 2, xplateau: 6, xslope2: 2, fallramp: 1}
  - id: pulse
    name: tgaussian
  - id: wave
    name: cosine
    params: {base: 1}
`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))
	return path
}

// run executes the root command and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	t.Parallel()

	out, err := run(t, "list", "--config", writeCatalog(t))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "SHAPE")
	assert.Contains(t, lines[1], "inlet")
	assert.Contains(t, lines[1], "trapezoidal")
	assert.Contains(t, lines[2], "tgaussian")
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	out, err := run(t, "describe", "pulse", "--config", writeCatalog(t))
	require.NoError(t, err)
	assert.Contains(t, out, "name: tgaussian")
	assert.Contains(t, out, "center: 5")
	assert.Contains(t, out, "sigma:")

	_, err = run(t, "describe", "nope", "--config", writeCatalog(t))
	require.Error(t, err)
}

func TestSample(t *testing.T) {
	t.Parallel()

	out, err := run(t, "sample", "inlet", "--config", writeCatalog(t), "--from", "0", "--to", "10", "--n", "11")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, []string{"1", "1"}, strings.Fields(lines[2]))  // x=1, rising ramp
	assert.Equal(t, []string{"5", "2"}, strings.Fields(lines[6]))  // plateau
	assert.Equal(t, []string{"9", "1"}, strings.Fields(lines[10])) // mirrored fall
	assert.Equal(t, []string{"10", "0"}, strings.Fields(lines[11]))

	_, err = run(t, "sample", "inlet", "--config", writeCatalog(t), "--n", "1")
	require.ErrorIs(t, err, errGrid)
}

func TestOverrides(t *testing.T) {
	t.Parallel()

	// A second axis without a second length cannot default the y plateau.
	_, err := run(t, "sample", "inlet", "--config", writeCatalog(t), "--dim", "2")
	require.Error(t, err)

	out, err := run(t, "sample", "inlet", "--config", writeCatalog(t),
		"--dim", "2", "--domain", "10,4", "--y", "1", "--n", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Len(t, strings.Fields(lines[1]), 3)

	out, err = run(t, "describe", "pulse", "--config", writeCatalog(t), "--duration", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "center: 10")

	_, err = run(t, "list", "--config", writeCatalog(t), "--log-level", "loud")
	require.Error(t, err)
}

func TestExport(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "out.db")
	out, err := run(t, "export", "--config", writeCatalog(t), "--db", dbPath, "--n", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 3 profiles")

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	ids, err := db.ProfileIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"inlet", "pulse", "wave"}, ids)

	samples, err := db.Samples(ctx, "pulse")
	require.NoError(t, err)
	require.Len(t, samples, 5)
	assert.Equal(t, 1.0, samples[2].Value) // t=5 is the center
}

func TestGrid(t *testing.T) {
	t.Parallel()

	pts, err := grid(0, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, pts)

	_, err = grid(1, 1, 5)
	require.ErrorIs(t, err, errGrid)
}
