package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	h2 "github.com/rmera/h2coldens"
	"github.com/rmera/h2coldens/coldens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var groundEnergies = []float64{0, 118.50, 354.35, 705.54, 1168.78, 1740.21, 2414.76, 3187.57, 4051.73, 5001.97}

func writeRun(t *testing.T, dir string, T float64) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	var b strings.Builder
	for j, e := range groundEnergies {
		fmt.Fprintf(&b, "%d 0 %d %g %.4f %.8e\n", j+1, j, h2.StatWeight(j), e, 1e20*math.Exp(-e*h2.CM2K/T))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, coldens.LevelsName), []byte(b.String()), 0o644))
	chem := "! z T diss\n1e10 1 1 1 1 1 1 1e-17\n2e10 1 1 1 1 1 1 2e-17\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, coldens.ChemistryName), []byte(chem), 0o644))
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	writeRun(t, filepath.Join(dir, "shock_20"), 900)
	writeRun(t, filepath.Join(dir, "shock_30"), 1500)
	run := filepath.Join(dir, "shock_20")

	require.NoError(t, oprCmd([]string{"-dir", run}))
	require.NoError(t, levelsCmd([]string{"-dir", run, "-o", filepath.Join(dir, "levels.png")}))
	require.NoError(t, dissCmd([]string{"-dir", run, "-o", filepath.Join(dir, "diss.png")}))
	require.NoError(t, excitationCmd([]string{"-dir", run, "-jmin", "3", "-o", filepath.Join(dir, "exc.png")}))
	for _, f := range []string{"levels.png", "diss.png", "exc.png"} {
		assert.FileExists(t, filepath.Join(dir, f))
	}

	assert.Error(t, oprCmd([]string{}))
	assert.Error(t, oprCmd([]string{"-dir", run, "-jmax", "7"}))
	assert.Error(t, levelsCmd([]string{"-dir", run}))
}

func TestSetCommands(t *testing.T) {
	dir := t.TempDir()
	writeRun(t, filepath.Join(dir, "shock_20"), 900)
	writeRun(t, filepath.Join(dir, "shock_30"), 1500)
	config := filepath.Join(dir, "runs.json")
	require.NoError(t, os.WriteFile(config, []byte(`{"runs":[{"path":"shock_20","label":"20 km/s"},{"path":"shock_30","label":"30 km/s"}],"output":"`+filepath.Join(dir, "plots")+`"}`), 0o644))

	require.NoError(t, compareCmd([]string{"-config", config}))
	assert.FileExists(t, filepath.Join(dir, "plots", "compare.png"))

	table := filepath.Join(dir, "table.txt.zst")
	require.NoError(t, batchCmd([]string{"-config", config, "-cpus", "1", "-o", table}))
	f, err := coldens.Open(table)
	require.NoError(t, err)
	defer f.Close()
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(b), "20 km/s")
	assert.Contains(t, string(b), "1500.0")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"runs":[{"path":"shock_20"},{"path":"nothere"}]}`), 0o644))
	err = batchCmd([]string{"-config", bad, "-o", filepath.Join(dir, "bad.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 runs failed")
}
