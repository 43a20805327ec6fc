package runset

import (
	"bytes"
	"errors"
	"fmt"
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

//writeRun writes a level table for a run at temperature T in dir/name. If flat is true, all
//levels get the same column density.
func writeRun(t *testing.T, dir, name string, T float64, flat bool) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(path, 0o755))
	var b strings.Builder
	b.WriteString("!  i  v  J  g  E  N/g\n")
	for j, e := range groundEnergies {
		n := 1e20 * math.Exp(-e*h2.CM2K/T)
		if flat {
			n = 1e15
		}
		fmt.Fprintf(&b, "%d 0 %d %g %.4f %.8e\n", j+1, j, h2.StatWeight(j), e, n)
	}
	require.NoError(t, os.WriteFile(filepath.Join(path, coldens.LevelsName), []byte(b.String()), 0o644))
	return path
}

func TestEstimateIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	runs := []Run{
		{Path: writeRun(t, dir, "shock_20", 700, false), Label: "20 km/s"},
		{Path: filepath.Join(dir, "missing"), Label: "missing"},
		{Path: writeRun(t, dir, "shock_30", 1200, false), Label: "30 km/s"},
		{Path: writeRun(t, dir, "flat", 1000, true), Label: "flat"},
		{Path: writeRun(t, dir, "shock_45", 2000, false), Label: "45 km/s"},
	}
	out := Estimate(runs, nil, 2)
	require.Len(t, out, len(runs))
	for i, o := range out {
		assert.Equal(t, runs[i], o.Run)
	}
	assert.Equal(t, 2, Failed(out))

	assert.True(t, os.IsNotExist(errors.Unwrap(out[1].Err)), "%v", out[1].Err)
	assert.True(t, errors.Is(out[3].Err, h2.ErrDegenerateTemperature), "%v", out[3].Err)
	assert.Contains(t, out[3].Err.Error(), "runset.Estimate")
	assert.NotNil(t, out[3].Levels)

	for i, T := range map[int]float64{0: 700, 2: 1200, 4: 2000} {
		require.NoError(t, out[i].Err)
		assert.InEpsilon(t, T, out[i].Result.RotationalTemperature, 1e-4)
		assert.InEpsilon(t, 3.0, out[i].Result.OrthoParaRatio, 0.1)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, out))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(runs)+1)
	assert.True(t, strings.HasPrefix(lines[1], "20 km/s"))
	assert.Contains(t, lines[2], "!")
	assert.Contains(t, lines[3], "1200.0")
}

func TestLevelsOrder(t *testing.T) {
	dir := t.TempDir()
	var runs []Run
	for i := 0; i < 12; i++ {
		runs = append(runs, Run{Path: writeRun(t, dir, fmt.Sprintf("r%d", i), 500+100*float64(i), false), Label: fmt.Sprint(i)})
	}
	out := Levels(runs, 0)
	assert.Equal(t, 0, Failed(out))
	for i, o := range out {
		assert.Equal(t, fmt.Sprint(i), o.Run.Label)
		assert.Len(t, o.Levels, len(groundEnergies))
		assert.Nil(t, o.Result)
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	name := filepath.Join(dir, "runs.json")
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
	return name
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	C, err := Load(writeConfig(t, dir, `{"runs":[{"path":"shock_20_h2-h_lique-bossion/","label":"20 km/s"},{"path":"/data/shock_30"}]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, C.JMin)
	assert.Equal(t, 8, C.JMax)
	assert.Equal(t, ".", C.Output)
	assert.Equal(t, 0, C.CPUs)
	assert.Equal(t, filepath.Join(dir, "shock_20_h2-h_lique-bossion"), C.Runs[0].Path)
	assert.Equal(t, []string{"20 km/s", "shock_30"}, C.Labels())
	O := C.Options()
	assert.Equal(t, 2, O.JMin())
	assert.Equal(t, 8, O.JMax())
}

func TestLoadCustom(t *testing.T) {
	dir := t.TempDir()
	C, err := Load(writeConfig(t, dir, `{"runs":[{"path":"a","label":"Flower"},{"path":"b","label":"Wan"}],"jmin":3,"jmax":10,"output":"plots","cpus":2}`))
	require.NoError(t, err)
	assert.Equal(t, 3, C.Options().JMin())
	assert.Equal(t, 10, C.Options().JMax())
	assert.Equal(t, "plots", C.Output)
	assert.Equal(t, 2, C.CPUs)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	for _, bad := range []string{
		`{"runs":[]}`,
		`{"runs":[{"path":"a"}],"jmax":7}`,
		`{"runs":[{"path":"a","label":"x"},{"path":"b","label":"x"}]}`,
		`{"runs":[{"label":"x"}]}`,
		`{"runs":[{"path":"a"}],"cpus":-1}`,
	} {
		_, err := Load(writeConfig(t, dir, bad))
		assert.True(t, errors.Is(err, h2.ErrInvalidParameter), "%s: %v", bad, err)
	}
	_, err := Load(writeConfig(t, dir, `{"runs":[{"path":"a"}],"jmaxx":7}`))
	assert.Error(t, err)
	_, err = Load(filepath.Join(dir, "nothere.json"))
	assert.True(t, os.IsNotExist(err))
}
