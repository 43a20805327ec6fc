//Package runset handles sets of simulation runs: the JSON files that list them,
//and the concurrent processing of all the runs in a set.
package runset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	h2 "github.com/rmera/h2coldens"
	"github.com/rmera/h2coldens/orthopara"
)

//Run is one simulation: the directory with its output, and the label used
//for it in tables and legends.
type Run struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

//Config is a set of runs, plus the settings used to process them.
type Config struct {
	Runs   []Run  `json:"runs"`
	JMin   int    `json:"jmin"`
	JMax   int    `json:"jmax"`
	Output string `json:"output"` //directory where plots are written
	CPUs   int    `json:"cpus"`   //0 means all logical CPUs
}

//DefaultConfig returns a configuration with no runs and the default
//settings.
func DefaultConfig() *Config {
	O := orthopara.DefaultOptions()
	return &Config{
		JMin:   O.JMin(),
		JMax:   O.JMax(),
		Output: ".",
	}
}

//Load reads a run set from the JSON file name. Settings not in the file keep
//their default values. Relative run paths are taken from the directory
//of the file.
func Load(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	C := DefaultConfig()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(C); err != nil {
		return nil, fmt.Errorf("runset: %s: %w", name, err)
	}
	base := filepath.Dir(name)
	for i, r := range C.Runs {
		if r.Path != "" && !filepath.IsAbs(r.Path) {
			C.Runs[i].Path = filepath.Join(base, r.Path)
		}
	}
	if err := C.Validate(); err != nil {
		return nil, h2.ErrDecorate(err, "runset.Load")
	}
	return C, nil
}

//Validate checks the configuration, and gives a label to
//the runs that lack one (the name of their directory).
func (C *Config) Validate() error {
	const fname = "runset.Validate"
	if len(C.Runs) == 0 {
		return h2.NewError(h2.InvalidParameter, "no runs given", fname)
	}
	if C.JMax%2 != 0 || C.JMin < 0 || C.JMin >= C.JMax {
		return h2.Errorf(h2.InvalidParameter, fname, "invalid J range %d-%d, jmax must be even", C.JMin, C.JMax)
	}
	if C.CPUs < 0 {
		return h2.Errorf(h2.InvalidParameter, fname, "invalid number of CPUs %d", C.CPUs)
	}
	labels := make(map[string]bool, len(C.Runs))
	for i, r := range C.Runs {
		if r.Path == "" {
			return h2.Errorf(h2.InvalidParameter, fname, "run %d has no path", i)
		}
		if r.Label == "" {
			C.Runs[i].Label = filepath.Base(filepath.Clean(r.Path))
		}
		if labels[C.Runs[i].Label] {
			return h2.Errorf(h2.InvalidParameter, fname, "label %q used more than once", C.Runs[i].Label)
		}
		labels[C.Runs[i].Label] = true
	}
	if C.Output == "" {
		C.Output = "."
	}
	return nil
}

//Options returns the estimator options for this configuration.
func (C *Config) Options() *orthopara.Options {
	O := orthopara.DefaultOptions()
	O.JMin(C.JMin)
	O.JMax(C.JMax)
	return O
}

//Labels returns the labels of all the runs, in order.
func (C *Config) Labels() []string {
	ret := make([]string, len(C.Runs))
	for i, r := range C.Runs {
		ret[i] = r.Label
	}
	return ret
}
