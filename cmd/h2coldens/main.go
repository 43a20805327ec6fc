// Command h2coldens analyses the H2 level populations written by the shock code.
//
// Usage:
//
//	h2coldens opr        -dir RUN [-jmin 2] [-jmax 8]
//	h2coldens levels     -dir RUN [-title T] -o levels.png
//	h2coldens diss       -dir RUN [-label L] -o diss.png
//	h2coldens excitation -dir RUN [-jmin 2] [-jmax 8] -o excitation.png
//	h2coldens compare    -config runs.json -o compare.png
//	h2coldens batch      -config runs.json [-cpus N] [-o table.txt]
//
// RUN is a simulation output directory, holding coldens_H2.txt and/or
// sim_data_h2_chemistry.txt (plain, or compressed with zstd, gzip or flate).
// runs.json lists several runs:
//
//	{"runs": [{"path": "shock_20/", "label": "20 km/s"}, {"path": "shock_30/", "label": "30 km/s"}],
//	 "jmin": 2, "jmax": 8, "output": "plots", "cpus": 4}
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	h2 "github.com/rmera/h2coldens"
	"github.com/rmera/h2coldens/coldens"
	"github.com/rmera/h2coldens/h2plot"
	"github.com/rmera/h2coldens/orthopara"
	"github.com/rmera/h2coldens/runset"
)

type command struct {
	help string
	run  func(args []string) error
}

var commands = map[string]command{
	"opr":        {"print the rotational temperature and ortho/para ratio of a run", oprCmd},
	"levels":     {"plot the level column densities of a run", levelsCmd},
	"diss":       {"plot the dissociation rate profile of a run", dissCmd},
	"excitation": {"plot the excitation diagram of a run with the fitted temperature", excitationCmd},
	"compare":    {"plot the level column densities of all the runs in a set", compareCmd},
	"batch":      {"estimate temperature and ortho/para ratio for all the runs in a set", batchCmd},
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: h2coldens <command> [flags]\n\ncommands:\n")
	names := make([]string, 0, len(commands))
	for k := range commands {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(os.Stderr, "  %-11s %s\n", k, commands[k].help)
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("h2coldens: ")
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	c, ok := commands[os.Args[1]]
	if !ok {
		usage()
		os.Exit(2)
	}
	if err := c.run(os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

//jflags adds the J bound flags to fs, and returns a function that builds the
//options once the flags are parsed.
func jflags(fs *flag.FlagSet) func() *orthopara.Options {
	def := orthopara.DefaultOptions()
	jmin := fs.Int("jmin", def.JMin(), "lowest rotational level used")
	jmax := fs.Int("jmax", def.JMax(), "highest rotational level used, must be even")
	return func() *orthopara.Options {
		O := orthopara.DefaultOptions()
		O.JMin(*jmin)
		O.JMax(*jmax)
		return O
	}
}

func required(fs *flag.FlagSet, vals ...string) error {
	for _, v := range vals {
		if fs.Lookup(v).Value.String() == "" {
			return fmt.Errorf("%s: flag -%s is required", fs.Name(), v)
		}
	}
	return nil
}

func oprCmd(args []string) error {
	fs := flag.NewFlagSet("opr", flag.ExitOnError)
	dir := fs.String("dir", "", "simulation output directory")
	opts := jflags(fs)
	fs.Parse(args)
	if err := required(fs, "dir"); err != nil {
		return err
	}
	L, err := coldens.LevelsFile(*dir)
	if err != nil {
		return err
	}
	r, err := orthopara.Estimate(L, opts())
	if err != nil {
		return err
	}
	fmt.Printf("T_rot: %.1f K\nOPR:   %.3f\n", r.RotationalTemperature, r.OrthoParaRatio)
	for _, l := range r.Local {
		fmt.Printf("  J=%d  T_local: %.1f K  OPR_local: %.3f\n", l.J, l.Temperature, l.Ratio)
	}
	return nil
}

func levelsCmd(args []string) error {
	fs := flag.NewFlagSet("levels", flag.ExitOnError)
	dir := fs.String("dir", "", "simulation output directory")
	title := fs.String("title", "", "plot title")
	out := fs.String("o", "", "output file (png, svg, pdf...)")
	fs.Parse(args)
	if err := required(fs, "dir", "o"); err != nil {
		return err
	}
	L, err := coldens.LevelsFile(*dir)
	if err != nil {
		return err
	}
	return h2plot.Levels(L, *title, *out)
}

func dissCmd(args []string) error {
	fs := flag.NewFlagSet("diss", flag.ExitOnError)
	dir := fs.String("dir", "", "simulation output directory")
	label := fs.String("label", "", "legend label")
	out := fs.String("o", "", "output file (png, svg, pdf...)")
	fs.Parse(args)
	if err := required(fs, "dir", "o"); err != nil {
		return err
	}
	P, err := coldens.DissociationFile(*dir)
	if err != nil {
		return err
	}
	return h2plot.Dissociation(P, *label, *out)
}

func excitationCmd(args []string) error {
	fs := flag.NewFlagSet("excitation", flag.ExitOnError)
	dir := fs.String("dir", "", "simulation output directory")
	out := fs.String("o", "", "output file (png, svg, pdf...)")
	opts := jflags(fs)
	fs.Parse(args)
	if err := required(fs, "dir", "o"); err != nil {
		return err
	}
	L, err := coldens.LevelsFile(*dir)
	if err != nil {
		return err
	}
	O := opts()
	r, err := orthopara.Estimate(L, O)
	if err != nil {
		return err
	}
	return h2plot.Excitation(L, r, O, *out)
}

func loadConfig(fs *flag.FlagSet, args []string, extra func(fs *flag.FlagSet)) (*runset.Config, error) {
	config := fs.String("config", "", "JSON file with the set of runs")
	if extra != nil {
		extra(fs)
	}
	fs.Parse(args)
	if err := required(fs, "config"); err != nil {
		return nil, err
	}
	return runset.Load(*config)
}

func compareCmd(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	var out *string
	C, err := loadConfig(fs, args, func(fs *flag.FlagSet) {
		out = fs.String("o", "compare.png", "output file, relative to the output directory of the set")
	})
	if err != nil {
		return err
	}
	outcomes := runset.Levels(C.Runs, C.CPUs)
	sets := make([]h2.Levels, 0, len(outcomes))
	labels := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			log.Printf("skipping run: %v", o.Err)
			continue
		}
		sets = append(sets, o.Levels)
		labels = append(labels, o.Run.Label)
	}
	name := *out
	if !filepath.IsAbs(name) {
		if err := os.MkdirAll(C.Output, 0o755); err != nil {
			return err
		}
		name = filepath.Join(C.Output, name)
	}
	return h2plot.Compare(sets, labels, name)
}

func batchCmd(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	var cpus *int
	var out *string
	C, err := loadConfig(fs, args, func(fs *flag.FlagSet) {
		cpus = fs.Int("cpus", -1, "runs processed at the same time (default: from the set, or all CPUs)")
		out = fs.String("o", "", "write the table to this file instead of stdout (.zst, .gz: compressed)")
	})
	if err != nil {
		return err
	}
	if *cpus >= 0 {
		C.CPUs = *cpus
	}
	outcomes := runset.Estimate(C.Runs, C.Options(), C.CPUs)
	if err := writeTable(*out, outcomes); err != nil {
		return err
	}
	if n := runset.Failed(outcomes); n > 0 {
		return fmt.Errorf("%d of %d runs failed", n, len(outcomes))
	}
	return nil
}

//writeTable writes the outcomes to the file name, or to stdout if name is empty.
func writeTable(name string, outcomes []runset.Outcome) error {
	if name == "" {
		return runset.WriteTable(os.Stdout, outcomes)
	}
	f, err := coldens.Create(name)
	if err != nil {
		return err
	}
	if err := runset.WriteTable(f, outcomes); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
