package runset

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"text/tabwriter"

	h2 "github.com/rmera/h2coldens"
	"github.com/rmera/h2coldens/coldens"
	"github.com/rmera/h2coldens/orthopara"
)

//Outcome is the result of processing one run. If Err is not nil, the run
//failed, and Result (and maybe Levels) are nil.
type Outcome struct {
	Run    Run
	Levels h2.Levels
	Result *orthopara.Result
	Err    error
}

//parallel calls f(i) for i in [0,n), with at most cpus calls
//running at the same time.
func parallel(n, cpus int, f func(i int)) {
	if cpus <= 0 {
		cpus = runtime.NumCPU()
	}
	sem := make(chan struct{}, cpus)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			f(i)
		}(i)
	}
	wg.Wait()
}

//Levels reads the level table of each run, with at most cpus runs read at
//the same time (all logical CPUs if cpus<=0). The outcomes are in the order of runs, and have no Result.
func Levels(runs []Run, cpus int) []Outcome {
	ret := make([]Outcome, len(runs))
	parallel(len(runs), cpus, func(i int) {
		ret[i].Run = runs[i]
		L, err := coldens.LevelsFile(runs[i].Path)
		if err != nil {
			ret[i].Err = fmt.Errorf("%s: %w", runs[i].Label, err)
			return
		}
		ret[i].Levels = L
	})
	return ret
}

//Estimate reads each run and estimates its rotational temperature and ortho/para ratio.
//A run that fails doesn't affect the others. The outcomes are in the order of runs.
//O is shared by all the estimations, and is not modified.
func Estimate(runs []Run, O *orthopara.Options, cpus int) []Outcome {
	ret := Levels(runs, cpus)
	parallel(len(ret), cpus, func(i int) {
		if ret[i].Err != nil {
			return
		}
		r, err := orthopara.Estimate(ret[i].Levels, O)
		if err != nil {
			ret[i].Err = fmt.Errorf("%s: %w", runs[i].Label, h2.ErrDecorate(err, "runset.Estimate"))
			return
		}
		ret[i].Result = r
	})
	return ret
}

//Failed returns the number of outcomes with errors.
func Failed(outcomes []Outcome) int {
	var n int
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

//WriteTable writes one line per outcome to w, with the temperature and ortho/para ratio,
//or the error, for each run.
func WriteTable(w io.Writer, outcomes []Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "run\tT_rot(K)\tOPR\tpath")
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t%s\t! %v\n", o.Run.Label, o.Run.Path, o.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%.3f\t%s\n", o.Run.Label, o.Result.RotationalTemperature, o.Result.OrthoParaRatio, o.Run.Path)
	}
	return tw.Flush()
}
