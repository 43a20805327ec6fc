package orthopara_test

import (
	"fmt"
	"math"

	h2 "github.com/rmera/h2coldens"
	"github.com/rmera/h2coldens/orthopara"
)

func ExampleEstimate() {
	energies := []float64{0, 118.50, 354.35, 705.54, 1168.78, 1740.21, 2414.76, 3187.57, 4051.73, 5001.97}
	levels := make(h2.Levels, 0, len(energies))
	for j, e := range energies {
		levels = append(levels, h2.Level{V: 0, J: j, Energy: e, ColDens: 1e19 * math.Exp(-e*h2.CM2K/1000)})
	}
	r, err := orthopara.Estimate(levels, orthopara.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("T_rot=%.0f K OPR=%.2f\n", r.RotationalTemperature, r.OrthoParaRatio)
	// Output:
	// T_rot=1000 K OPR=3.00
}
