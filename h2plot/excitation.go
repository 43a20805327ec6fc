package h2plot

import (
	"fmt"
	"image/color"

	h2 "github.com/rmera/h2coldens"
	"github.com/rmera/h2coldens/orthopara"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Excitation plots the ground state levels of a run together with the line fitted by
//orthopara.Estimate. The levels used in the estimation (O.JMin() to O.JMax(); O can be nil for the
//defaults) are drawn filled, the rest as rings.
func Excitation(L h2.Levels, R *orthopara.Result, O *orthopara.Options, filename string) error {
	if R == nil {
		return fmt.Errorf("h2plot.Excitation: nil result")
	}
	if O == nil {
		O = orthopara.DefaultOptions()
	}
	ground := L.Ground().Sort()
	if len(ground) == 0 {
		return fmt.Errorf("h2plot.Excitation: no ground state levels")
	}
	var used []int
	for j := O.JMin(); j <= O.JMax(); j++ {
		used = append(used, j)
	}
	var in, out h2.Levels
	for _, l := range ground {
		if isInInt(used, l.J) {
			in = append(in, l)
		} else {
			out = append(out, l)
		}
	}
	p := basicLevelPlot(fmt.Sprintf("T_rot = %.0f K, OPR = %.2f", R.RotationalTemperature, R.OrthoParaRatio))
	for i, set := range []h2.Levels{in, out} {
		pts := positiveXYs(set.Energies(), set.ColDens(), "ground state levels")
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.Black
		s.GlyphStyle.Radius = vg.Points(3)
		if i == 0 {
			s.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Legend.Add(fmt.Sprintf("v = 0, J = %d-%d", O.JMin(), O.JMax()), s)
		} else {
			s.GlyphStyle.Shape = draw.RingGlyph{}
			p.Legend.Add("v = 0, not fitted", s)
		}
		p.Add(s)
	}
	f := plotter.NewFunction(R.Fitted)
	f.Color = color.RGBA{R: 255, A: 255}
	f.Width = vg.Points(1)
	f.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	f.Samples = 100
	f.XMin = ground[0].Energy
	f.XMax = ground[len(ground)-1].Energy
	p.Add(f)
	p.Legend.Add("fit", f)
	return p.Save(diagramSize, diagramSize, filename)
}
