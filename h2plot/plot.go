/*
 * plot.go, part of h2coldens
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

//Package h2plot draws the diagrams used to inspect shock runs: level column densities,
//dissociation rate profiles, comparisons between runs and excitation diagrams.
//The format of each file is taken from the extension of its name (png, svg, pdf, eps...).
package h2plot

import (
	"fmt"
	"image/color"

	h2 "github.com/rmera/h2coldens"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Highest vibrational level shown in the level diagrams.
const MaxV = 3

//Axis limits of the comparison diagram.
const (
	compareEMax    = 20000.0
	compareNMin    = 1e8
	compareNMax    = 1e21
	diagramSize    = 5 * vg.Inch
	comparisonSize = 7 * vg.Inch
)

var vibStyles = []struct {
	shape  draw.GlyphDrawer
	color  color.Color
	radius vg.Length
}{
	{draw.CircleGlyph{}, color.Black, vg.Points(2)},
	{draw.TriangleGlyph{}, color.RGBA{R: 255, A: 255}, vg.Points(2.5)},
	{draw.CrossGlyph{}, color.RGBA{G: 128, A: 255}, vg.Points(3.5)},
	{draw.PlusGlyph{}, color.RGBA{B: 255, A: 255}, vg.Points(3.5)},
}

//basicLevelPlot returns a plot with a log-scale Y axis, labeled for level
//column densities.
func basicLevelPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Level energy, cm^-1"
	p.Y.Label.Text = "Column densities, N/g"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	return p
}

//Levels plots the level column densities of one run, one data set per vibrational level
//up to MaxV. J=0 and J=1 of v=0 are not shown.
func Levels(L h2.Levels, title, filename string) error {
	if len(L) == 0 {
		return fmt.Errorf("h2plot.Levels: no levels to plot")
	}
	if title == "" {
		title = "H2 level column densities"
	}
	p := basicLevelPlot(title)
	var plotted int
	for v, set := range h2.DiagramSet(L, MaxV) {
		pts := positiveXYs(set.Energies(), set.ColDens(), fmt.Sprintf("v=%d", v))
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Shape = vibStyles[v].shape
		s.GlyphStyle.Color = vibStyles[v].color
		s.GlyphStyle.Radius = vibStyles[v].radius
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("v = %d", v), s)
		plotted++
	}
	if plotted == 0 {
		return fmt.Errorf("h2plot.Levels: no level with a positive column density")
	}
	return p.Save(diagramSize, diagramSize, filename)
}

//Compare plots the level column densities of several runs together, labeled with labels,
//which must have one element per run.
func Compare(sets []h2.Levels, labels []string, filename string) error {
	p, err := comparePlot(sets, labels)
	if err != nil {
		return err
	}
	return p.Save(comparisonSize, comparisonSize, filename)
}

func comparePlot(sets []h2.Levels, labels []string) (*plot.Plot, error) {
	if len(sets) != len(labels) {
		panic(h2.ErrShape)
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("h2plot.Compare: no runs to plot")
	}
	p := basicLevelPlot("H2 level column densities")
	p.Legend.Top = true
	for i, L := range sets {
		var shown h2.Levels
		for _, set := range h2.DiagramSet(L, MaxV) {
			shown = append(shown, set...)
		}
		pts := positiveXYs(shown.Energies(), shown.ColDens(), labels[i])
		if len(pts) == 0 {
			return nil, fmt.Errorf("h2plot.Compare: nothing to plot for %s", labels[i])
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = runShape(i)
		s.GlyphStyle.Color = runColor(i, len(sets))
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
		p.Legend.Add(labels[i], s)
	}
	p.X.Min = 0
	p.X.Max = compareEMax
	p.Y.Min = compareNMin
	p.Y.Max = compareNMax
	return p, nil
}
