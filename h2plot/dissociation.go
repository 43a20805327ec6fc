package h2plot

import (
	"fmt"
	"image/color"

	"github.com/rmera/h2coldens/coldens"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	dissMin = 1e-20
	dissMax = 1e-15
)

//Dissociation plots the H2 dissociation rate along the shock. label, if not empty,
//is used for the legend.
func Dissociation(P *coldens.Profile, label, filename string) error {
	p, err := dissociationPlot(P, label)
	if err != nil {
		return err
	}
	return p.Save(diagramSize, diagramSize, filename)
}

func dissociationPlot(P *coldens.Profile, label string) (*plot.Plot, error) {
	if P == nil || P.Len() == 0 {
		return nil, fmt.Errorf("h2plot.Dissociation: empty profile")
	}
	pts := positiveXYs(P.Z, P.Rate, "dissociation rates")
	if len(pts) == 0 {
		return nil, fmt.Errorf("h2plot.Dissociation: no positive rate in the profile")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = "H2 dissociation rates"
	p.X.Label.Text = "Length, cm"
	p.Y.Label.Text = "Dissociation rate, cm^-3 s^-1"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = color.Black
	l.LineStyle.Width = vg.Points(1)
	p.Add(l)
	if label != "" {
		p.Legend.Add(label, l)
	}
	//Add widens the axes to the data, so the fixed range goes last.
	p.Y.Min = dissMin
	p.Y.Max = dissMax
	return p, nil
}
