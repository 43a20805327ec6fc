package h2plot

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

//Some internal convenience functions.

//isInInt returns true if test is in container, false otherwise.
func isInInt(container []int, test int) bool {
	if container == nil {
		return false
	}
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

//positiveXYs builds the points to plot on a log-scale Y axis, leaving out
//the points with non-positive or non-finite y. what is only used for the log message.
func positiveXYs(x, y []float64, what string) plotter.XYs {
	if len(x) != len(y) {
		panic(fmt.Sprintf("h2plot: %d x values and %d y values for %s", len(x), len(y), what))
	}
	pts := make(plotter.XYs, 0, len(x))
	for i, v := range y {
		if !(v > 0) || math.IsInf(v, 0) || math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: v})
	}
	if dropped := len(x) - len(pts); dropped > 0 {
		log.Printf("h2plot: %d points of %s can't be shown in a log scale and were left out", dropped, what)
	}
	return pts
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

//Default styles for the first runs in a comparison: black circles, red
//triangles, blue inverted triangles and green squares.
var (
	baseColors = []color.Color{
		color.Black,
		color.RGBA{R: 255, A: 255},
		color.RGBA{B: 255, A: 255},
		color.RGBA{G: 128, A: 255},
	}
	baseShapes = []draw.GlyphDrawer{
		draw.RingGlyph{},
		draw.TriangleGlyph{},
		draw.PyramidGlyph{},
		draw.SquareGlyph{},
	}
)

//runColor returns the color for the key-th of steps data sets. The first
//ones get the base colors, the rest are spread over the hue circle.
func runColor(key, steps int) color.Color {
	if key < len(baseColors) {
		return baseColors[key]
	}
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	r, g, b := iHVS2RGB(h, 1.0, 1.0)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

//runShape returns the glyph for the key-th data set, cycling over the base glyphs.
func runShape(key int) draw.GlyphDrawer {
	return baseShapes[key%len(baseShapes)]
}
