/*
 * estimate.go, part of h2coldens.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package orthopara estimates the rotational excitation temperature and the
//ortho/para ratio of H2 from the level populations of the ground vibrational state.
package orthopara

import (
	"fmt"
	"math"
	"sort"

	h2 "github.com/rmera/h2coldens"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//LocalEstimate holds the quantities obtained for one ortho level from its two para neighbours.
type LocalEstimate struct {
	J           int
	ColDens     float64 //N/g of the ortho level
	Temperature float64 //two-point temperature from the neighbours, K
	Ratio       float64 //local ortho/para ratio
}

//Result is the outcome of an estimation.
type Result struct {
	RotationalTemperature float64 //K, from the fit over all selected levels
	OrthoParaRatio        float64
	//ln(N/g) = Intercept + Slope*E, E in cm^-1
	Slope     float64
	Intercept float64
	Local     []LocalEstimate
}

func (R *Result) String() string {
	return fmt.Sprintf("T_rot: %.1f K OPR: %.3f", R.RotationalTemperature, R.OrthoParaRatio)
}

//Fitted returns the column density per statistical weight that the fit
//predicts for a level of the given energy, in cm^-1.
func (R *Result) Fitted(energy float64) float64 {
	return math.Exp(R.Intercept + R.Slope*energy)
}

//Estimate obtains the rotational temperature and the ortho/para ratio from the ground vibrational
//state levels with O.JMin()<=J<=O.JMax(). If O is nil, DefaultOptions() is used.
//The selected levels must be contiguous in J, at least 3, with positive column densities.
//The partition sums use all ground state levels in the set, not only the selected ones.
func Estimate(levels h2.Levels, O *Options) (*Result, error) {
	const fname = "orthopara.Estimate"
	if O == nil {
		O = DefaultOptions()
	}
	jmin, jmax := O.JMin(), O.JMax()
	if jmax%2 != 0 {
		return nil, h2.Errorf(h2.InvalidParameter, fname, "jmax must be even, got %d", jmax)
	}
	if jmin < 0 || jmin >= jmax {
		return nil, h2.Errorf(h2.InvalidParameter, fname, "invalid J range %d-%d", jmin, jmax)
	}
	ground := levels.Ground() //a copy, so we can sort it.
	sort.Stable(ground)
	for i := 1; i < len(ground); i++ {
		if ground[i].J == ground[i-1].J {
			return nil, h2.Errorf(h2.DuplicateLevel, fname, "level v=0 J=%d given more than once", ground[i].J)
		}
	}
	sel := ground.Range(jmin, jmax)
	if len(sel) < 3 {
		return nil, h2.Errorf(h2.InsufficientData, fname, "%d ground state levels in J=%d-%d, at least 3 needed", len(sel), jmin, jmax)
	}
	for i := 1; i < len(sel); i++ {
		if sel[i].J != sel[i-1].J+1 {
			return nil, h2.Errorf(h2.InsufficientData, fname, "level v=0 J=%d missing", sel[i-1].J+1)
		}
	}
	for _, l := range sel {
		if !(l.ColDens > 0) {
			return nil, h2.Errorf(h2.InvalidColumnDensity, fname, "%v", l)
		}
	}
	locals := make([]LocalEstimate, 0, len(sel)/2)
	//the first and last levels lack one of their neighbours.
	for k := 1; k < len(sel)-1; k++ {
		if !sel[k].Ortho() {
			continue
		}
		loc, err := local(sel[k-1], sel[k], sel[k+1], ground)
		if err != nil {
			return nil, h2.ErrDecorate(err, fname)
		}
		locals = append(locals, loc)
	}
	if len(locals) == 0 {
		return nil, h2.Errorf(h2.InsufficientData, fname, "no ortho level with both neighbours in J=%d-%d", jmin, jmax)
	}
	ret := &Result{Local: locals}
	ret.OrthoParaRatio = weightedRatio(locals)
	var err error
	ret.Intercept, ret.Slope, err = fit(sel)
	if err != nil {
		return nil, h2.ErrDecorate(err, fname)
	}
	ret.RotationalTemperature = -h2.CM2K / ret.Slope
	return ret, nil
}

//local obtains the temperature from the para levels lo and hi, the partition sums at that
//temperature, and the ortho/para ratio at the ortho level mid.
func local(lo, mid, hi h2.Level, ground h2.Levels) (LocalEstimate, error) {
	const fname = "orthopara.local"
	lr := math.Log(lo.ColDens / hi.ColDens)
	if lr == 0 {
		return LocalEstimate{}, h2.Errorf(h2.DegenerateTemperature, fname, "levels J=%d and J=%d have the same population", lo.J, hi.J)
	}
	t := h2.CM2K * (hi.Energy - lo.Energy) / lr
	if !(t > 0) || math.IsInf(t, 0) {
		return LocalEstimate{}, h2.Errorf(h2.DegenerateTemperature, fname, "non-physical temperature %g K from J=%d and J=%d", t, lo.J, hi.J)
	}
	var odd, even float64
	for _, l := range ground {
		b := float64(2*l.J+1) * math.Exp(-l.Energy*h2.CM2K/t)
		if l.Ortho() {
			odd += h2.OrthoWeight * b
		} else {
			even += h2.ParaWeight * b
		}
	}
	if even == 0 {
		return LocalEstimate{}, h2.Errorf(h2.DegenerateTemperature, fname, "para partition sum vanishes at %g K", t)
	}
	//para population at the energy of mid, interpolated in log space.
	frac := (mid.Energy - lo.Energy) / (hi.Energy - lo.Energy)
	loglo := math.Log(lo.ColDens)
	interp := math.Exp(loglo + frac*(math.Log(hi.ColDens)-loglo))
	return LocalEstimate{
		J:           mid.J,
		ColDens:     mid.ColDens,
		Temperature: t,
		Ratio:       (odd / even) * mid.ColDens / interp,
	}, nil
}

//weightedRatio averages the local ratios with (2J+1)*N/g as weights.
//Only every other local estimate (0, 2, 4...) enters the average.
func weightedRatio(locals []LocalEstimate) float64 {
	ratios := make([]float64, 0, len(locals)/2+1)
	weights := make([]float64, 0, len(locals)/2+1)
	for i := 0; i < len(locals); i += 2 {
		ratios = append(ratios, locals[i].Ratio)
		weights = append(weights, float64(2*locals[i].J+1)*locals[i].ColDens)
	}
	return floats.Dot(ratios, weights) / floats.Sum(weights)
}

//fit does a weighted least squares fit of ln(N/g) vs E, with sqrt(N/g) as weights,
//and returns the intercept and slope.
func fit(sel h2.Levels) (float64, float64, error) {
	x := sel.Energies()
	y := make([]float64, len(sel))
	w := make([]float64, len(sel))
	for i, l := range sel {
		y[i] = math.Log(l.ColDens)
		w[i] = math.Sqrt(l.ColDens)
	}
	alpha, beta := stat.LinearRegression(x, y, w, false)
	if !(beta < 0) || math.IsInf(beta, 0) {
		return 0, 0, h2.Errorf(h2.DegenerateTemperature, "orthopara.fit", "slope %g gives no positive temperature", beta)
	}
	return alpha, beta, nil
}
