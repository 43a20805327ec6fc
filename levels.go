/*
 * levels.go, part of h2coldens.
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

package h2

import (
	"fmt"
	"sort"
)

// CM2K converts energies in cm^-1 to K (hc/k_B, in K cm).
const CM2K = 1.438777

// Nuclear spin degeneracies of the ortho (odd J) and para (even J) states.
const (
	OrthoWeight = 3.0
	ParaWeight  = 1.0
)

// IsOrtho returns true if the rotational level j belongs to ortho-H2.
func IsOrtho(j int) bool {
	return j%2 != 0
}

// StatWeight returns the total statistical weight of rotational level j,
// (2J+1) times the nuclear spin degeneracy.
func StatWeight(j int) float64 {
	if IsOrtho(j) {
		return OrthoWeight * float64(2*j+1)
	}
	return ParaWeight * float64(2*j+1)
}

// Level is one row of the level column density table of a simulation run.
type Level struct {
	V       int     //vibrational quantum number
	J       int     //rotational quantum number
	Energy  float64 //cm^-1
	ColDens float64 //column density per statistical weight, N/g
}

// Ortho returns true if the level belongs to ortho-H2.
func (L Level) Ortho() bool {
	return IsOrtho(L.J)
}

func (L Level) String() string {
	return fmt.Sprintf("v=%d J=%d E=%.2f N/g=%.4e", L.V, L.J, L.Energy, L.ColDens)
}

// Levels is an ordered set of levels from one run. It implements sort.Interface,
// ordering by vibrational and then rotational quantum number.
type Levels []Level

func (L Levels) Len() int      { return len(L) }
func (L Levels) Swap(i, j int) { L[i], L[j] = L[j], L[i] }
func (L Levels) Less(i, j int) bool {
	if L[i].V != L[j].V {
		return L[i].V < L[j].V
	}
	return L[i].J < L[j].J
}

// Sort sorts the levels in place and returns them, for chaining.
func (L Levels) Sort() Levels {
	sort.Stable(L)
	return L
}

// Vib returns a new slice with the levels of vibrational level v, in the
// original order.
func (L Levels) Vib(v int) Levels {
	ret := make(Levels, 0, len(L)/4+1)
	for _, l := range L {
		if l.V == v {
			ret = append(ret, l)
		}
	}
	return ret
}

// Ground returns the levels of the ground vibrational state.
func (L Levels) Ground() Levels {
	return L.Vib(0)
}

// Range returns the levels with jmin<=J<=jmax, whatever their v.
func (L Levels) Range(jmin, jmax int) Levels {
	var ret Levels
	for _, l := range L {
		if l.J >= jmin && l.J <= jmax {
			ret = append(ret, l)
		}
	}
	return ret
}

// Find returns the level with the given quantum numbers, and false if
// there is none.
func (L Levels) Find(v, j int) (Level, bool) {
	for _, l := range L {
		if l.V == v && l.J == j {
			return l, true
		}
	}
	return Level{}, false
}

// Energies returns the level energies, in cm^-1.
func (L Levels) Energies() []float64 {
	ret := make([]float64, len(L))
	for i, l := range L {
		ret[i] = l.Energy
	}
	return ret
}

// ColDens returns the column densities per statistical weight.
func (L Levels) ColDens() []float64 {
	ret := make([]float64, len(L))
	for i, l := range L {
		ret[i] = l.ColDens
	}
	return ret
}

//DiagramSet groups the levels the way they are shown in a level column density
//diagram: element 0 holds v=0 without J=0 and J=1, element i holds v=i, up to maxV.
//J=0 and J=1 are left out as they keep most of their pre-shock population.
func DiagramSet(L Levels, maxV int) []Levels {
	ret := make([]Levels, maxV+1)
	for i := range ret {
		ret[i] = make(Levels, 0)
	}
	for _, l := range L {
		if l.V < 0 || l.V > maxV {
			continue
		}
		if l.V == 0 && (l.J == 0 || l.J == 1) {
			continue
		}
		ret[l.V] = append(ret[l.V], l)
	}
	return ret
}
