/*
 * coldens.go, part of h2coldens.
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

//Package coldens reads the text tables written by the shock code: the level
//column densities (coldens_H2.txt) and the H2 chemistry profile (sim_data_h2_chemistry.txt).
//Tables are whitespace-delimited, and lines starting with '!' are comments.
package coldens

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	h2 "github.com/rmera/h2coldens"
)

//Names of the tables in a simulation output directory.
const (
	LevelsName    = "coldens_H2.txt"
	ChemistryName = "sim_data_h2_chemistry.txt"
)

//Columns used from each table.
const (
	colV       = 1
	colJ       = 2
	colEnergy  = 4
	colColDens = 5

	colZ    = 0
	colDiss = 7
)

const maxLine = 1 << 20

//ReadColumns reads the requested columns (0-based) of a whitespace-delimited table.
//Blank lines and lines starting with '!' are skipped. It returns one slice per requested column,
//in the order requested.
func ReadColumns(r io.Reader, cols ...int) ([][]float64, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("coldens: no columns requested")
	}
	maxcol := 0
	for _, c := range cols {
		if c < 0 {
			return nil, fmt.Errorf("coldens: invalid column %d", c)
		}
		if c > maxcol {
			maxcol = c
		}
	}
	ret := make([][]float64, len(cols))
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lineno int
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if i := strings.IndexByte(line, '!'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) <= maxcol {
			return nil, fmt.Errorf("coldens: line %d: %d fields, column %d requested", lineno, len(fields), maxcol)
		}
		for i, c := range cols {
			v, err := parseFloat(fields[c])
			if err != nil {
				return nil, fmt.Errorf("coldens: line %d column %d: %w", lineno, c, err)
			}
			ret[i] = append(ret[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("coldens: reading line %d: %w", lineno+1, err)
	}
	return ret, nil
}

//parseFloat also takes Fortran double precision exponents (1.0D+05).
func parseFloat(s string) (float64, error) {
	if strings.ContainsAny(s, "dD") {
		s = strings.NewReplacer("d", "e", "D", "E").Replace(s)
	}
	return strconv.ParseFloat(s, 64)
}

//quantum converts a quantum number read as a float to int.
func quantum(f float64) (int, error) {
	r := math.Round(f)
	if r != f || r < 0 || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%g is not a valid quantum number", f)
	}
	return int(r), nil
}

//ReadLevels reads a level column density table. The levels are returned in the
//order they appear.
func ReadLevels(r io.Reader) (h2.Levels, error) {
	cols, err := ReadColumns(r, colV, colJ, colEnergy, colColDens)
	if err != nil {
		return nil, err
	}
	ret := make(h2.Levels, len(cols[0]))
	for i := range ret {
		v, err := quantum(cols[0][i])
		if err != nil {
			return nil, fmt.Errorf("coldens: level %d: v: %w", i, err)
		}
		j, err := quantum(cols[1][i])
		if err != nil {
			return nil, fmt.Errorf("coldens: level %d: J: %w", i, err)
		}
		ret[i] = h2.Level{V: v, J: j, Energy: cols[2][i], ColDens: cols[3][i]}
	}
	return ret, nil
}

//Profile is the H2 dissociation rate along the shock.
type Profile struct {
	Z    []float64 //cm
	Rate []float64 //cm^-3 s^-1
}

//Len returns the number of points in the profile.
func (P *Profile) Len() int { return len(P.Z) }

//ReadDissociation reads the dissociation rate profile from a chemistry table.
func ReadDissociation(r io.Reader) (*Profile, error) {
	cols, err := ReadColumns(r, colZ, colDiss)
	if err != nil {
		return nil, err
	}
	return &Profile{Z: cols[0], Rate: cols[1]}, nil
}

//LevelsFile reads the level table in the simulation output directory dir,
//plain or compressed.
func LevelsFile(dir string) (h2.Levels, error) {
	var ret h2.Levels
	err := withFile(dir, LevelsName, func(r io.Reader) error {
		var err error
		ret, err = ReadLevels(r)
		return err
	})
	return ret, err
}

//DissociationFile reads the dissociation profile in the simulation output directory dir,
//plain or compressed.
func DissociationFile(dir string) (*Profile, error) {
	var ret *Profile
	err := withFile(dir, ChemistryName, func(r io.Reader) error {
		var err error
		ret, err = ReadDissociation(r)
		return err
	})
	return ret, err
}

func withFile(dir, base string, f func(io.Reader) error) error {
	name, err := find(dir, base)
	if err != nil {
		return err
	}
	in, err := Open(name)
	if err != nil {
		return err
	}
	defer in.Close()
	if err = f(in); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
