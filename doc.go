/*
 * doc.go, part of h2coldens.
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

/*Package h2 is the main package of the h2coldens library. It provides the level structures
used to hold H2 rotational/vibrational level populations from shock-chemistry simulations,
selection helpers for those levels, the physical constants shared by the other packages,
and the error type all of them return.


	**h2coldens Capabilities**


    Reads the level column density tables (coldens_H2.txt) and the chemistry
	tables (sim_data_h2_chemistry.txt) written by the shock code, plain or
	compressed with zstd, gzip or flate (package coldens).

    Estimates the rotational excitation temperature and the ortho/para
	ratio of the ground vibrational state (package orthopara).

    Plots level column density diagrams, dissociation rate profiles,
	comparisons between runs and excitation diagrams with the fitted
	temperature (package h2plot).

    Processes whole sets of runs, given in a JSON file, concurrently
	(package runset), and exposes all of the above in the h2coldens
	command.

Column densities are always stored per statistical weight (N/g), as the
shock code writes them. Energies are in cm^-1.
*/
package h2
