package recur

//----------------------------------------------------------------------
// This file is part of comass.
// Copyright (C) 2011-2020 Bernd Fix
//
// comass is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// comass is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

// GeneralSolution emits the homogeneous general solution by iterating
// roots in the order given -- the caller is
// responsible for that order being the stable discovery order from
// FindRealRoots, since the p_{i,j} numbering below is keyed on
// position in the slice, not on the root's value. For the i-th root
// rho_i of multiplicity m_i it emits
//
//	(p_{i,0} + p_{i,1}*n + ... + p_{i,m_i-1}*n^(m_i-1)) * rho_i^n
//
// and sums the blocks across all roots. It also returns every p_{i,j}
// symbol name registered along the way, in the same order, for
// InitialFit to solve over.
func GeneralSolution(roots []Root) (Expr, []string) {
	var blocks []Expr
	var free []string

	for i, root := range roots {
		var powers []Expr
		for j := 0; j < root.Mult; j++ {
			sym := PCoeff(i, j)
			free = append(free, sym.Name())
			if j == 0 {
				powers = append(powers, sym)
			} else if j == 1 {
				powers = append(powers, Mul(sym, Var(VarN)))
			} else {
				powers = append(powers, Mul(sym, Pow(Var(VarN), Int(int64(j)))))
			}
		}
		var coeffPoly Expr
		if len(powers) == 1 {
			coeffPoly = powers[0]
		} else {
			coeffPoly = Add(powers...)
		}
		blocks = append(blocks, Mul(coeffPoly, Pow(root.Value, Var(VarN))))
	}

	if len(blocks) == 1 {
		return blocks[0], free
	}
	return Add(blocks...), free
}
