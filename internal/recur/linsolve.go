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

import "math/big"

// LinearEq is one equation of a linear system, expressed as a sparse
// map of unknown name to its coefficient plus the constant right-hand
// side: sum(Coeffs[name] * name) == Const.
type LinearEq struct {
	Coeffs map[string]*big.Rat
	Const  *big.Rat
}

// SolveSystem solves the linear system eqs over the given unknowns
// (in caller-supplied discovery order, which becomes the column order
// of the underlying matrix) via Gauss-Jordan elimination over exact
// rationals. When the system is under-determined, every free unknown
// is set to zero. When the system has no solution, it returns a
// *SolveError of kind onInconsistent.
func SolveSystem(eqs []LinearEq, unknowns []string, onInconsistent ErrorKind) (map[string]*big.Rat, error) {
	rows := len(eqs)
	cols := len(unknowns)
	colOf := make(map[string]int, cols)
	for i, u := range unknowns {
		colOf[u] = i
	}

	A := make([][]*big.Rat, rows)
	b := make([]*big.Rat, rows)
	for i, eq := range eqs {
		row := make([]*big.Rat, cols)
		for j := range row {
			row[j] = big.NewRat(0, 1)
		}
		for name, c := range eq.Coeffs {
			if j, ok := colOf[name]; ok {
				row[j] = new(big.Rat).Set(c)
			}
		}
		A[i] = row
		b[i] = new(big.Rat).Set(eq.Const)
	}

	x, err := solveLinear(rows, cols, A, b)
	if err != nil {
		return nil, newErr(onInconsistent, "%s", err.Error())
	}

	out := make(map[string]*big.Rat, cols)
	for i, u := range unknowns {
		out[u] = x[i]
	}
	return out, nil
}

// solveLinear row-reduces the augmented matrix [A|b] to reduced row
// echelon form and reads off a solution with every free column set to
// zero. It reports inconsistency (a row reducing to 0 = nonzero) as a
// plain error; SolveSystem wraps it into the caller's ErrorKind.
func solveLinear(rows, cols int, A [][]*big.Rat, b []*big.Rat) ([]*big.Rat, error) {
	aug := make([][]*big.Rat, rows)
	for i := 0; i < rows; i++ {
		aug[i] = make([]*big.Rat, cols+1)
		for j := 0; j < cols; j++ {
			aug[i][j] = new(big.Rat).Set(A[i][j])
		}
		aug[i][cols] = new(big.Rat).Set(b[i])
	}

	pivotRowOfCol := make([]int, cols)
	for i := range pivotRowOfCol {
		pivotRowOfCol[i] = -1
	}

	row := 0
	for col := 0; col < cols && row < rows; col++ {
		sel := -1
		for r := row; r < rows; r++ {
			if aug[r][col].Sign() != 0 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		aug[row], aug[sel] = aug[sel], aug[row]

		inv := new(big.Rat).Inv(aug[row][col])
		for j := col; j <= cols; j++ {
			aug[row][j].Mul(aug[row][j], inv)
		}

		for r := 0; r < rows; r++ {
			if r == row {
				continue
			}
			factor := new(big.Rat).Set(aug[r][col])
			if factor.Sign() == 0 {
				continue
			}
			for j := col; j <= cols; j++ {
				tmp := new(big.Rat).Mul(factor, aug[row][j])
				aug[r][j].Sub(aug[r][j], tmp)
			}
		}

		pivotRowOfCol[col] = row
		row++
	}

	for r := row; r < rows; r++ {
		if aug[r][cols].Sign() != 0 {
			return nil, &inconsistentError{}
		}
	}

	x := make([]*big.Rat, cols)
	for col := 0; col < cols; col++ {
		if r := pivotRowOfCol[col]; r >= 0 {
			x[col] = new(big.Rat).Set(aug[r][cols])
		} else {
			x[col] = big.NewRat(0, 1)
		}
	}
	return x, nil
}

type inconsistentError struct{}

func (*inconsistentError) Error() string {
	return "linear system has no solution"
}
