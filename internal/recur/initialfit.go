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

// InitialFit solves for the general-solution coefficients p_{i,j}: for
// S(n) = particular + general (closedCandidate), substitute each
// initial condition's index to obtain one linear equation per (i, v),
// solve for freeP (the p_{i,j} symbols in GeneralSolution's discovery
// order), and substitute the solution back into S to produce the
// ClosedForm.
func InitialFit(rec *Recurrence, closedCandidate Expr, freeP []string) (Expr, map[string]*big.Rat, error) {
	var eqs []LinearEq
	for i := rec.I0; i < rec.I0+rec.Order; i++ {
		v := rec.InitialConditions[i]

		atI, err := EvalAtN(closedCandidate, big.NewRat(int64(i), 1))
		if err != nil {
			return Expr{}, nil, err
		}
		atI = Expand(atI)

		coeffs, constT := splitLinearIn(atI, "p_")
		eqs = append(eqs, LinearEq{Coeffs: coeffs, Const: new(big.Rat).Sub(v, constT)})
	}

	pvals, err := SolveSystem(eqs, freeP, InitialSystemInconsistent)
	if err != nil {
		return Expr{}, nil, err
	}

	closed := closedCandidate
	for name, val := range pvals {
		closed = SubstituteVar(closed, name, Rational(val))
	}
	closed = Expand(closed)

	return closed, pvals, nil
}

// splitLinearIn decomposes an expanded expression known to be linear
// in the symbols sharing the given prefix into a coefficient map (one
// entry per such symbol encountered) and the remaining constant term.
func splitLinearIn(e Expr, prefix string) (map[string]*big.Rat, *big.Rat) {
	coeffs := make(map[string]*big.Rat)
	constT := big.NewRat(0, 1)

	for _, term := range addendsOf(e) {
		c, qName, isConst := splitCoeffForPrefix(term, prefix)
		if isConst {
			constT.Add(constT, c)
			continue
		}
		if existing, ok := coeffs[qName]; ok {
			existing.Add(existing, c)
		} else {
			coeffs[qName] = new(big.Rat).Set(c)
		}
	}
	return coeffs, constT
}

// splitCoeffForPrefix splits one monomial into its rational coefficient
// and, if present, the single symbol carrying the given prefix;
// isConst reports that no such symbol occurred (a pure constant term).
func splitCoeffForPrefix(term Expr, prefix string) (coeff *big.Rat, name string, isConst bool) {
	c, parts := splitCoeff(term)
	for _, p := range parts {
		if p.kind == KindVar && len(p.name) >= len(prefix) && p.name[:len(prefix)] == prefix {
			return c, p.name, false
		}
	}
	return c, "", true
}
