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

import (
	"math/big"
	"strings"
)

// Undetermined solves for the q_{b,j} coefficients of the particular
// template: it forms the residual
//
//	R(n) = Sum_{j=1..k} c_j * P(n-j) - P(n) + F(n)
//
// expands it fully, groups the resulting monomials by their (b, e)
// signature -- the n^e * b^n factors left over once each monomial's
// rational coefficient and at most one q symbol are split off -- and
// solves the resulting linear system. freeQ is the q_{b,j} symbol
// list in the order ParticularTemplate registered them; any symbol
// that happens not to appear in the residual at all is, correctly,
// left free and so solved to zero.
func Undetermined(rec *Recurrence, particular Expr, freeQ []string) (map[string]*big.Rat, error) {
	var terms []Expr
	for j := 1; j <= rec.Order; j++ {
		cj := rec.Coefficient(j)
		if cj.Sign() == 0 {
			continue
		}
		terms = append(terms, Mul(Rational(cj), ShiftN(particular, -j)))
	}
	terms = append(terms, Neg(particular))
	terms = append(terms, rec.Forcing)
	residual := Expand(Add(terms...))

	type group struct {
		coeffs map[string]*big.Rat
		constT *big.Rat
	}
	groups := make(map[string]*group)
	var order []string

	for _, term := range addendsOf(residual) {
		if term.IsZero() {
			continue
		}
		coeff, qName, key := decomposeResidualTerm(term)
		g, ok := groups[key]
		if !ok {
			g = &group{coeffs: make(map[string]*big.Rat), constT: big.NewRat(0, 1)}
			groups[key] = g
			order = append(order, key)
		}
		if qName == "" {
			g.constT.Add(g.constT, coeff)
			continue
		}
		if existing, ok := g.coeffs[qName]; ok {
			existing.Add(existing, coeff)
		} else {
			g.coeffs[qName] = new(big.Rat).Set(coeff)
		}
	}

	var eqs []LinearEq
	for _, key := range order {
		g := groups[key]
		eqs = append(eqs, LinearEq{Coeffs: g.coeffs, Const: new(big.Rat).Neg(g.constT)})
	}

	qvals, err := SolveSystem(eqs, freeQ, UndeterminedSystemInconsistent)
	if err != nil {
		return nil, err
	}

	check := residual
	for name, val := range qvals {
		check = SubstituteVar(check, name, Rational(val))
	}
	check = Expand(check)
	if !check.IsZero() {
		return nil, newErrAt(ResidualNonzero, check, "particular-solution back-substitution did not reduce to zero")
	}

	return qvals, nil
}

// decomposeResidualTerm splits one (already normalized) residual
// monomial into its rational coefficient, the q_{b,j} symbol it
// carries (empty if none -- the term is a pure (b,e)-group constant),
// and the canonical key of its remaining n^e * b^n atoms.
func decomposeResidualTerm(term Expr) (coeff *big.Rat, qName string, key string) {
	c, parts := splitCoeff(term)
	var rest []Expr
	for _, p := range parts {
		if qName == "" && p.kind == KindVar && strings.HasPrefix(p.name, "q_") {
			qName = p.name
			continue
		}
		rest = append(rest, p)
	}
	if len(rest) == 0 {
		key = "1"
	} else {
		key = CanonKey(Mul(rest...))
	}
	return c, qName, key
}
