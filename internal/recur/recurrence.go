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

// Recurrence is the fully analyzed input: a linear recurrence of order
// k, its forcing term, and the block of initial conditions that pins
// down the free coefficients of its general solution.
type Recurrence struct {
	Order             int
	Coefficients      map[int]*big.Rat // j (1..Order) -> c_j, coefficient of s(n-j)
	Forcing           Expr             // F(n); Int(0) if the recurrence is homogeneous
	InitialConditions map[int]*big.Rat // i -> s(i), a contiguous block of length Order
	I0                int              // lowest initial-condition index
}

// AnalyzeResult is the Analyzer's output: the order, the homogeneous
// terms (kept for diagnostics), the forcing remainder, the per-offset
// coefficients, and the linearity verdict.
type AnalyzeResult struct {
	Order        int
	Homogeneous  Expr
	Forcing      Expr
	Coefficients map[int]*big.Rat
	Linear       bool
}

// Analyze classifies the equation rhs - s(n) = 0 (rhs being the parsed
// right-hand side of "s(n) = rhs") into its homogeneous part, forcing
// remainder, and per-offset coefficients. It walks the top-level
// addends of rhs - s(n) once expanded, routing each to the homogeneous
// bucket if it mentions s(·) and to the forcing bucket otherwise, and
// rejects any term that fails the linearity check along the way.
func Analyze(rhs Expr) (*AnalyzeResult, error) {
	eq := Expand(Sub(rhs, RecCall(0)))
	terms := addendsOf(eq)

	coeffs := make(map[int]*big.Rat)
	var homTerms, forceTerms []Expr
	order := 0

	for _, term := range terms {
		j, coeff, isHom, err := classifyTerm(term)
		if err != nil {
			return nil, err
		}
		if !isHom {
			forceTerms = append(forceTerms, term)
			continue
		}
		homTerms = append(homTerms, term)
		if j == 0 {
			continue // the -s(n) term itself; not part of coefficients
		}
		if existing, ok := coeffs[j]; ok {
			coeffs[j] = new(big.Rat).Add(existing, coeff)
		} else {
			coeffs[j] = coeff
		}
		if j > order {
			order = j
		}
	}

	if order == 0 {
		return nil, newErrAt(ParseConstraintViolated, eq, "recurrence has no s(n-j) term with j >= 1")
	}

	var hom Expr
	if len(homTerms) == 0 {
		hom = Int(0)
	} else {
		hom = Expand(Add(homTerms...))
	}
	var forcing Expr
	if len(forceTerms) == 0 {
		forcing = Int(0)
	} else {
		forcing = Expand(Add(forceTerms...))
	}

	return &AnalyzeResult{
		Order:        order,
		Homogeneous:  hom,
		Forcing:      forcing,
		Coefficients: coeffs,
		Linear:       true,
	}, nil
}

// classifyTerm decomposes one top-level addend into its s(n-j) offset
// (if any), its rational coefficient, and whether it belongs to the
// homogeneous part. A term is non-linear if s(·) occurs under a Pow
// with exponent != 1, if a Mul has two factors that both mention s, or
// if one factor mentions s and another mentions n (a non-constant
// coefficient on the recursive term).
func classifyTerm(term Expr) (j int, coeff *big.Rat, isHom bool, err error) {
	factors := factorsOf(term)
	coeff = big.NewRat(1, 1)
	recCount := 0
	mentionsN := false
	jFound := -1

	for _, f := range factors {
		switch {
		case f.kind == KindRecCall:
			recCount++
			jFound = f.j
		case f.kind == KindPow && MentionsRecCall(f.Base()):
			return 0, nil, false, newErrAt(NonLinear, term, "s(n-j) occurs raised to a power")
		case f.kind == KindRational:
			coeff.Mul(coeff, f.rat)
		default:
			if MentionsVar(f, VarN) {
				mentionsN = true
			}
		}
	}

	if recCount > 1 {
		return 0, nil, false, newErrAt(NonLinear, term, "two s(n-j) factors multiplied together")
	}
	if recCount == 1 && mentionsN {
		return 0, nil, false, newErrAt(NonLinear, term, "non-constant coefficient on s(n-j)")
	}
	if recCount == 0 {
		return 0, nil, false, nil
	}
	return jFound, coeff, true, nil
}

// NewRecurrence builds a Recurrence from the Analyzer's verdict on rhs
// together with the parsed initial-condition expressions, each of
// which must evaluate to a rational constant (no free symbols).
func NewRecurrence(rhs Expr, initial map[int]Expr) (*Recurrence, error) {
	analysis, err := Analyze(rhs)
	if err != nil {
		return nil, err
	}

	if len(initial) != analysis.Order {
		return nil, newErr(InitialSystemInconsistent,
			"expected %d initial condition(s) for an order-%d recurrence, got %d",
			analysis.Order, analysis.Order, len(initial))
	}

	conds := make(map[int]*big.Rat, len(initial))
	i0 := 0
	first := true
	for i, e := range initial {
		v, err := Eval(e, map[string]*big.Rat{})
		if err != nil {
			return nil, newErrAt(ParseConstraintViolated, e, "initial condition s(%d) is not a constant: %s", i, err)
		}
		conds[i] = v
		if first || i < i0 {
			i0 = i
			first = false
		}
	}
	for i := i0; i < i0+analysis.Order; i++ {
		if _, ok := conds[i]; !ok {
			return nil, newErr(InitialSystemInconsistent, "initial conditions are not a contiguous block starting at %d", i0)
		}
	}

	return &Recurrence{
		Order:             analysis.Order,
		Coefficients:      analysis.Coefficients,
		Forcing:           analysis.Forcing,
		InitialConditions: conds,
		I0:                i0,
	}, nil
}

// Coefficient returns c_j for 1 <= j <= Order, defaulting to 0 when
// absent from the map.
func (r *Recurrence) Coefficient(j int) *big.Rat {
	if c, ok := r.Coefficients[j]; ok {
		return c
	}
	return big.NewRat(0, 1)
}
