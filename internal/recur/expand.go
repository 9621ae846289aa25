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
	"sort"
)

// Expand rewrites e into normal form: a sum of products, with constants
// absorbed into a single rational coefficient per term and like terms
// (identical non-rational factors) combined. The result is either a
// single KindAdd of KindMul terms, a single KindMul, or an atom — never
// a KindAdd nested inside a KindAdd, per the Expr invariant.
func Expand(e Expr) Expr {
	switch e.kind {
	case KindRational, KindVar, KindRecCall:
		return e

	case KindAdd:
		var terms []Expr
		for _, a := range e.args {
			terms = append(terms, addendsOf(Expand(a))...)
		}
		return combineTerms(terms)

	case KindMul:
		factors := make([]Expr, len(e.args))
		for i, a := range e.args {
			factors[i] = Expand(a)
		}
		return distributeMul(factors)

	case KindPow:
		base := Expand(e.Base())
		if base.IsOne() {
			// 1 to any power (the 1^n of a base-1 forcing bucket) is 1.
			return Int(1)
		}
		exp := e.Exp()
		if exp.kind == KindRational && exp.rat.IsInt() {
			k := exp.rat.Num().Int64()
			if k >= 0 {
				return expandIntPow(base, int(k))
			}
		}
		// Symbolic exponent (the b^n forcing pattern) or a negative
		// power: not further expandable, just rebuild over the
		// expanded base.
		return Pow(base, exp)

	default:
		panic("recur: Expand: unhandled kind " + e.kind.String())
	}
}

// addendsOf returns the top-level summands of e, treating a non-Add
// expression as a single-term sum.
func addendsOf(e Expr) []Expr {
	if e.kind == KindAdd {
		return e.args
	}
	return []Expr{e}
}

// factorsOf returns the top-level factors of e, treating a non-Mul
// expression as a single-factor product.
func factorsOf(e Expr) []Expr {
	if e.kind == KindMul {
		return e.args
	}
	return []Expr{e}
}

// expandIntPow expands base^k (k >= 0) by repeated symbolic
// multiplication, distributing over Add bases.
func expandIntPow(base Expr, k int) Expr {
	factors := make([]Expr, k)
	for i := range factors {
		factors[i] = base
	}
	return distributeMul(factors)
}

// distributeMul multiplies out a list of (already expanded) factors,
// distributing any Add factor over the running sum of product terms.
func distributeMul(factors []Expr) Expr {
	terms := []Expr{Int(1)}
	for _, f := range factors {
		parts := addendsOf(f)
		next := make([]Expr, 0, len(terms)*len(parts))
		for _, t := range terms {
			for _, p := range parts {
				next = append(next, mulMonomials(t, p))
			}
		}
		terms = next
	}
	return combineTerms(terms)
}

// atomPower pairs an atomic base expression with the integer exponent
// it occurs to within one monomial.
type atomPower struct {
	base Expr
	exp  int
}

// atomDecompose splits a factor into (base, exponent) so that
// multiplying repeated occurrences of the same base can be folded into
// a single Pow. Factors whose exponent is not an integer literal (the
// b^n forcing pattern) are treated as their own indivisible base with
// exponent 1.
func atomDecompose(e Expr) (Expr, int) {
	if e.kind == KindPow {
		exp := e.Exp()
		if exp.kind == KindRational && exp.rat.IsInt() {
			return e.Base(), int(exp.rat.Num().Int64())
		}
	}
	return e, 1
}

// mulMonomials multiplies two already-normalized monomials (or atoms)
// into a single normalized monomial.
func mulMonomials(a, b Expr) Expr {
	return buildMonomial(append(append([]Expr(nil), factorsOf(a)...), factorsOf(b)...))
}

// buildMonomial normalizes a flat list of multiplicative factors into a
// single coefficient times a canonically-ordered product of atoms.
func buildMonomial(factors []Expr) Expr {
	coeff := big.NewRat(1, 1)
	atoms := make(map[string]*atomPower)
	var order []string

	for _, f := range factors {
		if f.kind == KindRational {
			coeff.Mul(coeff, f.rat)
			continue
		}
		base, exp := atomDecompose(f)
		key := CanonKey(base)
		if ap, ok := atoms[key]; ok {
			ap.exp += exp
		} else {
			atoms[key] = &atomPower{base: base, exp: exp}
			order = append(order, key)
		}
	}
	if coeff.Sign() == 0 {
		return Int(0)
	}
	sort.Strings(order)

	var parts []Expr
	for _, key := range order {
		ap := atoms[key]
		switch {
		case ap.exp == 0:
			// contributes 1, skip
		case ap.exp == 1:
			parts = append(parts, ap.base)
		default:
			parts = append(parts, Pow(ap.base, Int(int64(ap.exp))))
		}
	}
	if len(parts) == 0 {
		return Rational(coeff)
	}
	if coeff.Cmp(big.NewRat(1, 1)) == 0 && len(parts) == 1 {
		return parts[0]
	}
	if coeff.Cmp(big.NewRat(1, 1)) == 0 {
		return Mul(parts...)
	}
	return Mul(append([]Expr{Rational(coeff)}, parts...)...)
}

// combineTerms groups a flat list of monomials (as produced by
// buildMonomial) by their non-coefficient factors and sums coefficients
// across terms that share the same factor signature.
func combineTerms(terms []Expr) Expr {
	type bucket struct {
		coeff *big.Rat
		parts []Expr
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, t := range terms {
		t = normalizeTerm(t)
		coeff, parts := splitCoeff(t)
		if coeff.Sign() == 0 {
			continue
		}
		key := CanonKey(Mul(parts...))
		if b, ok := buckets[key]; ok {
			b.coeff.Add(b.coeff, coeff)
		} else {
			buckets[key] = &bucket{coeff: new(big.Rat).Set(coeff), parts: parts}
			order = append(order, key)
		}
	}
	sort.Strings(order)

	var out []Expr
	for _, key := range order {
		b := buckets[key]
		if b.coeff.Sign() == 0 {
			continue
		}
		out = append(out, reassemble(b.coeff, b.parts))
	}
	switch len(out) {
	case 0:
		return Int(0)
	case 1:
		return out[0]
	default:
		return Add(out...)
	}
}

// normalizeTerm re-runs a single already-built monomial through
// buildMonomial so that terms arriving from different code paths (e.g.
// a bare atom versus a Mul) share one canonical shape before splitting.
func normalizeTerm(e Expr) Expr {
	return buildMonomial(factorsOf(e))
}

// splitCoeff separates a normalized monomial into its rational
// coefficient and the (already sorted) list of non-rational factors.
func splitCoeff(e Expr) (*big.Rat, []Expr) {
	if e.kind == KindRational {
		return e.rat, nil
	}
	var parts []Expr
	coeff := big.NewRat(1, 1)
	for _, f := range factorsOf(e) {
		if f.kind == KindRational {
			coeff.Mul(coeff, f.rat)
			continue
		}
		parts = append(parts, f)
	}
	return coeff, parts
}

// reassemble rebuilds coeff * parts... into a single Expr, collapsing
// the trivial cases of coeff==1 or no remaining parts.
func reassemble(coeff *big.Rat, parts []Expr) Expr {
	if len(parts) == 0 {
		return Rational(coeff)
	}
	if coeff.Cmp(big.NewRat(1, 1)) == 0 {
		if len(parts) == 1 {
			return parts[0]
		}
		return Mul(parts...)
	}
	return Mul(append([]Expr{Rational(coeff)}, parts...)...)
}
