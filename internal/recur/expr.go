// Package recur implements the symbolic recurrence-relation solver: the
// algebraic expression representation, polynomial root finder, exact
// rational linear solver, and the Theorem-6 solving pipeline built on
// top of them.
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
	"fmt"
	"math/big"
	"sort"
)

// Kind identifies the head shape of an Expr node.
type Kind int

// The node kinds that make up the algebra. Every transformation in this
// package is a total switch over these six cases.
const (
	KindRational Kind = iota
	KindVar
	KindRecCall
	KindAdd
	KindMul
	KindPow
)

func (k Kind) String() string {
	switch k {
	case KindRational:
		return "Rational"
	case KindVar:
		return "Var"
	case KindRecCall:
		return "RecCall"
	case KindAdd:
		return "Add"
	case KindMul:
		return "Mul"
	case KindPow:
		return "Pow"
	default:
		return "Unknown"
	}
}

// Distinguished variable names used throughout the solver.
const (
	VarN = "n" // domain variable, non-negative integer
	VarR = "r" // characteristic-equation variable
)

// Expr is an algebraic expression over rationals, the domain symbol n,
// the recurrence symbol s(·), sums, products, integer, n-valued or
// square-root (exponent 1/2) powers, and symbolic unknowns (p_i_j, q_i_j). Expr is a value type:
// substitution always produces a new Expr rather than mutating one in
// place, so the same sub-expression can be shared freely without ever
// introducing a cycle.
type Expr struct {
	kind Kind

	rat  *big.Rat // KindRational
	name string   // KindVar
	j    int      // KindRecCall: s(n-j)

	args []Expr // KindAdd, KindMul: operands

	base *Expr // KindPow
	exp  *Expr // KindPow
}

// Rational returns a literal rational-number expression.
func Rational(r *big.Rat) Expr {
	return Expr{kind: KindRational, rat: new(big.Rat).Set(r)}
}

// Int returns a literal integer expression.
func Int(v int64) Expr {
	return Expr{kind: KindRational, rat: new(big.Rat).SetInt64(v)}
}

// Var returns a symbolic variable expression.
func Var(name string) Expr {
	return Expr{kind: KindVar, name: name}
}

// PCoeff returns the general-solution coefficient symbol p_{i,j}.
func PCoeff(i, j int) Expr {
	return Var(fmt.Sprintf("p_%d_%d", i, j))
}

// QCoeff returns the particular-solution coefficient symbol q_{b,j},
// where b is a stable index into the forcing buckets (not the base
// value itself, which need not be an integer).
func QCoeff(b, j int) Expr {
	return Var(fmt.Sprintf("q_%d_%d", b, j))
}

// RecCall returns the application s(n-j) for j >= 0; j == 0 denotes s(n).
func RecCall(j int) Expr {
	if j < 0 {
		panic("recur: negative RecCall offset")
	}
	return Expr{kind: KindRecCall, j: j}
}

// Add returns the (unflattened) sum of the given operands.
func Add(es ...Expr) Expr {
	return Expr{kind: KindAdd, args: append([]Expr(nil), es...)}
}

// Mul returns the (unflattened) product of the given operands.
func Mul(es ...Expr) Expr {
	return Expr{kind: KindMul, args: append([]Expr(nil), es...)}
}

// Pow returns base^exp. exp is an integer-literal Expr, the symbol n
// (for forcing terms of the form c^n), or the literal 1/2 (the
// square-root atom of an irrational characteristic root).
func Pow(base, exp Expr) Expr {
	b, e := base, exp
	return Expr{kind: KindPow, base: &b, exp: &e}
}

// Neg returns -e.
func Neg(e Expr) Expr {
	return Mul(Int(-1), e)
}

// Sub returns a - b.
func Sub(a, b Expr) Expr {
	return Add(a, Neg(b))
}

// Kind returns the head kind of the expression.
func (e Expr) Kind() Kind { return e.kind }

// Rat returns the rational value of a KindRational expression. Panics
// on any other kind.
func (e Expr) Rat() *big.Rat {
	if e.kind != KindRational {
		panic("recur: Rat() on non-rational expression")
	}
	return e.rat
}

// Name returns the variable name of a KindVar expression. Panics on any
// other kind.
func (e Expr) Name() string {
	if e.kind != KindVar {
		panic("recur: Name() on non-var expression")
	}
	return e.name
}

// Offset returns the j of a KindRecCall expression s(n-j). Panics on
// any other kind.
func (e Expr) Offset() int {
	if e.kind != KindRecCall {
		panic("recur: Offset() on non-RecCall expression")
	}
	return e.j
}

// Args returns the operands of a KindAdd or KindMul expression. Panics
// on any other kind.
func (e Expr) Args() []Expr {
	if e.kind != KindAdd && e.kind != KindMul {
		panic("recur: Args() on non-Add/Mul expression")
	}
	return e.args
}

// Base and Exp return the operands of a KindPow expression. Panic on
// any other kind.
func (e Expr) Base() Expr {
	if e.kind != KindPow {
		panic("recur: Base() on non-Pow expression")
	}
	return *e.base
}

func (e Expr) Exp() Expr {
	if e.kind != KindPow {
		panic("recur: Exp() on non-Pow expression")
	}
	return *e.exp
}

// IsZero reports whether e is the rational literal 0.
func (e Expr) IsZero() bool {
	return e.kind == KindRational && e.rat.Sign() == 0
}

// IsOne reports whether e is the rational literal 1.
func (e Expr) IsOne() bool {
	return e.kind == KindRational && e.rat.Cmp(big.NewRat(1, 1)) == 0
}

// MentionsRecCall reports whether e contains any s(n-j) application.
func MentionsRecCall(e Expr) bool {
	switch e.kind {
	case KindRecCall:
		return true
	case KindAdd, KindMul:
		for _, a := range e.args {
			if MentionsRecCall(a) {
				return true
			}
		}
		return false
	case KindPow:
		return MentionsRecCall(e.Base()) || MentionsRecCall(e.Exp())
	default:
		return false
	}
}

// MentionsVar reports whether e contains the variable with the given name.
func MentionsVar(e Expr, name string) bool {
	switch e.kind {
	case KindVar:
		return e.name == name
	case KindAdd, KindMul:
		for _, a := range e.args {
			if MentionsVar(a, name) {
				return true
			}
		}
		return false
	case KindPow:
		return MentionsVar(e.Base(), name) || MentionsVar(e.Exp(), name)
	default:
		return false
	}
}

// FreeVars returns the sorted, de-duplicated set of variable names
// occurring anywhere in e.
func FreeVars(e Expr) []string {
	seen := make(map[string]bool)
	var walk func(Expr)
	walk = func(e Expr) {
		switch e.kind {
		case KindVar:
			seen[e.name] = true
		case KindAdd, KindMul:
			for _, a := range e.args {
				walk(a)
			}
		case KindPow:
			walk(e.Base())
			walk(e.Exp())
		}
	}
	walk(e)
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Substitute returns a copy of e with every structural occurrence of
// target replaced by replacement. Matching is by canonical equality
// (Equal), so substitution looks through associativity/ordering of
// Add/Mul operands but not through algebraic equivalence in general.
func Substitute(e, target, replacement Expr) Expr {
	if Equal(e, target) {
		return replacement
	}
	switch e.kind {
	case KindAdd:
		out := make([]Expr, len(e.args))
		for i, a := range e.args {
			out[i] = Substitute(a, target, replacement)
		}
		return Add(out...)
	case KindMul:
		out := make([]Expr, len(e.args))
		for i, a := range e.args {
			out[i] = Substitute(a, target, replacement)
		}
		return Mul(out...)
	case KindPow:
		return Pow(Substitute(e.Base(), target, replacement), Substitute(e.Exp(), target, replacement))
	default:
		return e
	}
}

// SubstituteVar replaces every occurrence of the variable name with
// replacement. It is a thin, common-case wrapper over Substitute.
func SubstituteVar(e Expr, name string, replacement Expr) Expr {
	return Substitute(e, Var(name), replacement)
}

// ShiftN returns e with every free occurrence of n replaced by n+delta
// (delta may be negative). A b^n factor with rational base b becomes
// b^delta * b^n rather than b^(n+delta), so shifted exponentials keep
// the same b^n atom as unshifted ones and Expand collects them
// together. RecCall nodes are returned unchanged: within this solver
// ShiftN is only ever applied to pure-n expressions (the particular
// template), never to expressions still containing RecCall.
func ShiftN(e Expr, delta int) Expr {
	switch e.kind {
	case KindVar:
		if e.name == VarN {
			if delta == 0 {
				return e
			}
			if delta > 0 {
				return Add(Var(VarN), Int(int64(delta)))
			}
			return Sub(Var(VarN), Int(int64(-delta)))
		}
		return e
	case KindAdd:
		out := make([]Expr, len(e.args))
		for i, a := range e.args {
			out[i] = ShiftN(a, delta)
		}
		return Add(out...)
	case KindMul:
		out := make([]Expr, len(e.args))
		for i, a := range e.args {
			out[i] = ShiftN(a, delta)
		}
		return Mul(out...)
	case KindPow:
		if b, x := e.Base(), e.Exp(); b.kind == KindRational && x.kind == KindVar && x.name == VarN {
			if f, err := ratPow(b.rat, int64(delta)); err == nil {
				return Mul(Rational(f), e)
			}
		}
		return Pow(ShiftN(e.Base(), delta), ShiftN(e.Exp(), delta))
	default:
		return e
	}
}
