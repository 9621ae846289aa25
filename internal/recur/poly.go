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
)

// Poly is a univariate polynomial in the characteristic-equation
// variable r, stored as rational coefficients from the constant term
// up: Coeffs[i] is the coefficient of r^i.
type Poly struct {
	Coeffs []*big.Rat
}

// NewPoly returns a polynomial with the given coefficients (constant
// term first). The slice is copied.
func NewPoly(coeffs ...*big.Rat) Poly {
	out := make([]*big.Rat, len(coeffs))
	for i, c := range coeffs {
		out[i] = new(big.Rat).Set(c)
	}
	return Poly{Coeffs: out}
}

// Degree returns the polynomial's degree, ignoring any trailing zero
// high-order coefficients.
func (p Poly) Degree() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if p.Coeffs[i].Sign() != 0 {
			return i
		}
	}
	return 0
}

// Eval evaluates the polynomial at x via Horner's method.
func (p Poly) Eval(x *big.Rat) *big.Rat {
	result := big.NewRat(0, 1)
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.Coeffs[i])
	}
	return result
}

// Expr renders the polynomial as Sum coeffs[i] * r^i, the characteristic
// equation's form.
func (p Poly) Expr() Expr {
	var terms []Expr
	for i, c := range p.Coeffs {
		if c.Sign() == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, Rational(c))
		case 1:
			terms = append(terms, Mul(Rational(c), Var(VarR)))
		default:
			terms = append(terms, Mul(Rational(c), Pow(Var(VarR), Int(int64(i)))))
		}
	}
	if len(terms) == 0 {
		return Int(0)
	}
	return Expand(Add(terms...))
}

// deflate divides p by (r - root) exactly, via synthetic division, and
// returns the quotient. root must be an exact root of p.
func (p Poly) deflate(root *big.Rat) Poly {
	n := len(p.Coeffs)
	quot := make([]*big.Rat, n-1)
	carry := new(big.Rat).Set(p.Coeffs[n-1])
	for i := n - 2; i >= 0; i-- {
		quot[i] = new(big.Rat).Set(carry)
		carry = new(big.Rat).Mul(carry, root)
		carry.Add(carry, p.Coeffs[i])
	}
	return Poly{Coeffs: quot}
}

// Root is one real root of a characteristic polynomial, represented
// either as an exact rational or (for irrational quadratic roots) as
// the symbolic expression p + q*sqrt(D), together with its
// multiplicity.
type Root struct {
	Value Expr
	Mult  int
}

// FindRealRoots extracts every real root of p together with its
// multiplicity, in the order discovered: rational roots first (via the
// Rational Root Theorem, repeatedly deflating), then the remaining
// quadratic factor (if any) via the quadratic formula. It never
// fabricates a complex root: if what's left over after rational-root
// extraction is a quadratic with negative discriminant, or a cubic or
// higher factor with no rational root, those roots are simply absent
// from the result, and the caller (CharEq/Solver) detects the
// multiplicity shortfall and reports ComplexRootsPresent.
func FindRealRoots(p Poly) []Root {
	var roots []Root
	cur := Poly{Coeffs: append([]*big.Rat(nil), p.Coeffs...)}

	for {
		deg := cur.Degree()
		if deg == 0 {
			return roots
		}
		if deg == 1 {
			a := cur.Coeffs[1]
			b := cur.Coeffs[0]
			r := new(big.Rat).Neg(b)
			r.Quo(r, a)
			roots = appendRoot(roots, Root{Value: Rational(r), Mult: 1})
			return roots
		}
		if deg == 2 {
			for _, qr := range quadraticRoots(cur.Coeffs[2], cur.Coeffs[1], cur.Coeffs[0]) {
				roots = appendRoot(roots, qr)
			}
			return roots
		}
		// degree >= 3: peel off one rational root at a time.
		root, ok := findOneRationalRoot(cur)
		if !ok {
			return roots // remaining factor is left unresolved
		}
		roots = appendRoot(roots, Root{Value: Rational(root), Mult: 1})
		cur = cur.deflate(root)
	}
}

// appendRoot merges a newly found rational root into roots, bumping
// the multiplicity of an existing equal root rather than duplicating
// it.
func appendRoot(roots []Root, r Root) []Root {
	if r.Value.kind == KindRational {
		for i := range roots {
			if roots[i].Value.kind == KindRational && roots[i].Value.rat.Cmp(r.Value.rat) == 0 {
				roots[i].Mult += r.Mult
				return roots
			}
		}
	}
	return append(roots, r)
}

// quadraticRoots solves a*r^2 + b*r + c = 0 over the reals.
func quadraticRoots(a, b, c *big.Rat) []Root {
	disc := new(big.Rat).Mul(b, b)
	four_ac := new(big.Rat).Mul(a, c)
	four_ac.Mul(four_ac, big.NewRat(4, 1))
	disc.Sub(disc, four_ac)

	if disc.Sign() < 0 {
		return nil // complex conjugate pair: not representable, not returned
	}

	twoA := new(big.Rat).Mul(a, big.NewRat(2, 1))
	negBOver2A := new(big.Rat).Neg(b)
	negBOver2A.Quo(negBOver2A, twoA)

	if sq, exact := rationalSqrt(disc); exact {
		half := new(big.Rat).Quo(sq, twoA)
		r1 := new(big.Rat).Add(negBOver2A, half)
		r2 := new(big.Rat).Sub(negBOver2A, half)
		if r1.Cmp(r2) == 0 {
			return []Root{{Value: Rational(r1), Mult: 2}}
		}
		return []Root{{Value: Rational(r1), Mult: 1}, {Value: Rational(r2), Mult: 1}}
	}

	// Irrational conjugate pair: p +/- q*sqrt(disc).
	qCoeff := new(big.Rat).Inv(twoA)
	sqrtTerm := Pow(Rational(disc), Rational(big.NewRat(1, 2)))
	plus := Expand(Add(Rational(negBOver2A), Mul(Rational(qCoeff), sqrtTerm)))
	negQ := new(big.Rat).Neg(qCoeff)
	minus := Expand(Add(Rational(negBOver2A), Mul(Rational(negQ), sqrtTerm)))
	return []Root{{Value: plus, Mult: 1}, {Value: minus, Mult: 1}}
}

// rationalSqrt returns sqrt(x) when x is a non-negative perfect-square
// rational, and reports whether the square root is exact.
func rationalSqrt(x *big.Rat) (*big.Rat, bool) {
	if x.Sign() < 0 {
		return nil, false
	}
	sn, okn := intSqrt(x.Num())
	sd, okd := intSqrt(x.Denom())
	if okn && okd {
		return new(big.Rat).SetFrac(sn, sd), true
	}
	return nil, false
}

func intSqrt(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 {
		return nil, false
	}
	s := new(big.Int).Sqrt(n)
	var sq big.Int
	sq.Mul(s, s)
	if sq.Cmp(n) == 0 {
		return s, true
	}
	return nil, false
}

// findOneRationalRoot searches for a single rational root of p via the
// Rational Root Theorem: after clearing denominators, a candidate
// root's numerator divides the (integer) constant term and its
// denominator divides the (integer) leading coefficient.
func findOneRationalRoot(p Poly) (*big.Rat, bool) {
	intCoeffs, _ := clearDenominators(p.Coeffs)
	n := len(intCoeffs)
	if n == 0 {
		return nil, false
	}
	if intCoeffs[0].Sign() == 0 {
		return big.NewRat(0, 1), true
	}
	leading := intCoeffs[n-1]
	constant := intCoeffs[0]

	for _, pNum := range divisors(constant) {
		for _, qDen := range divisors(leading) {
			for _, sign := range []int64{1, -1} {
				cand := new(big.Rat).SetFrac(pNum, qDen)
				if sign < 0 {
					cand.Neg(cand)
				}
				if p.Eval(cand).Sign() == 0 {
					return cand, true
				}
			}
		}
	}
	return nil, false
}

// clearDenominators scales coeffs by the LCM of their denominators,
// returning the resulting integer coefficients (constant term first)
// and the scale factor applied.
func clearDenominators(coeffs []*big.Rat) ([]*big.Int, *big.Int) {
	lcm := big.NewInt(1)
	for _, c := range coeffs {
		d := c.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Div(lcm, g)
		lcm.Mul(lcm, d)
	}
	out := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		v := new(big.Int).Mul(c.Num(), new(big.Int).Div(lcm, c.Denom()))
		out[i] = v
	}
	return out, lcm
}

// divisors returns the positive divisors of |n| (n != 0).
func divisors(n *big.Int) []*big.Int {
	abs := new(big.Int).Abs(n)
	if abs.Sign() == 0 {
		return []*big.Int{big.NewInt(1)}
	}
	var out []*big.Int
	i := big.NewInt(1)
	one := big.NewInt(1)
	for i.Cmp(abs) <= 0 {
		var rem big.Int
		rem.Mod(abs, i)
		if rem.Sign() == 0 {
			out = append(out, new(big.Int).Set(i))
		}
		i.Add(i, one)
	}
	return out
}

// MultiplicityOf returns the multiplicity of value among roots (0 if
// value is not a root), matching on canonical form.
func MultiplicityOf(roots []Root, value Expr) int {
	for _, r := range roots {
		if Equal(r.Value, value) {
			return r.Mult
		}
	}
	return 0
}

// TotalMultiplicity sums the multiplicities across roots.
func TotalMultiplicity(roots []Root) int {
	total := 0
	for _, r := range roots {
		total += r.Mult
	}
	return total
}
