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

// ForcingBucket groups the forcing terms that share an exponential
// base b (1, when a term carries no b^n factor at all) together with
// the highest polynomial-in-n degree observed among them.
type ForcingBucket struct {
	Base      *big.Rat
	MaxDegree int
}

// ClassifyForcing decomposes the expanded forcing expression into its
// buckets, in the order each base is first encountered among F(n)'s
// top-level addends.
func ClassifyForcing(forcing Expr) ([]ForcingBucket, error) {
	terms := addendsOf(Expand(forcing))
	var buckets []ForcingBucket
	index := make(map[string]int)

	for _, t := range terms {
		if t.IsZero() {
			continue
		}
		base, degree, err := classifyForcingTerm(t)
		if err != nil {
			return nil, err
		}
		key := base.RatString()
		if i, ok := index[key]; ok {
			if degree > buckets[i].MaxDegree {
				buckets[i].MaxDegree = degree
			}
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, ForcingBucket{Base: base, MaxDegree: degree})
	}
	return buckets, nil
}

// classifyForcingTerm decomposes one forcing addend into its
// exponential base and polynomial degree, rejecting any factor shape
// outside {rational, n, n^d, b^n}.
func classifyForcingTerm(term Expr) (base *big.Rat, degree int, err error) {
	base = big.NewRat(1, 1)
	degree = 0

	for _, f := range factorsOf(term) {
		switch {
		case f.kind == KindRational:
			// contributes only to the (unused here) coefficient

		case f.kind == KindVar && f.name == VarN:
			degree = 1

		case f.kind == KindPow && f.Base().kind == KindVar && f.Base().name == VarN &&
			f.Exp().kind == KindRational && f.Exp().rat.IsInt() && f.Exp().rat.Sign() >= 0:
			degree = int(f.Exp().rat.Num().Int64())

		case f.kind == KindPow && f.Exp().kind == KindVar && f.Exp().name == VarN:
			if f.Base().kind != KindRational {
				return nil, 0, newErrAt(ForcingUnsupported, term, "exponential base must be a rational constant")
			}
			base.Mul(base, f.Base().rat)

		default:
			return nil, 0, newErrAt(ForcingUnsupported, term, "forcing term outside {rational, n^d, b^n}")
		}
	}
	return base, degree, nil
}

// ParticularTemplate emits Theorem-6's candidate particular solution:
// for each bucket, n^mu(b) * (q_{b,0} + ... + q_{b,d_b}*n^d_b) * b^n,
// summed over buckets in the order given. roots
// supplies the multiplicity lookup mu(b). It also returns the q_{b,j}
// symbol names registered, for Undetermined to solve over.
func ParticularTemplate(buckets []ForcingBucket, roots []Root) (Expr, []string) {
	var blocks []Expr
	var free []string

	for b, bucket := range buckets {
		mu := MultiplicityOf(roots, Rational(bucket.Base))

		var powers []Expr
		for j := 0; j <= bucket.MaxDegree; j++ {
			sym := QCoeff(b, j)
			free = append(free, sym.Name())
			if j == 0 {
				powers = append(powers, sym)
			} else {
				powers = append(powers, Mul(sym, Pow(Var(VarN), Int(int64(j)))))
			}
		}
		var poly Expr
		if len(powers) == 1 {
			poly = powers[0]
		} else {
			poly = Add(powers...)
		}

		block := Mul(poly, Pow(Rational(bucket.Base), Var(VarN)))
		if mu > 0 {
			block = Mul(Pow(Var(VarN), Int(int64(mu))), block)
		}
		blocks = append(blocks, block)
	}

	switch len(blocks) {
	case 0:
		return Int(0), free
	case 1:
		return blocks[0], free
	default:
		return Add(blocks...), free
	}
}
