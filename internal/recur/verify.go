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
	"math"
	"math/big"

	"gonum.org/v1/gonum/floats"
)

// EvaluateClosedForm solves (if not already solved) and substitutes n
// into the result. When cfg.PreferExact is set, it first tries exact
// big.Rat arithmetic via Eval, which only succeeds when the closed
// form is free of irrational (sqrt) atoms; otherwise, and always when
// PreferExact is unset, it falls back to float64 via EvalFloat, since
// a closed form with irrational characteristic roots carries sqrt
// atoms that big.Rat cannot represent -- the cancellation that makes
// the whole expression rational again only happens numerically.
func (s *Solver) EvaluateClosedForm(n int) (float64, error) {
	closed, err := s.Solve()
	if err != nil {
		return 0, err
	}
	if s.cfg.PreferExact {
		if v, err := Eval(closed, map[string]*big.Rat{VarN: big.NewRat(int64(n), 1)}); err == nil {
			f, _ := new(big.Float).SetRat(v).Float64()
			return f, nil
		}
	}
	return EvalFloat(closed, n)
}

// EvaluateByIteration performs a bottom-up unrolling of the original
// recurrence from its initial conditions, memoizing every value
// computed along the way. It never touches the closed form, so it
// serves as an independent check on it.
func (s *Solver) EvaluateByIteration(n int) (*big.Rat, error) {
	memo := make(map[int]*big.Rat, n-s.rec.I0+1)
	for i, v := range s.rec.InitialConditions {
		memo[i] = v
	}

	var compute func(m int) (*big.Rat, error)
	compute = func(m int) (*big.Rat, error) {
		if v, ok := memo[m]; ok {
			return v, nil
		}
		if m < s.rec.I0 {
			return nil, fmt.Errorf("recur: index %d is below the domain lower bound %d", m, s.rec.I0)
		}
		sum := big.NewRat(0, 1)
		for j := 1; j <= s.rec.Order; j++ {
			prev, err := compute(m - j)
			if err != nil {
				return nil, err
			}
			sum.Add(sum, new(big.Rat).Mul(s.rec.Coefficient(j), prev))
		}
		fVal, err := Eval(s.rec.Forcing, map[string]*big.Rat{VarN: big.NewRat(int64(m), 1)})
		if err != nil {
			return nil, err
		}
		sum.Add(sum, fVal)
		memo[m] = sum
		return sum, nil
	}

	return compute(n)
}

// VerifyAgreement checks that EvaluateClosedForm and
// EvaluateByIteration agree within tol over [from, from+count).
func VerifyAgreement(s *Solver, from, count int, tol float64) error {
	for n := from; n < from+count; n++ {
		cf, err := s.EvaluateClosedForm(n)
		if err != nil {
			return err
		}
		it, err := s.EvaluateByIteration(n)
		if err != nil {
			return err
		}
		itF, _ := new(big.Float).SetRat(it).Float64()
		if !floats.EqualWithinAbs(cf, itF, tol) {
			return fmt.Errorf("recur: closed form and iteration disagree at n=%d: %g vs %g", n, cf, itF)
		}
	}
	return nil
}

// EvalFloat evaluates e at the concrete integer n over float64,
// tolerating the non-integer exponents (sqrt atoms) that exact Eval
// rejects.
func EvalFloat(e Expr, n int) (float64, error) {
	return evalFloatRec(e, float64(n))
}

func evalFloatRec(e Expr, nVal float64) (float64, error) {
	switch e.kind {
	case KindRational:
		f, _ := new(big.Float).SetRat(e.rat).Float64()
		return f, nil

	case KindVar:
		if e.name == VarN {
			return nVal, nil
		}
		return 0, fmt.Errorf("recur: unbound variable %q in float evaluation", e.name)

	case KindRecCall:
		return 0, fmt.Errorf("recur: cannot float-evaluate s(n-%d) directly", e.j)

	case KindAdd:
		sum := 0.0
		for _, a := range e.args {
			v, err := evalFloatRec(a, nVal)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sum, nil

	case KindMul:
		prod := 1.0
		for _, a := range e.args {
			v, err := evalFloatRec(a, nVal)
			if err != nil {
				return 0, err
			}
			prod *= v
		}
		return prod, nil

	case KindPow:
		base, err := evalFloatRec(e.Base(), nVal)
		if err != nil {
			return 0, err
		}
		exp, err := evalFloatRec(e.Exp(), nVal)
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil

	default:
		return 0, fmt.Errorf("recur: evalFloatRec: unhandled kind %s", e.kind)
	}
}
