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
)

// Eval evaluates e to a rational number given a binding for every free
// symbol (including n, if e mentions it). RecCall nodes cannot be
// evaluated directly — a closed form never contains one — and yield an
// error if encountered; a caller that needs to unroll a recurrence
// should use Solver.EvaluateByIteration instead.
func Eval(e Expr, bindings map[string]*big.Rat) (*big.Rat, error) {
	switch e.kind {
	case KindRational:
		return new(big.Rat).Set(e.rat), nil

	case KindVar:
		v, ok := bindings[e.name]
		if !ok {
			return nil, fmt.Errorf("recur: unbound variable %q", e.name)
		}
		return new(big.Rat).Set(v), nil

	case KindRecCall:
		return nil, fmt.Errorf("recur: cannot evaluate s(n-%d) as a value; substitute a closed form first", e.j)

	case KindAdd:
		sum := big.NewRat(0, 1)
		for _, a := range e.args {
			v, err := Eval(a, bindings)
			if err != nil {
				return nil, err
			}
			sum.Add(sum, v)
		}
		return sum, nil

	case KindMul:
		prod := big.NewRat(1, 1)
		for _, a := range e.args {
			v, err := Eval(a, bindings)
			if err != nil {
				return nil, err
			}
			prod.Mul(prod, v)
		}
		return prod, nil

	case KindPow:
		base, err := Eval(e.Base(), bindings)
		if err != nil {
			return nil, err
		}
		expVal, err := Eval(e.Exp(), bindings)
		if err != nil {
			return nil, err
		}
		if !expVal.IsInt() {
			return nil, fmt.Errorf("recur: non-integer exponent %s", expVal.RatString())
		}
		return ratPow(base, expVal.Num().Int64())

	default:
		return nil, fmt.Errorf("recur: Eval: unhandled kind %s", e.kind)
	}
}

// ratPow raises base to the (possibly negative) integer power k,
// computed exactly over the rationals via binary exponentiation.
func ratPow(base *big.Rat, k int64) (*big.Rat, error) {
	if k == 0 {
		return big.NewRat(1, 1), nil
	}
	neg := k < 0
	if neg {
		k = -k
	}
	result := big.NewRat(1, 1)
	b := new(big.Rat).Set(base)
	for k > 0 {
		if k&1 == 1 {
			result.Mul(result, b)
		}
		b = new(big.Rat).Mul(b, b)
		k >>= 1
	}
	if neg {
		if result.Sign() == 0 {
			return nil, fmt.Errorf("recur: zero base raised to a negative power")
		}
		result.Inv(result)
	}
	return result, nil
}

// EvalAtN partially evaluates e at a concrete non-negative integer n,
// reducing every n-dependent rational sub-expression (n^k, b^n, and
// arithmetic between them) to a literal while leaving any other free
// symbol (the p_i_j / q_b_j unknowns) untouched as a Var. The result is
// an expression linear in those remaining unknowns, suitable as one
// side of an InitialFit or Undetermined equation.
func EvalAtN(e Expr, nVal *big.Rat) (Expr, error) {
	bindings := map[string]*big.Rat{VarN: nVal}
	return evalPartial(e, bindings)
}

func evalPartial(e Expr, bindings map[string]*big.Rat) (Expr, error) {
	switch e.kind {
	case KindRational:
		return e, nil

	case KindVar:
		if v, ok := bindings[e.name]; ok {
			return Rational(v), nil
		}
		return e, nil

	case KindRecCall:
		return e, nil

	case KindAdd:
		out := make([]Expr, len(e.args))
		for i, a := range e.args {
			v, err := evalPartial(a, bindings)
			if err != nil {
				return Expr{}, err
			}
			out[i] = v
		}
		return Expand(Add(out...)), nil

	case KindMul:
		out := make([]Expr, len(e.args))
		for i, a := range e.args {
			v, err := evalPartial(a, bindings)
			if err != nil {
				return Expr{}, err
			}
			out[i] = v
		}
		return Expand(Mul(out...)), nil

	case KindPow:
		base, err := evalPartial(e.Base(), bindings)
		if err != nil {
			return Expr{}, err
		}
		exp, err := evalPartial(e.Exp(), bindings)
		if err != nil {
			return Expr{}, err
		}
		if base.kind == KindRational && exp.kind == KindRational && exp.rat.IsInt() {
			v, err := ratPow(base.rat, exp.rat.Num().Int64())
			if err != nil {
				return Expr{}, err
			}
			return Rational(v), nil
		}
		// A non-integer exponent (the 1/2 of a square-root atom) is left
		// symbolic rather than evaluated; Expand's multinomial expansion
		// treats it as an opaque atom wherever it's raised to an integer
		// power by an enclosing node.
		return Pow(base, exp), nil

	default:
		return Expr{}, fmt.Errorf("recur: evalPartial: unhandled kind %s", e.kind)
	}
}
