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
	"strconv"
	"strings"
)

// String renders e using the output surface syntax: '^' for
// exponentiation (including the '(E)^(1/2)' square-root shape that
// falls directly out of a Pow node with exponent 1/2), '*' for
// products, and explicit parenthesization wherever operator precedence
// would otherwise be ambiguous.
func (e Expr) String() string {
	return render(e)
}

func render(e Expr) string {
	switch e.kind {
	case KindRational:
		return e.rat.RatString()

	case KindVar:
		return e.name

	case KindRecCall:
		if e.j == 0 {
			return "s(n)"
		}
		return "s(n-" + strconv.Itoa(e.j) + ")"

	case KindAdd:
		var sb strings.Builder
		for i, a := range e.args {
			s := render(a)
			neg := strings.HasPrefix(s, "-")
			if neg {
				s = s[1:]
			}
			if i == 0 {
				if neg {
					sb.WriteByte('-')
				}
			} else if neg {
				sb.WriteByte('-')
			} else {
				sb.WriteByte('+')
			}
			sb.WriteString(s)
		}
		return sb.String()

	case KindMul:
		parts := make([]string, len(e.args))
		for i, a := range e.args {
			parts[i] = renderFactor(a)
		}
		return strings.Join(parts, "*")

	case KindPow:
		base := renderFactor(e.Base())
		if b := e.Base(); b.kind == KindPow || b.kind == KindMul || (b.kind == KindRational && !b.rat.IsInt()) {
			base = "(" + render(b) + ")"
		}
		return base + "^" + renderExp(e.Exp())

	default:
		panic("recur: render: unhandled kind " + e.kind.String())
	}
}

// renderFactor renders e as it should appear as one factor of a
// product (or the base of a power): sums and negative literals are
// parenthesized so the surrounding '*'/'^' stays unambiguous.
func renderFactor(e Expr) string {
	s := render(e)
	switch {
	case e.kind == KindAdd:
		return "(" + s + ")"
	case e.kind == KindRational && e.rat.Sign() < 0:
		return "(" + s + ")"
	default:
		return s
	}
}

// renderExp renders e as it should appear as an exponent: non-integer
// or negative rational exponents (the '(1/2)' of a square root) are
// parenthesized.
func renderExp(e Expr) string {
	s := render(e)
	if e.kind == KindRational && (!e.rat.IsInt() || e.rat.Sign() < 0) {
		return "(" + s + ")"
	}
	return s
}
