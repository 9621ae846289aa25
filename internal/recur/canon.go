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
	"sort"
	"strings"
)

// CanonKey returns a string that is identical for two expressions that
// differ only in the ordering of Add/Mul operands, and distinct
// otherwise. It is the basis for structural equality (Equal) and for
// grouping like terms during Expand.
func CanonKey(e Expr) string {
	switch e.kind {
	case KindRational:
		return "Q(" + e.rat.RatString() + ")"
	case KindVar:
		return "V(" + e.name + ")"
	case KindRecCall:
		return fmt.Sprintf("S(%d)", e.j)
	case KindAdd:
		keys := make([]string, len(e.args))
		for i, a := range e.args {
			keys[i] = CanonKey(a)
		}
		sort.Strings(keys)
		return "A[" + strings.Join(keys, ",") + "]"
	case KindMul:
		keys := make([]string, len(e.args))
		for i, a := range e.args {
			keys[i] = CanonKey(a)
		}
		sort.Strings(keys)
		return "M[" + strings.Join(keys, ",") + "]"
	case KindPow:
		return "P(" + CanonKey(e.Base()) + "," + CanonKey(e.Exp()) + ")"
	default:
		panic("recur: CanonKey: unhandled kind " + e.kind.String())
	}
}

// Equal reports whether a and b are structurally identical up to
// reordering of Add/Mul operands. It does not perform algebraic
// simplification: 2*n and n*2 are Equal, but n+n and 2*n are not
// (callers that need algebraic equivalence should Expand first).
func Equal(a, b Expr) bool {
	return CanonKey(a) == CanonKey(b)
}
