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

import "fmt"

// ErrorKind classifies a SolveError. Callers should branch on Kind
// (via errors.As) rather than matching error text.
type ErrorKind string

const (
	// ParseConstraintViolated: the input references an unsupported
	// construct (e.g. s(n-n), an unknown identifier, a non-constant
	// initial condition, a right-hand side with no s(n-j) term).
	ParseConstraintViolated ErrorKind = "parse_constraint_violated"
	// NonLinear: the Analyzer detected s-products, s-powers (such as
	// s(n)^2), or a coefficient on s(n-j) that depends on n.
	NonLinear ErrorKind = "non_linear"
	// ComplexRootsPresent: root multiplicities over the reals do not
	// sum to the recurrence order.
	ComplexRootsPresent ErrorKind = "complex_roots_present"
	// ForcingUnsupported: a forcing term falls outside
	// {rational, n^d, b^n, and products thereof}.
	ForcingUnsupported ErrorKind = "forcing_unsupported"
	// UndeterminedSystemInconsistent: the particular-coefficients
	// linear system has no solution.
	UndeterminedSystemInconsistent ErrorKind = "undetermined_system_inconsistent"
	// InitialSystemInconsistent: the initial-conditions linear system
	// has no solution (wrong count, or contradictory).
	InitialSystemInconsistent ErrorKind = "initial_system_inconsistent"
	// ResidualNonzero: after substituting solved coefficients, the
	// recurrence residual does not simplify to zero.
	ResidualNonzero ErrorKind = "residual_nonzero"
)

// SolveError is the error type surfaced by every core operation. It
// carries the offending sub-expression (when there is one) so the
// caller can report it without re-deriving it from the message.
type SolveError struct {
	Kind ErrorKind
	Msg  string
	Expr *Expr // offending sub-expression, or nil
}

func (e *SolveError) Error() string {
	if e.Expr != nil {
		return fmt.Sprintf("%s: %s (in %s)", e.Kind, e.Msg, e.Expr.String())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// newErr builds a SolveError with no offending expression attached.
func newErr(kind ErrorKind, format string, args ...interface{}) error {
	return &SolveError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// newErrAt builds a SolveError pinned to the given sub-expression.
func newErrAt(kind ErrorKind, at Expr, format string, args ...interface{}) error {
	return &SolveError{Kind: kind, Msg: fmt.Sprintf(format, args...), Expr: &at}
}
