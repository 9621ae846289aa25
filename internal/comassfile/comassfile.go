// Package comassfile reads comass<dd>.txt input files: an "eqs := [ ... ];"
// block listing a single recurrence equation and its initial conditions,
// one statement per element.
package comassfile

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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bfix/comass/internal/recur"
)

// ParsedFile is the result of parsing one comass<dd>.txt file: the
// right-hand side of its s(n) = ... recurrence, and its initial
// conditions keyed by index.
type ParsedFile struct {
	RecurrenceRHS recur.Expr
	Initial       map[int]recur.Expr
}

// Parse reads a comass<dd>.txt file: a single "eqs := [ <statements>
// ];" block, each statement either the recurrence "s(n) = <rhs>" or an
// initial condition "s(<i>) = <rhs>".
func Parse(r io.Reader) (*ParsedFile, error) {
	scanner := bufio.NewScanner(r)
	var sb strings.Builder
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sb.WriteString(line)
		sb.WriteByte(' ')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	raw := strings.TrimSpace(sb.String())
	if !strings.HasPrefix(raw, "eqs") {
		return nil, &recur.SolveError{Kind: recur.ParseConstraintViolated, Msg: "missing 'eqs := [ ... ];' header"}
	}
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, &recur.SolveError{Kind: recur.ParseConstraintViolated, Msg: "missing '[ ... ]' equation list"}
	}

	pf := &ParsedFile{Initial: make(map[int]recur.Expr)}
	haveRecurrence := false

	for _, stmt := range splitTopLevel(raw[start+1:end], ',') {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		eqPos := strings.Index(stmt, "=")
		if eqPos == -1 {
			return nil, &recur.SolveError{Kind: recur.ParseConstraintViolated, Msg: fmt.Sprintf("statement %q has no '='", stmt)}
		}
		lhs := strings.TrimSpace(stmt[:eqPos])
		rhsText := strings.TrimSpace(stmt[eqPos+1:])

		isRecurrence, idx, err := parseLHS(lhs)
		if err != nil {
			return nil, err
		}
		rhsExpr, err := ParseExpr(rhsText)
		if err != nil {
			return nil, err
		}

		if isRecurrence {
			if haveRecurrence {
				return nil, &recur.SolveError{Kind: recur.ParseConstraintViolated, Msg: "more than one s(n) = ... recurrence line"}
			}
			pf.RecurrenceRHS = rhsExpr
			haveRecurrence = true
			continue
		}
		if _, dup := pf.Initial[idx]; dup {
			return nil, &recur.SolveError{Kind: recur.ParseConstraintViolated, Msg: fmt.Sprintf("duplicate initial condition for s(%d)", idx)}
		}
		pf.Initial[idx] = rhsExpr
	}

	if !haveRecurrence {
		return nil, &recur.SolveError{Kind: recur.ParseConstraintViolated, Msg: "no s(n) = ... recurrence line found"}
	}
	return pf, nil
}

// parseLHS classifies a statement's left-hand side: "s(n)" marks the
// recurrence definition itself, "s(<i>)" for a non-negative integer
// literal i marks an initial condition at index i.
func parseLHS(s string) (isRecurrence bool, index int, err error) {
	if !strings.HasPrefix(s, "s(") || !strings.HasSuffix(s, ")") {
		return false, 0, &recur.SolveError{Kind: recur.ParseConstraintViolated, Msg: fmt.Sprintf("left-hand side %q is not an s(...) application", s)}
	}
	inner := strings.TrimSpace(s[2 : len(s)-1])
	if inner == recur.VarN {
		return true, 0, nil
	}
	idx, convErr := strconv.Atoi(inner)
	if convErr != nil || idx < 0 {
		return false, 0, &recur.SolveError{Kind: recur.ParseConstraintViolated, Msg: fmt.Sprintf("invalid initial-condition index %q", inner)}
	}
	return false, idx, nil
}

// splitTopLevel splits s on sep, ignoring occurrences of sep nested
// inside parentheses.
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
