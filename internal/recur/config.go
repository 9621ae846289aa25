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

import "io"

// Config governs one Solver instance. These three tunables are the
// only ones the core exposes; everything else (verification
// count/precision, quiet/verbose) belongs to the CLI driver, not the
// core.
type Config struct {
	LogSink io.Writer // nil is a valid no-op sink
	// PreferExact has EvaluateClosedForm try exact big.Rat arithmetic
	// first, falling back to float64 only when the closed form carries
	// an irrational (sqrt) atom that exact evaluation rejects. With it
	// false, EvaluateClosedForm always evaluates over float64.
	PreferExact        bool
	SimplifyAfterSolve bool
}

// DefaultConfig returns the Config a bare Solver should use absent
// explicit overrides.
func DefaultConfig() Config {
	return Config{
		LogSink:            nil,
		PreferExact:        true,
		SimplifyAfterSolve: true,
	}
}
