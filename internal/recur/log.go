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
	"io"

	"github.com/rs/zerolog"
)

// Logger wraps the Solver's injected log sink in a small Msg/Msgf
// interface backed by zerolog, so callers can discard output by
// default or redirect it without the core importing a CLI-level
// logging setup.
type Logger struct {
	z zerolog.Logger
}

// newLogger builds a Logger over w; a nil sink logs nowhere.
func newLogger(w io.Writer) Logger {
	if w == nil {
		w = io.Discard
	}
	return Logger{z: zerolog.New(w).With().Timestamp().Logger()}
}

func (l Logger) Msg(msg string) { l.z.Info().Msg(msg) }

func (l Logger) Msgf(format string, args ...interface{}) { l.z.Info().Msgf(format, args...) }

func (l Logger) Debugf(format string, args ...interface{}) { l.z.Debug().Msgf(format, args...) }

func (l Logger) Errf(format string, args ...interface{}) { l.z.Error().Msgf(format, args...) }
