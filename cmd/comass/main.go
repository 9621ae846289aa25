package main

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
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/bfix/comass/internal/batch"
)

// main entry point: solve every comass<dd>.txt file in a directory.
func main() {
	var (
		outDir    string
		verifyN   int
		verifyTol float64
		verbose   bool
		quiet     bool
	)
	flag.StringVarP(&outDir, "output", "o", "", "Output directory (default: same as input)")
	flag.IntVarP(&verifyN, "verify", "n", 20, "Number of n to cross-check against iteration (0 disables)")
	flag.Float64VarP(&verifyTol, "tolerance", "t", 1e-6, "Absolute tolerance for the verification check")
	flag.BoolVarP(&verbose, "verbose", "v", false, "Debug-level logging")
	flag.BoolVarP(&quiet, "quiet", "q", false, "Suppress all logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: comass [flags] <input-dir>")
		os.Exit(2)
	}
	inDir := flag.Arg(0)

	switch {
	case quiet:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Info().Str("input", inDir).Msg("comass starting")

	results, failed, err := batch.Run(batch.Options{
		InputDir:  inDir,
		OutputDir: outDir,
		VerifyN:   verifyN,
		VerifyTol: verifyTol,
		LogSink:   log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("batch run could not start")
	}

	for _, r := range results {
		if r.Err != nil {
			log.Error().Str("file", r.InputPath).Err(r.Err).Msg("solve failed")
			continue
		}
		log.Info().Str("file", r.InputPath).Str("out", r.OutputPath).Msg("solved")
	}

	log.Info().Int("total", len(results)).Int("failed", failed).Msg("comass done")
	if failed > 0 {
		os.Exit(1)
	}
}
