// Package batch drives internal/recur over a directory of comass<dd>.txt
// input files, writing one comass<dd>-dir.txt closed-form file per
// input and continuing past any single file's failure.
package batch

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
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/bfix/comass/internal/comassfile"
	"github.com/bfix/comass/internal/recur"
)

// inputPattern matches comass<dd>.txt, excluding the -dir.txt outputs
// this package itself produces.
var inputPattern = regexp.MustCompile(`^comass\d+\.txt$`)

// Options configures one Run over a directory, mirroring the flags
// cmd/comass exposes.
type Options struct {
	InputDir  string
	OutputDir string // defaults to InputDir when empty
	VerifyN   int     // number of n to check with VerifyAgreement; 0 disables
	VerifyTol float64 // tolerance passed to VerifyAgreement
	LogSink   io.Writer
}

// FileResult is the outcome of processing one input file.
type FileResult struct {
	InputPath  string
	OutputPath string
	Err        error
}

// Run walks opts.InputDir for comass<dd>.txt files in sorted order,
// solves each one, and writes its closed form to comass<dd>-dir.txt in
// opts.OutputDir. It never stops early: a failure on one file is
// recorded in its FileResult and the walk continues. The second
// return value is the count of files that failed.
func Run(opts Options) ([]FileResult, int, error) {
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = opts.InputDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, 0, fmt.Errorf("batch: cannot create output directory %q: %w", outDir, err)
	}

	entries, err := os.ReadDir(opts.InputDir)
	if err != nil {
		return nil, 0, fmt.Errorf("batch: cannot read input directory %q: %w", opts.InputDir, err)
	}

	var names []string
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		if inputPattern.MatchString(ent.Name()) {
			names = append(names, ent.Name())
		}
	}
	sort.Strings(names)

	var results []FileResult
	failed := 0
	for _, name := range names {
		inPath := filepath.Join(opts.InputDir, name)
		outPath := filepath.Join(outDir, outputName(name))
		err := processOne(inPath, outPath, opts)
		results = append(results, FileResult{InputPath: inPath, OutputPath: outPath, Err: err})
		if err != nil {
			failed++
		}
	}
	return results, failed, nil
}

// outputName derives comass<dd>-dir.txt from comass<dd>.txt.
func outputName(inputName string) string {
	ext := filepath.Ext(inputName)
	return inputName[:len(inputName)-len(ext)] + "-dir" + ext
}

// processOne parses, solves, optionally verifies, and writes a single
// file. The destination file is only created once the closed form
// exists in memory, so a failed solve never leaves a truncated output
// behind.
func processOne(inPath, outPath string, opts Options) error {
	src, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	defer src.Close()

	parsed, err := comassfile.Parse(src)
	if err != nil {
		return fmt.Errorf("batch: parsing %s: %w", inPath, err)
	}

	rec, err := recur.NewRecurrence(parsed.RecurrenceRHS, parsed.Initial)
	if err != nil {
		return fmt.Errorf("batch: analyzing %s: %w", inPath, err)
	}

	cfg := recur.DefaultConfig()
	cfg.LogSink = opts.LogSink
	solver := recur.NewSolver(rec, cfg)
	closed, err := solver.Solve()
	if err != nil {
		return fmt.Errorf("batch: solving %s: %w", inPath, err)
	}

	if opts.VerifyN > 0 {
		if err := recur.VerifyAgreement(solver, rec.I0, opts.VerifyN, opts.VerifyTol); err != nil {
			return fmt.Errorf("batch: verifying %s: %w", inPath, err)
		}
	}

	dst, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	defer dst.Close()

	if _, err := fmt.Fprintf(dst, "sdir := n -> %s;\n", closed.String()); err != nil {
		return fmt.Errorf("batch: writing %s: %w", outPath, err)
	}
	return nil
}
