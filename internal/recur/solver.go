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

// Solver is bound to one Recurrence and orchestrates Analyzer ->
// CharEq -> Roots -> HomSolution -> (if forcing) ParticularTemplate ->
// Undetermined -> InitialFit -> simplify -> emit. It caches the
// ClosedForm once computed, so a second Solve call is free and
// deterministically returns byte-identical output.
type Solver struct {
	cfg Config
	log Logger
	rec *Recurrence

	closedForm *Expr
	roots      []Root
}

// NewSolver binds a Solver to rec under cfg.
func NewSolver(rec *Recurrence, cfg Config) *Solver {
	return &Solver{
		cfg: cfg,
		log: newLogger(cfg.LogSink),
		rec: rec,
	}
}

// Solve runs the full pipeline and returns the closed-form expression
// in n alone. It is safe to call more than once; the second call
// returns the cached result without recomputation.
func (s *Solver) Solve() (Expr, error) {
	if s.closedForm != nil {
		return *s.closedForm, nil
	}

	charPoly := CharacteristicPoly(s.rec)
	roots := FindRealRoots(charPoly)
	if total := TotalMultiplicity(roots); total < s.rec.Order {
		return Expr{}, newErrAt(ComplexRootsPresent, charPoly.Expr(),
			"real root multiplicities sum to %d, expected order %d", total, s.rec.Order)
	}
	s.roots = roots
	s.log.Debugf("characteristic polynomial %s has %d real root(s)", charPoly.Expr(), len(roots))

	general, freeP := GeneralSolution(roots)
	candidate := general

	if !s.rec.Forcing.IsZero() {
		buckets, err := ClassifyForcing(s.rec.Forcing)
		if err != nil {
			return Expr{}, err
		}
		particular, freeQ := ParticularTemplate(buckets, roots)

		qvals, err := Undetermined(s.rec, particular, freeQ)
		if err != nil {
			return Expr{}, err
		}
		for name, val := range qvals {
			particular = SubstituteVar(particular, name, Rational(val))
		}
		particular = Expand(particular)
		s.log.Debugf("particular solution %s", particular)

		candidate = Expand(Add(particular, general))
	}

	closed, _, err := InitialFit(s.rec, candidate, freeP)
	if err != nil {
		return Expr{}, err
	}
	if s.cfg.SimplifyAfterSolve {
		closed = Expand(closed)
	}

	s.closedForm = &closed
	s.log.Msgf("solved closed form: %s", closed)
	return closed, nil
}
