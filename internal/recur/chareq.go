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

import "math/big"

// CharacteristicPoly builds r^k - Sum_{j=1..k} c_j * r^(k-j) from r's
// order and per-offset coefficients. Coeffs are stored
// constant-term-first, so index k-j holds -c_j and index k holds 1.
func CharacteristicPoly(r *Recurrence) Poly {
	k := r.Order
	coeffs := make([]*big.Rat, k+1)
	for i := range coeffs {
		coeffs[i] = big.NewRat(0, 1)
	}
	coeffs[k] = big.NewRat(1, 1)
	for j := 1; j <= k; j++ {
		coeffs[k-j] = new(big.Rat).Neg(r.Coefficient(j))
	}
	return Poly{Coeffs: coeffs}
}
