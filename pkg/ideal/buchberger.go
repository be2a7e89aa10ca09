// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ideal

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/consensys/go-groebner/pkg/util/field"
	log "github.com/sirupsen/logrus"
)

// ErrNotConverged indicates standardization was abandoned before a Gröbner
// basis was reached, either because a budget was exhausted or because the
// context was cancelled.
var ErrNotConverged = errors.New("basis did not converge")

// ErrNotGroebnerBasis indicates a set of polynomials fails Buchberger's
// criterion.
var ErrNotGroebnerBasis = errors.New("not a Gröbner basis")

// Standardize runs Buchberger's algorithm over a set of generators, returning a
// Gröbner basis for the ideal they generate under the lexicographic ordering.
// The basis begins as the non-zero generators (in order).  Each round then
// takes a snapshot of the basis and, for every pair i < j of the snapshot,
// reduces S(bᵢ,bⱼ) modulo the snapshot, appending any non-zero remainder to the
// basis.  Remainders appended during a round are only paired up in the next
// round.  The algorithm stops after the first round which appends nothing.
// The result is deterministic, and neither reduced nor minimal.
func Standardize[F field.Element[F]](ctx context.Context, generators []poly.Polynomial[F],
	opts ...Option) ([]poly.Polynomial[F], error) {
	var (
		options = NewOptions(opts...)
		basis   = slices.DeleteFunc(slices.Clone(generators), poly.Polynomial[F].IsZero)
	)
	//
	if options.sizeExceeded(len(basis)) {
		return nil, notConverged(0, len(basis), "basis size limit (%d) exceeded", options.MaxBasisSize)
	}
	//
	for round := uint(1); ; round++ {
		var (
			snapshot = slices.Clip(basis)
			pairs    = 0
		)
		//
		if options.roundsExceeded(round) {
			return nil, notConverged(round-1, len(basis), "round limit (%d) exceeded", options.MaxRounds)
		}
		//
		for i := range snapshot {
			for j := i + 1; j < len(snapshot); j++ {
				if err := ctx.Err(); err != nil {
					log.Warnf("standardization cancelled in round %d (basis size %d)", round, len(basis))
					return nil, fmt.Errorf("%w: %w", ErrNotConverged, err)
				}
				//
				pairs++
				//
				if r := poly.Rem(poly.SPolynomial(snapshot[i], snapshot[j]), snapshot); !r.IsZero() {
					basis = append(basis, r)
					//
					if options.sizeExceeded(len(basis)) {
						return nil, notConverged(round, len(basis), "basis size limit (%d) exceeded", options.MaxBasisSize)
					}
				}
			}
		}
		//
		log.Debugf("buchberger round %d: %d pairs over %d polynomials, %d added", round, pairs,
			len(snapshot), len(basis)-len(snapshot))
		// Check for fixed point
		if len(basis) == len(snapshot) {
			return basis, nil
		}
	}
}

// CheckBasis determines whether a set of polynomials is a Gröbner basis,
// meaning every S-polynomial of a pair reduces to zero modulo the set.  An
// error wrapping ErrNotGroebnerBasis identifies the first pair which fails.
func CheckBasis[F field.Element[F]](basis []poly.Polynomial[F]) error {
	for i := range basis {
		for j := i + 1; j < len(basis); j++ {
			if r := poly.Rem(poly.SPolynomial(basis[i], basis[j]), basis); !r.IsZero() {
				return fmt.Errorf("%w: S(%s, %s) reduces to %s", ErrNotGroebnerBasis, basis[i], basis[j], r)
			}
		}
	}
	//
	return nil
}

func notConverged(round uint, size int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	//
	log.Warnf("standardization abandoned after %d rounds (basis size %d): %s", round, size, msg)
	//
	return fmt.Errorf("%w: %s", ErrNotConverged, msg)
}
