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
	"slices"

	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/consensys/go-groebner/pkg/util/field"
)

// Ideal represents the ideal generated by a finite set of polynomials.  A
// Gröbner basis is computed on construction, after which membership can be
// decided by division.  Ideals are immutable.
type Ideal[F field.Element[F]] struct {
	generators []poly.Polynomial[F]
	basis      []poly.Polynomial[F]
}

// New constructs the ideal generated by zero or more polynomials, running
// Buchberger's algorithm to completion.
func New[F field.Element[F]](generators ...poly.Polynomial[F]) *Ideal[F] {
	ideal, err := Build(context.Background(), generators)
	// Without a budget or cancellation, standardization cannot fail.
	if err != nil {
		panic("unreachable")
	}
	//
	return ideal
}

// Build constructs the ideal generated by a set of polynomials, such that the
// work performed is bounded by the given options and the context.  An error
// wrapping ErrNotConverged is returned if standardization is abandoned.
func Build[F field.Element[F]](ctx context.Context, generators []poly.Polynomial[F],
	opts ...Option) (*Ideal[F], error) {
	basis, err := Standardize(ctx, generators, opts...)
	//
	if err != nil {
		return nil, err
	}
	//
	return &Ideal[F]{slices.Clone(generators), basis}, nil
}

// Generators returns the polynomials from which this ideal was constructed.
func (p *Ideal[F]) Generators() []poly.Polynomial[F] {
	return slices.Clone(p.generators)
}

// Basis returns the Gröbner basis computed for this ideal.
func (p *Ideal[F]) Basis() []poly.Polynomial[F] {
	return slices.Clone(p.basis)
}

// Reduce returns the remainder of a polynomial modulo the basis of this ideal.
// Since the basis is a Gröbner basis, this does not depend upon the order of
// basis elements.
func (p *Ideal[F]) Reduce(q poly.Polynomial[F]) poly.Polynomial[F] {
	return poly.Rem(q, p.basis)
}

// Member determines whether a given polynomial belongs to this ideal.  That
// is, whether its remainder modulo the basis is zero.
func (p *Ideal[F]) Member(q poly.Polynomial[F]) bool {
	return p.Reduce(q).IsZero()
}

// Contains determines whether every generator of another ideal belongs to this
// ideal (i.e. whether the other is a subset of this).
func (p *Ideal[F]) Contains(other *Ideal[F]) bool {
	for _, g := range other.generators {
		if !p.Member(g) {
			return false
		}
	}
	//
	return true
}
