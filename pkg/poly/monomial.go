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
package poly

import (
	"slices"

	"github.com/consensys/go-groebner/pkg/util/field"
)

// Monomial represents a single term c*x₀^e₀*x₁^e₁*... of a polynomial, where
// exponent i is the power of indeterminate i.  Monomials are immutable: every
// operation yields a fresh monomial, and the exponent vector is never shared
// with the caller.  Observe that an uninitialised Monomial corresponds with
// zero.
type Monomial[F field.Element[F]] struct {
	coefficient F
	exponents   []uint
}

// NewMonomial constructs a new monomial with a given coefficient and zero or
// more exponents.
func NewMonomial[F field.Element[F]](coefficient F, exponents ...uint) Monomial[F] {
	return Monomial[F]{coefficient, slices.Clone(exponents)}
}

// Constant constructs a monomial with the given coefficient and no
// indeterminates.
func Constant[F field.Element[F]](coefficient F) Monomial[F] {
	return Monomial[F]{coefficient, nil}
}

// Coefficient returns the coefficient of this term.
func (p Monomial[F]) Coefficient() F {
	return p.coefficient
}

// Len returns the number of exponents held for this monomial.  Exponents beyond
// this are implicitly zero.
func (p Monomial[F]) Len() uint {
	return uint(len(p.exponents))
}

// Exponent returns the power of the ith indeterminate in this monomial.
func (p Monomial[F]) Exponent(ith uint) uint {
	return exponent(p.exponents, int(ith))
}

// Exponents returns a copy of the exponent vector of this monomial.
func (p Monomial[F]) Exponents() []uint {
	return slices.Clone(p.exponents)
}

// Degree returns the total degree of this monomial (i.e. the sum of its
// exponents).
func (p Monomial[F]) Degree() uint {
	var degree uint
	//
	for _, e := range p.exponents {
		degree += e
	}
	//
	return degree
}

// IsZero checks whether or not this monomial is zero.  Or, put another way,
// whether or not the coefficient of this monomial is zero.
func (p Monomial[F]) IsZero() bool {
	return p.coefficient.IsZero()
}

// IsConstant checks whether every exponent of this monomial is zero.
func (p Monomial[F]) IsConstant() bool {
	for _, e := range p.exponents {
		if e != 0 {
			return false
		}
	}
	//
	return true
}

// Neg returns a negated copy of this monomial
func (p Monomial[F]) Neg() Monomial[F] {
	return Monomial[F]{field.Neg(p.coefficient), p.exponents}
}

// MulScalar multiplies this monomial by scalar.
func (p Monomial[F]) MulScalar(scalar F) Monomial[F] {
	return Monomial[F]{p.coefficient.Mul(scalar), p.exponents}
}

// Mul returns a fresh monomial representing the multiplication of this monomial
// and another.  Exponent vectors of differing length are zero padded.
func (p Monomial[F]) Mul(other Monomial[F]) Monomial[F] {
	var (
		n         = max(len(p.exponents), len(other.exponents))
		exponents = make([]uint, n)
	)
	//
	for i := range n {
		exponents[i] = exponent(p.exponents, i) + exponent(other.exponents, i)
	}
	//
	return Monomial[F]{p.coefficient.Mul(other.coefficient), exponents}
}

// Divides checks whether this monomial divides another, meaning every exponent
// of this monomial is at most the corresponding exponent of the other.
// Coefficients play no role.
func (p Monomial[F]) Divides(other Monomial[F]) bool {
	return dividesExponents(p.exponents, other.exponents)
}

// Div divides this monomial by another.  This requires the other to divide
// this, and to have a non-zero coefficient.
func (p Monomial[F]) Div(other Monomial[F]) (Monomial[F], error) {
	if !other.Divides(p) || other.IsZero() {
		return Monomial[F]{}, &DivisionUndefinedError{p.String(), other.String()}
	}
	//
	return quotient(p, other), nil
}

// Add another monomial onto this monomial.  Both must have the same exponents.
func (p Monomial[F]) Add(other Monomial[F]) (Monomial[F], error) {
	if !p.Matches(other) {
		return Monomial[F]{}, &IncompatibleTermsError{p.Exponents(), other.Exponents()}
	}
	//
	return Monomial[F]{p.coefficient.Add(other.coefficient), p.exponents}, nil
}

// Sub another monomial from this monomial.  Both must have the same exponents.
func (p Monomial[F]) Sub(other Monomial[F]) (Monomial[F], error) {
	return p.Add(other.Neg())
}

// Matches determines whether or not the exponents of this term match those
// of the other.
func (p Monomial[F]) Matches(other Monomial[F]) bool {
	return CompareLex(p.exponents, other.exponents) == 0
}

// Equal performs structural equality between two monomials.  That is, they
// have the same coefficient and the same (zero padded) exponents.
func (p Monomial[F]) Equal(other Monomial[F]) bool {
	return p.coefficient.Cmp(other.coefficient) == 0 && p.Matches(other)
}

// Cmp compares exponents first under the lexicographic ordering, and then
// coefficients.
func (p Monomial[F]) Cmp(other Monomial[F]) int {
	if c := CompareLex(p.exponents, other.exponents); c != 0 {
		return c
	}
	//
	return p.coefficient.Cmp(other.coefficient)
}

// Lcm returns the least common multiple of two monomials' exponents (i.e.
// their componentwise maximum), with coefficient one.
func Lcm[F field.Element[F]](lhs Monomial[F], rhs Monomial[F]) Monomial[F] {
	var (
		n         = max(len(lhs.exponents), len(rhs.exponents))
		exponents = make([]uint, n)
	)
	//
	for i := range n {
		exponents[i] = max(exponent(lhs.exponents, i), exponent(rhs.exponents, i))
	}
	//
	return Monomial[F]{field.One[F](), exponents}
}

// quotient computes lhs / rhs, assuming rhs divides lhs.
func quotient[F field.Element[F]](lhs Monomial[F], rhs Monomial[F]) Monomial[F] {
	var (
		n         = max(len(lhs.exponents), len(rhs.exponents))
		exponents = make([]uint, n)
	)
	//
	for i := range n {
		exponents[i] = exponent(lhs.exponents, i) - exponent(rhs.exponents, i)
	}
	//
	return Monomial[F]{field.Div(lhs.coefficient, rhs.coefficient), exponents}
}
