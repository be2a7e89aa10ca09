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

// Polynomial represents a sum of monomials held in normal form: terms are
// sorted in descending lexicographic order of their exponents, no two terms
// share the same (zero padded) exponents, and no term has a zero coefficient.
// The normal form is established on construction, and every operation returns
// a fresh polynomial.  Observe that an uninitialised Polynomial corresponds
// with zero.
type Polynomial[F field.Element[F]] struct {
	terms []Monomial[F]
}

// NewPolynomial constructs a polynomial from zero or more monomials, which can
// be given in any order and may include duplicates (which are combined) and
// zeros (which are dropped).
func NewPolynomial[F field.Element[F]](terms ...Monomial[F]) Polynomial[F] {
	return Polynomial[F]{normalise(slices.Clone(terms))}
}

// ConstantPolynomial constructs a polynomial representing a given constant.
func ConstantPolynomial[F field.Element[F]](val F) Polynomial[F] {
	return NewPolynomial(Constant(val))
}

// OnePolynomial constructs the polynomial 1.
func OnePolynomial[F field.Element[F]]() Polynomial[F] {
	return ConstantPolynomial(field.One[F]())
}

// Len returns the number of terms in this polynomial.
func (p Polynomial[F]) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term of this polynomial, where term 0 is the leading
// term.
func (p Polynomial[F]) Term(ith uint) Monomial[F] {
	return p.terms[ith]
}

// Terms returns a copy of the terms of this polynomial, in descending order.
func (p Polynomial[F]) Terms() []Monomial[F] {
	return slices.Clone(p.terms)
}

// IsZero checks whether this polynomial is zero (i.e. has no terms).
func (p Polynomial[F]) IsZero() bool {
	return len(p.terms) == 0
}

// IsConstant checks whether this polynomial has no indeterminates (including
// when it is zero).
func (p Polynomial[F]) IsConstant() bool {
	return len(p.terms) == 0 || (len(p.terms) == 1 && p.terms[0].IsConstant())
}

// LeadingTerm returns the greatest term of this polynomial under the
// lexicographic ordering, or the zero monomial if this polynomial is zero.
func (p Polynomial[F]) LeadingTerm() Monomial[F] {
	if len(p.terms) == 0 {
		return Monomial[F]{}
	}
	//
	return p.terms[0]
}

// Degree returns the maximum total degree of any term in this polynomial.
// Observe that, under the lexicographic ordering, this need not be the degree
// of the leading term.
func (p Polynomial[F]) Degree() uint {
	var degree uint
	//
	for _, t := range p.terms {
		degree = max(degree, t.Degree())
	}
	//
	return degree
}

// Neg returns the negation of this polynomial.
func (p Polynomial[F]) Neg() Polynomial[F] {
	var terms = make([]Monomial[F], len(p.terms))
	//
	for i, t := range p.terms {
		terms[i] = t.Neg()
	}
	// Negation cannot reorder, merge or zero terms.
	return Polynomial[F]{terms}
}

// Add another polynomial onto this polynomial.
func (p Polynomial[F]) Add(other Polynomial[F]) Polynomial[F] {
	return Polynomial[F]{merge(p.terms, other.terms, false)}
}

// Sub another polynomial from this polynomial.
func (p Polynomial[F]) Sub(other Polynomial[F]) Polynomial[F] {
	return Polynomial[F]{merge(p.terms, other.terms, true)}
}

// MulTerm multiplies this polynomial by a monomial.
func (p Polynomial[F]) MulTerm(term Monomial[F]) Polynomial[F] {
	if term.IsZero() {
		return Polynomial[F]{}
	}
	//
	var terms = make([]Monomial[F], len(p.terms))
	//
	for i, t := range p.terms {
		terms[i] = t.Mul(term)
	}
	// Lex order is preserved under multiplication by a monomial, and a non-zero
	// coefficient cannot annihilate another in a field.
	return Polynomial[F]{terms}
}

// Mul multiplies this polynomial by another.
func (p Polynomial[F]) Mul(other Polynomial[F]) Polynomial[F] {
	var terms = make([]Monomial[F], 0, len(p.terms)*len(other.terms))
	//
	for _, l := range p.terms {
		for _, r := range other.terms {
			terms = append(terms, l.Mul(r))
		}
	}
	//
	return Polynomial[F]{normalise(terms)}
}

// Pow raises this polynomial to the nth power, where n must be non-negative.
// Observe that p⁰ = 1 for every p (including zero).
func (p Polynomial[F]) Pow(n int) (Polynomial[F], error) {
	if n < 0 {
		return Polynomial[F]{}, &UnsupportedExponentError{n}
	}
	//
	var (
		res  = OnePolynomial[F]()
		base = p
	)
	//
	for k := uint(n); k > 0; k >>= 1 {
		if k&1 == 1 {
			res = res.Mul(base)
		}
		//
		if k > 1 {
			base = base.Mul(base)
		}
	}
	//
	return res, nil
}

// Equal checks whether two polynomials are the same.  Since both are in normal
// form, this amounts to a pairwise comparison of their terms.
func (p Polynomial[F]) Equal(other Polynomial[F]) bool {
	return slices.EqualFunc(p.terms, other.terms, Monomial[F].Equal)
}

// Eval evaluates this polynomial at a given point, where the ith value of the
// point is assigned to the ith indeterminate.  Indeterminates beyond the end of
// the point are evaluated as zero.
func (p Polynomial[F]) Eval(point []F) F {
	var sum = field.Zero[F]()
	//
	for _, t := range p.terms {
		var prod = t.coefficient
		//
		for i, e := range t.exponents {
			if e == 0 {
				continue
			} else if i >= len(point) {
				prod = field.Zero[F]()
				break
			}
			//
			prod = prod.Mul(field.Pow(point[i], uint64(e)))
		}
		//
		sum = sum.Add(prod)
	}
	//
	return sum
}

// tail returns this polynomial without its leading term.
func (p Polynomial[F]) tail() Polynomial[F] {
	if len(p.terms) == 0 {
		return p
	}
	//
	return Polynomial[F]{p.terms[1:]}
}

// normalise sorts a given set of terms in descending lexicographic order,
// combines those with matching exponents and removes any which are zero.  This
// operates in place.
func normalise[F field.Element[F]](terms []Monomial[F]) []Monomial[F] {
	slices.SortStableFunc(terms, func(l, r Monomial[F]) int {
		return CompareLex(r.exponents, l.exponents)
	})
	//
	var n = 0
	//
	for i := 0; i < len(terms); {
		var (
			acc = terms[i]
			j   = i + 1
		)
		//
		for ; j < len(terms) && acc.Matches(terms[j]); j++ {
			acc = Monomial[F]{acc.coefficient.Add(terms[j].coefficient), acc.exponents}
		}
		//
		if !acc.IsZero() {
			terms[n] = acc
			n++
		}
		//
		i = j
	}
	//
	return slices.Clip(terms[:n])
}

// merge combines two sets of terms in normal form into one, optionally
// negating the right-hand side.
func merge[F field.Element[F]](lhs []Monomial[F], rhs []Monomial[F], negate bool) []Monomial[F] {
	var (
		terms = make([]Monomial[F], 0, len(lhs)+len(rhs))
		i, j  = 0, 0
	)
	//
	for i < len(lhs) || j < len(rhs) {
		var c int
		//
		switch {
		case i == len(lhs):
			c = -1
		case j == len(rhs):
			c = 1
		default:
			c = CompareLex(lhs[i].exponents, rhs[j].exponents)
		}
		//
		switch {
		case c > 0:
			terms = append(terms, lhs[i])
			i++
		case c < 0:
			terms = append(terms, rhsTerm(rhs[j], negate))
			j++
		default:
			var coeff = lhs[i].coefficient
			//
			if negate {
				coeff = coeff.Sub(rhs[j].coefficient)
			} else {
				coeff = coeff.Add(rhs[j].coefficient)
			}
			//
			if !coeff.IsZero() {
				terms = append(terms, Monomial[F]{coeff, lhs[i].exponents})
			}
			//
			i++
			j++
		}
	}
	//
	return terms
}

func rhsTerm[F field.Element[F]](term Monomial[F], negate bool) Monomial[F] {
	if negate {
		return term.Neg()
	}
	//
	return term
}
