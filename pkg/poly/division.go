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

import "github.com/consensys/go-groebner/pkg/util/field"

// Divide performs multivariate division of a polynomial p by an ordered list of
// divisors, producing one quotient per divisor and a remainder r such that:
//
//	p = q₀·d₀ + q₁·d₁ + ... + r
//
// and no term of r is divisible by the leading term of any divisor.  At each
// step the leading term of what remains is reduced by the first divisor (in
// list order) whose leading term divides it, after which the search restarts
// from the first divisor.  When no divisor applies, the leading term is moved
// into the remainder.  Zero divisors never divide anything.  The result depends
// upon the order of divisors.
func Divide[F field.Element[F]](p Polynomial[F], divisors []Polynomial[F]) ([]Polynomial[F], Polynomial[F]) {
	var (
		quotients = make([]Polynomial[F], len(divisors))
		remainder []Monomial[F]
	)
	//
	for !p.IsZero() {
		var (
			lt      = p.LeadingTerm()
			reduced = false
		)
		//
		for i, d := range divisors {
			if d.IsZero() || !d.LeadingTerm().Divides(lt) {
				continue
			}
			//
			q := quotient(lt, d.LeadingTerm())
			quotients[i] = quotients[i].Add(NewPolynomial(q))
			// Subtract q·d from p.  The leading terms cancel exactly, and are
			// dropped explicitly to guarantee progress.
			p = p.tail().Sub(d.tail().MulTerm(q))
			reduced = true
			//
			break
		}
		//
		if !reduced {
			// Terms arrive in strictly descending order, so appending keeps
			// the remainder in normal form.
			remainder = append(remainder, lt)
			p = p.tail()
		}
	}
	//
	return quotients, Polynomial[F]{remainder}
}

// DivideBy divides a polynomial by a single divisor, producing the quotient and
// remainder.
func DivideBy[F field.Element[F]](p Polynomial[F], divisor Polynomial[F]) (Polynomial[F], Polynomial[F]) {
	quotients, remainder := Divide(p, []Polynomial[F]{divisor})
	//
	return quotients[0], remainder
}

// Rem returns the remainder of dividing p by the given divisors.
func Rem[F field.Element[F]](p Polynomial[F], divisors []Polynomial[F]) Polynomial[F] {
	_, remainder := Divide(p, divisors)
	//
	return remainder
}

// Quo returns the sum of the quotients from dividing p by the given divisors.
// For a single divisor, this is just the quotient.
func Quo[F field.Element[F]](p Polynomial[F], divisors []Polynomial[F]) Polynomial[F] {
	var (
		quotients, _ = Divide(p, divisors)
		sum          Polynomial[F]
	)
	//
	for _, q := range quotients {
		sum = sum.Add(q)
	}
	//
	return sum
}

// LeadingQuotient computes LT(p) / LT(d), which is the monomial used to perform
// a single reduction step of p by d.  This fails if LT(d) does not divide
// LT(p), or d is zero.
func LeadingQuotient[F field.Element[F]](p Polynomial[F], d Polynomial[F]) (Monomial[F], error) {
	return p.LeadingTerm().Div(d.LeadingTerm())
}
