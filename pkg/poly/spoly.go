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

// SPolynomial constructs the S-polynomial of f and g, which cancels their
// leading terms:
//
//	S(f,g) = (L / LT(f))·f - (L / LT(g))·g
//
// where L is the least common multiple of the leading terms.  When either
// operand is zero the result is zero.
func SPolynomial[F field.Element[F]](f Polynomial[F], g Polynomial[F]) Polynomial[F] {
	if f.IsZero() || g.IsZero() {
		return Polynomial[F]{}
	}
	//
	var (
		ltf = f.LeadingTerm()
		ltg = g.LeadingTerm()
		lcm = Lcm(ltf, ltg)
	)
	// Both leading terms become L, and so cancel.
	return f.tail().MulTerm(quotient(lcm, ltf)).Sub(g.tail().MulTerm(quotient(lcm, ltg)))
}
