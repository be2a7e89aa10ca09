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

import "fmt"

// IncompatibleTermsError is returned when adding two monomials whose (zero
// padded) exponent vectors differ.
type IncompatibleTermsError struct {
	Lhs []uint
	Rhs []uint
}

func (e *IncompatibleTermsError) Error() string {
	return fmt.Sprintf("incompatible terms with exponents %v and %v", e.Lhs, e.Rhs)
}

// DivisionUndefinedError is returned when dividing by a monomial which does not
// divide the dividend.
type DivisionUndefinedError struct {
	Dividend string
	Divisor  string
}

func (e *DivisionUndefinedError) Error() string {
	return fmt.Sprintf("%s does not divide %s", e.Divisor, e.Dividend)
}

// UnsupportedExponentError is returned when raising a polynomial to a negative
// power.
type UnsupportedExponentError struct {
	Exponent int
}

func (e *UnsupportedExponentError) Error() string {
	return fmt.Sprintf("unsupported exponent %d (must be a non-negative integer)", e.Exponent)
}

// UnsupportedOrderingError is returned when requesting a monomial ordering
// which is unknown, or known but not implemented.
type UnsupportedOrderingError struct {
	Name string
}

func (e *UnsupportedOrderingError) Error() string {
	return fmt.Sprintf("unsupported monomial ordering \"%s\"", e.Name)
}
