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

// Ordering identifies a monomial ordering.  Only the lexicographic ordering is
// implemented; the graded orderings are named so they can be recognised (and
// rejected) when given as configuration.
type Ordering uint8

const (
	// LEX is the lexicographic ordering, where indeterminate 0 is the most
	// significant.
	LEX Ordering = iota
	// GRLEX is the graded lexicographic ordering (not implemented).
	GRLEX
	// GREVLEX is the graded reverse lexicographic ordering (not implemented).
	GREVLEX
)

var orderingNames = []string{"lex", "grlex", "grevlex"}

func (o Ordering) String() string {
	return orderingNames[o]
}

// GetOrdering returns the implemented ordering with the given name.
func GetOrdering(name string) (Ordering, error) {
	if name == LEX.String() {
		return LEX, nil
	}
	//
	return LEX, &UnsupportedOrderingError{name}
}

// CompareLex compares two exponent vectors lexicographically, returning -1, 0
// or 1.  The shorter vector is treated as though padded with zeros, hence (1,2)
// and (1,2,0) compare as equal.
func CompareLex(lhs []uint, rhs []uint) int {
	n := max(len(lhs), len(rhs))
	//
	for i := range n {
		l, r := exponent(lhs, i), exponent(rhs, i)
		//
		if l < r {
			return -1
		} else if l > r {
			return 1
		}
	}
	//
	return 0
}

// exponent returns the ith exponent of a vector, or zero beyond its end.
func exponent(exponents []uint, i int) uint {
	if i < len(exponents) {
		return exponents[i]
	}
	//
	return 0
}

// dividesExponents checks whether every exponent of lhs is at most the
// corresponding exponent of rhs (after zero padding).  All divisibility checks
// go through here.
func dividesExponents(lhs []uint, rhs []uint) bool {
	n := max(len(lhs), len(rhs))
	//
	for i := range n {
		if exponent(lhs, i) > exponent(rhs, i) {
			return false
		}
	}
	//
	return true
}
