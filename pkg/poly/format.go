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
	"fmt"
	"slices"
	"strings"
)

// Variables maps indeterminates to their names, such that indeterminate i is
// named by the ith entry.  A set of variables is shared by all polynomials in a
// given computation.
type Variables []string

// DefaultVariables is used for rendering when no names are given.
var DefaultVariables = Variables{"x", "y", "z"}

// NewVariables constructs a set of variables from zero or more names.
func NewVariables(names ...string) Variables {
	return slices.Clone(names)
}

// Name returns the name of the ith indeterminate.  When no name is known, a
// subscripted name is used instead (e.g. x_4).
func (p Variables) Name(ith uint) string {
	if ith < uint(len(p)) {
		return p[ith]
	}
	//
	return fmt.Sprintf("x_%d", ith)
}

// Index returns the index of the indeterminate with the given name, or false if
// no such indeterminate exists.
func (p Variables) Index(name string) (uint, bool) {
	if i := slices.Index(p, name); i >= 0 {
		return uint(i), true
	}
	//
	return 0, false
}

// Add a named indeterminate, returning its index.  If an indeterminate with the
// given name already exists, then its index is returned.
func (p *Variables) Add(name string) uint {
	if i, ok := p.Index(name); ok {
		return i
	}
	//
	*p = append(*p, name)
	//
	return uint(len(*p) - 1)
}

// String returns a string representation of this monomial using the default
// variable names.
func (p Monomial[F]) String() string {
	return p.Format(DefaultVariables.Name)
}

// Format constructs a string representation of this monomial, assuming an
// environment which maps indeterminates to names.  For example, 3x^{2}y.
func (p Monomial[F]) Format(env func(uint) string) string {
	var builder strings.Builder
	//
	formatTerm(&builder, p.coefficient.String(), p.exponents, env)
	//
	return builder.String()
}

// String returns a string representation of this polynomial using the default
// variable names.
func (p Polynomial[F]) String() string {
	return p.Format(DefaultVariables.Name)
}

// Format constructs a string representation of this polynomial, assuming an
// environment which maps indeterminates to names.  For example, x^{2} - 1/2y.
func (p Polynomial[F]) Format(env func(uint) string) string {
	var builder strings.Builder
	//
	if len(p.terms) == 0 {
		return "0"
	}
	//
	for i, t := range p.terms {
		coeff := t.coefficient.String()
		negative := strings.HasPrefix(coeff, "-")
		//
		if negative {
			coeff = coeff[1:]
		}
		//
		switch {
		case i == 0 && negative:
			builder.WriteString("-")
		case i != 0 && negative:
			builder.WriteString(" - ")
		case i != 0:
			builder.WriteString(" + ")
		}
		//
		formatTerm(&builder, coeff, t.exponents, env)
	}
	//
	return builder.String()
}

func formatTerm(builder *strings.Builder, coeff string, exponents []uint, env func(uint) string) {
	var constant = !slices.ContainsFunc(exponents, func(e uint) bool { return e != 0 })
	// Various cases to improve readability
	if constant {
		builder.WriteString(coeff)
		return
	} else if coeff == "-1" {
		builder.WriteString("-")
	} else if coeff != "1" {
		builder.WriteString(coeff)
		// Separate fractions from the indeterminates which follow them.
		if strings.Contains(coeff, "/") {
			builder.WriteString(" ")
		}
	}
	//
	for i, e := range exponents {
		if e == 0 {
			continue
		}
		//
		builder.WriteString(env(uint(i)))
		//
		if e > 1 {
			fmt.Fprintf(builder, "^{%d}", e)
		}
	}
}
