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
package field

import (
	"fmt"
	"math/big"
)

// An Element of an exact field.  Implementations are value types whose zero
// value is the additive identity, and whose operations never modify their
// operands.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.  For finite fields
	// this is an arbitrary (but fixed) total order.
	Cmp(y Operand) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Compute x * y
	Mul(y Operand) Operand
	// Compute x⁻¹, or 0 if x = 0.
	Inverse() Operand
	// Compute x - y
	Sub(y Operand) Operand
	// SetInt64 returns the element corresponding to the given integer.
	SetInt64(val int64) Operand
	// SetBigInt returns the element corresponding to the given non-negative
	// integer.
	SetBigInt(val *big.Int) Operand
	// Text returns the numerical value of x in the given base.
	Text(base int) string
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetInt64(1)
}

// Int64 constructs a field element from a given (possibly negative) integer.
func Int64[F Element[F]](val int64) F {
	var element F
	//
	return element.SetInt64(val)
}

// BigInt construct a field element from a given big.Int.  Negative values are
// mapped onto their additive inverses.
func BigInt[F Element[F]](val *big.Int) F {
	var element F
	//
	if val.Sign() < 0 {
		var abs big.Int
		//
		abs.Neg(val)
		//
		return element.Sub(element.SetBigInt(&abs))
	}
	//
	return element.SetBigInt(val)
}

// Rat constructs the field element num / den.  This returns false when the
// denominator is zero in the field (e.g. a multiple of its characteristic).
func Rat[F Element[F]](num *big.Int, den *big.Int) (F, bool) {
	var (
		n = BigInt[F](num)
		d = BigInt[F](den)
	)
	//
	if d.IsZero() {
		return Zero[F](), false
	}
	//
	return n.Mul(d.Inverse()), true
}

// Neg computes -x
func Neg[F Element[F]](x F) F {
	var zero F
	//
	return zero.Sub(x)
}

// Div computes x / y, or 0 if y = 0.
func Div[F Element[F]](x F, y F) F {
	return x.Mul(y.Inverse())
}

// Equal checks whether two elements are the same.
func Equal[F Element[F]](x F, y F) bool {
	return x.Cmp(y) == 0
}
