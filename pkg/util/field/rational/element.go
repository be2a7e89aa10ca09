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
package rational

import (
	"math/big"
)

// Element is an exact rational number.  Unlike the prime fields, rationals have
// characteristic zero and so computations over them never wrap around.  The
// zero value represents 0.
type Element struct {
	val big.Rat
}

// New constructs the rational num / den.  This panics if den is zero.
func New(num int64, den int64) Element {
	var res Element
	//
	if den == 0 {
		panic("zero denominator")
	}
	//
	res.val.SetFrac64(num, den)
	//
	return res
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res Element
	//
	res.val.Add(&x.val, &y.val)
	//
	return res
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res Element
	//
	res.val.Sub(&x.val, &y.val)
	//
	return res
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res Element
	//
	res.val.Mul(&x.val, &y.val)
	//
	return res
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var res Element
	//
	if x.val.Sign() != 0 {
		res.val.Inv(&x.val)
	}
	//
	return res
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.val.Cmp(&y.val)
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.val.Sign() == 0
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.val.IsInt() && x.val.Num().IsInt64() && x.val.Num().Int64() == 1
}

// Sign returns -1, 0 or 1 depending on whether x is negative, zero or
// positive.
func (x Element) Sign() int {
	return x.val.Sign()
}

// SetInt64 implementation for the Element interface.
func (x Element) SetInt64(val int64) Element {
	var res Element
	//
	res.val.SetInt64(val)
	//
	return res
}

// SetBigInt implementation for the Element interface.
func (x Element) SetBigInt(val *big.Int) Element {
	var res Element
	//
	res.val.SetInt(val)
	//
	return res
}

// Rat returns a copy of the underlying rational.
func (x Element) Rat() *big.Rat {
	return new(big.Rat).Set(&x.val)
}

// String returns x as "a/b", or as "a" when x is an integer.
func (x Element) String() string {
	return x.val.RatString()
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	if x.val.IsInt() {
		return x.val.Num().Text(base)
	}
	//
	return x.val.Num().Text(base) + "/" + x.val.Denom().Text(base)
}
