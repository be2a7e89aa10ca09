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
package gf8209

import (
	"math/big"
	"strconv"

	"github.com/consensys/go-groebner/pkg/util/field/smallfield"
)

// MODULUS is the order of this field.
const MODULUS = 8209

var gf = smallfield.New(MODULUS)

// Element of GF(8209), held in Montgomery form.  The zero value represents 0.
type Element struct {
	val smallfield.Element
}

// Add x + y
func (x Element) Add(y Element) Element {
	return Element{gf.Add(x.val, y.val)}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	return Element{gf.Sub(x.val, y.val)}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	return Element{gf.Mul(x.val, y.val)}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	return Element{gf.Inverse(x.val)}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return gf.Cmp(x.val, y.val)
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.val[0] == 0
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return gf.ToUint32(x.val) == 1
}

// SetInt64 implementation for the Element interface.
func (x Element) SetInt64(val int64) Element {
	val %= MODULUS
	//
	if val < 0 {
		val += MODULUS
	}
	//
	return Element{gf.NewElement(uint32(val))}
}

// SetBigInt implementation for the Element interface.
func (x Element) SetBigInt(val *big.Int) Element {
	var rem big.Int
	// Euclidean modulus, hence never negative
	rem.Mod(val, big.NewInt(MODULUS))
	//
	return Element{gf.NewElement(uint32(rem.Uint64()))}
}

// Uint32 returns the numerical value of x.
func (x Element) Uint32() uint32 {
	return gf.ToUint32(x.val)
}

func (x Element) String() string {
	return x.Text(10)
}

// Text implementation for the Element interface
func (x Element) Text(base int) string {
	return strconv.FormatUint(uint64(gf.ToUint32(x.val)), base)
}
