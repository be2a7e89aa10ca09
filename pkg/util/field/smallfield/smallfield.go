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
package smallfield

import (
	"cmp"
	"math/big"
)

// Element of a prime order field, represented in Montgomery form to speed up multiplications.
type Element [1]uint32 // defined as an array to prevent mistaken use of arithmetic operators, or naive assignments.

// A Field of prime order, less than 2³¹.
type Field struct {
	modulus           uint32
	negModulusInvModR uint32
}

// New constructs the field of the given (prime) order.
func New(modulus uint32) Field {
	if modulus >= 1<<31 {
		panic("modulus too large") // need at least one bit of "slack"
	}

	m := big.NewInt(int64(modulus))
	m.ModInverse(m, big.NewInt(1<<32))

	return Field{modulus: modulus, negModulusInvModR: uint32(1<<32 - m.Uint64())}
}

// Modulus returns the order of this field.
func (f Field) Modulus() uint32 {
	return f.modulus
}

// Add x0 + x1
func (f Field) Add(x0, x1 Element) Element {
	res := Element{x0[0] + x1[0]}
	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}

	return res
}

// Sub x0 - x1
func (f Field) Sub(x0, x1 Element) Element {
	const negMask uint32 = 1 << 31

	res := Element{x0[0] - x1[0]}
	if res[0]&negMask != 0 {
		res[0] += f.modulus
	}

	return res
}

// Neg -x
func (f Field) Neg(x Element) Element {
	return f.Sub(Element{0}, x)
}

// montgomeryReduce x -> x.R⁻¹ (mod m)
func (f Field) montgomeryReduce(x uint64) Element {
	// textbook Montgomery reduction
	const R = 1 << 32
	m := (x * uint64(f.negModulusInvModR)) % R // m = x * (-modulus⁻¹) (mod R)

	res := Element{uint32((x + m*uint64(f.modulus)) / R)}

	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}

	return res
}

// ToUint32 returns the numerical (non-Montgomery)
// value of x.
func (f Field) ToUint32(x Element) uint32 {
	return f.montgomeryReduce(uint64(x[0]))[0]
}

// Mul x0 * x1
func (f Field) Mul(x0, x1 Element) Element {
	return f.montgomeryReduce(uint64(x0[0]) * uint64(x1[0]))
}

// Inverse x⁻¹, or 0 if x = 0.  This uses Fermat's little theorem, hence
// requires the modulus to be prime.
func (f Field) Inverse(x Element) Element {
	var (
		res  = f.NewElement(1)
		base = x
		exp  = f.modulus - 2
	)
	//
	for exp > 0 {
		if exp&1 == 1 {
			res = f.Mul(res, base)
		}
		//
		base = f.Mul(base, base)
		exp >>= 1
	}
	//
	return res
}

// NewElement returns an element of the field f corresponding to the natural number x.
func (f Field) NewElement(x uint32) Element {
	return Element{uint32(uint64(x) << 32 % uint64(f.modulus))}
}

// Cmp compares the numerical values of x0 and x1.
func (f Field) Cmp(x0, x1 Element) int {
	return cmp.Compare(f.ToUint32(x0), f.ToUint32(x1))
}
