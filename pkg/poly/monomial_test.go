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
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-groebner/pkg/util/field/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rat is the coefficient field used for testing.
type Rat = rational.Element

func Test_Monomial_01(t *testing.T) {
	// 2xy² * 3x² = 6x³y²
	lhs := mono(2, 1, 2)
	rhs := mono(3, 2)
	checkMonomial(t, lhs.Mul(rhs), 6, 3, 2)
	checkMonomial(t, rhs.Mul(lhs), 6, 3, 2)
}

func Test_Monomial_02(t *testing.T) {
	assert.True(t, mono(1, 1).Divides(mono(1, 1, 2)))
	assert.True(t, mono(1, 1, 0, 0).Divides(mono(1, 1)))
	assert.True(t, mono(1).Divides(mono(5, 0, 3)))
	assert.False(t, mono(1, 0, 0, 1).Divides(mono(1, 1, 2)))
	assert.False(t, mono(1, 2).Divides(mono(1, 1, 2)))
}

func Test_Monomial_03(t *testing.T) {
	// 6x³y² / 3xy = 2x²y
	q, err := mono(6, 3, 2).Div(mono(3, 1, 1))
	require.NoError(t, err)
	checkMonomial(t, q, 2, 2, 1)
}

func Test_Monomial_04(t *testing.T) {
	var target *DivisionUndefinedError
	//
	_, err := mono(1, 1).Div(mono(1, 0, 1))
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "x", target.Dividend)
	assert.Equal(t, "y", target.Divisor)
	// Division by zero is also undefined
	_, err = mono(1, 1).Div(mono(0))
	assert.True(t, errors.As(err, &target))
}

func Test_Monomial_05(t *testing.T) {
	var target *IncompatibleTermsError
	//
	_, err := mono(1, 1).Add(mono(1, 0, 1))
	require.True(t, errors.As(err, &target))
	assert.Equal(t, []uint{1}, target.Lhs)
	assert.Equal(t, []uint{0, 1}, target.Rhs)
	//
	_, err = mono(1, 1).Sub(mono(1, 2))
	assert.True(t, errors.As(err, &target))
}

func Test_Monomial_06(t *testing.T) {
	sum, err := mono(1, 1).Add(mono(2, 1, 0))
	require.NoError(t, err)
	checkMonomial(t, sum, 3, 1)
	//
	diff, err := mono(1, 1).Sub(mono(1, 1))
	require.NoError(t, err)
	assert.True(t, diff.IsZero())
}

func Test_Monomial_07(t *testing.T) {
	lcm := Lcm(mono(4, 2, 1), mono(-1, 1, 3))
	checkMonomial(t, lcm, 1, 2, 3)
	assert.Equal(t, uint(5), lcm.Degree())
}

func Test_Monomial_08(t *testing.T) {
	assert.True(t, mono(2, 1, 2).Equal(mono(2, 1, 2, 0)))
	assert.False(t, mono(2, 1, 2).Equal(mono(3, 1, 2)))
	assert.True(t, mono(2, 1, 2).Matches(mono(3, 1, 2, 0)))
	assert.Equal(t, 1, mono(1, 1).Cmp(mono(9, 0, 5)))
	assert.Equal(t, -1, mono(1, 1).Cmp(mono(2, 1)))
	assert.Equal(t, uint(0), mono(1, 1).Exponent(7))
}

func Test_Monomial_09(t *testing.T) {
	exps := []uint{1, 2}
	m := NewMonomial(rational.New(1, 1), exps...)
	// Mutating inputs or outputs does not affect the monomial
	exps[0] = 5
	m.Exponents()[1] = 7
	checkMonomial(t, m, 1, 1, 2)
}

func Test_Monomial_10(t *testing.T) {
	var rng = rand.New(rand.NewPCG(1, 2))
	//
	for range 1000 {
		a, b, c := randMonomial(rng), randMonomial(rng), randMonomial(rng)
		// Commutativity
		assert.True(t, a.Mul(b).Equal(b.Mul(a)), "%s * %s", a, b)
		// Associativity
		assert.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))), "(%s * %s) * %s", a, b, c)
		// Divisibility of products
		assert.True(t, a.Divides(a.Mul(b)))
		assert.True(t, Lcm(a, b).Divides(Lcm(a, b).Mul(c)))
		assert.True(t, a.Divides(Lcm(a, b)) && b.Divides(Lcm(a, b)))
	}
}

func mono(coefficient int64, exponents ...uint) Monomial[Rat] {
	return NewMonomial(rational.New(coefficient, 1), exponents...)
}

func checkMonomial(t *testing.T, m Monomial[Rat], coefficient int64, exponents ...uint) {
	t.Helper()
	//
	if !m.Equal(mono(coefficient, exponents...)) {
		t.Errorf("expected %s, got %s", mono(coefficient, exponents...), m)
	}
}

// Generate a random monomial in (at most) three indeterminates, with exponent
// vectors of varying length.
func randMonomial(rng *rand.Rand) Monomial[Rat] {
	var (
		n         = rng.IntN(4)
		exponents = make([]uint, n)
	)
	//
	for i := range n {
		exponents[i] = uint(rng.IntN(4))
	}
	//
	return NewMonomial(rational.New(rng.Int64N(11)-5, 1+rng.Int64N(3)), exponents...)
}
