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

func Test_Polynomial_01(t *testing.T) {
	// x + y + x + 1 - 2x = y + 1
	p := NewPolynomial(mono(1, 1), mono(1, 0, 1), mono(1, 1), mono(1), mono(-2, 1, 0))
	//
	assert.Equal(t, uint(2), p.Len())
	checkMonomial(t, p.LeadingTerm(), 1, 0, 1)
	checkMonomial(t, p.Term(1), 1)
	assert.Equal(t, "y + 1", p.String())
}

func Test_Polynomial_02(t *testing.T) {
	var zero Polynomial[Rat]
	//
	assert.True(t, zero.IsZero())
	assert.True(t, zero.LeadingTerm().IsZero())
	assert.True(t, NewPolynomial(mono(0, 1, 2), mono(0)).IsZero())
	assert.True(t, NewPolynomial[Rat]().Equal(zero))
	assert.Equal(t, "0", zero.String())
}

func Test_Polynomial_03(t *testing.T) {
	// x + y³ has degree 3, but leading term x
	p := NewPolynomial(mono(1, 0, 3), mono(1, 1))
	checkMonomial(t, p.LeadingTerm(), 1, 1)
	assert.Equal(t, uint(3), p.Degree())
}

func Test_Polynomial_04(t *testing.T) {
	// (x + 1)² = x² + 2x + 1
	p, err := NewPolynomial(mono(1, 1), mono(1)).Pow(2)
	require.NoError(t, err)
	checkPolynomial(t, p, mono(1, 2), mono(2, 1), mono(1))
	// 0⁰ = 1
	p, err = Polynomial[Rat]{}.Pow(0)
	require.NoError(t, err)
	checkPolynomial(t, p, mono(1))
}

func Test_Polynomial_05(t *testing.T) {
	var target *UnsupportedExponentError
	//
	_, err := OnePolynomial[Rat]().Pow(-1)
	require.True(t, errors.As(err, &target))
	assert.Equal(t, -1, target.Exponent)
}

func Test_Polynomial_06(t *testing.T) {
	// x² - y at (3, 4) is 5
	p := NewPolynomial(mono(1, 2), mono(-1, 0, 1))
	v := p.Eval([]Rat{rational.New(3, 1), rational.New(4, 1)})
	assert.Equal(t, "5", v.String())
	// Missing values evaluate as zero
	assert.Equal(t, "9", p.Eval([]Rat{rational.New(3, 1)}).String())
}

func Test_Polynomial_07(t *testing.T) {
	p := NewPolynomial(mono(1, 2), mono(-1, 0, 1))
	assert.Equal(t, "x^{2} - y", p.String())
	//
	q := NewPolynomial(NewMonomial(rational.New(-1, 2), 1, 2), mono(3))
	assert.Equal(t, "-1/2 xy^{2} + 3", q.String())
	//
	r := NewPolynomial(mono(-1, 0, 0, 0, 1), mono(2, 0, 0, 0, 0, 3))
	assert.Equal(t, "-x_3 + 2x_4^{3}", r.Format(NewVariables("a", "b", "c").Name))
}

func Test_Polynomial_08(t *testing.T) {
	p := NewPolynomial(mono(1, 2), mono(-1, 0, 1))
	terms := p.Terms()
	terms[0] = mono(7)
	// Polynomial unaffected
	checkMonomial(t, p.LeadingTerm(), 1, 2)
}

func Test_Polynomial_09(t *testing.T) {
	var rng = rand.New(rand.NewPCG(3, 4))
	//
	for range 500 {
		p, q, r := randPolynomial(rng), randPolynomial(rng), randPolynomial(rng)
		// Additive laws
		assert.True(t, p.Add(q).Equal(q.Add(p)))
		assert.True(t, p.Add(q).Add(r).Equal(p.Add(q.Add(r))))
		assert.True(t, p.Add(Polynomial[Rat]{}).Equal(p))
		assert.True(t, p.Sub(p).IsZero())
		assert.True(t, p.Add(p.Neg()).IsZero())
		assert.True(t, p.Sub(q).Equal(p.Add(q.Neg())))
		// Multiplicative laws
		assert.True(t, p.Mul(q).Equal(q.Mul(p)))
		assert.True(t, p.Mul(q.Add(r)).Equal(p.Mul(q).Add(p.Mul(r))))
		assert.True(t, p.Mul(OnePolynomial[Rat]()).Equal(p))
		// Normalisation is idempotent
		assert.True(t, NewPolynomial(p.Terms()...).Equal(p))
		// Leading term is maximal
		checkLeadingTerm(t, p.Mul(q))
		checkNormalised(t, p.Mul(q).Sub(r))
	}
}

func Test_Polynomial_10(t *testing.T) {
	var rng = rand.New(rand.NewPCG(5, 6))
	//
	for range 100 {
		p := randPolynomial(rng)
		p3, err := p.Pow(3)
		require.NoError(t, err)
		assert.True(t, p3.Equal(p.Mul(p).Mul(p)))
		// Evaluation is a homomorphism
		point := []Rat{rational.New(rng.Int64N(7)-3, 1), rational.New(rng.Int64N(7)-3, 2)}
		assert.Equal(t, 0, p3.Eval(point).Cmp(p.Eval(point).Mul(p.Eval(point)).Mul(p.Eval(point))))
	}
}

func checkPolynomial(t *testing.T, p Polynomial[Rat], terms ...Monomial[Rat]) {
	t.Helper()
	//
	if expected := NewPolynomial(terms...); !p.Equal(expected) {
		t.Errorf("expected %s, got %s", expected, p)
	}
}

func checkLeadingTerm(t *testing.T, p Polynomial[Rat]) {
	t.Helper()
	//
	for _, term := range p.Terms() {
		if CompareLex(p.LeadingTerm().Exponents(), term.Exponents()) < 0 {
			t.Errorf("leading term %s of %s smaller than %s", p.LeadingTerm(), p, term)
		}
	}
}

func checkNormalised(t *testing.T, p Polynomial[Rat]) {
	t.Helper()
	//
	for i := uint(1); i < p.Len(); i++ {
		if CompareLex(p.Term(i-1).Exponents(), p.Term(i).Exponents()) <= 0 {
			t.Errorf("polynomial %s not in normal form", p)
		}
	}
	//
	for _, term := range p.Terms() {
		if term.IsZero() {
			t.Errorf("polynomial %s has zero term", p)
		}
	}
}

func randPolynomial(rng *rand.Rand) Polynomial[Rat] {
	var terms = make([]Monomial[Rat], rng.IntN(5))
	//
	for i := range terms {
		terms[i] = randMonomial(rng)
	}
	//
	return NewPolynomial(terms...)
}
