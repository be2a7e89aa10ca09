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
package ideal

// Options bounds the work performed when standardizing a set of generators.
// Buchberger's algorithm always terminates, but can grow the basis very
// quickly, hence callers working with untrusted input should set a budget.  A
// zero value means no limit.
type Options struct {
	// MaxRounds limits the number of rounds over the basis.
	MaxRounds uint
	// MaxBasisSize limits the number of polynomials in the basis.
	MaxBasisSize uint
}

// Option represents a functional option for configuring standardization.
type Option func(*Options)

// WithMaxRounds limits the number of rounds which can be run.  Observe that
// the final round (which adds nothing) counts.
func WithMaxRounds(n uint) Option {
	return func(o *Options) {
		o.MaxRounds = n
	}
}

// WithMaxBasisSize limits the number of polynomials the basis can hold,
// including the original (non-zero) generators.
func WithMaxBasisSize(n uint) Option {
	return func(o *Options) {
		o.MaxBasisSize = n
	}
}

// NewOptions constructs a set of options from zero or more overrides of the
// (unlimited) defaults.
func NewOptions(opts ...Option) Options {
	var options Options
	//
	for _, opt := range opts {
		opt(&options)
	}
	//
	return options
}

func (o Options) roundsExceeded(round uint) bool {
	return o.MaxRounds != 0 && round > o.MaxRounds
}

func (o Options) sizeExceeded(size int) bool {
	return o.MaxBasisSize != 0 && uint(size) > o.MaxBasisSize
}
