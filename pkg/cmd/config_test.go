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
package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/consensys/go-groebner/pkg/ideal"
	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config_01(t *testing.T) {
	cfg := checkConfig(t)
	//
	assert.Equal(t, "RATIONAL", cfg.Field)
	assert.Equal(t, "lex", cfg.Order)
	assert.Empty(t, cfg.Vars)
	assert.Equal(t, uint(0), cfg.MaxRounds)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.False(t, cfg.Verbose)
}

func Test_Config_02(t *testing.T) {
	cfg := checkConfig(t, "--field", "GF_8209", "--vars", "x,y_{1}", "--max-rounds", "4", "--timeout", "2s", "-v")
	//
	assert.Equal(t, "GF_8209", cfg.Field)
	assert.Equal(t, []string{"x", "y_{1}"}, cfg.Vars)
	assert.Equal(t, poly.Variables{"x", "y_1"}, cfg.Variables())
	assert.Equal(t, uint(4), cfg.MaxRounds)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, ideal.Options{MaxRounds: 4}, ideal.NewOptions(cfg.Options()...))
}

func Test_Config_03(t *testing.T) {
	t.Setenv("GROEBNER_FIELD", "KOALABEAR")
	t.Setenv("GROEBNER_MAX_BASIS_SIZE", "10")
	t.Setenv("GROEBNER_VARS", "a,b")
	//
	cfg := checkConfig(t)
	//
	assert.Equal(t, "KOALABEAR", cfg.Field)
	assert.Equal(t, uint(10), cfg.MaxBasisSize)
	assert.Equal(t, []string{"a", "b"}, cfg.Vars)
	// Flags take precedence
	cfg = checkConfig(t, "--field", "BLS12_377")
	assert.Equal(t, "BLS12_377", cfg.Field)
}

func Test_Config_04(t *testing.T) {
	path := writeFile(t, "groebner.yaml", "field: BLS12_377\nvars: [a, b]\nmax_rounds: 7\ntimeout: 1m\n")
	//
	cfg := checkConfig(t, "--config", path)
	//
	assert.Equal(t, "BLS12_377", cfg.Field)
	assert.Equal(t, []string{"a", "b"}, cfg.Vars)
	assert.Equal(t, uint(7), cfg.MaxRounds)
	assert.Equal(t, time.Minute, cfg.Timeout)
	// Flags take precedence
	cfg = checkConfig(t, "--config", path, "--max-rounds", "2")
	assert.Equal(t, uint(2), cfg.MaxRounds)
}

func Test_Config_05(t *testing.T) {
	checkConfigError(t, "--field", "GF_7")
	checkConfigError(t, "--vars", "x,xy")
	checkConfigError(t, "--order", "deglex")
	checkConfigError(t, "--timeout", "-1s")
	checkConfigError(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
}

func Test_Config_06(t *testing.T) {
	var target *poly.UnsupportedOrderingError
	// Graded orderings are recognised, but not supported.
	cfg := checkConfig(t, "--order", "grevlex")
	_, err := cfg.Ordering()
	//
	assert.True(t, errors.As(err, &target))
}

func Test_Config_07(t *testing.T) {
	cfg := checkConfig(t, "--timeout", "1ns")
	ctx, cancel := cfg.Context(context.Background())
	//
	defer cancel()
	//
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addConfigFlags(flags)
	require.NoError(t, flags.Parse(args))
	//
	return flags
}

func checkConfig(t *testing.T, args ...string) *Config {
	t.Helper()
	//
	cfg, err := LoadConfig(newFlagSet(t, args...))
	require.NoError(t, err)
	//
	return cfg
}

func checkConfigError(t *testing.T, args ...string) {
	t.Helper()
	//
	_, err := LoadConfig(newFlagSet(t, args...))
	assert.Error(t, err, args)
}

func writeFile(t *testing.T, name string, contents string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	//
	return path
}
