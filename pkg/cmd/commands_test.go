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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/consensys/go-groebner/pkg/ideal"
	"github.com/consensys/go-groebner/pkg/util/field/rational"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Basis_01(t *testing.T) {
	checkCommand(t, "x^{2} - y\nxy - 1\nx - y^{2}\ny^{3} - 1\n", "basis", "x^2 - y", "xy - 1")
}

func Test_Basis_02(t *testing.T) {
	checkCommand(t, "x^{2} + 8208y\nxy + 8208\nx + 8208y^{2}\ny^{3} + 8208\n",
		"basis", "--field", "GF_8209", "x^2 - y", "xy - 1")
}

func Test_Basis_03(t *testing.T) {
	path := writeFile(t, "ideal.txt", "# generators\nx^2 - y\nxy - 1\n")
	//
	checkCommand(t, "x^{2} - y\nxy - 1\nx - y^{2}\ny^{3} - 1\n", "basis", "--check", "--file", path)
}

func Test_Basis_04(t *testing.T) {
	cmd := subCommand(t, "basis", "--max-rounds", "2")
	cfg, err := LoadConfig(cmd.Flags())
	require.NoError(t, err)
	//
	err = runBasisCmd[rational.Element](cmd, cfg, []string{"x^2 - y", "xy - 1"})
	assert.ErrorIs(t, err, ideal.ErrNotConverged)
}

func Test_Divide_01(t *testing.T) {
	expected := strings.Join([]string{
		"x^{2}y + xy^{2} + y^{2}",
		" divisor   | quotient  |",
		" xy - 1    | x + y     |",
		" y^{2} - 1 | 1         |",
		" remainder | x + y + 1 |",
		"",
	}, "\n")
	//
	checkCommand(t, expected, "divide", "--by", "xy - 1", "--by", "y^2 - 1", "x^2y + xy^2 + y^2")
}

func Test_Divide_02(t *testing.T) {
	var (
		buf    bytes.Buffer
		srcErr *SourceError
		cmd    = subCommand(t, "divide", "--by", "x +")
	)
	//
	cfg, err := LoadConfig(cmd.Flags())
	require.NoError(t, err)
	//
	err = runDivideCmd[rational.Element](cmd, cfg, []string{"x"})
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "divisor 1", srcErr.Source)
	//
	printSyntaxError(&buf, srcErr)
	assert.Equal(t, "divisor 1:1:4-5 expected number, variable or '('\n\nx +\n   ^\n", buf.String())
}

func Test_Divide_03(t *testing.T) {
	cmd := subCommand(t, "divide")
	cfg, err := LoadConfig(cmd.Flags())
	require.NoError(t, err)
	//
	err = runDivideCmd[rational.Element](cmd, cfg, []string{"x"})
	assert.EqualError(t, err, "no divisors given (use --by)")
}

func Test_Member_01(t *testing.T) {
	expected := strings.Join([]string{
		" polynomial | member | remainder |",
		" x^{3} - 1  | yes    | 0         |",
		" xy^{2} - 1 | no     | y - 1     |",
		"",
	}, "\n")
	//
	checkCommand(t, expected, "member", "--gen", "x^2 - y", "--gen", "xy - 1", "x^3 - 1", "xy^2 - 1")
}

func Test_Member_02(t *testing.T) {
	var srcErr *SourceError
	// Unknown variables are rejected when variables are given
	cmd := subCommand(t, "member", "--vars", "x,y", "--gen", "x^2 - y")
	cfg, err := LoadConfig(cmd.Flags())
	require.NoError(t, err)
	//
	err = runMemberCmd[rational.Element](cmd, cfg, []string{"x + z"})
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "argument 1:1:5: unknown variable", err.Error())
}

func Test_Version_01(t *testing.T) {
	var (
		buf  bytes.Buffer
		root = newRootCmd()
	)
	//
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})
	require.NoError(t, root.Execute())
	assert.True(t, strings.HasPrefix(buf.String(), "groebner "))
}

// Run a command and check its output.
func checkCommand(t *testing.T, expected string, args ...string) {
	t.Helper()
	//
	var (
		buf  bytes.Buffer
		root = newRootCmd()
	)
	//
	root.SetOut(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	assert.Equal(t, expected, buf.String())
}

// Find a given subcommand and parse its flags (including those inherited from
// the root command).
func subCommand(t *testing.T, name string, args ...string) *cobra.Command {
	cmd, _, err := newRootCmd().Find([]string{name})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags(args))
	//
	return cmd
}
