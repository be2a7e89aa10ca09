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
	"github.com/consensys/go-groebner/pkg/ideal"
	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/consensys/go-groebner/pkg/util/field"
	"github.com/consensys/go-groebner/pkg/util/field/bls12_377"
	"github.com/consensys/go-groebner/pkg/util/field/gf8209"
	"github.com/consensys/go-groebner/pkg/util/field/koalabear"
	"github.com/consensys/go-groebner/pkg/util/field/rational"
	"github.com/consensys/go-groebner/pkg/util/termio"
	"github.com/spf13/cobra"
)

func newMemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member [flags] --gen generator1 --gen generator2 ... poly1 poly2 ...",
		Short: "decide whether polynomials belong to an ideal.",
		Long: `Decide whether each given polynomial belongs to the ideal generated by the
generators given with --gen (and those read from --file).  Each polynomial is
reported together with its remainder modulo a Gröbner basis of the ideal.`,
		Run: func(cmd *cobra.Command, args []string) {
			runFieldAgnosticCmd(cmd, args, memberCmds)
		},
	}
	//
	cmd.Flags().StringArray("gen", nil, "generator of the ideal (can be given more than once)")
	//
	return cmd
}

// Available instances
var memberCmds = []FieldAgnosticCmd{
	{field.RATIONAL, runMemberCmd[rational.Element]},
	{field.GF_8209, runMemberCmd[gf8209.Element]},
	{field.KOALABEAR, runMemberCmd[koalabear.Element]},
	{field.BLS12_377, runMemberCmd[bls12_377.Element]},
}

func runMemberCmd[F field.Element[F]](cmd *cobra.Command, cfg *Config, args []string) error {
	var parser = newParser[F](cfg)
	// Generators come from flags, then the file.
	generators, err := parseArgs(parser, "generator", GetStringArray(cmd, "gen"))
	if err != nil {
		return err
	} else if filename := GetString(cmd, "file"); filename != "" {
		var more []poly.Polynomial[F]
		//
		if more, err = parseFile(parser, filename); err != nil {
			return err
		}
		//
		generators = append(generators, more...)
	}
	//
	candidates, err := parseArgs(parser, "argument", args)
	if err != nil {
		return err
	}
	//
	ctx, cancel := cfg.Context(cmd.Context())
	defer cancel()
	//
	id, err := ideal.Build(ctx, generators, cfg.Options()...)
	if err != nil {
		return err
	}
	//
	var (
		out   = cmd.OutOrStdout()
		vars  = parser.Variables()
		table = termio.NewTablePrinter(3)
	)
	//
	header := table.AddRow("polynomial", "member", "remainder")
	table.SetRowEscape(header, termio.NewAnsiEscape().Bold())
	//
	for _, q := range candidates {
		var (
			remainder = id.Reduce(q)
			member    = "no"
			colour    = termio.TERM_RED
		)
		//
		if remainder.IsZero() {
			member, colour = "yes", termio.TERM_GREEN
		}
		//
		row := table.AddRow(q.Format(vars.Name), member, remainder.Format(vars.Name))
		table.SetEscape(1, row, termio.NewAnsiEscape().FgColour(colour))
	}
	//
	configureTable(table, out, 3)
	//
	return table.Print(out)
}
