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
	"errors"
	"fmt"

	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/consensys/go-groebner/pkg/util/field"
	"github.com/consensys/go-groebner/pkg/util/field/bls12_377"
	"github.com/consensys/go-groebner/pkg/util/field/gf8209"
	"github.com/consensys/go-groebner/pkg/util/field/koalabear"
	"github.com/consensys/go-groebner/pkg/util/field/rational"
	"github.com/consensys/go-groebner/pkg/util/termio"
	"github.com/spf13/cobra"
)

func newDivideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "divide [flags] --by divisor1 --by divisor2 ... poly1 poly2 ...",
		Short: "divide polynomials by an ordered list of divisors.",
		Long: `Divide each given polynomial by an ordered list of divisors, printing the
quotient for each divisor and the remainder.  The result depends upon the order
in which divisors are given.`,
		Run: func(cmd *cobra.Command, args []string) {
			runFieldAgnosticCmd(cmd, args, divideCmds)
		},
	}
	//
	cmd.Flags().StringArray("by", nil, "divisor (can be given more than once)")
	//
	return cmd
}

// Available instances
var divideCmds = []FieldAgnosticCmd{
	{field.RATIONAL, runDivideCmd[rational.Element]},
	{field.GF_8209, runDivideCmd[gf8209.Element]},
	{field.KOALABEAR, runDivideCmd[koalabear.Element]},
	{field.BLS12_377, runDivideCmd[bls12_377.Element]},
}

func runDivideCmd[F field.Element[F]](cmd *cobra.Command, cfg *Config, args []string) error {
	var parser = newParser[F](cfg)
	//
	divisors, err := parseArgs(parser, "divisor", GetStringArray(cmd, "by"))
	if err != nil {
		return err
	} else if len(divisors) == 0 {
		return errors.New("no divisors given (use --by)")
	}
	//
	dividends, err := readPolynomials(cmd, parser, args)
	if err != nil {
		return err
	}
	//
	var (
		out  = cmd.OutOrStdout()
		vars = parser.Variables()
	)
	//
	for i, p := range dividends {
		quotients, remainder := poly.Divide(p, divisors)
		table := termio.NewTablePrinter(2)
		//
		header := table.AddRow("divisor", "quotient")
		table.SetRowEscape(header, termio.NewAnsiEscape().Bold())
		//
		for j, d := range divisors {
			table.AddRow(d.Format(vars.Name), quotients[j].Format(vars.Name))
		}
		//
		row := table.AddRow("remainder", remainder.Format(vars.Name))
		table.SetEscape(1, row, termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW))
		configureTable(table, out, 2)
		//
		if i != 0 {
			fmt.Fprintln(out)
		}
		//
		fmt.Fprintln(out, p.Format(vars.Name))
		//
		if err := table.Print(out); err != nil {
			return err
		}
	}
	//
	return nil
}
