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
	"fmt"

	"github.com/consensys/go-groebner/pkg/ideal"
	"github.com/consensys/go-groebner/pkg/util/field"
	"github.com/consensys/go-groebner/pkg/util/field/bls12_377"
	"github.com/consensys/go-groebner/pkg/util/field/gf8209"
	"github.com/consensys/go-groebner/pkg/util/field/koalabear"
	"github.com/consensys/go-groebner/pkg/util/field/rational"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newBasisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "basis [flags] poly1 poly2 ...",
		Short: "compute a Gröbner basis for the ideal generated by some polynomials.",
		Long: `Compute a Gröbner basis (under the lexicographic ordering) for the ideal
generated by the given polynomials, which are printed one per line.`,
		Run: func(cmd *cobra.Command, args []string) {
			runFieldAgnosticCmd(cmd, args, basisCmds)
		},
	}
	//
	cmd.Flags().Bool("check", false, "check the basis satisfies Buchberger's criterion")
	//
	return cmd
}

// Available instances
var basisCmds = []FieldAgnosticCmd{
	{field.RATIONAL, runBasisCmd[rational.Element]},
	{field.GF_8209, runBasisCmd[gf8209.Element]},
	{field.KOALABEAR, runBasisCmd[koalabear.Element]},
	{field.BLS12_377, runBasisCmd[bls12_377.Element]},
}

func runBasisCmd[F field.Element[F]](cmd *cobra.Command, cfg *Config, args []string) error {
	var parser = newParser[F](cfg)
	//
	generators, err := readPolynomials(cmd, parser, args)
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
	vars := parser.Variables()
	//
	for _, p := range id.Basis() {
		fmt.Fprintln(cmd.OutOrStdout(), p.Format(vars.Name))
	}
	//
	if GetFlag(cmd, "check") {
		if err := ideal.CheckBasis(id.Basis()); err != nil {
			return err
		}
		//
		log.Infof("basis of %d polynomials satisfies Buchberger's criterion", len(id.Basis()))
	}
	//
	return nil
}
