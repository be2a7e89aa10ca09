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
	"os"
	"runtime/debug"
	"strings"

	"github.com/consensys/go-groebner/pkg/ideal"
	"github.com/consensys/go-groebner/pkg/util"
	"github.com/consensys/go-groebner/pkg/util/field"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groebner",
		Short: "A toolbox for polynomial ideals.",
		Long: `A toolbox for polynomial ideals, which computes Gröbner bases (using
Buchberger's algorithm), divides polynomials and decides ideal membership.
Polynomials are written in a LaTeX-like syntax, such as "3x^{2}y - 1/2".`,
		Run: func(cmd *cobra.Command, args []string) {
			if GetFlag(cmd, "version") {
				fmt.Fprintf(cmd.OutOrStdout(), "groebner %s\n", version())
			} else {
				_ = cmd.Help()
			}
		},
	}
	//
	cmd.Flags().Bool("version", false, "print version information")
	addConfigFlags(cmd.PersistentFlags())
	//
	cmd.AddCommand(newBasisCmd(), newDivideCmd(), newMemberCmd())
	//
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func version() string {
	if Version != "" {
		// Built via "make"
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		return info.Main.Version
	}
	// Unknown, perhaps "go run"
	return "(unknown version)"
}

func addConfigFlags(flags *pflag.FlagSet) {
	flags.BoolP("verbose", "v", false, "increase logging verbosity")
	flags.String("field", field.RATIONAL.Name,
		fmt.Sprintf("coefficient field to use throughout (%s)", strings.Join(field.Names(), ", ")))
	flags.StringSlice("vars", nil, "indeterminates in decreasing order of significance (e.g. x,y,z)")
	flags.String("order", "lex", "monomial ordering")
	flags.Uint("max-rounds", 0, "maximum number of Buchberger rounds (0 for no limit)")
	flags.Uint("max-basis-size", 0, "maximum number of polynomials in a basis (0 for no limit)")
	flags.Duration("timeout", 0, "maximum time to spend computing a basis (0 for no limit)")
	flags.String("config", "", "read configuration from a YAML file")
	flags.StringP("file", "f", "", "read polynomials from a file")
}

// FieldAgnosticCmd represents a command to be executed for a given field.
type FieldAgnosticCmd struct {
	Field    field.Config
	Function func(*cobra.Command, *Config, []string) error
}

// Run a field agnostic top-level command.
func runFieldAgnosticCmd(cmd *cobra.Command, args []string, cmds []FieldAgnosticCmd) {
	cfg, err := LoadConfig(cmd.Flags())
	// Sanity checks
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(3)
	} else if _, err := cfg.Ordering(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(3)
	}
	// Configure log level
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	// Find command to dispatch
	for _, c := range cmds {
		if c.Field.Name == cfg.Field {
			stats := util.NewPerfStats()
			err := c.Function(cmd, cfg, args)
			//
			stats.Log(cmd.Name())
			//
			if err != nil {
				exitWithError(cmd, err)
			}
			// Done
			return
		}
	}
	//
	fmt.Fprintf(cmd.ErrOrStderr(), "field %s unsupported for command '%s'\n", cfg.Field, cmd.Name())
	os.Exit(2)
}

// Report an error and exit, where the exit code identifies the kind of error.
func exitWithError(cmd *cobra.Command, err error) {
	var srcErr *SourceError
	//
	switch {
	case errors.As(err, &srcErr):
		printSyntaxError(cmd.ErrOrStderr(), srcErr)
		os.Exit(4)
	case errors.Is(err, ideal.ErrNotConverged):
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(5)
	default:
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
