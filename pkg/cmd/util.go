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
	"io"
	"os"
	"strings"

	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/consensys/go-groebner/pkg/poly/parse"
	"github.com/consensys/go-groebner/pkg/util/field"
	"github.com/consensys/go-groebner/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetStringArray gets an expected string array flag, or exits if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// SourceError is a syntax error arising in a given source of polynomials (e.g.
// a file or a command-line argument).
type SourceError struct {
	Source string
	Err    *parse.SyntaxError
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s:%s", e.Source, e.Err.Error())
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Construct a parser for the configured variables.  When variables are given,
// no others are permitted.
func newParser[F field.Element[F]](cfg *Config) *parse.Parser[F] {
	var (
		vars   = cfg.Variables()
		parser = parse.NewParser[F](&vars)
	)
	//
	parser.Strict = len(vars) > 0
	//
	return parser
}

// Parse polynomials given as command-line arguments (one per argument), followed
// by those in the file given by the "file" flag (if any).
func readPolynomials[F field.Element[F]](cmd *cobra.Command, parser *parse.Parser[F],
	args []string) ([]poly.Polynomial[F], error) {
	polys, err := parseArgs(parser, "argument", args)
	//
	if err != nil {
		return nil, err
	} else if filename := GetString(cmd, "file"); filename != "" {
		var more []poly.Polynomial[F]
		//
		if more, err = parseFile(parser, filename); err != nil {
			return nil, err
		}
		//
		polys = append(polys, more...)
	}
	//
	return polys, nil
}

// Parse polynomials given as a list of strings, each of which is described by
// a given name in errors.
func parseArgs[F field.Element[F]](parser *parse.Parser[F], name string,
	args []string) ([]poly.Polynomial[F], error) {
	polys := make([]poly.Polynomial[F], len(args))
	//
	for i, arg := range args {
		p, err := parser.Parse(arg)
		//
		if err != nil {
			return nil, &SourceError{fmt.Sprintf("%s %d", name, i+1), err}
		}
		//
		polys[i] = p
	}
	//
	return polys, nil
}

// Parse all polynomials in a given file.
func parseFile[F field.Element[F]](parser *parse.Parser[F], filename string) ([]poly.Polynomial[F], error) {
	log.Debugf("reading polynomials from %s", filename)
	//
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		return nil, err
	}
	//
	polys, serr := parser.ParseAll(string(bytes))
	//
	if serr != nil {
		return nil, &SourceError{filename, serr}
	}
	//
	return polys, nil
}

// Configure a table for printing to a given writer, such that escapes are only
// used for terminals and columns are bounded by the terminal width.
func configureTable(table *termio.TablePrinter, out io.Writer, columns uint) {
	table.AnsiEscapes(termio.IsTerminal(out))
	//
	if width, ok := termio.Width(out); ok {
		for col := range columns {
			table.SetMaxWidth(col, width/columns-3)
		}
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(w io.Writer, err *SourceError) {
	span := err.Err.Span()
	line := err.Err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Fprintf(w, "%s:%d:%d-%d %s\n", err.Source,
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Err.Message())
	// Print separator line
	fmt.Fprintln(w)
	// Print line
	fmt.Fprintln(w, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(w, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(w, strings.Repeat("^", length))
}
