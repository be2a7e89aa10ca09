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
package termio

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// TablePrinter is useful for printing tables of left-aligned text, such as
// polynomials.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with a given number of columns and
// no rows.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{make([]uint, width), nil, nil, true}
}

// AddRow appends a row to this table, returning its index.  Every row must
// have one value per column.
func (p *TablePrinter) AddRow(vals ...string) uint {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i, val := range vals {
		p.widths[i] = max(p.widths[i], uint(utf8.RuneCountInString(val)))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]string, len(vals)))
	//
	return uint(len(p.rows) - 1)
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the number of rows in this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetEscape set the escape to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// SetRowEscape sets the escape to use for every cell in a given row.
func (p *TablePrinter) SetRowEscape(row uint, escape AnsiEscape) {
	for col := range p.widths {
		p.SetEscape(uint(col), row, escape)
	}
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Escapes should be disabled when not writing to a terminal.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetMaxWidth puts an upper bound on the width of a given column.  Longer
// values are truncated.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], max(width, 3))
}

// Print this table to a given writer.
func (p *TablePrinter) Print(w io.Writer) error {
	for i, row := range p.rows {
		for j, col := range row {
			var (
				width  = p.widths[j]
				escape = p.escapes[i][j]
				runes  = []rune(col)
			)
			//
			if uint(len(runes)) > width {
				col = string(runes[:width-2]) + ".."
			}
			// Print colour (if applicable)
			if p.enableEscapes && escape != "" {
				col = escape + fmt.Sprintf("%-*s", width, col) + ResetAnsiEscape().Build()
			} else {
				col = fmt.Sprintf("%-*s", width, col)
			}
			//
			if _, err := fmt.Fprintf(w, " %s |", col); err != nil {
				return err
			}
		}
		//
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	//
	return nil
}
