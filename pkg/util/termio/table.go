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
	"strings"
	"unicode/utf8"
)

// TablePrinter lays out rows of cells in aligned columns.
type TablePrinter struct {
	header        []string
	widths        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs an empty table with the given column headers.
// A table whose headers are all empty is printed without a header.
func NewTablePrinter(header ...string) *TablePrinter {
	widths := make([]uint, len(header))
	//
	for i, h := range header {
		widths[i] = width(h)
	}
	//
	return &TablePrinter{header, widths, nil, nil, false}
}

// AddRow appends a row of cells to this table.
func (p *TablePrinter) AddRow(vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	for i, v := range vals {
		p.widths[i] = max(p.widths[i], width(v))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]string, len(vals)))
}

// Height returns the number of rows (excluding the header).
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// Get returns the contents of a given cell.
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// SetEscape sets the escape used when printing a given cell.
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// AnsiEscapes enables or disables escapes, which are disabled by default.
// Output not going to a terminal should leave them off, otherwise the escape
// characters are printed verbatim.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// Print writes this table to a given writer.
func (p *TablePrinter) Print(out io.Writer) {
	if strings.Join(p.header, "") != "" {
		p.printRow(out, p.header, nil)
		//
		var rule []string
		for _, w := range p.widths {
			rule = append(rule, strings.Repeat("-", int(w)))
		}
		//
		p.printRow(out, rule, nil)
	}
	//
	for i, row := range p.rows {
		p.printRow(out, row, p.escapes[i])
	}
}

func (p *TablePrinter) printRow(out io.Writer, row []string, escapes []string) {
	for j, col := range row {
		pad := strings.Repeat(" ", int(p.widths[j]-width(col)))
		//
		if p.enableEscapes && escapes != nil && escapes[j] != "" {
			col = escapes[j] + col + ResetAnsiEscape().Build()
		}
		//
		fmt.Fprintf(out, " %s%s |", pad, col)
	}
	//
	fmt.Fprintln(out)
}

// Width in runes, such that cells containing symbols such as '·' align.
func width(text string) uint {
	return uint(utf8.RuneCountInString(text))
}
