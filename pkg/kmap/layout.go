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
package kmap

import (
	"fmt"
	"strings"
)

// Layout determines how the variables of a map are split between rows and
// columns.  Row variables come first in the order, and so occupy the most
// significant bits of a minterm.
type Layout struct {
	RowBits uint
	ColBits uint
}

var layouts = [MAX_VARIABLES + 1]Layout{
	{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}, {2, 3},
}

// LayoutFor returns the layout for a map of n variables.
func LayoutFor(n uint) Layout {
	return layouts[n]
}

// Rows returns the number of rows in this layout.
func (l Layout) Rows() uint { return 1 << l.RowBits }

// Cols returns the number of columns in this layout.
func (l Layout) Cols() uint { return 1 << l.ColBits }

// Minterm returns the minterm held in a given cell.  Both rows and columns
// are laid out in Gray code order, hence neighbouring cells (including those
// which wrap around an edge) differ in exactly one variable.
func (l Layout) Minterm(row, col uint) uint {
	return grayCode(row)<<l.ColBits | grayCode(col)
}

func grayCode(i uint) uint {
	return i ^ (i >> 1)
}

// Grid is the rendered form of a map.
type Grid struct {
	RowVariables string     `json:"row_variables"`
	ColVariables string     `json:"col_variables"`
	RowLabels    []string   `json:"row_labels"`
	ColLabels    []string   `json:"col_labels"`
	Cells        [][]uint   `json:"cells"`
	Values       [][]string `json:"values"`
}

// NewGrid lays out a truth table.
func NewGrid(table *Table) Grid {
	var (
		n      = uint(len(table.Order))
		layout = LayoutFor(n)
		grid   = Grid{
			RowVariables: table.Order[:layout.RowBits],
			ColVariables: table.Order[layout.RowBits:],
		}
	)
	//
	for r := uint(0); r < layout.Rows(); r++ {
		grid.RowLabels = append(grid.RowLabels, label(grayCode(r), layout.RowBits))
		cells := make([]uint, layout.Cols())
		values := make([]string, layout.Cols())
		//
		for c := range cells {
			cells[c] = layout.Minterm(r, uint(c))
			values[c] = table.Value(cells[c])
		}
		//
		grid.Cells = append(grid.Cells, cells)
		grid.Values = append(grid.Values, values)
	}
	//
	for c := uint(0); c < layout.Cols(); c++ {
		grid.ColLabels = append(grid.ColLabels, label(grayCode(c), layout.ColBits))
	}
	//
	return grid
}

func label(code uint, width uint) string {
	if width == 0 {
		return "-"
	}
	//
	return fmt.Sprintf("%0*b", width, code)
}

// Lines renders this grid as text, one line per row.
func (g *Grid) Lines() []string {
	var (
		corner = fmt.Sprintf("%s\\%s", g.RowVariables, g.ColVariables)
		width  = max(len(corner), len(g.RowLabels[0]))
		cell   = max(len(g.ColLabels[0]), 1)
		lines  []string
		header strings.Builder
	)
	//
	header.WriteString(fmt.Sprintf("%-*s", width, corner))
	//
	for _, l := range g.ColLabels {
		header.WriteString(fmt.Sprintf("  %*s", cell, l))
	}
	//
	lines = append(lines, header.String())
	//
	for r, values := range g.Values {
		var row strings.Builder
		//
		row.WriteString(fmt.Sprintf("%-*s", width, g.RowLabels[r]))
		//
		for _, v := range values {
			row.WriteString(fmt.Sprintf("  %*s", cell, v))
		}
		//
		lines = append(lines, row.String())
	}
	//
	return lines
}
