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
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// Input describes the function to be minimised, given either as an
// expression or as a list of minterms.  Don't-cares can be given in either
// case.  Variables and Order are optional when an expression is given.
type Input struct {
	Expression string `json:"expression,omitempty"`
	Minterms   string `json:"minterms,omitempty"`
	DontCares  string `json:"dont_cares,omitempty"`
	Variables  uint   `json:"variables,omitempty"`
	Order      string `json:"order,omitempty"`
}

// Result holds a minimal sum of products along with the map it was read from.
type Result struct {
	Order      string      `json:"order"`
	Variables  uint        `json:"variables"`
	Expression string      `json:"expression,omitempty"`
	Minterms   []uint      `json:"minterms"`
	DontCares  []uint      `json:"dont_cares"`
	SOP        string      `json:"sop"`
	Primes     []Implicant `json:"primes"`
	Implicants []Implicant `json:"implicants"`
	Grid       Grid        `json:"grid"`
	Trace      trace.Trace `json:"trace"`
}

// Minimize reads a minimal sum of products from the Karnaugh map of a given
// function.
func Minimize(in Input) (Result, error) {
	var (
		rec   = trace.NewRecorder()
		res   Result
		table *Table
		err   error
	)
	//
	switch {
	case strings.TrimSpace(in.Expression) != "" && strings.TrimSpace(in.Minterms) != "":
		return res, diag.Invalid("give either an expression or a list of minterms, not both")
	case strings.TrimSpace(in.Expression) != "":
		table, err = fromExpression(in, &res, rec)
	case strings.TrimSpace(in.Minterms) != "":
		table, err = fromMinterms(in)
	default:
		return res, diag.Invalid("an expression or a list of minterms is required")
	}
	//
	if err != nil {
		return res, err
	}
	//
	res.Order = table.Order
	res.Variables = uint(len(table.Order))
	res.Minterms = members(table.Ones)
	res.DontCares = members(table.DontCares)
	res.Grid = NewGrid(table)
	//
	rec.Section("Truth table")
	rec.Step("Variables %s (%s is the most significant bit of a minterm)", table.Order, table.Order[:1])
	rec.Step("Ones: %s", listOf(res.Minterms))
	//
	if len(res.DontCares) > 0 {
		rec.Step("Don't cares: %s", listOf(res.DontCares))
	}
	//
	rec.Block("Truth table", table.Lines()...)
	rec.Section("Karnaugh map")
	rec.Step("Rows %s and columns %s are in Gray code order, and the map wraps around", orDash(res.Grid.RowVariables),
		res.Grid.ColVariables)
	rec.Block("Map", res.Grid.Lines()...)
	// Constant functions are handled by cover selection, but read better
	// when noted.
	if table.Ones.None() {
		res.SOP = "0"
		//
		rec.Section("Result")
		rec.Note("There are no ones, so the function is 0")
		res.Trace = rec.Trace()
		//
		return res, nil
	}
	//
	res.Primes = PrimeImplicants(table)
	//
	rec.Section("Prime implicants")
	//
	for _, p := range res.Primes {
		rec.Step("%s covers %s (%s)", p.Term, listOf(p.Minterms), p.Rect)
	}
	//
	res.Implicants = selectCover(table, res.Primes)
	//
	if err := checkCover(table, res.Implicants); err != nil {
		return res, err
	}
	//
	rec.Section("Cover")
	//
	var terms []string
	//
	for _, p := range res.Implicants {
		if p.Essential {
			rec.Step("%s is essential", p.Term)
		} else {
			rec.Step("%s covers the most remaining ones", p.Term)
		}
		//
		terms = append(terms, p.Term)
	}
	//
	res.SOP = strings.Join(terms, " + ")
	//
	rec.Section("Result")
	rec.Step("F = %s", res.SOP)
	res.Trace = rec.Trace()
	//
	return res, nil
}

func fromExpression(in Input, res *Result, rec *trace.Recorder) (*Table, error) {
	expr, err := Parse(in.Expression)
	if err != nil {
		return nil, err
	}
	//
	order, err := ResolveOrder(in.Order, in.Variables, expr.Vars())
	if err != nil {
		return nil, err
	}
	//
	res.Expression = expr.String()
	table := FromExpression(expr, order)
	//
	rec.Section("Expression")
	rec.Step("Parsed as %s", res.Expression)
	//
	dcs, err := ParseIndices(in.DontCares, table.Size(), "don't cares")
	if err != nil {
		return nil, err
	}
	// don't cares take precedence over the expression
	table.Ones.InPlaceDifference(dcs)
	table.DontCares = dcs
	//
	return table, nil
}

func fromMinterms(in Input) (*Table, error) {
	if in.Variables == 0 && strings.TrimSpace(in.Order) == "" {
		return nil, diag.Invalid("the number of variables is required for a list of minterms")
	}
	//
	order, err := ResolveOrder(in.Order, in.Variables, 0)
	if err != nil {
		return nil, err
	}
	//
	return FromIndices(order, in.Minterms, in.DontCares)
}

// The selected implicants must cover every one, and nothing but ones and
// don't cares.
func checkCover(table *Table, selected []Implicant) error {
	union := bitset.New(table.Size())
	//
	for _, p := range selected {
		union.InPlaceUnion(p.set)
	}
	//
	if !union.IsSuperSet(table.Ones) {
		return diag.Internal("cover misses minterms %s", listOf(members(table.Ones.Difference(union))))
	} else if allowed := table.Ones.Union(table.DontCares); !allowed.IsSuperSet(union) {
		return diag.Internal("cover includes zeros %s", listOf(members(union.Difference(allowed))))
	}
	//
	return nil
}

func listOf(ms []uint) string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, m := range ms {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(strconv.FormatUint(uint64(m), 10))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	//
	return s
}
