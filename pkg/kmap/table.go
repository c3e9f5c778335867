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
	"strconv"
	"strings"
	"unicode"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// Table is a truth table whose rows are indexed by minterm.  The first
// variable of the order is the most significant bit of a minterm index.
type Table struct {
	Order     string
	Ones      *bitset.BitSet
	DontCares *bitset.BitSet
}

// Size returns the number of rows in this table.
func (t *Table) Size() uint {
	return 1 << len(t.Order)
}

// Value returns the entry for a given minterm, which is "1", "0" or "X".
func (t *Table) Value(minterm uint) string {
	switch {
	case t.Ones.Test(minterm):
		return "1"
	case t.DontCares.Test(minterm):
		return "X"
	}
	//
	return "0"
}

// Assignment returns the values of the variables for a minterm, e.g. "0110".
func (t *Table) Assignment(minterm uint) string {
	n := len(t.Order)
	//
	return fmt.Sprintf("%0*b", n, minterm)[:n]
}

// Lines renders this truth table, one row per minterm.
func (t *Table) Lines() []string {
	var lines = []string{fmt.Sprintf("%3s  %s | F", "m", t.Order)}
	//
	for m := uint(0); m < t.Size(); m++ {
		lines = append(lines, fmt.Sprintf("%3d  %s | %s", m, t.Assignment(m), t.Value(m)))
	}
	//
	return lines
}

// FromExpression evaluates an expression over every assignment of the given
// variable order.
func FromExpression(expr Expr, order string) *Table {
	var (
		n    = uint(len(order))
		ones = bitset.New(1 << n)
	)
	//
	for m := uint(0); m < 1<<n; m++ {
		if expr.Eval(environment(order, m)) {
			ones.Set(m)
		}
	}
	//
	return &Table{order, ones, bitset.New(1 << n)}
}

// Translate a minterm index into an assignment of variables.
func environment(order string, minterm uint) uint {
	var (
		n   = len(order)
		env uint
	)
	//
	for i := 0; i < n; i++ {
		if minterm&(1<<(n-1-i)) != 0 {
			env |= 1 << strings.IndexByte(VARIABLES, order[i])
		}
	}
	//
	return env
}

// ParseIndices parses a list of minterm indices separated by commas and/or
// whitespace.  Every index must be below limit.
func ParseIndices(text string, limit uint, name string) (*bitset.BitSet, error) {
	var (
		set    = bitset.New(limit)
		fields = strings.FieldsFunc(text, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	)
	//
	for _, field := range fields {
		index, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return nil, diag.Invalid("%s must be integers separated by commas or spaces (got \"%s\")", name, field)
		} else if uint(index) >= limit {
			return nil, diag.Range("%s must be in [0, %d] (got %d)", name, limit-1, index)
		}
		//
		set.Set(uint(index))
	}
	//
	return set, nil
}

// FromIndices constructs a truth table from lists of minterms and don't-cares,
// which must be disjoint.
func FromIndices(order string, minterms string, dontCares string) (*Table, error) {
	limit := uint(1) << len(order)
	//
	ones, err := ParseIndices(minterms, limit, "minterms")
	if err != nil {
		return nil, err
	}
	//
	dcs, err := ParseIndices(dontCares, limit, "don't cares")
	if err != nil {
		return nil, err
	}
	//
	if both := ones.Intersection(dcs); both.Any() {
		first, _ := both.NextSet(0)
		return nil, diag.Invalid("minterm %d cannot be both 1 and don't care", first)
	}
	//
	return &Table{order, ones, dcs}, nil
}

// ResolveOrder determines the variable order of a map.  An explicit order must
// consist of distinct variables A-E, agree with n (when non-zero) and include
// every variable in used.  Otherwise, the first n variables are used or, when
// n is zero, exactly those in used.
func ResolveOrder(order string, n uint, used uint) (string, error) {
	order = strings.ToUpper(strings.TrimSpace(order))
	//
	switch {
	case order != "":
		if err := validateOrder(order, n); err != nil {
			return "", err
		}
	case n > MAX_VARIABLES:
		return "", diag.Range("at most %d variables are supported (got %d)", MAX_VARIABLES, n)
	case n > 0:
		order = VARIABLES[:n]
	default:
		for i := range VARIABLES {
			if used&(1<<i) != 0 {
				order += VARIABLES[i : i+1]
			}
		}
		//
		if order == "" {
			return "", diag.Invalid("no variables found (use A-E)")
		}
	}
	//
	for i := range VARIABLES {
		if used&(1<<i) != 0 && !strings.Contains(order, VARIABLES[i:i+1]) {
			return "", diag.Invalid("variable %c is used but not in the order %s", VARIABLES[i], order)
		}
	}
	//
	return order, nil
}

func validateOrder(order string, n uint) error {
	if uint(len(order)) > MAX_VARIABLES {
		return diag.Range("at most %d variables are supported (got %d)", MAX_VARIABLES, len(order))
	} else if n != 0 && uint(len(order)) != n {
		return diag.Invalid("variable order %s does not have %d variables", order, n)
	}
	//
	for i, c := range order {
		if !strings.ContainsRune(VARIABLES, c) {
			return diag.Invalid("variable order contains '%c' (expected A-E)", c)
		} else if strings.IndexRune(order, c) != i {
			return diag.Invalid("variable order repeats %c", c)
		}
	}
	//
	return nil
}
