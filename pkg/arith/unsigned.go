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
package arith

import (
	"fmt"
	"strings"

	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// UnsignedResult is the outcome of an operation on unsigned binary values.
type UnsignedResult struct {
	Op string `json:"op"`
	A  string `json:"a"`
	B  string `json:"b"`
	// Result bits, prefixed by '-' for a subtraction with A < B.
	Bits  string `json:"bits"`
	Value string `json:"value"`
	// Carry (addition) or borrow (subtraction) vector, aligned with the
	// operands.
	Carries string `json:"carries,omitempty"`
	// Shifted partial products (multiplication).
	Partials []string `json:"partials,omitempty"`
	// Remainder (division).
	Remainder string      `json:"remainder,omitempty"`
	Trace     trace.Trace `json:"trace"`
}

func parseUnsigned(a string, b string) (string, string, error) {
	lhs, err := bits.Parse(a, "operand A")
	if err != nil {
		return "", "", err
	}
	//
	rhs, err := bits.Parse(b, "operand B")
	if err != nil {
		return "", "", err
	}
	//
	return lhs, rhs, nil
}

// Add adds two unsigned binary values, recording the carry out of every
// column.
func Add(a string, b string) (UnsignedResult, error) {
	var rec = trace.NewRecorder()
	//
	lhs, rhs, err := parseUnsigned(a, b)
	if err != nil {
		return UnsignedResult{}, err
	}
	//
	n := max(len(lhs), len(rhs))
	lhs, rhs = bits.PadLeft(lhs, uint(n)), bits.PadLeft(rhs, uint(n))
	sum, columns := addColumns(lhs, rhs, 0)
	carries := make([]byte, n+1)
	//
	for i := range carries {
		carries[i] = '0'
	}
	//
	rec.Section("Column addition")
	//
	for _, c := range columns {
		carries[n-int(c.Position)] = byte('0' + c.CarryOut)
		rec.Step("column %d: %d + %d + carry %d = sum %d, carry %d", c.Position, c.A, c.B, c.CarryIn, c.Sum, c.CarryOut)
	}
	//
	if columns[len(columns)-1].CarryOut == 1 {
		sum = "1" + sum
		rec.Note("final carry extends the result by one bit")
	}
	//
	res := UnsignedResult{Op: "+", A: lhs, B: rhs, Bits: sum, Carries: string(carries)}
	//
	return res.finish(rec), nil
}

// Sub subtracts two unsigned binary values, recording the borrow out of every
// column.  When A < B the magnitude B - A is computed and the result negated.
func Sub(a string, b string) (UnsignedResult, error) {
	var rec = trace.NewRecorder()
	//
	lhs, rhs, err := parseUnsigned(a, b)
	if err != nil {
		return UnsignedResult{}, err
	}
	//
	n := max(len(lhs), len(rhs))
	lhs, rhs = bits.PadLeft(lhs, uint(n)), bits.PadLeft(rhs, uint(n))
	negative := lhs < rhs
	// Equal widths so lexicographic order is numeric order
	x, y := lhs, rhs
	if negative {
		x, y = rhs, lhs
		rec.Note("A < B, so compute B - A and negate")
	}
	//
	var (
		diff    = make([]byte, n)
		borrows = make([]byte, n)
		borrow  = 0
	)
	//
	rec.Section("Column subtraction")
	//
	for i := n - 1; i >= 0; i-- {
		d := int(x[i]-'0') - int(y[i]-'0') - borrow
		in := borrow
		borrow = 0
		//
		if d < 0 {
			d += 2
			borrow = 1
		}
		//
		diff[i] = byte('0' + d)
		borrows[i] = byte('0' + borrow)
		rec.Step("column %d: %c - %c - borrow %d = %d, borrow %d", n-i, x[i], y[i], in, d, borrow)
	}
	//
	res := UnsignedResult{Op: "-", A: lhs, B: rhs, Bits: bits.TrimLeading(string(diff)), Carries: string(borrows)}
	//
	if negative {
		res.Bits = "-" + res.Bits
	}
	//
	return res.finish(rec), nil
}

// Mul multiplies two unsigned binary values by summing shifted partial
// products, one for every set bit of B.
func Mul(a string, b string) (UnsignedResult, error) {
	var rec = trace.NewRecorder()
	//
	lhs, rhs, err := parseUnsigned(a, b)
	if err != nil {
		return UnsignedResult{}, err
	}
	//
	var (
		width    = len(lhs) + len(rhs)
		acc      = strings.Repeat("0", width)
		partials []string
	)
	//
	rec.Section("Partial products")
	//
	for i := len(rhs) - 1; i >= 0; i-- {
		shift := len(rhs) - 1 - i
		//
		if rhs[i] == '0' {
			rec.Step("bit %d of B is 0: partial product is 0", shift)
			continue
		}
		//
		partial := bits.PadLeft(lhs+strings.Repeat("0", shift), uint(width))
		partials = append(partials, bits.TrimLeading(partial))
		acc, _ = addColumns(acc, partial, 0)
		rec.Step("bit %d of B is 1: add A << %d = %s, running sum %s", shift, shift, bits.TrimLeading(partial),
			bits.TrimLeading(acc))
	}
	//
	res := UnsignedResult{Op: "x", A: lhs, B: rhs, Bits: bits.TrimLeading(acc), Partials: partials}
	//
	return res.finish(rec), nil
}

// Div divides two unsigned binary values by restoring long division, bringing
// down one bit of A at a time.
func Div(a string, b string) (UnsignedResult, error) {
	var rec = trace.NewRecorder()
	//
	lhs, rhs, err := parseUnsigned(a, b)
	if err != nil {
		return UnsignedResult{}, err
	} else if !strings.Contains(rhs, "1") {
		return UnsignedResult{}, diag.Range("division by zero")
	}
	//
	var (
		divisor   = bits.ToBig(rhs)
		remainder = bits.ToBig("")
		quotient  = make([]byte, len(lhs))
	)
	//
	rec.Section("Long division by %s", bits.TrimLeading(rhs))
	//
	for i := range lhs {
		remainder.Lsh(remainder, 1)
		remainder.SetBit(remainder, 0, uint(lhs[i]-'0'))
		//
		if remainder.Cmp(divisor) >= 0 {
			before := remainder.Text(2)
			remainder.Sub(remainder, divisor)
			quotient[i] = '1'
			rec.Step("bring down %c: %s >= %s, subtract -> %s, quotient bit 1", lhs[i], before, divisor.Text(2),
				remainder.Text(2))
		} else {
			quotient[i] = '0'
			rec.Step("bring down %c: %s < %s, quotient bit 0", lhs[i], remainder.Text(2), divisor.Text(2))
		}
	}
	//
	res := UnsignedResult{Op: "/", A: lhs, B: rhs, Bits: bits.TrimLeading(string(quotient)),
		Remainder: remainder.Text(2)}
	rec.Note("remainder %s (%s)", res.Remainder, remainder.String())
	//
	return res.finish(rec), nil
}

func (p UnsignedResult) finish(rec *trace.Recorder) UnsignedResult {
	negative := strings.HasPrefix(p.Bits, "-")
	val := bits.ToBig(strings.TrimPrefix(p.Bits, "-"))
	//
	if negative {
		val.Neg(val)
	}
	//
	p.Value = val.String()
	//
	rec.Section("Result")
	rec.Step("%s %s %s = %s (%s)", p.A, p.Op, p.B, p.Bits, p.Value)
	p.Trace = rec.Trace()
	//
	return p
}

// String renders a result as a short equation.
func (p UnsignedResult) String() string {
	if p.Remainder != "" {
		return fmt.Sprintf("%s %s %s = %s r %s", p.A, p.Op, p.B, p.Bits, p.Remainder)
	}
	//
	return fmt.Sprintf("%s %s %s = %s", p.A, p.Op, p.B, p.Bits)
}
