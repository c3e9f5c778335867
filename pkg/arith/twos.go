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
	"math/big"
	"strings"

	"github.com/consensys/go-bitlab/pkg/radix"
	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// Column records the addition of a single bit column.
type Column struct {
	// Position counting from 1 at the least significant bit.
	Position uint `json:"position"`
	A        uint `json:"a"`
	B        uint `json:"b"`
	CarryIn  uint `json:"carry_in"`
	Sum      uint `json:"sum"`
	CarryOut uint `json:"carry_out"`
}

// TwosResult is the outcome of a two's complement addition or subtraction.
type TwosResult struct {
	Op    string `json:"op"`
	Width uint   `json:"width"`
	A     string `json:"a"`
	B     string `json:"b"`
	ABits string `json:"a_bits"`
	BBits string `json:"b_bits"`
	// Second operand of the underlying addition (~B for subtraction).
	Addend string `json:"addend"`
	Bits   string `json:"bits"`
	Value  string `json:"value"`
	// Carries into and out of the sign bit.
	CarryIntoMSB  uint        `json:"carry_into_msb"`
	CarryOutOfMSB uint        `json:"carry_out_of_msb"`
	Overflow      bool        `json:"overflow"`
	OverflowKind  string      `json:"overflow_kind,omitempty"`
	Columns       []Column    `json:"columns"`
	Trace         trace.Trace `json:"trace"`
}

// ParseTwosOperand parses an operand for fixed-width two's complement
// arithmetic.  Operands may be decimal, hexadecimal ("0x"), binary ("0b") or
// raw bits.  Unsigned raw bits of exactly the word width are read as an
// encoding, whilst other raw bits are read as a magnitude.  Values outside the
// representable range are rejected.
func ParseTwosOperand(text string, width uint) (*big.Int, string, error) {
	var (
		clean    = bits.Clean(text)
		negative = strings.HasPrefix(clean, "-")
		digits   = strings.TrimPrefix(clean, "-")
		val      *big.Int
		err      error
	)
	//
	switch {
	case digits == "":
		return nil, "", diag.Invalid("operand is empty")
	case strings.HasPrefix(digits, "0x"), strings.HasPrefix(digits, "0X"):
		val, err = radix.ParseInteger(clean, 16)
	case strings.HasPrefix(digits, "0b"), strings.HasPrefix(digits, "0B"):
		val, err = radix.ParseInteger(clean, 2)
	case bits.IsBinary(digits) && !negative && uint(len(digits)) == width:
		val = radix.DecodeTwos(digits)
	case bits.IsBinary(digits):
		val, err = radix.ParseInteger(clean, 2)
	default:
		val, err = radix.ParseInteger(clean, 10)
	}
	//
	if err != nil {
		return nil, "", err
	}
	//
	word, overflow := radix.EncodeTwos(val, width)
	if overflow {
		lo, hi := radix.TwosRange(width)
		return nil, "", diag.Range("value %s is outside the %d-bit two's complement range [%s, %s]", val, width, lo, hi)
	}
	//
	return val, word, nil
}

// TwosAdd adds two operands in fixed-width two's complement.  Overflow occurs
// when the carry into the sign bit differs from the carry out of it, or
// equivalently when both operands share a sign which the result does not.
func TwosAdd(a string, b string, width uint) (TwosResult, error) {
	return twosOp(a, b, width, false)
}

// TwosSub subtracts two operands in fixed-width two's complement, computing
// A + (~B + 1) by feeding an initial carry of 1 into the addition of ~B.
func TwosSub(a string, b string, width uint) (TwosResult, error) {
	return twosOp(a, b, width, true)
}

func twosOp(a string, b string, width uint, subtract bool) (TwosResult, error) {
	var (
		rec = trace.NewRecorder()
		res = TwosResult{Op: "+", Width: width}
	)
	//
	if err := radix.CheckWidth(width); err != nil {
		return res, err
	}
	//
	lhs, lhsBits, err := ParseTwosOperand(a, width)
	if err != nil {
		return res, err
	}
	//
	rhs, rhsBits, err := ParseTwosOperand(b, width)
	if err != nil {
		return res, err
	}
	//
	res.A, res.B, res.ABits, res.BBits = lhs.String(), rhs.String(), lhsBits, rhsBits
	res.Addend = rhsBits
	carry := uint(0)
	//
	rec.Section("Operands (width %d)", width)
	rec.Step("A = %s -> %s", res.A, lhsBits)
	rec.Step("B = %s -> %s", res.B, rhsBits)
	//
	if subtract {
		res.Op = "-"
		res.Addend = bits.Invert(rhsBits)
		carry = 1
		//
		rec.Section("Negate B")
		rec.Step("A - B = A + ~B + 1, with ~B = %s and an initial carry of 1", res.Addend)
	}
	//
	res.Bits, res.Columns = addColumns(lhsBits, res.Addend, carry)
	msb := res.Columns[len(res.Columns)-1]
	res.CarryIntoMSB, res.CarryOutOfMSB = msb.CarryIn, msb.CarryOut
	res.Overflow = res.CarryIntoMSB != res.CarryOutOfMSB
	value := radix.DecodeTwos(res.Bits)
	res.Value = value.String()
	//
	rec.Section("Column addition")
	rec.Block("", columnLayout(lhsBits, res.Addend, res.Bits, res.Columns)...)
	//
	for _, c := range res.Columns {
		rec.Step("column %d: %d + %d + carry %d = sum %d, carry %d", c.Position, c.A, c.B, c.CarryIn, c.Sum, c.CarryOut)
	}
	//
	if err := res.checkOverflow(lhs, rhs, subtract); err != nil {
		return res, err
	}
	//
	rec.Section("Result")
	rec.Step("carry into sign bit %d, carry out of sign bit %d", res.CarryIntoMSB, res.CarryOutOfMSB)
	//
	if res.Overflow {
		rec.Note("%s: result wraps to %s", res.OverflowKind, res.Value)
	}
	//
	rec.Step("%s %s %s = %s (%s)", res.A, res.Op, res.B, res.Value, res.Bits)
	res.Trace = rec.Trace()
	//
	return res, nil
}

// Cross check the carry-based overflow flag against exact arithmetic.
func (p *TwosResult) checkOverflow(lhs *big.Int, rhs *big.Int, subtract bool) error {
	var exact big.Int
	//
	if subtract {
		exact.Sub(lhs, rhs)
	} else {
		exact.Add(lhs, rhs)
	}
	//
	_, hi := radix.TwosRange(p.Width)
	_, overflow := radix.EncodeTwos(&exact, p.Width)
	//
	if overflow != p.Overflow {
		return diag.Internal("overflow flag disagrees with exact result %s", exact.String())
	} else if overflow && exact.Cmp(hi) > 0 {
		p.OverflowKind = "positive overflow"
	} else if overflow {
		p.OverflowKind = "negative overflow"
	}
	//
	return nil
}

// Add two equal width bit strings column by column from the right, returning
// the sum (without final carry) and the columns in processing order.
func addColumns(lhs string, rhs string, carry uint) (string, []Column) {
	var (
		n       = len(lhs)
		sum     = make([]byte, n)
		columns = make([]Column, 0, n)
	)
	//
	for i := n - 1; i >= 0; i-- {
		a, b := uint(lhs[i]-'0'), uint(rhs[i]-'0')
		total := a + b + carry
		column := Column{uint(n - i), a, b, carry, total & 1, total >> 1}
		sum[i] = byte('0' + column.Sum)
		carry = column.CarryOut
		columns = append(columns, column)
	}
	//
	return string(sum), columns
}

// Render a column addition with a row of carries above the operands.
func columnLayout(lhs string, rhs string, sum string, columns []Column) []string {
	var (
		n      = len(lhs)
		carrys = []byte(strings.Repeat(" ", n+1))
	)
	//
	for _, c := range columns {
		if c.CarryOut == 1 {
			carrys[n-int(c.Position)] = '1'
		}
	}
	//
	return []string{
		string(carrys),
		" " + lhs,
		"+" + rhs,
		strings.Repeat("-", n+1),
		" " + sum,
	}
}
