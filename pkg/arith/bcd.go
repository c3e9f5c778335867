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

	"github.com/consensys/go-bitlab/pkg/radix"
	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// DigitStep records the processing of a single decimal digit during BCD
// addition or subtraction.
type DigitStep struct {
	// Position counting from 1 at the rightmost digit.
	Position uint `json:"position"`
	A        uint `json:"a"`
	B        uint `json:"b"`
	// Carry (for addition) or borrow (for subtraction) into this digit.
	CarryIn uint `json:"carry_in"`
	// Raw 4-bit nibble before correction.
	Raw string `json:"raw"`
	// Whether the raw nibble was corrected with 0110 (addition) or 1010
	// (subtraction).
	Corrected bool   `json:"corrected"`
	Result    string `json:"result"`
	CarryOut  uint   `json:"carry_out"`
}

// BcdResult is the outcome of a BCD addition or subtraction.
type BcdResult struct {
	Op       string      `json:"op"`
	A        string      `json:"a"`
	B        string      `json:"b"`
	ABits    string      `json:"a_bits"`
	BBits    string      `json:"b_bits"`
	Negative bool        `json:"negative"`
	Value    string      `json:"value"`
	Bits     string      `json:"bits"`
	Steps    []DigitStep `json:"steps"`
	Trace    trace.Trace `json:"trace"`
}

// ParseBcdOperand parses a non-negative BCD operand, written either as decimal
// digits or as BCD nibbles.  Strings of decimal digits take precedence, such
// that "0001" is the decimal value one rather than a nibble; a "0b" prefix
// forces the nibble reading.
func ParseBcdOperand(text string) ([]uint, error) {
	clean := bits.Clean(text)
	//
	switch {
	case clean == "":
		return nil, diag.Invalid("BCD operand is empty")
	case strings.HasPrefix(clean, "-"):
		return nil, diag.Invalid("negative BCD operands are not supported (use two's complement)")
	case strings.HasPrefix(clean, "0b"), strings.HasPrefix(clean, "0B"):
		nibbles := clean[2:]
		//
		if !bits.IsBinary(nibbles) || len(nibbles)%4 != 0 {
			return nil, diag.Invalid("BCD bits must be a whole number of 4-bit groups")
		}
		//
		digits, err := radix.BCDDigits(nibbles)
		if err != nil {
			return nil, err
		}
		//
		return toDigits(digits), nil
	case strings.Trim(clean, "0123456789") == "":
		return toDigits(clean), nil
	}
	//
	return nil, diag.Invalid("\"%s\" is neither decimal digits nor BCD bits", text)
}

// BcdAdd adds two non-negative BCD operands digit by digit.  Any raw nibble
// which exceeds 1001, or which carried out of four bits, is corrected by
// adding 0110 and carrying into the next digit.
func BcdAdd(a string, b string) (BcdResult, error) {
	var (
		rec = trace.NewRecorder()
		res = BcdResult{Op: "+"}
	)
	//
	lhs, rhs, err := parseOperands(a, b)
	if err != nil {
		return res, err
	}
	//
	res.describe(lhs, rhs, rec)
	//
	var (
		n      = len(lhs)
		carry  uint
		result = make([]uint, n)
	)
	//
	for pos := n - 1; pos >= 0; pos-- {
		var (
			step = DigitStep{Position: uint(n - pos), A: lhs[pos], B: rhs[pos], CarryIn: carry}
			sum  = lhs[pos] + rhs[pos] + carry
			raw  = sum % 16
		)
		//
		step.Raw = bits.FromUint(uint64(raw), 4)
		step.Corrected = raw > 9 || sum >= 16
		nibble := raw
		//
		if step.Corrected {
			nibble = (raw + 6) % 16
			carry = 1
		} else {
			carry = 0
		}
		//
		if nibble != sum%10 {
			return res, diag.Internal("BCD correction of %d produced %d", sum, nibble)
		}
		//
		step.Result = bits.FromUint(uint64(nibble), 4)
		step.CarryOut = carry
		result[pos] = nibble
		res.Steps = append(res.Steps, step)
		//
		rec.Step("digit %d: %d + %d + carry %d = %s%s", step.Position, step.A, step.B, step.CarryIn, step.Raw,
			correction(step, "0110"))
	}
	//
	if carry == 1 {
		result = append([]uint{1}, result...)
		rec.Step("final carry becomes a new leading digit 0001")
	}
	//
	res.finish(result, false, rec)
	//
	return res, nil
}

// BcdSub subtracts two non-negative BCD operands digit by digit.  A digit which
// would go negative borrows from the next digit, which amounts to adding 1010
// to its nibble.  When the subtrahend is larger, the magnitude is computed by
// swapping the operands and the result is negated.
func BcdSub(a string, b string) (BcdResult, error) {
	var (
		rec = trace.NewRecorder()
		res = BcdResult{Op: "-"}
	)
	//
	lhs, rhs, err := parseOperands(a, b)
	if err != nil {
		return res, err
	}
	//
	res.describe(lhs, rhs, rec)
	//
	negative := compareDigits(lhs, rhs) < 0
	if negative {
		lhs, rhs = rhs, lhs
		rec.Note("A < B, so compute B - A and negate")
	}
	//
	var (
		n      = len(lhs)
		borrow uint
		result = make([]uint, n)
	)
	//
	for pos := n - 1; pos >= 0; pos-- {
		var (
			step = DigitStep{Position: uint(n - pos), A: lhs[pos], B: rhs[pos], CarryIn: borrow}
			diff = int(lhs[pos]) - int(rhs[pos]) - int(borrow)
			raw  = uint((diff + 16) % 16)
		)
		//
		step.Raw = bits.FromUint(uint64(raw), 4)
		step.Corrected = diff < 0
		nibble := raw
		//
		if step.Corrected {
			nibble = (raw + 10) % 16
			borrow = 1
		} else {
			borrow = 0
		}
		//
		step.Result = bits.FromUint(uint64(nibble), 4)
		step.CarryOut = borrow
		result[pos] = nibble
		res.Steps = append(res.Steps, step)
		//
		rec.Step("digit %d: %d - %d - borrow %d = %d%s", step.Position, step.A, step.B, step.CarryIn, diff,
			correction(step, "1010"))
	}
	//
	if borrow != 0 {
		return res, diag.Internal("BCD subtraction left an outstanding borrow")
	}
	//
	res.finish(result, negative, rec)
	//
	return res, nil
}

func parseOperands(a string, b string) ([]uint, []uint, error) {
	lhs, err := ParseBcdOperand(a)
	if err != nil {
		return nil, nil, err
	}
	//
	rhs, err := ParseBcdOperand(b)
	if err != nil {
		return nil, nil, err
	}
	// Right align
	n := max(len(lhs), len(rhs))
	//
	return padDigits(lhs, n), padDigits(rhs, n), nil
}

func (p *BcdResult) describe(lhs []uint, rhs []uint, rec *trace.Recorder) {
	p.A = digitString(lhs, false)
	p.B = digitString(rhs, false)
	p.ABits = nibbles(lhs)
	p.BBits = nibbles(rhs)
	//
	rec.Section("Operands")
	rec.Step("A = %s = %s", p.A, p.ABits)
	rec.Step("B = %s = %s", p.B, p.BBits)
	rec.Section("Digits (right to left)")
}

func (p *BcdResult) finish(result []uint, negative bool, rec *trace.Recorder) {
	// Strip leading zero digits, but keep at least one
	for len(result) > 1 && result[0] == 0 {
		result = result[1:]
	}
	//
	p.Negative = negative && !(len(result) == 1 && result[0] == 0)
	p.Value = digitString(result, p.Negative)
	p.Bits = nibbles(result)
	//
	if p.Negative {
		p.Bits = "-" + p.Bits
	}
	//
	rec.Section("Result")
	rec.Step("%s %s %s = %s (BCD %s)", p.A, p.Op, p.B, p.Value, p.Bits)
	p.Trace = rec.Trace()
}

func correction(step DigitStep, pattern string) string {
	if !step.Corrected {
		return ""
	}
	//
	return fmt.Sprintf(", add %s -> %s (carry %d)", pattern, step.Result, step.CarryOut)
}

func toDigits(text string) []uint {
	digits := make([]uint, len(text))
	//
	for i, c := range text {
		digits[i] = uint(c - '0')
	}
	//
	return digits
}

func padDigits(digits []uint, n int) []uint {
	padded := make([]uint, n-len(digits), n)
	//
	return append(padded, digits...)
}

func compareDigits(lhs []uint, rhs []uint) int {
	for i := range lhs {
		if lhs[i] != rhs[i] {
			if lhs[i] < rhs[i] {
				return -1
			}
			//
			return 1
		}
	}
	//
	return 0
}

func digitString(digits []uint, negative bool) string {
	var builder strings.Builder
	//
	if negative {
		builder.WriteByte('-')
	}
	//
	start := 0
	for start < len(digits)-1 && digits[start] == 0 {
		start++
	}
	//
	for _, d := range digits[start:] {
		builder.WriteByte(byte('0' + d))
	}
	//
	return builder.String()
}

func nibbles(digits []uint) string {
	groups := make([]string, len(digits))
	//
	for i, d := range digits {
		groups[i] = bits.FromUint(uint64(d), 4)
	}
	//
	return strings.Join(groups, " ")
}
