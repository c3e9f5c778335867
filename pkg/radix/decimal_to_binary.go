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
package radix

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/consensys/go-bitlab/pkg/util/exact"
)

// MAX_FRACTION_BITS bounds the number of fractional bits which can be
// requested.
const MAX_FRACTION_BITS = 4096

// MAX_INTEGER_DIGITS bounds the number of decimal digits in the integer part
// of a value being converted.
const MAX_INTEGER_DIGITS = 1024

// DEFAULT_FRACTION_BITS is the fractional precision used for inputs with a
// non-zero fraction when none is given explicitly.
const DEFAULT_FRACTION_BITS = 16

// Rounding determines how surplus fractional bits are discarded.
type Rounding uint8

const (
	// TRUNCATE simply drops surplus bits.
	TRUNCATE Rounding = iota
	// NEAREST_EVEN rounds to the nearest representable value, with ties going
	// to an even least significant bit.
	NEAREST_EVEN
)

func (r Rounding) String() string {
	if r == TRUNCATE {
		return "truncate"
	}
	//
	return "nearest-even"
}

// ParseRounding converts a textual rounding mode into a Rounding.
func ParseRounding(text string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "truncate", "trunc", "":
		return TRUNCATE, nil
	case "nearest-even", "nearest", "even", "rne":
		return NEAREST_EVEN, nil
	}
	//
	return TRUNCATE, diag.Invalid("unknown rounding mode \"%s\"", text)
}

// BinaryResult is the outcome of converting a decimal value into binary.
type BinaryResult struct {
	Negative bool `json:"negative"`
	// Integer bits (MSB first, no leading zeros).
	Integer string `json:"integer"`
	// Fractional bits, exactly as many as requested.
	Fraction string `json:"fraction"`
	// Complete signed bit string, e.g. "-1101.101".
	Bits string `json:"bits"`
	// Bits grouped in nibbles either side of the point.
	Grouped string `json:"grouped"`
	// Decimal re-expansion of Bits.
	Value string `json:"value"`
	// Value minus the original input.
	Difference string `json:"difference"`
	// Whether Bits represents the input exactly.
	Exact bool `json:"exact"`
	// Powers of two making up the magnitude, e.g. ["2^3", "2^2", "2^0", "2^-1"].
	Terms []string    `json:"terms"`
	Trace trace.Trace `json:"trace"`
}

// InferFracBits determines a default fractional precision for some decimal
// text: zero when there is no fractional part (or it is all zeros), otherwise
// the given fallback.
func InferFracBits(text string, fallback uint) uint {
	text = strings.TrimSpace(text)
	//
	index := strings.IndexByte(text, '.')
	if index < 0 {
		return 0
	}
	//
	frac := text[index+1:]
	if cut := strings.IndexAny(frac, "eE"); cut >= 0 {
		frac = frac[:cut]
	}
	//
	if strings.Trim(frac, "0") == "" {
		return 0
	}
	//
	return fallback
}

// DecimalToBinary converts a signed decimal string into binary with a given
// number of fractional bits.  The integer part is converted by repeated
// division by two, and the fraction by repeated multiplication by two.  When
// rounding to nearest-even a guard bit is generated, and the exact remaining
// fraction acts as the sticky bit.
func DecimalToBinary(text string, fracBits uint, mode Rounding, ctx *apd.Context) (BinaryResult, error) {
	var (
		rec = trace.NewRecorder()
		res BinaryResult
	)
	//
	if fracBits > MAX_FRACTION_BITS {
		return res, diag.Range("at most %d fractional bits can be requested", MAX_FRACTION_BITS)
	}
	//
	input, err := exact.Parse(text)
	if err != nil {
		return res, err
	} else if input.NumDigits()+int64(input.Exponent) > MAX_INTEGER_DIGITS {
		return res, diag.Range("integer part has more than %d digits", MAX_INTEGER_DIGITS)
	}
	//
	ctx = exact.Widen(ctx, requiredDigits(input, fracBits))
	//
	var magnitude apd.Decimal
	//
	magnitude.Abs(input)
	res.Negative = input.Negative && !input.IsZero()
	integ, frac := exact.Split(&magnitude)
	//
	rec.Section("Integer part %s", integ.String())
	res.Integer = integerBits(integ, rec)
	//
	rec.Section("Fractional part %s", exact.Format(frac))
	//
	fraction, rest, err := fractionBits(ctx, frac, fracBits, rec)
	if err != nil {
		return res, err
	}
	//
	lsb := res.Integer[len(res.Integer)-1]
	if fracBits > 0 {
		lsb = fraction[fracBits-1]
	}
	//
	res.Exact = rest.IsZero()
	//
	if mode == NEAREST_EVEN && !rest.IsZero() {
		var guard string
		// Generate the guard bit
		if guard, rest, err = fractionBits(ctx, rest, 1, nil); err != nil {
			return res, err
		}
		//
		sticky := !rest.IsZero()
		roundUp := guard == "1" && (sticky || lsb == '1')
		rec.Section("Rounding (nearest-even)")
		rec.Step("guard=%s sticky=%d lsb=%c => %s", guard, boolBit(sticky), lsb, roundUpText(roundUp))
		//
		if roundUp {
			res.Integer, fraction = increment(res.Integer, fraction)
		}
	} else if !rest.IsZero() {
		rec.Section("Rounding (truncate)")
		rec.Step("remaining fraction %s discarded", exact.Format(rest))
	}
	//
	res.Fraction = fraction
	res.Bits, res.Grouped = render(res.Negative, res.Integer, res.Fraction)
	//
	if err = res.verify(ctx, input, rec); err != nil {
		return res, err
	}
	//
	res.Trace = rec.Trace()
	//
	return res, nil
}

// Bound the number of significant digits needed to hold every intermediate
// value exactly.  A binary fraction with n bits has exactly n decimal digits
// after the point, whilst doubling never lengthens the input's fraction.  One
// further digit is allowed for a carry out of rounding.
func requiredDigits(input *apd.Decimal, fracBits uint) uint32 {
	var (
		exp        = int64(input.Exponent)
		intDigits  = max(0, input.NumDigits()+exp)
		fracDigits = max(int64(fracBits), -exp)
	)
	//
	return uint32(intDigits + fracDigits + 2)
}

// Render the complete bit string both plain and grouped.
func render(negative bool, integer string, fraction string) (string, string) {
	var sign string
	//
	if negative {
		sign = "-"
	}
	//
	if fraction == "" {
		return sign + integer, sign + bits.Group(integer, 4)
	}
	//
	return sign + integer + "." + fraction, sign + bits.Group(integer, 4) + "." + bits.GroupFraction(fraction, 4)
}

// Re-expand the produced bits as a decimal, and compare with the input.
func (p *BinaryResult) verify(ctx *apd.Context, input *apd.Decimal, rec *trace.Recorder) error {
	var (
		mantissa = bits.ToBig(p.Integer + p.Fraction)
		width    = len(p.Fraction)
	)
	//
	if p.Negative {
		mantissa.Neg(mantissa)
	}
	//
	value := exact.Scaled(mantissa, -width)
	//
	diff, err := exact.Sub(ctx, value, input)
	if err != nil {
		return err
	}
	//
	p.Value = exact.Format(value)
	p.Difference = exact.Format(diff)
	p.Terms = powerTerms(p.Integer, p.Fraction)
	//
	rec.Section("Verification")
	//
	if len(p.Terms) == 0 {
		rec.Step("%s = 0", p.Bits)
	} else {
		rec.Step("%s = %s%s = %s", p.Bits, signText(p.Negative), strings.Join(p.Terms, " + "), p.Value)
	}
	//
	if !diff.IsZero() {
		rec.Note("differs from input by %s", p.Difference)
	}
	//
	return nil
}

// Convert an integer into binary by repeated division by two.
func integerBits(integ *big.Int, rec *trace.Recorder) string {
	var (
		digits []byte
		val    = new(big.Int).Set(integ)
		two    = big.NewInt(2)
		rem    big.Int
	)
	//
	if val.Sign() == 0 {
		rec.Step("integer part is 0")
		return "0"
	}
	//
	for val.Sign() != 0 {
		before := val.String()
		val.QuoRem(val, two, &rem)
		//
		digits = append(digits, byte('0'+rem.Int64()))
		rec.Step("%s / 2 = %s remainder %s", before, val.String(), rem.String())
	}
	// Remainders are read bottom to top
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	//
	rec.Step("remainders read bottom to top: %s", string(digits))
	//
	return string(digits)
}

// Generate n fractional bits by repeated doubling, returning the bits and the
// fraction remaining afterwards.
func fractionBits(ctx *apd.Context, frac *apd.Decimal, n uint, rec *trace.Recorder) (string, *apd.Decimal, error) {
	var digits = make([]byte, 0, n)
	//
	for i := uint(0); i < n; i++ {
		doubled, err := exact.Double(ctx, frac)
		if err != nil {
			return "", nil, err
		}
		//
		bit, rest := exact.Split(doubled)
		digits = append(digits, byte('0'+bit.Int64()))
		rec.Step("%s x 2 = %s -> %s", exact.Format(frac), exact.Format(doubled), bit.String())
		frac = rest
	}
	//
	if n == 0 && !frac.IsZero() {
		rec.Step("no fractional bits requested")
	}
	//
	return string(digits), frac, nil
}

// Add one unit in the last place to integer.fraction, carrying into the
// integer part (which may grow by one bit).
func increment(integer string, fraction string) (string, string) {
	var (
		all   = []byte(integer + fraction)
		carry = true
	)
	//
	for i := len(all) - 1; i >= 0 && carry; i-- {
		if all[i] == '1' {
			all[i] = '0'
		} else {
			all[i] = '1'
			carry = false
		}
	}
	//
	next := string(all)
	if carry {
		next = "1" + next
	}
	//
	split := len(next) - len(fraction)
	//
	return bits.TrimLeading(next[:split]), next[split:]
}

func powerTerms(integer string, fraction string) []string {
	var terms []string
	//
	for i, c := range integer {
		if c == '1' {
			terms = append(terms, fmt.Sprintf("2^%d", len(integer)-1-i))
		}
	}
	//
	for i, c := range fraction {
		if c == '1' {
			terms = append(terms, fmt.Sprintf("2^-%d", i+1))
		}
	}
	//
	return terms
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	//
	return 0
}

func roundUpText(up bool) string {
	if up {
		return "round up"
	}
	//
	return "keep"
}

func signText(negative bool) string {
	if negative {
		return "-"
	}
	//
	return ""
}
