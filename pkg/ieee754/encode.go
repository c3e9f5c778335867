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
package ieee754

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/consensys/go-bitlab/pkg/radix"
	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/exact"
)

// EncodeResult is the outcome of encoding a decimal value.
type EncodeResult struct {
	Format   Format `json:"format"`
	Sign     uint   `json:"sign"`
	Exponent string `json:"exponent"`
	Mantissa string `json:"mantissa"`
	Bits     string `json:"bits"`
	Hex      string `json:"hex"`
	Class    Class  `json:"class"`
	// Biased exponent field as an integer.
	BiasedExponent uint64 `json:"biased_exponent"`
	// Exponent of the leading significand bit (1-bias for subnormals).
	ActualExponent int `json:"actual_exponent"`
	// Exact decimal value of the encoding.
	Value string `json:"value"`
	// Whether Value equals the input.
	Exact bool        `json:"exact"`
	Trace trace.Trace `json:"trace"`
}

// Encode converts a decimal value into the given format.  The magnitude is
// first converted to binary, then normalised to 1.mantissa x 2^e (or
// denormalised when e is below 1-bias) and the mantissa truncated to width.
// Values too large for the format become infinities, and values too small
// become zero.  The words "inf", "infinity" and "nan" (optionally signed) are
// also accepted.
func Encode(text string, f Format, ctx *apd.Context) (EncodeResult, error) {
	var rec = trace.NewRecorder()
	//
	if v, ok := parseSpecial(text, f); ok {
		rec.Section("Special value")
		rec.Step("%s is encoded with an all-ones exponent", strings.TrimSpace(text))
		//
		return f.encoded(v, true, rec), nil
	}
	//
	input, err := exact.Parse(text)
	if err != nil {
		return EncodeResult{}, err
	}
	//
	var (
		sign      uint
		magnitude apd.Decimal
	)
	//
	if input.Negative {
		sign = 1
	}
	//
	rec.Section("Sign")
	rec.Step("sign bit = %d", sign)
	//
	if input.IsZero() {
		rec.Section("Zero")
		rec.Step("zero has all-zero exponent and mantissa fields")
		//
		return f.encoded(Zero{sign}, true, rec), nil
	}
	//
	magnitude.Abs(input)
	//
	v, err := f.normalise(ctx, sign, &magnitude, rec)
	if err != nil {
		return EncodeResult{}, err
	}
	//
	res := f.encoded(v, false, rec)
	res.Exact = v.Class() != INFINITY && f.Exact(v).Cmp(input) == 0
	//
	if !res.Exact {
		rec.Note("the encoding is not exact: %s was truncated to %s", exact.Format(input), res.Value)
		res.Trace = rec.Trace()
	}
	//
	return res, nil
}

// Convert a non-zero magnitude into a value of this format.
func (f Format) normalise(ctx *apd.Context, sign uint, magnitude *apd.Decimal, rec *trace.Recorder) (Value, error) {
	var (
		m      = int(f.MantissaBits)
		digits = magnitude.NumDigits() + int64(magnitude.Exponent)
	)
	// Anything with this many integer digits exceeds the largest finite value.
	if digits > int64(f.Bias)/3+2 {
		rec.Section("Overflow")
		rec.Step("%s is beyond the largest finite %s value", exact.Format(magnitude), f.Name)
		//
		return Infinity{sign}, nil
	}
	//
	integ, frac := exact.Split(magnitude)
	n := 0
	//
	if integ.Sign() > 0 {
		n = max(0, m-(integ.BitLen()-1))
	} else {
		first, err := firstOne(ctx, frac, f.Bias-1+m)
		if err != nil {
			return nil, err
		}
		//
		n = min(first+m, f.Bias-1+m)
	}
	//
	conv, err := radix.DecimalToBinary(exact.Format(magnitude), uint(n), radix.TRUNCATE, ctx)
	if err != nil {
		return nil, err
	}
	//
	rec.Section("Binary conversion")
	rec.Append(conv.Trace)
	rec.Step("%s = %s (binary)", exact.Format(magnitude), conv.Bits)
	//
	var (
		point       int
		significand string
	)
	//
	if conv.Integer != "0" {
		point = len(conv.Integer) - 1
		significand = conv.Integer + conv.Fraction
	} else if first := strings.IndexByte(conv.Fraction, '1'); first >= 0 && -(first+1) >= f.MinExponent() {
		point = -(first + 1)
		significand = conv.Fraction[first:]
	} else {
		return f.denormalise(sign, conv.Fraction, rec), nil
	}
	//
	rec.Section("Normalisation")
	rec.Step("%s = 1.%s x 2^%d", conv.Bits, significand[1:], point)
	//
	if point+f.Bias >= int(f.MaxExponent()) {
		rec.Section("Overflow")
		rec.Step("exponent %d exceeds the largest %s exponent %d", point, f.Name, int(f.MaxExponent())-1-f.Bias)
		//
		return Infinity{sign}, nil
	}
	//
	biased := point + f.Bias
	mantissa := fitMantissa(significand[1:], f.MantissaBits)
	rec.Step("biased exponent = %d + %d = %d", point, f.Bias, biased)
	rec.Step("mantissa = first %d bits after the point = %s", m, mantissa)
	//
	return Finite{sign, point, bits.ToUint("1" + mantissa), false}, nil
}

// Values below the normal range are written as 0.mantissa x 2^(1-bias).
func (f Format) denormalise(sign uint, fraction string, rec *trace.Recorder) Value {
	offset := f.Bias - 1
	mantissa := fitMantissa(fraction[min(offset, len(fraction)):], f.MantissaBits)
	//
	rec.Section("Denormalisation")
	//
	if !strings.Contains(mantissa, "1") {
		rec.Step("value is below the smallest denormal and underflows to zero")
		return Zero{sign}
	}
	//
	rec.Step("value is below 2^%d, so the exponent field is 0", f.MinExponent())
	rec.Step("0.%s x 2^%d", mantissa, f.MinExponent())
	//
	return Finite{sign, f.MinExponent(), bits.ToUint(mantissa), true}
}

// Construct the result for an encoded value.
func (f Format) encoded(v Value, exactly bool, rec *trace.Recorder) EncodeResult {
	fields := f.Pack(v)
	word := f.Join(fields)
	res := EncodeResult{
		Format:         f,
		Sign:           fields.Sign,
		Exponent:       f.ExponentString(fields),
		Mantissa:       f.MantissaString(fields),
		Bits:           word,
		Hex:            bits.Hex(word),
		Class:          v.Class(),
		BiasedExponent: fields.Exponent,
		Value:          f.Text(v),
		Exact:          exactly,
	}
	//
	if fin, ok := v.(Finite); ok {
		res.ActualExponent = fin.Exponent
	}
	//
	rec.Section("Result")
	rec.Step("sign=%d exponent=%s mantissa=%s", res.Sign, res.Exponent, res.Mantissa)
	rec.Step("hex = %s", res.Hex)
	rec.Step("value = %s", res.Value)
	res.Trace = rec.Trace()
	//
	return res
}

// Determine the (1-based) position of the first one bit of a fraction, or
// limit if it lies beyond.
func firstOne(ctx *apd.Context, frac *apd.Decimal, limit int) (int, error) {
	for i := 1; i < limit; i++ {
		doubled, err := exact.Double(ctx, frac)
		if err != nil {
			return 0, err
		}
		//
		bit, rest := exact.Split(doubled)
		if bit.Sign() != 0 {
			return i, nil
		}
		//
		frac = rest
	}
	//
	return limit, nil
}

// Truncate or right-pad mantissa bits to an exact width.
func fitMantissa(bits string, width uint) string {
	if uint(len(bits)) >= width {
		return bits[:width]
	}
	//
	return bits + strings.Repeat("0", int(width)-len(bits))
}

func parseSpecial(text string, f Format) (Value, bool) {
	var (
		word = strings.ToLower(strings.TrimSpace(text))
		sign uint
	)
	//
	if strings.HasPrefix(word, "-") {
		sign = 1
	}
	//
	switch strings.TrimLeft(word, "+-") {
	case "inf", "infinity", "∞":
		return Infinity{sign}, true
	case "nan":
		nan := f.QuietNaN()
		nan.Sign = sign
		//
		return nan, true
	}
	//
	return nil, false
}
