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
	"math"
	"strconv"
	"strings"

	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
)

// DecodeResult is the outcome of decoding an encoded value.
type DecodeResult struct {
	Format         Format `json:"format"`
	Bits           string `json:"bits"`
	Hex            string `json:"hex"`
	Sign           uint   `json:"sign"`
	Exponent       string `json:"exponent"`
	Mantissa       string `json:"mantissa"`
	Class          Class  `json:"class"`
	BiasedExponent uint64 `json:"biased_exponent"`
	ActualExponent int    `json:"actual_exponent"`
	// Significand including its leading bit, e.g. "1.0110".
	Significand string `json:"significand,omitempty"`
	// Exact decimal value, or one of "+Infinity", "-Infinity", "NaN".
	Value string `json:"value"`
	// Shortest decimal which round trips through the native type.
	Approx string      `json:"approx"`
	Trace  trace.Trace `json:"trace"`
	value  Value
}

// Decoded returns the decoded value.
func (p *DecodeResult) Decoded() Value {
	return p.value
}

// Decode parses an encoded value written in binary or hex, classifies it and
// computes its exact decimal value.
func Decode(input string, kind InputKind, f Format) (DecodeResult, error) {
	word, err := f.ParseWord(input, kind)
	if err != nil {
		return DecodeResult{}, err
	}
	//
	return f.decodeWord(word), nil
}

func (f Format) decodeWord(word string) DecodeResult {
	var (
		rec    = trace.NewRecorder()
		fields = f.Split(word)
		v      = f.Unpack(fields)
		res    = DecodeResult{
			Format:         f,
			Bits:           word,
			Hex:            bits.Hex(word),
			Sign:           fields.Sign,
			Exponent:       f.ExponentString(fields),
			Mantissa:       f.MantissaString(fields),
			Class:          v.Class(),
			BiasedExponent: fields.Exponent,
			Value:          f.Text(v),
			Approx:         f.approx(word),
			value:          v,
		}
	)
	//
	rec.Section("Fields")
	rec.Step("sign = %d", res.Sign)
	rec.Step("exponent = %s (%d)", res.Exponent, res.BiasedExponent)
	rec.Step("mantissa = %s", res.Mantissa)
	rec.Section("Classification")
	//
	switch v := v.(type) {
	case Zero:
		rec.Step("exponent and mantissa are all zeros: %s", res.Class)
	case Infinity:
		rec.Step("exponent is all ones and mantissa is zero: %s", res.Class)
	case NaN:
		if f.Quiet(v) {
			rec.Step("exponent is all ones and mantissa is non-zero: quiet NaN")
		} else {
			rec.Step("exponent is all ones and mantissa is non-zero: signaling NaN")
		}
	case Finite:
		res.ActualExponent = v.Exponent
		res.Significand = f.significand(v)
		//
		if v.Subnormal {
			rec.Step("exponent is all zeros and mantissa is non-zero: %s", res.Class)
			rec.Step("implicit bit 0, exponent = 1 - %d = %d", f.Bias, v.Exponent)
		} else {
			rec.Step("exponent is neither all zeros nor all ones: %s", res.Class)
			rec.Step("implicit bit 1, exponent = %d - %d = %d", res.BiasedExponent, f.Bias, v.Exponent)
		}
		//
		rec.Section("Value")
		rec.Step("(-1)^%d x %s x 2^%d = %s", res.Sign, res.Significand, v.Exponent, res.Value)
		//
		if !v.Subnormal && v.Exponent >= 0 {
			integer, fraction := shiftPoint(res.Significand, v.Exponent)
			rec.Step("shifting the point %d places right gives %s.%s", v.Exponent, integer, fraction)
		}
	}
	//
	res.Trace = rec.Trace()
	//
	return res
}

// Render the significand with its leading bit, e.g. "1.01".
func (f Format) significand(v Finite) string {
	digits := bits.FromUint(v.Significand, f.MantissaBits+1)
	//
	return digits[:1] + "." + digits[1:]
}

// Move the point of a significand "1.xxx" right by some number of places,
// padding with zeros as necessary.
func shiftPoint(significand string, places int) (string, string) {
	digits := strings.Replace(significand, ".", "", 1)
	//
	if len(digits) <= places+1 {
		digits += strings.Repeat("0", places+2-len(digits))
	}
	//
	fraction := strings.TrimRight(digits[places+1:], "0")
	if fraction == "" {
		fraction = "0"
	}
	//
	return digits[:places+1], fraction
}

// Render the native approximation of an encoded word.
func (f Format) approx(word string) string {
	raw := bits.ToUint(word)
	//
	if f.Width() == 32 {
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(raw))), 'g', -1, 32)
	}
	//
	return strconv.FormatFloat(math.Float64frombits(raw), 'g', -1, 64)
}
