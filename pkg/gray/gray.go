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
package gray

import (
	"math/big"
	"strings"

	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// MIN_DECIMAL_WIDTH is the smallest width used for values given in decimal.
const MIN_DECIMAL_WIDTH = 4

// Input is a parsed binary value.
type Input struct {
	Bits string `json:"bits"`
	// Whether the text was read as a decimal number.
	Decimal bool `json:"decimal"`
}

// ParseInput reads text as binary or decimal.  Text consisting only of 0s and
// 1s is always binary (so "11" is three, never eleven).  Any digit 2-9 makes
// the whole text decimal, in which case it is converted to at least
// MIN_DECIMAL_WIDTH bits.
func ParseInput(text string) (Input, error) {
	text = bits.Clean(text)
	//
	if text == "" {
		return Input{}, diag.Invalid("input is empty")
	} else if bits.IsBinary(text) {
		return Input{text, false}, nil
	} else if strings.Trim(text, "0123456789") != "" {
		return Input{}, diag.Invalid("input must be a decimal number or a binary string (got \"%s\")", text)
	}
	//
	var val big.Int
	//
	val.SetString(text, 10)
	//
	return Input{bits.FromBig(&val, max(MIN_DECIMAL_WIDTH, uint(val.BitLen()))), true}, nil
}

// Neighbour is the Gray code of an adjacent value.
type Neighbour struct {
	Binary string `json:"binary"`
	Gray   string `json:"gray"`
	// Number of bits in which this code differs from the original.
	Differs uint `json:"differs"`
}

// EncodeResult is the outcome of converting binary to Gray code.
type EncodeResult struct {
	Input  Input  `json:"input"`
	Binary string `json:"binary"`
	Gray   string `json:"gray"`
	// Gray codes of the preceding and following values, when these fit in the
	// same width.
	Previous *Neighbour  `json:"previous,omitempty"`
	Next     *Neighbour  `json:"next,omitempty"`
	Trace    trace.Trace `json:"trace"`
}

// Encode converts binary to Gray code, where each Gray bit is the XOR of a
// binary bit with the bit to its left.
func Encode(text string) (EncodeResult, error) {
	var rec = trace.NewRecorder()
	//
	input, err := ParseInput(text)
	if err != nil {
		return EncodeResult{}, err
	}
	//
	res := EncodeResult{Input: input, Binary: input.Bits}
	//
	if input.Decimal {
		rec.Section("Input")
		rec.Step("decimal %s = binary %s", bits.Clean(text), input.Bits)
	}
	//
	rec.Section("Binary to Gray")
	res.Gray = toGray(input.Bits, rec)
	rec.Step("gray = %s", res.Gray)
	//
	res.Previous, res.Next = neighbours(input.Bits, res.Gray)
	rec.Section("Adjacency")
	//
	if res.Previous != nil {
		rec.Step("%s -> %s differs in %d bit", res.Previous.Gray, res.Gray, res.Previous.Differs)
	}
	//
	if res.Next != nil {
		rec.Step("%s -> %s differs in %d bit", res.Gray, res.Next.Gray, res.Next.Differs)
	}
	//
	res.Trace = rec.Trace()
	//
	return res, nil
}

// DecodeResult is the outcome of converting Gray code to binary.
type DecodeResult struct {
	Gray   string      `json:"gray"`
	Binary string      `json:"binary"`
	Trace  trace.Trace `json:"trace"`
}

// Decode converts Gray code to binary.  The MSB is copied, and each following
// binary bit is the XOR of the Gray bit with the previous binary bit.
func Decode(text string) (DecodeResult, error) {
	var rec = trace.NewRecorder()
	//
	code, err := bits.Parse(text, "gray code")
	if err != nil {
		return DecodeResult{}, err
	}
	//
	rec.Section("Gray to binary")
	//
	return DecodeResult{code, toBinary(code, rec), rec.Trace()}, nil
}

func toGray(binary string, rec *trace.Recorder) string {
	var out = []byte(binary)
	//
	rec.Step("g0 = b0 = %c", binary[0])
	//
	for i := 1; i < len(binary); i++ {
		out[i] = '0' + ((binary[i] - '0') ^ (binary[i-1] - '0'))
		rec.Step("g%d = b%d xor b%d = %c xor %c = %c", i, i, i-1, binary[i], binary[i-1], out[i])
	}
	//
	return string(out)
}

func toBinary(code string, rec *trace.Recorder) string {
	var out = []byte(code)
	//
	rec.Step("b0 = g0 = %c", code[0])
	//
	for i := 1; i < len(code); i++ {
		out[i] = '0' + ((code[i] - '0') ^ (out[i-1] - '0'))
		rec.Step("b%d = g%d xor b%d = %c xor %c = %c", i, i, i-1, code[i], out[i-1], out[i])
	}
	//
	return string(out)
}

// Compute the Gray codes either side of a value, within its width.
func neighbours(binary string, code string) (*Neighbour, *Neighbour) {
	var (
		width      = uint(len(binary))
		val        = bits.ToBig(binary)
		prev, next *Neighbour
	)
	//
	if val.Sign() > 0 {
		prev = neighbour(new(big.Int).Sub(val, big.NewInt(1)), width, code)
	}
	//
	if succ := new(big.Int).Add(val, big.NewInt(1)); uint(succ.BitLen()) <= width {
		next = neighbour(succ, width, code)
	}
	//
	return prev, next
}

func neighbour(val *big.Int, width uint, code string) *Neighbour {
	binary := bits.FromBig(val, width)
	gray := toGray(binary, nil)
	//
	return &Neighbour{binary, gray, bits.PopCount(bits.Xor(gray, code))}
}
