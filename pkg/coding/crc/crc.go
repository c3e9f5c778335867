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
package crc

import (
	"strings"

	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/consensys/go-bitlab/pkg/util/gf2"
)

// Generator is a validated generator polynomial.
type Generator struct {
	// Coefficients, highest power first.  The leading bit is always 1.
	Bits string `json:"bits"`
	// Conventional notation, e.g. "x^4 + x + 1".
	Polynomial string `json:"polynomial"`
	// Degree r, which is also the number of check bits.
	Degree uint `json:"degree"`
}

// ParseGenerator validates a generator, which must have at least two bits with
// a leading one.
func ParseGenerator(text string) (Generator, error) {
	gen, err := bits.Parse(text, "generator")
	if err != nil {
		return Generator{}, err
	} else if len(gen) < 2 {
		return Generator{}, diag.Range("generator must have at least 2 bits (got %d)", len(gen))
	} else if gen[0] != '1' {
		return Generator{}, diag.Invalid("generator must have a leading 1 (got %s)", gen)
	}
	//
	return Generator{gen, gf2.Format(gen), uint(len(gen) - 1)}, nil
}

// Remainder divides a bit string by this generator, recording the layout of
// the long division.
func (g Generator) Remainder(dividend string, rec *trace.Recorder) gf2.Division {
	div := gf2.Divide(dividend, g.Bits)
	//
	for _, s := range div.Steps {
		rec.Step("i=%d: leading 1, %s xor %s = %s", s.Offset, s.Before, g.Bits, s.After)
	}
	//
	rec.Block("Long division", div.Layout()...)
	//
	return div
}

// Syndrome computes the remainder of a bit string without recording anything.
func (g Generator) Syndrome(bits string) string {
	return gf2.Divide(bits, g.Bits).Remainder
}

// EncodeResult is the outcome of computing a CRC codeword.
type EncodeResult struct {
	Message   string    `json:"message"`
	Generator Generator `json:"generator"`
	// Message followed by r zeros.
	Dividend  string `json:"dividend"`
	Quotient  string `json:"quotient"`
	Remainder string `json:"remainder"`
	Codeword  string `json:"codeword"`
	// Whether the codeword divides exactly by the generator.
	Verified bool        `json:"verified"`
	Trace    trace.Trace `json:"trace"`
}

// Encode appends CRC check bits to a message.  The message is shifted left by
// r places and divided by the generator, and the remainder becomes the check
// bits.
func Encode(message string, generator string) (EncodeResult, error) {
	var rec = trace.NewRecorder()
	//
	msg, err := bits.Parse(message, "message")
	if err != nil {
		return EncodeResult{}, err
	}
	//
	gen, err := ParseGenerator(generator)
	if err != nil {
		return EncodeResult{}, err
	}
	//
	res := EncodeResult{Message: msg, Generator: gen}
	res.Dividend = msg + strings.Repeat("0", int(gen.Degree))
	//
	rec.Section("Parameters")
	rec.Step("G(x) = %s (degree %d)", gen.Polynomial, gen.Degree)
	rec.Step("M(x) = %s, k = %d", msg, len(msg))
	rec.Step("dividend = M(x) x^%d = %s", gen.Degree, res.Dividend)
	rec.Section("Division")
	//
	div := gen.Remainder(res.Dividend, rec)
	res.Quotient = div.Quotient
	res.Remainder = div.Remainder
	res.Codeword = msg + div.Remainder
	//
	rec.Section("Codeword")
	rec.Step("codeword = message | remainder = %s | %s = %s", msg, res.Remainder, res.Codeword)
	//
	check := gen.Syndrome(res.Codeword)
	res.Verified = !strings.Contains(check, "1")
	//
	if !res.Verified {
		return res, diag.Internal("codeword %s leaves remainder %s", res.Codeword, check)
	}
	//
	rec.Step("verification: codeword mod G = %s", check)
	res.Trace = rec.Trace()
	//
	return res, nil
}
