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
	"fmt"
	"strings"

	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// Status summarises the outcome of checking a received word.
type Status uint8

const (
	// VALID means the syndrome is zero.
	VALID Status = iota
	// CORRECTED means exactly one single-bit flip zeroes the syndrome.
	CORRECTED
	// AMBIGUOUS means several single-bit flips zero the syndrome, so none is
	// applied.
	AMBIGUOUS
	// UNCORRECTABLE means an error was detected but not corrected.
	UNCORRECTABLE
)

func (s Status) String() string {
	switch s {
	case VALID:
		return "valid"
	case CORRECTED:
		return "corrected"
	case AMBIGUOUS:
		return "ambiguous"
	}
	//
	return "uncorrectable"
}

// MarshalText renders a status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Correction identifies a single flipped bit.
type Correction struct {
	// Index from the left, with the MSB at 0.
	Index uint `json:"index"`
	// Index from the right, with the LSB at 0.
	FromRight uint `json:"from_right"`
}

func (c Correction) String() string {
	return fmt.Sprintf("bit %d (x^%d)", c.Index, c.FromRight)
}

// DecodeResult is the outcome of checking a received word.
type DecodeResult struct {
	Received  string    `json:"received"`
	Generator Generator `json:"generator"`
	// First k bits of the received word.
	Message string `json:"message"`
	// Last r bits of the received word.
	Check    string `json:"check"`
	Syndrome string `json:"syndrome"`
	Valid    bool   `json:"valid"`
	Status   Status `json:"status"`
	// Single-bit flips which zero the syndrome (only when correction was
	// attempted).
	Candidates []Correction `json:"candidates,omitempty"`
	// Corrected word, when exactly one candidate exists.
	Corrected string `json:"corrected,omitempty"`
	// Syndrome of the final word (corrected or received).
	FinalSyndrome string `json:"final_syndrome"`
	// Message part of the final word.
	FinalMessage string      `json:"final_message"`
	Trace        trace.Trace `json:"trace"`
}

// Decode checks a received word against a generator.  When the syndrome is
// non-zero and correction is requested, every single-bit flip is tried.  A
// correction is applied only when exactly one flip zeroes the syndrome.
func Decode(received string, generator string, trySingleFix bool) (DecodeResult, error) {
	var rec = trace.NewRecorder()
	//
	word, err := bits.Parse(received, "received word")
	if err != nil {
		return DecodeResult{}, err
	}
	//
	gen, err := ParseGenerator(generator)
	if err != nil {
		return DecodeResult{}, err
	} else if len(word) < len(gen.Bits) {
		return DecodeResult{}, diag.Range("received length %d must be at least the generator length %d",
			len(word), len(gen.Bits))
	}
	//
	var (
		n = uint(len(word))
		k = n - gen.Degree
	)
	//
	res := DecodeResult{Received: word, Generator: gen, Message: word[:k], Check: word[k:]}
	//
	rec.Section("Parameters")
	rec.Step("n = %d, r = %d, k = n - r = %d", n, gen.Degree, k)
	rec.Step("G(x) = %s", gen.Polynomial)
	rec.Section("Interpretation")
	rec.Step("message (first %d bits) = %s", k, bits.Group(res.Message, 4))
	rec.Step("check (last %d bits) = %s", gen.Degree, res.Check)
	rec.Section("Syndrome")
	//
	div := gen.Remainder(word, rec)
	res.Syndrome = div.Remainder
	res.Valid = div.IsZero()
	//
	final := word
	//
	switch {
	case res.Valid:
		res.Status = VALID
		rec.Step("syndrome %s is zero: no error detected", res.Syndrome)
	case !trySingleFix:
		res.Status = UNCORRECTABLE
		rec.Step("syndrome %s is non-zero: error detected", res.Syndrome)
	default:
		rec.Step("syndrome %s is non-zero: error detected", res.Syndrome)
		final = res.correct(rec)
	}
	//
	res.FinalSyndrome = gen.Syndrome(final)
	res.FinalMessage = final[:k]
	res.Trace = rec.Trace()
	//
	return res, nil
}

// Search for single-bit flips zeroing the syndrome, returning the final word.
func (p *DecodeResult) correct(rec *trace.Recorder) string {
	var n = uint(len(p.Received))
	//
	rec.Section("Single-bit correction")
	//
	for i := uint(0); i < n; i++ {
		trial := bits.Flip(p.Received, int(i))
		//
		if !strings.Contains(p.Generator.Syndrome(trial), "1") {
			p.Candidates = append(p.Candidates, Correction{i, n - 1 - i})
			rec.Step("flipping index %d (from the left) zeroes the syndrome", i)
		}
	}
	//
	switch len(p.Candidates) {
	case 0:
		p.Status = UNCORRECTABLE
		rec.Step("no single-bit flip zeroes the syndrome: likely multiple errors")
		//
		return p.Received
	case 1:
		fix := p.Candidates[0]
		p.Status = CORRECTED
		p.Corrected = bits.Flip(p.Received, int(fix.Index))
		rec.Step("corrected bit %d from the left (%d from the right): %s", fix.Index, fix.FromRight,
			bits.Group(p.Corrected, 4))
		//
		return p.Corrected
	}
	//
	p.Status = AMBIGUOUS
	rec.Note("%d different flips zero the syndrome, so no correction is applied", len(p.Candidates))
	//
	return p.Received
}
