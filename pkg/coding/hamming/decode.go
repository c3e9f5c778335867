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
package hamming

import (
	"strings"

	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// Status summarises the outcome of decoding a codeword.
type Status uint8

const (
	// OK means the syndrome is zero.
	OK Status = iota
	// CORRECTED means the syndrome identified a single flipped bit.
	CORRECTED
	// INCONSISTENT means the syndrome identified a bit, but flipping it did not
	// clear the syndrome.
	INCONSISTENT
	// UNCORRECTABLE means the syndrome matches no column, which indicates more
	// than one error.
	UNCORRECTABLE
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case CORRECTED:
		return "corrected"
	case INCONSISTENT:
		return "inconsistent"
	}
	//
	return "uncorrectable"
}

// MarshalText renders a status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DecodeResult is the outcome of decoding a codeword.
type DecodeResult struct {
	Codeword  string     `json:"codeword"`
	Code      Code       `json:"code"`
	Syndrome  string     `json:"syndrome"`
	Equations []Equation `json:"equations"`
	Status    Status     `json:"status"`
	// Position (1-based) of the corrected bit, or 0.
	ErrorPosition uint `json:"error_position,omitempty"`
	// Codeword after correction (only when a bit was flipped).
	Corrected     string `json:"corrected,omitempty"`
	SyndromeAfter string `json:"syndrome_after,omitempty"`
	// Data bits extracted from the final codeword.
	Data  string      `json:"data"`
	Trace trace.Trace `json:"trace"`
}

// Decode checks a codeword, correcting a single flipped bit if the syndrome
// identifies one, and extracts the data bits.
func Decode(codeword string) (DecodeResult, error) {
	var rec = trace.NewRecorder()
	//
	word, err := bits.Parse(codeword, "codeword")
	if err != nil {
		return DecodeResult{}, err
	} else if limit := ForData(MAX_DATA_BITS).N; uint(len(word)) > limit {
		return DecodeResult{}, diag.Range("at most %d bits can be decoded", limit)
	}
	//
	code, err := ForLength(uint(len(word)))
	if err != nil {
		return DecodeResult{}, err
	}
	//
	res := DecodeResult{Codeword: word, Code: code}
	//
	rec.Section("Parameters")
	rec.Step("n = %d, p = %d (powers of two up to n), k = %d", code.N, code.P, code.K)
	rec.Block("H (column j is j in binary, MSB at the top)", code.Matrix()...)
	//
	if res.Syndrome, res.Equations, err = code.Syndrome(word); err != nil {
		return res, err
	}
	//
	rec.Section("Syndrome")
	//
	for _, eq := range res.Equations {
		rec.Step("%s", eq.String())
	}
	//
	rec.Step("syndrome = %s", res.Syndrome)
	rec.Section("Decision")
	//
	final := word
	position := uint(bits.ToUint(res.Syndrome))
	//
	switch {
	case position == 0:
		res.Status = OK
		rec.Step("syndrome is zero: no error detected")
	case position > code.N:
		res.Status = UNCORRECTABLE
		rec.Step("syndrome %s matches no column: likely multiple errors", res.Syndrome)
	default:
		res.ErrorPosition = position
		res.Corrected = bits.Flip(word, int(position-1))
		//
		if res.SyndromeAfter, _, err = code.Syndrome(res.Corrected); err != nil {
			return res, err
		}
		//
		if strings.Contains(res.SyndromeAfter, "1") {
			res.Status = INCONSISTENT
			rec.Step("flipping position %d leaves syndrome %s", position, res.SyndromeAfter)
		} else {
			res.Status = CORRECTED
			final = res.Corrected
			rec.Step("syndrome equals column %d: flipped bit %d, giving %s", position, position, res.Corrected)
		}
	}
	//
	rec.Note("single error correction only; two errors can be detected (SECDED) by adding an overall parity bit")
	//
	res.Data = extract(final, code)
	//
	rec.Section("Data")
	rec.Step("data bits at %v = %s", code.DataPositions(), res.Data)
	res.Trace = rec.Trace()
	//
	return res, nil
}

func extract(word string, code Code) string {
	var builder strings.Builder
	//
	for _, pos := range code.DataPositions() {
		builder.WriteByte(word[pos-1])
	}
	//
	return builder.String()
}
