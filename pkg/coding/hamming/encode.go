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
	"fmt"
	"strings"

	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// MAX_DATA_BITS bounds the length of data which can be encoded.
const MAX_DATA_BITS = 4096

// EncodeResult is the outcome of encoding data bits.
type EncodeResult struct {
	Data            string      `json:"data"`
	Code            Code        `json:"code"`
	Codeword        string      `json:"codeword"`
	ParityPositions []uint      `json:"parity_positions"`
	DataPositions   []uint      `json:"data_positions"`
	Table           []Position  `json:"table"`
	Matrix          []string    `json:"matrix"`
	Equations       []Equation  `json:"equations"`
	Trace           trace.Trace `json:"trace"`
}

// Encode computes a Hamming codeword for some data bits.  The data occupies
// the non-power-of-two positions, and each parity bit is solved from the one
// row of the parity-check matrix in which it is the only parity position.
func Encode(data string) (EncodeResult, error) {
	var rec = trace.NewRecorder()
	//
	data, err := bits.Parse(data, "data")
	if err != nil {
		return EncodeResult{}, err
	} else if len(data) > MAX_DATA_BITS {
		return EncodeResult{}, diag.Range("at most %d data bits can be encoded", MAX_DATA_BITS)
	}
	//
	code := ForData(uint(len(data)))
	res := EncodeResult{
		Data:            data,
		Code:            code,
		ParityPositions: code.ParityPositions(),
		DataPositions:   code.DataPositions(),
		Table:           code.Table(),
		Matrix:          code.Matrix(),
	}
	//
	rec.Section("Parameters")
	rec.Step("k = %d, smallest p with 2^p >= k + p + 1 is %d, n = %d", code.K, code.P, code.N)
	rec.Block("Positions", positionLines(res.Table)...)
	rec.Block("H (column j is j in binary, MSB at the top)", res.Matrix...)
	rec.Step("columns %s", strings.Join(code.Columns(), " | "))
	// Place data bits
	word := []byte(strings.Repeat("0", int(code.N)))
	for i, pos := range res.DataPositions {
		word[pos-1] = data[i]
	}
	//
	rec.Section("Row equations")
	//
	for r := uint(0); r < code.P; r++ {
		var (
			parity []uint
			sum    byte
		)
		//
		for _, pos := range code.Row(r) {
			if code.IsParity(pos) {
				parity = append(parity, pos)
			} else {
				sum ^= word[pos-1] - '0'
			}
		}
		//
		if len(parity) != 1 {
			return res, diag.Internal("row %d selects %d parity positions", r, len(parity))
		}
		//
		word[parity[0]-1] = '0' + sum
		rec.Step("row %d: P%d = xor of data at %v = %d", r, parity[0], dataOf(code.Row(r), code), sum)
	}
	//
	res.Codeword = string(word)
	//
	syndrome, equations, err := code.Syndrome(res.Codeword)
	if err != nil {
		return res, err
	} else if strings.Contains(syndrome, "1") {
		return res, diag.Internal("codeword %s has non-zero syndrome %s", res.Codeword, syndrome)
	}
	//
	res.Equations = equations
	//
	rec.Section("Codeword")
	rec.Step("codeword = %s", res.Codeword)
	rec.Step("check: H . c = %s", syndrome)
	res.Trace = rec.Trace()
	//
	return res, nil
}

func dataOf(positions []uint, code Code) []uint {
	var data []uint
	//
	for _, pos := range positions {
		if !code.IsParity(pos) {
			data = append(data, pos)
		}
	}
	//
	return data
}

func positionLines(table []Position) []string {
	var lines = []string{"pos  column  type"}
	//
	for _, p := range table {
		lines = append(lines, fmt.Sprintf("%3d  %6s  %s", p.Index, p.Column, p.Label))
	}
	//
	return lines
}
