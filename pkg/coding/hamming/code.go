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

	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// Code describes a Hamming code with n positions, p of which (those at powers
// of two) hold parity bits and the remaining k hold data.  Positions are
// numbered from 1 at the left.
type Code struct {
	N uint `json:"n"`
	P uint `json:"p"`
	K uint `json:"k"`
}

// ForData constructs the code with the fewest parity bits able to protect k
// data bits, i.e. the smallest p with 2^p >= k+p+1.
func ForData(k uint) Code {
	var p uint
	//
	for (uint(1) << p) < k+p+1 {
		p++
	}
	//
	return Code{k + p, p, k}
}

// ForLength infers the code for a codeword of length n, where p is the number
// of powers of two no greater than n.
func ForLength(n uint) (Code, error) {
	var p uint
	//
	for (uint(1) << p) <= n {
		p++
	}
	//
	if p == 0 || n <= p {
		return Code{}, diag.Range("codeword length %d is too short for Hamming decoding", n)
	}
	//
	return Code{n, p, n - p}, nil
}

// IsParity checks whether a (1-based) position holds a parity bit.
func (c Code) IsParity(pos uint) bool {
	return bits.IsPowerOfTwo(pos)
}

// ParityPositions returns the positions holding parity bits, in order.
func (c Code) ParityPositions() []uint {
	var positions []uint
	//
	for pos := uint(1); pos <= c.N; pos <<= 1 {
		positions = append(positions, pos)
	}
	//
	return positions
}

// DataPositions returns the positions holding data bits, in order.
func (c Code) DataPositions() []uint {
	var positions []uint
	//
	for pos := uint(1); pos <= c.N; pos++ {
		if !c.IsParity(pos) {
			positions = append(positions, pos)
		}
	}
	//
	return positions
}

// Column returns column j of the parity-check matrix, which is the p-bit
// binary representation of j with the MSB in the top row.
func (c Code) Column(j uint) string {
	return bits.FromUint(uint64(j), c.P)
}

// Row returns the positions selected by row r of the parity-check matrix
// (where row 0 is the top row).
func (c Code) Row(r uint) []uint {
	var (
		positions []uint
		mask      = uint(1) << (c.P - 1 - r)
	)
	//
	for pos := uint(1); pos <= c.N; pos++ {
		if pos&mask != 0 {
			positions = append(positions, pos)
		}
	}
	//
	return positions
}

// Matrix renders the parity-check matrix, one string per row.
func (c Code) Matrix() []string {
	var rows = make([]string, c.P)
	//
	for r := range rows {
		var builder strings.Builder
		//
		for pos := uint(1); pos <= c.N; pos++ {
			builder.WriteByte(c.Column(pos)[r])
		}
		//
		rows[r] = builder.String()
	}
	//
	return rows
}

// Columns describes every column of the parity-check matrix, e.g. "3:011".
func (c Code) Columns() []string {
	var cols = make([]string, c.N)
	//
	for i := range cols {
		cols[i] = fmt.Sprintf("%d:%s", i+1, c.Column(uint(i+1)))
	}
	//
	return cols
}

// Position describes one position of a codeword.
type Position struct {
	Index uint   `json:"index"`
	Label string `json:"label"`
	// Column of the parity-check matrix.
	Column string `json:"column"`
	Parity bool   `json:"parity"`
}

// Table describes every position of a codeword, labelling parity bits P1, P2,
// P4, ... and data bits D1, D2, ...
func (c Code) Table() []Position {
	var (
		table = make([]Position, c.N)
		data  = 0
	)
	//
	for i := range table {
		pos := uint(i + 1)
		label := fmt.Sprintf("P%d", pos)
		//
		if !c.IsParity(pos) {
			data++
			label = fmt.Sprintf("D%d", data)
		}
		//
		table[i] = Position{pos, label, c.Column(pos), c.IsParity(pos)}
	}
	//
	return table
}

// Equation is the parity check for one row of the parity-check matrix.
type Equation struct {
	Row       uint   `json:"row"`
	Positions []uint `json:"positions"`
	Values    string `json:"values"`
	Sum       uint   `json:"sum"`
}

func (e Equation) String() string {
	var (
		names  = make([]string, len(e.Positions))
		values = make([]string, len(e.Values))
	)
	//
	for i, pos := range e.Positions {
		names[i] = fmt.Sprintf("c%d", pos)
		values[i] = e.Values[i : i+1]
	}
	//
	return fmt.Sprintf("s%d = %s = %s = %d", e.Row, strings.Join(names, " + "), strings.Join(values, " + "), e.Sum)
}

// Syndrome computes H . c^T for a codeword row by row.  The result is cross
// checked against the XOR of the positions holding ones.
func (c Code) Syndrome(word string) (string, []Equation, error) {
	var (
		equations = make([]Equation, c.P)
		syndrome  = make([]byte, c.P)
		xor       uint
	)
	//
	for r := range equations {
		var (
			positions = c.Row(uint(r))
			values    = make([]byte, len(positions))
			sum       uint
		)
		//
		for i, pos := range positions {
			values[i] = word[pos-1]
			sum ^= uint(values[i] - '0')
		}
		//
		equations[r] = Equation{uint(r), positions, string(values), sum}
		syndrome[r] = byte('0' + sum)
	}
	//
	for i, bit := range word {
		if bit == '1' {
			xor ^= uint(i + 1)
		}
	}
	//
	if bits.FromUint(uint64(xor), c.P) != string(syndrome) {
		return "", nil, diag.Internal("row sums %s disagree with position XOR %d", syndrome, xor)
	}
	//
	return string(syndrome), equations, nil
}
