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
package kmap

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Minimize_01(t *testing.T) {
	res, err := Minimize(Input{Minterms: "1,3,7,11,15", Variables: 4})
	require.NoError(t, err)
	assert.Equal(t, "ABCD", res.Order)
	assert.Equal(t, "A'·B'·D + C·D", res.SOP)
	require.Len(t, res.Implicants, 2)
	assert.Equal(t, []uint{1, 3}, res.Implicants[0].Minterms)
	assert.Equal(t, Rect{0, 1, 1, 2}, res.Implicants[0].Rect)
	assert.Equal(t, []uint{3, 7, 11, 15}, res.Implicants[1].Minterms)
	assert.Equal(t, Rect{0, 2, 4, 1}, res.Implicants[1].Rect)
	assert.True(t, res.Implicants[0].Essential)
	assert.True(t, res.Implicants[1].Essential)
	assert.Len(t, res.Primes, 2)
	checkCovers(t, res)
	assert.True(t, res.Trace.Contains("F = A'·B'·D + C·D"))
}

func Test_Minimize_02(t *testing.T) {
	res, err := Minimize(Input{Expression: "AB + A'B + AB'"})
	require.NoError(t, err)
	assert.Equal(t, "AB", res.Order)
	assert.Equal(t, "A·B + A'·B + A·B'", res.Expression)
	assert.Equal(t, []uint{1, 2, 3}, res.Minterms)
	assert.Equal(t, "B + A", res.SOP)
	checkCovers(t, res)
}

func Test_Minimize_03(t *testing.T) {
	res, err := Minimize(Input{Expression: "A + A'"})
	require.NoError(t, err)
	assert.Equal(t, "1", res.SOP)
	//
	res, err = Minimize(Input{Expression: "A·A'"})
	require.NoError(t, err)
	assert.Equal(t, "0", res.SOP)
	assert.Empty(t, res.Implicants)
	//
	res, err = Minimize(Input{Expression: "1", Variables: 2})
	require.NoError(t, err)
	assert.Equal(t, "AB", res.Order)
	assert.Equal(t, "1", res.SOP)
	assert.Equal(t, Rect{0, 0, 2, 2}, res.Implicants[0].Rect)
}

func Test_Minimize_04(t *testing.T) {
	res, err := Minimize(Input{Minterms: "1 3 7 11 15", DontCares: "0, 2, 5", Variables: 4})
	require.NoError(t, err)
	assert.Equal(t, []uint{0, 2, 5}, res.DontCares)
	assert.Equal(t, "C·D + A'·D", res.SOP)
	assert.Len(t, res.Primes, 3)
	assert.True(t, res.Implicants[0].Essential)
	assert.False(t, res.Implicants[1].Essential)
	checkCovers(t, res)
	assert.Equal(t, "X", res.Grid.Values[0][0])
}

func Test_Minimize_05(t *testing.T) {
	// Columns 001, 011, 010 and 110 are contiguous but do not form a subcube.
	res, err := Minimize(Input{Minterms: "1,2,3,6", Variables: 5})
	require.NoError(t, err)
	assert.Equal(t, "A'·B'·C'·E + A'·B'·D·E'", res.SOP)
	assert.Len(t, res.Primes, 3)
	checkCovers(t, res)
	assert.Len(t, res.Grid.Cells, 4)
	assert.Len(t, res.Grid.Cells[0], 8)
}

func Test_Minimize_06(t *testing.T) {
	// Variable order controls which variable is most significant
	res, err := Minimize(Input{Minterms: "1", Order: "BA"})
	require.NoError(t, err)
	assert.Equal(t, "B'·A", res.SOP)
	//
	res, err = Minimize(Input{Expression: "C + A", Order: "CBA"})
	require.NoError(t, err)
	assert.Equal(t, "CBA", res.Order)
	assert.Equal(t, []uint{1, 3, 4, 5, 6, 7}, res.Minterms)
	//
	res, err = Minimize(Input{Expression: "B·D"})
	require.NoError(t, err)
	assert.Equal(t, "BD", res.Order)
	assert.Equal(t, "B·D", res.SOP)
}

func Test_Minimize_07(t *testing.T) {
	res, err := Minimize(Input{Expression: "A + B", DontCares: "3"})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, res.Minterms)
	assert.Equal(t, []uint{3}, res.DontCares)
	checkCovers(t, res)
}

func Test_Minimize_08(t *testing.T) {
	checkMinimizeError(t, Input{}, diag.INVALID_INPUT)
	checkMinimizeError(t, Input{Expression: "A", Minterms: "1"}, diag.INVALID_INPUT)
	checkMinimizeError(t, Input{Minterms: "1,2"}, diag.INVALID_INPUT)
	checkMinimizeError(t, Input{Minterms: "1,x", Variables: 2}, diag.INVALID_INPUT)
	checkMinimizeError(t, Input{Minterms: "1,4", Variables: 2}, diag.OUT_OF_RANGE)
	checkMinimizeError(t, Input{Minterms: "1,2", DontCares: "2", Variables: 2}, diag.INVALID_INPUT)
	checkMinimizeError(t, Input{Minterms: "1", Variables: 6}, diag.OUT_OF_RANGE)
	checkMinimizeError(t, Input{Minterms: "1", Order: "AA"}, diag.INVALID_INPUT)
	checkMinimizeError(t, Input{Minterms: "1", Order: "AF"}, diag.INVALID_INPUT)
	checkMinimizeError(t, Input{Minterms: "1", Order: "AB", Variables: 3}, diag.INVALID_INPUT)
	checkMinimizeError(t, Input{Expression: "A + C", Order: "AB"}, diag.INVALID_INPUT)
	checkMinimizeError(t, Input{Expression: "1"}, diag.INVALID_INPUT)
	checkMinimizeError(t, Input{Expression: "A +"}, diag.INVALID_INPUT)
}

func Test_Minimize_09(t *testing.T) {
	var rng = rand.New(rand.NewSource(7))
	//
	for n := uint(1); n <= MAX_VARIABLES; n++ {
		for i := 0; i < 60; i++ {
			var ones, dcs []string
			//
			for m := 0; m < 1<<n; m++ {
				switch rng.Intn(4) {
				case 0, 1:
					ones = append(ones, strconv.Itoa(m))
				case 2:
					if i%2 == 0 {
						dcs = append(dcs, strconv.Itoa(m))
					}
				}
			}
			//
			if len(ones) == 0 {
				continue
			}
			//
			res, err := Minimize(Input{Minterms: strings.Join(ones, ","), DontCares: strings.Join(dcs, ","), Variables: n})
			require.NoError(t, err)
			checkCovers(t, res)
		}
	}
}

func Test_Grid_01(t *testing.T) {
	res, err := Minimize(Input{Minterms: "1,3,7,11,15", Variables: 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"00", "01", "11", "10"}, res.Grid.RowLabels)
	assert.Equal(t, []uint{12, 13, 15, 14}, res.Grid.Cells[2])
	assert.Equal(t, []string{
		"AB\\CD  00  01  11  10",
		"00      0   1   1   0",
		"01      0   0   1   0",
		"11      0   0   1   0",
		"10      0   0   1   0",
	}, res.Grid.Lines())
}

func Test_Grid_02(t *testing.T) {
	// Neighbouring cells, including those which wrap, differ in one variable
	for n := uint(1); n <= MAX_VARIABLES; n++ {
		var (
			layout     = LayoutFor(n)
			rows, cols = layout.Rows(), layout.Cols()
		)
		//
		for r := uint(0); r < rows; r++ {
			for c := uint(0); c < cols; c++ {
				m := layout.Minterm(r, c)
				//
				if cols > 1 {
					assert.Equal(t, uint(1), onesIn(m^layout.Minterm(r, (c+1)%cols)))
				}
				//
				if rows > 1 {
					assert.Equal(t, uint(1), onesIn(m^layout.Minterm((r+1)%rows, c)))
				}
			}
		}
	}
}

// Check the selected implicants cover exactly the ones (plus possibly some
// don't cares), and that the SOP evaluates accordingly.
func checkCovers(t *testing.T, res Result) {
	t.Helper()
	//
	var (
		ones    = bitset.New(1 << res.Variables)
		allowed = bitset.New(1 << res.Variables)
		union   = bitset.New(1 << res.Variables)
	)
	//
	for _, m := range res.Minterms {
		ones.Set(m)
		allowed.Set(m)
	}
	//
	for _, m := range res.DontCares {
		allowed.Set(m)
	}
	//
	for _, p := range res.Implicants {
		term, err := Parse(p.Term)
		require.NoError(t, err)
		// each term covers exactly its own minterms
		assert.Equal(t, p.Minterms, members(FromExpression(term, res.Order).Ones), p.Term)
		//
		for _, m := range p.Minterms {
			union.Set(m)
		}
	}
	//
	assert.True(t, union.IsSuperSet(ones), res.SOP)
	assert.True(t, allowed.IsSuperSet(union), res.SOP)
	//
	sop, err := Parse(res.SOP)
	require.NoError(t, err)
	assert.Equal(t, members(union), members(FromExpression(sop, res.Order).Ones), res.SOP)
}

func checkMinimizeError(t *testing.T, in Input, kind diag.Kind) {
	t.Helper()
	//
	_, err := Minimize(in)
	require.Error(t, err)
	assert.Equal(t, kind, diag.KindOf(err), "%v", in)
}

func onesIn(m uint) uint {
	return uint(bitset.From([]uint64{uint64(m)}).Count())
}
