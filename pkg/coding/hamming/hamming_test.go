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
	"math/rand"
	"strings"
	"testing"

	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Code_01(t *testing.T) {
	assert.Equal(t, Code{7, 3, 4}, ForData(4))
	assert.Equal(t, Code{3, 2, 1}, ForData(1))
	assert.Equal(t, Code{15, 4, 11}, ForData(11))
	assert.Equal(t, Code{17, 5, 12}, ForData(12))
	//
	code, err := ForLength(7)
	require.NoError(t, err)
	assert.Equal(t, Code{7, 3, 4}, code)
	//
	for _, n := range []uint{0, 1, 2} {
		_, err = ForLength(n)
		assert.True(t, diag.Is(err, diag.OUT_OF_RANGE), n)
	}
}

func Test_Code_02(t *testing.T) {
	code := ForData(4)
	assert.Equal(t, []uint{1, 2, 4}, code.ParityPositions())
	assert.Equal(t, []uint{3, 5, 6, 7}, code.DataPositions())
	assert.Equal(t, []string{"0001111", "0110011", "1010101"}, code.Matrix())
	assert.Equal(t, []uint{4, 5, 6, 7}, code.Row(0))
	assert.Equal(t, "101", code.Column(5))
	assert.Equal(t, "D1", code.Table()[2].Label)
	assert.Equal(t, "P4", code.Table()[3].Label)
}

func Test_Encode_01(t *testing.T) {
	res, err := Encode("1011")
	require.NoError(t, err)
	assert.Equal(t, Code{7, 3, 4}, res.Code)
	assert.Equal(t, "0110011", res.Codeword)
	assert.Equal(t, []uint{1, 2, 4}, res.ParityPositions)
	//
	dec, err := Decode(res.Codeword)
	require.NoError(t, err)
	assert.Equal(t, OK, dec.Status)
	assert.Equal(t, "000", dec.Syndrome)
	assert.Equal(t, "1011", dec.Data)
	assert.True(t, dec.Trace.Contains("SECDED"))
}

func Test_Encode_02(t *testing.T) {
	_, err := Encode("")
	assert.True(t, diag.Is(err, diag.INVALID_INPUT))
	_, err = Encode("10a1")
	assert.True(t, diag.Is(err, diag.INVALID_INPUT))
	_, err = Decode("10")
	assert.True(t, diag.Is(err, diag.OUT_OF_RANGE))
}

// Every codeword has a zero syndrome, and every single-bit error is corrected.
func Test_Encode_03(t *testing.T) {
	var rng = rand.New(rand.NewSource(5))
	//
	for k := uint(1); k <= 40; k++ {
		data := bits.FromUint(rng.Uint64(), k)
		//
		res, err := Encode(data)
		require.NoError(t, err)
		//
		syndrome, _, err := res.Code.Syndrome(res.Codeword)
		require.NoError(t, err)
		assert.NotContains(t, syndrome, "1")
		//
		for i := range res.Codeword {
			dec, err := Decode(bits.Flip(res.Codeword, i))
			require.NoError(t, err)
			assert.Equal(t, CORRECTED, dec.Status, "k=%d flip %d", k, i)
			assert.Equal(t, uint(i+1), dec.ErrorPosition)
			assert.Equal(t, res.Codeword, dec.Corrected)
			assert.Equal(t, data, dec.Data)
		}
	}
}

func Test_Decode_01(t *testing.T) {
	// The syndrome names the flipped position
	dec, err := Decode("0110111")
	require.NoError(t, err)
	assert.Equal(t, "101", dec.Syndrome)
	assert.Equal(t, uint(5), dec.ErrorPosition)
	assert.Equal(t, "0110011", dec.Corrected)
	assert.Equal(t, "000", dec.SyndromeAfter)
	assert.Equal(t, "1011", dec.Data)
	assert.Len(t, dec.Equations, 3)
	assert.Equal(t, "s0 = c4 + c5 + c6 + c7 = 0 + 1 + 1 + 1 = 1", dec.Equations[0].String())
}

func Test_Decode_02(t *testing.T) {
	res, err := Encode("101")
	require.NoError(t, err)
	require.Equal(t, uint(6), res.Code.N)
	// Errors at positions 1 and 6 give syndrome 7, beyond the last column
	received := bits.Flip(bits.Flip(res.Codeword, 0), 5)
	//
	dec, err := Decode(received)
	require.NoError(t, err)
	assert.Equal(t, UNCORRECTABLE, dec.Status)
	assert.Equal(t, "111", dec.Syndrome)
	assert.Empty(t, dec.Corrected)
	assert.True(t, dec.Trace.Contains("multiple errors"))
}

func Test_Decode_03(t *testing.T) {
	// The longest data accepted by Encode gives a codeword Decode accepts
	res, err := Encode(strings.Repeat("10", MAX_DATA_BITS/2))
	require.NoError(t, err)
	require.Equal(t, ForData(MAX_DATA_BITS).N, uint(len(res.Codeword)))
	//
	dec, err := Decode(res.Codeword)
	require.NoError(t, err)
	assert.Equal(t, OK, dec.Status)
	assert.Equal(t, res.Data, dec.Data)
	//
	_, err = Decode(strings.Repeat("0", len(res.Codeword)+1))
	assert.True(t, diag.Is(err, diag.OUT_OF_RANGE))
}
