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
package radix

import (
	"math/big"
	"testing"

	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Twos_01(t *testing.T) {
	word, overflow := EncodeTwos(big.NewInt(-5), 8)
	assert.Equal(t, "11111011", word)
	assert.False(t, overflow)
	assert.Equal(t, int64(-5), DecodeTwos(word).Int64())
}

func Test_Twos_02(t *testing.T) {
	// Every value in range round trips, for several widths
	for _, width := range []uint{2, 3, 4, 8} {
		lo, hi := TwosRange(width)
		//
		for v := lo.Int64(); v <= hi.Int64(); v++ {
			word, overflow := EncodeTwos(big.NewInt(v), width)
			assert.False(t, overflow)
			assert.Equal(t, v, DecodeTwos(word).Int64())
		}
	}
}

func Test_Twos_03(t *testing.T) {
	// Every word round trips
	for i := uint64(0); i < 256; i++ {
		word := bits.FromUint(i, 8)
		encoded, overflow := EncodeTwos(DecodeTwos(word), 8)
		assert.False(t, overflow)
		assert.Equal(t, word, encoded)
	}
}

func Test_Twos_04(t *testing.T) {
	word, overflow := EncodeTwos(big.NewInt(130), 8)
	assert.True(t, overflow)
	assert.Equal(t, "10000010", word)
	//
	word, overflow = EncodeTwos(big.NewInt(-129), 8)
	assert.True(t, overflow)
	assert.Equal(t, "01111111", word)
}

func Test_Ones_01(t *testing.T) {
	word, overflow := EncodeOnes(big.NewInt(-5), 8, false)
	assert.Equal(t, "11111010", word)
	assert.False(t, overflow)
	//
	val, negZero := DecodeOnes(word)
	assert.Equal(t, int64(-5), val.Int64())
	assert.False(t, negZero)
}

func Test_Ones_02(t *testing.T) {
	val, negZero := DecodeOnes("1111")
	assert.Equal(t, int64(0), val.Int64())
	assert.True(t, negZero)
	//
	word, _ := EncodeOnes(big.NewInt(0), 4, true)
	assert.Equal(t, "1111", word)
	word, _ = EncodeOnes(big.NewInt(0), 4, false)
	assert.Equal(t, "0000", word)
}

func Test_Ones_03(t *testing.T) {
	for i := uint64(0); i < 256; i++ {
		word := bits.FromUint(i, 8)
		val, negZero := DecodeOnes(word)
		encoded, overflow := EncodeOnes(val, 8, negZero)
		assert.False(t, overflow)
		assert.Equal(t, word, encoded)
	}
	//
	_, overflow := EncodeOnes(big.NewInt(-128), 8, false)
	assert.True(t, overflow)
}

func Test_ParseInteger_01(t *testing.T) {
	cases := []struct {
		text string
		base int
		val  int64
	}{
		{"42", 10, 42},
		{"-42", 10, -42},
		{"0x2A", 16, 42},
		{"-2a", 16, -42},
		{"0b10_1010", 2, 42},
		{"52", 8, 42},
		{"+0o52", 8, 42},
	}
	//
	for _, c := range cases {
		val, err := ParseInteger(c.text, c.base)
		require.NoError(t, err, c.text)
		assert.Equal(t, c.val, val.Int64(), c.text)
	}
}

func Test_ParseInteger_02(t *testing.T) {
	for _, text := range []string{"", "-", "12", "0b"} {
		_, err := ParseInteger(text, 2)
		assert.Error(t, err, text)
	}
}

func Test_FormatSigned_01(t *testing.T) {
	assert.Equal(t, "0010 1010", FormatSigned(big.NewInt(42), 2, 8))
	assert.Equal(t, "-0010 1010", FormatSigned(big.NewInt(-42), 2, 8))
	assert.Equal(t, "052", FormatSigned(big.NewInt(42), 8, 8))
	assert.Equal(t, "2A", FormatSigned(big.NewInt(42), 16, 8))
	assert.Equal(t, "1 0000 0000", FormatSigned(big.NewInt(256), 2, 8))
}

func Test_BCD_01(t *testing.T) {
	assert.Equal(t, "0011 1001 0001", EncodeBCD(big.NewInt(391), false))
	assert.Equal(t, "-0100 0010", EncodeBCD(big.NewInt(-42), false))
	assert.Equal(t, "0000", EncodeBCD(big.NewInt(0), false))
	assert.Equal(t, "-0000", EncodeBCD(big.NewInt(0), true))
}

func Test_BCD_02(t *testing.T) {
	val, negZero, err := DecodeBCD("0011 1001 0001")
	require.NoError(t, err)
	assert.Equal(t, int64(391), val.Int64())
	assert.False(t, negZero)
	//
	val, negZero, err = DecodeBCD("-0000")
	require.NoError(t, err)
	assert.Equal(t, int64(0), val.Int64())
	assert.True(t, negZero)
}

func Test_BCD_03(t *testing.T) {
	for _, text := range []string{"101", "1010", "0001 1100", "", "12"} {
		_, _, err := DecodeBCD(text)
		assert.Error(t, err, text)
	}
}
