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
	"testing"

	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Recompute_01(t *testing.T) {
	views := checkRecompute(t, DECIMAL, "-5", 8)
	assert.Equal(t, "-5", views.Decimal)
	assert.Equal(t, "-0000 0101", views.Binary)
	assert.Equal(t, "-005", views.Octal)
	assert.Equal(t, "-05", views.Hex)
	assert.Equal(t, "1111 1010", views.Ones)
	assert.Equal(t, "1111 1011", views.Twos)
	assert.Equal(t, "-0101", views.BCD)
	assert.False(t, views.OnesOverflow)
	assert.False(t, views.TwosOverflow)
}

func Test_Recompute_02(t *testing.T) {
	// Every field parses back to the same value
	views := checkRecompute(t, DECIMAL, "-77", 8)
	//
	for field, raw := range map[Field]string{
		BINARY: views.Binary,
		OCTAL:  views.Octal,
		HEX:    views.Hex,
		ONES:   views.Ones,
		TWOS:   views.Twos,
		BCD:    views.BCD,
	} {
		other := checkRecompute(t, field, raw, 8)
		assert.Equal(t, "-77", other.Value, field.String())
		assert.Equal(t, views.Twos, other.Twos, field.String())
	}
}

func Test_Recompute_03(t *testing.T) {
	views := checkRecompute(t, ONES, "1111 1111", 8)
	assert.True(t, views.NegativeZero)
	assert.Equal(t, "0", views.Value)
	assert.Equal(t, "-0000", views.BCD)
	assert.Equal(t, "0000 0000", views.Twos)
	assert.Equal(t, "1111 1111", views.Ones)
}

func Test_Recompute_04(t *testing.T) {
	views := checkRecompute(t, HEX, "0x1FF", 8)
	assert.Equal(t, "511", views.Value)
	assert.True(t, views.TwosOverflow)
	assert.True(t, views.OnesOverflow)
	assert.Equal(t, "1111 1111", views.Twos)
	assert.True(t, views.Trace.Contains("two's complement overflow"))
}

func Test_Recompute_05(t *testing.T) {
	views := checkRecompute(t, DECIMAL, "258", 16)
	assert.Equal(t, "0000 0001 0000 0010", views.TwosBytes.BigEndian)
	assert.Equal(t, "0000 0010 0000 0001", views.TwosBytes.LittleEndian)
	assert.Equal(t, ByteOrder{"0102", "0201"}, views.HexBytes)
	// 258 in BCD is 0010 0101 1000, padded to 16 bits
	assert.Equal(t, "0000 0010 0101 1000", views.BCDBytes.BigEndian)
	assert.Equal(t, "0101 1000 0000 0010", views.BCDBytes.LittleEndian)
}

func Test_Recompute_06(t *testing.T) {
	_, err := Recompute(TWOS, "1010", 8)
	assert.True(t, diag.Is(err, diag.INVALID_INPUT))
	//
	_, err = Recompute(DECIMAL, "1", 1)
	assert.True(t, diag.Is(err, diag.OUT_OF_RANGE))
	//
	_, err = Recompute(BCD, "1111", 8)
	assert.True(t, diag.Is(err, diag.INVALID_INPUT))
}

func Test_ParseField_01(t *testing.T) {
	for i, name := range fieldNames {
		f, err := ParseField(name)
		require.NoError(t, err)
		assert.Equal(t, Field(i), f)
	}
	//
	f, err := ParseField("2s")
	require.NoError(t, err)
	assert.Equal(t, TWOS, f)
	//
	_, err = ParseField("roman")
	assert.Error(t, err)
}

func checkRecompute(t *testing.T, field Field, raw string, width uint) Views {
	views, err := Recompute(field, raw, width)
	require.NoError(t, err, raw)
	//
	return views
}
