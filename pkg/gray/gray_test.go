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
	"testing"

	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Gray_01(t *testing.T) {
	res, err := Encode("1011")
	require.NoError(t, err)
	assert.Equal(t, "1110", res.Gray)
	assert.False(t, res.Input.Decimal)
	//
	dec, err := Decode("1110")
	require.NoError(t, err)
	assert.Equal(t, "1011", dec.Binary)
}

func Test_Gray_02(t *testing.T) {
	// Values containing 2-9 are decimal
	res, err := Encode("15")
	require.NoError(t, err)
	assert.True(t, res.Input.Decimal)
	assert.Equal(t, "1111", res.Binary)
	assert.Equal(t, "1000", res.Gray)
	//
	res, err = Encode("2")
	require.NoError(t, err)
	assert.Equal(t, "0010", res.Binary)
	assert.Equal(t, "0011", res.Gray)
	// "11" is always binary
	res, err = Encode("11")
	require.NoError(t, err)
	assert.False(t, res.Input.Decimal)
	assert.Equal(t, "10", res.Gray)
}

func Test_Gray_03(t *testing.T) {
	res, err := Encode("0111")
	require.NoError(t, err)
	require.NotNil(t, res.Previous)
	require.NotNil(t, res.Next)
	assert.Equal(t, "0101", res.Previous.Gray)
	assert.Equal(t, "1100", res.Next.Gray)
	assert.Equal(t, uint(1), res.Previous.Differs)
	assert.Equal(t, uint(1), res.Next.Differs)
	// No successor within the width
	res, err = Encode("1111")
	require.NoError(t, err)
	assert.Nil(t, res.Next)
	res, err = Encode("0000")
	require.NoError(t, err)
	assert.Nil(t, res.Previous)
}

func Test_Gray_04(t *testing.T) {
	for _, text := range []string{"", "12a", "-5", "1.5"} {
		_, err := Encode(text)
		assert.True(t, diag.Is(err, diag.INVALID_INPUT), text)
	}
	//
	_, err := Decode("1201")
	assert.True(t, diag.Is(err, diag.INVALID_INPUT))
}

// Consecutive values (wrapping around) have codes differing in exactly one
// bit, and decoding inverts encoding.
func Test_Gray_05(t *testing.T) {
	for width := uint(1); width <= 8; width++ {
		n := uint64(1) << width
		//
		for i := uint64(0); i < n; i++ {
			lhs, err := Encode(bits.FromUint(i, width))
			require.NoError(t, err)
			rhs, err := Encode(bits.FromUint((i+1)%n, width))
			require.NoError(t, err)
			assert.Equal(t, uint(1), bits.PopCount(bits.Xor(lhs.Gray, rhs.Gray)), "%d", i)
			//
			dec, err := Decode(lhs.Gray)
			require.NoError(t, err)
			assert.Equal(t, lhs.Binary, dec.Binary)
		}
	}
}
