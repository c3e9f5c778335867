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
	"github.com/consensys/go-bitlab/pkg/util/exact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BinaryToDecimal_01(t *testing.T) {
	res := checkBinaryToDecimal(t, "-1101.101", "-13.625")
	assert.True(t, res.Negative)
	assert.Equal(t, []Term{{3, "8"}, {2, "4"}, {0, "1"}, {-1, "0.5"}, {-3, "0.125"}}, res.Terms)
}

func Test_BinaryToDecimal_02(t *testing.T) {
	checkBinaryToDecimal(t, "0", "0")
	checkBinaryToDecimal(t, "-0.0", "0")
	checkBinaryToDecimal(t, ".1", "0.5")
	checkBinaryToDecimal(t, "1.", "1")
	checkBinaryToDecimal(t, "1111 1111", "255")
	checkBinaryToDecimal(t, "0.0001100110011", "0.0999755859375")
}

func Test_BinaryToDecimal_03(t *testing.T) {
	for _, text := range []string{"", ".", "1.0.1", "102", "-"} {
		_, err := BinaryToDecimal(text, exact.NewContext(0))
		assert.True(t, diag.Is(err, diag.INVALID_INPUT), text)
	}
}

func Test_BinaryToDecimal_04(t *testing.T) {
	// Round trip through both converters
	for _, text := range []string{"13.625", "-0.375", "1024", "0.0009765625"} {
		bin, err := DecimalToBinary(text, 10, TRUNCATE, exact.NewContext(0))
		require.NoError(t, err)
		//
		dec, err := BinaryToDecimal(bin.Bits, exact.NewContext(0))
		require.NoError(t, err)
		assert.Equal(t, text, dec.Value)
	}
}

func Test_BinaryToDecimal_05(t *testing.T) {
	// Too little precision to sum the terms exactly
	_, err := BinaryToDecimal("1.0000000001", exact.NewContext(4))
	assert.True(t, diag.Is(err, diag.OUT_OF_RANGE))
}

func checkBinaryToDecimal(t *testing.T, text string, expected string) DecimalResult {
	res, err := BinaryToDecimal(text, exact.NewContext(0))
	require.NoError(t, err, text)
	assert.Equal(t, expected, res.Value, text)
	//
	return res
}
