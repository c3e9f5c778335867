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

func Test_DecimalToBinary_01(t *testing.T) {
	res := checkDecimalToBinary(t, "-13.625", 3, TRUNCATE, "-1101.101")
	assert.True(t, res.Exact)
	assert.Equal(t, "-13.625", res.Value)
	assert.Equal(t, []string{"2^3", "2^2", "2^0", "2^-1", "2^-3"}, res.Terms)
}

func Test_DecimalToBinary_02(t *testing.T) {
	checkDecimalToBinary(t, "0", 0, TRUNCATE, "0")
	checkDecimalToBinary(t, "1", 0, TRUNCATE, "1")
	checkDecimalToBinary(t, "255", 0, TRUNCATE, "11111111")
	checkDecimalToBinary(t, "-0", 2, TRUNCATE, "0.00")
}

func Test_DecimalToBinary_03(t *testing.T) {
	// 0.1 = 0.000110011...
	res := checkDecimalToBinary(t, "0.1", 4, TRUNCATE, "0.0001")
	assert.False(t, res.Exact)
	assert.Equal(t, "0.0625", res.Value)
	assert.Equal(t, "-0.0375", res.Difference)
	// guard bit 1 with non-zero sticky rounds up
	checkDecimalToBinary(t, "0.1", 4, NEAREST_EVEN, "0.0010")
}

func Test_DecimalToBinary_04(t *testing.T) {
	// Ties go to even
	checkDecimalToBinary(t, "2.5", 0, NEAREST_EVEN, "10")
	checkDecimalToBinary(t, "3.5", 0, NEAREST_EVEN, "100")
	checkDecimalToBinary(t, "0.625", 2, NEAREST_EVEN, "0.10")
	checkDecimalToBinary(t, "0.875", 2, NEAREST_EVEN, "1.00")
	checkDecimalToBinary(t, "-0.375", 2, NEAREST_EVEN, "-0.10")
}

func Test_DecimalToBinary_05(t *testing.T) {
	// Carry out of the fraction into the integer part
	res := checkDecimalToBinary(t, "0.96875", 3, NEAREST_EVEN, "1.000")
	assert.Equal(t, "1", res.Value)
	assert.Equal(t, "1.000", res.Grouped)
	//
	res = checkDecimalToBinary(t, "300.75", 6, TRUNCATE, "100101100.110000")
	assert.Equal(t, "1 0010 1100.1100 00", res.Grouped)
}

func Test_DecimalToBinary_06(t *testing.T) {
	checkDecimalToBinary(t, "2.5e-1", 2, TRUNCATE, "0.01")
	checkDecimalToBinary(t, "1.5e2", 0, TRUNCATE, "10010110")
}

func Test_DecimalToBinary_07(t *testing.T) {
	for _, text := range []string{"1.2.3", "12a", "", "--1"} {
		_, err := DecimalToBinary(text, 4, TRUNCATE, exact.NewContext(0))
		assert.True(t, diag.Is(err, diag.INVALID_INPUT), text)
	}
	//
	_, err := DecimalToBinary("1", MAX_FRACTION_BITS+1, TRUNCATE, exact.NewContext(0))
	assert.True(t, diag.Is(err, diag.OUT_OF_RANGE))
}

func Test_DecimalToBinary_08(t *testing.T) {
	res := checkDecimalToBinary(t, "6", 0, TRUNCATE, "110")
	assert.Equal(t, []string{"Integer part 6", "Fractional part 0", "Verification"}, res.Trace.Sections())
	assert.True(t, res.Trace.Contains("6 / 2 = 3 remainder 0"))
	assert.True(t, res.Trace.Contains("remainders read bottom to top: 110"))
}

func Test_DecimalToBinary_09(t *testing.T) {
	// Working precision grows with the number of fractional bits requested
	for _, mode := range []Rounding{TRUNCATE, NEAREST_EVEN} {
		res, err := DecimalToBinary("0.1", MAX_FRACTION_BITS, mode, exact.NewContext(0))
		require.NoError(t, err)
		assert.Len(t, res.Fraction, MAX_FRACTION_BITS)
		assert.False(t, res.Exact)
		assert.Equal(t, "0.0001100110011", res.Bits[:15])
	}
}

func Test_InferFracBits_01(t *testing.T) {
	assert.Equal(t, uint(0), InferFracBits("13", 16))
	assert.Equal(t, uint(0), InferFracBits("13.000", 16))
	assert.Equal(t, uint(0), InferFracBits("13.", 16))
	assert.Equal(t, uint(16), InferFracBits("13.625", 16))
	assert.Equal(t, uint(8), InferFracBits("-0.1e3", 8))
}

func Test_ParseRounding_01(t *testing.T) {
	r, err := ParseRounding("Nearest-Even")
	require.NoError(t, err)
	assert.Equal(t, NEAREST_EVEN, r)
	//
	r, err = ParseRounding("truncate")
	require.NoError(t, err)
	assert.Equal(t, TRUNCATE, r)
	//
	_, err = ParseRounding("up")
	assert.Error(t, err)
}

func checkDecimalToBinary(t *testing.T, text string, fracBits uint, mode Rounding, expected string) BinaryResult {
	res, err := DecimalToBinary(text, fracBits, mode, exact.NewContext(0))
	require.NoError(t, err, text)
	assert.Equal(t, expected, res.Bits, text)
	//
	return res
}
