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
package ieee754

import (
	"strings"
	"testing"

	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Decode_01(t *testing.T) {
	res := checkDecode(t, "11000010011000110000101000111101", BINARY, SINGLE, NORMALIZED, "-56.759998321533203125")
	assert.Equal(t, uint(1), res.Sign)
	assert.Equal(t, "10000100", res.Exponent)
	assert.Equal(t, "11000110000101000111101", res.Mantissa)
	assert.Equal(t, 5, res.ActualExponent)
	assert.Equal(t, "1.11000110000101000111101", res.Significand)
	assert.Equal(t, "-56.76", res.Approx)
	assert.Equal(t, "C2630A3D", res.Hex)
	assert.True(t, res.Trace.Contains("111000.110000101000111101"))
	//
	checkDecode(t, "C2630A3D", HEX, SINGLE, NORMALIZED, "-56.759998321533203125")
	checkDecode(t, "0xc2630a3d", HEX, SINGLE, NORMALIZED, "-56.759998321533203125")
}

func Test_Decode_02(t *testing.T) {
	checkDecode(t, "7F800000", HEX, SINGLE, INFINITY, "+Infinity")
	checkDecode(t, "FF800000", HEX, SINGLE, INFINITY, "-Infinity")
	checkDecode(t, "80000000", HEX, SINGLE, ZERO, "-0")
	checkDecode(t, "0", HEX, SINGLE, ZERO, "0")
	//
	res := checkDecode(t, "7FC00000", HEX, SINGLE, NAN, "NaN")
	assert.True(t, res.Trace.Contains("quiet NaN"))
	res = checkDecode(t, "7F800001", HEX, SINGLE, NAN, "NaN")
	assert.True(t, res.Trace.Contains("signaling NaN"))
}

func Test_Decode_03(t *testing.T) {
	res, err := Decode("00000001", HEX, SINGLE)
	require.NoError(t, err)
	assert.Equal(t, DENORMALIZED, res.Class)
	assert.Equal(t, -126, res.ActualExponent)
	assert.Equal(t, "0.00000000000000000000001", res.Significand)
	assert.Equal(t, "1e-45", res.Approx)
	assert.True(t, strings.HasPrefix(res.Value, "0.00000000000000000000000000000000000000000000140129846432481707"))
	assert.True(t, strings.HasSuffix(res.Value, "8203125"))
}

func Test_Decode_04(t *testing.T) {
	res := checkDecode(t, "3FF8000000000000", HEX, DOUBLE, NORMALIZED, "1.5")
	assert.Equal(t, 0, res.ActualExponent)
	assert.Equal(t, "1.5", res.Approx)
	//
	checkDecode(t, "3FB999999999999A", HEX, DOUBLE, NORMALIZED,
		"0.1000000000000000055511151231257827021181583404541015625")
	checkDecode(t, "7FF0000000000000", HEX, DOUBLE, INFINITY, "+Infinity")
}

func Test_Decode_05(t *testing.T) {
	for _, text := range []string{"0101", "1100001001100011000010100011110", "2" + strings.Repeat("0", 31)} {
		_, err := Decode(text, BINARY, SINGLE)
		assert.True(t, diag.Is(err, diag.INVALID_INPUT), text)
	}
	//
	for _, text := range []string{"C2630A3D00", "XYZ", ""} {
		_, err := Decode(text, HEX, SINGLE)
		assert.True(t, diag.Is(err, diag.INVALID_INPUT), text)
	}
}

func Test_Decode_06(t *testing.T) {
	f, err := ParseFormat("Single (32-bit)")
	require.NoError(t, err)
	assert.Equal(t, SINGLE, f)
	//
	f, err = ParseFormat("double")
	require.NoError(t, err)
	assert.Equal(t, DOUBLE, f)
	//
	_, err = ParseFormat("quad")
	assert.True(t, diag.Is(err, diag.INVALID_INPUT))
	//
	kind, err := ParseInputKind("Hex")
	require.NoError(t, err)
	assert.Equal(t, HEX, kind)
}

func checkDecode(t *testing.T, input string, kind InputKind, f Format, class Class, value string) DecodeResult {
	res, err := Decode(input, kind, f)
	require.NoError(t, err, input)
	assert.Equal(t, class, res.Class, input)
	assert.Equal(t, value, res.Value, input)
	assert.Equal(t, class, res.Decoded().Class(), input)
	//
	return res
}
