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
	"math/rand"
	"testing"

	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/consensys/go-bitlab/pkg/util/exact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Encode_01(t *testing.T) {
	res := checkEncode(t, "5.75", SINGLE, "40B80000", NORMALIZED)
	assert.True(t, res.Exact)
	assert.Equal(t, "10000001", res.Exponent)
	assert.Equal(t, uint64(129), res.BiasedExponent)
	assert.Equal(t, 2, res.ActualExponent)
	assert.Equal(t, "5.75", res.Value)
	assert.Contains(t, res.Trace.Sections(), "Normalisation")
	//
	res = checkEncode(t, "-0.15625", SINGLE, "BE200000", NORMALIZED)
	assert.Equal(t, uint(1), res.Sign)
	assert.True(t, res.Exact)
}

func Test_Encode_02(t *testing.T) {
	// Mantissas are truncated rather than rounded
	res := checkEncode(t, "0.1", SINGLE, "3DCCCCCC", NORMALIZED)
	assert.False(t, res.Exact)
	assert.Equal(t, "0.0999999940395355224609375", res.Value)
	//
	checkEncode(t, "0.1", DOUBLE, "3FB9999999999999", NORMALIZED)
	checkEncode(t, "0.3", SINGLE, "3E999999", NORMALIZED)
}

func Test_Encode_03(t *testing.T) {
	checkEncode(t, "0", SINGLE, "00000000", ZERO)
	checkEncode(t, "-0", SINGLE, "80000000", ZERO)
	checkEncode(t, "-0.000", DOUBLE, "8000000000000000", ZERO)
}

func Test_Encode_04(t *testing.T) {
	checkEncode(t, "1e-40", SINGLE, "000116C2", DENORMALIZED)
	checkEncode(t, "1.5e-45", SINGLE, "00000001", DENORMALIZED)
	// Below the smallest denormal
	res := checkEncode(t, "1e-46", SINGLE, "00000000", ZERO)
	assert.False(t, res.Exact)
}

func Test_Encode_05(t *testing.T) {
	checkEncode(t, "3.4e38", SINGLE, "7F7FC99E", NORMALIZED)
	//
	res := checkEncode(t, "1e39", SINGLE, "7F800000", INFINITY)
	assert.False(t, res.Exact)
	checkEncode(t, "-1e400", DOUBLE, "FFF0000000000000", INFINITY)
}

func Test_Encode_06(t *testing.T) {
	checkEncode(t, "inf", SINGLE, "7F800000", INFINITY)
	checkEncode(t, "-Infinity", SINGLE, "FF800000", INFINITY)
	checkEncode(t, "NaN", SINGLE, "7FC00000", NAN)
	checkEncode(t, "nan", DOUBLE, "7FF8000000000000", NAN)
}

func Test_Encode_07(t *testing.T) {
	for _, text := range []string{"", "abc", "1..2", "0x10"} {
		_, err := Encode(text, SINGLE, exact.NewContext(0))
		assert.True(t, diag.Is(err, diag.INVALID_INPUT), text)
	}
}

// Decoding then re-encoding a normalized value gives back the same bits.
func Test_Encode_08(t *testing.T) {
	checkRoundTrip(t, SINGLE, 200)
}

func Test_Encode_09(t *testing.T) {
	checkRoundTrip(t, DOUBLE, 40)
}

func checkEncode(t *testing.T, text string, f Format, hex string, class Class) EncodeResult {
	res, err := Encode(text, f, exact.NewContext(0))
	require.NoError(t, err, text)
	assert.Equal(t, hex, res.Hex, text)
	assert.Equal(t, class, res.Class, text)
	assert.Equal(t, int(f.Width()), len(res.Bits), text)
	assert.Equal(t, res.Bits, f.Join(f.Split(res.Bits)), text)
	//
	return res
}

func checkRoundTrip(t *testing.T, f Format, n int) {
	var rng = rand.New(rand.NewSource(1))
	//
	for i := 0; i < n; i++ {
		fields := Fields{
			Sign:     uint(rng.Intn(2)),
			Exponent: 1 + uint64(rng.Int63n(int64(f.MaxExponent()-1))),
			Mantissa: rng.Uint64() & (uint64(1)<<f.MantissaBits - 1),
		}
		word := f.Join(fields)
		//
		dec, err := Decode(word, BINARY, f)
		require.NoError(t, err)
		require.Equal(t, NORMALIZED, dec.Class)
		//
		enc, err := Encode(dec.Value, f, exact.NewContext(0))
		require.NoError(t, err, dec.Value)
		assert.Equal(t, word, enc.Bits, dec.Value)
		assert.True(t, enc.Exact, dec.Value)
		assert.Equal(t, bits.Hex(word), enc.Hex)
	}
}
