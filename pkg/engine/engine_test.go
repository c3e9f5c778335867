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
package engine

import (
	"testing"

	"github.com/consensys/go-bitlab/pkg/coding/crc"
	"github.com/consensys/go-bitlab/pkg/gray"
	"github.com/consensys/go-bitlab/pkg/ieee754"
	"github.com/consensys/go-bitlab/pkg/kmap"
	"github.com/consensys/go-bitlab/pkg/radix"
	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Descriptors_01(t *testing.T) {
	require.Len(t, Descriptors(), len(names))
	//
	for i, d := range Descriptors() {
		assert.Equal(t, ID(i), d.ID)
		assert.NotEmpty(t, d.Summary)
		assert.NotEmpty(t, d.Params)
		//
		id, err := ParseID(d.ID.String())
		require.NoError(t, err)
		assert.Equal(t, d.ID, id)
	}
	//
	assert.Equal(t, KMAP, Lookup(KMAP).ID)
	//
	_, err := ParseID("frobnicate")
	assert.True(t, diag.Is(err, diag.INVALID_INPUT))
}

func Test_Run_01(t *testing.T) {
	res := checkRun(t, DECIMAL_TO_BINARY, `{"value": "-13.625", "frac_bits": 3, "rounding": "truncate"}`)
	assert.Equal(t, "-1101.101", res.(radix.BinaryResult).Bits)
	// Fraction bits are inferred when absent
	res = checkRun(t, DECIMAL_TO_BINARY, `{"value": "6"}`)
	assert.Equal(t, "110", res.(radix.BinaryResult).Bits)
}

func Test_Run_02(t *testing.T) {
	res := checkRun(t, IEEE_DECODE, `{"value": "11000010011000110000101000111101", "format": "Single (32-bit)"}`)
	assert.Equal(t, "-56.759998321533203125", res.(ieee754.DecodeResult).Value)
	//
	res = checkRun(t, IEEE_ADD, `{"a": "1.5", "b": "2.25"}`)
	assert.Equal(t, "40700000", res.(ieee754.AddResult).Hex)
	//
	res = checkRun(t, IEEE_SPECIAL, `{"kind": "+inf", "format": "double"}`)
	assert.Equal(t, "7FF0000000000000", res.(ieee754.SpecialResult).Hex)
}

func Test_Run_03(t *testing.T) {
	res := checkRun(t, CRC_ENCODE, `{"message": "1011001", "generator": "10011"}`)
	assert.Equal(t, "10110011010", res.(crc.EncodeResult).Codeword)
	//
	res = checkRun(t, GRAY_ENCODE, `{"value": "1011"}`)
	assert.Equal(t, "1110", res.(gray.EncodeResult).Gray)
	//
	res = checkRun(t, KMAP, `{"minterms": "1,3,7,11,15", "variables": 4}`)
	assert.Equal(t, "A'·B'·D + C·D", res.(kmap.Result).SOP)
}

func Test_Run_04(t *testing.T) {
	_, err := Run(Request{Tool: CRC_ENCODE, Params: json.RawMessage(`{"message": 12}`)})
	assert.True(t, diag.Is(err, diag.INVALID_INPUT))
	//
	_, err = Run(Request{Tool: ID(200)})
	assert.True(t, diag.Is(err, diag.INVALID_INPUT))
	//
	_, err = Run(Request{Tool: TWOS_ADD, Params: json.RawMessage(`{"a": "5", "b": "3", "width": 1}`)})
	assert.True(t, diag.Is(err, diag.OUT_OF_RANGE))
}

func Test_Batch_01(t *testing.T) {
	reqs, err := ParseBatch([]byte(`[
		{"tool": "gray-encode", "params": {"value": "1011"}},
		{"tool": "hamming-decode", "params": {"codeword": "01"}},
		{"tool": "kmap", "params": {"expression": "A + "}}
	]`))
	require.NoError(t, err)
	require.Len(t, reqs, 3)
	assert.Equal(t, GRAY_ENCODE, reqs[0].Tool)
	//
	responses := RunAll(reqs)
	assert.Nil(t, responses[0].Error)
	assert.Equal(t, "1110", responses[0].Result.(gray.EncodeResult).Gray)
	require.NotNil(t, responses[1].Error)
	assert.Equal(t, diag.OUT_OF_RANGE, responses[1].Error.Kind)
	require.NotNil(t, responses[2].Error)
	assert.Equal(t, "unexpected end of expression", responses[2].Error.Message)
	assert.Equal(t, []string{"A + ", "    ^"}, responses[2].Error.Highlight)
}

func Test_Batch_02(t *testing.T) {
	_, err := ParseBatch([]byte(`[{"tool": "frobnicate"}]`))
	assert.True(t, diag.Is(err, diag.INVALID_INPUT))
	//
	_, err = ParseBatch([]byte(`{`))
	assert.True(t, diag.Is(err, diag.INVALID_INPUT))
}

func checkRun(t *testing.T, id ID, params string) any {
	t.Helper()
	//
	res, err := Run(Request{Tool: id, Params: json.RawMessage(params)})
	require.NoError(t, err)
	assert.Equal(t, id, res.Tool)
	//
	return res.Result
}
