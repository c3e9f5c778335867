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
package exact

import (
	"math/big"
	"testing"

	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_01(t *testing.T) {
	for _, text := range []string{"0", "-13.625", "+7", ".5", "5.", "2.5e-3", "1_000"} {
		_, err := Parse(text)
		assert.NoError(t, err, text)
	}
}

func Test_Parse_02(t *testing.T) {
	for _, text := range []string{"", "-", "1.2.3", "12a", "e5", "1e", "1e+x", "."} {
		_, err := Parse(text)
		assert.True(t, diag.Is(err, diag.INVALID_INPUT), text)
	}
}

func Test_Pow2_01(t *testing.T) {
	assert.Equal(t, "1", Format(Pow2(0)))
	assert.Equal(t, "1024", Format(Pow2(10)))
	assert.Equal(t, "0.125", Format(Pow2(-3)))
	assert.Equal(t, "0.0009765625", Format(Pow2(-10)))
}

func Test_Scaled_01(t *testing.T) {
	// 109/8 = 13.625
	assert.Equal(t, "13.625", Format(Scaled(big.NewInt(109), -3)))
	assert.Equal(t, "-13.625", Format(Scaled(big.NewInt(-109), -3)))
	assert.Equal(t, "0", Format(Scaled(big.NewInt(0), -30)))
}

func Test_Split_01(t *testing.T) {
	d, err := Parse("13.625")
	require.NoError(t, err)
	//
	integ, frac := Split(d)
	assert.Equal(t, int64(13), integ.Int64())
	assert.Equal(t, "0.625", Format(frac))
}

func Test_Arith_01(t *testing.T) {
	ctx := NewContext(0)
	x, _ := Parse("0.625")
	//
	y, err := Double(ctx, x)
	require.NoError(t, err)
	assert.Equal(t, "1.25", Format(y))
	//
	z, err := Add(ctx, y, Pow2(-2))
	require.NoError(t, err)
	assert.Equal(t, "1.5", Format(z))
	//
	w, err := Sub(ctx, z, Pow2(1))
	require.NoError(t, err)
	assert.Equal(t, "-0.5", Format(w))
	//
	v, err := Mul(ctx, w, w)
	require.NoError(t, err)
	assert.Equal(t, "0.25", Format(v))
}

func Test_Arith_02(t *testing.T) {
	// Three significant digits cannot hold 2 * 0.0009765625 exactly
	ctx := NewContext(3)
	_, err := Double(ctx, Pow2(-10))
	assert.True(t, diag.Is(err, diag.OUT_OF_RANGE))
}

func Test_Widen_01(t *testing.T) {
	ctx := NewContext(3)
	assert.Same(t, ctx, Widen(ctx, 2))
	//
	wide := Widen(ctx, 20)
	assert.Equal(t, uint32(20), wide.Precision)
	assert.Equal(t, uint32(3), ctx.Precision)
	//
	_, err := Double(wide, Pow2(-10))
	assert.NoError(t, err)
}
