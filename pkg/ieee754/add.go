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
	"fmt"

	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/exact"
)

// EXTRA_BITS is the number of bits (guard, round and sticky) retained below
// the least significant mantissa bit during addition.
const EXTRA_BITS = 3

// AddResult is the outcome of adding two encoded values.
type AddResult struct {
	Format   Format       `json:"format"`
	A        DecodeResult `json:"a"`
	B        DecodeResult `json:"b"`
	Sign     uint         `json:"sign"`
	Exponent string       `json:"exponent"`
	Mantissa string       `json:"mantissa"`
	Bits     string       `json:"bits"`
	Hex      string       `json:"hex"`
	Class    Class        `json:"class"`
	Value    string       `json:"value"`
	// Guard, round and sticky bits inspected when rounding.  All zero when no
	// rounding took place.
	Guard  uint        `json:"guard"`
	Round  uint        `json:"round"`
	Sticky uint        `json:"sticky"`
	Trace  trace.Trace `json:"trace"`
}

// Add computes the sum of two values, rounding to nearest-even.  Operands are
// encoded words (binary or hex) or decimals, as determined by kind.  Decimal
// operands are encoded first.
func Add(a string, b string, f Format, kind InputKind) (AddResult, error) {
	var (
		rec = trace.NewRecorder()
		res = AddResult{Format: f}
		err error
	)
	//
	if res.A, err = f.operand(a, kind); err != nil {
		return res, err
	} else if res.B, err = f.operand(b, kind); err != nil {
		return res, err
	}
	//
	rec.Section("Operands")
	rec.Step("A = %s (%s, %s)", res.A.Bits, res.A.Class, res.A.Value)
	rec.Step("B = %s (%s, %s)", res.B.Bits, res.B.Class, res.B.Value)
	//
	var (
		x   = res.A.Decoded()
		y   = res.B.Decoded()
		sum = f.addSpecial(x, y, rec)
	)
	//
	if sum == nil {
		var grs [EXTRA_BITS]uint
		//
		sum, grs = f.addFinite(x.(Finite), y.(Finite), rec)
		res.Guard, res.Round, res.Sticky = grs[0], grs[1], grs[2]
	}
	//
	fields := f.Pack(sum)
	res.Sign = fields.Sign
	res.Exponent = f.ExponentString(fields)
	res.Mantissa = f.MantissaString(fields)
	res.Bits = f.Join(fields)
	res.Hex = bits.Hex(res.Bits)
	res.Class = sum.Class()
	res.Value = f.Text(sum)
	//
	rec.Section("Result")
	rec.Step("sign=%d exponent=%s mantissa=%s", res.Sign, res.Exponent, res.Mantissa)
	rec.Step("value = %s", res.Value)
	res.Trace = rec.Trace()
	//
	return res, nil
}

// Decode an operand, encoding it first when written in decimal.
func (f Format) operand(text string, kind InputKind) (DecodeResult, error) {
	if kind == DECIMAL {
		enc, err := Encode(text, f, exact.NewContext(0))
		if err != nil {
			return DecodeResult{}, err
		}
		//
		return f.decodeWord(enc.Bits), nil
	}
	//
	return Decode(text, kind, f)
}

// Short-circuit additions involving NaNs, infinities or zeros.  Returns nil
// when both operands are finite and non-zero.
func (f Format) addSpecial(x Value, y Value, rec *trace.Recorder) Value {
	rec.Section("Special cases")
	//
	switch {
	case x.Class() == NAN || y.Class() == NAN:
		nan, ok := x.(NaN)
		if !ok {
			nan = y.(NaN)
		}
		// Propagated NaNs are always quiet
		nan.Payload |= 1 << (f.MantissaBits - 1)
		rec.Step("NaN operand propagates")
		//
		return nan
	case x.Class() == INFINITY && y.Class() == INFINITY:
		if x.Negative() != y.Negative() {
			rec.Step("infinities of opposite sign give NaN")
			return f.QuietNaN()
		}
		//
		rec.Step("infinities of the same sign")
		//
		return x
	case x.Class() == INFINITY:
		rec.Step("infinite operand A dominates")
		return x
	case y.Class() == INFINITY:
		rec.Step("infinite operand B dominates")
		return y
	case x.Class() == ZERO && y.Class() == ZERO:
		// Under round to nearest, the sum of zeros is negative only when both
		// are.
		sign := x.(Zero).Sign & y.(Zero).Sign
		rec.Step("sum of zeros has sign %d", sign)
		//
		return Zero{sign}
	case x.Class() == ZERO:
		rec.Step("A is zero, result is B")
		return y
	case y.Class() == ZERO:
		rec.Step("B is zero, result is A")
		return x
	}
	//
	rec.Step("none")
	//
	return nil
}

// Add two finite non-zero values.  Significands are extended with guard, round
// and sticky bits, aligned, combined then renormalised and rounded.
func (f Format) addFinite(x Finite, y Finite, rec *trace.Recorder) (Value, [EXTRA_BITS]uint) {
	var (
		m     = f.MantissaBits
		width = m + 1 + EXTRA_BITS
		grs   [EXTRA_BITS]uint
	)
	// Order operands by magnitude
	if y.Exponent > x.Exponent || (y.Exponent == x.Exponent && y.Significand > x.Significand) {
		x, y = y, x
		//
		rec.Section("Ordering")
		rec.Step("|B| > |A|, so the operands are swapped")
	}
	//
	shift := uint(x.Exponent - y.Exponent)
	lhs := x.Significand << EXTRA_BITS
	rhs := stickyShift(y.Significand<<EXTRA_BITS, shift)
	//
	rec.Section("Alignment")
	rec.Step("exponents %d and %d differ by %d", x.Exponent, y.Exponent, shift)
	rec.Step("larger  = %s", bits.FromUint(lhs, width))
	rec.Step("smaller = %s (shifted right %d, sticky collected)", bits.FromUint(rhs, width), shift)
	//
	var (
		sign = x.Sign
		r    uint64
		e    = x.Exponent
	)
	//
	rec.Section("Significand arithmetic")
	//
	if x.Sign == y.Sign {
		r = lhs + rhs
		rec.Step("signs agree: %s + %s = %s", bits.FromUint(lhs, width), bits.FromUint(rhs, width), bits.FromUint(r, width+1))
	} else {
		r = lhs - rhs
		rec.Step("signs differ: %s - %s = %s", bits.FromUint(lhs, width), bits.FromUint(rhs, width), bits.FromUint(r, width))
	}
	//
	if r == 0 {
		rec.Step("operands cancel exactly")
		return Zero{0}, grs
	}
	//
	r, e = f.normaliseSum(r, e, rec)
	//
	grs = [EXTRA_BITS]uint{uint(r>>2) & 1, uint(r>>1) & 1, uint(r) & 1}
	r >>= EXTRA_BITS
	//
	rec.Section("Rounding (nearest-even)")
	//
	if grs[0] == 1 && (grs[1]|grs[2]|uint(r&1)) == 1 {
		r++
		rec.Step("guard=%d round=%d sticky=%d lsb=%d => round up", grs[0], grs[1], grs[2], (r-1)&1)
		//
		if r>>(m+1) != 0 {
			r >>= 1
			e++
			//
			rec.Step("rounding carried out of the significand, exponent now %d", e)
		}
	} else {
		rec.Step("guard=%d round=%d sticky=%d lsb=%d => keep", grs[0], grs[1], grs[2], r&1)
	}
	//
	if e+f.Bias >= int(f.MaxExponent()) {
		rec.Section("Overflow")
		rec.Step("exponent %d is out of range, result is infinite", e)
		//
		return Infinity{sign}, grs
	} else if r == 0 {
		rec.Section("Underflow")
		rec.Step("result flushes to zero")
		//
		return Zero{sign}, grs
	} else if r>>m == 0 {
		return Finite{sign, f.MinExponent(), r, true}, grs
	}
	//
	return Finite{sign, e, r, false}, grs
}

// Bring the leading bit of an extended significand back to the implicit
// position, or as close as the minimum exponent allows.
func (f Format) normaliseSum(r uint64, e int, rec *trace.Recorder) (uint64, int) {
	var (
		top   = uint64(1) << (f.MantissaBits + EXTRA_BITS)
		width = f.MantissaBits + 1 + EXTRA_BITS
		left  = 0
	)
	//
	rec.Section("Normalisation")
	//
	if r >= top<<1 {
		r = stickyShift(r, 1)
		e++
		//
		rec.Step("carry out: shift right 1, exponent now %d", e)
		//
		return r, e
	}
	//
	for r < top && e > f.MinExponent() {
		r <<= 1
		e--
		left++
	}
	//
	switch {
	case left > 0 && r < top:
		rec.Step("shift left %d, reaching the denormal range", left)
	case left > 0:
		rec.Step("shift left %d, exponent now %d", left, e)
	case r < top:
		rec.Step("result is denormal")
	default:
		rec.Step("already normalised")
	}
	//
	rec.Step("%s", bits.FromUint(r, width))
	//
	return r, e
}

// Shift right, OR-ing every bit shifted out into the least significant bit.
func stickyShift(val uint64, n uint) uint64 {
	if n == 0 {
		return val
	} else if n >= 64 {
		if val != 0 {
			return 1
		}
		//
		return 0
	}
	//
	shifted := val >> n
	if val&(uint64(1)<<n-1) != 0 {
		shifted |= 1
	}
	//
	return shifted
}

func (r AddResult) String() string {
	return fmt.Sprintf("%s + %s = %s", r.A.Value, r.B.Value, r.Value)
}
