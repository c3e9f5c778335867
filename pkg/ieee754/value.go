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
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/consensys/go-bitlab/pkg/util/exact"
)

// Class is the classification of an encoded value, which is determined
// entirely by its exponent and mantissa fields.
type Class uint8

const (
	// ZERO has all-zero exponent and mantissa fields.
	ZERO Class = iota
	// DENORMALIZED has an all-zero exponent field and non-zero mantissa.
	DENORMALIZED
	// NORMALIZED has an exponent field which is neither all zeros nor all
	// ones.
	NORMALIZED
	// INFINITY has an all-ones exponent field and zero mantissa.
	INFINITY
	// NAN has an all-ones exponent field and non-zero mantissa.
	NAN
)

var classNames = []string{"zero", "denormalized", "normalized", "infinity", "NaN"}

func (c Class) String() string {
	return classNames[c]
}

// MarshalText renders a class by name.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Classify determines the class of some encoded fields.
func (f Format) Classify(fields Fields) Class {
	switch {
	case fields.Exponent == f.MaxExponent() && fields.Mantissa == 0:
		return INFINITY
	case fields.Exponent == f.MaxExponent():
		return NAN
	case fields.Exponent == 0 && fields.Mantissa == 0:
		return ZERO
	case fields.Exponent == 0:
		return DENORMALIZED
	}
	//
	return NORMALIZED
}

// Value is a decoded floating point value.  It is exactly one of Zero,
// Infinity, NaN or Finite.
type Value interface {
	Class() Class
	Negative() bool
}

// Zero is a signed zero.
type Zero struct {
	Sign uint
}

// Infinity is a signed infinity.
type Infinity struct {
	Sign uint
}

// NaN is a not-a-number, quiet when the top mantissa bit is set.
type NaN struct {
	Sign    uint
	Payload uint64
}

// Finite is a non-zero finite value Significand * 2^(Exponent - m), where m
// is the number of mantissa bits.  For normalized values the significand
// includes the implicit leading bit, and for denormalized values the exponent
// is 1-bias.
type Finite struct {
	Sign        uint
	Exponent    int
	Significand uint64
	Subnormal   bool
}

// Class implementation for Value.
func (v Zero) Class() Class { return ZERO }

// Class implementation for Value.
func (v Infinity) Class() Class { return INFINITY }

// Class implementation for Value.
func (v NaN) Class() Class { return NAN }

// Class implementation for Value.
func (v Finite) Class() Class {
	if v.Subnormal {
		return DENORMALIZED
	}
	//
	return NORMALIZED
}

// Negative implementation for Value.
func (v Zero) Negative() bool { return v.Sign == 1 }

// Negative implementation for Value.
func (v Infinity) Negative() bool { return v.Sign == 1 }

// Negative implementation for Value.
func (v NaN) Negative() bool { return v.Sign == 1 }

// Negative implementation for Value.
func (v Finite) Negative() bool { return v.Sign == 1 }

// Quiet checks whether this NaN is quiet (as opposed to signaling).
func (f Format) Quiet(v NaN) bool {
	return v.Payload>>(f.MantissaBits-1) == 1
}

// Unpack decodes the fields of an encoded value.
func (f Format) Unpack(fields Fields) Value {
	switch f.Classify(fields) {
	case ZERO:
		return Zero{fields.Sign}
	case INFINITY:
		return Infinity{fields.Sign}
	case NAN:
		return NaN{fields.Sign, fields.Mantissa}
	case DENORMALIZED:
		return Finite{fields.Sign, f.MinExponent(), fields.Mantissa, true}
	}
	//
	significand := fields.Mantissa | (1 << f.MantissaBits)
	//
	return Finite{fields.Sign, int(fields.Exponent) - f.Bias, significand, false}
}

// Pack encodes a value.  Finite values must already be representable, i.e.
// have a significand of at most m+1 bits and an exponent within range.
func (f Format) Pack(v Value) Fields {
	switch v := v.(type) {
	case Zero:
		return Fields{v.Sign, 0, 0}
	case Infinity:
		return Fields{v.Sign, f.MaxExponent(), 0}
	case NaN:
		return Fields{v.Sign, f.MaxExponent(), v.Payload}
	case Finite:
		mask := uint64(1)<<f.MantissaBits - 1
		//
		if v.Significand>>f.MantissaBits == 0 {
			return Fields{v.Sign, 0, v.Significand & mask}
		}
		//
		return Fields{v.Sign, uint64(v.Exponent + f.Bias), v.Significand & mask}
	}
	//
	panic(fmt.Sprintf("unknown value %v", v))
}

// QuietNaN returns the canonical quiet NaN.
func (f Format) QuietNaN() NaN {
	return NaN{0, 1 << (f.MantissaBits - 1)}
}

// Exact computes the exact decimal value of a finite (or zero) value.
func (f Format) Exact(v Value) *apd.Decimal {
	switch v := v.(type) {
	case Zero:
		d := apd.New(0, 0)
		d.Negative = v.Sign == 1
		//
		return d
	case Finite:
		m := new(big.Int).SetUint64(v.Significand)
		if v.Sign == 1 {
			m.Neg(m)
		}
		//
		return exact.Scaled(m, v.Exponent-int(f.MantissaBits))
	}
	//
	return nil
}

// Text renders a value in decimal.  Finite values are rendered exactly.
func (f Format) Text(v Value) string {
	switch v := v.(type) {
	case Zero:
		if v.Sign == 1 {
			return "-0"
		}
		//
		return "0"
	case Infinity:
		if v.Sign == 1 {
			return "-Infinity"
		}
		//
		return "+Infinity"
	case NaN:
		return "NaN"
	}
	//
	return exact.Format(f.Exact(v))
}
