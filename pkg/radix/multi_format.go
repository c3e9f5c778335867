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
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// Field identifies one of the synchronised representations of an integer.
type Field uint8

const (
	// DECIMAL is a signed base-10 integer.
	DECIMAL Field = iota
	// BINARY is a signed base-2 integer.
	BINARY
	// OCTAL is a signed base-8 integer.
	OCTAL
	// HEX is a signed base-16 integer.
	HEX
	// ONES is a one's complement word.
	ONES
	// TWOS is a two's complement word.
	TWOS
	// BCD is signed packed binary-coded decimal.
	BCD
)

var fieldNames = []string{"decimal", "binary", "octal", "hex", "ones", "twos", "bcd"}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	//
	return fmt.Sprintf("field(%d)", uint8(f))
}

// ParseField converts the name of a field into a Field.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	//
	switch name {
	case "dec", "base10":
		return DECIMAL, nil
	case "bin", "base2":
		return BINARY, nil
	case "oct", "base8":
		return OCTAL, nil
	case "base16":
		return HEX, nil
	case "ones-complement", "1s":
		return ONES, nil
	case "twos-complement", "2s":
		return TWOS, nil
	}
	//
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	//
	return DECIMAL, diag.Invalid("unknown field \"%s\"", name)
}

// ByteOrder holds big-endian and little-endian views of a fixed-width
// encoding.
type ByteOrder struct {
	BigEndian    string `json:"big_endian"`
	LittleEndian string `json:"little_endian"`
}

// Views are every representation of a single integer at a given width.
type Views struct {
	Width   uint   `json:"width"`
	Active  Field  `json:"-"`
	Value   string `json:"value"`
	Decimal string `json:"decimal"`
	Binary  string `json:"binary"`
	Octal   string `json:"octal"`
	Hex     string `json:"hex"`
	Ones    string `json:"ones"`
	Twos    string `json:"twos"`
	BCD     string `json:"bcd"`
	// Set when the value lies outside the one's complement range.
	OnesOverflow bool `json:"ones_overflow"`
	// Set when the value lies outside the two's complement range.
	TwosOverflow bool `json:"twos_overflow"`
	// Set when the value is negative zero (from ONES or BCD input).
	NegativeZero bool `json:"negative_zero"`
	// Byte order views of the fixed-width encodings.
	TwosBytes ByteOrder   `json:"twos_bytes"`
	OnesBytes ByteOrder   `json:"ones_bytes"`
	HexBytes  ByteOrder   `json:"hex_bytes"`
	BCDBytes  ByteOrder   `json:"bcd_bytes"`
	Trace     trace.Trace `json:"trace"`
}

// Recompute derives the integer held by the active field from its raw text,
// and then recomputes every other representation of that integer.  Values
// outside the representable range of the signed encodings are flagged and
// shown modulo 2^width.
func Recompute(active Field, raw string, width uint) (Views, error) {
	var (
		rec     = trace.NewRecorder()
		views   = Views{Width: width, Active: active}
		val     *big.Int
		negZero bool
		err     error
	)
	//
	if err = CheckWidth(width); err != nil {
		return views, err
	}
	//
	rec.Section("Parse %s field", active)
	//
	switch active {
	case DECIMAL:
		val, err = ParseInteger(raw, 10)
	case BINARY:
		val, err = ParseInteger(raw, 2)
	case OCTAL:
		val, err = ParseInteger(raw, 8)
	case HEX:
		val, err = ParseInteger(raw, 16)
	case ONES:
		var word string
		//
		if word, err = bits.ParseWidth(raw, width, "one's complement word"); err == nil {
			val, negZero = DecodeOnes(word)
			rec.Step("sign bit %c: %s", word[0], onesExplanation(word))
		}
	case TWOS:
		var word string
		//
		if word, err = bits.ParseWidth(raw, width, "two's complement word"); err == nil {
			val = DecodeTwos(word)
			rec.Step("sign bit %c: %s", word[0], twosExplanation(word))
		}
	case BCD:
		val, negZero, err = DecodeBCD(raw)
	default:
		err = diag.Internal("unknown field %s", active)
	}
	//
	if err != nil {
		return views, err
	}
	//
	rec.Step("value = %s", val.String())
	//
	if negZero {
		rec.Note("negative zero")
	}
	//
	views.fill(val, negZero, rec)
	views.Trace = rec.Trace()
	//
	return views, nil
}

func (p *Views) fill(val *big.Int, negZero bool, rec *trace.Recorder) {
	var ones, twos string
	//
	p.Value = val.String()
	p.NegativeZero = negZero
	p.Decimal = val.String()
	p.Binary = FormatSigned(val, 2, p.Width)
	p.Octal = FormatSigned(val, 8, p.Width)
	p.Hex = FormatSigned(val, 16, p.Width)
	ones, p.OnesOverflow = EncodeOnes(val, p.Width, negZero)
	twos, p.TwosOverflow = EncodeTwos(val, p.Width)
	p.Ones = bits.Group(ones, 4)
	p.Twos = bits.Group(twos, 4)
	p.BCD = EncodeBCD(val, negZero)
	//
	rec.Section("Derived views (width %d)", p.Width)
	//
	if p.OnesOverflow {
		lo, hi := OnesRange(p.Width)
		rec.Note("one's complement overflow: %s outside [%s, %s], shown modulo 2^%d", val, lo, hi, p.Width)
	}
	//
	if p.TwosOverflow {
		lo, hi := TwosRange(p.Width)
		rec.Note("two's complement overflow: %s outside [%s, %s], shown modulo 2^%d", val, lo, hi, p.Width)
	}
	//
	p.TwosBytes = byteOrder(twos)
	p.OnesBytes = byteOrder(ones)
	p.HexBytes = ByteOrder{bits.Hex(twos), bits.Hex(bits.SwapBytes(twos))}
	p.BCDBytes = bcdByteOrder(p.BCD, p.Width)
	//
	rec.Step("two's complement %s (little-endian %s)", p.TwosBytes.BigEndian, p.TwosBytes.LittleEndian)
	rec.Step("one's complement %s", p.Ones)
	rec.Step("BCD %s", p.BCD)
}

func byteOrder(word string) ByteOrder {
	// Swapping pads to whole bytes, which is trimmed back off
	swapped := bits.SwapBytes(word)
	swapped = swapped[len(swapped)-len(word):]
	//
	return ByteOrder{bits.Group(word, 4), bits.Group(swapped, 4)}
}

// BCD encodings are padded to at least the width before swapping.
func bcdByteOrder(bcd string, width uint) ByteOrder {
	var (
		sign   string
		nibble = bits.Clean(bcd)
	)
	//
	if strings.HasPrefix(nibble, "-") {
		sign = "-"
		nibble = nibble[1:]
	}
	//
	views := byteOrder(bits.PadLeft(nibble, width))
	//
	return ByteOrder{sign + views.BigEndian, sign + views.LittleEndian}
}

func onesExplanation(word string) string {
	if word[0] == '0' {
		return "non-negative, value is the plain binary value"
	}
	//
	return fmt.Sprintf("negative, value is -(%s)", bits.Invert(word))
}

func twosExplanation(word string) string {
	if word[0] == '0' {
		return "non-negative, value is the plain binary value"
	}
	//
	return fmt.Sprintf("negative, value is %s - 2^%d", bits.ToBig(word), len(word))
}
