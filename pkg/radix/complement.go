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
	"math/big"
	"strings"

	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// MIN_WIDTH and MAX_WIDTH bound the word size of signed encodings.
const (
	MIN_WIDTH = 2
	MAX_WIDTH = 128
)

// CheckWidth ensures a word width is supported.
func CheckWidth(width uint) error {
	if width < MIN_WIDTH || width > MAX_WIDTH {
		return diag.Range("bit width must be between %d and %d (got %d)", MIN_WIDTH, MAX_WIDTH, width)
	}
	//
	return nil
}

// TwosRange returns the smallest and largest values representable in two's
// complement with a given width.
func TwosRange(width uint) (*big.Int, *big.Int) {
	half := new(big.Int).Lsh(big.NewInt(1), width-1)
	//
	return new(big.Int).Neg(half), new(big.Int).Sub(half, big.NewInt(1))
}

// OnesRange returns the smallest and largest values representable in one's
// complement with a given width.
func OnesRange(width uint) (*big.Int, *big.Int) {
	_, hi := TwosRange(width)
	//
	return new(big.Int).Neg(hi), hi
}

func inRange(val *big.Int, lo *big.Int, hi *big.Int) bool {
	return val.Cmp(lo) >= 0 && val.Cmp(hi) <= 0
}

// EncodeTwos encodes a value in two's complement.  Values out of range are
// flagged, and encoded modulo 2^width.
func EncodeTwos(val *big.Int, width uint) (string, bool) {
	lo, hi := TwosRange(width)
	modulus := new(big.Int).Lsh(big.NewInt(1), width)
	// Euclidean modulus is never negative
	wrapped := new(big.Int).Mod(val, modulus)
	//
	return bits.FromBig(wrapped, width), !inRange(val, lo, hi)
}

// DecodeTwos decodes a two's complement bit string: its unsigned value, less
// 2^width when the sign bit is set.
func DecodeTwos(word string) *big.Int {
	val := bits.ToBig(word)
	//
	if strings.HasPrefix(word, "1") {
		val.Sub(val, new(big.Int).Lsh(big.NewInt(1), uint(len(word))))
	}
	//
	return val
}

// EncodeOnes encodes a value in one's complement, where negative values are
// the bitwise inversion of their magnitude.  Zero is encoded as all ones when
// negative zero is requested.  Values out of range are flagged, and their
// magnitude is taken modulo 2^width.
func EncodeOnes(val *big.Int, width uint, negZero bool) (string, bool) {
	var (
		lo, hi   = OnesRange(width)
		overflow = !inRange(val, lo, hi)
		modulus  = new(big.Int).Lsh(big.NewInt(1), width)
		mag      = new(big.Int).Abs(val)
	)
	//
	mag.Mod(mag, modulus)
	word := bits.FromBig(mag, width)
	//
	if val.Sign() < 0 || (val.Sign() == 0 && negZero) {
		word = bits.Invert(word)
	}
	//
	return word, overflow
}

// DecodeOnes decodes a one's complement bit string.  A set sign bit means the
// value is the negated magnitude of the inverted word, and the all-ones word
// is reported as negative zero.
func DecodeOnes(word string) (*big.Int, bool) {
	if !strings.HasPrefix(word, "1") {
		return bits.ToBig(word), false
	}
	//
	mag := bits.ToBig(bits.Invert(word))
	//
	return mag.Neg(mag), mag.Sign() == 0
}

// ParseInteger parses a signed integer written in a given base (2, 8, 10 or
// 16).  The conventional prefix for the base ("0b", "0o", "0x") is permitted,
// and whitespace or '_' separators are ignored.
func ParseInteger(text string, base int) (*big.Int, error) {
	var (
		clean    = bits.Clean(text)
		negative = strings.HasPrefix(clean, "-")
	)
	//
	clean = strings.TrimPrefix(strings.TrimPrefix(clean, "-"), "+")
	//
	if prefix := basePrefix(base); prefix != "" && len(clean) > 2 && strings.EqualFold(clean[:2], prefix) {
		clean = clean[2:]
	}
	//
	if clean == "" {
		return nil, diag.Invalid("base-%d input has no digits", base)
	}
	//
	val, ok := new(big.Int).SetString(clean, base)
	if !ok {
		return nil, diag.Invalid("\"%s\" is not a valid base-%d integer", text, base)
	}
	//
	if negative {
		val.Neg(val)
	}
	//
	return val, nil
}

func basePrefix(base int) string {
	switch base {
	case 2:
		return "0b"
	case 8:
		return "0o"
	case 16:
		return "0x"
	}
	//
	return ""
}

// FormatSigned renders a value in base 2, 8 or 16 as a sign followed by its
// magnitude, padded on the left to as many digits as the width needs.  Binary
// digits are grouped in nibbles.
func FormatSigned(val *big.Int, base int, width uint) string {
	var (
		mag    = new(big.Int).Abs(val)
		digits = strings.ToUpper(mag.Text(base))
		pad    uint
		sign   string
	)
	//
	switch base {
	case 2:
		pad = width
	case 8:
		pad = (width + 2) / 3
	case 16:
		pad = (width + 3) / 4
	}
	//
	if uint(len(digits)) < pad {
		digits = strings.Repeat("0", int(pad)-len(digits)) + digits
	}
	//
	if base == 2 {
		digits = bits.Group(digits, 4)
	}
	//
	if val.Sign() < 0 {
		sign = "-"
	}
	//
	return sign + digits
}
