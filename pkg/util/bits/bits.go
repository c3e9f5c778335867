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
package bits

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// Clean strips whitespace and the common digit separators ('_' and ',') from a
// bit string.  No validation is performed.
func Clean(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '_' || r == ',' {
			return -1
		}
		//
		return r
	}, text)
}

// Validate checks that a (cleaned) string is a non-empty sequence of binary
// digits.  The name identifies the input in any error message.
func Validate(bits string, name string) error {
	if bits == "" {
		return diag.Invalid("%s is empty", name)
	}
	//
	for i, c := range bits {
		if c != '0' && c != '1' {
			return diag.Invalid("%s contains non-binary character '%c' at position %d", name, c, i+1)
		}
	}
	//
	return nil
}

// Parse cleans and then validates a bit string.
func Parse(text string, name string) (string, error) {
	bits := Clean(text)
	if err := Validate(bits, name); err != nil {
		return "", err
	}
	//
	return bits, nil
}

// ParseWidth cleans and validates a bit string, additionally checking it has
// exactly the given width.
func ParseWidth(text string, width uint, name string) (string, error) {
	bits, err := Parse(text, name)
	if err != nil {
		return "", err
	}
	//
	if uint(len(bits)) != width {
		return "", diag.Invalid("%s must have exactly %d bits (got %d)", name, width, len(bits))
	}
	//
	return bits, nil
}

// IsBinary checks whether a string consists only of '0' and '1' characters.
// The empty string is not binary.
func IsBinary(text string) bool {
	return text != "" && strings.Trim(text, "01") == ""
}

// ToBig interprets a bit string as an unsigned integer (MSB first).
func ToBig(bits string) *big.Int {
	var val big.Int
	//
	if bits == "" {
		return &val
	}
	//
	val.SetString(bits, 2)
	//
	return &val
}

// ToUint interprets a bit string of at most 64 bits as an unsigned integer.
func ToUint(bits string) uint64 {
	var val uint64
	//
	for _, c := range bits {
		val = (val << 1) | uint64(c-'0')
	}
	//
	return val
}

// FromBig renders a non-negative integer as a bit string of exactly the given
// width.  Higher bits which do not fit are discarded.
func FromBig(val *big.Int, width uint) string {
	var builder strings.Builder
	//
	for i := int(width) - 1; i >= 0; i-- {
		builder.WriteByte(byte('0' + val.Bit(i)))
	}
	//
	return builder.String()
}

// FromUint renders an unsigned integer as a bit string of exactly the given
// width.
func FromUint(val uint64, width uint) string {
	var buf = make([]byte, width)
	//
	for i := range buf {
		shift := width - 1 - uint(i)
		if shift < 64 && (val>>shift)&1 == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	//
	return string(buf)
}

// PadLeft extends a bit string with leading zeros up to the given width.
// Strings already at least that long are returned as is.
func PadLeft(bits string, width uint) string {
	if uint(len(bits)) >= width {
		return bits
	}
	//
	return strings.Repeat("0", int(width)-len(bits)) + bits
}

// TrimLeading removes leading zeros, leaving at least one digit.
func TrimLeading(bits string) string {
	trimmed := strings.TrimLeft(bits, "0")
	if trimmed == "" {
		return "0"
	}
	//
	return trimmed
}

// Hex renders a bit string in upper-case hexadecimal, padding on the left to a
// whole number of nibbles.
func Hex(bits string) string {
	return radixString(bits, 4)
}

// Octal renders a bit string in octal, padding on the left to a whole number of
// three-bit groups.
func Octal(bits string) string {
	return radixString(bits, 3)
}

func radixString(bits string, group uint) string {
	var (
		n       = uint(len(bits))
		padded  = PadLeft(bits, ((n+group-1)/group)*group)
		builder strings.Builder
	)
	//
	for i := 0; i < len(padded); i += int(group) {
		digit := ToUint(padded[i : i+int(group)])
		builder.WriteString(strings.ToUpper(fmt.Sprintf("%x", digit)))
	}
	//
	return builder.String()
}

// FromHex converts a string of hexadecimal digits (with an optional 0x prefix)
// into a bit string of exactly the given width.  Digits beyond the width must
// all be zero.
func FromHex(text string, width uint) (string, error) {
	text = strings.TrimPrefix(strings.TrimPrefix(Clean(text), "0x"), "0X")
	//
	if text == "" {
		return "", diag.Invalid("hex input is empty")
	}
	//
	var builder strings.Builder
	//
	for i, c := range text {
		var digit uint64
		//
		switch {
		case c >= '0' && c <= '9':
			digit = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			digit = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			digit = uint64(c-'A') + 10
		default:
			return "", diag.Invalid("hex input contains invalid character '%c' at position %d", c, i+1)
		}
		//
		builder.WriteString(FromUint(digit, 4))
	}
	//
	bits := builder.String()
	//
	if uint(len(bits)) > width {
		excess := bits[:uint(len(bits))-width]
		if strings.Contains(excess, "1") {
			return "", diag.Invalid("hex input does not fit in %d bits", width)
		}
		//
		bits = bits[uint(len(bits))-width:]
	}
	//
	return PadLeft(bits, width), nil
}

// Xor computes the bitwise exclusive-or of two bit strings of equal length.
func Xor(lhs string, rhs string) string {
	if len(lhs) != len(rhs) {
		panic(fmt.Sprintf("xor of mismatched widths (%d vs %d)", len(lhs), len(rhs)))
	}
	//
	buf := make([]byte, len(lhs))
	//
	for i := range buf {
		if lhs[i] == rhs[i] {
			buf[i] = '0'
		} else {
			buf[i] = '1'
		}
	}
	//
	return string(buf)
}

// Invert flips every bit of a bit string.
func Invert(bits string) string {
	buf := []byte(bits)
	//
	for i, c := range buf {
		if c == '0' {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	//
	return string(buf)
}

// Flip inverts the bit at a given (0-based) index.
func Flip(bits string, index int) string {
	buf := []byte(bits)
	buf[index] ^= 1
	//
	return string(buf)
}

// PopCount returns the number of set bits.
func PopCount(bits string) uint {
	return uint(strings.Count(bits, "1"))
}

// Group splits a string into groups of n characters separated by a single
// space, aligned from the right (i.e. the leftmost group may be short).
func Group(digits string, n uint) string {
	if n == 0 || uint(len(digits)) <= n {
		return digits
	}
	//
	var (
		builder strings.Builder
		head    = uint(len(digits)) % n
	)
	//
	if head > 0 {
		builder.WriteString(digits[:head])
	}
	//
	for i := head; i < uint(len(digits)); i += n {
		if builder.Len() > 0 {
			builder.WriteByte(' ')
		}
		//
		builder.WriteString(digits[i : i+n])
	}
	//
	return builder.String()
}

// GroupFraction splits a string into groups of n characters aligned from the
// left, as used for digits following the binary point.
func GroupFraction(digits string, n uint) string {
	if n == 0 || uint(len(digits)) <= n {
		return digits
	}
	//
	var parts []string
	//
	for i := uint(0); i < uint(len(digits)); i += n {
		parts = append(parts, digits[i:min(i+n, uint(len(digits)))])
	}
	//
	return strings.Join(parts, " ")
}

// SwapBytes reverses the byte order of a bit string, after padding it on the
// left to a whole number of bytes.  This converts between big-endian and
// little-endian views of the same value.
func SwapBytes(bits string) string {
	var (
		n      = uint(len(bits))
		padded = PadLeft(bits, ((n+7)/8)*8)
		count  = len(padded) / 8
		parts  = make([]string, count)
	)
	//
	for i := 0; i < count; i++ {
		parts[count-1-i] = padded[i*8 : (i+1)*8]
	}
	//
	return strings.Join(parts, "")
}

// IsPowerOfTwo checks whether a given (positive) integer is a power of two.
func IsPowerOfTwo(n uint) bool {
	return n != 0 && n&(n-1) == 0
}
