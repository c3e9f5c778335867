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
	"strings"

	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// Format describes the layout of a binary interchange format.
type Format struct {
	Name         string `json:"name"`
	ExponentBits uint   `json:"exponent_bits"`
	MantissaBits uint   `json:"mantissa_bits"`
	Bias         int    `json:"bias"`
}

// SINGLE is the 32-bit binary32 format.
var SINGLE = Format{"single", 8, 23, 127}

// DOUBLE is the 64-bit binary64 format.
var DOUBLE = Format{"double", 11, 52, 1023}

// ParseFormat converts a textual precision (e.g. "single", "32", "Double
// (64-bit)") into a Format.  Single precision is the default.
func ParseFormat(text string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(text))
	//
	switch {
	case name == "":
		return SINGLE, nil
	case strings.Contains(name, "single"), strings.Contains(name, "32"), name == "float", name == "f":
		return SINGLE, nil
	case strings.Contains(name, "double"), strings.Contains(name, "64"), name == "d":
		return DOUBLE, nil
	}
	//
	return Format{}, diag.Invalid("unknown precision \"%s\" (expected single or double)", text)
}

// Width returns the total number of bits in this format.
func (f Format) Width() uint {
	return 1 + f.ExponentBits + f.MantissaBits
}

// MaxExponent returns the all-ones biased exponent reserved for infinities and
// NaNs.
func (f Format) MaxExponent() uint64 {
	return (1 << f.ExponentBits) - 1
}

// MinExponent returns the effective exponent of subnormal values, 1-bias.
func (f Format) MinExponent() int {
	return 1 - f.Bias
}

func (f Format) String() string {
	return fmt.Sprintf("%s (%d-bit)", f.Name, f.Width())
}

// Fields are the three raw fields of an encoded value.
type Fields struct {
	Sign     uint   `json:"sign"`
	Exponent uint64 `json:"exponent"`
	Mantissa uint64 `json:"mantissa"`
}

// Split separates an encoded word into its fields.  The word must have exactly
// the width of this format.
func (f Format) Split(word string) Fields {
	return Fields{
		Sign:     uint(word[0] - '0'),
		Exponent: bits.ToUint(word[1 : 1+f.ExponentBits]),
		Mantissa: bits.ToUint(word[1+f.ExponentBits:]),
	}
}

// Join renders fields as an encoded word.
func (f Format) Join(fields Fields) string {
	return fmt.Sprintf("%d%s%s", fields.Sign, f.ExponentString(fields), f.MantissaString(fields))
}

// ExponentString renders the exponent field in binary.
func (f Format) ExponentString(fields Fields) string {
	return bits.FromUint(fields.Exponent, f.ExponentBits)
}

// MantissaString renders the mantissa field in binary.
func (f Format) MantissaString(fields Fields) string {
	return bits.FromUint(fields.Mantissa, f.MantissaBits)
}

// InputKind determines how an encoded operand is written.
type InputKind uint8

const (
	// BINARY operands are written as bit strings of the format width.
	BINARY InputKind = iota
	// HEX operands are written in hexadecimal.
	HEX
	// DECIMAL operands are written in decimal and encoded first.
	DECIMAL
)

func (k InputKind) String() string {
	switch k {
	case BINARY:
		return "binary"
	case HEX:
		return "hex"
	}
	//
	return "decimal"
}

// ParseInputKind converts the name of an input kind into an InputKind.
func ParseInputKind(text string) (InputKind, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "binary", "bin", "bits", "":
		return BINARY, nil
	case "hex", "hexadecimal":
		return HEX, nil
	case "decimal", "dec":
		return DECIMAL, nil
	}
	//
	return BINARY, diag.Invalid("unknown input type \"%s\"", text)
}

// ParseWord parses an encoded word written in binary or hexadecimal.
func (f Format) ParseWord(text string, kind InputKind) (string, error) {
	switch kind {
	case BINARY:
		return bits.ParseWidth(text, f.Width(), "encoded value")
	case HEX:
		digits := strings.TrimPrefix(strings.TrimPrefix(bits.Clean(text), "0x"), "0X")
		if uint(len(digits)) > f.Width()/4 {
			return "", diag.Invalid("%s values have at most %d hex digits", f.Name, f.Width()/4)
		}
		//
		return bits.FromHex(digits, f.Width())
	}
	//
	return "", diag.Internal("%s is not an encoded input kind", kind)
}
