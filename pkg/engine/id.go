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
	"fmt"
	"strings"

	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// ID identifies one of the available engines.
type ID uint8

const (
	// DECIMAL_TO_BINARY converts a decimal value into (fractional) binary.
	DECIMAL_TO_BINARY ID = iota
	// BINARY_TO_DECIMAL converts a (fractional) binary value into decimal.
	BINARY_TO_DECIMAL
	// CONVERT recomputes every integer view from one edited field.
	CONVERT
	// BCD_ADD adds two BCD operands.
	BCD_ADD
	// BCD_SUB subtracts two BCD operands.
	BCD_SUB
	// TWOS_ADD adds two fixed width two's complement operands.
	TWOS_ADD
	// TWOS_SUB subtracts two fixed width two's complement operands.
	TWOS_SUB
	// BINARY_ADD adds two unsigned binary operands.
	BINARY_ADD
	// BINARY_SUB subtracts two unsigned binary operands.
	BINARY_SUB
	// BINARY_MUL multiplies two unsigned binary operands.
	BINARY_MUL
	// BINARY_DIV divides two unsigned binary operands.
	BINARY_DIV
	// IEEE_ENCODE encodes a decimal value as an IEEE-754 word.
	IEEE_ENCODE
	// IEEE_DECODE decodes an IEEE-754 word.
	IEEE_DECODE
	// IEEE_ADD adds two IEEE-754 values.
	IEEE_ADD
	// IEEE_SPECIAL constructs one of the special IEEE-754 values.
	IEEE_SPECIAL
	// CRC_ENCODE appends CRC check bits to a message.
	CRC_ENCODE
	// CRC_DECODE checks (and optionally corrects) a received CRC codeword.
	CRC_DECODE
	// HAMMING_ENCODE encodes data bits using a Hamming code.
	HAMMING_ENCODE
	// HAMMING_DECODE checks and corrects a Hamming codeword.
	HAMMING_DECODE
	// GRAY_ENCODE converts binary (or decimal) into Gray code.
	GRAY_ENCODE
	// GRAY_DECODE converts Gray code into binary.
	GRAY_DECODE
	// KMAP minimises a boolean function using a Karnaugh map.
	KMAP
)

var names = []string{
	"dec2bin", "bin2dec", "convert", "bcd-add", "bcd-sub", "twos-add", "twos-sub", "binary-add", "binary-sub",
	"binary-mul", "binary-div", "ieee-encode", "ieee-decode", "ieee-add", "ieee-special", "crc-encode",
	"crc-decode", "hamming-encode", "hamming-decode", "gray-encode", "gray-decode", "kmap",
}

func (id ID) String() string {
	if int(id) < len(names) {
		return names[id]
	}
	//
	return fmt.Sprintf("engine(%d)", uint8(id))
}

// MarshalText renders an ID by name.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText reads an ID by name.
func (id *ID) UnmarshalText(text []byte) error {
	val, err := ParseID(string(text))
	if err != nil {
		return err
	}
	//
	*id = val
	//
	return nil
}

// ParseID converts the name of an engine into its ID.
func ParseID(name string) (ID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	//
	for i, n := range names {
		if n == name {
			return ID(i), nil
		}
	}
	//
	return 0, diag.Invalid("unknown tool \"%s\"", name)
}
