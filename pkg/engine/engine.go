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
	"strings"

	"github.com/consensys/go-bitlab/pkg/arith"
	"github.com/consensys/go-bitlab/pkg/coding/crc"
	"github.com/consensys/go-bitlab/pkg/coding/hamming"
	"github.com/consensys/go-bitlab/pkg/gray"
	"github.com/consensys/go-bitlab/pkg/ieee754"
	"github.com/consensys/go-bitlab/pkg/kmap"
	"github.com/consensys/go-bitlab/pkg/radix"
	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/consensys/go-bitlab/pkg/util/exact"
	"github.com/segmentio/encoding/json"
)

// DEFAULT_WIDTH is the word width used by fixed width engines when none is
// given.
const DEFAULT_WIDTH = 8

// Descriptor describes an engine and how to run it.
type Descriptor struct {
	ID      ID       `json:"id"`
	Summary string   `json:"summary"`
	Params  []string `json:"params"`
	run     func(json.RawMessage) (any, error)
}

// Descriptors returns the catalogue of all engines, in order of ID.
func Descriptors() []Descriptor {
	return descriptors[:]
}

// Lookup returns the descriptor for a given engine.
func Lookup(id ID) Descriptor {
	return descriptors[id]
}

// Parameters for engines which take a single value.
type valueParams struct {
	Value     string `json:"value"`
	FracBits  *uint  `json:"frac_bits"`
	Rounding  string `json:"rounding"`
	Precision uint32 `json:"precision"`
}

// Parameters for engines which take two operands.
type binaryParams struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Width uint   `json:"width"`
}

type convertParams struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Width uint   `json:"width"`
}

type ieeeParams struct {
	Value     string `json:"value"`
	A         string `json:"a"`
	B         string `json:"b"`
	Kind      string `json:"kind"`
	Input     string `json:"input"`
	Format    string `json:"format"`
	Precision uint32 `json:"precision"`
}

type crcParams struct {
	Message   string `json:"message"`
	Received  string `json:"received"`
	Generator string `json:"generator"`
	Fix       bool   `json:"fix"`
}

type hammingParams struct {
	Data     string `json:"data"`
	Codeword string `json:"codeword"`
}

var descriptors = [...]Descriptor{
	{DECIMAL_TO_BINARY, "decimal to (fractional) binary", []string{"value", "frac_bits", "rounding", "precision"},
		handler(func(p valueParams) (any, error) {
			mode, err := radix.ParseRounding(p.Rounding)
			if err != nil {
				return nil, err
			}
			//
			fracBits := radix.InferFracBits(p.Value, radix.DEFAULT_FRACTION_BITS)
			//
			if p.FracBits != nil {
				fracBits = *p.FracBits
			}
			//
			return radix.DecimalToBinary(p.Value, fracBits, mode, exact.NewContext(p.Precision))
		})},
	{BINARY_TO_DECIMAL, "(fractional) binary to decimal", []string{"value", "precision"},
		handler(func(p valueParams) (any, error) {
			return radix.BinaryToDecimal(p.Value, exact.NewContext(p.Precision))
		})},
	{CONVERT, "decimal, binary, octal, hex, one's and two's complement and BCD views",
		[]string{"field", "value", "width"},
		handler(func(p convertParams) (any, error) {
			field, err := radix.ParseField(p.Field)
			if err != nil {
				return nil, err
			}
			//
			return radix.Recompute(field, p.Value, widthOf(p.Width))
		})},
	{BCD_ADD, "BCD addition", []string{"a", "b"},
		handler(func(p binaryParams) (any, error) { return arith.BcdAdd(p.A, p.B) })},
	{BCD_SUB, "BCD subtraction", []string{"a", "b"},
		handler(func(p binaryParams) (any, error) { return arith.BcdSub(p.A, p.B) })},
	{TWOS_ADD, "two's complement addition", []string{"a", "b", "width"},
		handler(func(p binaryParams) (any, error) { return arith.TwosAdd(p.A, p.B, widthOf(p.Width)) })},
	{TWOS_SUB, "two's complement subtraction", []string{"a", "b", "width"},
		handler(func(p binaryParams) (any, error) { return arith.TwosSub(p.A, p.B, widthOf(p.Width)) })},
	{BINARY_ADD, "unsigned binary addition", []string{"a", "b"},
		handler(func(p binaryParams) (any, error) { return arith.Add(p.A, p.B) })},
	{BINARY_SUB, "unsigned binary subtraction", []string{"a", "b"},
		handler(func(p binaryParams) (any, error) { return arith.Sub(p.A, p.B) })},
	{BINARY_MUL, "unsigned binary multiplication", []string{"a", "b"},
		handler(func(p binaryParams) (any, error) { return arith.Mul(p.A, p.B) })},
	{BINARY_DIV, "unsigned binary division", []string{"a", "b"},
		handler(func(p binaryParams) (any, error) { return arith.Div(p.A, p.B) })},
	{IEEE_ENCODE, "decimal to IEEE-754", []string{"value", "format", "precision"},
		handler(func(p ieeeParams) (any, error) {
			f, err := ieee754.ParseFormat(p.Format)
			if err != nil {
				return nil, err
			}
			//
			return ieee754.Encode(p.Value, f, exact.NewContext(p.Precision))
		})},
	{IEEE_DECODE, "IEEE-754 to decimal", []string{"value", "input", "format"},
		handler(func(p ieeeParams) (any, error) {
			f, kind, err := ieeeOptions(p, ieee754.BINARY)
			if err != nil {
				return nil, err
			}
			//
			return ieee754.Decode(p.Value, kind, f)
		})},
	{IEEE_ADD, "IEEE-754 addition", []string{"a", "b", "input", "format"},
		handler(func(p ieeeParams) (any, error) {
			f, kind, err := ieeeOptions(p, ieee754.DECIMAL)
			if err != nil {
				return nil, err
			}
			//
			return ieee754.Add(p.A, p.B, f, kind)
		})},
	{IEEE_SPECIAL, "special IEEE-754 values", []string{"kind", "format"},
		handler(func(p ieeeParams) (any, error) {
			f, err := ieee754.ParseFormat(p.Format)
			if err != nil {
				return nil, err
			}
			//
			kind, err := ieee754.ParseSpecialKind(p.Kind)
			if err != nil {
				return nil, err
			}
			//
			return ieee754.Special(kind, f)
		})},
	{CRC_ENCODE, "CRC encoding", []string{"message", "generator"},
		handler(func(p crcParams) (any, error) { return crc.Encode(p.Message, p.Generator) })},
	{CRC_DECODE, "CRC checking and single bit correction", []string{"received", "generator", "fix"},
		handler(func(p crcParams) (any, error) { return crc.Decode(p.Received, p.Generator, p.Fix) })},
	{HAMMING_ENCODE, "Hamming encoding", []string{"data"},
		handler(func(p hammingParams) (any, error) { return hamming.Encode(p.Data) })},
	{HAMMING_DECODE, "Hamming decoding and single bit correction", []string{"codeword"},
		handler(func(p hammingParams) (any, error) { return hamming.Decode(p.Codeword) })},
	{GRAY_ENCODE, "binary (or decimal) to Gray code", []string{"value"},
		handler(func(p valueParams) (any, error) { return gray.Encode(p.Value) })},
	{GRAY_DECODE, "Gray code to binary", []string{"value"},
		handler(func(p valueParams) (any, error) { return gray.Decode(p.Value) })},
	{KMAP, "Karnaugh map minimisation", []string{"expression", "minterms", "dont_cares", "variables", "order"},
		handler(func(p kmap.Input) (any, error) { return kmap.Minimize(p) })},
}

// Construct a runner which decodes parameters of a given type.  Absent
// parameters leave every field at its default.
func handler[P any](fn func(P) (any, error)) func(json.RawMessage) (any, error) {
	return func(raw json.RawMessage) (any, error) {
		var params P
		//
		if len(strings.TrimSpace(string(raw))) != 0 {
			if err := json.Unmarshal(raw, &params); err != nil {
				return nil, diag.Invalid("malformed parameters (%s)", err.Error())
			}
		}
		//
		result, err := fn(params)
		if err != nil {
			return nil, err
		}
		//
		return result, nil
	}
}

func ieeeOptions(p ieeeParams, defaultKind ieee754.InputKind) (ieee754.Format, ieee754.InputKind, error) {
	f, err := ieee754.ParseFormat(p.Format)
	if err != nil {
		return f, defaultKind, err
	}
	//
	if strings.TrimSpace(p.Input) == "" {
		return f, defaultKind, nil
	}
	//
	kind, err := ieee754.ParseInputKind(p.Input)
	//
	return f, kind, err
}

func widthOf(width uint) uint {
	if width == 0 {
		return DEFAULT_WIDTH
	}
	//
	return width
}
