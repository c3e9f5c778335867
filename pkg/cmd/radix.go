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
package cmd

import (
	"github.com/consensys/go-bitlab/pkg/radix"
	"github.com/consensys/go-bitlab/pkg/util/exact"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dec2binCmd = &cobra.Command{
	Use:   "dec2bin [flags] value",
	Short: "convert a decimal value into (fractional) binary.",
	Long: `Convert a decimal value (e.g. -13.625) into binary.  The integer part
	is repeatedly halved, and the fractional part repeatedly doubled.  When
	the number of fractional bits is not given, integers use none and other
	values use 16.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		cfg := getOutputConfig(cmd)
		fracBits := radix.InferFracBits(args[0], radix.DEFAULT_FRACTION_BITS)
		//
		if cmd.Flags().Changed("frac-bits") {
			fracBits = GetUint(cmd, "frac-bits")
		}
		//
		mode, err := radix.ParseRounding(GetString(cmd, "rounding"))
		if err != nil {
			fail(err)
		}
		//
		ctx := exact.NewContext(uint32(GetUint(cmd, "precision")))
		log.Debugf("converting %s with %d fraction bits (%s, precision %d)", args[0], fracBits, mode, ctx.Precision)
		//
		res := run("dec2bin", func() (radix.BinaryResult, error) {
			return radix.DecimalToBinary(args[0], fracBits, mode, ctx)
		})
		//
		sum := &summary{}
		sum.add("binary", "%s", res.Bits).add("grouped", "%s", res.Grouped).add("value", "%s", res.Value)
		sum.add("exact", "%s", yesNo(res.Exact))
		//
		if !res.Exact {
			sum.add("difference", "%s", res.Difference)
		}
		//
		report(cfg, res, res.Trace, sum)
	},
}

var bin2decCmd = &cobra.Command{
	Use:   "bin2dec [flags] value",
	Short: "convert a (fractional) binary value into decimal.",
	Long: `Convert a binary value (e.g. -1101.101) into decimal by summing the
	powers of two for each set bit.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		cfg := getOutputConfig(cmd)
		ctx := exact.NewContext(uint32(GetUint(cmd, "precision")))
		//
		res := run("bin2dec", func() (radix.DecimalResult, error) {
			return radix.BinaryToDecimal(args[0], ctx)
		})
		//
		report(cfg, res, res.Trace, (&summary{}).add("decimal", "%s", res.Value))
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] value",
	Short: "show an integer in every supported representation.",
	Long: `Show an integer in decimal, binary, octal, hex, one's complement, two's
	complement and BCD, as well as the byte order views of each.  The value
	is read according to the given field, and fixed width encodings use
	the given width.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		cfg := getOutputConfig(cmd)
		width := GetUint(cmd, "width")
		//
		field, err := radix.ParseField(GetString(cmd, "field"))
		if err != nil {
			fail(err)
		}
		//
		log.Debugf("recomputing from %s field at width %d", field, width)
		//
		res := run("convert", func() (radix.Views, error) {
			return radix.Recompute(field, args[0], width)
		})
		//
		sum := &summary{}
		sum.add("decimal", "%s", res.Decimal).add("binary", "%s", res.Binary).add("octal", "%s", res.Octal)
		sum.add("hex", "%s", res.Hex).add("ones", "%s", res.Ones).add("twos", "%s", res.Twos).add("bcd", "%s", res.BCD)
		sum.add("twos (little endian)", "%s", res.TwosBytes.LittleEndian)
		//
		if res.TwosOverflow || res.OnesOverflow {
			sum.add("overflow", "ones %s, twos %s", yesNo(res.OnesOverflow), yesNo(res.TwosOverflow))
		}
		//
		report(cfg, res, res.Trace, sum)
	},
}

func init() {
	rootCmd.AddCommand(dec2binCmd)
	rootCmd.AddCommand(bin2decCmd)
	rootCmd.AddCommand(convertCmd)
	dec2binCmd.Flags().UintP("frac-bits", "f", radix.DEFAULT_FRACTION_BITS, "number of fractional bits")
	dec2binCmd.Flags().String("rounding", "truncate", "rounding mode (truncate or nearest-even)")
	dec2binCmd.Flags().Uint("precision", exact.DefaultPrecision, "decimal working precision (digits)")
	bin2decCmd.Flags().Uint("precision", exact.DefaultPrecision, "decimal working precision (digits)")
	convertCmd.Flags().String("field", "decimal", "representation of the given value")
	convertCmd.Flags().UintP("width", "w", 8, "bit width of fixed width encodings")
}
