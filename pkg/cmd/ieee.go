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
	"fmt"
	"os"

	"github.com/consensys/go-bitlab/pkg/ieee754"
	"github.com/consensys/go-bitlab/pkg/util/exact"
	"github.com/consensys/go-bitlab/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var ieeeCmd = &cobra.Command{
	Use:   "ieee",
	Short: "encode, decode and add IEEE-754 floating point values.",
}

var ieeeEncodeCmd = &cobra.Command{
	Use:   "encode [flags] value",
	Short: "encode a decimal value (or inf / nan) as an IEEE-754 word.",
	Long: `Encode a decimal value as an IEEE-754 word.  The mantissa is
	truncated, and values outside the representable range become infinity
	or zero.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		cfg := getOutputConfig(cmd)
		f := getFormat(cmd)
		ctx := exact.NewContext(uint32(GetUint(cmd, "precision")))
		//
		res := run("ieee encode", func() (ieee754.EncodeResult, error) {
			return ieee754.Encode(args[0], f, ctx)
		})
		//
		sum := fieldSummary(res.Sign, res.Exponent, res.Mantissa, res.Hex, res.Class)
		sum.add("value", "%s", res.Value).add("exact", "%s", yesNo(res.Exact))
		//
		report(cfg, res, res.Trace, sum)
	},
}

var ieeeDecodeCmd = &cobra.Command{
	Use:   "decode [flags] word",
	Short: "decode an IEEE-754 word given in binary or hex.",
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		cfg := getOutputConfig(cmd)
		f := getFormat(cmd)
		kind := getInputKind(cmd, "binary")
		//
		res := run("ieee decode", func() (ieee754.DecodeResult, error) {
			return ieee754.Decode(args[0], kind, f)
		})
		//
		sum := fieldSummary(res.Sign, res.Exponent, res.Mantissa, res.Hex, res.Class)
		sum.add("value", "%s", res.Value).add("approx", "%s", res.Approx)
		//
		report(cfg, res, res.Trace, sum)
	},
}

var ieeeAddCmd = &cobra.Command{
	Use:   "add [flags] a b",
	Short: "add two IEEE-754 values using guard, round and sticky bits.",
	Long: `Add two IEEE-754 values, given as decimals or as encoded words.  The
	sum is rounded to nearest (ties to even) using guard, round and sticky
	bits.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 2)
		//
		cfg := getOutputConfig(cmd)
		f := getFormat(cmd)
		kind := getInputKind(cmd, "decimal")
		//
		res := run("ieee add", func() (ieee754.AddResult, error) {
			return ieee754.Add(args[0], args[1], f, kind)
		})
		//
		sum := fieldSummary(res.Sign, res.Exponent, res.Mantissa, res.Hex, res.Class)
		sum.add("value", "%s", res.Value).add("guard/round/sticky", "%d%d%d", res.Guard, res.Round, res.Sticky)
		//
		report(cfg, res, res.Trace, sum)
	},
}

var ieeeSpecialCmd = &cobra.Command{
	Use:   "special [flags] [kind]",
	Short: "show special IEEE-754 values (infinities, NaNs, extreme values).",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg   = getOutputConfig(cmd)
			f     = getFormat(cmd)
			kinds = ieee754.SpecialKinds()
		)
		//
		if len(args) > 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		} else if len(args) == 1 {
			kind, err := ieee754.ParseSpecialKind(args[0])
			if err != nil {
				fail(err)
			}
			//
			kinds = []ieee754.SpecialKind{kind}
		}
		//
		var results []ieee754.SpecialResult
		//
		for _, kind := range kinds {
			results = append(results, run("ieee special", func() (ieee754.SpecialResult, error) {
				return ieee754.Special(kind, f)
			}))
		}
		//
		if cfg.json {
			printJson(results)
			return
		} else if len(results) == 1 {
			res := results[0]
			sum := fieldSummary(res.Sign, res.Exponent, res.Mantissa, res.Hex, res.Class)
			report(cfg, res, res.Trace, sum.add("value", "%s", res.Value).add("approx", "%s", res.Approx))
			//
			return
		}
		//
		tp := termio.NewTablePrinter("kind", "hex", "class", "approx")
		//
		for _, res := range results {
			tp.AddRow(res.Kind.String(), res.Hex, res.Class.String(), res.Approx)
		}
		//
		tp.Print(os.Stdout)
	},
}

func getFormat(cmd *cobra.Command) ieee754.Format {
	f, err := ieee754.ParseFormat(GetString(cmd, "format"))
	if err != nil {
		fail(err)
	}
	//
	log.Debugf("using %s precision", f)
	//
	return f
}

func getInputKind(cmd *cobra.Command, otherwise string) ieee754.InputKind {
	text := GetString(cmd, "input")
	//
	if text == "" {
		text = otherwise
	}
	//
	kind, err := ieee754.ParseInputKind(text)
	if err != nil {
		fail(err)
	}
	//
	return kind
}

func fieldSummary(sign uint, exponent string, mantissa string, hex string, class ieee754.Class) *summary {
	sum := &summary{}
	sum.add("sign", "%d", sign).add("exponent", "%s", exponent).add("mantissa", "%s", mantissa)
	//
	return sum.add("hex", "%s", hex).add("class", "%s", class)
}

func init() {
	rootCmd.AddCommand(ieeeCmd)
	ieeeCmd.AddCommand(ieeeEncodeCmd)
	ieeeCmd.AddCommand(ieeeDecodeCmd)
	ieeeCmd.AddCommand(ieeeAddCmd)
	ieeeCmd.AddCommand(ieeeSpecialCmd)
	ieeeCmd.PersistentFlags().String("format", "single", "floating point format (single or double)")
	ieeeEncodeCmd.Flags().Uint("precision", exact.DefaultPrecision, "decimal working precision (digits)")
	ieeeDecodeCmd.Flags().String("input", "", "how the word is written (binary or hex)")
	ieeeAddCmd.Flags().String("input", "", "how operands are written (decimal, binary or hex)")
}
