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
	"github.com/consensys/go-bitlab/pkg/arith"
	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/spf13/cobra"
)

var bcdCmd = &cobra.Command{
	Use:   "bcd",
	Short: "add or subtract binary coded decimal values.",
}

var twosCmd = &cobra.Command{
	Use:   "twos",
	Short: "add or subtract fixed width two's complement values.",
	Long: `Add or subtract fixed width two's complement values, reporting the
	carries into and out of the most significant bit and any overflow.
	Operands can be decimal, 0x.. or 0b.. values, or raw bits.`,
}

var binaryCmd = &cobra.Command{
	Use:   "binary",
	Short: "unsigned binary arithmetic.",
}

// Construct a command for a binary operation on two operands.
func binaryOpCmd[R any](name string, short string, op func(cmd *cobra.Command, a, b string) (R, error),
	summarise func(R) (trace.Trace, *summary)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [flags] a b",
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			checkArgs(cmd, args, 2)
			//
			cfg := getOutputConfig(cmd)
			res := run(cmd.Parent().Name()+" "+name, func() (R, error) {
				return op(cmd, args[0], args[1])
			})
			//
			tr, sum := summarise(res)
			report(cfg, res, tr, sum)
		},
	}
}

func bcdSummary(res arith.BcdResult) (trace.Trace, *summary) {
	return res.Trace, (&summary{}).add("result", "%s", res.Value).add("bcd", "%s", res.Bits)
}

func twosSummary(res arith.TwosResult) (trace.Trace, *summary) {
	sum := (&summary{}).add("result", "%s", res.Bits).add("value", "%s", res.Value)
	sum.add("carry into msb", "%d", res.CarryIntoMSB).add("carry out of msb", "%d", res.CarryOutOfMSB)
	//
	if res.Overflow {
		return res.Trace, sum.add("overflow", "%s", res.OverflowKind)
	}
	//
	return res.Trace, sum.add("overflow", "no")
}

func unsignedSummary(res arith.UnsignedResult) (trace.Trace, *summary) {
	sum := (&summary{}).add("result", "%s", res.Bits).add("value", "%s", res.Value)
	//
	if res.Remainder != "" {
		sum.add("remainder", "%s", res.Remainder)
	}
	//
	return res.Trace, sum
}

func bcdOp(fn func(a, b string) (arith.BcdResult, error)) func(*cobra.Command, string, string) (arith.BcdResult, error) {
	return func(_ *cobra.Command, a, b string) (arith.BcdResult, error) { return fn(a, b) }
}

func twosOp(fn func(a, b string, width uint) (arith.TwosResult, error)) func(*cobra.Command, string,
	string) (arith.TwosResult, error) {
	return func(cmd *cobra.Command, a, b string) (arith.TwosResult, error) {
		return fn(a, b, GetUint(cmd, "width"))
	}
}

func unsignedOp(fn func(a, b string) (arith.UnsignedResult, error)) func(*cobra.Command, string,
	string) (arith.UnsignedResult, error) {
	return func(_ *cobra.Command, a, b string) (arith.UnsignedResult, error) { return fn(a, b) }
}

func init() {
	rootCmd.AddCommand(bcdCmd)
	rootCmd.AddCommand(twosCmd)
	rootCmd.AddCommand(binaryCmd)
	//
	bcdCmd.AddCommand(binaryOpCmd("add", "add two BCD values.", bcdOp(arith.BcdAdd), bcdSummary))
	bcdCmd.AddCommand(binaryOpCmd("sub", "subtract two BCD values.", bcdOp(arith.BcdSub), bcdSummary))
	twosCmd.AddCommand(binaryOpCmd("add", "add two two's complement values.", twosOp(arith.TwosAdd), twosSummary))
	twosCmd.AddCommand(binaryOpCmd("sub", "subtract two two's complement values.", twosOp(arith.TwosSub),
		twosSummary))
	twosCmd.PersistentFlags().UintP("width", "w", 8, "bit width of operands")
	binaryCmd.AddCommand(binaryOpCmd("add", "add two unsigned values.", unsignedOp(arith.Add), unsignedSummary))
	binaryCmd.AddCommand(binaryOpCmd("sub", "subtract two unsigned values.", unsignedOp(arith.Sub), unsignedSummary))
	binaryCmd.AddCommand(binaryOpCmd("mul", "multiply two unsigned values.", unsignedOp(arith.Mul), unsignedSummary))
	binaryCmd.AddCommand(binaryOpCmd("div", "divide two unsigned values.", unsignedOp(arith.Div), unsignedSummary))
}
