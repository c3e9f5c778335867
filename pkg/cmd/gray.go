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
	"github.com/consensys/go-bitlab/pkg/gray"
	"github.com/spf13/cobra"
)

var grayCmd = &cobra.Command{
	Use:   "gray",
	Short: "convert between binary and Gray code.",
}

var grayEncodeCmd = &cobra.Command{
	Use:   "encode [flags] value",
	Short: "convert binary (or decimal) into Gray code.",
	Long: `Convert binary into Gray code.  A value containing any of the digits
	2-9 is read as decimal, whilst a value of only 0s and 1s is always read
	as binary (so 11 means three, not eleven).`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		cfg := getOutputConfig(cmd)
		res := run("gray encode", func() (gray.EncodeResult, error) {
			return gray.Encode(args[0])
		})
		//
		sum := (&summary{}).add("binary", "%s", res.Binary).add("gray", "%s", res.Gray)
		//
		if res.Previous != nil {
			sum.add("previous", "%s", res.Previous.Gray)
		}
		//
		if res.Next != nil {
			sum.add("next", "%s", res.Next.Gray)
		}
		//
		report(cfg, res, res.Trace, sum)
	},
}

var grayDecodeCmd = &cobra.Command{
	Use:   "decode [flags] gray",
	Short: "convert Gray code into binary.",
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		cfg := getOutputConfig(cmd)
		res := run("gray decode", func() (gray.DecodeResult, error) {
			return gray.Decode(args[0])
		})
		//
		report(cfg, res, res.Trace, (&summary{}).add("gray", "%s", res.Gray).add("binary", "%s", res.Binary))
	},
}

func init() {
	rootCmd.AddCommand(grayCmd)
	grayCmd.AddCommand(grayEncodeCmd)
	grayCmd.AddCommand(grayDecodeCmd)
}
