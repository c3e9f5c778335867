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
	"github.com/consensys/go-bitlab/pkg/coding/crc"
	"github.com/consensys/go-bitlab/pkg/coding/hamming"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var crcCmd = &cobra.Command{
	Use:   "crc",
	Short: "compute and check cyclic redundancy checks.",
}

var crcEncodeCmd = &cobra.Command{
	Use:   "encode [flags] message generator",
	Short: "append CRC check bits to a message.",
	Long: `Append CRC check bits to a message.  The message is shifted left by
	the degree of the generator, divided by the generator over GF(2), and
	the remainder appended.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 2)
		//
		cfg := getOutputConfig(cmd)
		res := run("crc encode", func() (crc.EncodeResult, error) {
			return crc.Encode(args[0], args[1])
		})
		//
		sum := (&summary{}).add("generator", "%s", res.Generator.Polynomial).add("remainder", "%s", res.Remainder)
		sum.add("codeword", "%s", res.Codeword).add("verified", "%s", yesNo(res.Verified))
		//
		report(cfg, res, res.Trace, sum)
	},
}

var crcDecodeCmd = &cobra.Command{
	Use:   "decode [flags] received generator",
	Short: "check a received CRC codeword, optionally correcting a single bit error.",
	Long: `Check a received CRC codeword by dividing it by the generator.  With
	--fix, every single bit flip is tried and a correction is applied only
	when exactly one flip leaves a zero syndrome.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 2)
		//
		cfg := getOutputConfig(cmd)
		fix := GetFlag(cmd, "fix")
		log.Debugf("decoding with single bit correction %s", yesNo(fix))
		//
		res := run("crc decode", func() (crc.DecodeResult, error) {
			return crc.Decode(args[0], args[1], fix)
		})
		//
		sum := (&summary{}).add("syndrome", "%s", res.Syndrome).add("status", "%s", res.Status)
		sum.add("message", "%s", res.Message)
		//
		if res.Corrected != "" {
			sum.add("corrected", "%s", res.Corrected).add("corrected message", "%s", res.FinalMessage)
		} else if len(res.Candidates) > 0 {
			sum.add("candidates", "%s", list(res.Candidates))
		}
		//
		report(cfg, res, res.Trace, sum)
	},
}

var hammingCmd = &cobra.Command{
	Use:   "hamming",
	Short: "encode and decode Hamming codes.",
}

var hammingEncodeCmd = &cobra.Command{
	Use:   "encode [flags] data",
	Short: "encode data bits using the smallest suitable Hamming code.",
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		cfg := getOutputConfig(cmd)
		res := run("hamming encode", func() (hamming.EncodeResult, error) {
			return hamming.Encode(args[0])
		})
		//
		sum := (&summary{}).add("code", "(%d,%d) with %d parity bits", res.Code.N, res.Code.K, res.Code.P)
		sum.add("parity positions", "%s", list(res.ParityPositions)).add("codeword", "%s", res.Codeword)
		//
		report(cfg, res, res.Trace, sum)
	},
}

var hammingDecodeCmd = &cobra.Command{
	Use:   "decode [flags] codeword",
	Short: "check a Hamming codeword, correcting any single bit error.",
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		cfg := getOutputConfig(cmd)
		res := run("hamming decode", func() (hamming.DecodeResult, error) {
			return hamming.Decode(args[0])
		})
		//
		sum := (&summary{}).add("syndrome", "%s", res.Syndrome).add("status", "%s", res.Status)
		//
		if res.Corrected != "" {
			sum.add("error position", "%d", res.ErrorPosition).add("corrected", "%s", res.Corrected)
		}
		//
		report(cfg, res, res.Trace, sum.add("data", "%s", res.Data))
	},
}

func init() {
	rootCmd.AddCommand(crcCmd)
	rootCmd.AddCommand(hammingCmd)
	crcCmd.AddCommand(crcEncodeCmd)
	crcCmd.AddCommand(crcDecodeCmd)
	hammingCmd.AddCommand(hammingEncodeCmd)
	hammingCmd.AddCommand(hammingDecodeCmd)
	crcDecodeCmd.Flags().Bool("fix", false, "attempt single bit error correction")
}
