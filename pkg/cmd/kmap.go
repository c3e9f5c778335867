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

	"github.com/consensys/go-bitlab/pkg/kmap"
	"github.com/consensys/go-bitlab/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var kmapCmd = &cobra.Command{
	Use:   "kmap [flags] [expression]",
	Short: "minimise a boolean function using a Karnaugh map.",
	Long: `Minimise a boolean function of up to five variables (A-E) using a
	Karnaugh map.  The function is given either as an expression (e.g.
	"AB' + !(C+D)") or as a list of minterms with --minterms.  Don't cares
	can be given in either case.`,
	Run: func(cmd *cobra.Command, args []string) {
		var in kmap.Input
		//
		if len(args) > 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		} else if len(args) == 1 {
			in.Expression = args[0]
		}
		//
		cfg := getOutputConfig(cmd)
		in.Minterms = GetString(cmd, "minterms")
		in.DontCares = GetString(cmd, "dont-cares")
		in.Variables = GetUint(cmd, "variables")
		in.Order = GetString(cmd, "order")
		log.Debugf("minimising %+v", in)
		//
		res := run("kmap", func() (kmap.Result, error) {
			return kmap.Minimize(in)
		})
		//
		if cfg.json {
			printJson(res)
			return
		}
		//
		if !cfg.noTrace {
			printTrace(res.Trace, cfg.ansi)
			fmt.Println()
		}
		//
		printImplicants(res, cfg.ansi)
		fmt.Println()
		printSummary(cfg, (&summary{}).add("variables", "%s", res.Order).add("sop", "%s", res.SOP))
	},
}

// Print the selected implicants, marking those which are essential.
func printImplicants(res kmap.Result, ansi bool) {
	tp := termio.NewTablePrinter("term", "minterms", "rectangle", "essential")
	//
	for i, p := range res.Implicants {
		tp.AddRow(p.Term, list(p.Minterms), p.Rect.String(), yesNo(p.Essential))
		//
		if p.Essential {
			tp.SetEscape(0, uint(i), termio.NewAnsiEscape().FgColour(termio.TERM_GREEN))
		}
	}
	//
	tp.AnsiEscapes(ansi)
	tp.Print(os.Stdout)
}

func init() {
	rootCmd.AddCommand(kmapCmd)
	kmapCmd.Flags().StringP("minterms", "m", "", "minterms (comma or space separated)")
	kmapCmd.Flags().StringP("dont-cares", "d", "", "don't cares (comma or space separated)")
	kmapCmd.Flags().UintP("variables", "n", 0, "number of variables")
	kmapCmd.Flags().String("order", "", "variable order, most significant first (e.g. ABCD)")
}
