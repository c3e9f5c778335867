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
	"os"
	"strings"

	"github.com/consensys/go-bitlab/pkg/engine"
	"github.com/consensys/go-bitlab/pkg/util/termio"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "list the tools available to batch requests.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getOutputConfig(cmd)
		//
		if cfg.json {
			printJson(engine.Descriptors())
			return
		}
		//
		tp := termio.NewTablePrinter("tool", "description", "parameters")
		//
		for i, d := range engine.Descriptors() {
			tp.AddRow(d.ID.String(), d.Summary, strings.Join(d.Params, ", "))
			tp.SetEscape(0, uint(i), termio.NewAnsiEscape().Bold())
		}
		//
		tp.AnsiEscapes(cfg.ansi)
		tp.Print(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
