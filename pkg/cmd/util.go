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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-bitlab/pkg/trace"
	"github.com/consensys/go-bitlab/pkg/util"
	"github.com/consensys/go-bitlab/pkg/util/bits"
	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/consensys/go-bitlab/pkg/util/source"
	"github.com/consensys/go-bitlab/pkg/util/termio"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exit if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exit if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exit if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Check the number of positional arguments, printing usage when they do not
// match.
func checkArgs(cmd *cobra.Command, args []string, n int) {
	if len(args) != n {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
}

// outputConfig determines how results are printed.
type outputConfig struct {
	// Print the raw result as JSON
	json bool
	// Omit the step by step explanation
	noTrace bool
	// Use ANSI escapes for emphasis
	ansi bool
	// Group bit strings into nibbles
	group bool
}

func getOutputConfig(cmd *cobra.Command) outputConfig {
	return outputConfig{
		json:    GetFlag(cmd, "json"),
		noTrace: GetFlag(cmd, "no-trace"),
		ansi:    GetFlag(cmd, "ansi"),
		group:   GetFlag(cmd, "group"),
	}
}

// Run an engine, reporting how long it took.  Failures are reported and the
// process terminates.
func run[R any](name string, fn func() (R, error)) R {
	stats := util.NewPerfStats()
	res, err := fn()
	//
	stats.Log(name)
	//
	if err != nil {
		fail(err)
	}
	//
	return res
}

// Report a failed computation and exit.  Internal failures use a distinct exit
// code from bad input.
func fail(err error) {
	var serr *source.SyntaxError
	//
	if errors.As(err, &serr) {
		printSyntaxError(serr)
	} else {
		fmt.Println(err)
	}
	//
	if diag.KindOf(err) == diag.INTERNAL {
		log.Debugf("internal failure: %v", err)
		os.Exit(3)
	}
	//
	os.Exit(2)
}

func printSyntaxError(err *source.SyntaxError) {
	fmt.Printf("%s: %s\n", err.Text().Name(), err.Message())
	//
	for _, line := range err.Highlight() {
		fmt.Println(line)
	}
}

// summary is a list of labelled values printed after a trace.
type summary struct {
	labels []string
	values []string
}

func (p *summary) add(label string, format string, args ...any) *summary {
	p.labels = append(p.labels, label)
	p.values = append(p.values, fmt.Sprintf(format, args...))
	//
	return p
}

// Print a result according to the output configuration.  JSON output contains
// the entire result (including its trace), otherwise the trace is printed
// followed by the summary.
func report(cfg outputConfig, result any, tr trace.Trace, sum *summary) {
	if cfg.json {
		printJson(result)
		return
	}
	//
	if !cfg.noTrace {
		printTrace(tr, cfg.ansi)
		fmt.Println()
	}
	//
	printSummary(cfg, sum)
}

func printSummary(cfg outputConfig, sum *summary) {
	tp := termio.NewTablePrinter("", "")
	//
	for i, label := range sum.labels {
		value := sum.values[i]
		//
		if cfg.group && bits.IsBinary(value) {
			value = bits.Group(value, 4)
		}
		//
		tp.AddRow(label, value)
		tp.SetEscape(0, uint(i), termio.NewAnsiEscape().Bold())
	}
	//
	tp.AnsiEscapes(cfg.ansi)
	tp.Print(os.Stdout)
}

func printJson(value any) {
	bytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fail(diag.Wrap(diag.INTERNAL, err))
	}
	//
	fmt.Println(string(bytes))
}

// Print a trace, highlighting section titles and notes when escapes are
// enabled.
func printTrace(tr trace.Trace, ansi bool) {
	var (
		title = termio.NewAnsiEscape().Bold().FgColour(termio.TERM_CYAN)
		note  = termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW)
	)
	//
	for _, f := range tr {
		switch f.Kind {
		case trace.SECTION:
			fmt.Println(emphasise(ansi, title, fmt.Sprintf("== %s ==", f.Text)))
		case trace.STEP:
			fmt.Printf("  %s\n", f.Text)
		case trace.NOTE:
			fmt.Printf("  %s\n", emphasise(ansi, note, fmt.Sprintf("(%s)", f.Text)))
		case trace.BLOCK:
			if f.Text != "" {
				fmt.Printf("  %s:\n", f.Text)
			}
			//
			for _, l := range f.Lines {
				fmt.Printf("    %s\n", l)
			}
		}
	}
}

func emphasise(ansi bool, escape termio.AnsiEscape, text string) string {
	if !ansi {
		return text
	}
	//
	return termio.Colour(escape, text)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	//
	return "no"
}

func list[T any](items []T) string {
	var parts = make([]string, len(items))
	//
	for i, item := range items {
		parts[i] = fmt.Sprintf("%v", item)
	}
	//
	return strings.Join(parts, ", ")
}
