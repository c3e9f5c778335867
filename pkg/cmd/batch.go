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
	"io"
	"os"

	"github.com/consensys/go-bitlab/pkg/engine"
	"github.com/consensys/go-bitlab/pkg/util"
	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] file",
	Short: "run a batch of requests read from a JSON file.",
	Long: `Run a batch of requests read from a JSON file (or "-" for stdin).  The
	file holds an array of requests, each naming a tool and its parameters,
	e.g. [{"tool": "gray-encode", "params": {"value": "1011"}}].  Responses
	are printed as a JSON array in the same order.  Use "bitlab tools" to
	list the available tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1)
		//
		noTrace := GetFlag(cmd, "no-trace")
		bytes := readBatchFile(args[0])
		//
		reqs, err := engine.ParseBatch(bytes)
		if err != nil {
			fail(err)
		}
		//
		log.Debugf("read %d requests from %s", len(reqs), args[0])
		stats := util.NewPerfStats()
		responses := engine.RunAll(reqs)
		stats.Log("batch")
		//
		failures := 0
		//
		for i, r := range responses {
			if r.Error != nil {
				failures++
				log.Debugf("%s failed: %s", r.Tool, r.Error.Message)
			} else if noTrace {
				responses[i].Result = withoutTrace(r.Result)
			}
		}
		//
		printJson(responses)
		//
		if failures > 0 {
			os.Exit(2)
		}
	},
}

func readBatchFile(filename string) []byte {
	var (
		bytes []byte
		err   error
	)
	//
	if filename == "-" {
		bytes, err = io.ReadAll(os.Stdin)
	} else {
		bytes, err = os.ReadFile(filename)
	}
	// Handle error
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return bytes
}

// Results cannot be modified through the any interface, so traces are
// dropped by routing through their JSON form.
func withoutTrace(result any) any {
	bytes, err := json.Marshal(result)
	if err != nil {
		fail(diag.Wrap(diag.INTERNAL, err))
	}
	//
	var fields map[string]json.RawMessage
	//
	if err := json.Unmarshal(bytes, &fields); err != nil {
		fail(diag.Wrap(diag.INTERNAL, err))
	}
	//
	delete(fields, "trace")
	//
	return fields
}
