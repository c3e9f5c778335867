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
	"errors"

	"github.com/consensys/go-bitlab/pkg/util/diag"
	"github.com/consensys/go-bitlab/pkg/util/source"
	"github.com/segmentio/encoding/json"
)

// Request asks for a given engine to be run with some parameters.
type Request struct {
	Tool   ID              `json:"tool"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response holds the outcome of a request.  Exactly one of Result and Error
// is set.
type Response struct {
	Tool   ID       `json:"tool"`
	Result any      `json:"result,omitempty"`
	Error  *Failure `json:"error,omitempty"`
}

// Failure describes why a request failed.
type Failure struct {
	Kind    diag.Kind `json:"kind"`
	Message string    `json:"message"`
	// Highlight is present for syntax errors only.
	Highlight []string `json:"highlight,omitempty"`
}

// NewFailure summarises an error.
func NewFailure(err error) *Failure {
	var (
		failure = &Failure{Kind: diag.KindOf(err), Message: diag.Message(err)}
		serr    *source.SyntaxError
	)
	//
	if errors.As(err, &serr) {
		failure.Message = serr.Message()
		failure.Highlight = serr.Highlight()
	}
	//
	return failure
}

// Run a single request.
func Run(req Request) (Response, error) {
	if int(req.Tool) >= len(descriptors) {
		return Response{Tool: req.Tool}, diag.Invalid("unknown tool %s", req.Tool)
	}
	//
	result, err := descriptors[req.Tool].run(req.Params)
	if err != nil {
		return Response{Tool: req.Tool}, err
	}
	//
	return Response{Tool: req.Tool, Result: result}, nil
}

// RunAll runs a batch of requests in order.  A failing request does not
// prevent later requests from running.
func RunAll(reqs []Request) []Response {
	var responses = make([]Response, len(reqs))
	//
	for i, req := range reqs {
		res, err := Run(req)
		if err != nil {
			res.Error = NewFailure(err)
		}
		//
		responses[i] = res
	}
	//
	return responses
}

// ParseBatch reads a batch of requests, given as a JSON array.
func ParseBatch(data []byte) ([]Request, error) {
	var reqs []Request
	//
	if err := json.Unmarshal(data, &reqs); err != nil {
		return nil, diag.Invalid("malformed batch (%s)", err.Error())
	}
	//
	return reqs, nil
}
