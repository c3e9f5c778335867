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
package trace

import "fmt"

// Recorder accumulates fragments in the order they are produced.  A nil
// recorder is valid and discards everything, which allows callers that have
// no interest in explanations to skip formatting costs entirely.
type Recorder struct {
	fragments []Fragment
}

// NewRecorder constructs an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Section starts a new titled group of steps.
func (r *Recorder) Section(format string, args ...any) {
	r.record(SECTION, format, args)
}

// Step records a single computational step.
func (r *Recorder) Step(format string, args ...any) {
	r.record(STEP, format, args)
}

// Note records an informational remark.
func (r *Recorder) Note(format string, args ...any) {
	r.record(NOTE, format, args)
}

// Block records a titled block of preformatted lines.
func (r *Recorder) Block(title string, lines ...string) {
	if r == nil {
		return
	}
	//
	r.fragments = append(r.fragments, Fragment{BLOCK, title, append([]string(nil), lines...)})
}

// Append copies all fragments of another trace into this recorder.
func (r *Recorder) Append(t Trace) {
	if r == nil {
		return
	}
	//
	r.fragments = append(r.fragments, t...)
}

// Len returns the number of fragments recorded so far.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	//
	return len(r.fragments)
}

// Trace returns a copy of the fragments recorded so far.
func (r *Recorder) Trace() Trace {
	if r == nil {
		return nil
	}
	//
	out := make(Trace, len(r.fragments))
	copy(out, r.fragments)
	//
	return out
}

func (r *Recorder) record(kind Kind, format string, args []any) {
	if r == nil {
		return
	}
	//
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	//
	r.fragments = append(r.fragments, Fragment{Kind: kind, Text: text})
}
