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
package diag

import (
	"errors"
	"fmt"
)

// Kind classifies a failure reported by one of the engines.
type Kind uint8

const (
	// INVALID_INPUT signals malformed input, such as a non-binary digit or a
	// bit string of the wrong width.
	INVALID_INPUT Kind = iota
	// OUT_OF_RANGE signals input which is well formed, but outside the domain
	// of the given operation.
	OUT_OF_RANGE
	// INTERNAL signals that an internal consistency check failed.  This never
	// arises from user input.
	INTERNAL
)

func (k Kind) String() string {
	switch k {
	case INVALID_INPUT:
		return "invalid input"
	case OUT_OF_RANGE:
		return "out of range"
	case INTERNAL:
		return "internal error"
	}
	//
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText renders a kind by name, e.g. "out of range".
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Error is the structured error value returned by every engine.
type Error struct {
	Kind Kind
	Msg  string
	// Optional underlying cause
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap returns the underlying cause (if any).
func (e *Error) Unwrap() error {
	return e.cause
}

// Invalid constructs an INVALID_INPUT error.
func Invalid(format string, args ...any) *Error {
	return &Error{INVALID_INPUT, fmt.Sprintf(format, args...), nil}
}

// Range constructs an OUT_OF_RANGE error.
func Range(format string, args ...any) *Error {
	return &Error{OUT_OF_RANGE, fmt.Sprintf(format, args...), nil}
}

// Internal constructs an INTERNAL error.
func Internal(format string, args ...any) *Error {
	return &Error{INTERNAL, fmt.Sprintf(format, args...), nil}
}

// Wrap lifts an arbitrary error into a structured error of the given kind,
// retaining it as the cause.
func Wrap(kind Kind, err error) *Error {
	return &Error{kind, err.Error(), err}
}

// KindOf extracts the kind of a given error.  Errors which are not structured
// are considered internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	//
	return INTERNAL
}

// Message extracts the message of a given error, omitting its kind.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	//
	return err.Error()
}

// Is checks whether a given error is a structured error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
