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
package ieee754

import (
	"strings"

	"github.com/consensys/go-bitlab/pkg/util/diag"
)

// SpecialKind identifies a value from the catalogue of notable encodings.
type SpecialKind uint8

const (
	POSITIVE_ZERO SpecialKind = iota
	NEGATIVE_ZERO
	POSITIVE_INFINITY
	NEGATIVE_INFINITY
	QUIET_NAN
	SIGNALING_NAN
	MIN_DENORMAL
	MAX_DENORMAL
	MIN_NORMAL
	MAX_NORMAL
)

var specialNames = []string{
	"+0", "-0", "+inf", "-inf", "qnan", "snan", "min-denormal", "max-denormal", "min-normal", "max-normal",
}

func (k SpecialKind) String() string {
	return specialNames[k]
}

// MarshalText renders a special kind by name.
func (k SpecialKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// SpecialKinds returns every kind in the catalogue.
func SpecialKinds() []SpecialKind {
	kinds := make([]SpecialKind, len(specialNames))
	for i := range kinds {
		kinds[i] = SpecialKind(i)
	}
	//
	return kinds
}

// ParseSpecialKind converts the name of a special value into a SpecialKind.
func ParseSpecialKind(text string) (SpecialKind, error) {
	name := strings.ToLower(strings.TrimSpace(text))
	//
	switch name {
	case "inf", "infinity", "+infinity":
		return POSITIVE_INFINITY, nil
	case "-infinity":
		return NEGATIVE_INFINITY, nil
	case "nan":
		return QUIET_NAN, nil
	case "0":
		return POSITIVE_ZERO, nil
	}
	//
	for i, n := range specialNames {
		if n == name {
			return SpecialKind(i), nil
		}
	}
	//
	return 0, diag.Invalid("unknown special value \"%s\" (expected one of %s)", text, strings.Join(specialNames, ", "))
}

// SpecialResult is a catalogue entry decoded in some format.
type SpecialResult struct {
	Kind SpecialKind `json:"kind"`
	DecodeResult
}

// Special constructs a notable value in the given format.
func Special(kind SpecialKind, f Format) (SpecialResult, error) {
	var (
		mask   = uint64(1)<<f.MantissaBits - 1
		fields Fields
	)
	//
	switch kind {
	case POSITIVE_ZERO:
		fields = Fields{0, 0, 0}
	case NEGATIVE_ZERO:
		fields = Fields{1, 0, 0}
	case POSITIVE_INFINITY:
		fields = Fields{0, f.MaxExponent(), 0}
	case NEGATIVE_INFINITY:
		fields = Fields{1, f.MaxExponent(), 0}
	case QUIET_NAN:
		fields = f.Pack(f.QuietNaN())
	case SIGNALING_NAN:
		fields = Fields{0, f.MaxExponent(), 1}
	case MIN_DENORMAL:
		fields = Fields{0, 0, 1}
	case MAX_DENORMAL:
		fields = Fields{0, 0, mask}
	case MIN_NORMAL:
		fields = Fields{0, 1, 0}
	case MAX_NORMAL:
		fields = Fields{0, f.MaxExponent() - 1, mask}
	default:
		return SpecialResult{}, diag.Invalid("unknown special value %d", kind)
	}
	//
	return SpecialResult{kind, f.decodeWord(f.Join(fields))}, nil
}
