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
package termio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Table_01(t *testing.T) {
	var buf bytes.Buffer
	//
	table := NewTablePrinter("pos", "bit")
	table.AddRow("1", "P")
	table.AddRow("10", "D")
	table.Print(&buf)
	//
	assert.Equal(t, " pos | bit |\n --- | --- |\n   1 |   P |\n  10 |   D |\n", buf.String())
}

func Test_Table_02(t *testing.T) {
	var buf bytes.Buffer
	//
	table := NewTablePrinter("", "")
	table.AddRow("A·B", "x")
	table.SetEscape(0, 0, NewAnsiEscape().FgColour(TERM_GREEN))
	table.AnsiEscapes(true)
	table.Print(&buf)
	//
	assert.Equal(t, " \033[32mA·B\033[0m | x |\n", buf.String())
}

func Test_Escape_01(t *testing.T) {
	assert.Equal(t, "\033[1;31m", NewAnsiEscape().Bold().FgColour(TERM_RED).Build())
	assert.Equal(t, "\033[0m", ResetAnsiEscape().Build())
	assert.Equal(t, "\033[4mx\033[0m", Colour(NewAnsiEscape().Underline(), "x"))
}

func Test_Width_01(t *testing.T) {
	assert.Panics(t, func() { NewTablePrinter("a").AddRow("b", "c") })
	assert.Equal(t, uint(3), width("A·B"))
}
