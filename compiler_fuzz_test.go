// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package exprc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/exprc"
	"github.com/bufbuild/exprc/asm"
	"github.com/bufbuild/exprc/codegen"
	"github.com/bufbuild/exprc/lexer"
	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/source"
)

func FuzzCompile(f *testing.F) {
	for _, seed := range []string{
		"42", "1+2-3", " 5 - 3 ", "", "1+", "abc", "1 2",
		"2147483647+2147483647", "2147483648", "1\n+\t2", "+", "日本",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		prog, err := new(exprc.Compiler).CompileFile(source.NewFile("fuzz.expr", text))
		if err == nil {
			// Anything that compiles must also run, and survive a trip through
			// its own textual form.
			_, err := prog.Exec()
			require.NoError(t, err)

			parsed, err := asm.Parse(prog.String())
			require.NoError(t, err)
			assert.Equal(t, prog, parsed)
			return
		}

		assert.Nil(t, prog)
		var asErr *report.AsError
		require.ErrorAs(t, err, &asErr)
		require.Len(t, asErr.Report.Diagnostics, 1)

		d := asErr.Report.Diagnostics[0]
		var lexErr *lexer.Error
		var genErr *codegen.Error
		assert.True(t, errors.As(d.Err, &lexErr) || errors.As(d.Err, &genErr), "%T", d.Err)
		assert.False(t, d.Primary().IsZero())
		assert.NotEmpty(t, d.Tag)

		assert.NotPanics(t, func() {
			_ = report.Renderer{}.Diagnostic(d)
			_ = report.Renderer{Compact: true}.Diagnostic(d)
		})
	})
}
