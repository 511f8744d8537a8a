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

package codegen_test

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/exprc/asm"
	"github.com/bufbuild/exprc/codegen"
	"github.com/bufbuild/exprc/lexer"
	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/source"
	"github.com/bufbuild/exprc/token"
)

type evalCase struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`

	// Set on success.
	Code  string `yaml:"code"`
	Value int64  `yaml:"value"`

	// Set on failure.
	Error    string     `yaml:"error"`
	Tag      report.Tag `yaml:"tag"`
	At       string     `yaml:"at"`
	Rendered string     `yaml:"rendered"`
}

func generate(t *testing.T, text string) (*asm.Program, error) {
	t.Helper()
	stream, err := lexer.Lex(source.NewFile("test.expr", text))
	require.NoError(t, err, "%q", text)
	return codegen.Generate(stream)
}

func TestEval(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/eval.yaml")
	require.NoError(t, err)
	var cases []evalCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			prog, err := generate(t, tt.Expr)
			if tt.Error == "" {
				require.NoError(t, err)

				var code strings.Builder
				for _, inst := range prog.Instructions {
					fmt.Fprintln(&code, inst)
				}
				assert.Equal(t, tt.Code, code.String())

				value, err := prog.Exec()
				require.NoError(t, err)
				assert.Equal(t, tt.Value, value)
				return
			}

			assert.Nil(t, prog)
			var genErr *codegen.Error
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, tt.Error, genErr.Error())

			r := new(report.Report)
			d := r.Error(genErr)
			assert.Equal(t, tt.Tag, d.Tag)
			start := d.Primary().StartLoc()
			assert.Equal(t, tt.At, fmt.Sprintf("%d:%d", start.Line, start.Column))
			assert.Equal(t, genErr.Span(), d.Primary().Span)

			if tt.Rendered != "" {
				assert.Equal(t, tt.Rendered, report.Renderer{}.Diagnostic(*d))
			}
		})
	}
}

// TestLeftToRight checks generated code against a direct evaluation of
// random expressions.
func TestLeftToRight(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		var text strings.Builder
		var want int64

		operands := 1 + rng.IntN(12)
		for i := range operands {
			n := int64(rng.Int32())
			if rng.IntN(4) == 0 {
				n = int64(rng.IntN(10))
			}

			switch {
			case i == 0:
				want = n
			case rng.IntN(2) == 0:
				text.WriteString(" + ")
				want += n
			default:
				text.WriteString("-")
				want -= n
			}
			fmt.Fprint(&text, n)
		}

		prog, err := generate(t, text.String())
		require.NoError(t, err, "%q", text.String())
		require.Len(t, prog.Instructions, operands+1)
		assert.Equal(t, asm.Mov, prog.Instructions[0].Op)
		assert.Equal(t, asm.Ret, prog.Instructions[operands].Op)

		got, err := prog.Exec()
		require.NoError(t, err)
		assert.Equal(t, want, got, "%q", text.String())
	}
}

// TestInvalidPlacement checks that every token sequence that breaks the
// alternation of numbers and operators fails.
func TestInvalidPlacement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want token.Kind
		got  token.Kind
	}{
		{"", token.Number, token.EOF},
		{"-", token.Number, token.Operator},
		{"1 -", token.Number, token.EOF},
		{"1 - -", token.Number, token.Operator},
		{"1 2", token.Operator, token.Number},
		{"1 + 2 3 +", token.Operator, token.Number},
	}

	for _, tt := range tests {
		_, err := generate(t, tt.text)
		var genErr *codegen.Error
		if assert.ErrorAs(t, err, &genErr, "%q", tt.text) {
			assert.Equal(t, tt.want, genErr.Want, "%q", tt.text)
			assert.Equal(t, tt.got, genErr.Got.Kind(), "%q", tt.text)
		}
	}
}

func TestGenerateUnfrozen(t *testing.T) {
	t.Parallel()

	stream := token.NewStream(source.NewFile("test.expr", "1"))
	stream.PushNumber(0, 1, 1)
	assert.Panics(t, func() { _, _ = codegen.Generate(stream) })
}
