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

package codegen

import (
	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/source"
	"github.com/bufbuild/exprc/token"
)

// Tags for the diagnostics produced by this package.
const (
	TagExpectedNumber   report.Tag = "parse-expected-number"
	TagExpectedOperator report.Tag = "parse-expected-operator"
)

// Error is a syntax error: a token that the grammar does not allow at its
// position. Code generation stops at the first one.
type Error struct {
	// What was wanted: [token.Number] or [token.Operator].
	Want token.Kind

	// The token that was found instead. This may be the [token.EOF] token.
	Got token.Token

	// The token whose presence makes Want necessary: the operator missing its
	// right operand, or the number that should have been followed by an
	// operator. Zero if the error is at the start of the input.
	Prev token.Token
}

var _ report.Diagnose = (*Error)(nil)

// Error implements [error].
func (e *Error) Error() string {
	if e.Want == token.Operator {
		return "expected operator"
	}
	return "expected number"
}

// Span returns the span of the offending token.
func (e *Error) Span() source.Span {
	return e.Got.Span()
}

// Diagnose implements [report.Diagnose].
func (e *Error) Diagnose(d *report.Diagnostic) {
	found := report.Snippetf(e.Got, "found %s", describe(e.Got))

	if e.Want == token.Operator {
		d.With(
			TagExpectedOperator,
			found,
			report.Snippetf(e.Prev, "previous number is here"),
			report.Help("numbers must be separated by `+` or `-`"),
		)
		return
	}

	d.With(TagExpectedNumber, found)
	switch {
	case e.Prev.Kind() == token.Operator:
		d.With(report.Snippetf(e.Prev, "this operator needs a right operand"))
	case e.Got.Kind() == token.EOF:
		d.With(report.Note("an expression must contain at least one number"))
	default:
		d.With(report.Note("an expression must start with a number"))
	}
}

// describe returns a user-facing description of tok.
func describe(tok token.Token) string {
	if tok.Kind() == token.EOF {
		return "end of input"
	}
	return "`" + tok.Text() + "`"
}
