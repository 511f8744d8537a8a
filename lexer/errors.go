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

package lexer

import (
	"fmt"
	"strings"

	"github.com/bufbuild/exprc/internal/unicodex"
	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/source"
)

// Tags for the diagnostics produced by this package.
const (
	TagUnrecognized report.Tag = "lex-unrecognized"
	TagTooLarge     report.Tag = "lex-too-large"
)

// ErrorKind distinguishes the ways lexing can fail.
type ErrorKind int

const (
	// A character that cannot start any token.
	Unrecognized ErrorKind = iota + 1
	// A number literal greater than [MaxLiteral].
	TooLarge
)

// Error is a lexical error. Lexing stops at the first one.
type Error struct {
	Kind ErrorKind

	// The offending character or literal.
	Span source.Span
}

var _ report.Diagnose = (*Error)(nil)

// Error implements [error].
func (e *Error) Error() string {
	switch e.Kind {
	case TooLarge:
		return "integer literal out of range"
	default:
		return "unrecognized character " + quote(e.Span.Text())
	}
}

// Diagnose implements [report.Diagnose].
func (e *Error) Diagnose(d *report.Diagnostic) {
	switch e.Kind {
	case TooLarge:
		d.With(
			TagTooLarge,
			report.Snippetf(e.Span, "greater than %d", MaxLiteral),
			report.Note("literals must fit in a 32-bit signed immediate"),
		)

	default:
		d.With(
			TagUnrecognized,
			report.Snippetf(e.Span, "expected a digit or an operator"),
		)
		if strings.ContainsAny(e.Span.Text(), "*/()") {
			d.With(report.Note("only `+` and `-` are supported"))
		}
	}
}

// quote wraps text in backticks, escaping anything a terminal would not show.
func quote(text string) string {
	var out strings.Builder
	out.WriteByte('`')
	w := &unicodex.Width{EscapeNonPrint: true, Out: &out}
	_, _ = w.WriteString(text)
	out.WriteByte('`')
	return out.String()
}

// String implements [fmt.Stringer].
func (k ErrorKind) String() string {
	switch k {
	case Unrecognized:
		return "Unrecognized"
	case TooLarge:
		return "TooLarge"
	default:
		return fmt.Sprintf("lexer.ErrorKind(%d)", int(k))
	}
}
