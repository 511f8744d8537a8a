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

// Package lexer turns expression source text into a [token.Stream].
//
// The lexer makes a single left-to-right pass over the text. Whitespace is
// skipped, `+` and `-` become [token.Operator] tokens, and maximal runs of
// decimal digits become [token.Number] tokens. Any other character stops
// lexing with an [*Error]; no partial stream is returned.
package lexer

import (
	"math"
	"unicode/utf8"

	"github.com/bufbuild/exprc/internal/decimal"
	"github.com/bufbuild/exprc/source"
	"github.com/bufbuild/exprc/token"
)

// MaxLiteral is the largest value a number literal may have.
//
// Every literal must fit in a sign-extended 32-bit immediate operand.
const MaxLiteral = math.MaxInt32

// Lex runs lexical analysis on file and returns a new, frozen token stream.
//
// On failure, the returned error is always an [*Error].
func Lex(file *source.File) (*token.Stream, error) {
	l := &lexer{Stream: token.NewStream(file)}
	if err := l.loop(); err != nil {
		return nil, err
	}
	l.Freeze()
	return l.Stream, nil
}

// lexer is the actual lexer book-keeping used in this package.
type lexer struct {
	*token.Stream

	cursor int
}

// loop is the main loop of the lexer.
func (l *lexer) loop() error {
	// Each iteration examines the next byte to decide what to do. Every token
	// this lexer accepts is ASCII, so decoding a rune is only necessary when
	// reporting an error.
	mp := l.mustProgress()
	for !l.done() {
		mp.check()
		start := l.cursor
		c := l.Text()[start]

		switch {
		case isSpace(c):
			l.cursor++

		case c == '+' || c == '-':
			l.cursor++
			l.PushOperator(start, token.Op(c))

		case decimal.IsDigit(c):
			digits := l.takeWhile(decimal.IsDigit)
			value, ok := decimal.Parse(digits, uint32(MaxLiteral))
			if !ok {
				return &Error{Kind: TooLarge, Span: l.spanFrom(start)}
			}
			l.PushNumber(start, l.cursor, int32(value))

		default:
			_, n := utf8.DecodeRuneInString(l.rest())
			l.cursor += n
			return &Error{Kind: Unrecognized, Span: l.spanFrom(start)}
		}
	}
	return nil
}

// rest returns the remaining unlexed text.
func (l *lexer) rest() string {
	return l.Text()[l.cursor:]
}

// done returns whether or not we're done lexing.
func (l *lexer) done() bool {
	return l.cursor >= len(l.Text())
}

// takeWhile consumes bytes while they match the given function. Returns
// the consumed bytes.
func (l *lexer) takeWhile(f func(byte) bool) string {
	start := l.cursor
	for !l.done() && f(l.Text()[l.cursor]) {
		l.cursor++
	}
	return l.Text()[start:l.cursor]
}

func (l *lexer) spanFrom(start int) source.Span {
	return l.Span(start, l.cursor)
}

// isSpace matches the same bytes as C's isspace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
