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

package token

import (
	"iter"
	"strings"

	"github.com/bufbuild/exprc/source"
)

// Stream is a token stream.
//
// Streams are built by pushing tokens in source order, and become "frozen"
// once lexing is complete. Freezing appends the [EOF] token, and a frozen
// stream cannot be pushed to.
type Stream struct {
	// The file this stream is over.
	*source.File

	tokens []Token
	frozen bool
}

// NewStream returns a new, empty stream over file.
func NewStream(file *source.File) *Stream {
	return &Stream{File: file}
}

// PushOperator mints a new [Operator] token for the single byte at offset.
//
// Panics if the stream is frozen, or if op is not a valid [Op].
func (s *Stream) PushOperator(offset int, op Op) Token {
	if op != Plus && op != Minus {
		panic("exprc/token: pushed invalid operator " + op.String())
	}
	return s.push(Token{
		kind: Operator,
		op:   op,
		span: s.File.Span(offset, offset+1),
	})
}

// PushNumber mints a new [Number] token spanning [start, end).
//
// Panics if the stream is frozen, or if value is negative.
func (s *Stream) PushNumber(start, end int, value int32) Token {
	if value < 0 {
		panic("exprc/token: pushed negative number")
	}
	return s.push(Token{
		kind:  Number,
		value: value,
		span:  s.File.Span(start, end),
	})
}

// Freeze marks this stream as complete, appending its [EOF] token.
//
// The EOF token's span is empty, and sits right after the last
// non-whitespace byte of the file.
//
// Panics if the stream is already frozen.
func (s *Stream) Freeze() Token {
	tok := s.push(Token{kind: EOF, span: s.File.EOF()})
	s.frozen = true
	return tok
}

// Frozen returns whether [Stream.Freeze] has been called.
func (s *Stream) Frozen() bool {
	return s.frozen
}

// Len returns the number of tokens in this stream, including the [EOF] token
// if it is frozen.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// At returns the nth token in this stream.
func (s *Stream) At(n int) Token {
	return s.tokens[n]
}

// All returns an iterator over all tokens in this stream, in order.
func (s *Stream) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for _, tok := range s.tokens {
			if !yield(tok) {
				return
			}
		}
	}
}

// Cursor returns a new cursor positioned at the first token.
//
// Panics if the stream is not frozen.
func (s *Stream) Cursor() *Cursor {
	if !s.frozen {
		panic("exprc/token: created cursor over unfrozen stream")
	}
	return &Cursor{stream: s}
}

// Canonical renders this stream back into source form with no whitespace.
//
// Lexing the result produces a stream with the same kinds, operators, and
// values as this one.
func (s *Stream) Canonical() string {
	var out strings.Builder
	for tok := range s.All() {
		out.WriteString(tok.Canonical())
	}
	return out.String()
}

func (s *Stream) push(tok Token) Token {
	if s.frozen {
		panic("exprc/token: pushed to frozen stream")
	}
	s.tokens = append(s.tokens, tok)
	return tok
}
