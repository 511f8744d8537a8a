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

// Cursor is a forward-only position in a frozen [Stream].
//
// Cursors never rewind: the grammars that consume them need no
// backtracking. Once a cursor reaches the [EOF] token it stays there.
type Cursor struct {
	stream *Stream
	idx    int
}

// Peek returns the current token without consuming it.
func (c *Cursor) Peek() Token {
	return c.stream.At(c.idx)
}

// Next returns the current token and advances past it. At the end of the
// stream, it keeps returning the [EOF] token.
func (c *Cursor) Next() Token {
	tok := c.Peek()
	if tok.kind != EOF {
		c.idx++
	}
	return tok
}

// Done returns whether this cursor has reached the [EOF] token.
func (c *Cursor) Done() bool {
	return c.Peek().kind == EOF
}

// Prev returns the most recently consumed token, or the zero token if
// nothing has been consumed yet.
func (c *Cursor) Prev() Token {
	if c.idx == 0 {
		return Token{}
	}
	return c.stream.At(c.idx - 1)
}
