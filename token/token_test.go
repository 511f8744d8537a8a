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

package token_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/exprc/source"
	"github.com/bufbuild/exprc/token"
)

// build pushes tokens for "007 + 2 -3".
func build(t *testing.T) *token.Stream {
	t.Helper()

	s := token.NewStream(source.NewFile("test", "007 + 2 -3 "))
	s.PushNumber(0, 3, 7)
	s.PushOperator(4, token.Plus)
	s.PushNumber(6, 7, 2)
	s.PushOperator(8, token.Minus)
	s.PushNumber(9, 10, 3)
	s.Freeze()
	return s
}

func TestStream(t *testing.T) {
	t.Parallel()

	s := build(t)
	require.True(t, s.Frozen())
	require.Equal(t, 6, s.Len())

	kinds := slices.Collect(func(yield func(token.Kind) bool) {
		for tok := range s.All() {
			if !yield(tok.Kind()) {
				return
			}
		}
	})
	assert.Equal(t, []token.Kind{
		token.Number, token.Operator, token.Number,
		token.Operator, token.Number, token.EOF,
	}, kinds)

	n, ok := s.At(0).AsNumber()
	assert.True(t, ok)
	assert.Equal(t, int32(7), n)
	assert.Equal(t, "007", s.At(0).Text())
	assert.Equal(t, `Number("007")`, s.At(0).String())

	_, ok = s.At(1).AsNumber()
	assert.False(t, ok)
	assert.True(t, s.At(1).IsOp(token.Plus))
	assert.False(t, s.At(1).IsOp(token.Minus))
	assert.True(t, s.At(3).IsOp(token.Minus))

	eof := s.At(5)
	assert.Equal(t, token.EOF, eof.Kind())
	assert.Equal(t, 10, eof.Span().Start)
	assert.Empty(t, eof.Text())
	assert.Equal(t, "EOF", eof.String())

	assert.Equal(t, "7+2-3", s.Canonical())
}

func TestStreamPanics(t *testing.T) {
	t.Parallel()

	s := token.NewStream(source.NewFile("test", "1"))
	assert.Panics(t, func() { s.Cursor() })
	assert.Panics(t, func() { s.PushOperator(0, '*') })
	assert.Panics(t, func() { s.PushNumber(0, 1, -1) })

	s.PushNumber(0, 1, 1)
	s.Freeze()
	assert.Panics(t, func() { s.Freeze() })
	assert.Panics(t, func() { s.PushNumber(0, 1, 1) })
}

func TestCursor(t *testing.T) {
	t.Parallel()

	c := build(t).Cursor()
	assert.Equal(t, token.EOF, c.Prev().Kind())
	assert.False(t, c.Done())

	var texts []string
	for !c.Done() {
		texts = append(texts, c.Next().Text())
	}
	assert.Equal(t, []string{"007", "+", "2", "-", "3"}, texts)
	assert.Equal(t, "3", c.Prev().Text())

	// The cursor sticks at EOF.
	assert.Equal(t, token.EOF, c.Next().Kind())
	assert.Equal(t, token.EOF, c.Next().Kind())
	assert.Equal(t, token.EOF, c.Peek().Kind())
	assert.True(t, c.Done())
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+", token.Plus.String())
	assert.Equal(t, "-", token.Minus.String())
	assert.Equal(t, "token.Op(42)", token.Op('*').String())

	assert.Equal(t, "Number", token.Number.String())
	assert.Equal(t, "Kind(9)", token.Kind(9).String())
	assert.Equal(t, 3, token.NumKinds)
}
