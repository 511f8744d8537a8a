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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/exprc/source"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "1 + 2\n\t- 3\n日本 + 4")

	tests := []struct {
		offset       int
		line, column int
	}{
		{offset: 0, line: 1, column: 1},
		{offset: 2, line: 1, column: 3},
		{offset: 5, line: 1, column: 6},
		{offset: 6, line: 2, column: 1},
		{offset: 7, line: 2, column: 5},
		{offset: 9, line: 2, column: 7},
		{offset: 11, line: 3, column: 1},
		{offset: 18, line: 3, column: 6},
	}

	for _, tt := range tests {
		loc := file.Location(tt.offset)
		assert.Equal(t, tt.offset, loc.Offset)
		assert.Equal(t, tt.line, loc.Line, "offset %d", tt.offset)
		assert.Equal(t, tt.column, loc.Column, "offset %d", tt.offset)
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "1 + 2\n\t- 3\n")
	assert.Equal(t, "1 + 2", file.Line(1))
	assert.Equal(t, "\t- 3", file.Line(2))
	assert.Empty(t, file.Line(3))

	start, end := file.LineOffsets(2)
	assert.Equal(t, 6, start)
	assert.Equal(t, 11, end)

	assert.Panics(t, func() { file.LineOffsets(4) })

	empty := source.NewFile("empty", "")
	assert.Empty(t, empty.Line(1))
}

func TestEOF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, source.NewFile("", "1+2").EOF().Start)
	assert.Equal(t, 3, source.NewFile("", " 1+ \n\t").EOF().Start)
	assert.Equal(t, 0, source.NewFile("", "   ").EOF().Start)
	assert.Equal(t, 0, source.NewFile("", "").EOF().Start)
	assert.True(t, (*source.File)(nil).EOF().IsZero())
}

func TestSpan(t *testing.T) {
	t.Parallel()

	file := source.NewFile("expr", "10 + 20")
	span := file.Span(5, 7)
	require.False(t, span.IsZero())
	assert.Equal(t, "20", span.Text())
	assert.Equal(t, 2, span.Len())
	assert.Equal(t, 6, span.StartLoc().Column)
	assert.Equal(t, 8, span.EndLoc().Column)
	assert.Equal(t, `"expr":1:6[5:7]`, span.String())

	assert.Panics(t, func() { file.Span(3, 100) })
	assert.True(t, source.Span{}.IsZero())
}
