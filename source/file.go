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

package source

import (
	"strings"
	"sync"

	"github.com/tidwall/btree"

	"github.com/bufbuild/exprc/internal/unicodex"
)

// File is a source code file involved in a diagnostic.
//
// It contains additional book-keeping information for resolving span locations.
// Files are immutable once created.
//
// A nil *File behaves like an empty file with the path name "".
type File struct {
	path, text string

	once sync.Once
	// Maps the offset of the first byte of each line to that line's 1-indexed
	// number. Given a byte offset, the line containing it is the greatest key
	// that is not greater than the offset.
	lines btree.Map[int, int]
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's path.
//
// It doesn't need to be a real path; command-line expressions use a
// placeholder name.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Span is a shorthand for creating a new Span.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}
	if start < 0 || end > len(f.text) || start > end {
		panic("exprc/source: span out of bounds")
	}
	return Span{File: f, Start: start, End: end}
}

// EOF returns an empty Span pointing just past the last non-whitespace byte
// of the file.
func (f *File) EOF() Span {
	if f == nil {
		return Span{}
	}

	eof := strings.TrimRight(f.text, " \t\n\v\f\r")
	return f.Span(len(eof), len(eof))
}

// Location searches this file's line index to build full Location
// information for the given byte offset.
//
// Columns are measured in terminal cells, with tabs expanded to
// [unicodex.TabstopWidth].
//
// This operation is O(log n).
func (f *File) Location(offset int) Location {
	if f == nil || offset == 0 {
		return Location{Offset: offset, Line: 1, Column: 1}
	}

	start, line := f.lineStart(offset)
	w := &unicodex.Width{EscapeNonPrint: true}
	_, _ = w.WriteString(f.text[start:offset])

	return Location{
		Offset: offset,
		Line:   line,
		Column: w.Column + 1,
	}
}

// Line returns the given 1-indexed line, without its trailing newline.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return strings.TrimSuffix(f.Text()[start:end], "\n")
}

// LineOffsets returns the offsets for the given 1-indexed line, including
// its trailing newline.
func (f *File) LineOffsets(line int) (start, end int) {
	if f == nil {
		return 0, 0
	}
	f.index()

	end = len(f.Text())
	found := false
	f.lines.Scan(func(offset, number int) bool {
		switch {
		case number == line:
			start, found = offset, true
		case number == line+1:
			end = offset
			return false
		}
		return true
	})
	if !found {
		panic("exprc/source: line out of bounds")
	}
	return start, end
}

// lineStart returns the offset of the start of the line containing offset,
// and the 1-indexed number of that line.
func (f *File) lineStart(offset int) (start, line int) {
	f.index()
	f.lines.Descend(offset, func(k, v int) bool {
		start, line = k, v
		return false
	})
	return start, line
}

// index builds the line index on demand.
func (f *File) index() {
	if f == nil {
		return
	}

	f.once.Do(func() {
		f.lines.Set(0, 1)

		// We add 1 to the return value of IndexByte because we want to work
		// with the index immediately *after* the newline byte.
		text, next := f.text, 0
		for line := 2; ; line++ {
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			text = text[newline:]
			next += newline
			f.lines.Set(next, line)
		}
	})
}
