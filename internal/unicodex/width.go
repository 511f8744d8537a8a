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

// Package unicodex measures how many terminal cells text occupies.
package unicodex

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth int = 4

// NonPrint defines whether or not a rune is considered "unprintable for the
// purposes of diagnostics", that is, whether it is a rune that the diagnostics
// engine will replace with <U+NNNN> when printing.
func NonPrint(r rune) bool {
	return !strings.ContainsRune(" \r\t\n", r) && !unicode.IsPrint(r)
}

// Width is used for calculating the approximate width of a string in terminal
// columns.
type Width struct {
	// The column at which the text is being rendered. This is necessary for
	// tabstop calculations.
	Column int

	// The width of a tabstop in columns. If set to zero, [TabstopWidth] is
	// used.
	Tabstop int

	// If set, non-printable characters are escaped in the format <U+NNNN>,
	// and invalid UTF-8 bytes in the format <NN>.
	EscapeNonPrint bool

	// If non-nil, text will be output to this writer, converting tabs to
	// spaces and escaping unprintables as requested.
	Out io.StringWriter
}

// WriteString writes the given text, advancing w.Column and writing to w.Out.
func (w *Width) WriteString(text string) (int, error) {
	n := 0
	write := func(s string) error {
		if w.Out != nil {
			m, err := w.Out.WriteString(s)
			n += m
			return err
		}
		return nil
	}

	tabstop := w.Tabstop
	if tabstop <= 0 {
		tabstop = TabstopWidth
	}

	// We can't just use uniseg.StringWidth, because that doesn't respect
	// tabstops correctly.
	for i, next := range strings.Split(text, "\t") {
		if i > 0 {
			tab := tabstop - (w.Column % tabstop)
			w.Column += tab
			if err := write(strings.Repeat(" ", tab)); err != nil {
				return n, err
			}
		}

		if !w.EscapeNonPrint {
			w.Column += uniseg.StringWidth(next)
			if err := write(next); err != nil {
				return n, err
			}
			continue
		}

		for next != "" {
			idx := nextNonPrint(next)
			if idx == -1 {
				w.Column += uniseg.StringWidth(next)
				if err := write(next); err != nil {
					return n, err
				}
				break
			}

			var chunk string
			chunk, next = next[:idx], next[idx:]

			var escape string
			r, size := utf8.DecodeRuneInString(next)
			if r == utf8.RuneError && size <= 1 {
				escape = fmt.Sprintf("<%02X>", next[0])
				next = next[1:]
			} else {
				escape = fmt.Sprintf("<U+%04X>", r)
				next = next[size:]
			}

			w.Column += uniseg.StringWidth(chunk) + len(escape)
			if err := write(chunk); err != nil {
				return n, err
			}
			if err := write(escape); err != nil {
				return n, err
			}
		}
	}

	return n, nil
}

// nextNonPrint returns the byte offset of the first rune in s which must be
// escaped, or -1.
func nextNonPrint(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				return i
			}
		}
		if NonPrint(r) {
			return i
		}
	}
	return -1
}
