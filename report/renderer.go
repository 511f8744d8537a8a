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

package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/bufbuild/exprc/internal/unicodex"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering a diagnostic will show the debug footer.
	ShowDebug bool
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns the number of
// diagnostics it rendered.
//
// On the other hand, the actual error-typed return is an error when writing to
// the writer.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount int, err error) {
	for _, d := range report.Diagnostics {
		if _, err = fmt.Fprintln(out, r.Diagnostic(d)); err != nil {
			return errorCount, err
		}
		if !r.Compact {
			if _, err = fmt.Fprintln(out); err != nil {
				return errorCount, err
			}
		}
		errorCount++
	}

	switch {
	case r.Compact, errorCount == 0:
	case errorCount == 1:
		_, err = fmt.Fprintln(out, "encountered 1 error")
	default:
		_, err = fmt.Fprintln(out, "encountered", errorCount, "errors")
	}
	return errorCount, err
}

// RenderString is a helper for calling [Renderer.Render] with a [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount int) {
	var buf strings.Builder
	errorCount, _ = r.Render(report, &buf)
	return buf.String(), errorCount
}

// Diagnostic renders a single diagnostic to a string.
func (r Renderer) Diagnostic(d Diagnostic) string {
	// For the simple style, we imitate the Go compiler.
	if r.Compact {
		primary := d.Primary()
		switch {
		case !primary.IsZero():
			start := primary.StartLoc()
			return fmt.Sprintf(
				"error: %s:%d:%d: %s",
				primary.Path(), start.Line, start.Column, d.Err.Error(),
			)
		case d.InFile != "":
			return fmt.Sprintf("error: %s: %s", d.InFile, d.Err.Error())
		default:
			return "error: " + d.Err.Error()
		}
	}

	// For the multi-line style, we imitate the Rust compiler. See
	// https://github.com/rust-lang/rustc-dev-guide/blob/master/src/diagnostics.md
	var out strings.Builder
	fmt.Fprint(&out, "error: ", d.Err.Error())

	// Figure out how wide the line bar needs to be. This is given by
	// the width of the largest line value among the annotations.
	var greatestLine int
	for _, a := range d.Annotations {
		greatestLine = max(greatestLine, a.EndLoc().Line)
	}
	lineBarWidth := max(2, len(strconv.Itoa(greatestLine)))

	// Render one window per run of annotations in the same file.
	for i, window := range partition(d.Annotations) {
		first := window[0]
		if i == 0 {
			first = d.Primary()
		}
		start := first.StartLoc()

		arrow := "-->"
		if i > 0 {
			arrow = ":::"
		}
		fmt.Fprintf(&out, "\n%s%s %s:%d:%d", pad(lineBarWidth), arrow, first.Path(), start.Line, start.Column)
		fmt.Fprintf(&out, "\n%s |", pad(lineBarWidth))
		renderWindow(&out, lineBarWidth, window)
	}

	// Render a remedial file name for spanless errors.
	if len(d.Annotations) == 0 && d.InFile != "" {
		fmt.Fprintf(&out, "\n%s--> %s", pad(lineBarWidth), d.InFile)
	}

	// Render the footers. For simplicity we collect them into an array first.
	type footer struct{ label, text string }
	var footers []footer
	for _, note := range d.Notes {
		footers = append(footers, footer{"note", note})
	}
	for _, help := range d.Help {
		footers = append(footers, footer{"help", help})
	}
	if r.ShowDebug {
		for _, debug := range d.Debug {
			footers = append(footers, footer{"debug", debug})
		}
		for _, frame := range d.trace {
			footers = append(footers, footer{"debug", fmt.Sprintf("at %s\n%s:%d", frame.Function, frame.File, frame.Line)})
		}
	}
	for _, f := range footers {
		fmt.Fprintf(&out, "\n%s = %s: ", pad(lineBarWidth), f.label)
		for i, line := range strings.Split(f.text, "\n") {
			if i > 0 {
				out.WriteByte('\n')
				out.WriteString(pad(lineBarWidth + 3 + len(f.label) + 2))
			}
			out.WriteString(line)
		}
	}

	return out.String()
}

// renderWindow renders the source lines touched by annotations, each followed
// by underlines for the annotations that start on it.
func renderWindow(out *strings.Builder, lineBarWidth int, annotations []Annotation) {
	byLine := make(map[int][]Annotation)
	var lines []int
	for _, a := range annotations {
		line := a.StartLoc().Line
		if _, ok := byLine[line]; !ok {
			lines = append(lines, line)
		}
		byLine[line] = append(byLine[line], a)
	}
	slices.Sort(lines)

	file := annotations[0].File
	for i, line := range lines {
		if i > 0 && line > lines[i-1]+1 {
			fmt.Fprintf(out, "\n%s...", pad(lineBarWidth))
		}

		var text strings.Builder
		w := &unicodex.Width{EscapeNonPrint: true, Out: &text}
		_, _ = w.WriteString(strings.TrimSuffix(file.Line(line), "\r"))
		fmt.Fprintf(out, "\n%*d | %s", lineBarWidth, line, text.String())
		lineWidth := w.Column

		group := byLine[line]
		slices.SortStableFunc(group, func(a, b Annotation) int { return a.Start - b.Start })
		for _, a := range group {
			start, end := a.StartLoc(), a.EndLoc()
			width := end.Column - start.Column
			if end.Line != start.Line {
				width = lineWidth - start.Column + 1
			}
			width = max(1, width)

			mark := "-"
			if a.Primary {
				mark = "^"
			}

			fmt.Fprintf(out, "\n%s |%s%s", pad(lineBarWidth), pad(start.Column), strings.Repeat(mark, width))
			if a.Message != "" {
				fmt.Fprint(out, " ", a.Message)
			}
		}
	}
}

// partition splits annotations into runs that share a file.
func partition(annotations []Annotation) [][]Annotation {
	var parts [][]Annotation
	for i, a := range annotations {
		if i == 0 || a.File != annotations[i-1].File {
			parts = append(parts, nil)
		}
		parts[len(parts)-1] = append(parts[len(parts)-1], a)
	}
	return parts
}

func pad(n int) string {
	return strings.Repeat(" ", n)
}
