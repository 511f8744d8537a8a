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
	"runtime"

	"github.com/bufbuild/exprc/source"
)

// Tag is a diagnostic tag: a machine-readable identification for a diagnostic.
//
// Tags should be lowercase identifiers separated by dashes, e.g. my-error-tag.
// If a package generates diagnostics with tags, it should expose those tags as
// constants.
type Tag string

// Apply implements [DiagnosticOption].
func (t Tag) Apply(d *Diagnostic) {
	if d.Tag != "" {
		panic("exprc/report: set diagnostic tag more than once")
	}
	d.Tag = t
}

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set Err; it is set by the diagnostics
	// framework.
	Diagnose(*Diagnostic)
}

// Diagnostic is a type of error that can be rendered as a rich diagnostic.
//
// Every diagnostic is an error: a report containing any diagnostics means
// that the compiler produced no output.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used
	// as the diagnostic message.
	Err error

	// A machine-readable identifier for this diagnostic. May be empty.
	Tag Tag

	// The file this diagnostic occurs in, if it has no associated Annotations.
	InFile string

	// A list of annotated source code spans in the diagnostic.
	Annotations []Annotation

	// Notes and help messages to include at the end of the diagnostic, after the
	// Annotations.
	Notes, Help, Debug []string

	// Stack trace information for the diagnostic, for use in debugging
	// the compiler. Only populated when the env var EXPRC_DEBUG is set.
	trace []runtime.Frame
}

// Annotation is an annotated source code snippet within a [Diagnostic].
type Annotation struct {
	// The annotated span. Zero-length spans are rendered as pointing at a
	// single column.
	source.Span

	// A message to show under this snippet. May be empty.
	Message string

	// Whether this is the "primary" snippet, which is underlined with carets
	// rather than dashes.
	Primary bool
}

// Primary returns this diagnostic's primary snippet, if it has one.
//
// If it doesn't have one, it returns an annotation with a zero span.
func (d *Diagnostic) Primary() Annotation {
	for _, annotation := range d.Annotations {
		if annotation.Primary {
			return annotation
		}
	}
	return Annotation{}
}

// Path returns the path of the file this diagnostic is about, if known.
func (d *Diagnostic) Path() string {
	if primary := d.Primary(); !primary.IsZero() {
		return primary.Path()
	}
	return d.InFile
}

// Trace returns the call frames recorded when this diagnostic was created.
//
// This is empty unless EXPRC_DEBUG was set when the process started.
func (d *Diagnostic) Trace() []runtime.Frame {
	return d.trace
}

// With applies the given options to this diagnostic.
//
// Nil values are ignored.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option.Apply(d)
		}
	}
	return d
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
//
// Nil values passed to [Diagnostic.With] are ignored.
type DiagnosticOption interface {
	Apply(*Diagnostic)
}

// InFile is a DiagnosticOption that causes a diagnostic without a primary
// span to mention the given file.
type InFile string

// Apply implements [DiagnosticOption].
func (f InFile) Apply(d *Diagnostic) {
	if d.InFile != "" {
		panic("exprc/report: set diagnostic path more than once")
	}
	d.InFile = string(f)
}

// Snippet returns a DiagnosticOption that adds a new snippet with no message
// to a diagnostic.
//
// The first annotation added is the "primary" annotation, and will be rendered
// differently from the others.
//
// If at is nil or has a zero span, this function returns nil.
func Snippet(at source.Spanner) DiagnosticOption {
	return Snippetf(at, "")
}

// Snippetf returns a DiagnosticOption that adds a new snippet to a diagnostic
// with the given message.
//
// If at is nil or has a zero span, this function returns nil.
func Snippetf(at source.Spanner, format string, args ...any) DiagnosticOption {
	if at == nil {
		return nil
	}
	span := at.Span()
	if span.IsZero() {
		return nil
	}

	return Annotation{
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	}
}

// Apply implements [DiagnosticOption].
func (a Annotation) Apply(d *Diagnostic) {
	a.Primary = len(d.Annotations) == 0
	d.Annotations = append(d.Annotations, a)
}

// Note returns a DiagnosticOption that provides the user with context about the
// diagnostic, after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	return note(fmt.Sprintf(format, args...))
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return help(fmt.Sprintf(format, args...))
}

// Debug returns a DiagnosticOption appends debugging information to a diagnostic that
// is not intended to be shown to normal users.
func Debug(format string, args ...any) DiagnosticOption {
	return debug(fmt.Sprintf(format, args...))
}

type (
	note  string
	help  string
	debug string
)

func (n note) Apply(d *Diagnostic)  { d.Notes = append(d.Notes, string(n)) }
func (n help) Apply(d *Diagnostic)  { d.Help = append(d.Help, string(n)) }
func (n debug) Apply(d *Diagnostic) { d.Debug = append(d.Debug, string(n)) }
