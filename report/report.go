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
	"strings"
)

// Report is a collection of diagnostics.
//
// A zero Report is empty and ready to use.
type Report struct {
	Diagnostics []Diagnostic
}

// Error pushes a diagnostic for err onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	d := r.push(1, err)
	err.Diagnose(d)
	return d
}

// Errorf creates a new diagnostic with an unspecified error type; analogous to
// [fmt.Errorf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...))
}

// Append copies every diagnostic in other onto the end of this report.
func (r *Report) Append(other *Report) {
	if other != nil {
		r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)
	}
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(skip int, err error) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Err: err})
	d := &r.Diagnostics[len(r.Diagnostics)-1]

	// If debugging is on, capture a stack trace.
	if debugMode > debugOff {
		// Unwind the stack to find program counter information.
		pc := make([]uintptr, 64)
		pc = pc[:runtime.Callers(skip+2, pc)]
		if debugMode < debugFull && len(pc) > 1 {
			pc = pc[:1]
		}

		// Fill trace with the result.
		var zero runtime.Frame
		frames := runtime.CallersFrames(pc)
		for {
			next, more := frames.Next()
			if next != zero {
				d.trace = append(d.trace, next)
			}
			if !more {
				break
			}
		}
	}
	return d
}

// AsError wraps a [Report] as an [error].
//
// Unwrapping it produces the Err of every diagnostic, so [errors.As] can be
// used to look for a specific diagnostic type.
type AsError struct {
	Report Report
}

// Error implements [error].
func (e *AsError) Error() string {
	text, _ := Renderer{Compact: true}.RenderString(&e.Report)
	return strings.TrimSuffix(text, "\n")
}

// Unwrap returns the errors underlying each diagnostic.
func (e *AsError) Unwrap() []error {
	errs := make([]error, 0, len(e.Report.Diagnostics))
	for _, d := range e.Report.Diagnostics {
		errs = append(errs, d.Err)
	}
	return errs
}
