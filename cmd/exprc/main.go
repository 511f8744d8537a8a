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

// Command exprc compiles an arithmetic expression to x86-64 assembly.
//
// Usage:
//
//	exprc <expr>
//
// The expression is passed as a single argument. On success, assembler source
// for a main function that returns the expression's value is written to
// stdout. On failure, a single diagnostic line is written to stderr and the
// exit status is 1.
//
// Setting EXPRC_DEBUG=1 records where in the compiler each diagnostic was
// created; the trace is shown by the multi-line renderer in package report.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/bufbuild/exprc"
	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/source"
)

// exprPath is the file name diagnostics use for the expression argument.
const exprPath = "<expr>"

// TagUsage is the tag for diagnostics about how exprc was invoked.
const TagUsage report.Tag = "usage"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole command, minus the process. It returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	r := new(report.Report)
	if len(args) != 1 {
		r.Error(usageError{args: len(args)})
		return fail(r, stderr)
	}

	prog, err := new(exprc.Compiler).CompileFile(source.NewFile(exprPath, args[0]))
	if err != nil {
		var asErr *report.AsError
		if !errors.As(err, &asErr) {
			panic("exprc: compiler returned an undiagnosable error: " + err.Error())
		}
		r.Append(&asErr.Report)
		return fail(r, stderr)
	}

	if _, err := prog.WriteTo(stdout); err != nil {
		r.Errorf("could not write assembly: %v", err)
		return fail(r, stderr)
	}
	return 0
}

// fail renders r to stderr, one line per diagnostic, and returns the exit
// status for a failed run.
func fail(r *report.Report, stderr io.Writer) int {
	_, _ = report.Renderer{Compact: true}.Render(r, stderr)
	return 1
}

// usageError is reported when exprc is not given exactly one argument.
type usageError struct {
	args int
}

func (e usageError) Error() string {
	return "usage: exprc " + exprPath
}

func (e usageError) Diagnose(d *report.Diagnostic) {
	d.With(
		TagUsage,
		report.Note("got %d arguments", e.args),
		report.Help("quote the expression so that it is a single argument, e.g. exprc '1 + 2'"),
	)
}
