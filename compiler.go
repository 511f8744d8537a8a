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

package exprc

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/exprc/asm"
	"github.com/bufbuild/exprc/codegen"
	"github.com/bufbuild/exprc/lexer"
	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/source"
)

// Compiler turns expression source files into assembly programs.
//
// The zero value is ready to use.
type Compiler struct {
	// The maximum parallelism to use when compiling. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int

	// The symbol that compiled programs are exported under. If empty,
	// [asm.DefaultEntry] is used.
	Entry string
}

// CompileFile compiles a single file.
//
// On failure, the returned error is a [*report.AsError] containing exactly
// one diagnostic, whose Err is either a [*lexer.Error] or a [*codegen.Error].
func (c *Compiler) CompileFile(file *source.File) (*asm.Program, error) {
	prog, err := c.compile(file)
	if err != nil {
		r := new(report.Report)
		r.Error(err)
		return nil, &report.AsError{Report: *r}
	}
	return prog, nil
}

// Compile compiles the given files in parallel.
//
// The returned slice has one entry per file, in the same order. If any file
// fails to compile, its entry is nil and the returned error is a
// [*report.AsError] with one diagnostic per failed file, again in input
// order. Files that compiled successfully are still returned in that case.
//
// If ctx is cancelled before every file has been compiled, Compile returns
// nil and the context's error.
func (c *Compiler) Compile(ctx context.Context, files ...*source.File) ([]*asm.Program, error) {
	if len(files) == 0 {
		return nil, nil
	}

	progs := make([]*asm.Program, len(files))
	errs := make([]report.Diagnose, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism())
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			progs[i], errs[i] = c.compile(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := new(report.Report)
	for _, err := range errs {
		if err != nil {
			r.Error(err)
		}
	}
	if len(r.Diagnostics) > 0 {
		return progs, &report.AsError{Report: *r}
	}
	return progs, nil
}

// compile runs every phase on file.
//
// Both phases only ever return errors that can be diagnosed, so failures are
// returned as a [report.Diagnose] rather than an error.
func (c *Compiler) compile(file *source.File) (*asm.Program, report.Diagnose) {
	stream, err := lexer.Lex(file)
	if err != nil {
		return nil, diagnosable(err)
	}

	prog, err := codegen.Generate(stream)
	if err != nil {
		return nil, diagnosable(err)
	}
	if c.Entry != "" {
		prog.Entry = c.Entry
	}
	return prog, nil
}

func (c *Compiler) parallelism() int {
	if c.MaxParallelism > 0 {
		return c.MaxParallelism
	}
	return min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
}

func diagnosable(err error) report.Diagnose {
	var d report.Diagnose
	if !errors.As(err, &d) {
		panic("exprc: compiler phase returned an undiagnosable error: " + err.Error())
	}
	return d
}
