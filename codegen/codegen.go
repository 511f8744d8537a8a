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

// Package codegen translates a token stream directly into an [asm.Program].
//
// There is no syntax tree. The generator walks the stream once with a single
// [token.Cursor], following the grammar
//
//	expr := Number (('+' | '-') Number)*
//
// and emits one instruction for every Number it consumes: a [asm.Mov] for the
// first, and an [asm.Add] or [asm.Sub] for each one after an operator. The
// end of input emits a [asm.Ret].
package codegen

import (
	"github.com/bufbuild/exprc/asm"
	"github.com/bufbuild/exprc/token"
)

// Generate generates code for a frozen token stream.
//
// On failure, the returned error is always an [*Error], and no program is
// returned.
func Generate(stream *token.Stream) (*asm.Program, error) {
	g := &generator{
		cursor: stream.Cursor(),
		prog:   asm.NewProgram(),
	}
	if err := g.run(); err != nil {
		return nil, err
	}
	return g.prog, nil
}

// generator is the state for a single call to [Generate].
type generator struct {
	cursor *token.Cursor
	prog   *asm.Program
}

// run is the generator's state machine. The start state is the code before
// the loop; the loop state is the loop, which ends at EOF.
func (g *generator) run() error {
	n, err := g.number(token.Token{})
	if err != nil {
		return err
	}
	g.emit(asm.Mov, n)

	for !g.cursor.Done() {
		prev := g.cursor.Prev()
		op := g.cursor.Next()
		if !op.IsOp(token.Plus) && !op.IsOp(token.Minus) {
			return &Error{Want: token.Operator, Got: op, Prev: prev}
		}

		n, err = g.number(op)
		if err != nil {
			return err
		}
		if op.IsOp(token.Plus) {
			g.emit(asm.Add, n)
		} else {
			g.emit(asm.Sub, n)
		}
	}

	g.prog.Push(asm.Instruction{Op: asm.Ret})
	return nil
}

// number consumes the next token, which must be a number. after is the
// operator that requires it, if any.
func (g *generator) number(after token.Token) (int32, error) {
	tok := g.cursor.Next()
	n, ok := tok.AsNumber()
	if !ok {
		return 0, &Error{Want: token.Number, Got: tok, Prev: after}
	}
	return n, nil
}

func (g *generator) emit(op asm.Op, imm int32) {
	g.prog.Push(asm.Instruction{Op: op, Dst: asm.RAX, Imm: imm})
}
