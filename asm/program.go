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

package asm

import (
	"fmt"
	"io"
	"strings"
)

//go:generate go run ../internal/enum op.yaml

// DefaultEntry is the symbol a [Program] is exported under unless told
// otherwise. The C runtime calls it, and uses its return value as the exit
// status.
const DefaultEntry = "main"

// Instruction is a single machine instruction.
//
// [Ret] ignores Dst and Imm. Every other op writes Dst.
type Instruction struct {
	Op  Op
	Dst Register
	Imm int32
}

// String implements [fmt.Stringer].
//
// The result is the instruction in Intel syntax, such as "add rax, 1".
func (i Instruction) String() string {
	if i.Op == Ret {
		return i.Op.String()
	}
	return fmt.Sprintf("%v %v, %d", i.Op, i.Dst, i.Imm)
}

// Program is a function consisting of a straight-line sequence of
// instructions.
type Program struct {
	// The symbol this function is exported under.
	Entry string

	Instructions []Instruction
}

// NewProgram returns an empty program with the [DefaultEntry] symbol.
func NewProgram() *Program {
	return &Program{Entry: DefaultEntry}
}

// Push appends an instruction to p.
func (p *Program) Push(inst Instruction) {
	p.Instructions = append(p.Instructions, inst)
}

// WriteTo implements [io.WriterTo].
//
// It writes p as a complete assembler source file:
//
//	.intel_syntax noprefix
//	.globl main
//	main:
//	  mov rax, 42
//	  ret
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String())
	return int64(n), err
}

// String implements [fmt.Stringer].
//
// This is the same text that [Program.WriteTo] writes.
func (p *Program) String() string {
	var out strings.Builder
	out.WriteString(".intel_syntax noprefix\n")
	fmt.Fprintf(&out, ".globl %s\n", p.Entry)
	fmt.Fprintf(&out, "%s:\n", p.Entry)
	for _, inst := range p.Instructions {
		fmt.Fprintf(&out, "  %v\n", inst)
	}
	return out.String()
}
