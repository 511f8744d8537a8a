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
	"math"
	"strings"

	"github.com/bufbuild/exprc/internal/decimal"
)

// SyntaxError is returned by [Parse] for text it does not understand.
type SyntaxError struct {
	Line    int // 1-indexed.
	Message string
}

// Error implements [error].
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("asm: line %d: %s", e.Line, e.Message)
}

// Parse parses assembler source in the format written by [Program.WriteTo].
//
// Blank lines and lines starting with # are ignored. Leading and trailing
// whitespace on each line is not significant.
func Parse(text string) (*Program, error) {
	p := new(Program)

	// The three header lines must appear in order before any instruction.
	const (
		wantSyntax = iota
		wantGlobl
		wantLabel
		inBody
	)
	state := wantSyntax

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fail := func(format string, args ...any) error {
			return &SyntaxError{Line: i + 1, Message: fmt.Sprintf(format, args...)}
		}

		switch state {
		case wantSyntax:
			if line != ".intel_syntax noprefix" {
				return nil, fail("expected .intel_syntax noprefix, got %q", line)
			}
			state++

		case wantGlobl:
			sym, ok := strings.CutPrefix(line, ".globl ")
			if !ok || strings.TrimSpace(sym) == "" {
				return nil, fail("expected .globl directive, got %q", line)
			}
			p.Entry = strings.TrimSpace(sym)
			state++

		case wantLabel:
			if line != p.Entry+":" {
				return nil, fail("expected label %s:, got %q", p.Entry, line)
			}
			state++

		case inBody:
			inst, err := parseInstruction(line)
			if err != nil {
				return nil, fail("%v", err)
			}
			p.Push(inst)
		}
	}

	if state != inBody {
		return nil, &SyntaxError{Line: strings.Count(text, "\n") + 1, Message: "unexpected end of input"}
	}
	return p, nil
}

func parseInstruction(line string) (Instruction, error) {
	mnemonic, operands, _ := strings.Cut(line, " ")
	op := LookupOp(mnemonic)
	switch op {
	case BadOp:
		return Instruction{}, fmt.Errorf("unknown instruction %q", mnemonic)
	case Ret:
		if strings.TrimSpace(operands) != "" {
			return Instruction{}, fmt.Errorf("%v takes no operands", op)
		}
		return Instruction{Op: op}, nil
	}

	dst, src, ok := strings.Cut(operands, ",")
	if !ok {
		return Instruction{}, fmt.Errorf("%v expects two operands", op)
	}
	reg := LookupRegister(strings.TrimSpace(dst))
	if reg == NoRegister {
		return Instruction{}, fmt.Errorf("unknown register %q", strings.TrimSpace(dst))
	}
	imm, ok := parseImm(strings.TrimSpace(src))
	if !ok {
		return Instruction{}, fmt.Errorf("invalid 32-bit immediate %q", strings.TrimSpace(src))
	}
	return Instruction{Op: op, Dst: reg, Imm: imm}, nil
}

// parseImm parses an optionally negative decimal immediate.
func parseImm(text string) (int32, bool) {
	digits, neg := strings.CutPrefix(text, "-")
	if neg {
		n, ok := decimal.Parse(digits, -int64(math.MinInt32))
		return int32(-n), ok
	}
	n, ok := decimal.Parse(digits, int64(math.MaxInt32))
	return int32(n), ok
}
