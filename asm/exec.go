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
	"errors"
	"fmt"
)

var (
	// ErrNoReturn is returned by [Program.Exec] when execution runs past the
	// last instruction.
	ErrNoReturn = errors.New("asm: execution fell off the end of the program")

	// ErrUninitialized is returned by [Program.Exec] when an instruction reads
	// a register before anything has been written to it.
	ErrUninitialized = errors.New("asm: read of uninitialized register")
)

// Exec runs p and returns the value of [RAX] at the first [Ret].
//
// Registers are 64 bits wide. Immediates are sign-extended, and arithmetic
// wraps around the way the hardware does. Execution fails if it reaches the
// end of p without returning, or if RAX is read before a [Mov] writes it.
func (p *Program) Exec() (int64, error) {
	var rax int64
	var written bool
	for i, inst := range p.Instructions {
		if inst.Op != Ret && inst.Dst != RAX {
			return 0, fmt.Errorf("asm: instruction %d (%v): unsupported register %#v", i, inst, inst.Dst)
		}

		switch inst.Op {
		case Mov:
			rax = int64(inst.Imm)
			written = true

		case Add, Sub:
			if !written {
				return 0, fmt.Errorf("%w: instruction %d (%v)", ErrUninitialized, i, inst)
			}
			if inst.Op == Add {
				rax += int64(inst.Imm)
			} else {
				rax -= int64(inst.Imm)
			}

		case Ret:
			if !written {
				return 0, fmt.Errorf("%w: instruction %d (%v)", ErrUninitialized, i, inst)
			}
			return rax, nil

		default:
			return 0, fmt.Errorf("asm: instruction %d: unknown op %#v", i, inst.Op)
		}
	}
	return 0, fmt.Errorf("%w after %d instructions", ErrNoReturn, len(p.Instructions))
}

// ExitStatus converts a value returned from a program's entry point into the
// exit status a POSIX parent process observes, i.e. its low 8 bits.
func ExitStatus(rax int64) int {
	return int(uint8(rax))
}
