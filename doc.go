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

// Package exprc compiles arithmetic expressions to x86-64 assembly.
//
// An expression is a sequence of non-negative integer literals separated by
// binary + and - operators, such as
//
//	10 + 20 - 3
//
// It is evaluated strictly from left to right. The compiled program is a
// single function, main, that computes the expression in rax and returns it,
// so running the assembled binary exits with the result as its status.
//
// Compilation happens in two phases, each in its own package:
//  1. Lexing the source into a token stream.
//     Also see: lexer.Lex
//  2. Generating code directly from the token stream. There is no syntax
//     tree in between.
//     Also see: codegen.Generate
//
// A [Compiler] runs both phases, and can compile many files in parallel.
// Failures are reported as a [*report.AsError], which can be rendered
// either as one line per error or with annotated source snippets using a
// [report.Renderer].
package exprc
