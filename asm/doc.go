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

// Package asm models the tiny subset of x86-64 that exprc emits.
//
// A [Program] is a single function that loads an immediate into [RAX], adjusts
// it with further immediates, and returns it. Programs are rendered as GNU
// assembler source in Intel syntax, and can be read back with [Parse] and run
// with [Program.Exec], which is how tests check generated code without an
// assembler.
package asm
