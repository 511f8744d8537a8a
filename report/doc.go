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

/*
Package report provides a small diagnostics framework: diagnostic
construction, collection, and rendering for terminals.

Diagnostics are collected into a [Report], which is a helpful builder over
a slice of [Diagnostic]s. Each [Diagnostic] consists of a Go error plus
metadata for rendering, such as source code spans, notes, and suggestions.

Reports can be rendered using a [Renderer], which either produces one line
per diagnostic in the style of the Go compiler, or an annotated source
window in the style of the Rust compiler.

# Defining Diagnostics

Generally, to define a diagnostic, you should define a new Go error type,
and then make it implement [Diagnose]. Callers looking through a Report can
then type assert Diagnostic.Err (or use [errors.As] on an [AsError]) to
determine the nature of a diagnostic programmatically.

# Diagnostics Style

Diagnostic messages do not begin with a capital letter and do not end in
punctuation. The words "error", "help", and "note" are
never capitalized. The primary span of a diagnostic should be precisely the
code that resulted in the error, and should be as small as possible.

When talking about the tool, call it "the compiler". It does not speak in
first person.
*/
package report
