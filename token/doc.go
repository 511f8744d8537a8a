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

// Package token provides the token representation shared by the lexer and
// the code generator.
//
// A [Stream] is a fully materialized sequence of [Token]s over a
// [source.File]. Once the lexer is done with a stream it is frozen, which
// appends the single [EOF] token every stream ends with. Consumers walk a
// frozen stream with a [Cursor], which only ever moves forward.
package token
