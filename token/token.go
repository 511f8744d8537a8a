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

package token

import (
	"fmt"

	"github.com/bufbuild/exprc/source"
)

//go:generate go run ../internal/enum kind.yaml

// Op is the symbol carried by an [Operator] token.
type Op byte

const (
	Plus  Op = '+'
	Minus Op = '-'
)

// String implements [fmt.Stringer].
func (o Op) String() string {
	switch o {
	case Plus, Minus:
		return string(rune(o))
	default:
		return fmt.Sprintf("token.Op(%d)", byte(o))
	}
}

// Token is a lexical element of an expression.
//
// Tokens are created by a [Stream] and are immutable afterwards. The zero
// Token is an [EOF] token with no span.
type Token struct {
	kind  Kind
	op    Op
	value int32
	span  source.Span
}

// Kind returns what kind of token this is.
func (t Token) Kind() Kind {
	return t.kind
}

// Span implements [source.Spanner].
func (t Token) Span() source.Span {
	return t.span
}

// Text returns the source text this token was lexed from. [EOF] tokens have
// no text.
func (t Token) Text() string {
	if t.span.IsZero() {
		return ""
	}
	return t.span.Text()
}

// Op returns the operator symbol of an [Operator] token, and zero for every
// other kind.
func (t Token) Op() Op {
	return t.op
}

// AsNumber returns the value of a [Number] token.
//
// Returns false if this is not a number.
func (t Token) AsNumber() (int32, bool) {
	if t.kind != Number {
		return 0, false
	}
	return t.value, true
}

// IsOp returns whether this is an [Operator] token carrying op.
func (t Token) IsOp(op Op) bool {
	return t.kind == Operator && t.op == op
}

// Canonical returns this token's text with anything that does not affect its
// meaning removed, such as leading zeros.
func (t Token) Canonical() string {
	switch t.kind {
	case Operator:
		return t.op.String()
	case Number:
		return fmt.Sprint(t.value)
	default:
		return ""
	}
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.kind == EOF {
		return t.kind.String()
	}
	return fmt.Sprintf("%v(%q)", t.kind, t.Text())
}
