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

package decimal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/exprc/internal/decimal"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		digits string
		want   uint32
		ok     bool
	}{
		{digits: "0", want: 0, ok: true},
		{digits: "42", want: 42, ok: true},
		{digits: "007", want: 7, ok: true},
		{digits: "0000000000000000000001", want: 1, ok: true},
		{digits: "2147483647", want: math.MaxInt32, ok: true},
		{digits: "2147483648"},
		{digits: "99999999999999999999"},
		{digits: ""},
		{digits: "1a"},
	}

	for _, tt := range tests {
		got, ok := decimal.Parse(tt.digits, uint32(math.MaxInt32))
		assert.Equal(t, tt.ok, ok, "%q", tt.digits)
		assert.Equal(t, tt.want, got, "%q", tt.digits)
	}
}

func TestParseSigned(t *testing.T) {
	t.Parallel()

	got, ok := decimal.Parse("127", int8(math.MaxInt8))
	assert.True(t, ok)
	assert.Equal(t, int8(127), got)

	_, ok = decimal.Parse("128", int8(math.MaxInt8))
	assert.False(t, ok)

	got64, ok := decimal.Parse("9223372036854775807", int64(math.MaxInt64))
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), got64)
}
