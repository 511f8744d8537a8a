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

// Package decimal parses runs of ASCII decimal digits with overflow checking.
package decimal

import (
	"golang.org/x/exp/constraints" //nolint:exptostd // Integer has no counterpart in package cmp.
)

// Parse parses digits, which must consist only of ASCII digits, as a
// non-negative integer no greater than limit.
//
// Leading zeros are permitted and do not change the base. Returns false if
// the value exceeds limit, or if digits is empty or contains a non-digit.
func Parse[N constraints.Integer](digits string, limit N) (N, bool) {
	if digits == "" {
		return 0, false
	}

	var n N
	for i := range len(digits) {
		c := digits[i]
		if !IsDigit(c) {
			return 0, false
		}

		d := N(c - '0')
		// n*10 + d <= limit, rearranged so that it cannot overflow.
		if d > limit || n > (limit-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}

// IsDigit returns whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
