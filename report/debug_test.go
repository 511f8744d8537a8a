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

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrace cannot run in parallel, since it changes debugMode.
func TestTrace(t *testing.T) {
	old := debugMode
	t.Cleanup(func() { debugMode = old })

	debugMode = debugOff
	r := new(Report)
	assert.Empty(t, r.Errorf("untraced").Trace())

	debugMode = debugMinimal
	d := r.Errorf("traced")
	require.Len(t, d.Trace(), 1)
	assert.True(t, strings.HasSuffix(d.Trace()[0].Function, ".TestTrace"), d.Trace()[0].Function)

	debugMode = debugFull
	d = r.Errorf("traced fully")
	assert.Greater(t, len(d.Trace()), 1)
	assert.True(t, strings.HasSuffix(d.Trace()[0].Function, ".TestTrace"), d.Trace()[0].Function)

	text := Renderer{ShowDebug: true}.Diagnostic(r.Diagnostics[1])
	assert.Contains(t, text, "= debug: at ")
	assert.Contains(t, text, "TestTrace")
	assert.NotContains(t, Renderer{}.Diagnostic(r.Diagnostics[1]), "debug")
}
