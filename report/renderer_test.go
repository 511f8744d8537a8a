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

package report_test

import (
	"fmt"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/exprc/internal/golden"
	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/source"
)

// renderCase is the input format for the files in testdata.
type renderCase struct {
	Files []struct {
		Path string `yaml:"path"`
		Text string `yaml:"text"`
	} `yaml:"files"`

	Diagnostics []struct {
		Message string `yaml:"message"`
		InFile  string `yaml:"in_file"`

		Annotations []struct {
			File    int    `yaml:"file"`
			Start   int    `yaml:"start"`
			End     int    `yaml:"end"`
			Message string `yaml:"message"`
		} `yaml:"annotations"`

		Notes []string `yaml:"notes"`
		Help  []string `yaml:"help"`
		Debug []string `yaml:"debug"`
	} `yaml:"diagnostics"`
}

func (c *renderCase) report() (*report.Report, error) {
	files := make([]*source.File, len(c.Files))
	for i, f := range c.Files {
		files[i] = source.NewFile(f.Path, f.Text)
	}

	r := new(report.Report)
	for _, in := range c.Diagnostics {
		d := r.Errorf("%s", in.Message)
		if in.InFile != "" {
			d.With(report.InFile(in.InFile))
		}
		for _, a := range in.Annotations {
			if a.File < 0 || a.File >= len(files) {
				return nil, fmt.Errorf("no file with index %d", a.File)
			}
			d.With(report.Snippetf(files[a.File].Span(a.Start, a.End), "%s", a.Message))
		}
		for _, note := range in.Notes {
			d.With(report.Note("%s", note))
		}
		for _, help := range in.Help {
			d.With(report.Help("%s", help))
		}
		for _, debug := range in.Debug {
			d.With(report.Debug("%s", debug))
		}
	}
	return r, nil
}

func TestRender(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:       "testdata",
		Refresh:    "EXPRC_REFRESH",
		Extensions: []string{"yaml"},
		Outputs: []golden.Output{
			{Extension: "simple.txt"},
			{Extension: "fancy.txt"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		var in renderCase
		if err := yaml.Unmarshal([]byte(text), &in); err != nil {
			t.Fatalf("failed to parse input %q: %v", path, err)
		}
		r, err := in.report()
		if err != nil {
			t.Fatalf("invalid input %q: %v", path, err)
		}

		outputs[0], _ = report.Renderer{
			Compact:   true,
			ShowDebug: true,
		}.RenderString(r)

		outputs[1], _ = report.Renderer{
			ShowDebug: true,
		}.RenderString(r)
	})
}
