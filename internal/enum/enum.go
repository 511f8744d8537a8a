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

// enum is a helper for generating boilerplate related to Go enums.
//
// To generate boilerplate for a given file, use
//
//	//go:generate go run github.com/bufbuild/exprc/internal/enum kind.yaml
//
// The argument names a YAML file next to the directive; the generated code is
// written to the same path with the .yaml suffix replaced by .go. The YAML
// file must contain an array of the Enum type defined in this package.
package main

import (
	"bytes"
	"debug/buildinfo"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Enum is one enum type to generate.
type Enum struct {
	Name    string   `yaml:"name"`  // The name of the new type.
	Type    string   `yaml:"type"`  // The underlying type.
	Docs    string   `yaml:"docs"`  // Documentation for the type.
	Total   string   `yaml:"total"` // The name of a "total values" constant.
	Methods []Method `yaml:"methods"`
	Values  []Value  `yaml:"values"`
}

// Value is one constant of an [Enum]. The first value is the zero value.
type Value struct {
	Name string `yaml:"name"`   // The name of the value.
	Text string `yaml:"string"` // The string representation, if not Name.
	Docs string `yaml:"docs"`
}

// String returns what a "string" method produces for this value.
func (v Value) String() string {
	if v.Text == "" {
		return v.Name
	}
	return v.Text
}

// Method is a generated method or function over an [Enum].
type Method struct {
	Kind MethodKind `yaml:"kind"`
	Name string     `yaml:"name"` // Defaulted by [Enum.resolve] for some kinds.
	Docs string     `yaml:"docs"` // Likewise.
	Skip []string   `yaml:"skip"` // Enum values to leave out of the table.
}

type MethodKind string

const (
	MethodString     MethodKind = "string"
	MethodGoString   MethodKind = "go-string"
	MethodFromString MethodKind = "from-string"
)

// defaults is the name and doc comment for each kind that has one.
var defaults = map[MethodKind]struct{ name, docs string }{
	MethodString:   {"String", "String implements [fmt.Stringer]."},
	MethodGoString: {"GoString", "GoString implements [fmt.GoStringer]."},
}

// resolve fills in method defaults and checks for mistakes that would
// otherwise surface as confusing compile errors in the generated file.
func (e *Enum) resolve() error {
	if e.Name == "" || e.Type == "" {
		return fmt.Errorf("enum is missing a name or type: %#v", e)
	}

	names := make(map[string]bool)
	for _, v := range e.Values {
		if names[v.Name] {
			return fmt.Errorf("%s: duplicate value %s", e.Name, v.Name)
		}
		names[v.Name] = true
	}

	for i := range e.Methods {
		m := &e.Methods[i]
		def, ok := defaults[m.Kind]
		switch {
		case m.Kind == MethodFromString && m.Name == "":
			return fmt.Errorf("%s: missing name for kind %q", e.Name, m.Kind)
		case m.Kind != MethodFromString && !ok:
			return fmt.Errorf("%s: unexpected kind %q", e.Name, m.Kind)
		}
		if m.Name == "" {
			m.Name = def.name
		}
		if m.Docs == "" {
			m.Docs = def.docs
		}

		for _, skip := range m.Skip {
			if !names[skip] {
				return fmt.Errorf("%s: method %s skips unknown value %s", e.Name, m.Kind, skip)
			}
		}
	}
	return nil
}

//go:embed enum.go.tmpl
var tmplText string

// makeDocs converts a data into doc comments.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

func Main(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}

	var input struct {
		Binary, Package, Path, Config string
		YAML                          []Enum
	}
	input.Package = os.Getenv("GOPACKAGE")
	input.Config = config
	input.Path = strings.TrimSuffix(config, ".yaml") + ".go"

	buildinfo, err := buildinfo.ReadFile(os.Args[0])
	if err != nil {
		return err
	}
	input.Binary = buildinfo.Path

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(text, &input.YAML); err != nil {
		return err
	}
	for i := range input.YAML {
		if err := input.YAML[i].resolve(); err != nil {
			return err
		}
	}

	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"contains": slices.Contains[[]string],
	}).Parse(tmplText)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := tmpl.ExecuteTemplate(&out, "enum.go.tmpl", input); err != nil {
		return err
	}
	code, err := format.Source(out.Bytes())
	if err != nil {
		return fmt.Errorf("generated invalid Go: %w", err)
	}
	return os.WriteFile(input.Path, code, 0o644)
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := Main(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
