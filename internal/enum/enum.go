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
//	//go:generate go run github.com/bufbuild/rustlit/internal/enum foo.yaml
//
// where foo.yaml contains an array of the Enum type defined in this package.
// The output is written to foo.go, next to the YAML file. Several YAML files
// may be passed at once.
//
//nolint:revive // We use _ in field names to disambiguate them from methods, while still exporting them.
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

	"github.com/bufbuild/rustlit/internal/ext/slicesx"
)

// Enum is a single enum type described in a YAML file.
type Enum struct {
	Name    string   `yaml:"name"`  // The name of the new type.
	Type    string   `yaml:"type"`  // The underlying type.
	Docs    string   `yaml:"docs"`  // Documentation for the type.
	Total   string   `yaml:"total"` // The name of a "total values" constant.
	Methods []Method `yaml:"methods"`
	Values_ []Value  `yaml:"values"`
}

// Values returns this enum's values, with their back-pointers filled in.
func (e *Enum) Values() []Value {
	for i := range e.Values_ {
		e.Values_[i].Parent = e
		e.Values_[i].Idx = i
	}
	return e.Values_
}

// validate checks that the tables generated for e are well-formed: names are
// unique, every from-string method maps strings to values one-to-one, and
// every message method has a message for each value it covers.
func (e *Enum) validate() error {
	names := make(map[string]bool)
	for _, v := range e.Values() {
		if names[v.Name] {
			return fmt.Errorf("%s: duplicate value %s", e.Name, v.Name)
		}
		names[v.Name] = true
	}

	for _, m := range e.Methods {
		name, err := m.Name()
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}

		switch m.Kind {
		case MethodFromString:
			seen := make(map[string]string)
			for _, v := range e.Values() {
				if slices.Contains(m.Skip, v.Name) {
					continue
				}
				if prev, ok := seen[v.String()]; ok {
					return fmt.Errorf("%s.%s: %q maps to both %s and %s", e.Name, name, v.String(), prev, v.Name)
				}
				seen[v.String()] = v.Name
			}
		case MethodMessage:
			for _, v := range e.Values() {
				if v.Message == "" && !slices.Contains(m.Skip, v.Name) {
					return fmt.Errorf("%s.%s: missing message for %s", e.Name, name, v.Name)
				}
			}
		}
	}
	return nil
}

// Value is one value of an [Enum].
type Value struct {
	Name    string `yaml:"name"`    // The name of the value.
	String_ string `yaml:"string"`  // The string representation of this value.
	Message string `yaml:"message"` // A human-readable description, for message methods.
	Docs    string `yaml:"docs"`    // Documentation for the value.

	Parent *Enum `yaml:"-"`
	Idx    int   `yaml:"-"`
}

// HasSuffixDocs returns whether this value's docs fit on the same line as the
// value itself, which is the case when they are a single line and the next
// value is also documented.
func (v Value) HasSuffixDocs() bool {
	next, ok := slicesx.Get(v.Parent.Values_, v.Idx+1)
	return v.Docs != "" && !strings.Contains(v.Docs, "\n") && (!ok || next.Docs != "")
}

func (v Value) String() string {
	if v.String_ == "" {
		return v.Name
	}
	return v.String_
}

// Method is a method to generate for an [Enum].
type Method struct {
	Kind  MethodKind `yaml:"kind"` // The kind of method to generate.
	Name_ string     `yaml:"name"` // The method's name; optional for some methods.
	Docs_ string     `yaml:"docs"` // Documentation for the method.
	Skip  []string   `yaml:"skip"` // Enum values to ignore in this method.
}

func (m Method) Name() (string, error) {
	if m.Name_ != "" {
		return m.Name_, nil
	}

	switch m.Kind {
	case MethodFromString:
		return "", fmt.Errorf("missing name for kind: %#v", MethodFromString)
	case MethodGoString:
		return "GoString", nil
	case MethodString:
		return "String", nil
	case MethodMessage:
		return "Message", nil
	default:
		return "", fmt.Errorf("unexpected kind: %#v", m.Kind)
	}
}

func (m Method) Docs() string {
	if m.Docs_ != "" {
		return m.Docs_
	}

	switch m.Kind {
	case MethodGoString:
		return "GoString implements [fmt.GoStringer]."
	case MethodString:
		return "String implements [fmt.Stringer]."
	case MethodMessage:
		return "Message returns a human-readable description of this value."
	default:
		return ""
	}
}

// MethodKind is a kind of generated method.
type MethodKind string

const (
	MethodString     MethodKind = "string"
	MethodGoString   MethodKind = "go-string"
	MethodFromString MethodKind = "from-string"
	MethodMessage    MethodKind = "message"
)

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

// input is the data passed to the template.
type input struct {
	Binary, Package, Path, Config string
	YAML                          []Enum
}

// load reads and validates a YAML config.
func load(config string) (*input, error) {
	if filepath.Ext(config) != ".yaml" {
		return nil, errors.New("file argument must end in .yaml")
	}

	in := &input{
		Package: os.Getenv("GOPACKAGE"),
		Config:  config,
		Path:    strings.TrimSuffix(config, ".yaml") + ".go",
	}

	info, err := buildinfo.ReadFile(os.Args[0])
	if err != nil {
		return nil, err
	}
	in.Binary = info.Path

	text, err := os.ReadFile(config)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(text, &in.YAML); err != nil {
		return nil, err
	}

	for i := range in.YAML {
		if err := in.YAML[i].validate(); err != nil {
			return nil, err
		}
	}
	return in, nil
}

func Main(config string) error {
	in, err := load(config)
	if err != nil {
		return err
	}

	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"contains": slices.Contains[[]string],
	}).Parse(tmplText)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "enum.go.tmpl", in); err != nil {
		return err
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("generated invalid Go: %w", err)
	}
	return os.WriteFile(in.Path, out, 0o644) //nolint:gosec // Generated source is not secret.
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
