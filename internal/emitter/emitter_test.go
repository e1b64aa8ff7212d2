// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter_test

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/esgen/esgen"
	"github.com/esgen/esgen/internal/astjson"
)

// emitterTestCase is one golden fixture: an ESTree-shaped JSON AST (the
// same interchange shape cmd/esgen reads), a couple of Options knobs, and
// the exact source text the printer must produce. Mirrors the teacher's
// asm/compiler_test.go shape: a single YAML document holding a named map
// of cases, decoded with KnownFields(true) so a typo'd field fails loudly
// instead of silently printing a zero value.
type emitterTestCase struct {
	JSON        string `yaml:"json"`
	Minify      bool   `yaml:"minify,omitempty"`
	SingleQuote bool   `yaml:"singleQuote,omitempty"`
	Want        string `yaml:"want"`
}

func TestEmit(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "emitter-tests.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	tests := make(map[string]emitterTestCase)
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&tests); err != nil {
		t.Fatal(err)
	}

	names := make([]string, 0, len(tests))
	for name := range tests {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		test := tests[name]
		t.Run(name, func(t *testing.T) {
			prog, err := astjson.Decode([]byte(test.JSON))
			if err != nil {
				t.Fatalf("decode input AST: %v", err)
			}
			opts := esgen.DefaultOptions()
			opts.Minify = test.Minify
			opts.SingleQuote = test.SingleQuote
			res, err := esgen.New().WithOptions(opts).Build(prog)
			if err != nil {
				t.Fatalf("codegen: %v", err)
			}
			if res.Code != test.Want {
				t.Errorf("got:\n%s\nwant:\n%s", res.Code, test.Want)
			}
		})
	}
}
