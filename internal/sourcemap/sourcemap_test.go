// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sourcemap

import (
	"strings"
	"testing"
)

func TestRecorderSkipsZeroLengthSpans(t *testing.T) {
	r := NewRecorder("in.js", "let x = 1;\n")
	r.Add(5, 5, "") // zero-length span
	if len(r.mappings) != 0 {
		t.Fatalf("expected zero-length span to be skipped, got %d mappings", len(r.mappings))
	}
}

func TestRecorderBasicMapping(t *testing.T) {
	r := NewRecorder("in.js", "let x = 1;\n")
	r.Advance([]byte("let x "))
	r.Add(4, 5, "x")
	sm := r.IntoSourceMap(true)
	if sm.Version != 3 {
		t.Fatalf("Version = %d, want 3", sm.Version)
	}
	if len(sm.Names) != 1 || sm.Names[0] != "x" {
		t.Fatalf("Names = %v, want [x]", sm.Names)
	}
	if sm.Mappings == "" {
		t.Fatal("expected non-empty mappings string")
	}
}

func TestWriteVLQKnownEncodings(t *testing.T) {
	// Spot check against known VLQ encodings used throughout source-map
	// tooling: 0 -> "A", 1 -> "C", -1 -> "D", 16 -> "gB".
	cases := map[int]string{0: "A", 1: "C", -1: "D", 16: "gB"}
	for n, want := range cases {
		var b strings.Builder
		writeVLQ(&b, n)
		if got := b.String(); got != want {
			t.Errorf("writeVLQ(%d) = %q, want %q", n, got, want)
		}
	}
}
