// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/precedence"
)

// PrintASCIIByte appends a single ASCII byte, for callers driving the
// printer incrementally rather than through Print (spec §6.1's
// print_ascii_byte).
func (s *State) PrintASCIIByte(b byte) { s.buf.PrintASCIIByte(b) }

// PrintStr appends text verbatim (spec §6.1's print_str). Callers are
// responsible for any escaping; use the Expression/literal emit paths
// when that matters.
func (s *State) PrintStr(text string) { s.buf.PrintStr(text) }

// PrintExpression prints a single expression at statement precedence,
// recovering an internal panic into a returned error the same way Print
// does (spec §6.1's print_expression).
func (s *State) PrintExpression(e ast.Expression) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(printError); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()
	s.emitExpression(e, precedence.Lowest, 0)
	return nil
}

// IntoSourceText consumes the printer's buffer and returns everything
// written so far, through either Print or the incremental helpers above
// (spec §6.1's into_source_text). The State must not be used afterward.
func (s *State) IntoSourceText() string { return s.buf.IntoString() }
