// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"math"
	"testing"

	"github.com/esgen/esgen/ast"
)

// numericLiteralProgram builds a standalone ExpressionStatement printing a
// single NumericLiteral, the ESTree shape cmd/esgen never sees via JSON
// decoding (encoding/json has no NaN/Infinity literal), so these cases
// are only reachable by constructing the AST directly.
func numericLiteralProgram(v float64) *ast.Program {
	return &ast.Program{
		Body: []ast.Statement{
			&ast.ExpressionStatement{Expression: &ast.NumericLiteral{Value: v}},
		},
	}
}

func printProgram(t *testing.T, opts Options, prog *ast.Program) string {
	t.Helper()
	out, err := New(opts, 64, nil, nil).Print(prog)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	return out
}

func TestEmitNumericLiteralSpecialValues(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		minify bool
		want   string
	}{
		{"nan", math.NaN(), false, "NaN;\n"},
		{"nan_minify", math.NaN(), true, "NaN;"},
		{"positive_infinity", math.Inf(1), false, "Infinity;\n"},
		{"positive_infinity_minify", math.Inf(1), true, "1/0;"},
		{"negative_infinity", math.Inf(-1), false, "-Infinity;\n"},
		{"negative_infinity_minify", math.Inf(-1), true, "-1/0;"},
		{"negative_finite", -5, false, "-5;\n"},
		{"negative_finite_minify", -5, true, "-5;"},
		{"negative_zero", math.Copysign(0, -1), false, "-0;\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Minify = tc.minify
			got := printProgram(t, opts, numericLiteralProgram(tc.value))
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

// TestEmitNumericLiteralWrapsWhenMemberAccessed checks that a negative
// number parenthesizes itself when used in a position that needs at
// least Member precedence, e.g. as the object of a property access:
// `(-5).toString()`, never bare `-5.toString()` (which the lexer would
// read as `-(5.toString())`).
func TestEmitNumericLiteralWrapsWhenMemberAccessed(t *testing.T) {
	prog := &ast.Program{
		Body: []ast.Statement{
			&ast.ExpressionStatement{
				Expression: &ast.CallExpression{
					Callee: &ast.MemberExpression{
						Object:   &ast.NumericLiteral{Value: -5},
						Property: &ast.Identifier{Name: "toString"},
					},
				},
			},
		},
	}
	got := printProgram(t, DefaultOptions(), prog)
	want := "(-5).toString();\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitNewExpressionEmptyArgs(t *testing.T) {
	newFoo := &ast.NewExpression{Callee: &ast.Identifier{Name: "Foo"}}

	t.Run("non_minify_always_prints_parens", func(t *testing.T) {
		prog := &ast.Program{Body: []ast.Statement{&ast.ExpressionStatement{Expression: newFoo}}}
		got := printProgram(t, DefaultOptions(), prog)
		if want := "new Foo();\n"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("minify_statement_position_omits_parens", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Minify = true
		prog := &ast.Program{Body: []ast.Statement{&ast.ExpressionStatement{Expression: newFoo}}}
		got := printProgram(t, opts, prog)
		if want := "new Foo;"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("minify_member_chain_keeps_parens", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Minify = true
		prog := &ast.Program{
			Body: []ast.Statement{
				&ast.ExpressionStatement{
					Expression: &ast.MemberExpression{
						Object:   newFoo,
						Property: &ast.Identifier{Name: "bar"},
					},
				},
			},
		}
		got := printProgram(t, opts, prog)
		if want := "new Foo().bar;"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}
