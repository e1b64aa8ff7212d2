// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// Statement is implemented by every statement-position AST node.
type Statement interface {
	GetSpan() Span
	stmtNode()
}

// Expression is implemented by every expression-position AST node.
type Expression interface {
	GetSpan() Span
	exprNode()
}

// BindingTarget is implemented by the left-hand side of a variable
// declarator, function parameter, catch clause parameter, and the left
// side of a for-in/for-of statement: an identifier or a destructuring
// pattern.
type BindingTarget interface {
	GetSpan() Span
	bindingNode()
}

// TSType is implemented by every TypeScript type-position node.
type TSType interface {
	GetSpan() Span
	tsTypeNode()
}

// base carries the span embedded into almost every concrete node type.
// Embedding it supplies GetSpan() for free, the same way the teacher's
// AST nodes each hold their own Position.
type base struct {
	Span Span
}

func (b base) GetSpan() Span { return b.Span }
