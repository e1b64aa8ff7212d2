// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package precedence holds the expression precedence table and the
// Context bitset threaded through the emitter (spec §4.3.1-4.3.2). It
// plays the same role here that internal/ast's ArithOp/Precedence table
// plays for geas's arithmetic expressions, generalized from ten
// arithmetic operators to the full ECMAScript operator grammar.
package precedence

//go:generate go run golang.org/x/tools/cmd/stringer@latest -type Precedence

// Precedence orders expression-printing contexts from loosest to
// tightest binding, low to high.
type Precedence int

const (
	Lowest Precedence = iota
	Comma
	Spread
	Yield
	Assign
	Conditional
	NullishCoalescing
	LogicalOr
	LogicalAnd
	BitwiseOr
	BitwiseXor
	BitwiseAnd
	Equals
	Compare
	Shift
	Add
	Multiply
	Exponentiation
	Prefix
	Postfix
	New
	Call
	Member
)

// Context is a bitset of ambient printing constraints threaded immutably
// through the emitter; children derive new contexts via With/Without.
type Context uint8

const (
	// ForbidIn marks a for(;;) head initializer, where a bare `in`
	// operator must be parenthesized to avoid being parsed as the start
	// of a for-in statement.
	ForbidIn Context = 1 << iota
	// ForbidCall marks a position that does not admit a call, such as the
	// callee of `new X` without arguments, or the tag of a tagged
	// template.
	ForbidCall
	// TypeScript marks printing inside a TypeScript type, where numeric
	// literals are reprinted using their raw source text.
	TypeScript
)

// Has reports whether all bits of other are set in c.
func (c Context) Has(other Context) bool {
	return c&other == other
}

// With returns c with the given bits set.
func (c Context) With(other Context) Context {
	return c | other
}

// Without returns c with the given bits cleared.
func (c Context) Without(other Context) Context {
	return c &^ other
}

// BinaryOperatorPrecedence returns the precedence of a binary/logical
// operator by its textual form, and whether it is right-associative.
func BinaryOperatorPrecedence(op string) (prec Precedence, rightAssoc bool) {
	switch op {
	case ",":
		return Comma, false
	case "??":
		return NullishCoalescing, false
	case "||":
		return LogicalOr, false
	case "&&":
		return LogicalAnd, false
	case "|":
		return BitwiseOr, false
	case "^":
		return BitwiseXor, false
	case "&":
		return BitwiseAnd, false
	case "==", "!=", "===", "!==":
		return Equals, false
	case "<", "<=", ">", ">=", "in", "instanceof":
		return Compare, false
	case "<<", ">>", ">>>":
		return Shift, false
	case "+", "-":
		return Add, false
	case "*", "/", "%":
		return Multiply, false
	case "**":
		return Exponentiation, true
	default:
		return Lowest, false
	}
}

// UnaryOperatorIsWord reports whether a unary operator is a keyword
// (requiring identifier-boundary whitespace) rather than a symbol.
func UnaryOperatorIsWord(op string) bool {
	switch op {
	case "typeof", "void", "delete":
		return true
	default:
		return false
	}
}
