// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/precedence"
)

// emitBinaryChain prints a BinaryExpression/LogicalExpression. Parens
// around the whole chain (if the surrounding context demands them) were
// already applied by the caller, emitExpression.
//
// A left-associative run sharing one operator's precedence level (the
// common `a + b + c + ...` shape produced by generated or bundled code)
// is flattened iteratively along its left spine instead of recursed,
// the same way asm/compiler_expand.go walks a macro-expansion tree with
// an explicit stack to avoid unbounded call-stack growth on a
// pathologically deep source chain. Right-hand operands are never
// themselves part of that same left spine in a left-associative tree, so
// they still recurse normally through emitExpression.
func (s *State) emitBinaryChain(root ast.Expression, ctx precedence.Context) {
	rootOp, _, _, _ := binaryParts(root)

	// A bare `in` inside a for(;;) head initializer would be misparsed as
	// the start of a for-in statement; wrap the whole chain rather than
	// just the offending link, matching how a human would disambiguate.
	if ctx.Has(precedence.ForbidIn) && containsBareIn(root) {
		s.ch('(')
		s.emitBinaryChain(root, ctx.Without(precedence.ForbidIn))
		s.ch(')')
		return
	}

	rootPrec, rootRightAssoc := precedence.BinaryOperatorPrecedence(rootOp)

	// Walk the left spine, collecting (operator, right-operand) pairs for
	// every link that shares root's precedence level, innermost first.
	type link struct {
		op    string
		right ast.Expression
	}
	var links []link
	cur := root
	for {
		op, left, right, ok := binaryParts(cur)
		if !ok {
			break
		}
		p, _ := precedence.BinaryOperatorPrecedence(op)
		if p != rootPrec {
			break
		}
		links = append(links, link{op: op, right: right})
		cur = left
		if rootRightAssoc {
			// `(a ** b) ** c` is not `a ** b ** c`: a right-associative
			// operator's left operand is never merged into the run.
			break
		}
	}
	leftmost := cur

	childCtx := ctx
	leftMinPrec := rootPrec
	if rootRightAssoc {
		leftMinPrec = rootPrec + 1
	}
	s.emitChainOperand(leftmost, rootOp, leftMinPrec, childCtx)

	rightMinPrec := rootPrec + 1
	if rootRightAssoc {
		rightMinPrec = rootPrec
	}
	for i := len(links) - 1; i >= 0; i-- {
		s.space()
		s.str(links[i].op)
		s.space()
		s.emitChainOperand(links[i].right, rootOp, rightMinPrec, childCtx)
	}
}

// emitChainOperand prints one binary/logical-chain operand, forcing a
// parenthesis when it mixes `??` directly with `||`/`&&`: adjacent
// precedence levels alone don't force the wrap (rightMinPrec already
// equals the other operator's own precedence), but ECMAScript's grammar
// forbids the two from touching without an explicit paren regardless of
// precedence (spec §4.3.5).
func (s *State) emitChainOperand(operand ast.Expression, rootOp string, minPrec precedence.Precedence, ctx precedence.Context) {
	if mixesNullish(rootOp, operand) {
		s.ch('(')
		s.emitExpression(operand, precedence.Lowest, ctx.Without(precedence.ForbidIn).Without(precedence.ForbidCall))
		s.ch(')')
		return
	}
	s.emitExpression(operand, minPrec, ctx)
}

// mixesNullish reports whether rootOp and operand are a `??`/`||`-or-`&&`
// pair in either direction.
func mixesNullish(rootOp string, operand ast.Expression) bool {
	logical, ok := operand.(*ast.LogicalExpression)
	if !ok {
		return false
	}
	if rootOp == "??" {
		return logical.Operator == "||" || logical.Operator == "&&"
	}
	if rootOp == "||" || rootOp == "&&" {
		return logical.Operator == "??"
	}
	return false
}

// containsBareIn reports whether a binary/logical chain contains a
// top-level `in` operator anywhere along its left spine. A right-hand
// operand is checked by its own emitBinaryChain call, which still sees
// ForbidIn through the operand context.
func containsBareIn(e ast.Expression) bool {
	for {
		op, left, _, ok := binaryParts(e)
		if !ok {
			return false
		}
		if op == "in" {
			return true
		}
		e = left
	}
}

func binaryParts(e ast.Expression) (op string, left, right ast.Expression, ok bool) {
	switch n := e.(type) {
	case *ast.BinaryExpression:
		return n.Operator, n.Left, n.Right, true
	case *ast.LogicalExpression:
		return n.Operator, n.Left, n.Right, true
	default:
		return "", nil, nil, false
	}
}
