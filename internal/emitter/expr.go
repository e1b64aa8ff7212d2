// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"math"

	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/precedence"
)

// emitExpression is the expression dispatcher (spec §4.3.4): it prints e
// wrapped in parentheses whenever e's own precedence is lower than
// minPrec demands, then dispatches on concrete type. Binary/logical
// chains are routed through emitBinaryChain's iterative visitor instead
// of recursing directly, the same way asm/compiler_expand.go walks a
// macro-expansion tree iteratively to avoid unbounded call-stack growth
// on a deeply left-associative source expression.
//
// A NewExpression is intercepted before the generic wrap/dispatch: its
// own reported precedence is always Member (so the generic mechanism
// never parenthesizes it), but whether its empty argument list actually
// prints `()` depends on minPrec itself (spec §4.3.4, new-without-args),
// so emitNewExpression needs minPrec directly rather than just the
// already-resolved ctx every other case gets.
func (s *State) emitExpression(e ast.Expression, minPrec precedence.Precedence, ctx precedence.Context) {
	if n, ok := e.(*ast.NewExpression); ok {
		s.emitNewExpression(n, minPrec, ctx)
		return
	}
	prec := s.exprPrecedence(e)
	needsParens := prec < minPrec
	if needsParens {
		s.ch('(')
		ctx = ctx.Without(precedence.ForbidIn).Without(precedence.ForbidCall)
	}
	s.emitExpressionBare(e, ctx)
	if needsParens {
		s.ch(')')
	}
}

func (s *State) emitExpressionBare(e ast.Expression, ctx precedence.Context) {
	switch n := e.(type) {
	case *ast.Identifier:
		s.str(s.resolvedIdentifier(n))
	case *ast.PrivateIdentifier:
		s.ch('#')
		s.str(s.mangledPrivateName(n.Name))
	case *ast.ThisExpression:
		s.str("this")
	case *ast.SuperExpr:
		s.str("super")
	case *ast.NullLiteral:
		s.str("null")
	case *ast.BooleanLiteral:
		if n.Value {
			s.str("true")
		} else {
			s.str("false")
		}
	case *ast.NumericLiteral:
		s.emitNumericLiteral(n, ctx)
	case *ast.BigIntLiteral:
		s.emitBigIntLiteral(n)
	case *ast.StringLiteral:
		s.emitStringLiteral(n.Value)
	case *ast.RegExpLiteral:
		s.emitRegExpLiteral(n)
	case *ast.TemplateLiteral:
		s.emitTemplateLiteral(n)
	case *ast.TaggedTemplateExpression:
		s.emitExpression(n.Tag, precedence.Call, ctx.With(precedence.ForbidCall))
		s.emitTemplateLiteral(n.Quasi)
	case *ast.ArrayExpression:
		s.emitArrayExpression(n)
	case *ast.ObjectExpression:
		s.emitObjectExpression(n)
	case *ast.SpreadElement:
		s.str("...")
		s.emitExpression(n.Argument, precedence.Assign, ctx)
	case *ast.FunctionExpression:
		s.emitFunctionExpression(n)
	case *ast.ArrowFunctionExpression:
		s.emitArrowFunctionExpression(n, ctx)
	case *ast.ClassExpression:
		s.emitClassExpression(n)
	case *ast.UnaryExpression:
		s.emitUnaryExpression(n, ctx)
	case *ast.UpdateExpression:
		s.emitUpdateExpression(n, ctx)
	case *ast.BinaryExpression:
		s.emitBinaryChain(n, ctx)
	case *ast.LogicalExpression:
		s.emitBinaryChain(n, ctx)
	case *ast.PrivateInExpression:
		if ctx.Has(precedence.ForbidIn) {
			s.ch('(')
			s.emitExpressionBare(n, ctx.Without(precedence.ForbidIn))
			s.ch(')')
			break
		}
		s.ch('#')
		s.str(s.mangledPrivateName(n.Left.Name))
		s.str(" in ")
		s.emitExpression(n.Right, precedence.Compare+1, ctx)
	case *ast.AssignmentExpression:
		s.emitExpression(n.Left, precedence.Conditional+1, ctx)
		s.space()
		s.str(n.Operator)
		s.space()
		s.emitExpression(n.Right, precedence.Assign, ctx.Without(precedence.ForbidIn))
	case *ast.ConditionalExpression:
		s.emitExpression(n.Test, precedence.NullishCoalescing+1, ctx)
		s.str(" ? ")
		s.emitExpression(n.Consequent, precedence.Assign, ctx.Without(precedence.ForbidIn))
		s.str(" : ")
		s.emitExpression(n.Alternate, precedence.Assign, ctx.Without(precedence.ForbidIn))
	case *ast.CallExpression:
		s.emitCallExpression(n, ctx)
	case *ast.NewExpression:
		s.emitNewExpression(n, precedence.Lowest, ctx)
	case *ast.MemberExpression:
		s.emitMemberExpression(n, ctx)
	case *ast.SequenceExpression:
		for i, el := range n.Expressions {
			if i > 0 {
				s.str(", ")
			}
			s.emitExpression(el, precedence.Assign, ctx)
		}
	case *ast.YieldExpression:
		s.str("yield")
		if n.Delegate {
			s.ch('*')
		}
		if n.Argument != nil {
			s.hardSpace()
			s.emitExpression(n.Argument, precedence.Yield, ctx)
		}
	case *ast.AwaitExpression:
		s.str("await ")
		s.emitExpression(n.Argument, precedence.Prefix, ctx)
	case *ast.ParenthesizedExpression:
		s.emitExpressionBare(n.Expression, ctx)
	case *ast.JSXElement:
		s.emitJSXElement(n)
	case *ast.JSXFragment:
		s.emitJSXFragment(n)
	case *ast.TSAsExpression:
		s.emitExpression(n.Expression, precedence.Compare, ctx)
		s.str(" as ")
		s.emitTSType(n.TypeAnn)
	case *ast.TSSatisfiesExpression:
		s.emitExpression(n.Expression, precedence.Compare, ctx)
		s.str(" satisfies ")
		s.emitTSType(n.TypeAnn)
	case *ast.TSNonNullExpression:
		s.emitExpression(n.Expression, precedence.Postfix, ctx)
		s.ch('!')
	case *ast.TSTypeAssertion:
		// `<T>expr` is ambiguous with a JSX element in a .tsx source; fall
		// back to the `as` form there, the same rewrite the TypeScript
		// compiler itself forces on this syntax in JSX mode.
		if s.sourceTyp.JSX {
			s.emitExpression(n.Expression, precedence.Compare, ctx)
			s.str(" as ")
			s.emitTSType(n.TypeAnn)
			break
		}
		s.ch('<')
		s.emitTSType(n.TypeAnn)
		s.ch('>')
		s.emitExpression(n.Expression, precedence.Prefix, ctx)
	case *ast.TSInstantiationExpression:
		s.emitExpression(n.Expression, precedence.Call, ctx)
		s.emitTypeArgs(n.TypeArgs)
	case *ast.ArrayPattern:
		s.emitArrayPatternAsExpression(n)
	case *ast.ObjectPattern:
		s.emitObjectPatternAsExpression(n)
	case *ast.AssignmentPattern:
		s.emitExpression(n.Left.(ast.Expression), precedence.Assign, ctx)
		s.str(" = ")
		s.emitExpression(n.Right, precedence.Assign, ctx)
	case *ast.RestElement:
		s.str("...")
		s.emitExpression(n.Argument.(ast.Expression), precedence.Assign, ctx)
	default:
		s.fail("emitter: unreachable expression kind %T", n)
	}
}

// exprPrecedence returns the binding strength of e's own top-level
// operator, used both to decide whether e needs parens in a tighter
// context and, for a binary/logical chain, to decide which child needs
// parens relative to its parent operator.
func (s *State) exprPrecedence(e ast.Expression) precedence.Precedence {
	switch n := e.(type) {
	case *ast.SequenceExpression:
		return precedence.Comma
	case *ast.AssignmentExpression:
		return precedence.Assign
	case *ast.YieldExpression:
		return precedence.Yield
	case *ast.ArrowFunctionExpression:
		return precedence.Assign
	case *ast.ConditionalExpression:
		return precedence.Conditional
	case *ast.BinaryExpression:
		p, _ := precedence.BinaryOperatorPrecedence(n.Operator)
		return p
	case *ast.LogicalExpression:
		p, _ := precedence.BinaryOperatorPrecedence(n.Operator)
		return p
	case *ast.PrivateInExpression:
		return precedence.Compare
	case *ast.TSAsExpression, *ast.TSSatisfiesExpression:
		return precedence.Compare
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return precedence.Prefix
	case *ast.TSTypeAssertion:
		if s.sourceTyp.JSX {
			return precedence.Compare
		}
		return precedence.Prefix
	case *ast.UpdateExpression:
		if n.Prefix {
			return precedence.Prefix
		}
		return precedence.Postfix
	case *ast.TSNonNullExpression:
		return precedence.Postfix
	case *ast.NumericLiteral:
		if math.Signbit(n.Value) && !math.IsNaN(n.Value) {
			return precedence.Prefix
		}
		return precedence.Member
	case *ast.CallExpression, *ast.TaggedTemplateExpression, *ast.TSInstantiationExpression:
		return precedence.Call
	case *ast.MemberExpression:
		return precedence.Member
	case *ast.ParenthesizedExpression:
		return s.exprPrecedence(n.Expression)
	default:
		return precedence.Member
	}
}
