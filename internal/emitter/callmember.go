// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/precedence"
)

func (s *State) emitMemberExpression(n *ast.MemberExpression, ctx precedence.Context) {
	s.needSpaceBeforeDot = false
	s.emitExpression(n.Object, precedence.Member, ctx)
	if n.Computed {
		if n.Optional {
			s.str("?.")
		}
		s.ch('[')
		s.emitExpression(n.Property, precedence.Lowest, ctx.Without(precedence.ForbidIn))
		s.ch(']')
		return
	}
	if n.Optional {
		s.str("?.")
	} else {
		// The flag outlives the number itself; only a dot that directly
		// follows its last digit (not a closing paren) needs the space.
		if last, ok := s.buf.LastByte(); ok && s.needSpaceBeforeDot && last >= '0' && last <= '9' {
			s.hardSpace()
		}
		s.ch('.')
	}
	s.needSpaceBeforeDot = false
	switch prop := n.Property.(type) {
	case *ast.PrivateIdentifier:
		s.ch('#')
		s.str(s.mangledPrivateName(prop.Name))
	case *ast.Identifier:
		s.str(s.resolvedIdentifier(prop))
	default:
		s.emitExpression(prop, precedence.Member, ctx)
	}
}

func (s *State) emitCallExpression(n *ast.CallExpression, ctx precedence.Context) {
	if n.Pure {
		s.str("/* @__PURE__ */ ")
	}
	calleeCtx := ctx
	if ctx.Has(precedence.ForbidCall) {
		s.ch('(')
		s.emitExpression(n.Callee, precedence.Lowest, calleeCtx.Without(precedence.ForbidCall))
		s.ch(')')
	} else {
		s.emitExpression(n.Callee, precedence.Call, calleeCtx)
	}
	if n.Optional {
		s.str("?.")
	}
	s.emitTypeArgs(n.TypeArgs)
	s.ch('(')
	s.emitExpressionCommaList(n.Arguments)
	s.ch(')')
}

// emitNewExpression prints a `new` expression. Its empty argument list is
// only ever omitted when minifying AND the surrounding context doesn't
// need Postfix-or-tighter precedence out of this expression: printing
// `new Foo` bare is ambiguous the moment something chains onto it (a
// member access or call would otherwise read as part of the argument
// list), so any caller that demands Postfix or above always gets the
// parens, and a non-minified build always prints them for readability.
func (s *State) emitNewExpression(n *ast.NewExpression, minPrec precedence.Precedence, ctx precedence.Context) {
	if n.Pure {
		s.str("/* @__PURE__ */ ")
	}
	s.str("new ")
	s.emitExpression(n.Callee, precedence.Member, ctx.With(precedence.ForbidCall))
	s.emitTypeArgs(n.TypeArgs)
	if len(n.Arguments) == 0 && s.opts.Minify && minPrec < precedence.Postfix {
		return
	}
	s.ch('(')
	s.emitExpressionCommaList(n.Arguments)
	s.ch(')')
}

func (s *State) emitExpressionCommaList(list []ast.Expression) {
	for i, e := range list {
		if i > 0 {
			s.str(", ")
		}
		s.emitExpression(e, precedence.Assign, 0)
	}
}

func (s *State) emitUnaryExpression(n *ast.UnaryExpression, ctx precedence.Context) {
	s.str(n.Operator)
	if precedence.UnaryOperatorIsWord(n.Operator) {
		s.hardSpace()
	}
	argCtx := ctx
	s.emitExpression(n.Argument, precedence.Prefix, argCtx)
}

func (s *State) emitUpdateExpression(n *ast.UpdateExpression, ctx precedence.Context) {
	if n.Prefix {
		s.str(n.Operator)
		s.emitExpression(n.Argument, precedence.Prefix, ctx)
		return
	}
	s.emitExpression(n.Argument, precedence.Postfix, ctx)
	s.str(n.Operator)
}

func (s *State) emitTypeArgs(args []ast.TSType) {
	if len(args) == 0 {
		return
	}
	s.ch('<')
	for i, t := range args {
		if i > 0 {
			s.str(", ")
		}
		s.emitTSType(t)
	}
	s.ch('>')
}
