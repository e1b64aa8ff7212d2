// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/precedence"
)

func (s *State) emitArrayExpression(n *ast.ArrayExpression) {
	s.ch('[')
	for i, el := range n.Elements {
		if i > 0 {
			s.str(", ")
		}
		if el == nil {
			continue // elision, e.g. `[1, , 3]`
		}
		s.emitExpression(el, precedence.Assign, 0)
	}
	s.ch(']')
}

func (s *State) emitObjectExpression(n *ast.ObjectExpression) {
	if len(n.Properties) == 0 {
		s.str("{}")
		return
	}
	s.str("{ ")
	for i, p := range n.Properties {
		if i > 0 {
			s.str(", ")
		}
		switch prop := p.(type) {
		case *ast.SpreadElement:
			s.str("...")
			s.emitExpression(prop.Argument, precedence.Assign, 0)
		case *ast.ObjectProperty:
			s.emitObjectProperty(prop)
		}
	}
	s.str(" }")
}

func (s *State) emitObjectProperty(p *ast.ObjectProperty) {
	if p.Method || p.Kind == ast.MethodGet || p.Kind == ast.MethodSet {
		s.emitMethodLikeKey(p.Key, p.Computed, p.Kind, p.Value.(*ast.FunctionExpression))
		return
	}
	s.emitPropertyKey(p.Key, p.Computed)
	if p.Shorthand {
		return
	}
	s.str(": ")
	s.emitExpression(p.Value, precedence.Assign, 0)
}

func (s *State) emitPropertyKey(key ast.Expression, computed bool) {
	if computed {
		s.ch('[')
		s.emitExpression(key, precedence.Assign, 0)
		s.ch(']')
		return
	}
	s.emitExpression(key, precedence.Lowest, 0)
}

func (s *State) emitMethodLikeKey(key ast.Expression, computed bool, kind ast.MethodKind, fn *ast.FunctionExpression) {
	if fn.Async {
		s.str("async ")
	}
	if fn.Generator {
		s.ch('*')
	}
	switch kind {
	case ast.MethodGet:
		s.str("get ")
	case ast.MethodSet:
		s.str("set ")
	}
	s.emitPropertyKey(key, computed)
	s.emitFunctionSignatureAndBody(fn)
}

func (s *State) emitFunctionExpression(n *ast.FunctionExpression) {
	if n.Async {
		s.str("async ")
	}
	s.str("function")
	if n.Generator {
		s.ch('*')
	}
	if n.Id != nil {
		s.hardSpace()
		s.str(s.resolvedIdentifier(n.Id))
	} else {
		s.space()
	}
	s.emitFunctionSignatureAndBody(n)
}

func (s *State) emitFunctionDeclaration(n *ast.FunctionDeclaration) {
	s.emitLeadingComments(n.Span.Start)
	s.writeIndent()
	if n.Declare {
		s.str("declare ")
	}
	s.emitFunctionDeclarationInline(n)
}

func (s *State) emitFunctionSignatureAndBody(n *ast.FunctionExpression) {
	s.emitTypeParameters(n.TypeParameters)
	s.emitParamList(n.Params)
	if n.ReturnType != nil {
		s.str(": ")
		s.emitTSType(n.ReturnType)
	}
	s.space()
	s.emitBlock(n.Body)
}

func (s *State) emitArrowFunctionExpression(n *ast.ArrowFunctionExpression, ctx precedence.Context) {
	if n.Async {
		s.str("async ")
	}
	s.emitTypeParameters(n.TypeParameters)
	s.emitParamList(n.Params)
	if n.ReturnType != nil {
		s.str(": ")
		s.emitTSType(n.ReturnType)
	}
	s.str(" => ")
	if n.ExpressionBody {
		body := n.Body.(ast.Expression)
		if startsWithAmbiguousToken(body) {
			s.ch('(')
			s.emitExpression(body, precedence.Assign, 0)
			s.ch(')')
		} else {
			s.emitExpression(body, precedence.Assign, ctx.Without(precedence.ForbidIn))
		}
		return
	}
	s.emitBlock(n.Body.(*ast.BlockStatement))
}

func (s *State) emitParamList(params []*ast.Param) {
	s.ch('(')
	for i, p := range params {
		if i > 0 {
			s.str(", ")
		}
		s.emitParam(p)
	}
	s.ch(')')
}

func (s *State) emitParam(p *ast.Param) {
	for _, d := range p.Decorators {
		s.ch('@')
		s.emitExpression(d, precedence.Call, 0)
		s.hardSpace()
	}
	if p.Accessibility != "" {
		s.str(p.Accessibility)
		s.hardSpace()
	}
	if p.Rest {
		s.str("...")
	}
	s.emitBindingTarget(p.Target)
	if p.Optional {
		s.ch('?')
	}
	if p.TypeAnn != nil {
		s.str(": ")
		s.emitTSType(p.TypeAnn)
	}
	if p.Default != nil {
		s.str(" = ")
		s.emitExpression(p.Default, precedence.Assign, 0)
	}
}

func (s *State) emitTypeParameters(params []string) {
	if len(params) == 0 {
		return
	}
	s.ch('<')
	for i, p := range params {
		if i > 0 {
			s.str(", ")
		}
		s.str(p)
	}
	if len(params) == 1 && s.sourceTyp.JSX {
		s.ch(',') // `<T,>`: a lone `<T>` would read as a JSX tag
	}
	s.ch('>')
}
