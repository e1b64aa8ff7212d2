// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/precedence"
)

func (s *State) emitClassDeclaration(n *ast.ClassDeclaration) {
	s.emitLeadingComments(n.Span.Start)
	s.writeIndent()
	s.emitClassHeader(n.Decorators, n.Abstract, n.Declare, n.Id, n.TypeParameters, n.SuperClass, n.SuperTypeArgs, n.Implements)
	s.emitClassBody(n.Body)
}

func (s *State) emitClassExpression(n *ast.ClassExpression) {
	s.emitClassHeader(n.Decorators, false, false, n.Id, nil, n.SuperClass, nil, nil)
	s.emitClassBody(n.Body)
}

func (s *State) emitClassHeader(decorators []ast.Expression, abstract, declare bool, id *ast.Identifier, typeParams []string, superClass ast.Expression, superTypeArgs, implements []ast.TSType) {
	for _, d := range decorators {
		s.ch('@')
		s.emitExpression(d, precedence.Call, 0)
		s.newline()
		s.writeIndent()
	}
	if declare {
		s.str("declare ")
	}
	if abstract {
		s.str("abstract ")
	}
	s.str("class")
	if id != nil {
		s.hardSpace()
		s.str(s.resolvedIdentifier(id))
	}
	s.emitTypeParameters(typeParams)
	if superClass != nil {
		s.str(" extends ")
		s.emitExpression(superClass, precedence.Call, 0)
		s.emitTypeArgs(superTypeArgs)
	}
	if len(implements) > 0 {
		s.str(" implements ")
		for i, t := range implements {
			if i > 0 {
				s.str(", ")
			}
			s.emitTSType(t)
		}
	}
	s.space()
}

func (s *State) emitClassBody(body *ast.ClassBody) {
	s.enterClass()
	defer s.leaveClass()

	s.ch('{')
	if len(body.Body) == 0 {
		s.ch('}')
		s.newline()
		return
	}
	s.newline()
	s.indentDepth++
	for i, m := range body.Body {
		if i > 0 {
			s.newline()
		}
		s.emitClassMember(m)
	}
	s.indentDepth--
	s.writeIndent()
	s.ch('}')
	s.newline()
}

func (s *State) emitClassMember(m ast.ClassMember) {
	s.emitLeadingComments(m.GetSpan().Start)
	s.writeIndent()
	switch n := m.(type) {
	case *ast.MethodDefinition:
		s.emitMethodDefinition(n)
	case *ast.PropertyDefinition:
		s.emitPropertyDefinition(n)
	case *ast.StaticBlock:
		s.str("static ")
		s.emitBlockBody(n.Body)
		s.newline()
	case *ast.TSIndexSignatureMember:
		s.emitIndexSignature(n)
		s.semi()
		s.newline()
	default:
		s.fail("emitter: unreachable class member kind %T", n)
	}
}

func (s *State) emitMethodDefinition(n *ast.MethodDefinition) {
	for _, d := range n.Decorators {
		s.ch('@')
		s.emitExpression(d, precedence.Call, 0)
		s.newline()
		s.writeIndent()
	}
	if n.Accessibility != "" {
		s.str(n.Accessibility)
		s.hardSpace()
	}
	if n.Static {
		s.str("static ")
	}
	if n.Abstract {
		s.str("abstract ")
	}
	if n.Override {
		s.str("override ")
	}
	if n.Value.Async {
		s.str("async ")
	}
	if n.Value.Generator {
		s.ch('*')
	}
	switch n.Kind {
	case ast.MethodGet:
		s.str("get ")
	case ast.MethodSet:
		s.str("set ")
	}
	s.emitClassMemberKey(n.Key, n.Computed)
	s.emitFunctionSignatureAndBody(n.Value)
	s.newline()
}

func (s *State) emitPropertyDefinition(n *ast.PropertyDefinition) {
	for _, d := range n.Decorators {
		s.ch('@')
		s.emitExpression(d, precedence.Call, 0)
		s.newline()
		s.writeIndent()
	}
	if n.Accessibility != "" {
		s.str(n.Accessibility)
		s.hardSpace()
	}
	if n.Static {
		s.str("static ")
	}
	if n.Abstract {
		s.str("abstract ")
	}
	if n.Override {
		s.str("override ")
	}
	if n.Declare {
		s.str("declare ")
	}
	if n.Readonly {
		s.str("readonly ")
	}
	s.emitClassMemberKey(n.Key, n.Computed)
	if n.Definite {
		s.ch('!')
	}
	if n.TypeAnn != nil {
		s.str(": ")
		s.emitTSType(n.TypeAnn)
	}
	if n.Value != nil {
		s.str(" = ")
		s.emitExpression(n.Value, precedence.Assign, 0)
	}
	s.semi()
	s.newline()
}

func (s *State) emitClassMemberKey(key ast.Expression, computed bool) {
	if priv, ok := key.(*ast.PrivateIdentifier); ok {
		s.ch('#')
		s.str(s.mangledPrivateName(priv.Name))
		return
	}
	s.emitPropertyKey(key, computed)
}

func (s *State) emitIndexSignature(n *ast.TSIndexSignatureMember) {
	if n.Static {
		s.str("static ")
	}
	if n.Readonly {
		s.str("readonly ")
	}
	s.ch('[')
	s.str(n.ParamName)
	s.str(": ")
	s.emitTSType(n.KeyType)
	s.str("]: ")
	s.emitTSType(n.ValueType)
}
