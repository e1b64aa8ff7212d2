// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/precedence"
)

func (s *State) emitTSTypeAliasDeclaration(n *ast.TSTypeAliasDeclaration) {
	if n.Declare {
		s.str("declare ")
	}
	s.str("type ")
	s.str(s.resolvedIdentifier(n.Id))
	s.emitTypeParameters(n.TypeParameters)
	s.str(" = ")
	s.emitTSType(n.TypeAnn)
	s.semi()
	s.newline()
}

func (s *State) emitTSInterfaceDeclaration(n *ast.TSInterfaceDeclaration) {
	s.str("interface ")
	s.str(s.resolvedIdentifier(n.Id))
	s.emitTypeParameters(n.TypeParameters)
	if len(n.Extends) > 0 {
		s.str(" extends ")
		for i, t := range n.Extends {
			if i > 0 {
				s.str(", ")
			}
			s.emitTSType(t)
		}
	}
	s.str(" {")
	if len(n.Body) == 0 {
		s.ch('}')
		s.newline()
		return
	}
	s.newline()
	s.indentDepth++
	for _, m := range n.Body {
		if m.Comment != nil {
			s.writeIndent()
			s.emitCommentBody(m.Comment)
			s.newline()
		}
		s.writeIndent()
		s.emitTSInterfaceMember(m)
		s.newline()
	}
	s.indentDepth--
	s.writeIndent()
	s.ch('}')
	s.newline()
}

func (s *State) emitTSInterfaceMember(m *ast.TSInterfaceMember) {
	if m.Readonly {
		s.str("readonly ")
	}
	s.emitPropertyKey(m.Key, m.Computed)
	if m.Optional {
		s.ch('?')
	}
	if m.Method {
		s.emitParamList(m.Params)
		if m.Return != nil {
			s.str(": ")
			s.emitTSType(m.Return)
		}
	} else if m.TypeAnn != nil {
		s.str(": ")
		s.emitTSType(m.TypeAnn)
	}
	s.ch(';')
}

func (s *State) emitTSEnumDeclaration(n *ast.TSEnumDeclaration) {
	if n.Declare {
		s.str("declare ")
	}
	if n.Const {
		s.str("const ")
	}
	s.str("enum ")
	s.str(s.resolvedIdentifier(n.Id))
	s.str(" {")
	s.newline()
	s.indentDepth++
	for _, m := range n.Members {
		s.writeIndent()
		s.emitExpression(m.Id, precedence.Lowest, 0)
		if m.Initializer != nil {
			s.str(" = ")
			s.emitExpression(m.Initializer, precedence.Assign, 0)
		}
		s.str(",")
		s.newline()
	}
	s.indentDepth--
	s.writeIndent()
	s.ch('}')
	s.newline()
}

func (s *State) emitTSModuleDeclaration(n *ast.TSModuleDeclaration) {
	if n.Declare {
		s.str("declare ")
	}
	switch {
	case n.IsGlobal:
		s.str("global")
	case n.StringId:
		s.str("module ")
		s.emitStringLiteral(n.Name)
	default:
		s.str("namespace ")
		s.str(n.Name)
	}
	s.str(" {")
	if len(n.Body) == 0 {
		s.ch('}')
		s.newline()
		return
	}
	s.newline()
	s.indentDepth++
	s.emitStatementList(n.Body)
	s.indentDepth--
	s.writeIndent()
	s.ch('}')
	s.newline()
}

// emitTSType prints a TSType node (spec §4.3.7). Numeric literals nested
// inside a type position are printed with the TypeScript context bit set
// so their original source text is preserved.
func (s *State) emitTSType(t ast.TSType) {
	switch n := t.(type) {
	case *ast.TSTypeRaw:
		s.str(n.Text)
	case *ast.TSTypeReference:
		s.str(n.Name)
		s.emitTypeArgs(n.TypeArgs)
	case *ast.TSUnionType:
		for i, m := range n.Types {
			if i > 0 {
				s.str(" | ")
			}
			s.emitTSTypeParenIfNeeded(m)
		}
	case *ast.TSIntersectionType:
		for i, m := range n.Types {
			if i > 0 {
				s.str(" & ")
			}
			s.emitTSTypeParenIfNeeded(m)
		}
	case *ast.TSFunctionType:
		s.emitTypeParameters(n.TypeParameters)
		s.emitParamList(n.Params)
		s.str(" => ")
		s.emitTSType(n.Return)
	case *ast.TSArrayType:
		s.emitTSTypeParenIfNeeded(n.ElementType)
		s.str("[]")
	case *ast.TSTupleType:
		s.ch('[')
		for i, el := range n.Elements {
			if i > 0 {
				s.str(", ")
			}
			if el.Label != "" {
				s.str(el.Label)
				if el.Optional {
					s.ch('?')
				}
				s.str(": ")
			}
			if el.Rest {
				s.str("...")
			}
			s.emitTSType(el.Type)
			if el.Optional && el.Label == "" {
				s.ch('?')
			}
		}
		s.ch(']')
	case *ast.TSMappedType:
		s.emitTSMappedType(n)
	case *ast.TSConditionalType:
		s.emitTSTypeParenIfNeeded(n.CheckType)
		s.str(" extends ")
		s.emitTSTypeParenIfNeeded(n.ExtendsType)
		s.str(" ? ")
		s.emitTSType(n.TrueType)
		s.str(" : ")
		s.emitTSType(n.FalseType)
	case *ast.TSTypeOperator:
		s.str(n.Operator)
		s.hardSpace()
		s.emitTSTypeParenIfNeeded(n.Type)
	case *ast.TSImportType:
		s.str("import(")
		s.str(n.Argument)
		s.ch(')')
		if n.Qualifier != "" {
			s.ch('.')
			s.str(n.Qualifier)
		}
		s.emitTypeArgs(n.TypeArgs)
	case *ast.TSIndexedAccessType:
		s.emitTSTypeParenIfNeeded(n.ObjectType)
		s.ch('[')
		s.emitTSType(n.IndexType)
		s.ch(']')
	case *ast.TSLiteralType:
		s.emitExpression(n.Literal, precedence.Lowest, precedence.TypeScript)
	case *ast.TSTypeLiteral:
		s.emitTSTypeLiteral(n)
	default:
		s.fail("emitter: unreachable TS type kind %T", n)
	}
}

// emitTSTypeParenIfNeeded wraps union/intersection/function/conditional
// types in parentheses when printed as an operand of a tighter-binding
// type operator (array, indexed-access, keyof/readonly, the check/extends
// slots of a nested conditional).
func (s *State) emitTSTypeParenIfNeeded(t ast.TSType) {
	switch t.(type) {
	case *ast.TSUnionType, *ast.TSIntersectionType, *ast.TSFunctionType, *ast.TSConditionalType:
		s.ch('(')
		s.emitTSType(t)
		s.ch(')')
	default:
		s.emitTSType(t)
	}
}

func (s *State) emitTSMappedType(n *ast.TSMappedType) {
	s.str("{ ")
	switch n.Readonly {
	case '+':
		s.str("+readonly ")
	case '-':
		s.str("-readonly ")
	}
	s.ch('[')
	s.str(n.TypeParam)
	s.str(" in ")
	s.emitTSType(n.Constraint)
	if n.NameType != nil {
		s.str(" as ")
		s.emitTSType(n.NameType)
	}
	s.ch(']')
	switch n.Optional {
	case '+':
		s.str("+?")
	case '-':
		s.str("-?")
	}
	s.str(": ")
	s.emitTSType(n.Type)
	s.str(" }")
}

func (s *State) emitTSTypeLiteral(n *ast.TSTypeLiteral) {
	if len(n.Members) == 0 {
		s.str("{}")
		return
	}
	s.str("{ ")
	for i, m := range n.Members {
		if i > 0 {
			s.str("; ")
		}
		if m.Index != nil {
			s.emitIndexSignature(m.Index)
			continue
		}
		if m.Readonly {
			s.str("readonly ")
		}
		s.emitPropertyKey(m.Key, m.Computed)
		if m.Optional {
			s.ch('?')
		}
		s.str(": ")
		s.emitTSType(m.TypeAnn)
	}
	s.str(" }")
}
