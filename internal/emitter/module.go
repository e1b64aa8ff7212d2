// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/precedence"
)

func (s *State) emitImportDeclaration(n *ast.ImportDeclaration) {
	s.str("import ")
	if n.Kind == ast.ImportType {
		s.str("type ")
	}
	if len(n.Specifiers) > 0 {
		s.emitImportSpecifiers(n.Specifiers)
		s.str(" from ")
	}
	s.emitStringLiteral(n.Source.Value)
	s.emitWithClause(n.WithClause)
	s.semi()
	s.newline()
}

func (s *State) emitImportSpecifiers(specs []ast.ImportSpecifierNode) {
	var named []*ast.ImportSpecifier
	first := true
	for _, sp := range specs {
		switch n := sp.(type) {
		case *ast.ImportDefaultSpecifier:
			if !first {
				s.str(", ")
			}
			s.str(s.resolvedIdentifier(n.Local))
			first = false
		case *ast.ImportNamespaceSpecifier:
			if !first {
				s.str(", ")
			}
			s.str("* as ")
			s.str(s.resolvedIdentifier(n.Local))
			first = false
		case *ast.ImportSpecifier:
			named = append(named, n)
		}
	}
	if len(named) == 0 {
		return
	}
	if !first {
		s.str(", ")
	}
	s.str("{ ")
	for i, n := range named {
		if i > 0 {
			s.str(", ")
		}
		if n.Kind == ast.ImportType {
			s.str("type ")
		}
		s.str(s.resolvedIdentifier(n.Imported))
		if n.Local.Name != n.Imported.Name {
			s.str(" as ")
			s.str(s.resolvedIdentifier(n.Local))
		}
	}
	s.str(" }")
}

func (s *State) emitWithClause(entries []*ast.WithClauseEntry) {
	if len(entries) == 0 {
		return
	}
	s.str(" with { ")
	for i, e := range entries {
		if i > 0 {
			s.str(", ")
		}
		s.str(e.Key)
		s.str(": ")
		s.emitStringLiteral(e.Value)
	}
	s.str(" }")
}

func (s *State) emitExportNamedDeclaration(n *ast.ExportNamedDeclaration) {
	s.str("export ")
	if n.Declaration != nil {
		s.emitStatement(n.Declaration)
		return
	}
	if n.Kind == ast.ImportType {
		s.str("type ")
	}
	s.str("{ ")
	for i, sp := range n.Specifiers {
		if i > 0 {
			s.str(", ")
		}
		if sp.Kind == ast.ImportType {
			s.str("type ")
		}
		s.str(s.resolvedIdentifier(sp.Local))
		if sp.Exported.Name != sp.Local.Name {
			s.str(" as ")
			s.str(s.resolvedIdentifier(sp.Exported))
		}
	}
	s.str(" }")
	if n.Source != nil {
		s.str(" from ")
		s.emitStringLiteral(n.Source.Value)
	}
	s.semi()
	s.newline()
}

func (s *State) emitExportDefaultDeclaration(n *ast.ExportDefaultDeclaration) {
	s.str("export default ")
	switch decl := n.Declaration.(type) {
	case *ast.FunctionDeclaration:
		s.emitFunctionDeclarationInline(decl)
		s.newline()
	case *ast.ClassDeclaration:
		s.emitClassHeader(decl.Decorators, decl.Abstract, decl.Declare, decl.Id, decl.TypeParameters, decl.SuperClass, decl.SuperTypeArgs, decl.Implements)
		s.emitClassBody(decl.Body)
	case ast.Expression:
		if startsWithFunctionOrClassToken(decl) {
			// `export default function(){}()` would be parsed as an
			// anonymous function declaration followed by a syntax error;
			// parenthesize so the call/member chain reads as an expression.
			s.ch('(')
			s.emitExpression(decl, precedence.Lowest, 0)
			s.ch(')')
		} else {
			s.emitExpression(decl, precedence.Assign, 0)
		}
		s.semi()
		s.newline()
	default:
		s.fail("emitter: unreachable export-default declaration kind %T", decl)
	}
}

// startsWithFunctionOrClassToken reports whether decl's leftmost leaf is
// a FunctionExpression or ClassExpression: at `export default` position
// either keyword begins a declaration grammar, so an expression merely
// using one as a callee/operand (an IIFE, a decorated class expression
// used as a value, etc.) needs a parenthesis to stay an expression.
func startsWithFunctionOrClassToken(e ast.Expression) bool {
	switch n := e.(type) {
	case *ast.FunctionExpression:
		return true
	case *ast.ClassExpression:
		return true
	case *ast.CallExpression:
		return startsWithFunctionOrClassToken(n.Callee)
	case *ast.MemberExpression:
		return startsWithFunctionOrClassToken(n.Object)
	case *ast.TaggedTemplateExpression:
		return startsWithFunctionOrClassToken(n.Tag)
	case *ast.TSAsExpression:
		return startsWithFunctionOrClassToken(n.Expression)
	case *ast.TSNonNullExpression:
		return startsWithFunctionOrClassToken(n.Expression)
	}
	return false
}

// emitFunctionDeclarationInline prints a function declaration without
// the indent/leading-comment handling emitFunctionDeclaration does for
// its own statement position: the shared core used both by
// emitFunctionDeclaration (after it prints any leading comments, indent,
// and `declare`) and by `export default function() {}`, which has
// already printed "export default " on the current line.
func (s *State) emitFunctionDeclarationInline(n *ast.FunctionDeclaration) {
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
	s.emitTypeParameters(n.TypeParameters)
	s.emitParamList(n.Params)
	if n.ReturnType != nil {
		s.str(": ")
		s.emitTSType(n.ReturnType)
	}
	if n.Body == nil {
		s.semi()
		return
	}
	s.space()
	s.emitBlock(n.Body)
}

func (s *State) emitExportAllDeclaration(n *ast.ExportAllDeclaration) {
	s.str("export ")
	if n.Kind == ast.ImportType {
		s.str("type ")
	}
	s.ch('*')
	if n.Exported != nil {
		s.str(" as ")
		s.str(s.resolvedIdentifier(n.Exported))
	}
	s.str(" from ")
	s.emitStringLiteral(n.Source.Value)
	s.semi()
	s.newline()
}
