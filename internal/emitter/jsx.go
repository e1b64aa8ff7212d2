// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"strings"

	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/precedence"
)

func (s *State) emitJSXElement(n *ast.JSXElement) {
	s.ch('<')
	s.str(n.Name)
	for _, a := range n.Attributes {
		s.hardSpace()
		s.emitJSXAttribute(a)
	}
	if n.SelfClosing {
		s.str(" />")
		return
	}
	s.ch('>')
	s.emitJSXChildren(n.Children)
	s.str("</")
	s.str(n.Name)
	s.ch('>')
}

func (s *State) emitJSXFragment(n *ast.JSXFragment) {
	s.str("<>")
	s.emitJSXChildren(n.Children)
	s.str("</>")
}

func (s *State) emitJSXAttribute(a ast.JSXAttributeNode) {
	switch n := a.(type) {
	case *ast.JSXSpreadAttribute:
		s.str("{...")
		s.emitExpression(n.Argument, precedence.Assign, 0)
		s.ch('}')
	case *ast.JSXAttribute:
		s.str(n.Name)
		if n.Value == nil {
			return
		}
		s.ch('=')
		switch v := n.Value.(type) {
		case *ast.StringLiteral:
			s.emitJSXAttributeStringValue(v.Value)
		case *ast.JSXExpressionContainer:
			s.ch('{')
			if v.Expression != nil {
				s.emitExpression(v.Expression, precedence.Assign, 0)
			}
			s.ch('}')
		case *ast.JSXElement:
			s.emitJSXElement(v)
		}
	}
}

// emitJSXAttributeStringValue prints a JSX attribute's string value
// regardless of the printer's configured quote style. JSX attribute
// values cannot be backslash-escaped, so the quote is chosen so the
// value never contains it: double quotes, or single quotes when the
// value itself contains a double quote.
func (s *State) emitJSXAttributeStringValue(v string) {
	quote := byte('"')
	if strings.IndexByte(v, '"') >= 0 {
		quote = '\''
	}
	s.ch(quote)
	s.str(v)
	s.ch(quote)
}

func (s *State) emitJSXChildren(children []ast.JSXChild) {
	for _, c := range children {
		switch n := c.(type) {
		case *ast.JSXText:
			s.str(n.Value)
		case *ast.JSXExpressionContainer:
			s.ch('{')
			if n.Expression != nil {
				s.emitExpression(n.Expression, precedence.Assign, 0)
			}
			s.ch('}')
		case *ast.JSXSpreadChild:
			s.str("{...")
			s.emitExpression(n.Expression, precedence.Assign, 0)
			s.ch('}')
		case *ast.JSXElement:
			s.emitJSXElement(n)
		case *ast.JSXFragment:
			s.emitJSXFragment(n)
		}
	}
}
