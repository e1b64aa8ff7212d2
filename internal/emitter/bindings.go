// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/precedence"
)

// emitBindingTarget prints a destructuring target or plain identifier in
// binding position (a variable declarator's Id, a catch clause's param,
// an assignment pattern's Left).
func (s *State) emitBindingTarget(t ast.BindingTarget) {
	switch n := t.(type) {
	case *ast.Identifier:
		s.str(s.resolvedIdentifier(n))
		if n.Optional {
			s.ch('?')
		}
		if n.TypeAnn != nil {
			s.str(": ")
			s.emitTSType(n.TypeAnn)
		}
	case *ast.ArrayPattern:
		s.emitArrayPattern(n)
	case *ast.ObjectPattern:
		s.emitObjectPattern(n)
	case *ast.AssignmentPattern:
		s.emitBindingTarget(n.Left)
		s.str(" = ")
		s.emitExpression(n.Right, precedence.Assign, 0)
	case *ast.RestElement:
		s.str("...")
		s.emitBindingTarget(n.Argument)
	default:
		s.fail("emitter: unreachable binding target kind %T", n)
	}
}

func (s *State) emitArrayPattern(n *ast.ArrayPattern) {
	s.ch('[')
	for i, el := range n.Elements {
		if i > 0 {
			s.str(", ")
		}
		if el == nil {
			continue
		}
		s.emitBindingTarget(el)
	}
	if n.Rest != nil {
		if len(n.Elements) > 0 {
			s.str(", ")
		}
		s.str("...")
		s.emitBindingTarget(n.Rest)
	}
	s.ch(']')
}

func (s *State) emitObjectPattern(n *ast.ObjectPattern) {
	if len(n.Properties) == 0 && n.Rest == nil {
		s.str("{}")
		return
	}
	s.str("{ ")
	for i, p := range n.Properties {
		if i > 0 {
			s.str(", ")
		}
		s.emitPropertyKey(p.Key, p.Computed)
		if !p.Shorthand {
			s.str(": ")
			s.emitBindingTarget(p.Value)
		}
		if p.Default != nil {
			s.str(" = ")
			s.emitExpression(p.Default, precedence.Assign, 0)
		}
	}
	if n.Rest != nil {
		if len(n.Properties) > 0 {
			s.str(", ")
		}
		s.str("...")
		s.emitBindingTarget(n.Rest)
	}
	s.str(" }")
}

// emitArrayPatternAsExpression/emitObjectPatternAsExpression print a
// destructuring pattern that appears in assignment-target expression
// position (e.g. the left side of `({a} = x)`), which the grammar allows
// to double as either a pattern or an expression depending on context.
func (s *State) emitArrayPatternAsExpression(n *ast.ArrayPattern) {
	s.emitArrayPattern(n)
}

func (s *State) emitObjectPatternAsExpression(n *ast.ObjectPattern) {
	s.emitObjectPattern(n)
}
