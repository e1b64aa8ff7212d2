// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/precedence"
)

// emitStatement is the top of the statement dispatcher (spec §4.3.3): a
// switch over every concrete Statement variant, the same shape as
// geas's Printer.statement switch over ast.Statement, generalized from a
// handful of assembly pseudo-ops to the full ECMAScript/TypeScript
// statement grammar.
func (s *State) emitStatement(st ast.Statement) {
	s.emitLeadingComments(st.GetSpan().Start)
	s.writeIndent()
	s.recordSpan(st.GetSpan())
	switch n := st.(type) {
	case *ast.ExpressionStatement:
		s.emitExpressionStatement(n)
	case *ast.BlockStatement:
		s.emitBlock(n)
		s.newline()
	case *ast.EmptyStatement:
		s.ch(';')
		s.newline()
	case *ast.DebuggerStatement:
		s.str("debugger")
		s.semi()
		s.newline()
	case *ast.VariableDeclaration:
		s.emitVariableDeclaration(n)
		s.semi()
		s.newline()
	case *ast.FunctionDeclaration:
		s.emitFunctionDeclaration(n)
		s.newline()
	case *ast.ClassDeclaration:
		s.emitClassDeclaration(n)
		s.newline()
	case *ast.ReturnStatement:
		s.str("return")
		if n.Argument != nil {
			s.hardSpace()
			s.emitExpression(n.Argument, precedence.Lowest, 0)
		}
		s.semi()
		s.newline()
	case *ast.IfStatement:
		s.emitIfStatement(n)
	case *ast.ForStatement:
		s.emitForStatement(n)
	case *ast.ForInStatement:
		s.emitForInOfStatement(n.Left, n.Right, n.Body, "in", false)
	case *ast.ForOfStatement:
		s.emitForInOfStatement(n.Left, n.Right, n.Body, "of", n.Await)
	case *ast.WhileStatement:
		s.str("while (")
		s.emitExpression(n.Test, precedence.Lowest, 0)
		s.ch(')')
		s.emitLoopBody(n.Body)
	case *ast.DoWhileStatement:
		s.str("do")
		s.emitLoopBody(n.Body)
		// emitLoopBody leaves the cursor after a newline for a block body,
		// but `do { } while (...)` keeps `while` on the closing brace's line.
		s.rewindTrailingNewlineForDoWhile(n.Body)
		s.str(" while (")
		s.emitExpression(n.Test, precedence.Lowest, 0)
		s.str(")")
		s.semi()
		s.newline()
	case *ast.SwitchStatement:
		s.emitSwitchStatement(n)
	case *ast.BreakStatement:
		s.str("break")
		if n.Label != nil {
			s.hardSpace()
			s.str(s.resolvedIdentifier(n.Label))
		}
		s.semi()
		s.newline()
	case *ast.ContinueStatement:
		s.str("continue")
		if n.Label != nil {
			s.hardSpace()
			s.str(s.resolvedIdentifier(n.Label))
		}
		s.semi()
		s.newline()
	case *ast.LabeledStatement:
		s.str(s.resolvedIdentifier(n.Label))
		s.ch(':')
		s.space()
		s.emitStatementInline(n.Body)
	case *ast.ThrowStatement:
		s.str("throw")
		s.hardSpace()
		s.emitExpression(n.Argument, precedence.Lowest, 0)
		s.semi()
		s.newline()
	case *ast.TryStatement:
		s.emitTryStatement(n)
	case *ast.WithStatement:
		s.str("with (")
		s.emitExpression(n.Object, precedence.Lowest, 0)
		s.ch(')')
		s.emitLoopBody(n.Body)
	case *ast.ImportDeclaration:
		s.emitImportDeclaration(n)
	case *ast.ExportNamedDeclaration:
		s.emitExportNamedDeclaration(n)
	case *ast.ExportDefaultDeclaration:
		s.emitExportDefaultDeclaration(n)
	case *ast.ExportAllDeclaration:
		s.emitExportAllDeclaration(n)
	case *ast.TSTypeAliasDeclaration:
		s.emitTSTypeAliasDeclaration(n)
	case *ast.TSInterfaceDeclaration:
		s.emitTSInterfaceDeclaration(n)
	case *ast.TSEnumDeclaration:
		s.emitTSEnumDeclaration(n)
	case *ast.TSModuleDeclaration:
		s.emitTSModuleDeclaration(n)
	default:
		s.fail("emitter: unreachable statement kind %T", n)
	}
}

// emitStatementInline prints a statement in a position that isn't its own
// line (the body of a label, or a clause of an unbraced if/for/while):
// it suppresses the caller's indent-then-newline bracketing for anything
// that already brackets itself (a block), and otherwise defers to the
// full emitStatement machinery so nested declarations still see their
// own comments.
func (s *State) emitStatementInline(st ast.Statement) {
	if blk, ok := st.(*ast.BlockStatement); ok {
		s.emitBlock(blk)
		s.newline()
		return
	}
	s.emitStatement(st)
}

func (s *State) emitExpressionStatement(n *ast.ExpressionStatement) {
	if startsWithAmbiguousToken(n.Expression) {
		s.ch('(')
		s.emitExpression(n.Expression, precedence.Lowest, 0)
		s.ch(')')
	} else {
		s.emitExpression(n.Expression, precedence.Lowest, 0)
	}
	s.semi()
	s.newline()
}

// startsWithAmbiguousToken reports whether an expression statement needs
// a parenthesis wrapper to avoid being misparsed at statement start: a
// leading `{` (object literal vs. block), `function`/`class`/`async
// function` (declaration vs. expression), or `let[` (ASI hazard with a
// preceding `let` identifier use).
func startsWithAmbiguousToken(e ast.Expression) bool {
	switch n := e.(type) {
	case *ast.ObjectExpression:
		return true
	case *ast.FunctionExpression:
		return true
	case *ast.ClassExpression:
		return true
	case *ast.AssignmentExpression:
		return startsWithAmbiguousToken(n.Left)
	case *ast.BinaryExpression:
		return startsWithAmbiguousToken(n.Left)
	case *ast.LogicalExpression:
		return startsWithAmbiguousToken(n.Left)
	case *ast.SequenceExpression:
		if len(n.Expressions) > 0 {
			return startsWithAmbiguousToken(n.Expressions[0])
		}
	case *ast.CallExpression:
		return startsWithAmbiguousToken(n.Callee)
	case *ast.MemberExpression:
		if id, ok := n.Object.(*ast.Identifier); ok && n.Computed && id.Name == "let" {
			return true
		}
		return startsWithAmbiguousToken(n.Object)
	case *ast.TaggedTemplateExpression:
		return startsWithAmbiguousToken(n.Tag)
	case *ast.ConditionalExpression:
		return startsWithAmbiguousToken(n.Test)
	case *ast.TSAsExpression:
		return startsWithAmbiguousToken(n.Expression)
	case *ast.TSNonNullExpression:
		return startsWithAmbiguousToken(n.Expression)
	}
	return false
}

func (s *State) emitBlock(n *ast.BlockStatement) {
	s.ch('{')
	if len(n.Body) == 0 && !s.hasLeadingComments(n.Span.End) {
		s.ch('}')
		return
	}
	s.newline()
	s.indentDepth++
	s.emitStatementList(n.Body)
	s.indentDepth--
	s.emitLeadingComments(n.Span.End)
	s.writeIndent()
	s.ch('}')
}

// emitBlockBody prints `{ ... }` around a bare statement list with no
// span of its own to hang leading/trailing comments off (a class static
// block's body is recorded as []Statement, not a *BlockStatement).
func (s *State) emitBlockBody(body []ast.Statement) {
	s.ch('{')
	if len(body) == 0 {
		s.ch('}')
		return
	}
	s.newline()
	s.indentDepth++
	s.emitStatementList(body)
	s.indentDepth--
	s.writeIndent()
	s.ch('}')
}

// emitLoopBody prints a loop/with body, which per spec is a block when
// the AST gives one and an inline statement otherwise (`for (;;) foo();`
// stays on one logical construct rather than being force-wrapped).
func (s *State) emitLoopBody(body ast.Statement) {
	if blk, ok := body.(*ast.BlockStatement); ok {
		s.space()
		s.emitBlock(blk)
		s.newline()
		return
	}
	s.newline()
	s.indentDepth++
	s.emitStatement(body)
	s.indentDepth--
}

// rewindTrailingNewlineForDoWhile backs the buffer up over the newline
// emitLoopBody's block-body path just wrote, so `} while (cond);` lands
// on the closing brace's own line instead of the next one.
func (s *State) rewindTrailingNewlineForDoWhile(body ast.Statement) {
	if _, isBlock := body.(*ast.BlockStatement); !isBlock {
		return
	}
	if last, ok := s.buf.LastByte(); ok && last == '\n' {
		s.buf.TrimLastByte()
	}
}

// endsInDanglingIf reports whether stmt's tail, walked through the
// bodies of nested for/for-in/for-of/while/with/labeled statements,
// terminates in an `if` that has no `else` of its own (spec §4.3.3's
// "unbalanced if" chain). An `if` whose outer statement also carries an
// `else` must brace such a consequent, or the printed `else` would bind
// to the inner `if` instead of the outer one.
func endsInDanglingIf(stmt ast.Statement) bool {
	for {
		switch n := stmt.(type) {
		case *ast.IfStatement:
			if n.Alternate == nil {
				return true
			}
			stmt = n.Alternate
		case *ast.ForStatement:
			stmt = n.Body
		case *ast.ForInStatement:
			stmt = n.Body
		case *ast.ForOfStatement:
			stmt = n.Body
		case *ast.WhileStatement:
			stmt = n.Body
		case *ast.WithStatement:
			stmt = n.Body
		case *ast.LabeledStatement:
			stmt = n.Body
		default:
			return false
		}
	}
}

func (s *State) emitIfStatement(n *ast.IfStatement) {
	s.str("if (")
	s.emitExpression(n.Test, precedence.Lowest, 0)
	s.ch(')')
	if n.Alternate == nil {
		s.emitLoopBody(n.Consequent)
		return
	}
	switch blk, isBlock := n.Consequent.(*ast.BlockStatement); {
	case isBlock:
		s.space()
		s.emitBlock(blk)
		s.space()
	case endsInDanglingIf(n.Consequent):
		// A bare (unbraced) consequent whose own tail is an `if` with no
		// `else` would silently steal this statement's `else` on reparse;
		// brace it to pin the `else` to this `if` (spec §4.3.3).
		s.space()
		s.emitBlockBody([]ast.Statement{n.Consequent})
		s.space()
	default:
		s.newline()
		s.indentDepth++
		s.emitStatement(n.Consequent)
		s.indentDepth--
		s.writeIndent()
	}
	s.str("else")
	if elseIf, ok := n.Alternate.(*ast.IfStatement); ok {
		s.hardSpace()
		s.emitIfStatement(elseIf)
		return
	}
	s.emitLoopBody(n.Alternate)
}

func (s *State) emitForStatement(n *ast.ForStatement) {
	s.str("for (")
	switch init := n.Init.(type) {
	case nil:
	case *ast.VariableDeclaration:
		s.emitVariableDeclaration(init)
	case ast.Expression:
		s.emitExpression(init, precedence.Lowest, precedence.ForbidIn)
	}
	s.ch(';')
	if n.Test != nil {
		s.space()
		s.emitExpression(n.Test, precedence.Lowest, 0)
	}
	s.ch(';')
	if n.Update != nil {
		s.space()
		s.emitExpression(n.Update, precedence.Lowest, 0)
	}
	s.ch(')')
	s.emitLoopBody(n.Body)
}

func (s *State) emitForInOfStatement(left ast.Node, right ast.Expression, body ast.Statement, kw string, await bool) {
	s.str("for ")
	if await {
		s.str("await ")
	}
	s.ch('(')
	switch l := left.(type) {
	case *ast.VariableDeclaration:
		s.emitVariableDeclaration(l)
	case ast.Expression:
		s.emitExpression(l, precedence.Lowest, precedence.ForbidIn)
	}
	s.hardSpace()
	s.str(kw)
	s.hardSpace()
	s.emitExpression(right, precedence.Lowest, 0)
	s.ch(')')
	s.emitLoopBody(body)
}

func (s *State) emitSwitchStatement(n *ast.SwitchStatement) {
	s.str("switch (")
	s.emitExpression(n.Discriminant, precedence.Lowest, 0)
	s.str(") {")
	s.newline()
	for _, c := range n.Cases {
		s.emitLeadingComments(c.Span.Start)
		s.indentDepth++
		s.writeIndent()
		if c.Test != nil {
			s.str("case ")
			s.emitExpression(c.Test, precedence.Lowest, 0)
		} else {
			s.str("default")
		}
		s.ch(':')
		if len(c.Consequent) == 1 {
			if blk, ok := c.Consequent[0].(*ast.BlockStatement); ok {
				s.space()
				s.emitBlock(blk)
				s.newline()
				s.indentDepth--
				continue
			}
		}
		s.newline()
		s.indentDepth++
		s.emitStatementList(c.Consequent)
		s.indentDepth--
		s.indentDepth--
	}
	s.writeIndent()
	s.ch('}')
	s.newline()
}

func (s *State) emitTryStatement(n *ast.TryStatement) {
	s.str("try ")
	s.emitBlock(n.Block)
	if n.Handler != nil {
		s.space()
		s.str("catch")
		if n.Handler.Param != nil {
			s.str(" (")
			s.emitBindingTarget(n.Handler.Param)
			s.ch(')')
		}
		s.space()
		s.emitBlock(n.Handler.Body)
	}
	if n.Finalizer != nil {
		s.space()
		s.str("finally ")
		s.emitBlock(n.Finalizer)
	}
	s.newline()
}

func (s *State) emitVariableDeclaration(n *ast.VariableDeclaration) {
	if n.Declare {
		s.str("declare ")
	}
	s.str(n.Kind.String())
	s.hardSpace()
	for i, d := range n.Declarations {
		if i > 0 {
			s.str(", ")
		}
		s.emitBindingTarget(d.Id)
		if d.Definite {
			s.ch('!')
		}
		if d.TypeAnn != nil {
			s.str(": ")
			s.emitTSType(d.TypeAnn)
		}
		if d.Init != nil {
			s.str(" = ")
			s.emitExpression(d.Init, precedence.Assign, 0)
		}
	}
}

func (s *State) recordSpan(span ast.Span) {
	if s.recorder == nil || span.IsEmpty() {
		return
	}
	s.recorder.Advance(s.buf.Bytes())
	s.recorder.Add(span.Start, span.End, "")
}
