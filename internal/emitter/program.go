// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/comments"
)

// preformat is the printer's first pass: it builds the comment store from
// prog.Comments and separates out the legal-comment set, mirroring the
// two-pass preFormat-then-document shape of geas's Printer.Document,
// generalized from "compute a comment column" to "bucket every comment by
// anchor offset before the emitting pass touches any of them".
func (s *State) preformat(prog *ast.Program) {
	s.store = comments.Build(prog.Comments, s.opts.Comments)
	for _, c := range prog.Comments {
		if c.Legal {
			s.legal = append(s.legal, c)
		}
	}
}

func (s *State) emitProgram(prog *ast.Program) {
	if prog.Hashbang != "" {
		s.str(prog.Hashbang)
		s.ch('\n')
	}
	for _, d := range prog.Directives {
		s.emitDirective(d)
	}
	s.emitStatementList(prog.Body)
	s.emitLegalComments()
}

// emitDirective prints a directive-prologue entry ("use strict";), which
// is always its own ExpressionStatement containing a bare StringLiteral
// and is never parenthesized or merged with a preceding expression the
// way an ordinary ExpressionStatement might be (spec §4.3.3 directive
// prologue handling).
func (s *State) emitDirective(d *ast.ExpressionStatement) {
	s.emitLeadingComments(d.Span.Start)
	s.writeIndent()
	lit := d.Expression.(*ast.StringLiteral)
	s.emitStringLiteralRaw(lit.Value)
	s.semi()
	s.newline()
}

func (s *State) emitStatementList(list []ast.Statement) {
	for i, st := range list {
		if i > 0 {
			s.betweenStatements(list[i-1], st)
		}
		s.emitStatement(st)
	}
}

// betweenStatements inserts the blank line ASI/formatting convention:
// geas's printer always separates opcodes by exactly one newline; esgen
// additionally prints one blank line between two statements whenever
// their spans leave more than one byte of source between them. Only the
// spans are consulted, not the source text, so indentation or a comment
// between the statements produces the blank line as well; statements
// without spans (all zero) never get one.
func (s *State) betweenStatements(prev, next ast.Statement) {
	if s.opts.Minify {
		return
	}
	if blankLineBetween(prev, next) {
		s.newline()
	}
}

func blankLineBetween(prev, next ast.Statement) bool {
	prevEnd := prev.GetSpan().End
	nextStart := next.GetSpan().Start
	return nextStart > prevEnd+1
}

func (s *State) semi() {
	s.ch(';')
}

func (s *State) emitLegalComments() {
	if s.opts.Comments.Legal == comments.LegalNone || len(s.legal) == 0 {
		return
	}
	deduped := comments.DedupLegalComments(s.legal)
	switch s.opts.Comments.Legal {
	case comments.LegalInline:
		// Already emitted in place during the main pass; nothing more to do.
	case comments.LegalEOF:
		for _, c := range deduped {
			s.newline()
			s.emitCommentBody(c)
		}
	case comments.LegalLinked:
		s.newline()
		s.str("/*! For license information please see ")
		s.str(s.opts.Comments.LinkedPath)
		s.str(" */")
		s.newline()
	case comments.LegalExternal:
		// Nothing is written to the main output; Codegen hands the
		// deduped set (State.LegalComments) back in its Result, and any
		// sidecar file is written by the caller (cmd/esgen does so).
	}
}
