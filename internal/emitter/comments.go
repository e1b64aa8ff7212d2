// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"strings"

	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/comments"
)

// emitLeadingComments drains every comment anchored at offset and prints
// it on its own line, indented to the current depth, before the caller
// prints the node itself. In minify mode the bucket is drained and
// nothing is printed; legal comments are printed here only under
// LegalInline.
func (s *State) emitLeadingComments(offset uint32) {
	if s.opts.Minify {
		s.store.Take(offset) // still consumed, just not printed
		return
	}
	bucket := s.store.Take(offset)
	for _, c := range bucket {
		if c.Legal && s.opts.Comments.Legal != comments.LegalInline {
			continue
		}
		s.writeIndent()
		s.emitCommentBody(c)
		s.newline()
	}
}

// hasLeadingComments reports whether offset has a pending, not-yet-taken
// bucket, used by callers that need to decide layout (e.g. whether an
// object literal forces multi-line) before committing to print it.
func (s *State) hasLeadingComments(offset uint32) bool {
	return !s.opts.Minify && s.store.Contains(offset)
}

// emitCommentBody prints one comment's delimiters and text. Block
// comments spanning multiple lines are re-split and every continuation
// line is prefixed with the current indentation; a line whose first
// non-blank character is `*` has its own leading whitespace replaced by
// a single space (aligning JSDoc-style " *" markers), while any other
// line keeps its original leading whitespace after the indentation.
func (s *State) emitCommentBody(c *ast.Comment) {
	switch c.Kind {
	case ast.CommentLine:
		s.str("//")
		s.str(c.Text)
	case ast.CommentBlock:
		s.str("/*")
		lines := comments.SplitCommentLines(c.Text)
		for i, line := range lines {
			if i == 0 {
				s.str(line)
				continue
			}
			s.ch('\n')
			s.writeIndent()
			if strings.HasPrefix(strings.TrimLeft(line, " \t"), "*") {
				s.str(" " + strings.TrimLeft(line, " \t"))
			} else {
				s.str(line)
			}
		}
		s.str("*/")
	}
}
