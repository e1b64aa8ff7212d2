// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

//go:generate go run golang.org/x/tools/cmd/stringer@latest -type CommentKind

// CommentKind distinguishes line (`//`) from block (`/* */`) comments.
type CommentKind byte

const (
	CommentLine CommentKind = iota
	CommentBlock
)

// Comment is an AST-side record produced by the parser. AttachedTo names
// the source offset the printer should re-emit the comment next to; it is
// computed by the parser and is authoritative. The printer never guesses
// an anchor for a comment, and silently drops any comment whose anchor
// does not turn up during traversal (except legal comments, gathered
// separately).
type Comment struct {
	Span       Span
	Text       string // raw text, without the leading // or /* */ delimiters
	Kind       CommentKind
	AttachedTo uint32

	Leading  bool
	Trailing bool

	Pure           bool // /* @__PURE__ */
	NoSideEffects  bool // /* @__NO_SIDE_EFFECTS__ */
	Legal          bool // /*! ... */, @license, @preserve
	JSDoc          bool
	Annotation     bool // /* webpackChunkName: ... */ and similar
	Normal         bool
	PrecededByNewline bool
	FollowedByNewline bool
}

// IsAnnotationOnly reports whether a comment is purely a pure/no-side-effects
// marker, handled inline by the emitter at call/function sites rather than
// via the comment store.
func (c *Comment) IsAnnotationOnly() bool {
	return c.Pure || c.NoSideEffects
}
