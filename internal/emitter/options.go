// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emitter implements the AST Emitter (spec §4.3): the exhaustive
// node-kind dispatcher that prints statements and expressions, threaded
// with precedence and context. It is grounded on
// internal/printer.Printer's statement/expr switch-over-tagged-variant
// dispatch and its document/preFormat two-pass structure, generalized
// from geas's small assembly grammar to the full ES/TS/JSX grammar.
package emitter

import "github.com/esgen/esgen/internal/comments"

// IndentChar selects the byte used for one indentation unit.
type IndentChar byte

const (
	IndentSpace IndentChar = ' '
	IndentTab   IndentChar = '\t'
)

// Quote selects the default string-literal quote character.
type Quote byte

const (
	QuoteDouble Quote = '"'
	QuoteSingle Quote = '\''
)

// Options is the printer configuration (spec §3.1), built once before
// printing and never mutated during it.
type Options struct {
	Minify        bool
	SingleQuote   bool
	IndentChar    IndentChar
	IndentWidth   int
	InitialIndent int
	SourceMapPath string
	Comments      comments.Options
}

// DefaultOptions returns the non-minified, double-quote-preferring,
// two-space-indented default configuration.
func DefaultOptions() Options {
	return Options{
		IndentChar:  IndentSpace,
		IndentWidth: 2,
		Comments: comments.Options{
			Legal:      comments.LegalInline,
			JSDoc:      true,
			Annotation: true,
			Normal:     true,
		},
	}
}

func (o Options) quote() Quote {
	if o.SingleQuote {
		return QuoteSingle
	}
	return QuoteDouble
}
