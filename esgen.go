// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package esgen turns a JavaScript/TypeScript/JSX AST (package ast) back
// into source text. The public surface is a builder, the same shape as
// geas's asm.NewCompiler plus its SetXxx configuration methods: build a
// Codegen, configure it, then Build a parsed Program.
package esgen

import (
	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/emitter"
	"github.com/esgen/esgen/internal/sourcemap"
)

// Options re-exports the emitter's printer configuration so callers never
// need to import the internal package directly.
type Options = emitter.Options

// DefaultOptions returns the non-minified, double-quote, two-space-indent
// default configuration.
func DefaultOptions() Options { return emitter.DefaultOptions() }

// Codegen is a builder for one print of a Program. It is not reusable
// across programs: build a fresh Codegen per call, mirroring how
// asm.NewCompiler hands back a one-shot compiler per assembly job.
type Codegen struct {
	opts       Options
	sourceText string
	scoping    ast.Scoping
	mangling   ast.PrivateNameMappings

	st *emitter.State // lazily created by the incremental helpers below
}

// New creates a Codegen with default options.
func New() *Codegen {
	return &Codegen{opts: DefaultOptions()}
}

// WithOptions replaces the printer configuration.
func (c *Codegen) WithOptions(opts Options) *Codegen {
	c.opts = opts
	return c
}

// WithSourceText attaches the original source text, enabling source-map
// recording during Build. Without it, Build's Map result is always nil.
func (c *Codegen) WithSourceText(text string) *Codegen {
	c.sourceText = text
	return c
}

// WithScoping attaches the external scope/symbol table used to resolve
// (and possibly rename) identifier references. A nil scoping prints every
// identifier under its original name.
func (c *Codegen) WithScoping(scoping ast.Scoping) *Codegen {
	c.scoping = scoping
	return c
}

// WithPrivateMemberMappings attaches the original->mangled private-member
// name table (spec §4.4). A nil table prints every `#name` unchanged.
func (c *Codegen) WithPrivateMemberMappings(m ast.PrivateNameMappings) *Codegen {
	c.mangling = m
	return c
}

// Result is what Build returns: the generated source text, an optional
// source map (present only when WithSourceText was called), and the
// deduplicated legal-comment set gathered during printing.
type Result struct {
	Code          string
	Map           *sourcemap.SourceMap
	LegalComments []*ast.Comment
}

// Build prints prog, per the configuration accumulated by the With*
// calls above.
func (c *Codegen) Build(prog *ast.Program) (*Result, error) {
	capacityHint := len(c.sourceText)
	if capacityHint == 0 {
		capacityHint = 256
	}
	st := emitter.New(c.opts, capacityHint, c.scoping, c.mangling)

	var rec *sourcemap.Recorder
	if c.sourceText != "" {
		rec = sourcemap.NewRecorder(c.opts.SourceMapPath, c.sourceText)
		st = st.WithRecorder(rec)
	}

	code, err := st.Print(prog)
	if err != nil {
		return nil, err
	}

	res := &Result{Code: code, LegalComments: st.LegalComments()}
	if rec != nil {
		res.Map = rec.IntoSourceMap(true)
	}
	return res, nil
}

// incrementalState lazily creates the State backing the incremental
// print helpers below, so a caller that only wants PrintStr/PrintASCIIByte/
// PrintExpression never pays for a Program-shaped preformat pass.
func (c *Codegen) incrementalState() *emitter.State {
	if c.st == nil {
		c.st = emitter.New(c.opts, 256, c.scoping, c.mangling)
	}
	return c.st
}

// PrintASCIIByte appends a single ASCII byte to the incremental buffer.
func (c *Codegen) PrintASCIIByte(b byte) { c.incrementalState().PrintASCIIByte(b) }

// PrintStr appends text verbatim to the incremental buffer.
func (c *Codegen) PrintStr(text string) { c.incrementalState().PrintStr(text) }

// PrintExpression prints a single expression to the incremental buffer.
func (c *Codegen) PrintExpression(e ast.Expression) error {
	return c.incrementalState().PrintExpression(e)
}

// IntoSourceText consumes the incremental buffer built up by the calls
// above and returns its contents. The Codegen must not be used again
// afterward.
func (c *Codegen) IntoSourceText() string {
	return c.incrementalState().IntoSourceText()
}
