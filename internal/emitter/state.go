// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"fmt"

	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/buffer"
	"github.com/esgen/esgen/internal/comments"
	"github.com/esgen/esgen/internal/sourcemap"
)

// State is the printer's mutable working set: the output buffer, the
// comment store being drained, the source-map recorder, and the small
// amount of ambient state (indent depth, private-name scope stack) a
// recursive-descent print needs to thread through. It plays the same
// role the teacher's Printer struct plays for assembly documents,
// generalized from a flat statement list to an arbitrarily nested
// expression/statement/JSX/TS tree.
type State struct {
	buf  *buffer.Buffer
	opts Options

	store     *comments.Store
	legal     []*ast.Comment
	recorder  *sourcemap.Recorder
	scoping   ast.Scoping
	mangling  ast.PrivateNameMappings
	sourceTyp ast.SourceType

	indentDepth int
	classStack  []ast.ClassID
	nextClassID ast.ClassID

	// needSpaceBeforeDot is set right after printing a bare integer
	// literal with no decimal point; a following `.` (member access) must
	// be preceded by a space or it would be lexed as part of the number
	// (spec §4.3.4, print_non_negative_float).
	needSpaceBeforeDot bool
}

// New creates a State ready to print into a buffer pre-reserved to
// capacityHint bytes, the same way a Codegen pre-reserves its buffer to
// len(sourceText) (spec §5).
func New(opts Options, capacityHint int, scoping ast.Scoping, mangling ast.PrivateNameMappings) *State {
	return &State{
		buf:      buffer.New(capacityHint),
		opts:     opts,
		store:    comments.NewStore(0),
		scoping:  scoping,
		mangling: mangling,
	}
}

// WithRecorder attaches a source-map recorder; printing proceeds
// identically either way, but span-bearing prints additionally call
// into r when non-nil.
func (s *State) WithRecorder(r *sourcemap.Recorder) *State {
	s.recorder = r
	return s
}

// printError wraps a panic value raised during printing so the toplevel
// entry point can recover it into a normal error return, mirroring
// geas's Printer.finishToplevel/printError pair: printing itself never
// returns an error, since a well-formed AST is infallible to print, but
// a malformed one (e.g. an unreachable node kind slipping through a type
// switch) panics rather than silently emitting garbage.
type printError struct{ err error }

func (p printError) Error() string { return p.err.Error() }

func (s *State) fail(format string, args ...any) {
	panic(printError{err: fmt.Errorf(format, args...)})
}

// Print renders prog into the buffer, recovering any internal panic into
// a returned error the way geas's Document/Expr entry points do.
func (s *State) Print(prog *ast.Program) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(printError); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()
	s.sourceTyp = prog.SourceType
	s.preformat(prog)
	s.emitProgram(prog)
	out = s.buf.IntoString()
	return out, nil
}

// LegalComments returns the deduplicated legal-comment set gathered
// during printing, ready for LegalLinked/LegalExternal disposition.
func (s *State) LegalComments() []*ast.Comment {
	return comments.DedupLegalComments(s.legal)
}

func (s *State) indentUnit() byte { return byte(s.opts.IndentChar) }

func (s *State) writeIndent() {
	if s.opts.Minify {
		return
	}
	s.buf.PrintIndent(s.indentUnit(), s.opts.IndentWidth, s.opts.InitialIndent+s.indentDepth)
}

func (s *State) newline() {
	if s.opts.Minify {
		return
	}
	s.buf.PrintASCIIByte('\n')
}

func (s *State) space() {
	if s.opts.Minify {
		return
	}
	s.buf.PrintASCIIByte(' ')
}

// hardSpace always prints, even when minifying: the one case the emitter
// needs a byte between two tokens to keep them from fusing into one
// identifier/number/regex (spec §4.3.4's need-space-before-dot, `in`
// between two keywords, etc).
func (s *State) hardSpace() {
	s.buf.PrintASCIIByte(' ')
}

func (s *State) str(text string) { s.buf.PrintStr(text) }
func (s *State) ch(c byte)       { s.buf.PrintASCIIByte(c) }

// enterClass pushes a freshly assigned ClassID onto the mangling scope
// stack, numbered in traversal order: a Codegen built WithPrivateMember
// Mappings must build its mapping table by walking the same AST in the
// same order, so the Nth class entered here is the Nth entry that table
// describes (spec §4.4).
func (s *State) enterClass() ast.ClassID {
	s.nextClassID++
	id := s.nextClassID
	s.classStack = append(s.classStack, id)
	return id
}

func (s *State) leaveClass() {
	s.classStack = s.classStack[:len(s.classStack)-1]
}

// mangledPrivateName resolves a #name against the enclosing class stack,
// falling back to the original spelling when no mapping applies (spec
// §4.4: private-member mangling is opt-in via WithPrivateMemberMappings).
func (s *State) mangledPrivateName(original string) string {
	if s.mangling == nil || len(s.classStack) == 0 {
		return original
	}
	if mangled, ok := s.mangling.Lookup(s.classStack, original); ok {
		return mangled
	}
	return original
}

func (s *State) resolvedIdentifier(id *ast.Identifier) string {
	if s.scoping != nil && id.HasRefID {
		if name, ok := s.scoping.ResolvedName(id.Reference); ok {
			return name
		}
	}
	return id.Name
}

