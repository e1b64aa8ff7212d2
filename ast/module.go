// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// ImportExportKind distinguishes a value import/export from a `type`-only
// one (`import type { T } from "m"`).
type ImportExportKind byte

const (
	ImportValue ImportExportKind = iota
	ImportType
)

type (
	ImportDeclaration struct {
		base
		Specifiers []ImportSpecifierNode
		Source     *StringLiteral
		Kind       ImportExportKind
		WithClause []*WithClauseEntry
	}

	// ImportSpecifierNode is implemented by the three shapes a specifier
	// list can mix: default, namespace, and named.
	ImportSpecifierNode interface {
		GetSpan() Span
		importSpecifierNode()
	}

	ImportDefaultSpecifier struct {
		base
		Local *Identifier
	}

	ImportNamespaceSpecifier struct {
		base
		Local *Identifier
	}

	ImportSpecifier struct {
		base
		Imported *Identifier // name in the source module; may equal Local
		Local    *Identifier
		Kind     ImportExportKind
	}

	WithClauseEntry struct {
		Key   string
		Value string
	}

	ExportNamedDeclaration struct {
		base
		Declaration Statement // nil when Specifiers is used instead
		Specifiers  []*ExportSpecifier
		Source      *StringLiteral // non-nil for a re-export
		Kind        ImportExportKind
	}

	ExportSpecifier struct {
		base
		Local    *Identifier
		Exported *Identifier
		Kind     ImportExportKind
	}

	ExportDefaultDeclaration struct {
		base
		Declaration Node // Expression, *FunctionDeclaration, or *ClassDeclaration
	}

	ExportAllDeclaration struct {
		base
		Source   *StringLiteral
		Exported *Identifier // non-nil for `export * as ns from "m"`
		Kind     ImportExportKind
	}
)

func (*ImportDeclaration) stmtNode()        {}
func (*ExportNamedDeclaration) stmtNode()   {}
func (*ExportDefaultDeclaration) stmtNode() {}
func (*ExportAllDeclaration) stmtNode()     {}

func (*ImportDefaultSpecifier) importSpecifierNode()   {}
func (*ImportNamespaceSpecifier) importSpecifierNode() {}
func (*ImportSpecifier) importSpecifierNode()          {}
