// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comments

import "github.com/esgen/esgen/ast"

// Build scans a program's comment vector once and inserts every leading
// comment enabled by opts under key = comment.AttachedTo. Pure/no-side-
// effects annotations are skipped: the emitter handles those inline at
// their call/function sites rather than via the store.
func Build(list []*ast.Comment, opts Options) *Store {
	store := NewStore(len(list))
	for _, c := range list {
		if c.IsAnnotationOnly() {
			continue
		}
		if !c.Leading {
			continue
		}
		if !kindEnabled(c, opts) {
			continue
		}
		store.Insert(c.AttachedTo, c)
	}
	return store
}

func kindEnabled(c *ast.Comment, opts Options) bool {
	switch {
	case c.Legal:
		return opts.Legal == LegalInline || opts.Legal == LegalEOF ||
			opts.Legal == LegalLinked || opts.Legal == LegalExternal
	case c.JSDoc:
		return opts.JSDoc
	case c.Annotation:
		return opts.Annotation
	default:
		return opts.Normal
	}
}
