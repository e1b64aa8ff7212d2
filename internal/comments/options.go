// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comments

// LegalDisposition controls what happens to legal comments (/*! ... */,
// @license, @preserve) at the end of a program (spec §4.2, "Legal-comment
// disposition").
type LegalDisposition byte

const (
	LegalNone LegalDisposition = iota
	LegalInline
	LegalEOF
	LegalLinked
	LegalExternal
)

// Options controls which comment kinds Build inserts into the store.
type Options struct {
	Legal      LegalDisposition
	LinkedPath string // path printed in the "/*! For license information..." banner, when Legal == LegalLinked
	JSDoc      bool
	Annotation bool
	Normal     bool
}
