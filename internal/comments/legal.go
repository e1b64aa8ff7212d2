// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comments

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/esgen/esgen/ast"
)

// legalSet is a thin dedup set, adapted from geas's internal/set.Set: the
// teacher didn't want to pull in a set library just for deduplicating a
// handful of strings, and neither do we.
type legalSet map[string]struct{}

func (s legalSet) addIfNew(key string) bool {
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = struct{}{}
	return true
}

// DedupLegalComments returns the unique legal comments from list, in
// first-occurrence order. Block comments containing line terminators are
// normalized (interior re-indented with a tab) before comparison, so
// textually-equivalent comments with different surrounding indentation
// still coalesce.
func DedupLegalComments(list []*ast.Comment) []*ast.Comment {
	seen := make(legalSet, len(list))
	out := make([]*ast.Comment, 0, len(list))
	for _, c := range list {
		if !c.Legal {
			continue
		}
		if seen.addIfNew(normalizeLegalText(c)) {
			out = append(out, c)
		}
	}
	return out
}

func normalizeLegalText(c *ast.Comment) string {
	if c.Kind != ast.CommentBlock || !strings.ContainsAny(c.Text, "\r\n  ") {
		return c.Text
	}
	lines := splitLines(c.Text)
	for i := 1; i < len(lines); i++ {
		lines[i] = "\t" + strings.TrimLeft(lines[i], " \t")
	}
	return strings.Join(lines, "\n")
}

// LegalDigest returns a short, stable content digest for the deduplicated
// legal-comment set. LegalLinked and LegalExternal both write the set to
// a sidecar file alongside the generated code; the digest names that
// file, so a rebuild that doesn't change any license text reuses the
// same path instead of bumping a counter. sha3 mirrors how geas
// content-addresses evaluated byte blobs via golang.org/x/crypto in its
// %keccak256 builtin.
func LegalDigest(list []*ast.Comment) string {
	h := sha3.New256()
	for _, c := range list {
		h.Write([]byte(normalizeLegalText(c)))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// SidecarFileName returns the default file name for the LegalLinked
// banner path / LegalExternal sidecar file: the output base name with a
// digest-qualified ".LEGAL-<digest>.txt" suffix, so distinct license
// sets attached to the same output name never collide and an unchanged
// set reuses its previous path.
func SidecarFileName(outputBase string, list []*ast.Comment) string {
	return outputBase + ".LEGAL-" + LegalDigest(list) + ".txt"
}

// RenderSidecar renders the deduplicated legal-comment set as the plain
// text body of a LegalLinked/LegalExternal sidecar file: each comment's
// original delimiters, separated by a blank line.
func RenderSidecar(list []*ast.Comment) string {
	var b strings.Builder
	for i, c := range list {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch c.Kind {
		case ast.CommentLine:
			b.WriteString("//")
			b.WriteString(c.Text)
		default:
			b.WriteString("/*")
			b.WriteString(c.Text)
			b.WriteString("*/")
		}
	}
	if len(list) > 0 {
		b.WriteString("\n")
	}
	return b.String()
}
