// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package comments implements the Comment Store (spec §4.2): a sorted
// mapping from source offset to an ordered bucket of comments, built once
// per program and drained in traversal order. It is grounded on the
// single-pass, cursor-advancing scan geas's internal/stack package uses to
// parse stack comments (internal/stack/stackcomment.go), generalized from
// "scan one comment's contents" to "locate the bucket for an arbitrary
// key with an amortized-constant common case".
package comments

import (
	"sort"

	"github.com/esgen/esgen/ast"
)

// Store is a sorted bucketed map from anchor offset to the comments
// attached there. Each bucket is consumed at most once: after Take, the
// bucket is observed empty by any later Peek/Contains.
type Store struct {
	keys     []uint32
	buckets  [][]*ast.Comment
	consumed []bool
	cursor   int // index of the most recently touched bucket
}

// NewStore creates an empty store pre-sized for n anchors, the same way a
// Codegen pre-sizes its comment store to the program's total comment
// count (spec §5).
func NewStore(n int) *Store {
	return &Store{
		keys:     make([]uint32, 0, n),
		buckets:  make([][]*ast.Comment, 0, n),
		consumed: make([]bool, 0, n),
	}
}

// Insert appends c into key's bucket, creating the bucket if necessary.
// Keys are discovered monotonically in the common case (the AST stores
// comments in source order and AttachedTo tracks forward); the fast path
// below handles "same bucket as last" and "new, strictly greater key
// appended", falling back to a sorted insert for the rare out-of-order
// case.
func (s *Store) Insert(key uint32, c *ast.Comment) {
	n := len(s.keys)
	switch {
	case n > 0 && s.keys[n-1] == key:
		s.buckets[n-1] = append(s.buckets[n-1], c)
		return
	case n == 0 || s.keys[n-1] < key:
		s.keys = append(s.keys, key)
		s.buckets = append(s.buckets, []*ast.Comment{c})
		s.consumed = append(s.consumed, false)
		s.cursor = len(s.keys) - 1
		return
	}

	idx := s.find(key)
	if idx < n && s.keys[idx] == key {
		s.buckets[idx] = append(s.buckets[idx], c)
		return
	}
	s.keys = append(s.keys, 0)
	s.buckets = append(s.buckets, nil)
	s.consumed = append(s.consumed, false)
	copy(s.keys[idx+1:], s.keys[idx:n])
	copy(s.buckets[idx+1:], s.buckets[idx:n])
	copy(s.consumed[idx+1:], s.consumed[idx:n])
	s.keys[idx] = key
	s.buckets[idx] = []*ast.Comment{c}
	s.consumed[idx] = false
	s.cursor = idx
}

// find locates the index of key (or the insertion point for it), walking
// one step from the cached cursor before falling back to binary search.
func (s *Store) find(key uint32) int {
	n := len(s.keys)
	if n == 0 {
		return 0
	}
	if s.cursor < n {
		if s.keys[s.cursor] == key {
			return s.cursor
		}
		if s.cursor+1 < n && s.keys[s.cursor+1] == key {
			return s.cursor + 1
		}
		if s.cursor > 0 && s.keys[s.cursor-1] == key {
			return s.cursor - 1
		}
	}
	return sort.Search(n, func(i int) bool { return s.keys[i] >= key })
}

// Contains reports whether key has a present, non-empty, not-yet-consumed
// bucket.
func (s *Store) Contains(key uint32) bool {
	idx := s.find(key)
	if idx >= len(s.keys) || s.keys[idx] != key {
		return false
	}
	s.cursor = idx
	return !s.consumed[idx] && len(s.buckets[idx]) > 0
}

// Peek returns key's bucket without consuming it, or nil if absent or
// already consumed.
func (s *Store) Peek(key uint32) []*ast.Comment {
	idx := s.find(key)
	if idx >= len(s.keys) || s.keys[idx] != key {
		return nil
	}
	s.cursor = idx
	if s.consumed[idx] {
		return nil
	}
	return s.buckets[idx]
}

// Take returns key's bucket and marks it consumed. Calling Take again on
// the same key returns nil (idempotent-after-consumption).
func (s *Store) Take(key uint32) []*ast.Comment {
	idx := s.find(key)
	if idx >= len(s.keys) || s.keys[idx] != key || s.consumed[idx] {
		return nil
	}
	s.cursor = idx
	s.consumed[idx] = true
	bucket := s.buckets[idx]
	s.buckets[idx] = nil
	return bucket
}
