// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buffer implements the printer's append-only UTF-8 text sink
// (spec §4.1). It generalizes the teacher's Printer.byte/string/newline
// trio: geas source text is always ASCII, so the teacher never needed
// tail UTF-8 decoding; esgen's source text is arbitrary JS/TS text, so
// LastChar here does the continuation-byte walk the teacher never had to.
package buffer

import "unicode/utf8"

const minCapacity = 64

// Buffer is a growable, append-only byte sink. Bytes [0, Len()) always
// form valid UTF-8; capacity only grows during a print, never shrinks.
type Buffer struct {
	data []byte
}

// New creates a buffer pre-reserved to at least the given capacity, the
// same way a Codegen pre-reserves to len(sourceText) on build (spec §5).
func New(capacityHint int) *Buffer {
	if capacityHint < minCapacity {
		capacityHint = minCapacity
	}
	return &Buffer{data: make([]byte, 0, capacityHint)}
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) grow(extra int) {
	need := len(b.data) + extra
	if need <= cap(b.data) {
		return
	}
	newCap := nextPowerOfTwo(need)
	if newCap < minCapacity {
		newCap = minCapacity
	}
	fresh := make([]byte, len(b.data), newCap)
	copy(fresh, b.data)
	b.data = fresh
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		panic("buffer: length overflow")
	}
	p := 1
	for p < n {
		next := p << 1
		if next <= p {
			panic("buffer: length overflow")
		}
		p = next
	}
	return p
}

// PrintASCIIByte appends a single ASCII byte. Panics if b is not ASCII:
// callers must route non-ASCII bytes through PrintBytesUnchecked.
func (b *Buffer) PrintASCIIByte(c byte) {
	if c > 0x7F {
		panic("buffer: non-ASCII byte passed to PrintASCIIByte")
	}
	b.grow(1)
	b.data = append(b.data, c)
}

// PrintByteUnchecked appends one byte without an ASCII check. The caller
// vouches that the resulting buffer contents remain valid UTF-8 (e.g. this
// byte is one of several making up a single multi-byte append).
func (b *Buffer) PrintByteUnchecked(c byte) {
	b.grow(1)
	b.data = append(b.data, c)
}

// PrintStr appends a whole string.
func (b *Buffer) PrintStr(s string) {
	b.grow(len(s))
	b.data = append(b.data, s...)
}

// PrintBytesUnchecked appends a caller-vouched-UTF-8-safe byte slice.
func (b *Buffer) PrintBytesUnchecked(bs []byte) {
	b.grow(len(bs))
	b.data = append(b.data, bs...)
}

// PrintIdentifierFast appends s, which the caller vouches is composed
// entirely of ASCII identifier-continue bytes ([A-Za-z0-9_$]); this skips
// the general escape-checking path taken by string-literal printing, the
// way the original source's fast_gen.rs inlines the common case of an
// all-ASCII identifier run.
func (b *Buffer) PrintIdentifierFast(s string) {
	b.PrintStr(s)
}

// PrintIndent appends width*depth copies of indentChar.
func (b *Buffer) PrintIndent(indentChar byte, width, depth int) {
	n := width * depth
	if n <= 0 {
		return
	}
	b.grow(n)
	for i := 0; i < n; i++ {
		b.data = append(b.data, indentChar)
	}
}

// TrimLastByte removes the final byte, if any. It exists for the one
// caller that needs to undo a newline it just wrote itself (do/while's
// closing `} while (...)` wants no line break between the brace and the
// keyword); general callers have no business rewinding output they
// didn't just produce.
func (b *Buffer) TrimLastByte() {
	if n := len(b.data); n > 0 {
		b.data = b.data[:n-1]
	}
}

// LastByte returns the final byte written, or 0, false if the buffer is
// empty.
func (b *Buffer) LastByte() (byte, bool) {
	if len(b.data) == 0 {
		return 0, false
	}
	return b.data[len(b.data)-1], true
}

// PeekNthByteBack returns the byte n positions before the end (n=0 is the
// last byte), or 0, false if that position is before the start.
func (b *Buffer) PeekNthByteBack(n int) (byte, bool) {
	idx := len(b.data) - 1 - n
	if idx < 0 {
		return 0, false
	}
	return b.data[idx], true
}

// LastChar decodes the final complete UTF-8 scalar value in the buffer,
// backing up across continuation bytes (0b10xxxxxx) as needed. It returns
// utf8.RuneError, false if the buffer is empty or ends mid-sequence.
func (b *Buffer) LastChar() (rune, bool) {
	n := len(b.data)
	if n == 0 {
		return utf8.RuneError, false
	}
	// Back up over continuation bytes, at most the max rune width.
	start := n - 1
	for i := 0; i < utf8.UTFMax-1 && start > 0 && isContinuationByte(b.data[start]); i++ {
		start--
	}
	r, size := utf8.DecodeRune(b.data[start:n])
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, false
	}
	if start+size != n {
		// The decoded rune didn't reach exactly to the end: the tail is
		// not a complete scalar value.
		return utf8.RuneError, false
	}
	return r, true
}

func isContinuationByte(c byte) bool {
	return c&0xC0 == 0x80
}

// IntoString consumes the buffer, transferring ownership of its bytes to
// the caller.
func (b *Buffer) IntoString() string {
	s := string(b.data)
	b.data = nil
	return s
}

// Bytes returns the buffer's current contents. The returned slice aliases
// the buffer's storage and must not be retained across further writes.
func (b *Buffer) Bytes() []byte {
	return b.data
}
