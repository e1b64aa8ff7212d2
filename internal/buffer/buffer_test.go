// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import "testing"

func TestPrintStrAndIntoString(t *testing.T) {
	b := New(0)
	b.PrintStr("let x = ")
	b.PrintASCIIByte('1')
	b.PrintASCIIByte(';')
	if got, want := b.IntoString(), "let x = 1;"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintASCIIByteRejectsNonASCII(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-ASCII byte")
		}
	}()
	b := New(0)
	b.PrintASCIIByte(0xC3)
}

func TestLastByteAndPeek(t *testing.T) {
	b := New(0)
	if _, ok := b.LastByte(); ok {
		t.Fatal("expected no last byte on empty buffer")
	}
	b.PrintStr("abc")
	if c, ok := b.LastByte(); !ok || c != 'c' {
		t.Fatalf("LastByte() = %q, %v, want 'c', true", c, ok)
	}
	if c, ok := b.PeekNthByteBack(1); !ok || c != 'b' {
		t.Fatalf("PeekNthByteBack(1) = %q, %v, want 'b', true", c, ok)
	}
	if _, ok := b.PeekNthByteBack(10); ok {
		t.Fatal("expected PeekNthByteBack out of range to fail")
	}
}

func TestLastCharUTF8(t *testing.T) {
	b := New(0)
	b.PrintStr("café") // "café", é is 2 bytes
	r, ok := b.LastChar()
	if !ok || r != 'é' {
		t.Fatalf("LastChar() = %q, %v, want 'é', true", r, ok)
	}

	b2 := New(0)
	b2.PrintBytesUnchecked([]byte{0xE4, 0xBD}) // incomplete 3-byte sequence
	if _, ok := b2.LastChar(); ok {
		t.Fatal("expected LastChar to fail on truncated UTF-8 tail")
	}
}

func TestPrintIndent(t *testing.T) {
	b := New(0)
	b.PrintIndent('\t', 1, 3)
	if got, want := b.IntoString(), "\t\t\t"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	b2 := New(0)
	b2.PrintIndent(' ', 2, 2)
	if got, want := b2.IntoString(), "    "; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGrowthNeverShrinksDuringPrint(t *testing.T) {
	b := New(0)
	for i := 0; i < 1000; i++ {
		b.PrintASCIIByte('x')
	}
	if b.Len() != 1000 {
		t.Fatalf("Len() = %d, want 1000", b.Len())
	}
}
