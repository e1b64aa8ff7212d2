// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfmt

import (
	"strconv"
	"strings"
	"testing"
)

// parseFloatLike mimics enough of JS's Number()/parseFloat to check the
// round-trip invariant against the forms FormatNonNegativeFloat can
// produce, including the hex-integer candidate (which strconv.ParseFloat
// doesn't understand on its own).
func parseFloatLike(s string) (float64, error) {
	if strings.HasPrefix(s, "0x") {
		i, err := strconv.ParseUint(s[2:], 16, 64)
		return float64(i), err
	}
	return strconv.ParseFloat(s, 64)
}

func TestFormatNonNegativeFloatSmallInteger(t *testing.T) {
	text, needSpace := FormatNonNegativeFloat(1)
	if text != "1" || !needSpace {
		t.Fatalf("got %q, %v, want %q, true", text, needSpace, "1")
	}
}

func TestShortestMinifiedSmallFraction(t *testing.T) {
	// spec §8.3 scenario 2: var a=0.0001; (minify=true) -> var a=1e-4;
	if got, want := ShortestMinified(0.0001), "1e-4"; got != want {
		t.Fatalf("ShortestMinified(0.0001) = %q, want %q", got, want)
	}
}

func TestShortestMinifiedTrailingZeros(t *testing.T) {
	if got, want := ShortestMinified(100000), "1e5"; got != want {
		t.Fatalf("ShortestMinified(100000) = %q, want %q", got, want)
	}
}

func TestShortestMinifiedNeverLongerThanDecimal(t *testing.T) {
	// 4096 has a hex candidate "0x1000" (6) that loses to "4096" (4);
	// assert the chosen form is never longer than the decimal baseline
	// (spec invariant 8.1.7).
	dec := dragonboxDecimalForm(4096)
	got := ShortestMinified(4096)
	if len(got) > len(dec) {
		t.Fatalf("ShortestMinified(4096) = %q is longer than decimal form %q", got, dec)
	}
}

func TestBigIntHexLiteralRoundTrip(t *testing.T) {
	// spec §8.3 scenario 3: 0x8000000000000000n keeps its exact spelling,
	// never collapses or gets scientific-converted.
	v, err := ParseBigIntLiteral("0x8000000000000000")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v.String(), "0x8000000000000000"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBigIntLeadingZeroPreserved(t *testing.T) {
	v, err := ParseBigIntLiteral("0x007f")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v.String(), "0x007f"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBigIntDecimal(t *testing.T) {
	v, err := ParseBigIntLiteral("123456789012345678901234567890")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v.String(), "123456789012345678901234567890"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNumberRoundTripInvariant(t *testing.T) {
	// spec §8.1.6: parseFloat(print_non_negative_float(|x|)) == |x| exactly.
	for _, x := range []float64{0, 1, 1.5, 3.14159265358979, 1e21, 1e-7, 123456789.123} {
		text, _ := FormatNonNegativeFloat(x)
		got, err := parseFloatLike(text)
		if err != nil {
			t.Fatalf("FormatNonNegativeFloat(%v) = %q: %v", x, text, err)
		}
		if got != x {
			t.Fatalf("round-trip failed: %v -> %q -> %v", x, text, got)
		}
	}
}
