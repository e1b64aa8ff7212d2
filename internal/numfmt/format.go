// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfmt

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	gethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
)

// FormatNonNegativeFloat implements spec §4.3.4's print_non_negative_float:
// small whole numbers print as plain decimal (and the caller should record
// a need-space-before-dot position right after, to protect `1 .toString`
// from merging into `1.toString`); everything else goes through the
// shortest-form search.
func FormatNonNegativeFloat(n float64) (text string, needSpaceBeforeDot bool) {
	if n < 1000 && n == math.Trunc(n) {
		return strconv.FormatFloat(n, 'f', -1, 64), true
	}
	s := ShortestMinified(n)
	return s, !strings.ContainsAny(s, ".ex")
}

// ShortestMinified returns the shortest textual form among the decimal
// Dragonbox form and its hex/scientific re-expressions (spec
// print_minified_number, steps 1-5). n must be non-negative and finite.
func ShortestMinified(n float64) string {
	best := dragonboxDecimalForm(n)

	if hex, ok := hexIntegerForm(n); ok && len(hex) < len(best) {
		best = hex
	}
	if sci, ok := leadingZeroScientificForm(best); ok && len(sci) < len(best) {
		best = sci
	}
	if sci, ok := trailingZeroScientificForm(best); ok && len(sci) < len(best) {
		best = sci
	}
	if sci, ok := renormalizedScientificForm(n); ok && len(sci) < len(best) {
		best = sci
	}
	return best
}

// dragonboxDecimalForm is step 1: the shortest round-trip fixed-point
// decimal text (Go's strconv shortest-float algorithm fills the role
// Dragonbox plays in the original), with a leading "0" stripped from a
// "0."-prefixed fraction and no superfluous "+" after any exponent (the
// 'f' format never emits one).
func dragonboxDecimalForm(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if strings.HasPrefix(s, "0.") {
		return s[1:]
	}
	return s
}

// hexIntegerForm is step 2: for non-negative integers, the lowercase hex
// spelling. holiman/uint256 is tried first since it covers every value a
// float64 can exactly represent up to 2^256 without a big.Int allocation;
// go-ethereum's common/math.HexOrDecimal256 (the same canonical "0x..."
// 256-bit hex encoding geth uses for genesis/chain-config JSON fields) is
// the fallback for the (practically unreachable, since float64 integers
// beyond 2^256 lose precision long before that point, but kept for
// exactness) remainder.
func hexIntegerForm(n float64) (string, bool) {
	if n != math.Trunc(n) || n < 0 || math.IsInf(n, 0) {
		return "", false
	}
	bi, _ := big.NewFloat(n).Int(nil)
	if u, overflow := uint256.FromBig(bi); !overflow {
		return "0x" + strings.TrimPrefix(u.Hex(), "0x"), true
	}
	return (*gethmath.HexOrDecimal256)(bi).String(), true
}

// leadingZeroScientificForm is step 3: ".000…0<digits>" -> "<digits>e-<k>",
// where k counts every fractional digit (zeros and <digits> together).
func leadingZeroScientificForm(dec string) (string, bool) {
	if !strings.HasPrefix(dec, ".") {
		return "", false
	}
	frac := dec[1:]
	i := 0
	for i < len(frac) && frac[i] == '0' {
		i++
	}
	if i == 0 || i >= len(frac) {
		return "", false
	}
	return frac[i:] + "e-" + strconv.Itoa(len(frac)), true
}

// trailingZeroScientificForm is step 4: an integer ending in k zeros ->
// "<base>e<k>".
func trailingZeroScientificForm(dec string) (string, bool) {
	if strings.ContainsAny(dec, ".x") {
		return "", false
	}
	trimmed := strings.TrimRight(dec, "0")
	k := len(dec) - len(trimmed)
	if k == 0 || trimmed == "" {
		return "", false
	}
	return trimmed + "e" + strconv.Itoa(k), true
}

// renormalizedScientificForm is step 5: collapse a fractional scientific
// mantissa "m.nnn" into digits "mnnn" and shift the exponent down by the
// number of fractional digits removed.
func renormalizedScientificForm(n float64) (string, bool) {
	sci := strconv.FormatFloat(n, 'e', -1, 64)
	mantissa, expPart, ok := strings.Cut(sci, "e")
	if !ok {
		return "", false
	}
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		return "", false
	}
	intPart, fracPart, hasFrac := strings.Cut(mantissa, ".")
	if !hasFrac {
		return intPart + "e" + strconv.Itoa(exp), true
	}
	return intPart + fracPart + "e" + strconv.Itoa(exp-len(fracPart)), true
}
