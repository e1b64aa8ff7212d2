// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numfmt formats numeric and BigInt literals for output: the
// shortest round-trip decimal form (Dragonbox-style) plus the
// hex/scientific minified candidates, and BigInt literal re-rendering.
//
// BigValue is adapted from geas's internal/lzint.Value, which tracks a
// big.Int alongside its leading-zero-nibble count so that hex-literal
// values round-trip byte-for-byte through macro evaluation. A JS BigInt
// literal has the same property: `0x0100n` must not collapse to `0x100n`.
// Unlike lzint, BigValue additionally carries a github.com/holiman/uint256
// fast path, since the overwhelming majority of BigInt literals that show
// up in real source (hashes, bitmasks, token IDs) fit in 256 bits.
package numfmt

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// BigValue is a parsed BigInt literal: the numeric value plus enough
// information to reproduce the original hex/decimal spelling.
type BigValue struct {
	big     big.Int
	fast    *uint256.Int // non-nil when the (non-negative) value fits in 256 bits
	negative bool
	wasHex  bool
	lznib   int // leading zero nibbles in the original hex spelling
}

// ParseBigIntLiteral parses the digits of a BigInt literal (no trailing
// "n" suffix). Accepts decimal, and 0x/0X, 0o/0O, 0b/0B radix prefixes.
func ParseBigIntLiteral(raw string) (*BigValue, error) {
	v := &BigValue{}
	text := raw
	if strings.HasPrefix(text, "-") {
		v.negative = true
		text = text[1:]
	}

	base := 10
	digits := text
	switch {
	case hasRadixPrefix(text, "0x"), hasRadixPrefix(text, "0X"):
		base, digits, v.wasHex = 16, text[2:], true
	case hasRadixPrefix(text, "0o"), hasRadixPrefix(text, "0O"):
		base, digits = 8, text[2:]
	case hasRadixPrefix(text, "0b"), hasRadixPrefix(text, "0B"):
		base, digits = 2, text[2:]
	}
	if v.wasHex {
		for _, c := range digits {
			if c != '0' {
				break
			}
			v.lznib++
		}
	}
	if _, ok := v.big.SetString(digits, base); !ok {
		return nil, &ParseError{Text: raw}
	}
	if v.negative {
		v.big.Neg(&v.big)
	}
	if !v.negative && v.big.BitLen() <= 256 {
		if u, overflow := uint256.FromBig(&v.big); !overflow {
			v.fast = u
		}
	}
	return v, nil
}

// ParseError reports an invalid BigInt literal text.
type ParseError struct{ Text string }

func (e *ParseError) Error() string { return "invalid bigint literal: " + e.Text }

// Int returns the value as a big.Int. Leading zero bytes are not
// represented (they only affect textual spelling).
func (v *BigValue) Int() *big.Int {
	return &v.big
}

// String reproduces the canonical spelling: hex literals stay hex (with
// their original leading zero nibbles and a lowercase 0x prefix), other
// bases reprint as decimal, since that's the only spelling ECMAScript's
// BigInt grammar assigns inherent meaning to beyond hex.
func (v *BigValue) String() string {
	var b strings.Builder
	if v.big.Sign() < 0 && !v.wasHex {
		b.WriteByte('-')
	}
	if v.wasHex {
		b.WriteString("0x")
		for i := 0; i < v.lznib; i++ {
			b.WriteByte('0')
		}
		if v.fast != nil {
			if hx := v.fast.Hex(); hx != "0x0" || v.lznib == 0 {
				b.WriteString(strings.TrimPrefix(hx, "0x"))
			}
		} else if v.big.Sign() != 0 {
			b.WriteString(v.big.Text(16))
		}
	} else {
		b.WriteString(v.big.Text(10))
	}
	return b.String()
}

func hasRadixPrefix(s, prefix string) bool {
	return len(s) > len(prefix) && strings.HasPrefix(s, prefix)
}
