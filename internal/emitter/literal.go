// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emitter

import (
	"fmt"
	"math"
	"strings"

	"github.com/esgen/esgen/ast"
	"github.com/esgen/esgen/internal/numfmt"
	"github.com/esgen/esgen/internal/precedence"
)

// emitNumericLiteral prints a number literal. Inside a TypeScript type
// position (TSLiteralType) the original source text is reprinted
// verbatim, since `1_000` and `0b101` carry meaning TypeScript's checker
// cares about that a round-tripped double would lose (spec §4.3.7). In
// every other position the value is reformatted through
// FormatNonNegativeFloat rather than echoed from source, so `0x10`,
// `1_000` and `1e1` all normalize to the same printed form whether or
// not minification is on (spec §4.3.4).
//
// NaN and the infinities have no numeric-literal spelling: NaN prints as
// `NaN`, the infinities as `Infinity`/`-Infinity`, or `1/0`/`-1/0` when
// minifying. Any other negative value prints
// as a unary minus applied to its magnitude, parenthesized when the
// surrounding precedence would otherwise bind the minus to something
// else (exprPrecedence reports Prefix for a negative NumericLiteral so
// the generic wrap in emitExpression handles that case).
func (s *State) emitNumericLiteral(n *ast.NumericLiteral, ctx precedence.Context) {
	if ctx.Has(precedence.TypeScript) && n.Raw != "" {
		s.str(n.Raw)
		return
	}
	switch {
	case math.IsNaN(n.Value):
		s.str("NaN")
		s.needSpaceBeforeDot = false
		return
	case math.IsInf(n.Value, 1):
		if s.opts.Minify {
			s.str("1/0")
		} else {
			s.str("Infinity")
		}
		s.needSpaceBeforeDot = false
		return
	case math.IsInf(n.Value, -1):
		if s.opts.Minify {
			s.str("-1/0")
		} else {
			s.str("-Infinity")
		}
		s.needSpaceBeforeDot = false
		return
	case math.Signbit(n.Value):
		s.ch('-')
		text, needSpace := numfmt.FormatNonNegativeFloat(-n.Value)
		s.str(text)
		s.needSpaceBeforeDot = needSpace
		return
	}
	text, needSpace := numfmt.FormatNonNegativeFloat(n.Value)
	s.str(text)
	s.needSpaceBeforeDot = needSpace
}

func (s *State) emitBigIntLiteral(n *ast.BigIntLiteral) {
	v, err := numfmt.ParseBigIntLiteral(n.Raw)
	if err != nil {
		s.str(n.Raw)
	} else {
		s.str(v.String())
	}
	s.ch('n')
}

// emitStringLiteral prints a string literal using the configured quote
// character, escaping control characters, the chosen quote, backslashes,
// and any `</script` occurrence so the generated text stays safe to
// embed in an inline <script> element (spec §4.3.4, string escaping).
func (s *State) emitStringLiteral(value string) {
	quote := byte(s.opts.quote())
	s.ch(quote)
	s.str(escapeStringBody(value, quote))
	s.ch(quote)
}

// emitStringLiteralRaw is an alias kept for the directive-prologue call
// site, which always wants the same escaping rules as an ordinary string
// literal.
func (s *State) emitStringLiteralRaw(value string) {
	s.emitStringLiteral(value)
}

func escapeStringBody(value string, quote byte) string {
	var b strings.Builder
	for _, r := range value {
		switch r {
		case rune(quote):
			b.WriteByte('\\')
			b.WriteByte(quote)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return escapeScriptClose(b.String())
}

// escapeScriptClose rewrites every case-insensitive "</script" occurrence
// in text into "<\/script", so generated string/template/regex content
// can never prematurely close a surrounding inline <script> tag.
func escapeScriptClose(text string) string {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "</script") {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if i+8 <= len(text) && lower[i:i+8] == "</script" {
			b.WriteByte('<')
			b.WriteByte('\\')
			b.WriteByte('/')
			i += 1 // skip the '/' we just consumed; the for loop's i++ advances past it
			continue
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

func (s *State) emitRegExpLiteral(n *ast.RegExpLiteral) {
	s.ch('/')
	s.str(escapeScriptClose(n.Pattern))
	s.ch('/')
	s.str(n.Flags)
}

func (s *State) emitTemplateLiteral(n *ast.TemplateLiteral) {
	s.ch('`')
	for i, q := range n.Quasis {
		s.str(escapeScriptClose(q.Raw))
		if !q.Tail && i < len(n.Expressions) {
			s.str("${")
			s.emitExpression(n.Expressions[i], precedence.Lowest, 0)
			s.ch('}')
		}
	}
	s.ch('`')
}
