// Copyright 2026 The esgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comments

const (
	lineSeparator      rune = ' '
	paragraphSeparator rune = ' '
)

// splitLines splits block-comment text on any ECMAScript line terminator
// (CR, LF, CRLF, U+2028 LINE SEPARATOR, U+2029 PARAGRAPH SEPARATOR),
// without producing a spurious empty line between a CR and a following LF
// (spec §4.2, emission rule 5).
// SplitCommentLines is the exported form of splitLines, used by the
// emitter when it re-indents a multi-line block comment.
func SplitCommentLines(text string) []string {
	return splitLines(text)
}

func splitLines(text string) []string {
	var lines []string
	start := 0
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		switch runes[i] {
		case '\r':
			lines = append(lines, string(runes[start:i]))
			i++
			if i < len(runes) && runes[i] == '\n' {
				i++
			}
			start = i
		case '\n', lineSeparator, paragraphSeparator:
			lines = append(lines, string(runes[start:i]))
			i++
			start = i
		default:
			i++
		}
	}
	lines = append(lines, string(runes[start:]))
	return lines
}
