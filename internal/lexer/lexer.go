// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

// Package lexer splits Stack source text into tokens. Tokenisation is a
// character state machine over four pieces of state: the nesting depth
// of () string literals, the nesting depth of [] list literals, whether
// the scanner is inside a #...# comment, and whether the previous
// character was an unescaped backslash. Delimiters are not required to
// balance; the evaluator rejects malformed literals later.
package lexer

import "strings"

// normalize maps newlines, tabs, carriage returns, and full-width space
// to plain spaces before scanning.
var normalize = strings.NewReplacer("\n", " ", "\t", " ", "\r", " ", "　", " ")

// Tokenize splits source code into an ordered token sequence.
func Tokenize(code string) []string {
	code = normalize.Replace(code)

	var tokens []string
	var buf strings.Builder
	brackets := 0 // () nesting
	parens := 0   // [] nesting
	hash := false // inside #...#
	escape := false

	for _, c := range code {
		switch {
		case c == '\\' && !escape:
			escape = true
		case c == '(' && !hash && !escape:
			brackets++
			buf.WriteRune('(')
		case c == ')' && !hash && !escape:
			brackets--
			buf.WriteRune(')')
		case c == '#' && !escape:
			hash = !hash
			buf.WriteRune('#')
		case c == '[' && !hash && brackets == 0 && !escape:
			parens++
			buf.WriteRune('[')
		case c == ']' && !hash && brackets == 0 && !escape:
			parens--
			buf.WriteRune(']')
		case c == ' ' && !hash && parens == 0 && brackets == 0 && !escape:
			if buf.Len() != 0 {
				tokens = append(tokens, buf.String())
				buf.Reset()
			}
		default:
			writeScanned(&buf, c, parens == 0 && brackets == 0 && !hash, escape)
			escape = false
		}
	}

	if buf.Len() != 0 {
		tokens = append(tokens, buf.String())
	}
	return tokens
}

// Unescape runs the scanner's escape pass over the inner text of a
// string literal. It is the same state machine as Tokenize without the
// space splitting, so nested literals survive one stripping layer.
func Unescape(text string) string {
	var buf strings.Builder
	brackets := 0
	parens := 0
	hash := false
	escape := false

	for _, c := range text {
		switch {
		case c == '\\' && !escape:
			escape = true
		case c == '(' && !hash && !escape:
			brackets++
			buf.WriteRune('(')
		case c == ')' && !hash && !escape:
			brackets--
			buf.WriteRune(')')
		case c == '#' && !escape:
			hash = !hash
			buf.WriteRune('#')
		case c == '[' && !hash && brackets == 0 && !escape:
			parens++
			buf.WriteRune('[')
		case c == ']' && !hash && brackets == 0 && !escape:
			parens--
			buf.WriteRune(']')
		default:
			writeScanned(&buf, c, parens == 0 && brackets == 0 && !hash, escape)
			escape = false
		}
	}
	return buf.String()
}

// writeScanned appends one scanned character. At top level a pending
// escape turns n, t, r into the literal two-character sequences \n, \t,
// \r (print de-escapes them later); inside a literal the backslash is
// kept verbatim.
func writeScanned(buf *strings.Builder, c rune, topLevel, escape bool) {
	if topLevel {
		if escape {
			switch c {
			case 'n':
				buf.WriteString(`\n`)
			case 't':
				buf.WriteString(`\t`)
			case 'r':
				buf.WriteString(`\r`)
			default:
				buf.WriteRune(c)
			}
			return
		}
		buf.WriteRune(c)
		return
	}
	if escape {
		buf.WriteRune('\\')
	}
	buf.WriteRune(c)
}
