// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stack-community/stack-server/internal/lexer"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []string
	}{
		{"simple words", "2 3 add", []string{"2", "3", "add"}},
		{"collapses runs of spaces", "a   b", []string{"a", "b"}},
		{"newlines and tabs separate", "a\nb\tc\rd", []string{"a", "b", "c", "d"}},
		{"full-width space separates", "a　b", []string{"a", "b"}},
		{"string literal keeps spaces", "(hello world) print", []string{"(hello world)", "print"}},
		{"nested string literal", "((a) (b)) x", []string{"((a) (b))", "x"}},
		{"list literal keeps spaces", "[1 2 3] len", []string{"[1 2 3]", "len"}},
		{"nested list literal", "[[1 2] [3 4]]", []string{"[[1 2] [3 4]]"}},
		{"string inside list", "[(a b) (c d)]", []string{"[(a b) (c d)]"}},
		{"brackets inside string stay verbatim", "([1 2])", []string{"([1 2])"}},
		{"comment spans spaces", "#a b c# d", []string{"#a b c#", "d"}},
		{"escaped space joins token", `a\ b`, []string{"a b"}},
		{"escaped newline becomes two chars", `a\nb`, []string{`a\nb`}},
		{"escaped tab becomes two chars", `\t`, []string{`\t`}},
		{"escaped paren does not nest", `\( x`, []string{"(", "x"}},
		{"backslash inside string kept", `(a\nb)`, []string{`(a\nb)`}},
		{"trailing buffer flushes", "a b", []string{"a", "b"}},
		{"empty input", "", nil},
		{"only spaces", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexer.Tokenize(tt.code))
		})
	}
}

// Re-lexing the space-joined output of a balanced program must yield
// the same token list.
func TestTokenize_Stable(t *testing.T) {
	programs := []string{
		"2 3 add print",
		"(hello world) (h) (H) replace",
		"[10 20 30] (x) [x x mul] map",
		"[[(GET /) (html)] [(hello) print]]",
		"#comment# 1 2 [a (b c) [d]] swap",
		`(line\none) println`,
	}

	for _, code := range programs {
		t.Run(code, func(t *testing.T) {
			first := lexer.Tokenize(code)
			second := lexer.Tokenize(strings.Join(first, " "))
			assert.Equal(t, first, second)
		})
	}
}

func TestTokenize_UnbalancedIsNotRejected(t *testing.T) {
	// Depth may go negative or end non-zero; the lexer still produces
	// tokens and leaves rejection to literal recognition.
	assert.Equal(t, []string{"(a"}, lexer.Tokenize("(a"))
	assert.Equal(t, []string{"[a b"}, lexer.Tokenize("[a b"))
	// A negative depth swallows the following separator into the token.
	assert.Equal(t, []string{") x"}, lexer.Tokenize(") x"))
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello", "hello"},
		{"keeps inner literal layer", "(a b)", "(a b)"},
		{"escaped n at top level", `a\nb`, `a\nb`},
		{"escaped delimiter", `\(`, "("},
		{"backslash below nesting kept", `(x\ny)`, `(x\ny)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexer.Unescape(tt.in))
		})
	}
}
