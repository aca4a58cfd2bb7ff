// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package interp

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/stack-community/stack-server/internal/value"
)

func (e *Executor) opRepeat() {
	count := e.Pop().AsNumber()
	text := e.Pop().AsString()
	n := int(count)
	if n < 0 {
		n = 0
	}
	e.Push(value.String(strings.Repeat(text, n)))
}

// opDecode turns a code point into a one-character string.
func (e *Executor) opDecode() {
	code := e.Pop().AsNumber()
	n := int64(code)
	if n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
		e.logPrint("Error! failed of number decoding\n")
		e.Push(value.Error("number-decoding"))
		return
	}
	e.Push(value.String(string(rune(n))))
}

// opEncode pushes the code point of the string's first character.
func (e *Executor) opEncode() {
	s := e.Pop().AsString()
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		e.logPrint("Error! failed of string encoding\n")
		e.Push(value.Error("string-encoding"))
		return
	}
	e.Push(value.Number(float64(r)))
}

func (e *Executor) opConcat() {
	b := e.Pop().AsString()
	a := e.Pop().AsString()
	e.Push(value.String(a + b))
}

func (e *Executor) opReplace() {
	after := e.Pop().AsString()
	before := e.Pop().AsString()
	text := e.Pop().AsString()
	e.Push(value.String(strings.ReplaceAll(text, before, after)))
}

func (e *Executor) opSplit() {
	key := e.Pop().AsString()
	text := e.Pop().AsString()
	parts := strings.Split(text, key)
	items := make([]value.Value, 0, len(parts))
	for _, p := range parts {
		items = append(items, value.String(p))
	}
	e.Push(value.List(items))
}

// opCase folds to lower or upper; any other mode leaves the text as is.
func (e *Executor) opCase() {
	mode := e.Pop().AsString()
	text := e.Pop().AsString()
	switch mode {
	case "lower":
		text = strings.ToLower(text)
	case "upper":
		text = strings.ToUpper(text)
	}
	e.Push(value.String(text))
}

func (e *Executor) opJoin() {
	key := e.Pop().AsString()
	list := e.Pop().AsList()
	parts := make([]string, 0, len(list))
	for _, item := range list {
		parts = append(parts, item.AsString())
	}
	e.Push(value.String(strings.Join(parts, key)))
}

func (e *Executor) opFind() {
	word := e.Pop().AsString()
	text := e.Pop().AsString()
	e.Push(value.Bool(strings.Contains(text, word)))
}

// opRegex pushes every whole-pattern match as a list of strings.
func (e *Executor) opRegex() {
	pattern := e.Pop().AsString()
	text := e.Pop().AsString()

	re, err := regexp.Compile(pattern)
	if err != nil {
		e.logPrint(fmt.Sprintf("Error! %v\n", err))
		e.Push(value.Error("regex"))
		return
	}

	matches := re.FindAllString(text, -1)
	items := make([]value.Value, 0, len(matches))
	for _, m := range matches {
		items = append(items, value.String(m))
	}
	e.Push(value.List(items))
}
