// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package interp

import (
	"github.com/stack-community/stack-server/internal/value"
)

// opMap evaluates the code for each element with the loop variable
// bound in memory, collecting each pass's stack top.
func (e *Executor) opMap() {
	code := e.Pop().AsString()
	name := e.Pop().AsString()
	list := e.Pop().AsList()

	items := make([]value.Value, 0, len(list))
	for _, item := range list {
		e.memory[name] = item.Clone()
		e.Evaluate(code)
		items = append(items, e.Pop())
	}
	e.Push(value.List(items))
}

// opFilter keeps the elements for which the code leaves a truthy top.
func (e *Executor) opFilter() {
	code := e.Pop().AsString()
	name := e.Pop().AsString()
	list := e.Pop().AsList()

	var items []value.Value
	for _, item := range list {
		e.memory[name] = item.Clone()
		e.Evaluate(code)
		if e.Pop().AsBool() {
			items = append(items, item.Clone())
		}
	}
	e.Push(value.List(items))
}

// opReduce folds the list through the code with two memory bindings:
// the accumulator slot starts as the empty string, takes each pass's
// stack top, is pushed at the end, and is then reset to empty string.
func (e *Executor) opReduce() {
	code := e.Pop().AsString()
	name := e.Pop().AsString()
	acc := e.Pop().AsString()
	list := e.Pop().AsList()

	e.memory[acc] = value.String("")
	for _, item := range list {
		e.memory[name] = item.Clone()
		e.Evaluate(code)
		e.memory[acc] = e.Pop()
	}

	result, ok := e.memory[acc]
	if !ok {
		result = value.String("")
	}
	e.Push(result)
	e.memory[acc] = value.String("")
}
