// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package interp

import (
	"time"

	"github.com/stack-community/stack-server/internal/value"
)

func (e *Executor) opPop() {
	e.Pop()
}

func (e *Executor) opSizeStack() {
	e.Push(value.Number(float64(len(e.stack))))
}

// opVar binds the value under the popped name; in debug mode the whole
// variable memory is dumped afterwards.
func (e *Executor) opVar() {
	name := e.Pop().AsString()
	data := e.Pop()
	e.memory[name] = data
	e.showVariables()
}

func (e *Executor) opType() {
	e.Push(value.String(e.Pop().TypeName()))
}

// opCast converts through the coercion matrix; an unknown tag returns
// the value unchanged.
func (e *Executor) opCast() {
	tag := e.Pop().AsString()
	v := e.Pop()
	switch tag {
	case "number":
		e.Push(value.Number(v.AsNumber()))
	case "string":
		e.Push(value.String(v.AsString()))
	case "bool":
		e.Push(value.Bool(v.AsBool()))
	case "list":
		e.Push(value.List(v.AsList()))
	case "json":
		e.Push(value.JSON(v.AsJSON()))
	case "error":
		e.Push(value.Error(v.AsString()))
	default:
		e.Push(v)
	}
}

func (e *Executor) opMem() {
	items := make([]value.Value, 0, len(e.memory))
	for name := range e.memory {
		items = append(items, value.String(name))
	}
	e.Push(value.List(items))
}

func (e *Executor) opFree() {
	name := e.Pop().AsString()
	delete(e.memory, name)
	e.showVariables()
}

func (e *Executor) opCopy() {
	v := e.Pop()
	e.Push(v.Clone())
	e.Push(v)
}

func (e *Executor) opSwap() {
	b := e.Pop()
	a := e.Pop()
	e.Push(b)
	e.Push(a)
}

func (e *Executor) opNowTime() {
	e.Push(value.Number(float64(time.Now().UnixNano()) / float64(time.Second)))
}

func (e *Executor) opSleep() {
	seconds := e.Pop().AsNumber()
	time.Sleep(time.Duration(seconds * float64(time.Second)))
}
