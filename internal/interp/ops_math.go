// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package interp

import (
	"math"

	"github.com/stack-community/stack-server/internal/value"
)

func (e *Executor) opAdd() {
	b := e.Pop().AsNumber()
	a := e.Pop().AsNumber()
	e.Push(value.Number(a + b))
}

func (e *Executor) opSub() {
	b := e.Pop().AsNumber()
	a := e.Pop().AsNumber()
	e.Push(value.Number(a - b))
}

func (e *Executor) opMul() {
	b := e.Pop().AsNumber()
	a := e.Pop().AsNumber()
	e.Push(value.Number(a * b))
}

func (e *Executor) opDiv() {
	b := e.Pop().AsNumber()
	a := e.Pop().AsNumber()
	e.Push(value.Number(a / b))
}

// opMod follows float remainder sign rules: the result takes the sign
// of the dividend.
func (e *Executor) opMod() {
	b := e.Pop().AsNumber()
	a := e.Pop().AsNumber()
	e.Push(value.Number(math.Mod(a, b)))
}

func (e *Executor) opPow() {
	b := e.Pop().AsNumber()
	a := e.Pop().AsNumber()
	e.Push(value.Number(math.Pow(a, b)))
}

func (e *Executor) opRound() {
	e.Push(value.Number(math.Round(e.Pop().AsNumber())))
}

func (e *Executor) opSin() {
	e.Push(value.Number(math.Sin(e.Pop().AsNumber())))
}

func (e *Executor) opCos() {
	e.Push(value.Number(math.Cos(e.Pop().AsNumber())))
}

func (e *Executor) opTan() {
	e.Push(value.Number(math.Tan(e.Pop().AsNumber())))
}

func (e *Executor) opAnd() {
	b := e.Pop().AsBool()
	a := e.Pop().AsBool()
	e.Push(value.Bool(a && b))
}

func (e *Executor) opOr() {
	b := e.Pop().AsBool()
	a := e.Pop().AsBool()
	e.Push(value.Bool(a || b))
}

func (e *Executor) opNot() {
	e.Push(value.Bool(!e.Pop().AsBool()))
}

// opEqual compares both operands as text.
func (e *Executor) opEqual() {
	b := e.Pop().AsString()
	a := e.Pop().AsString()
	e.Push(value.Bool(a == b))
}

func (e *Executor) opLess() {
	b := e.Pop().AsNumber()
	a := e.Pop().AsNumber()
	e.Push(value.Bool(a < b))
}
