// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package interp

import (
	"os"
)

func (e *Executor) opEval() {
	e.Evaluate(e.Pop().AsString())
}

// opIf pops the condition, then the else branch, then the then branch,
// and evaluates exactly one branch as code.
func (e *Executor) opIf() {
	condition := e.Pop().AsBool()
	codeElse := e.Pop().AsString()
	codeIf := e.Pop().AsString()
	if condition {
		e.Evaluate(codeIf)
		return
	}
	e.Evaluate(codeElse)
}

// opWhile re-evaluates the condition program before each pass and stops
// when its popped result is falsy.
func (e *Executor) opWhile() {
	cond := e.Pop().AsString()
	body := e.Pop().AsString()
	for {
		e.Evaluate(cond)
		if !e.Pop().AsBool() {
			return
		}
		e.Evaluate(body)
	}
}

// opThread forks a deep clone of the executor and runs the code on it
// concurrently. The two executors share nothing afterwards; there is no
// join and no result channel.
func (e *Executor) opThread() {
	code := e.Pop().AsString()
	forked := e.Clone()
	go forked.Evaluate(code)
}

func (e *Executor) opExit() {
	status := e.Pop().AsNumber()
	os.Exit(int(status))
}
