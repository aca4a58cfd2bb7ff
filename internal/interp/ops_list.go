// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package interp

import (
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/stack-community/stack-server/internal/value"
)

// asIndex truncates a number to a non-negative index. Negative values
// clamp to zero, matching the source language's saturating cast.
func asIndex(n float64) int {
	if n < 0 {
		return 0
	}
	return int(n)
}

func (e *Executor) opGet() {
	idx := asIndex(e.Pop().AsNumber())
	list := e.Pop().AsList()
	if idx >= len(list) {
		e.logPrint("Error! Index specification is out of range\n")
		e.Push(value.Error("index-out-range"))
		return
	}
	e.Push(list[idx].Clone())
}

func (e *Executor) opSet() {
	v := e.Pop()
	idx := asIndex(e.Pop().AsNumber())
	list := e.Pop().AsList()
	if idx >= len(list) {
		e.logPrint("Error! Index specification is out of range\n")
		e.Push(value.Error("index-out-range"))
		return
	}
	list = slices.Clone(list)
	list[idx] = v
	e.Push(value.List(list))
}

func (e *Executor) opDel() {
	idx := asIndex(e.Pop().AsNumber())
	list := e.Pop().AsList()
	if idx >= len(list) {
		e.logPrint("Error! Index specification is out of range\n")
		e.Push(value.Error("index-out-range"))
		return
	}
	e.Push(value.List(slices.Delete(slices.Clone(list), idx, idx+1)))
}

func (e *Executor) opAppend() {
	v := e.Pop()
	list := e.Pop().AsList()
	e.Push(value.List(append(slices.Clone(list), v)))
}

// opInsert clamps the position into [0, len] rather than failing past
// the end.
func (e *Executor) opInsert() {
	v := e.Pop()
	idx := asIndex(e.Pop().AsNumber())
	list := e.Pop().AsList()
	if idx > len(list) {
		idx = len(list)
	}
	e.Push(value.List(slices.Insert(slices.Clone(list), idx, v)))
}

// opIndex finds the first element whose string form equals the target.
func (e *Executor) opIndex() {
	target := e.Pop().AsString()
	list := e.Pop().AsList()
	for i, item := range list {
		if item.AsString() == target {
			e.Push(value.Number(float64(i)))
			return
		}
	}
	e.logPrint("Error! item not found in the list\n")
	e.Push(value.Error("item-not-found"))
}

// opSort orders lexicographically over string coercions; the result is
// a list of strings regardless of the input element kinds.
func (e *Executor) opSort() {
	list := e.Pop().AsList()
	keys := make([]string, 0, len(list))
	for _, item := range list {
		keys = append(keys, item.AsString())
	}
	sort.Strings(keys)
	items := make([]value.Value, 0, len(keys))
	for _, k := range keys {
		items = append(items, value.String(k))
	}
	e.Push(value.List(items))
}

func (e *Executor) opReverse() {
	list := slices.Clone(e.Pop().AsList())
	slices.Reverse(list)
	e.Push(value.List(list))
}

// opFor binds the loop variable in memory for each element and runs the
// body. The variable persists after the loop.
func (e *Executor) opFor() {
	code := e.Pop().AsString()
	name := e.Pop().AsString()
	list := e.Pop().AsList()
	for _, item := range list {
		e.memory[name] = item.Clone()
		e.Evaluate(code)
	}
}

// opRange generates [min, max) stepping by the given positive amount.
// A non-positive integral step yields an empty list.
func (e *Executor) opRange() {
	step := asIndex(e.Pop().AsNumber())
	max := asIndex(e.Pop().AsNumber())
	min := asIndex(e.Pop().AsNumber())

	var items []value.Value
	if step > 0 {
		for i := min; i < max; i += step {
			items = append(items, value.Number(float64(i)))
		}
	}
	e.Push(value.List(items))
}

func (e *Executor) opLen() {
	e.Push(value.Number(float64(len(e.Pop().AsList()))))
}

// opRand picks a uniform random element; the empty list comes back
// unchanged.
func (e *Executor) opRand() {
	list := e.Pop().AsList()
	if len(list) == 0 {
		e.Push(value.List(list))
		return
	}
	e.Push(list[rand.IntN(len(list))].Clone())
}

func (e *Executor) opShuffle() {
	list := slices.Clone(e.Pop().AsList())
	rand.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})
	e.Push(value.List(list))
}
