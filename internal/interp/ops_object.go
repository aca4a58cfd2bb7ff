// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package interp

import (
	"github.com/stack-community/stack-server/internal/value"
)

// opInstance builds an object from a class list and positional data.
// The class head names the object; each tail entry is either [field]
// (bind the next positional value) or [field default]. A malformed
// entry pushes its error and scanning continues, so the object is still
// produced.
func (e *Executor) opInstance() {
	data := e.Pop().AsList()
	class := e.Pop().AsList()

	if len(class) == 0 {
		e.logPrint("Error! the type name is not found.")
		e.Push(value.Error("instance-name"))
		return
	}
	name := class[0].AsString()
	fields := make(map[string]value.Value)

	next := 0
	for _, item := range class[1:] {
		entry := item.AsList()
		switch {
		case len(entry) == 1:
			if next >= len(data) {
				e.logPrint("Error! initial data is shortage\n")
				e.Push(value.Error("instance-shortage"))
				return
			}
			fields[entry[0].AsString()] = data[next].Clone()
			next++
		case len(entry) >= 2:
			fields[entry[0].AsString()] = entry[1].Clone()
		default:
			e.logPrint("Error! the class data structure is wrong.")
			e.Push(value.Error("instance-default"))
		}
	}

	e.Push(value.Object(name, fields))
}

func (e *Executor) opProperty() {
	name := e.Pop().AsString()
	obj := e.Pop()
	if obj.Kind != value.KindObject {
		e.Push(value.Error("not-object"))
		return
	}
	field, ok := obj.Fields[name]
	if !ok {
		e.Push(value.Error("property"))
		return
	}
	e.Push(field.Clone())
}

// opMethod binds self to a clone of the receiver and evaluates the
// named field as code. A missing field evaluates the empty program.
func (e *Executor) opMethod() {
	name := e.Pop().AsString()
	obj := e.Pop()
	if obj.Kind != value.KindObject {
		e.Push(value.Error("not-object"))
		return
	}
	e.memory["self"] = obj.Clone()

	program := ""
	if field, ok := obj.Fields[name]; ok {
		program = field.AsString()
	}
	e.Evaluate(program)
}

func (e *Executor) opModify() {
	data := e.Pop()
	prop := e.Pop().AsString()
	obj := e.Pop()
	if obj.Kind != value.KindObject {
		e.Push(value.Error("not-object"))
		return
	}
	fields := make(map[string]value.Value, len(obj.Fields)+1)
	for name, f := range obj.Fields {
		fields[name] = f
	}
	fields[prop] = data
	e.Push(value.Object(obj.Class, fields))
}

func (e *Executor) opAll() {
	obj := e.Pop()
	if obj.Kind != value.KindObject {
		e.Push(value.Error("not-object"))
		return
	}
	items := make([]value.Value, 0, len(obj.Fields))
	for name := range obj.Fields {
		items = append(items, value.String(name))
	}
	e.Push(value.List(items))
}
