// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package interp

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/stack-community/stack-server/internal/database"
	"github.com/stack-community/stack-server/internal/render"
	"github.com/stack-community/stack-server/internal/sysinfo"
	"github.com/stack-community/stack-server/internal/value"
	"github.com/stack-community/stack-server/pkg/errutil"
)

func (e *Executor) opSysInfo() {
	key := e.Pop().AsString()
	e.Push(sysinfo.Probe(key))
}

// jsonKey escapes a flat key for use as a gjson/sjson path, so dots and
// wildcards in keys address a single member instead of traversing.
func jsonKey(key string) string {
	r := strings.NewReplacer(`\`, `\\`, `.`, `\.`, `*`, `\*`, `?`, `\?`, `|`, `\|`, `#`, `\#`, `@`, `\@`)
	return r.Replace(key)
}

func (e *Executor) opGetJSON() {
	key := e.Pop().AsString()
	raw := e.Pop().AsJSON()
	node := gjson.Get(raw, jsonKey(key))
	if !node.Exists() {
		e.Push(value.JSON("null"))
		return
	}
	e.Push(value.JSON(node.Raw))
}

func (e *Executor) opSetJSON() {
	val := e.Pop().AsJSON()
	key := e.Pop().AsString()
	raw := e.Pop().AsJSON()
	out, err := sjson.SetRaw(raw, jsonKey(key), val)
	if err != nil {
		e.logPrint(fmt.Sprintf("Error! %v\n", err))
		e.Push(value.JSON(raw))
		return
	}
	e.Push(value.JSON(out))
}

func (e *Executor) opSQL() {
	path := e.Pop().AsString()
	query := e.Pop().AsString()
	e.Push(database.Query(query, path))
}

// opTemplate renders the source through the template engine with the
// object's string-coerced fields as variables. Render failure surfaces
// as a first-class error value.
func (e *Executor) opTemplate() {
	obj := e.Pop()
	if obj.Kind != value.KindObject {
		e.Push(value.Error("not-object"))
		return
	}
	source := e.Pop().AsString()

	context := make(map[string]string, len(obj.Fields))
	for name, f := range obj.Fields {
		context[name] = f.AsString()
	}

	rendered, err := render.Render(source, context)
	if err != nil {
		errutil.LogError(slog.Default(), "template rendering failed", err)
		e.logPrint(fmt.Sprintf("Error! %v\n", err))
		e.Push(value.Error("template"))
		return
	}
	e.Push(value.String(rendered))
}
