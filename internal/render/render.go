// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

// Package render backs the template operator with the pongo2 engine
// (Django/Jinja template syntax).
package render

import (
	"github.com/flosch/pongo2/v6"
	"github.com/samber/oops"
)

// Render parses source as a template and executes it with the given
// variables. Both parse and execution failures are reported; the
// operator turns them into Error(template).
func Render(source string, vars map[string]string) (string, error) {
	tpl, err := pongo2.FromString(source)
	if err != nil {
		return "", oops.Code("template").Wrapf(err, "parsing template")
	}

	ctx := make(pongo2.Context, len(vars))
	for name, v := range vars {
		ctx[name] = v
	}

	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", oops.Code("template").Wrapf(err, "rendering template")
	}
	return out, nil
}
