// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package httpd

import (
	"log/slog"

	"github.com/stack-community/stack-server/internal/value"
)

// Route is one entry of the dispatch table: the handler program and,
// for protected routes, the expression that produces the credentials
// database.
type Route struct {
	Handler  string // Stack code evaluated per request
	Auth     bool
	AuthExpr string // Stack code leaving a list of [user pass] pairs
}

// ParseRoutes extracts the route table from its Stack-literal form: a
// list of [matcher handler] entries whose matcher is [key] or
// [key auth expr]. Malformed entries are skipped. The special key
// "not-found" supplies the 404 handler.
func ParseRoutes(table value.Value) map[string]Route {
	routes := make(map[string]Route)
	for _, entry := range table.AsList() {
		pair := entry.AsList()
		if len(pair) < 2 {
			slog.Warn("skipping malformed route entry", "entry", entry.Display())
			continue
		}
		matcher := pair[0].AsList()
		if len(matcher) == 0 {
			slog.Warn("skipping route entry without a matcher", "entry", entry.Display())
			continue
		}

		route := Route{Handler: pair[1].AsString()}
		if len(matcher) >= 3 {
			route.Auth = matcher[1].AsString() == "auth"
			route.AuthExpr = matcher[2].AsString()
		}
		routes[matcher[0].AsString()] = route
	}
	return routes
}
