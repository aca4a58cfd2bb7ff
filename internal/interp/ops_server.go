// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package interp

import (
	"context"
	"log/slog"

	"github.com/stack-community/stack-server/internal/httpd"
	"github.com/stack-community/stack-server/internal/value"
	"github.com/stack-community/stack-server/pkg/errutil"
)

// opStartServer consumes the routing table and the listen address and
// runs the HTTP dispatcher against this executor. The accept loop
// blocks the evaluator indefinitely; handlers run on the same stack the
// surrounding program uses, which is why requests are served one at a
// time.
func (e *Executor) opStartServer() {
	table := e.Pop()
	address := e.Pop().AsString()

	routes := httpd.ParseRoutes(table)
	server := httpd.NewServer(address, routes, e, e.out)

	if err := server.Run(context.Background()); err != nil {
		errutil.LogError(slog.Default(), "server failed", err)
		e.Push(value.Error("start-server"))
	}
}
