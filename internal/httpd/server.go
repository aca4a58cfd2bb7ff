// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

// Package httpd maps (method, path) pairs to Stack programs and runs
// them against the evaluator. Requests are served one at a time on the
// accept loop: every handler mutates the same executor stack the
// surrounding program uses, so overlapping requests would race.
package httpd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/stack-community/stack-server/internal/value"
)

// readLimit caps the single request read.
const readLimit = 8192

// Evaluator is the slice of the stack machine the dispatcher drives:
// re-entering the program text and exchanging values over the shared
// data stack.
type Evaluator interface {
	Evaluate(code string)
	Push(v value.Value)
	Pop() value.Value
}

// Server is the HTTP dispatcher.
type Server struct {
	addr   string
	routes map[string]Route
	exec   Evaluator
	out    io.Writer

	mu       sync.RWMutex
	listener net.Listener
}

// NewServer creates a dispatcher for the given routes. Program-visible
// output (the startup line) goes to out.
func NewServer(addr string, routes map[string]Route, exec Evaluator, out io.Writer) *Server {
	return &Server{addr: addr, routes: routes, exec: exec, out: out}
}

// Addr returns the bound listen address.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run binds the listener and serves until the context is cancelled.
// Connection errors are logged and the accept loop continues.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return oops.With("addr", s.addr).Wrapf(err, "binding listener")
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	fmt.Fprintf(s.out, "Server is started on http://%s\n", s.addr)
	slog.Info("HTTP dispatcher started", "addr", listener.Addr())

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				slog.Error("Accept failed", "error", err)
				continue
			}
		}
		// Sequential on purpose: handlers share the executor stack.
		s.handle(conn)
	}
}

// handle serves one connection: MATCH → [AUTH?] → RUN → RESPOND.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	logger := slog.With(
		"request_id", ulid.Make().String(),
		"remote", conn.RemoteAddr().String(),
	)

	buf := make([]byte, readLimit)
	n, err := conn.Read(buf)
	if err != nil {
		logger.Error("request read failed", "error", err)
		return
	}
	req := parseRequest(string(buf[:n]))
	logger = logger.With("method", req.method, "path", req.path)

	route, found := s.routes[req.matchKey()]
	if !found {
		s.respondNotFound(conn, logger)
		return
	}

	if route.Auth {
		user, pass, ok := s.checkAuth(req, route)
		if !ok {
			logger.Info("unauthorized", "user", user)
			fmt.Fprint(conn, "HTTP/1.1 401 Unauthorized\r\n"+
				"WWW-Authenticate: Basic realm=\"Restricted area\"\r\n"+
				"Content-Type: text/plain\r\n\r\nUnauthorized")
			return
		}
		s.exec.Push(value.List([]value.Value{value.String(user), value.String(pass)}))
	}

	s.exec.Push(value.String(req.body))
	s.exec.Evaluate(route.Handler)

	response := s.exec.Pop()
	mime := s.exec.Pop().AsString()

	if response.Kind == value.KindBinary {
		header := fmt.Sprintf("HTTP/1.1 200 OK\r\nContent-Type: %s;\r\n\r\n", mime)
		conn.Write(append([]byte(header), response.Bytes...))
		logger.Info("request served", "status", 200, "bytes", len(response.Bytes))
		return
	}

	fmt.Fprintf(conn, "HTTP/1.1 200 OK\r\nContent-Type: %s; charset=utf-8\r\n\r\n%s",
		mime, response.AsString())
	logger.Info("request served", "status", 200)
}

// checkAuth evaluates the route's credentials expression and verifies
// the request's basic-auth header against it.
func (s *Server) checkAuth(req request, route Route) (user, pass string, ok bool) {
	s.exec.Evaluate(route.AuthExpr)
	creds := s.exec.Pop()

	database := make(map[string]string)
	for _, entry := range creds.AsList() {
		pair := entry.AsList()
		if len(pair) < 2 {
			continue
		}
		database[pair[0].AsString()] = pair[1].AsString()
	}

	return authenticate(req.raw, database)
}

// respondNotFound serves the 404 handler if the table defines one, the
// literal page otherwise. The content type comes off the stack either
// way, matching the regular response path.
func (s *Server) respondNotFound(conn net.Conn, logger *slog.Logger) {
	body := "404 - Not found"
	if route, ok := s.routes["not-found"]; ok {
		s.exec.Evaluate(route.Handler)
		body = s.exec.Pop().AsString()
	}
	mime := s.exec.Pop().AsString()

	fmt.Fprintf(conn, "HTTP/1.1 404 NOT FOUND\r\nContent-Type: %s; charset=utf-8\r\n\r\n%s",
		mime, body)
	logger.Info("request served", "status", 404)
}
