// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package httpd

import (
	"net/url"
	"strings"
)

// request is one parsed HTTP request: whatever fit in the single 8 KiB
// read, split into the pieces the dispatcher consumes.
type request struct {
	raw    string
	method string
	path   string
	body   string
}

// parseRequest splits the request text into method, path, and the body
// string the handler sees: the URL-decoded query, then each decoded
// body line appended up to the next blank line, NULs and surrounding
// whitespace trimmed.
func parseRequest(raw string) request {
	lines := splitLines(raw)

	requestLine := ""
	if len(lines) > 0 {
		requestLine = lines[0]
	}
	method, rest := splitPair(requestLine, " ")
	path, query := splitPair(rest, "?")

	// Skip the headers.
	next := 1
	for next < len(lines) {
		line := lines[next]
		next++
		if line == "" {
			break
		}
	}

	var body strings.Builder
	body.WriteString(decodeComponent(query))
	for next < len(lines) {
		line := lines[next]
		next++
		if line == "" {
			break
		}
		body.WriteString(decodeComponent(line))
	}

	return request{raw: raw, method: method, path: path, body: body.String()}
}

// matchKey builds the route-table key.
func (r request) matchKey() string {
	return r.method + " " + r.path
}

// splitLines splits on newlines, dropping a trailing carriage return
// from each line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// splitPair splits the trimmed text on every separator and returns the
// first two fields; anything after a second separator is dropped, and a
// missing separator leaves the second field empty.
func splitPair(text, sep string) (string, string) {
	parts := strings.Split(strings.TrimSpace(text), sep)
	first, second := "", ""
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		second = parts[1]
	}
	return first, second
}

// decodeComponent percent-decodes one query or body component. Text
// that fails to decode passes through raw; embedded NULs from the
// fixed read buffer are trimmed.
func decodeComponent(text string) string {
	decoded, err := url.PathUnescape(text)
	if err != nil {
		decoded = text
	}
	return strings.TrimRight(strings.TrimSpace(decoded), "\x00")
}
