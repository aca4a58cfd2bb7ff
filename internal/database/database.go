// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

// Package database backs the sql operator: a file-backed SQLite
// database, opened per call and closed when the call returns. The
// schema is entirely user-controlled; rows come back as "table"
// objects with per-cell type inference.
package database

import (
	"database/sql"
	"log/slog"

	"github.com/samber/oops"
	_ "modernc.org/sqlite"

	"github.com/stack-community/stack-server/internal/value"
	"github.com/stack-community/stack-server/pkg/errutil"
)

// Query runs one SQL statement against the database file at path and
// returns the result rows as a list of Object("table", ...) values.
// Connect, prepare, and execute failures each map to their own error
// tag rather than unwinding; a failure while reading rows yields an
// empty list.
func Query(query, path string) value.Value {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		errutil.LogError(slog.Default(), "database open failed", oops.Code("sql-connect").With("path", path).Wrapf(err, "opening database"))
		return value.Error("sql-connect")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		errutil.LogError(slog.Default(), "database connect failed", oops.Code("sql-connect").With("path", path).Wrapf(err, "connecting to database"))
		return value.Error("sql-connect")
	}

	stmt, err := db.Prepare(query)
	if err != nil {
		errutil.LogError(slog.Default(), "statement prepare failed", oops.Code("pre-query").Wrapf(err, "preparing query"))
		return value.Error("pre-query")
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		errutil.LogError(slog.Default(), "query execution failed", oops.Code("exe-query").Wrapf(err, "executing query"))
		return value.Error("exe-query")
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		errutil.LogError(slog.Default(), "column lookup failed", oops.Code("exe-query").Wrapf(err, "reading columns"))
		return value.Error("exe-query")
	}

	var result []value.Value
	for rows.Next() {
		cells := make([]any, len(columns))
		refs := make([]any, len(columns))
		for i := range cells {
			refs[i] = &cells[i]
		}
		if err := rows.Scan(refs...); err != nil {
			return value.List(nil)
		}

		fields := make(map[string]value.Value, len(columns))
		for i, column := range columns {
			fields[column] = inferCell(cells[i])
		}
		result = append(result, value.Object("table", fields))
	}
	if err := rows.Err(); err != nil {
		return value.List(nil)
	}

	return value.List(result)
}

// inferCell maps a driver value to a language value: text stays text,
// integers and floats become numbers, anything else (blobs, nulls) is
// unrepresentable.
func inferCell(cell any) value.Value {
	switch v := cell.(type) {
	case string:
		return value.String(v)
	case int64:
		return value.Number(float64(v))
	case float64:
		return value.Number(v)
	default:
		return value.Error("parse-db")
	}
}
