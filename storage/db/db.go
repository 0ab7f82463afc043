// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db stores parsed benchmark results in per-tool relational
// tables. Each tool owns one table, recreated from scratch on every
// load so re-parsing a log replaces prior contents instead of
// appending to them.
package db

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/rtlearn/benchtab/benchres"
)

// DB is a handle to a result database. It is safe for concurrent use
// by multiple goroutines; per-tool tables are independent, so loads
// for different tools need no coordination.
type DB struct {
	sql        *sql.DB
	driverName string
}

// OpenSQL opens a result database. The parameters are those of
// sql.Open. Only sqlite3 and mysql are explicitly supported; other
// engines receive the same generic SQL, which may or may not be
// compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	return &DB{sql: db, driverName: driverName}, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a
// connection with driverName. This is used by the sqlite3 package to
// configure the connection. It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.sql.Close()
}

// Select runs a read-only query. It exists for the aggregation layer,
// which composes its own joins over the per-tool tables.
func (db *DB) Select(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return db.sql.QueryContext(ctx, query, args...)
}

// toolRE restricts tool names to identifiers, since they become table
// and column names and cannot be passed as placeholders.
var toolRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// CheckTool reports whether tool is usable as a table name.
func CheckTool(tool string) error {
	if !toolRE.MatchString(tool) {
		return fmt.Errorf("invalid tool name %q", tool)
	}
	return nil
}

// recreateTmpl drops and recreates one tool's table. Column names are
// prefixed with the tool name so several tool tables can be joined
// without aliasing collisions. DOUBLE PRECISION and VARCHAR keep the
// DDL valid on both sqlite3 and mysql. The smttime column is text: it
// holds either the tool's printed solver time or the "nd" sentinel.
var recreateTmpl = template.Must(template.New("recreate").Parse(`
DROP TABLE IF EXISTS {{.Tool}};
CREATE TABLE {{.Tool}} (
	{{.Tool}}_experiment VARCHAR(255),
	{{.Tool}}_samples INTEGER,
	{{.Tool}}_status VARCHAR(255),
	{{.Tool}}_states INTEGER,
	{{.Tool}}_transitions INTEGER,
	{{.Tool}}_smttime VARCHAR(64),
	{{.Tool}}_cputime DOUBLE PRECISION,
	{{.Tool}}_wallclocktime DOUBLE PRECISION,
	{{.Tool}}_plottime DOUBLE PRECISION
);
`))

// A Run is a short-lived handle for loading one tool's results. The
// tool's table is empty when NewRun returns; every record of the run
// is inserted through the same handle and never updated afterwards.
type Run struct {
	tool   string
	insert *sql.Stmt
}

// NewRun drops any existing table for tool and creates a fresh one,
// returning a handle for inserting the new results. Callers must
// Close the Run when the load is finished.
func (db *DB) NewRun(ctx context.Context, tool string) (*Run, error) {
	if err := CheckTool(tool); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := recreateTmpl.Execute(&buf, map[string]string{"Tool": tool}); err != nil {
		return nil, err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.ExecContext(ctx, q); err != nil {
			return nil, fmt.Errorf("recreate table %s: %v", tool, err)
		}
	}
	insert, err := db.sql.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %[1]s (%[1]s_experiment, %[1]s_samples, %[1]s_status, %[1]s_states, %[1]s_transitions, %[1]s_smttime, %[1]s_cputime, %[1]s_wallclocktime, %[1]s_plottime) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		tool))
	if err != nil {
		return nil, err
	}
	return &Run{tool: tool, insert: insert}, nil
}

// Insert stores one result in the run's table.
func (r *Run) Insert(ctx context.Context, res *benchres.Result) error {
	_, err := r.insert.ExecContext(ctx,
		res.Experiment, res.Samples, string(res.Status),
		res.States, res.Transitions, res.SMTTime,
		res.CPUTime, res.WallClockTime, res.PlotTime)
	return err
}

// Close releases the run's prepared statement.
func (r *Run) Close() error {
	return r.insert.Close()
}

// Results reads back every record in tool's table, in insertion
// order. Order carries no meaning; this exists for tests and for
// exporting the table as a whole.
func (db *DB) Results(ctx context.Context, tool string) ([]*benchres.Result, error) {
	if err := CheckTool(tool); err != nil {
		return nil, err
	}
	rows, err := db.sql.QueryContext(ctx, fmt.Sprintf(
		"SELECT %[1]s_experiment, %[1]s_samples, %[1]s_status, %[1]s_states, %[1]s_transitions, %[1]s_smttime, %[1]s_cputime, %[1]s_wallclocktime, %[1]s_plottime FROM %[1]s",
		tool))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*benchres.Result
	for rows.Next() {
		r := &benchres.Result{Tool: tool}
		var status string
		if err := rows.Scan(&r.Experiment, &r.Samples, &status,
			&r.States, &r.Transitions, &r.SMTTime,
			&r.CPUTime, &r.WallClockTime, &r.PlotTime); err != nil {
			return nil, err
		}
		r.Status = benchres.Status(status)
		results = append(results, r)
	}
	return results, rows.Err()
}
