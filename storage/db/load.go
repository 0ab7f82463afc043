// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/rtlearn/benchtab/benchres"
	"github.com/rtlearn/benchtab/blockfmt"
)

// LoadLog recreates tool's table and fills it with the runs found in
// src, one record per data row. It returns the number of records
// loaded. The scan is a single forward pass; rows that fail to parse
// load with null fields rather than stopping the pass.
func (db *DB) LoadLog(ctx context.Context, tool string, schema benchres.Schema, src io.Reader, fileName string) (n int, err error) {
	run, err := db.NewRun(ctx, tool)
	if err != nil {
		return 0, err
	}
	defer run.Close()

	b := benchres.NewBuilder(tool, schema)
	r := blockfmt.NewReader(src, fileName)
	for r.Scan() {
		if err := run.Insert(ctx, b.Build(r.Row().Fields)); err != nil {
			return n, err
		}
		n++
	}
	return n, r.Err()
}

// LoadLogFile is LoadLog reading from the log at path. A missing file
// is not an error: the harness writes a log only for tools that ran,
// so the table is still recreated, empty, and n is 0.
func (db *DB) LoadLogFile(ctx context.Context, tool string, schema benchres.Schema, path string) (n int, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		run, err := db.NewRun(ctx, tool)
		if err != nil {
			return 0, err
		}
		return 0, run.Close()
	}
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return db.LoadLog(ctx, tool, schema, f, path)
}
