// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite3 provides the sqlite3 driver for the result
// database. It must be imported, with a blank identifier, by any
// binary or test that opens a database with driver name "sqlite3".
package sqlite3

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rtlearn/benchtab/storage/db"
)

func init() {
	db.RegisterOpenHook("sqlite3", func(d *sql.DB) error {
		// Loads for different tools may share one database file;
		// wait for locks instead of failing with SQLITE_BUSY.
		_, err := d.Exec("PRAGMA busy_timeout = 10000")
		return err
	})
}
