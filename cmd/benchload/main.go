// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchload extracts the runs of one learning tool from a harness log
// and loads them into that tool's result table.
//
// Usage:
//
//	benchload [-db file] [-driver name] [-schemas file] tool logfile
//
// The tool's table is dropped and recreated on every invocation, so
// loading the same log twice leaves the table unchanged. A missing
// log file is not an error: the table is still recreated, empty, and
// benchload exits 0, since a tool that contributed no runs is a valid
// outcome for a benchmark round.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rtlearn/benchtab/benchres"
	"github.com/rtlearn/benchtab/storage/db"
	_ "github.com/rtlearn/benchtab/storage/db/sqlite3"
)

var (
	dbName  = flag.String("db", "results.db", "database `file` (or DSN, with -driver mysql)")
	driver  = flag.String("driver", "sqlite3", "database driver `name`: sqlite3 or mysql")
	schemas = flag.String("schemas", "", "read tool outcome layouts from YAML `file`")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: benchload [flags] tool logfile\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
	}
	tool, logPath := flag.Arg(0), flag.Arg(1)
	ctx := context.Background()

	schemaSet, err := benchres.LoadSchemas(*schemas)
	if err != nil {
		log.Fatal().Err(err).Msg("loading tool schemas")
	}
	schema, err := schemaSet.For(tool)
	if err != nil {
		log.Fatal().Err(err).Msg("unknown tool")
	}

	d, err := db.OpenSQL(*driver, *dbName)
	if err != nil {
		log.Fatal().Err(err).Str("driver", *driver).Msg("opening database")
	}
	defer d.Close()

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		log.Warn().Str("log", logPath).Msg("log file missing, recreating empty table")
	}
	n, err := d.LoadLogFile(ctx, tool, schema, logPath)
	if err != nil {
		log.Fatal().Err(err).Str("tool", tool).Msg("loading log")
	}
	log.Info().Str("tool", tool).Str("log", logPath).Int("runs", n).Msg("table loaded")
}
