// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchsummary writes the plotting datasets derived from the loaded
// result tables.
//
// Usage:
//
//	benchsummary [-db file] [-driver name] [-o dir] tool [tool2]
//
// For each named tool it writes scatter_<tool>.csv (model size against
// sample count) and box_<tool>.txt (the box-plot five-number summary).
// With two tools it also writes scatter_<tool>_<tool2>.csv, the model
// sizes both tools produced on instances they finished with the same
// outcome.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rtlearn/benchtab/benchagg"
	"github.com/rtlearn/benchtab/storage/db"
	_ "github.com/rtlearn/benchtab/storage/db/sqlite3"
)

var (
	dbName = flag.String("db", "results.db", "database `file` (or DSN, with -driver mysql)")
	driver = flag.String("driver", "sqlite3", "database driver `name`: sqlite3 or mysql")
	outDir = flag.String("o", ".", "write datasets to `dir`")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: benchsummary [flags] tool [tool2]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
	}
	tools := flag.Args()
	ctx := context.Background()

	d, err := db.OpenSQL(*driver, *dbName)
	if err != nil {
		log.Fatal().Err(err).Str("driver", *driver).Msg("opening database")
	}
	defer d.Close()
	agg := benchagg.New(d)

	for _, tool := range tools {
		points, err := agg.ToolScatter(ctx, tool)
		if err != nil {
			log.Fatal().Err(err).Str("tool", tool).Msg("scatter query")
		}
		path := filepath.Join(*outDir, "scatter_"+tool+".csv")
		if err := writeFile(path, func(f *os.File) error {
			return benchagg.WriteToolScatter(f, points)
		}); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("writing scatter")
		}

		box, err := agg.BoxSummary(ctx, tool)
		if err != nil {
			log.Fatal().Err(err).Str("tool", tool).Msg("box summary query")
		}
		path = filepath.Join(*outDir, "box_"+tool+".txt")
		if err := writeFile(path, func(f *os.File) error {
			return benchagg.WriteBoxSummary(f, box)
		}); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("writing box summary")
		}
		log.Info().Str("tool", tool).Int("points", len(points)).Int("computed", box.N).Msg("tool datasets written")
	}

	if len(tools) == 2 {
		points, err := agg.CrossScatter(ctx, tools[0], tools[1])
		if err != nil {
			log.Fatal().Err(err).Msg("cross scatter query")
		}
		path := filepath.Join(*outDir, "scatter_"+tools[0]+"_"+tools[1]+".csv")
		if err := writeFile(path, func(f *os.File) error {
			return benchagg.WriteCrossScatter(f, points)
		}); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("writing cross scatter")
		}
		log.Info().Int("points", len(points)).Msg("cross-tool dataset written")
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
