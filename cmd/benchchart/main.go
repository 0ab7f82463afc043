// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchchart renders quick-look PNG charts from the loaded result
// tables: a states/samples scatter and a box plot per tool, plus a
// cross-tool scatter when two tools are named.
//
// Usage:
//
//	benchchart [-db file] [-driver name] [-o dir] tool [tool2]
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
	"gonum.org/v1/plot"

	"github.com/rtlearn/benchtab/benchagg"
	"github.com/rtlearn/benchtab/benchchart"
	"github.com/rtlearn/benchtab/storage/db"
	_ "github.com/rtlearn/benchtab/storage/db/sqlite3"
)

var (
	dbName = flag.String("db", "results.db", "database `file` (or DSN, with -driver mysql)")
	driver = flag.String("driver", "sqlite3", "database driver `name`: sqlite3 or mysql")
	outDir = flag.String("o", ".", "write charts to `dir`")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: benchchart [flags] tool [tool2]\n")
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
		pl, err := benchchart.ToolScatter(points, tool)
		if err != nil {
			log.Fatal().Err(err).Str("tool", tool).Msg("building scatter chart")
		}
		save(pl, "scatter_"+tool+".png")

		states, err := agg.States(ctx, tool)
		if err != nil {
			log.Fatal().Err(err).Str("tool", tool).Msg("states query")
		}
		if len(states) == 0 {
			log.Warn().Str("tool", tool).Msg("no computed runs, skipping box plot")
			continue
		}
		pl, err = benchchart.Box(states, tool)
		if err != nil {
			log.Fatal().Err(err).Str("tool", tool).Msg("building box plot")
		}
		save(pl, "box_"+tool+".png")
	}

	if len(tools) == 2 {
		points, err := agg.CrossScatter(ctx, tools[0], tools[1])
		if err != nil {
			log.Fatal().Err(err).Msg("cross scatter query")
		}
		pl, err := benchchart.CrossScatter(points, tools[0], tools[1])
		if err != nil {
			log.Fatal().Err(err).Msg("building cross scatter chart")
		}
		save(pl, "scatter_"+tools[0]+"_"+tools[1]+".png")
	}
}

func save(pl *plot.Plot, name string) {
	path := filepath.Join(*outDir, name)
	if err := benchchart.SavePNG(pl, path); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("writing chart")
	}
	log.Info().Str("path", path).Msg("chart written")
}
