// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchres

import (
	"database/sql"
	"strconv"
	"strings"
)

// Positions of the interesting columns in a harness data row.
const (
	colPath    = 0 // run path; second slash segment is the config file
	colOutcome = 1 // '#'-delimited outcome string
	colCPU     = 2
	colWall    = 3
)

// A Builder turns raw harness rows into Results for one tool, using
// that tool's outcome layout.
type Builder struct {
	tool       string
	schema     Schema
	classifier Classifier
}

// NewBuilder returns a Builder for tool with the given layout.
func NewBuilder(tool string, schema Schema) *Builder {
	return &Builder{
		tool:       tool,
		schema:     schema,
		classifier: Classifier{Success: schema.Success},
	}
}

// Build converts one row's columns into a Result. Build never fails:
// columns that are missing or do not parse leave the corresponding
// fields null, and unrecognized statuses pass through, so one mangled
// line cannot abort a scan.
func (b *Builder) Build(fields []string) *Result {
	r := &Result{Tool: b.tool, SMTTime: NotDetermined}

	r.Experiment, r.Samples = ParseExperiment(field(fields, colPath))
	r.CPUTime = parseReal(field(fields, colCPU))
	r.WallClockTime = parseReal(field(fields, colWall))

	tokens := strings.Split(field(fields, colOutcome), "#")
	r.Status, r.PlotTime = b.classifier.Classify(tokens[0], r.WallClockTime.Float64)

	if r.Status == StatusComputed {
		r.States = tokenInt(tokens, b.schema.States)
		r.Transitions = tokenInt(tokens, b.schema.Transitions)
		if t := token(tokens, b.schema.SMTTime); t != "" {
			r.SMTTime = t
		}
	}
	return r
}

// ParseExperiment extracts the benchmark instance name and its sample
// count from a run path. The grammar is the benchmark suite's naming
// convention and nothing upstream validates it:
//
//	path       = segment "/" configFile { "/" segment }
//	configFile = experiment "." ext { "." ext }
//	experiment = label "-" samples
//
// The experiment name is the configFile up to its first dot; samples
// is the decimal run after the last '-' in that name. A path without
// a second segment falls back to its only segment; a name without a
// parseable sample count yields an invalid Samples.
func ParseExperiment(path string) (string, sql.NullInt64) {
	segs := strings.Split(path, "/")
	file := segs[0]
	if len(segs) > 1 {
		file = segs[1]
	}
	name := file
	if i := strings.IndexByte(file, '.'); i >= 0 {
		name = file[:i]
	}

	var samples sql.NullInt64
	if i := strings.LastIndexByte(name, '-'); i >= 0 {
		if n, err := strconv.ParseInt(name[i+1:], 10, 64); err == nil {
			samples = sql.NullInt64{Int64: n, Valid: true}
		}
	}
	return name, samples
}

// field returns column i of a row, tolerating short rows.
func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// token returns the trimmed '#'-token at offset, or "" when the
// offset is unset (0) or past the end of the outcome string.
func token(tokens []string, offset int) string {
	if offset <= 0 || offset >= len(tokens) {
		return ""
	}
	return strings.TrimSpace(tokens[offset])
}

func tokenInt(tokens []string, offset int) sql.NullInt64 {
	n, err := strconv.ParseInt(token(tokens, offset), 10, 64)
	if err != nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: n, Valid: true}
}

func parseReal(s string) sql.NullFloat64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}
