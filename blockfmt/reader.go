// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blockfmt reads the block-structured run tables that the
// benchmarking harness appends to its log files.
//
// A log file is a sequence of blocks. Each block starts with a header
// line naming one run set, followed by a fixed four-line preamble
// (column headers and separators), followed by one data line per run,
// and ends at a dashed terminator line. Anything between blocks is
// harness chatter and is ignored.
package blockfmt

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// A RawRow is one data line of a block, split into its columns.
// Columns are separated by runs of two or more whitespace characters;
// single spaces are part of a column value.
type RawRow struct {
	// Fields holds the column values in line order. The meaning of
	// each column is up to the caller; the harness emits at least
	// the run path, the outcome string, and the cpu and wall times.
	Fields []string

	// Line is the 1-based line number of this row in the input.
	Line int
}

// Field returns column i, or "" if the row has fewer columns. Rows
// shorter than expected are data problems, not errors, so callers use
// Field instead of indexing.
func (r *RawRow) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// scanState is the position of the Reader within the block structure.
type scanState int

const (
	// seekHeader: between blocks, looking for the next header line.
	seekHeader scanState = iota
	// skipPreamble: inside a block, consuming the fixed preamble.
	skipPreamble
	// readRows: inside a block, yielding data lines until the
	// terminator.
	readRows
)

// preambleLines is the number of lines the harness emits between a
// block header and the first data line.
const preambleLines = 4

// terminatorLen is how many leading '-' bytes mark the end of a block.
const terminatorLen = 10

var headerRE = regexp.MustCompile(`^[A-Za-z0-9][-A-Za-z0-9_]+$`)

var columnSepRE = regexp.MustCompile(`\s{2,}`)

// A Reader reads data rows from a harness log.
//
// Its API is modeled on bufio.Scanner: call Scan until it returns
// false, reading each row with Row, then check Err. A Reader makes a
// single forward pass over its input and cannot be restarted.
type Reader struct {
	s        *bufio.Scanner
	fileName string

	state scanState
	skip  int // preamble lines left to consume

	line int
	row  RawRow
	err  error
}

// NewReader returns a Reader scanning r for run blocks. fileName is
// used in error messages only.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset restores r to its initial state, reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.s = bufio.NewScanner(ior)
	r.fileName = fileName
	r.state = seekHeader
	r.skip = 0
	r.line = 0
	r.row = RawRow{}
	r.err = nil
}

// Scan advances the Reader to the next data row and reports whether
// one was found. When Scan returns false the caller should check Err:
// a nil error means the input was exhausted.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		line := r.s.Text()
		switch r.state {
		case seekHeader:
			if headerRE.MatchString(line) {
				r.state = skipPreamble
				r.skip = preambleLines
			}
		case skipPreamble:
			r.skip--
			if r.skip == 0 {
				r.state = readRows
			}
		case readRows:
			if isTerminator(line) {
				r.state = seekHeader
				continue
			}
			r.row = RawRow{Fields: splitColumns(line), Line: r.line}
			return true
		}
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// Row returns the row read by the last successful call to Scan. The
// returned row remains valid until the next call to Scan.
func (r *Reader) Row() *RawRow {
	return &r.row
}

// Err returns the first I/O error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// isTerminator reports whether line ends the current block. The
// harness closes every block with a long dashed rule; requiring ten
// leading dashes keeps negative numbers and option strings from
// terminating a block early.
func isTerminator(line string) bool {
	if len(line) < terminatorLen {
		return false
	}
	for i := 0; i < terminatorLen; i++ {
		if line[i] != '-' {
			return false
		}
	}
	return true
}

// splitColumns splits a data line into columns on runs of two or more
// whitespace characters.
func splitColumns(line string) []string {
	return columnSepRE.Split(strings.TrimSpace(line), -1)
}
