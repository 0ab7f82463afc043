// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchres turns raw harness rows into canonical experiment
// records: it normalizes the heterogeneous tool outcomes into a small
// set of statuses and applies the per-tool column layout that locates
// model metrics inside the outcome string.
package benchres

import "database/sql"

// A Status is the canonical outcome of one benchmark run. Raw tool
// statuses that match no known pattern pass through trimmed, so
// unknown future outcomes survive into the result tables unchanged.
type Status string

const (
	// StatusComputed marks a run that produced a learned model.
	StatusComputed Status = "COMPUTED"
	// StatusTimeout is the harness's CPU/wall-clock limit status.
	// The classifier does not synthesize it; it arrives via
	// pass-through.
	StatusTimeout Status = "TIMEOUT"
	// StatusMemoryOut marks a run killed by memory exhaustion.
	StatusMemoryOut Status = "MEMORYOUT"
	// StatusFailure marks a crash or an empty/unknown outcome.
	StatusFailure Status = "FAILURE"
)

// NotDetermined is the sentinel stored for metrics a tool does not
// report, notably the solver time of tools without an SMT phase.
const NotDetermined = "nd"

// A Result is one benchmark run as stored in a tool's result table.
//
// States and Transitions are defined exactly when Status is
// StatusComputed (and the tool's outcome string was well formed).
// PlotTime is always defined so every run, including one that never
// finished, has a finite position on a log-scale time axis.
type Result struct {
	// Tool is the learning tool this run measured.
	Tool string

	// Experiment names the benchmark instance, e.g. "bench-50".
	// It embeds the sample count, so it identifies an instance,
	// not an instance family.
	Experiment string

	// Samples is the input sample count encoded in the experiment
	// name. Invalid if the name does not follow the
	// <label>-<samples> convention.
	Samples sql.NullInt64

	Status Status

	// States and Transitions are the size of the learned model.
	States      sql.NullInt64
	Transitions sql.NullInt64

	// SMTTime is the constraint-solving time reported by tools
	// with an SMT phase, as printed by the tool, or NotDetermined.
	SMTTime string

	// CPUTime and WallClockTime are the harness's measurements.
	// Invalid if the log field did not parse as a number.
	CPUTime       sql.NullFloat64
	WallClockTime sql.NullFloat64

	// PlotTime is the wall-clock time clamped for plotting, or a
	// fixed penalty for runs without a meaningful completion time.
	PlotTime float64
}
