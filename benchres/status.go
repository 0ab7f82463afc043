// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchres

import "strings"

// Plot-time constants. Runs that never produced a measurable time
// still need a finite, orderable plot value; the two penalties sit
// above any realistic completion time (the harness timeout), and the
// failure penalty sits strictly above the memory one so the two
// classes stay separable in a plot.
const (
	// MinPlotTime is the floor applied to measured wall-clock
	// times. Zero or negative values break log-scale axes.
	MinPlotTime = 0.01

	// MemoryOutPlotTime is the fixed plot time for memory-outs.
	MemoryOutPlotTime = 1000

	// FailurePlotTime is the fixed plot time for failures.
	FailurePlotTime = 1500
)

// DefaultSuccessMarker is the sentinel both known tool families print
// as the first outcome token when they produced a model.
const DefaultSuccessMarker = "DFA results"

// crash markers recognized in raw statuses. "ERROR" is a prefix match
// because the harness appends exit codes ("ERROR (1)"); the rest are
// substring matches against harness kill statuses. "unknown" is the
// harness's explicit no-result status.
var crashMarkers = []string{"SEGMENTATION FAULT", "ABORTED"}

// A Classifier maps raw status tokens to canonical statuses. The zero
// value uses DefaultSuccessMarker.
type Classifier struct {
	// Success is the exact (trimmed) raw status that counts as a
	// completed run.
	Success string
}

// Classify normalizes a raw status token and derives the plot time
// for the run. wallClock is the harness's wall-clock measurement,
// used only for outcomes where it represents a real completion time.
//
// Rules, in precedence order: the success marker is StatusComputed;
// a MEMORY substring is StatusMemoryOut; an empty, unknown, or
// crash-marked status is StatusFailure; anything else passes through
// trimmed.
func (c Classifier) Classify(raw string, wallClock float64) (Status, float64) {
	raw = strings.TrimSpace(raw)
	success := c.Success
	if success == "" {
		success = DefaultSuccessMarker
	}

	switch {
	case raw == success:
		return StatusComputed, clampPlotTime(wallClock)
	case strings.Contains(raw, "MEMORY"):
		return StatusMemoryOut, MemoryOutPlotTime
	case isFailure(raw):
		return StatusFailure, FailurePlotTime
	}
	return Status(raw), clampPlotTime(wallClock)
}

func isFailure(raw string) bool {
	if raw == "" || raw == "unknown" || strings.HasPrefix(raw, "ERROR") {
		return true
	}
	for _, m := range crashMarkers {
		if strings.Contains(raw, m) {
			return true
		}
	}
	return false
}

func clampPlotTime(wallClock float64) float64 {
	if wallClock < MinPlotTime {
		return MinPlotTime
	}
	return wallClock
}
