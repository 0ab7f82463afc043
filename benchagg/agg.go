// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchagg derives the plotting datasets from the per-tool
// result tables: cross-tool and per-tool scatter point sets and
// box-plot five-number summaries. All queries are read-only and
// independent of each other.
package benchagg

import (
	"context"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/rtlearn/benchtab/benchres"
	"github.com/rtlearn/benchtab/storage/db"
)

// An Aggregator runs summary queries over one or two tool tables.
type Aggregator struct {
	db *db.DB
}

// New returns an Aggregator reading from store.
func New(store *db.DB) *Aggregator {
	return &Aggregator{db: store}
}

// A ScatterPoint is one deduplicated point of the cross-tool scatter:
// the model sizes two tools produced for the same benchmark instance.
type ScatterPoint struct {
	StatesA int64
	StatesB int64
}

// CrossScatter compares the model sizes of toolA and toolB on the
// benchmark instances both tools finished with the same outcome.
// Rows join on experiment and equal status; instances where either
// side has no model size are dropped (comparing a computed size to a
// failure is meaningless), and repeated identical points collapse to
// one.
func (a *Aggregator) CrossScatter(ctx context.Context, toolA, toolB string) ([]ScatterPoint, error) {
	if err := db.CheckTool(toolA); err != nil {
		return nil, err
	}
	if err := db.CheckTool(toolB); err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`
SELECT a.%[1]s_states, b.%[2]s_states
FROM %[1]s a JOIN %[2]s b
  ON a.%[1]s_experiment = b.%[2]s_experiment
 AND a.%[1]s_status = b.%[2]s_status
WHERE a.%[1]s_states IS NOT NULL AND b.%[2]s_states IS NOT NULL
GROUP BY a.%[1]s_states, b.%[2]s_states`, toolA, toolB)

	rows, err := a.db.Select(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []ScatterPoint
	for rows.Next() {
		var p ScatterPoint
		if err := rows.Scan(&p.StatesA, &p.StatesB); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// A SamplePoint is one deduplicated point of a per-tool scatter: a
// model size against the input sample count that produced it.
type SamplePoint struct {
	States  int64
	Samples int64
}

// ToolScatter relates tool's model sizes to the benchmark sample
// counts, one point per distinct (states, samples) pair. Runs without
// a model size (anything but a computed run, plus mangled rows) carry
// a null states column and are dropped.
func (a *Aggregator) ToolScatter(ctx context.Context, tool string) ([]SamplePoint, error) {
	if err := db.CheckTool(tool); err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`
SELECT %[1]s_states, %[1]s_samples
FROM %[1]s
WHERE %[1]s_states IS NOT NULL AND %[1]s_samples IS NOT NULL
GROUP BY %[1]s_states, %[1]s_samples`, tool)

	rows, err := a.db.Select(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []SamplePoint
	for rows.Next() {
		var p SamplePoint
		if err := rows.Scan(&p.States, &p.Samples); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// A BoxSummary is the five-number summary of a tool's model sizes
// over its computed runs. When N is 0 the five numbers are NaN.
type BoxSummary struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	N      int
}

// States returns tool's model sizes over runs with a computed status,
// sorted ascending.
func (a *Aggregator) States(ctx context.Context, tool string) ([]float64, error) {
	if err := db.CheckTool(tool); err != nil {
		return nil, err
	}
	q := fmt.Sprintf(
		"SELECT %[1]s_states FROM %[1]s WHERE %[1]s_status = ? AND %[1]s_states IS NOT NULL",
		tool)
	rows, err := a.db.Select(ctx, q, string(benchres.StatusComputed))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var xs []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		xs = append(xs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	s := stats.Sample{Xs: xs}
	s.Sort()
	return s.Xs, nil
}

// BoxSummary computes the box-plot summary of tool's model sizes over
// its computed runs. An empty table is a valid input and yields an
// all-NaN summary with N 0.
func (a *Aggregator) BoxSummary(ctx context.Context, tool string) (*BoxSummary, error) {
	xs, err := a.States(ctx, tool)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		nan := math.NaN()
		return &BoxSummary{Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan}, nil
	}
	min, max := stats.Sample{Xs: xs, Sorted: true}.Bounds()
	return &BoxSummary{
		Min:    min,
		Q1:     quantileInc(xs, 0.25),
		Median: quantileInc(xs, 0.5),
		Q3:     quantileInc(xs, 0.75),
		Max:    max,
		N:      len(xs),
	}, nil
}

// quantileInc returns the q-th quantile of the sorted sample xs using
// the inclusive linear-interpolation definition (plotting position
// h = q*(n-1), quantile R-7), the convention the downstream box plots
// were produced with. moremath's Sample.Quantile interpolates on a
// different plotting position, so the box summary computes its own.
func quantileInc(xs []float64, q float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	h := q * float64(n-1)
	k := int(math.Floor(h))
	if k >= n-1 {
		return xs[n-1]
	}
	return xs[k] + (h-float64(k))*(xs[k+1]-xs[k])
}
