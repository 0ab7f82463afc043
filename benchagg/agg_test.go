// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtlearn/benchtab/benchres"
	"github.com/rtlearn/benchtab/storage/db/dbtest"
)

// The rta log repeats bench-20: the harness logs retries verbatim and
// deduplication is the aggregator's job.
const rtaLog = `run_set_rta
date          2026-08-01
limits        cpu: 60 s, memory: 4 GB

tool          status          cpu time          wall time
gen/bench-10.cfg    DFA results # is correct: #yes# states: #4# transitions: #6# smt time: #0.1#    0.5    0.6
gen/bench-20.cfg    DFA results # is correct: #yes# states: #7# transitions: #9# smt time: #0.2#    0.5    0.6
gen/bench-20.cfg    DFA results # is correct: #yes# states: #7# transitions: #9# smt time: #0.2#    0.5    0.6
gen/bench-30.cfg    DFA results # is correct: #yes# states: #9# transitions: #11# smt time: #0.2#    0.5    0.6
gen/bench-40.cfg    DFA results # is correct: #yes# states: #12# transitions: #14# smt time: #0.3#    0.5    0.6
gen/bench-50.cfg    TIMEOUT    60.0    60.2
--------------------------------------------------------
`

const rtiLog = `run_set_rti
date          2026-08-01
limits        cpu: 60 s, memory: 4 GB

tool          status          cpu time          wall time
gen/bench-10.cfg    DFA results # states: #5# transitions: #7#    0.4    0.5
gen/bench-20.cfg    DFA results # states: #7# transitions: #9#    0.4    0.5
gen/bench-30.cfg    TIMEOUT    60.0    60.1
gen/bench-40.cfg    DFA results # states: #12# transitions: #15#    0.4    0.5
gen/bench-50.cfg    TIMEOUT    60.0    60.3
--------------------------------------------------------
`

// newAggregator loads both fixture logs into a fresh database.
func newAggregator(t *testing.T) (*Aggregator, context.Context) {
	t.Helper()
	ctx := context.Background()
	d, cleanup := dbtest.NewDB(t)
	t.Cleanup(cleanup)

	schemas := benchres.DefaultSchemas()
	for tool, log := range map[string]string{"rta": rtaLog, "rti": rtiLog} {
		schema, err := schemas.For(tool)
		require.NoError(t, err)
		_, err = d.LoadLog(ctx, tool, schema, strings.NewReader(log), tool+".log")
		require.NoError(t, err)
	}
	return New(d), ctx
}

func TestCrossScatter(t *testing.T) {
	agg, ctx := newAggregator(t)

	points, err := agg.CrossScatter(ctx, "rta", "rti")
	require.NoError(t, err)

	// bench-30 (rta computed, rti timed out) must not pair up;
	// bench-50 (both timed out) has no model sizes to pair; the
	// repeated bench-20 collapses to one point.
	assert.ElementsMatch(t, []ScatterPoint{
		{StatesA: 4, StatesB: 5},
		{StatesA: 7, StatesB: 7},
		{StatesA: 12, StatesB: 12},
	}, points)
}

func TestToolScatter(t *testing.T) {
	agg, ctx := newAggregator(t)

	points, err := agg.ToolScatter(ctx, "rta")
	require.NoError(t, err)
	assert.ElementsMatch(t, []SamplePoint{
		{States: 4, Samples: 10},
		{States: 7, Samples: 20},
		{States: 9, Samples: 30},
		{States: 12, Samples: 40},
	}, points)

	points, err = agg.ToolScatter(ctx, "rti")
	require.NoError(t, err)
	assert.ElementsMatch(t, []SamplePoint{
		{States: 5, Samples: 10},
		{States: 7, Samples: 20},
		{States: 12, Samples: 40},
	}, points)
}

func TestBoxSummary(t *testing.T) {
	agg, ctx := newAggregator(t)

	// rta's computed model sizes, retries included: 4 7 7 9 12.
	box, err := agg.BoxSummary(ctx, "rta")
	require.NoError(t, err)
	assert.Equal(t, 5, box.N)
	assert.Equal(t, 4.0, box.Min)
	assert.Equal(t, 7.0, box.Q1)
	assert.Equal(t, 7.0, box.Median)
	assert.Equal(t, 9.0, box.Q3)
	assert.Equal(t, 12.0, box.Max)
}

func TestBoxSummaryInterpolates(t *testing.T) {
	agg, ctx := newAggregator(t)

	// rti's computed model sizes: 5 7 12.
	box, err := agg.BoxSummary(ctx, "rti")
	require.NoError(t, err)
	assert.Equal(t, 3, box.N)
	assert.Equal(t, 5.0, box.Min)
	assert.InDelta(t, 6.0, box.Q1, 1e-9)
	assert.Equal(t, 7.0, box.Median)
	assert.InDelta(t, 9.5, box.Q3, 1e-9)
	assert.Equal(t, 12.0, box.Max)
}

func TestBoxSummaryEmptyTable(t *testing.T) {
	ctx := context.Background()
	d, cleanup := dbtest.NewDB(t)
	t.Cleanup(cleanup)

	run, err := d.NewRun(ctx, "rta")
	require.NoError(t, err)
	require.NoError(t, run.Close())

	box, err := New(d).BoxSummary(ctx, "rta")
	require.NoError(t, err)
	assert.Equal(t, 0, box.N)
	assert.True(t, box.Min != box.Min, "Min should be NaN") // NaN != NaN

	var buf strings.Builder
	require.NoError(t, WriteBoxSummary(&buf, box))
	assert.Equal(t,
		"lower whisker=nd, lower quartile=nd, median=nd, upper quartile=nd, upper whisker=nd, sample size=0\n",
		buf.String())
}

func TestAggregatorRejectsBadTool(t *testing.T) {
	d, cleanup := dbtest.NewDB(t)
	t.Cleanup(cleanup)
	agg := New(d)
	ctx := context.Background()

	_, err := agg.ToolScatter(ctx, "rta; DROP TABLE rti")
	assert.Error(t, err)
	_, err = agg.CrossScatter(ctx, "rta", "rti--")
	assert.Error(t, err)
	_, err = agg.BoxSummary(ctx, "1nope")
	assert.Error(t, err)
}

func TestStatesExcludesUncomputed(t *testing.T) {
	agg, ctx := newAggregator(t)

	xs, err := agg.States(ctx, "rti")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 12}, xs)
}
