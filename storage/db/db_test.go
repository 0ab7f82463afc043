// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db_test

import (
	"context"
	"database/sql"
	"reflect"
	"testing"

	"github.com/rtlearn/benchtab/benchres"
	. "github.com/rtlearn/benchtab/storage/db"
	"github.com/rtlearn/benchtab/storage/db/dbtest"
)

func TestCheckTool(t *testing.T) {
	for _, tool := range []string{"rta", "rti", "dfasat_v2", "Tool9"} {
		if err := CheckTool(tool); err != nil {
			t.Errorf("CheckTool(%q) = %v, want nil", tool, err)
		}
	}
	for _, tool := range []string{"", "9tool", "rta; DROP TABLE rti", "a-b", "a.b", "a b"} {
		if err := CheckTool(tool); err == nil {
			t.Errorf("CheckTool(%q) = nil, want error", tool)
		}
	}
}

func sampleResult() *benchres.Result {
	return &benchres.Result{
		Tool:          "rta",
		Experiment:    "bench-50",
		Samples:       sql.NullInt64{Int64: 50, Valid: true},
		Status:        benchres.StatusComputed,
		States:        sql.NullInt64{Int64: 12, Valid: true},
		Transitions:   sql.NullInt64{Int64: 34, Valid: true},
		SMTTime:       "0.4",
		CPUTime:       sql.NullFloat64{Float64: 1.2, Valid: true},
		WallClockTime: sql.NullFloat64{Float64: 3.4, Valid: true},
		PlotTime:      3.4,
	}
}

func TestInsertAndResults(t *testing.T) {
	ctx := context.Background()
	db, cleanup := dbtest.NewDB(t)
	defer cleanup()

	run, err := db.NewRun(ctx, "rta")
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	want := []*benchres.Result{
		sampleResult(),
		{
			Tool:          "rta",
			Experiment:    "bench-100",
			Samples:       sql.NullInt64{Int64: 100, Valid: true},
			Status:        benchres.StatusFailure,
			SMTTime:       benchres.NotDetermined,
			CPUTime:       sql.NullFloat64{Float64: 0.8, Valid: true},
			WallClockTime: sql.NullFloat64{Float64: 0.9, Valid: true},
			PlotTime:      benchres.FailurePlotTime,
		},
	}
	for _, r := range want {
		if err := run.Insert(ctx, r); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if err := run.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	have, err := db.Results(ctx, "rta")
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if !reflect.DeepEqual(have, want) {
		t.Errorf("round trip mismatch:\nhave %+v\nwant %+v", have, want)
	}
}

// NewRun replaces prior contents; it never appends.
func TestNewRunRecreates(t *testing.T) {
	ctx := context.Background()
	db, cleanup := dbtest.NewDB(t)
	defer cleanup()

	run, err := db.NewRun(ctx, "rta")
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	if err := run.Insert(ctx, sampleResult()); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	run.Close()

	run, err = db.NewRun(ctx, "rta")
	if err != nil {
		t.Fatalf("second NewRun: %v", err)
	}
	run.Close()

	have, err := db.Results(ctx, "rta")
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(have) != 0 {
		t.Errorf("table has %d rows after recreate, want 0", len(have))
	}
}

func TestNewRunRejectsBadTool(t *testing.T) {
	ctx := context.Background()
	db, cleanup := dbtest.NewDB(t)
	defer cleanup()

	if _, err := db.NewRun(ctx, "rta; DROP TABLE rti"); err == nil {
		t.Error("NewRun accepted a malicious tool name")
	}
}
