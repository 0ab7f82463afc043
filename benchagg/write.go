// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/rtlearn/benchtab/benchres"
)

// WriteCrossScatter writes a cross-tool scatter dataset as CSV with a
// statesA,statesB header.
func WriteCrossScatter(w io.Writer, points []ScatterPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"statesA", "statesB"}); err != nil {
		return err
	}
	for _, p := range points {
		rec := []string{
			strconv.FormatInt(p.StatesA, 10),
			strconv.FormatInt(p.StatesB, 10),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteToolScatter writes a per-tool scatter dataset as CSV with a
// states,samples header.
func WriteToolScatter(w io.Writer, points []SamplePoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"states", "samples"}); err != nil {
		return err
	}
	for _, p := range points {
		rec := []string{
			strconv.FormatInt(p.States, 10),
			strconv.FormatInt(p.Samples, 10),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBoxSummary writes a box summary as a single line of key=value
// pairs in the order the plots' "boxplot prepared" option expects.
// Undefined values (an empty table) are written as the "nd" sentinel.
func WriteBoxSummary(w io.Writer, s *BoxSummary) error {
	_, err := fmt.Fprintf(w,
		"lower whisker=%s, lower quartile=%s, median=%s, upper quartile=%s, upper whisker=%s, sample size=%d\n",
		boxValue(s.Min), boxValue(s.Q1), boxValue(s.Median),
		boxValue(s.Q3), boxValue(s.Max), s.N)
	return err
}

func boxValue(v float64) string {
	if math.IsNaN(v) {
		return benchres.NotDetermined
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
