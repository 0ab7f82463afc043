// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchres

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// A Schema describes where one tool family places its metrics inside
// the '#'-delimited outcome string. Offsets are 0-based indices into
// the split tokens; token 0 is always the status itself, so 0 means
// "not reported".
type Schema struct {
	// Success overrides the success marker compared against the
	// status token. Empty means DefaultSuccessMarker.
	Success string `json:"success,omitempty"`

	// States and Transitions locate the model-size tokens.
	States      int `json:"states"`
	Transitions int `json:"transitions"`

	// SMTTime locates the constraint-solving time for tools that
	// have a solving phase; 0 for tools that do not.
	SMTTime int `json:"smtTime,omitempty"`
}

// Schemas maps tool names to their outcome layouts.
type Schemas map[string]Schema

// DefaultSchemas covers the two known tool families. The SMT-based
// learner interleaves labels and values ("... states: #12#
// transitions: #34# smt time: #0.4#"), putting its metrics at tokens
// 4, 6 and 8; the state-merging family reports only states and
// transitions, at tokens 2 and 4.
func DefaultSchemas() Schemas {
	return Schemas{
		"rta": {States: 4, Transitions: 6, SMTTime: 8},
		"rti": {States: 2, Transitions: 4},
	}
}

// LoadSchemas reads tool layouts from a YAML file and merges them
// over the defaults, so a new tool family is a config entry rather
// than a code change. An empty path returns just the defaults.
func LoadSchemas(path string) (Schemas, error) {
	s := DefaultSchemas()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var loaded Schemas
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parsing tool schemas %s: %v", path, err)
	}
	for tool, schema := range loaded {
		s[tool] = schema
	}
	return s, nil
}

// For returns the layout for tool. It fails for unknown tools: a
// layout must come from the tool's actual log format, not a guess.
func (s Schemas) For(tool string) (Schema, error) {
	schema, ok := s[tool]
	if !ok {
		return Schema{}, fmt.Errorf("no outcome layout for tool %q; add it to the schema file", tool)
	}
	return schema, nil
}
