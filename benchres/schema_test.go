// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchres

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchemas(t *testing.T) {
	s := DefaultSchemas()

	rta, err := s.For("rta")
	require.NoError(t, err)
	assert.Equal(t, Schema{States: 4, Transitions: 6, SMTTime: 8}, rta)

	rti, err := s.For("rti")
	require.NoError(t, err)
	assert.Equal(t, Schema{States: 2, Transitions: 4}, rti)

	_, err = s.For("dfasat")
	assert.Error(t, err)
}

func TestLoadSchemas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dfasat:
  states: 2
  transitions: 4
rta:
  success: RTA results
  states: 3
  transitions: 5
`), 0666))

	s, err := LoadSchemas(path)
	require.NoError(t, err)

	// New tools merge in, existing tools are overridden, and
	// untouched defaults survive.
	dfasat, err := s.For("dfasat")
	require.NoError(t, err)
	assert.Equal(t, Schema{States: 2, Transitions: 4}, dfasat)

	rta, err := s.For("rta")
	require.NoError(t, err)
	assert.Equal(t, Schema{Success: "RTA results", States: 3, Transitions: 5}, rta)

	rti, err := s.For("rti")
	require.NoError(t, err)
	assert.Equal(t, Schema{States: 2, Transitions: 4}, rti)
}

func TestLoadSchemasEmptyPath(t *testing.T) {
	s, err := LoadSchemas("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSchemas(), s)
}

func TestLoadSchemasMissingFile(t *testing.T) {
	_, err := LoadSchemas(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSchemasBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0666))
	_, err := LoadSchemas(path)
	assert.Error(t, err)
}
