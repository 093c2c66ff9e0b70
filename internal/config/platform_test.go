// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"fillmore-labs.com/apiguard/internal/axis"
	. "fillmore-labs.com/apiguard/internal/config"
	"fillmore-labs.com/apiguard/internal/constraint"
	"fillmore-labs.com/apiguard/internal/requirement"
)

const platformYAML = `
axes:
  - name: api
    display: API level
    primary: true
  - name: r
    id: 30
    display: R Extensions
baseline: ">=21"
codenames:
  S: "31"
  T: "33"
  X: "next"
desugar: [streams]
versions:
  - symbol: example.com/platform/build.SDKInt
  - symbol: example.com/platform/build.SDKIntFull
    scale: 100000
  - symbol: example.com/platform/ext.Version
    axis-argument: true
  - symbol: example.com/platform/ext.RVersion
    axis: r
  - symbol: example.com/platform/ext.Unknown
    axis: q
packages:
  example.com/app/legacy: ">=23"
symbols:
  example.com/platform.Camera: ">=24"
  (example.com/platform.Camera).Flash: ">=26 || r>=4"
  example.com/platform.NewStream:
    requires: ">=24"
    category: streams
  example.com/platform.Broken: ">=Q"
predicates:
  example.com/compat.IsAtLeastT: ">=33"
`

func TestDecode(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)

	p, err := Decode([]byte(platformYAML), zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, ">=21", p.Baseline.String())
	assert.Equal(t, "R Extensions", p.Axes.Display(30))

	assert.Equal(t, map[string]constraint.Level{"S": constraint.Major(31), "T": constraint.Major(33)}, p.Codenames)
	assert.Equal(t, []requirement.Category{"streams"}, p.Desugared)

	assert.Equal(t, VersionExpr{Axis: constraint.Primary}, p.Versions["example.com/platform/build.SDKInt"])
	assert.Equal(t, VersionExpr{Axis: constraint.Primary, Scale: 100000}, p.Versions["example.com/platform/build.SDKIntFull"])
	assert.True(t, p.Versions["example.com/platform/ext.Version"].AxisArgument)
	assert.Equal(t, constraint.Axis(30), p.Versions["example.com/platform/ext.RVersion"].Axis)
	assert.NotContains(t, p.Versions, "example.com/platform/ext.Unknown")

	assert.Equal(t, ">=23", p.Packages["example.com/app/legacy"].String())

	flash, ok := p.Symbols.Lookup("(example.com/platform.Camera).Flash")
	require.True(t, ok)
	assert.Equal(t, ">=26 || r>=4", p.Axes.Text(flash))

	assert.Equal(t, requirement.Category("streams"), p.Categories["example.com/platform.NewStream"])

	_, ok = p.Symbols.Lookup("example.com/platform.Broken")
	assert.False(t, ok)
	assert.Error(t, p.Symbols.Unresolved("example.com/platform.Broken"))

	assert.Equal(t, ">=33", p.Predicates["example.com/compat.IsAtLeastT"].String())

	assert.Equal(t, 3, logs.Len())

	for _, entry := range logs.All() {
		assert.Equal(t, "Skipping configuration entry", entry.Message)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		yaml string
	}{
		{"invalid yaml", "axes: [\n"},
		{"no primary", "axes:\n  - name: r\n    id: 30\n"},
		{"duplicate axis", "axes:\n  - name: api\n    primary: true\n  - name: API\n    id: 2\n"},
		{"bad baseline", "baseline: \">=\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode([]byte(tt.yaml), nil)
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "apiguard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("baseline: 23\n"), 0o600))

	p, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ">=23", p.Baseline.String())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersionLevel(t *testing.T) {
	t.Parallel()

	level, dotted := VersionExpr{Scale: 100000}.Level(3600001)
	assert.Equal(t, constraint.Level{Major: 36, Minor: 1}, level)
	assert.True(t, dotted)

	level, dotted = VersionExpr{}.Level(23)
	assert.Equal(t, constraint.Major(23), level)
	assert.False(t, dotted)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	p := Default()

	assert.True(t, p.Baseline.IsNone())
	assert.Equal(t, axis.Default().Display(constraint.Primary), p.Axes.Display(constraint.Primary))
}
