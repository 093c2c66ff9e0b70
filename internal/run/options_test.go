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

package run

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/apiguard/internal/config"
)

func TestPlatformDescription(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "platform.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`baseline: ">=21"`), 0o600))

	tests := []struct {
		name     string
		options  func(r *Options)
		baseline string
		err      bool
	}{
		{"default", func(*Options) {}, "any", false},
		{"file", func(r *Options) { r.ConfigPath = path }, ">=21", false},
		{"override", func(r *Options) { r.ConfigPath, r.Baseline = path, ">=24" }, ">=24", false},
		{"preloaded", func(r *Options) { r.Platform, r.ConfigPath = config.Default(), path }, "any", false},
		{"missing", func(r *Options) { r.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml") }, "", true},
		{"invalid baseline", func(r *Options) { r.Baseline = ">=" }, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := DefaultOptions()
			tt.options(r)

			p, err := r.platformDescription()
			if tt.err {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.baseline, p.Baseline.String())

			again, _ := r.platformDescription()
			assert.Same(t, p, again)
		})
	}
}

func TestBaselineOverrideCopies(t *testing.T) {
	t.Parallel()

	preloaded := config.Default()

	r := DefaultOptions()
	r.Platform, r.Baseline = preloaded, ">=26"

	p, err := r.platformDescription()
	require.NoError(t, err)

	assert.Equal(t, ">=26", p.Baseline.String())
	assert.Equal(t, "any", preloaded.Baseline.String())
}
