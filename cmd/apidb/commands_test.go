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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const platformYAML = `
baseline: ">=21"
versions:
  - symbol: example.com/platform.SDK
symbols:
  example.com/platform.NewCamera: ">=23"
  example.com/platform.Camera: ">=23"
  (example.com/platform.Camera).Flash: ">=26"
  example.com/platform.Broken: ">=x"
predicates:
  example.com/platform.IsAtLeastT: ">=33"
`

func writePlatform(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "platform.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(zap.NewNop())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestValidate(t *testing.T) {
	t.Parallel()

	path := writePlatform(t, platformYAML)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)

	assert.Contains(t, out, "baseline API level ≥ 21")
	assert.Contains(t, out, "4 symbols (1 unresolved)")
	assert.Contains(t, out, "1 predicates")
}

func TestValidateInvalid(t *testing.T) {
	t.Parallel()

	path := writePlatform(t, "baseline: [")

	_, err := execute(t, "validate", path, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 2 files")
}

func TestLookup(t *testing.T) {
	t.Parallel()

	path := writePlatform(t, platformYAML)

	out, err := execute(t, "lookup", path,
		"example.com/platform.NewCamera",
		"(example.com/platform.Camera).Flash",
		"(example.com/platform.Camera).Zoom",
		"example.com/platform.Broken",
		"example.com/platform.Unknown",
	)
	require.NoError(t, err)

	want := []string{
		"example.com/platform.NewCamera: API level ≥ 23\n",
		"(example.com/platform.Camera).Flash: API level ≥ 26\n",
		"(example.com/platform.Camera).Zoom: API level ≥ 23 (from example.com/platform.Camera)\n",
		"example.com/platform.Broken: unresolved: ",
		"example.com/platform.Unknown: any version\n",
	}

	for _, w := range want {
		assert.Contains(t, out, w)
	}
}

func TestImplies(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "implies", ">=24", ">=21")
	require.NoError(t, err)
	assert.Equal(t, "API level ≥ 24 implies API level ≥ 21\n", out)

	out, err = execute(t, "implies", ">=21", ">=24")
	require.ErrorIs(t, err, ErrNotImplied)
	assert.Contains(t, out, "API level ≥ 21 does not imply API level ≥ 24\n")

	_, err = execute(t, "implies", ">=", ">=24")
	require.Error(t, err)
}

func TestOwnerOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com/platform.Camera", ownerOf("(example.com/platform.Camera).Flash"))
	assert.Empty(t, ownerOf("example.com/platform.NewCamera"))
	assert.Empty(t, ownerOf("(broken"))
}
