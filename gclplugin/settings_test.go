// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	apiguard "fillmore-labs.com/apiguard/analyzer"
	"fillmore-labs.com/apiguard/analyzer/level"
	. "fillmore-labs.com/apiguard/gclplugin"
)

const allSettings = `{
	"config": "platform.yaml",
	"baseline": ">=24",
	"violations": true,
	"redundant": false,
	"monotonicity": true,
	"heuristics": "audit",
	"unresolved": true,
	"workers": 4
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), apiguard.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestHeuristicSetting(t *testing.T) {
	t.Parallel()

	var s Settings
	if err := json.Unmarshal([]byte(`{"heuristics": "off"}`), &s); err != nil {
		t.Fatalf("Can't decode settings: %v", err)
	}

	if s.Heuristics == nil || *s.Heuristics != level.HeuristicOff {
		t.Errorf("Got heuristics %v, want %v", s.Heuristics, level.HeuristicOff)
	}

	if err := json.Unmarshal([]byte(`{"heuristics": "sometimes"}`), &s); err == nil {
		t.Error("Expected error for unknown heuristic level")
	}
}

func TestPlugin(t *testing.T) {
	t.Parallel()

	p, err := New(map[string]any{"redundant": false})
	if err != nil {
		t.Fatalf("Can't create plugin: %v", err)
	}

	analyzers, err := p.BuildAnalyzers()
	if err != nil {
		t.Fatalf("Can't build analyzers: %v", err)
	}

	if len(analyzers) != 1 || analyzers[0].Name != "apiguard" {
		t.Errorf("Got analyzers %v, want apiguard", analyzers)
	}
}

func TestPluginConfigMissing(t *testing.T) {
	t.Parallel()

	p, err := New(map[string]any{"config": "testdata/missing.yaml"})
	if err != nil {
		t.Fatalf("Can't create plugin: %v", err)
	}

	if _, err := p.BuildAnalyzers(); err == nil {
		t.Error("Expected error for missing platform description")
	}
}
