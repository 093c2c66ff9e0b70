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

package gclplugin

import (
	apiguard "fillmore-labs.com/apiguard/analyzer"
	"fillmore-labs.com/apiguard/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Config is the platform description file.
	Config *string `json:"config,omitzero"`
	// Baseline overrides the minimum supported versions.
	Baseline *string `json:"baseline,omitzero"`
	// Violations enables reporting unguarded API uses.
	Violations *bool `json:"violations,omitzero"`
	// Redundant enables reporting obsolete version checks.
	Redundant *bool `json:"redundant,omitzero"`
	// Monotonicity enables reporting declarations weaker than their enclosing declarations.
	Monotonicity *bool `json:"monotonicity,omitzero"`
	// Heuristics selects how checks recognized by name are treated: trust, audit or off.
	Heuristics *level.Heuristic `json:"heuristics,omitzero"`
	// Unresolved enables reporting symbols with unreadable requirements.
	Unresolved *bool `json:"unresolved,omitzero"`
	// Workers limits the parallel evaluations per package.
	Workers *int `json:"workers,omitzero"`
}

// Options converts [Settings] into a list of [apiguard.Option] for the apiguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []apiguard.Option {
	var opts []apiguard.Option

	opts = appendOption(opts, s.Config, apiguard.WithConfig)
	opts = appendOption(opts, s.Baseline, apiguard.WithBaseline)
	opts = appendOption(opts, s.Violations, apiguard.WithViolations)
	opts = appendOption(opts, s.Redundant, apiguard.WithRedundant)
	opts = appendOption(opts, s.Monotonicity, apiguard.WithMonotonicity)
	opts = appendOption(opts, s.Heuristics, apiguard.WithHeuristics)
	opts = appendOption(opts, s.Unresolved, apiguard.WithUnresolved)
	opts = appendOption(opts, s.Workers, apiguard.WithWorkers)

	return opts
}

// appendOption appends a non-nil setting to a [apiguard.Option] list.
func appendOption[T any](opts []apiguard.Option, value *T, constructor func(T) apiguard.Option) []apiguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
