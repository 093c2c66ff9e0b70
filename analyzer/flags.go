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

package analyzer

import (
	"flag"

	"fillmore-labs.com/apiguard/analyzer/level"
	"fillmore-labs.com/apiguard/internal/config"
	"fillmore-labs.com/apiguard/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.StringVar(&r.ConfigPath, "config", r.ConfigPath, "platform description `file`")
	flags.StringVar(&r.Baseline, "baseline", r.Baseline, "override the minimum supported versions, e.g. \">=24\"")

	flags.Var(newBoolValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newBoolValue(&r.Checks, config.ViolationCheck), "violations", "report unguarded API uses")
	flags.Var(newBoolValue(&r.Checks, config.RedundantCheck), "redundant", "report obsolete version checks")
	flags.Var(newBoolValue(&r.Checks, config.MonotonicityCheck), "monotonicity",
		"report declarations weaker than their enclosing declarations")
	flags.Var(newBoolValue(&r.Behavior, config.ReportUnresolved), "unresolved", "report symbols with unreadable requirements")

	flags.Var(&heuristicValue{behavior: &r.Behavior}, "heuristics", "version checks recognized by name: trust, audit or off")

	flags.IntVar(&r.Workers, "workers", r.Workers, "parallel evaluations per package, 0 for unlimited")
}

// heuristicValue maps a [level.Heuristic] onto the behavior flags.
type heuristicValue struct {
	behavior *config.BitMask[config.Behavior]
}

// Set implements [flag.Value].
func (f *heuristicValue) Set(s string) error {
	var h level.Heuristic
	if err := h.UnmarshalText([]byte(s)); err != nil {
		return err
	}

	h.Apply(f.behavior)

	return nil
}

// String implements [flag.Value].
func (f *heuristicValue) String() string {
	if f == nil || f.behavior == nil {
		return ""
	}

	return f.level().String()
}

// Get implements [flag.Getter].
func (f *heuristicValue) Get() any { return f.level() }

func (f *heuristicValue) level() level.Heuristic {
	switch {
	case !f.behavior.Enabled(config.RecognizeHeuristics):
		return level.HeuristicOff

	case f.behavior.Enabled(config.AuditHeuristics):
		return level.HeuristicAudit

	default:
		return level.HeuristicTrust
	}
}
