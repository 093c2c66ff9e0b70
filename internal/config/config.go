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

package config

import "strconv"

// Checks selects the findings to report.
type Checks uint8

const (
	// ViolationCheck reports references to symbols that are unavailable on some supported versions.
	ViolationCheck Checks = 1 << iota

	// RedundantCheck reports version checks with a fixed outcome.
	RedundantCheck

	// MonotonicityCheck reports declarations weaker than their enclosing declarations.
	MonotonicityCheck
)

// DefaultChecks are the checks enabled by default.
func DefaultChecks() BitMask[Checks] {
	return NewBitMask(ViolationCheck, RedundantCheck, MonotonicityCheck)
}

func (c Checks) String() string {
	switch c {
	case ViolationCheck:
		return "violations"
	case RedundantCheck:
		return "redundant"
	case MonotonicityCheck:
		return "monotonicity"
	default:
		return "Checks(" + strconv.Itoa(int(c)) + ")"
	}
}

// Behavior represents configuration options for the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// RecognizeHeuristics enables recognizing version checks by function name.
	RecognizeHeuristics

	// TrustHeuristics lets checks recognized by name satisfy requirements.
	TrustHeuristics

	// AuditHeuristics reports requirements only satisfied by checks recognized by name.
	AuditHeuristics

	// ReportUnresolved reports symbols whose requirement could not be read.
	ReportUnresolved
)

func (b Behavior) String() string {
	switch b {
	case IncludeGenerated:
		return "generated"
	case RecognizeHeuristics:
		return "recognize-heuristics"
	case TrustHeuristics:
		return "trust-heuristics"
	case AuditHeuristics:
		return "audit-heuristics"
	case ReportUnresolved:
		return "unresolved"
	default:
		return "Behavior(" + strconv.Itoa(int(b)) + ")"
	}
}

// Names lists the names of the enabled flags.
func Names[T interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
	String() string
}](b BitMask[T]) []string {
	var names []string
	for f := range b.Flags() {
		names = append(names, f.String())
	}

	return names
}
