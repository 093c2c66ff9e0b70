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

// Package verdict judges use sites of versioned symbols against the constraints
// established by the baseline, enclosing declarations and version guards.
package verdict

import (
	"go/token"

	"fillmore-labs.com/apiguard/internal/constraint"
	"fillmore-labs.com/apiguard/internal/guard"
	"fillmore-labs.com/apiguard/internal/requirement"
	"fillmore-labs.com/apiguard/internal/scope"
)

//go:generate go tool stringer -type Kind,Outcome,Confidence,Severity,Direction,Evidence -linecomment -output kind_string.go

// Kind is the way a symbol is referenced.
type Kind uint8

const (
	Call         Kind = iota // call
	Constructor              // constructor call
	FieldRead                // field read
	TypeRef                  // type reference
	CatchType                // catch type
	SwitchCase               // switch case
	MethodRef                // method reference
	ImplicitCast             // implicit conversion
	ForEach                  // range loop
)

// Usage is a reference to a symbol that may have a requirement.
type Usage struct {
	Kind   Kind
	Symbol requirement.Symbol

	// Name is the symbol as shown in messages.
	Name string

	// Path holds the guard contexts from the use site outwards.
	Path []guard.Context

	// Scope is the innermost enclosing declaration.
	Scope scope.ID

	Pos, End token.Pos
}

// Site is a program point inside a version check, probed for redundant guards.
type Site struct {
	Path  []guard.Context
	Scope scope.ID
}

// Outcome is the decision for a [Usage].
type Outcome uint8

const (
	// Satisfied means the effective constraint implies the requirement.
	Satisfied Outcome = iota // satisfied

	// Violated means some supported version lacks the symbol.
	Violated // violated

	// Unresolved means the requirement could not be determined. It is treated as satisfied.
	Unresolved // unresolved
)

// Confidence qualifies a [Satisfied] outcome.
type Confidence uint8

const (
	Certain Confidence = iota // certain

	// Heuristic means only checks recognized by name establish the requirement.
	Heuristic // heuristic
)

// Severity classifies a [Violated] outcome.
type Severity uint8

const (
	// Hard violations fail at run time.
	Hard Severity = iota // hard

	// Soft violations embed a constant value that may be stale.
	Soft // soft
)

// Verdict is the decision for a [Usage].
type Verdict struct {
	Outcome Outcome

	// Required is the requirement of the symbol.
	Required constraint.Constraint

	// Sources are the declarations Required is combined from.
	Sources []string

	// Effective is the constraint known to hold at the use site.
	Effective constraint.Constraint

	// Via is the alternative of Required that is met.
	Via constraint.Alternative

	// Missing holds the still unmet bounds of the alternative chosen for reporting.
	Missing constraint.Alternative

	// Alternative is the alternative of Required Missing is taken from.
	Alternative constraint.Alternative

	Confidence Confidence
	Severity   Severity

	// Note explains unresolved or relaxed requirements.
	Note string
}

// Direction is the way a guard is redundant.
type Direction uint8

const (
	// AlwaysTrue guards are implied by the evidence.
	AlwaysTrue Direction = iota // always true

	// NeverTrue guards contradict the evidence.
	NeverTrue // never true

	// Degenerate guards compare for inequality with the lowest supported version.
	Degenerate // degenerate
)

// Evidence is the source that makes a guard redundant.
type Evidence uint8

const (
	Baseline   Evidence = iota // baseline
	Annotation                 // annotation
	Guard                      // enclosing check
)

// Redundancy is a version check with a fixed outcome.
type Redundancy struct {
	Check     guard.Found
	Pos       token.Pos
	Direction Direction
	Evidence  Evidence

	// Scope declares the requirement for [Annotation] evidence.
	Scope scope.ID

	// Given is the constraint deciding the check.
	Given constraint.Constraint
}

// Result is the outcome of [Engine.Evaluate].
type Result struct {
	Usage     Usage
	Verdict   Verdict
	Redundant []Redundancy
}

// Sink receives the findings of [Engine.Run].
type Sink interface {
	Verdict(u Usage, v Verdict)
	Redundant(r Redundancy)
	Monotonicity(v scope.Violation)
}
