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

// Package guard extracts the platform version constraint established by
// the conditions dominating a use site.
//
// The host parser describes conditions as [Predicate] trees and the path from a
// use site to its function as [Context] values. [Extract] folds them into a
// constraint and records every version check it passes for redundancy checks.
package guard

import (
	"go/token"

	"fillmore-labs.com/apiguard/internal/constraint"
)

// Tier ranks how a version check was recognized.
type Tier uint8

//go:generate go tool stringer -type Tier,Op -linecomment
const (
	// Explicit checks are annotated with the version they test.
	Explicit Tier = iota // explicit

	// PlatformKnown checks are listed in the platform database or inferred from their body.
	PlatformKnown // known

	// HeuristicGuess checks are recognized by their name only.
	HeuristicGuess // heuristic
)

// Op is a comparison operator.
type Op uint8

// Comparison operators.
const (
	GE Op = iota // >=
	GT           // >
	LE           // <=
	LT           // <
	EQ           // ==
	NE           // !=
)

// flip returns the operator for swapped operands.
func (o Op) flip() Op {
	switch o {
	case GE:
		return LE
	case GT:
		return LT
	case LE:
		return GE
	case LT:
		return GT
	default:
		return o
	}
}

// Predicate is a condition tree.
type Predicate interface{ predicate() }

// Compare is a comparison of a version expression with a constant level.
type Compare struct {
	Axis   constraint.Axis
	Op     Op
	Level  constraint.Level
	Dotted bool
	Pos    token.Pos
}

// NewCompare normalizes "level op version" to "version op' level".
func NewCompare(axis constraint.Axis, op Op, level constraint.Level, dotted, versionOnLeft bool, pos token.Pos) Compare {
	if !versionOnLeft {
		op = op.flip()
	}

	return Compare{Axis: axis, Op: op, Level: level, Dotted: dotted, Pos: pos}
}

// Constraint returns the versions for which the comparison holds.
func (c Compare) Constraint() constraint.Constraint {
	switch c.Op {
	case GE:
		return constraint.AtLeast(c.Axis, c.Level)
	case GT:
		return constraint.Above(c.Axis, c.Level, c.Dotted)
	case LE:
		return constraint.AtMost(c.Axis, c.Level, c.Dotted)
	case LT:
		return constraint.Below(c.Axis, c.Level)
	case EQ:
		return constraint.Exactly(c.Axis, c.Level, c.Dotted)
	default:
		return constraint.NotEqual(c.Axis, c.Level, c.Dotted)
	}
}

// Check is a call to a function returning whether the platform satisfies Constraint.
type Check struct {
	Name       string
	Constraint constraint.Constraint
	Tier       Tier
	Pos        token.Pos
}

// And is "X && Y".
type And struct{ X, Y Predicate }

// Or is "X || Y".
type Or struct{ X, Y Predicate }

// Not is "!X".
type Not struct{ X Predicate }

// Opaque is a condition that says nothing about the platform version.
type Opaque struct{}

func (Compare) predicate() {}
func (Check) predicate()   {}
func (And) predicate()     {}
func (Or) predicate()      {}
func (Not) predicate()     {}
func (Opaque) predicate()  {}

// Position returns the position of a check or comparison, or [token.NoPos].
func Position(p Predicate) token.Pos {
	switch p := p.(type) {
	case Compare:
		return p.Pos
	case Check:
		return p.Pos
	default:
		return token.NoPos
	}
}

// IsVersionCheck reports whether p contains a comparison or check.
func IsVersionCheck(p Predicate) bool {
	switch p := p.(type) {
	case Compare, Check:
		return true
	case And:
		return IsVersionCheck(p.X) || IsVersionCheck(p.Y)
	case Or:
		return IsVersionCheck(p.X) || IsVersionCheck(p.Y)
	case Not:
		return IsVersionCheck(p.X)
	default:
		return false
	}
}
