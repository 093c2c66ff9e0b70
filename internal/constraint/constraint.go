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

// Package constraint implements the version constraint algebra.
//
// A [Constraint] is a disjunction of [Alternative]s, each a conjunction of
// per-axis half-open [Bound]s. Values are immutable and share their
// alternatives structurally, so they can be passed between goroutines freely.
//
// The zero value is [None], the constraint every version satisfies. [Never]
// is the impossible constraint, produced by contradictory guards.
package constraint

import (
	"iter"
	"slices"
)

// Constraint is an ordered disjunction of alternatives.
type Constraint struct {
	alts  []Alternative
	never bool
}

// None returns the constraint that imposes no requirement.
func None() Constraint { return Constraint{} }

// Never returns the unsatisfiable constraint.
func Never() Constraint { return Constraint{never: true} }

func fromBound(b Bound) Constraint {
	switch {
	case b.empty():
		return Never()

	case b.universal():
		return None()

	default:
		return Constraint{alts: []Alternative{single(b)}}
	}
}

// AtLeast returns axis >= level.
func AtLeast(axis Axis, level Level) Constraint {
	return fromBound(newBound(axis, level, Infinity))
}

// Below returns axis < level.
func Below(axis Axis, level Level) Constraint {
	return fromBound(newBound(axis, Floor, level))
}

// Range returns lo <= axis < hi.
func Range(axis Axis, lo, hi Level) Constraint {
	return fromBound(newBound(axis, lo, hi))
}

// Above returns axis > level. Without dotted only the major part of level is compared.
func Above(axis Axis, level Level, dotted bool) Constraint {
	if dotted {
		return AtLeast(axis, level.nextMinor())
	}

	return AtLeast(axis, Major(level.Major).nextMajor())
}

// AtMost returns axis <= level. Without dotted only the major part of level is compared.
func AtMost(axis Axis, level Level, dotted bool) Constraint {
	if dotted {
		return Below(axis, level.nextMinor())
	}

	return Below(axis, Major(level.Major).nextMajor())
}

// Exactly returns axis == level. Without dotted every minor level of level's major matches.
func Exactly(axis Axis, level Level, dotted bool) Constraint {
	if dotted {
		return Range(axis, level, level.nextMinor())
	}

	lo := Major(level.Major)

	return Range(axis, lo, lo.nextMajor())
}

// NotEqual returns axis != level.
func NotEqual(axis Axis, level Level, dotted bool) Constraint {
	return Exactly(axis, level, dotted).Not()
}

// IsNever reports whether c is unsatisfiable.
func (c Constraint) IsNever() bool { return c.never }

// IsNone reports whether c is satisfied by every version.
func (c Constraint) IsNone() bool {
	return !c.never && slices.ContainsFunc(c.alternatives(), Alternative.universal)
}

// Len returns the number of alternatives.
func (c Constraint) Len() int { return len(c.alternatives()) }

// Alternatives yields the alternatives of c in order.
func (c Constraint) Alternatives() iter.Seq2[int, Alternative] {
	return slices.All(c.alternatives())
}

func (c Constraint) alternatives() []Alternative {
	if !c.never && len(c.alts) == 0 {
		return []Alternative{{}}
	}

	return c.alts
}

// And returns the constraint satisfied when both c and o are satisfied.
//
// The alternatives of the result are the pairwise intersections in order;
// empty ones are dropped and exact duplicates collapse.
func (c Constraint) And(o Constraint) Constraint {
	switch {
	case c.never || o.never:
		return Never()

	case len(c.alts) == 0:
		return o

	case len(o.alts) == 0:
		return c
	}

	alts := make([]Alternative, 0, len(c.alts)*len(o.alts))

	for _, x := range c.alts {
		for _, y := range o.alts {
			z, ok := x.intersect(y)
			if !ok || slices.ContainsFunc(alts, z.equal) {
				continue
			}

			alts = append(alts, z)
		}
	}

	if len(alts) == 0 {
		return Never()
	}

	return Constraint{alts: alts}
}

// Or returns the constraint satisfied when c or o is satisfied.
func (c Constraint) Or(o Constraint) Constraint {
	switch {
	case c.never:
		return o

	case o.never:
		return c
	}

	x, y := c.alternatives(), o.alternatives()

	alts := make([]Alternative, 0, len(x)+len(y))
	alts = append(alts, x...)
	alts = append(alts, y...)

	return Constraint{alts: alts}
}

// Implies reports whether every alternative of c lies within some alternative of o.
func (c Constraint) Implies(o Constraint) bool {
	switch {
	case c.never:
		return true

	case o.never:
		return false
	}

	targets := o.alternatives()

	for _, x := range c.alternatives() {
		if !slices.ContainsFunc(targets, func(y Alternative) bool { return x.within(y) }) {
			return false
		}
	}

	return true
}

// Equivalent reports whether c and o imply each other.
func (c Constraint) Equivalent(o Constraint) bool {
	return c.Implies(o) && o.Implies(c)
}

// Not returns the negation of c, as needed for else branches and failed guards.
func (c Constraint) Not() Constraint {
	if c.never {
		return None()
	}

	result := None()
	for _, x := range c.alternatives() {
		result = result.And(x.complement())
		if result.never {
			break
		}
	}

	return result.Simplify()
}

// Simplify removes alternatives implied by another alternative, keeping the first
// of equivalent ones. The result is equivalent to c.
func (c Constraint) Simplify() Constraint {
	if c.never || len(c.alts) < 2 {
		return c
	}

	kept := make([]Alternative, 0, len(c.alts))

	for i, x := range c.alts {
		subsumed := false

		for j, y := range c.alts {
			if i == j || !x.within(y) {
				continue
			}

			if j < i || !y.within(x) {
				subsumed = true

				break
			}
		}

		if !subsumed {
			kept = append(kept, x)
		}
	}

	if slices.ContainsFunc(kept, Alternative.universal) {
		return None()
	}

	return Constraint{alts: kept}
}

// Conjunction folds cs with [Constraint.And].
func Conjunction(cs ...Constraint) Constraint {
	result := None()
	for _, c := range cs {
		result = result.And(c)
	}

	return result
}

// Disjunction folds cs with [Constraint.Or].
func Disjunction(cs ...Constraint) Constraint {
	result := Never()
	for _, c := range cs {
		result = result.Or(c)
	}

	return result
}

// AlwaysTrue reports whether guard holds whenever given holds.
func AlwaysTrue(guard, given Constraint) bool {
	return given.Implies(guard)
}

// AlwaysFalse reports whether guard can never hold together with given.
func AlwaysFalse(guard, given Constraint) bool {
	return given.And(guard).never
}

// MinOn returns the lowest level on axis admitted by any alternative of c.
func (c Constraint) MinOn(axis Axis) (Level, bool) {
	if c.never {
		return Level{}, false
	}

	lo := Infinity
	for _, a := range c.alternatives() {
		if b := a.on(axis); b.Min.Less(lo) {
			lo = b.Min
		}
	}

	return lo, true
}

// admits reports whether the version assignment satisfies c.
func (c Constraint) admits(version func(Axis) Level) bool {
	return slices.ContainsFunc(c.alternatives(), func(a Alternative) bool { return a.admits(version) })
}
