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

package constraint

import (
	"cmp"
	"iter"
	"slices"
)

// Alternative is a conjunction of per-axis bounds, at most one per axis, sorted by axis.
//
// Bounds spanning a whole axis are not stored, so the Alternative without bounds
// admits every version.
type Alternative struct {
	bounds []Bound
}

func single(b Bound) Alternative {
	return Alternative{bounds: []Bound{b}}
}

// Bounds yields the bounds of this alternative in axis order.
func (a Alternative) Bounds() iter.Seq[Bound] {
	return slices.Values(a.bounds)
}

// Len returns the number of constrained axes.
func (a Alternative) Len() int { return len(a.bounds) }

// Bound returns the bound on axis, if constrained.
func (a Alternative) Bound(axis Axis) (Bound, bool) {
	i, ok := slices.BinarySearchFunc(a.bounds, axis, func(b Bound, axis Axis) int { return cmp.Compare(b.Axis, axis) })
	if !ok {
		return Bound{}, false
	}

	return a.bounds[i], true
}

// on returns the bound on axis, or the whole axis.
func (a Alternative) on(axis Axis) Bound {
	if b, ok := a.Bound(axis); ok {
		return b
	}

	return universe(axis)
}

func (a Alternative) universal() bool { return len(a.bounds) == 0 }

// intersect merges both sorted bound lists, returning false when the intersection is empty.
func (a Alternative) intersect(o Alternative) (Alternative, bool) {
	switch {
	case len(a.bounds) == 0:
		return o, true

	case len(o.bounds) == 0:
		return a, true
	}

	bounds := make([]Bound, 0, len(a.bounds)+len(o.bounds))

	i, j := 0, 0
	for i < len(a.bounds) && j < len(o.bounds) {
		x, y := a.bounds[i], o.bounds[j]

		switch {
		case x.Axis < y.Axis:
			bounds = append(bounds, x)
			i++

		case y.Axis < x.Axis:
			bounds = append(bounds, y)
			j++

		default:
			z := x.intersect(y)
			if z.empty() {
				return Alternative{}, false
			}

			bounds = append(bounds, z)
			i++
			j++
		}
	}

	bounds = append(bounds, a.bounds[i:]...)
	bounds = append(bounds, o.bounds[j:]...)

	return Alternative{bounds: bounds}, true
}

// within reports whether every version admitted by a is admitted by o.
func (a Alternative) within(o Alternative) bool {
	for _, b := range o.bounds {
		if !b.contains(a.on(b.Axis)) {
			return false
		}
	}

	return true
}

func (a Alternative) equal(o Alternative) bool {
	return slices.Equal(a.bounds, o.bounds)
}

// Constraint returns the single-alternative constraint a.
func (a Alternative) Constraint() Constraint {
	if a.universal() {
		return None()
	}

	return Constraint{alts: []Alternative{a}}
}

// Missing returns the bounds of a that are not already implied by given.
func (a Alternative) Missing(given Constraint) Alternative {
	var bounds []Bound

	for _, b := range a.bounds {
		if !given.Implies(single(b).Constraint()) {
			bounds = append(bounds, b)
		}
	}

	return Alternative{bounds: bounds}
}

// complement returns the versions not admitted by a, one alternative per open side.
func (a Alternative) complement() Constraint {
	var alts []Alternative

	for _, b := range a.bounds {
		if Floor.Less(b.Min) {
			alts = append(alts, single(Bound{Axis: b.Axis, Min: Floor, Max: b.Min}))
		}

		if b.Max != Infinity {
			alts = append(alts, single(Bound{Axis: b.Axis, Min: b.Max, Max: Infinity}))
		}
	}

	if len(alts) == 0 {
		return Never()
	}

	return Constraint{alts: alts}
}

func (a Alternative) admits(version func(Axis) Level) bool {
	for _, b := range a.bounds {
		if !b.admits(version(b.Axis)) {
			return false
		}
	}

	return true
}
