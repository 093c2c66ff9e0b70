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

// Bound is the half-open range [Min, Max) of admissible levels on one axis.
// A Max of [Infinity] leaves the range unbounded.
type Bound struct {
	Axis Axis
	Min  Level
	Max  Level
}

func newBound(axis Axis, lo, hi Level) Bound {
	if lo.Less(Floor) {
		lo = Floor
	}

	return Bound{Axis: axis, Min: lo, Max: hi}
}

func (b Bound) empty() bool {
	return b.Min.Compare(b.Max) >= 0
}

func (b Bound) universal() bool {
	return !Floor.Less(b.Min) && b.Max == Infinity
}

// contains reports whether o is a subset of b.
func (b Bound) contains(o Bound) bool {
	return !o.Min.Less(b.Min) && !b.Max.Less(o.Max)
}

func (b Bound) intersect(o Bound) Bound {
	r := b
	if r.Min.Less(o.Min) {
		r.Min = o.Min
	}

	if o.Max.Less(r.Max) {
		r.Max = o.Max
	}

	return r
}

// admits reports whether level l lies in b.
func (b Bound) admits(l Level) bool {
	return !l.Less(b.Min) && l.Less(b.Max)
}

// LowerOnly reports whether b has no upper limit.
func (b Bound) LowerOnly() bool { return b.Max == Infinity }

func universe(axis Axis) Bound {
	return Bound{Axis: axis, Min: Floor, Max: Infinity}
}
