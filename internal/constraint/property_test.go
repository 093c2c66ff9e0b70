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

package constraint_test

import (
	"math/rand/v2"
	"testing"

	. "fillmore-labs.com/apiguard/internal/constraint"
)

// point is a version assignment on the primary and one extension axis.
type point struct{ primary, extension Level }

func (p point) version(axis Axis) Level {
	if axis == Primary {
		return p.primary
	}

	return p.extension
}

func grid() []point {
	var levels []Level
	for major := int32(1); major <= 12; major++ {
		for minor := int32(0); minor <= 2; minor++ {
			levels = append(levels, Level{Major: major, Minor: minor})
		}
	}

	ps := make([]point, 0, len(levels)*len(levels))
	for _, x := range levels {
		for _, y := range levels {
			ps = append(ps, point{x, y})
		}
	}

	return ps
}

type generator struct{ r *rand.Rand }

func (g generator) level() Level {
	l := Level{Major: 1 + g.r.Int32N(11)}
	if g.r.IntN(4) == 0 {
		l.Minor = g.r.Int32N(3)
	}

	return l
}

func (g generator) atom() Constraint {
	axis := Primary
	if g.r.IntN(3) == 0 {
		axis = ext
	}

	l, dotted := g.level(), g.r.IntN(2) == 0

	switch g.r.IntN(7) {
	case 0:
		return AtLeast(axis, l)
	case 1:
		return Below(axis, l)
	case 2:
		return Above(axis, l, dotted)
	case 3:
		return AtMost(axis, l, dotted)
	case 4:
		return Exactly(axis, l, dotted)
	case 5:
		return NotEqual(axis, l, dotted)
	default:
		return Range(axis, l, g.level())
	}
}

func (g generator) constraint(depth int) Constraint {
	if depth == 0 {
		return g.atom()
	}

	switch g.r.IntN(4) {
	case 0:
		return g.constraint(depth - 1).And(g.constraint(depth - 1))
	case 1:
		return g.constraint(depth - 1).Or(g.constraint(depth - 1))
	case 2:
		return g.constraint(depth - 1).Not()
	default:
		return g.atom()
	}
}

func TestAlgebraLaws(t *testing.T) {
	t.Parallel()

	g := generator{rand.New(rand.NewPCG(1, 2))}
	points := grid()

	for range 300 {
		a, b, c := g.constraint(2), g.constraint(2), g.constraint(2)

		for _, p := range points {
			inA, inB := a.Admits(p.version), b.Admits(p.version)

			if got := a.And(b).Admits(p.version); got != (inA && inB) {
				t.Fatalf("(%s).And(%s) admits %v = %t", a, b, p, got)
			}

			if got := a.Or(b).Admits(p.version); got != (inA || inB) {
				t.Fatalf("(%s).Or(%s) admits %v = %t", a, b, p, got)
			}

			if got := a.Not().Admits(p.version); got == inA {
				t.Fatalf("(%s).Not() admits %v = %t", a, p, got)
			}

			if got := a.Simplify().Admits(p.version); got != inA {
				t.Fatalf("(%s).Simplify() admits %v = %t", a, p, got)
			}

			if a.Implies(b) && inA && !inB {
				t.Fatalf("(%s).Implies(%s), but %v is only admitted by the first", a, b, p)
			}
		}

		if !a.And(b).And(c).Equivalent(a.And(b.And(c))) {
			t.Errorf("And is not associative for %s, %s, %s", a, b, c)
		}

		if !a.And(b).Equivalent(b.And(a)) {
			t.Errorf("And is not commutative for %s, %s", a, b)
		}

		if !a.Or(b).Or(c).Equivalent(a.Or(b.Or(c))) {
			t.Errorf("Or is not associative for %s, %s, %s", a, b, c)
		}

		if !a.Or(b).Equivalent(b.Or(a)) {
			t.Errorf("Or is not commutative for %s, %s", a, b)
		}

		if !a.Implies(a) {
			t.Errorf("Implies is not reflexive for %s", a)
		}

		if a.Implies(b) && b.Implies(c) && !a.Implies(c) {
			t.Errorf("Implies is not transitive for %s, %s, %s", a, b, c)
		}

		if !a.And(None()).Equivalent(a) || !a.Or(Never()).Equivalent(a) {
			t.Errorf("Identity laws fail for %s", a)
		}

		if !a.And(Never()).IsNever() {
			t.Errorf("%s and never is satisfiable", a)
		}

		if !a.Or(a).Equivalent(a) {
			t.Errorf("Or is not idempotent for %s", a)
		}

		if !a.And(b).Implies(a) || !a.Implies(a.Or(b)) {
			t.Errorf("Absorption fails for %s, %s", a, b)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	g := generator{rand.New(rand.NewPCG(3, 4))}

	for range 300 {
		c := g.constraint(2)

		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s) failed: %v", c, err)
		}

		var got Constraint
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}

		if got.String() != string(text) {
			t.Errorf("Round trip of %q gives %q", text, got)
		}
	}
}
