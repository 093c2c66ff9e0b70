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

package guard

import "fillmore-labs.com/apiguard/internal/constraint"

// evaluator computes the constraints a predicate establishes.
type evaluator struct {
	floor constraint.Constraint
	trust bool
}

// Eval returns the constraints known when p evaluates to true and to false.
//
// Opaque parts contribute no knowledge. With trust, name-based checks count as real.
// A "!=" comparison against the lowest level admitted by a lower-bound floor is
// degenerate and contributes nothing either.
func Eval(p Predicate, floor constraint.Constraint, trust bool) (pos, neg constraint.Constraint) {
	return evaluator{floor: floor, trust: trust}.eval(p)
}

func (e evaluator) eval(p Predicate) (pos, neg constraint.Constraint) {
	switch p := p.(type) {
	case Compare:
		if Degenerate(p, e.floor) {
			return constraint.None(), constraint.None()
		}

		c := p.Constraint()

		return c, c.Not()

	case Check:
		if p.Tier == HeuristicGuess && !e.trust {
			return constraint.None(), constraint.None()
		}

		return p.Constraint, p.Constraint.Not()

	case And:
		px, nx := e.eval(p.X)
		py, ny := e.eval(p.Y)

		return px.And(py), nx.Or(ny)

	case Or:
		px, nx := e.eval(p.X)
		py, ny := e.eval(p.Y)

		return px.Or(py), nx.And(ny)

	case Not:
		px, nx := e.eval(p.X)

		return nx, px

	default:
		return constraint.None(), constraint.None()
	}
}

// Degenerate reports whether c is "version != N" where N is the lowest level
// admitted by floor and floor also admits higher levels.
func Degenerate(c Compare, floor constraint.Constraint) bool {
	if c.Op != NE {
		return false
	}

	lo, ok := floor.MinOn(c.Axis)
	if !ok {
		return false
	}

	exact := constraint.Exactly(c.Axis, c.Level, c.Dotted)
	at, _ := exact.MinOn(c.Axis)

	return at == lo && !floor.Implies(exact)
}
