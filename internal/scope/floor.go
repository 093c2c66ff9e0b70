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

package scope

import (
	"slices"

	"fillmore-labs.com/apiguard/internal/constraint"
)

// Floor is the requirement established inside a scope by its enclosing declarations.
type Floor struct {
	// Constraint is the accumulated floor.
	Constraint constraint.Constraint

	// Steps lists the floor after each scope, outermost first.
	Steps []Step

	// Violations lists the declarations weaker than the floor established around them.
	Violations []Violation
}

// Step is the floor after folding in one scope.
type Step struct {
	Scope ID
	Floor constraint.Constraint
}

// Violation is an inner declaration strictly weaker than the enclosing floor.
type Violation struct {
	// Scope declares the weaker requirement.
	Scope ID

	// Declared is the weaker requirement.
	Declared Declared

	// Outer is the floor in effect around Scope.
	Outer constraint.Constraint

	// Evidence is the outermost scope whose floor already implies Declared.
	Evidence ID
}

// Resolve folds the requirements declared on id and its ancestors, outermost first.
//
// Each scope narrows the floor with the conjunction of its declarations. The floor
// never decreases: a declaration strictly weaker than the floor around it is recorded
// as a [Violation] and leaves the floor unchanged.
func (a *Arena) Resolve(id ID) Floor {
	var chain []ID
	for id := range a.Chain(id) {
		chain = append(chain, id)
	}

	slices.Reverse(chain)

	floor := Floor{Constraint: constraint.None(), Steps: make([]Step, 0, len(chain))}

	for _, id := range chain {
		r := a.records[id]

		for _, d := range r.Declared {
			if weaker(d.Constraint, floor.Constraint) {
				floor.Violations = append(floor.Violations, Violation{
					Scope:    id,
					Declared: d,
					Outer:    floor.Constraint,
					Evidence: evidence(floor.Steps, d.Constraint),
				})
			}
		}

		if len(r.Declared) > 0 {
			floor.Constraint = floor.Constraint.And(r.Own()).Simplify()
		}

		floor.Steps = append(floor.Steps, Step{Scope: id, Floor: floor.Constraint})
	}

	return floor
}

// Violations lists the violations of all scopes in the arena, each once.
func (a *Arena) Violations() []Violation {
	var violations []Violation

	for id := range a.records {
		f := a.Resolve(ID(id))
		for _, v := range f.Violations {
			if v.Scope == ID(id) {
				violations = append(violations, v)
			}
		}
	}

	return violations
}

// weaker reports whether d is implied by, but does not imply, floor.
func weaker(d, floor constraint.Constraint) bool {
	return floor.Implies(d) && !d.Implies(floor)
}

func evidence(steps []Step, d constraint.Constraint) ID {
	for _, s := range steps {
		if s.Floor.Implies(d) {
			return s.Scope
		}
	}

	return NoScope
}
