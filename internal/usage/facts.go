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

package usage

import (
	"fmt"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/apiguard/internal/constraint"
	"fillmore-labs.com/apiguard/internal/guard"
	"fillmore-labs.com/apiguard/internal/requirement"
	"fillmore-labs.com/apiguard/internal/symbol"
)

// RequirementFact is exported for functions and types that declare the platform versions they need.
type RequirementFact struct {
	Constraint constraint.Constraint
}

// AFact implements [analysis.Fact].
func (*RequirementFact) AFact() {}

func (f *RequirementFact) String() string { return "requires " + f.Constraint.String() }

// CheckFact is exported for boolean functions returning whether the running
// platform satisfies Constraint, and for functions calling a function argument
// only when it does.
type CheckFact struct {
	Constraint constraint.Constraint

	// Param is the index of the argument holding the checked level on Axis, or [NoArgument].
	Param int
	Axis  constraint.Axis
	Scale int32

	// Lambda is the index of the function argument called when the check holds, or [NoArgument].
	Lambda int

	// Inferred marks checks derived from the function body instead of a directive.
	Inferred bool
}

func newCheckFact(c constraint.Constraint, inferred bool) *CheckFact {
	return &CheckFact{Constraint: c, Param: NoArgument, Lambda: NoArgument, Inferred: inferred}
}

// AFact implements [analysis.Fact].
func (*CheckFact) AFact() {}

func (f *CheckFact) String() string {
	var sb strings.Builder

	sb.WriteString("checks ")

	if f.Param >= 0 {
		fmt.Fprintf(&sb, "argument %d", f.Param)
	} else {
		sb.WriteString(f.Constraint.String())
	}

	if f.Lambda >= 0 {
		fmt.Fprintf(&sb, " before calling argument %d", f.Lambda)
	}

	if f.Inferred {
		sb.WriteString(" (inferred)")
	}

	return sb.String()
}

// fixed reports whether f is a boolean check of a constant constraint.
func (f *CheckFact) fixed() bool { return f.Param < 0 && f.Lambda < 0 }

// Facts are the fact types exported by the analyzer.
func Facts() []analysis.Fact {
	return []analysis.Fact{new(RequirementFact), new(CheckFact)}
}

// factIndex holds the facts of this and all imported packages by symbol key.
type factIndex struct {
	requires requirement.Map
	explicit map[string]constraint.Constraint
	inferred map[string]constraint.Constraint

	// arguments holds the checks taking their level as an argument or guarding a callback.
	arguments map[string]*CheckFact
}

func newFactIndex() factIndex {
	return factIndex{
		requires:  make(requirement.Map),
		explicit:  make(map[string]constraint.Constraint),
		inferred:  make(map[string]constraint.Constraint),
		arguments: make(map[string]*CheckFact),
	}
}

// declared reports whether a check fact for key was declared by a directive.
func (x factIndex) declared(key string) bool {
	if _, ok := x.explicit[key]; ok {
		return true
	}

	f, ok := x.arguments[key]

	return ok && !f.Inferred
}

// load adds all facts visible to the pass.
func (x factIndex) load(p *analysis.Pass) {
	for _, f := range p.AllObjectFacts() {
		x.add(f.Object, f.Fact)
	}
}

func (x factIndex) add(obj types.Object, fact analysis.Fact) {
	key, ok := symbol.ObjectKey(obj)
	if !ok {
		return
	}

	switch fact := fact.(type) {
	case *RequirementFact:
		x.requires.Add(key.String(), fact.Constraint)

	case *CheckFact:
		switch {
		case !fact.fixed():
			x.arguments[key.String()] = fact

		case fact.Inferred:
			x.inferred[key.String()] = fact.Constraint

		default:
			x.explicit[key.String()] = fact.Constraint
		}
	}
}

// lookup consults the maps in order.
func lookup(ms ...map[string]constraint.Constraint) guard.Lookup {
	return func(key string) (constraint.Constraint, bool) {
		for _, m := range ms {
			if c, ok := m[key]; ok {
				return c, true
			}
		}

		return constraint.Constraint{}, false
	}
}
