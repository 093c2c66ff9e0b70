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

// Options configure [Extract].
type Options struct {
	// TrustHeuristics counts checks recognized by name only.
	TrustHeuristics bool
}

// Found is a version check passed on the way to a use site.
type Found struct {
	// Predicate is the [Compare] or [Check].
	Predicate Predicate

	// Constraint holds when the check evaluates to true.
	Constraint constraint.Constraint

	// Known is established by the conditions evaluated before this check.
	Known constraint.Constraint

	// KnownStrict is Known without name-based checks.
	KnownStrict constraint.Constraint

	// Degenerate marks a "!=" comparison at the lower bound of the floor.
	Degenerate bool
}

// Result is the outcome of [Extract].
type Result struct {
	// Constraint is the conjunction of all active guards.
	Constraint constraint.Constraint

	// Strict is Constraint without name-based checks.
	Strict constraint.Constraint

	// Heuristic is set when a name-based check was passed.
	Heuristic bool

	// Guards lists the checks passed, outermost first.
	Guards []Found
}

// Extract folds the contexts of path, given innermost first, into the constraint
// established at the use site. floor is the baseline and scope requirement.
func Extract(path []Context, floor constraint.Constraint, opts Options) Result {
	x := extractor{
		trusting: evaluator{floor: floor, trust: opts.TrustHeuristics},
		strict:   evaluator{floor: floor, trust: false},
		floor:    floor,
	}

	for i := len(path) - 1; i >= 0; i-- {
		x.enter(path[i])
	}

	return Result{
		Constraint: x.known,
		Strict:     x.knownStrict,
		Heuristic:  x.heuristic,
		Guards:     x.guards,
	}
}

type extractor struct {
	trusting, strict   evaluator
	floor              constraint.Constraint
	known, knownStrict constraint.Constraint
	heuristic          bool
	guards             []Found
}

// contribution tracks a constraint under both evaluators.
type contribution struct {
	trusting, strict constraint.Constraint
}

func (c contribution) and(o contribution) contribution {
	return contribution{c.trusting.And(o.trusting), c.strict.And(o.strict)}
}

func (x *extractor) eval(p Predicate) (pos, neg contribution) {
	pt, nt := x.trusting.eval(p)
	ps, ns := x.strict.eval(p)

	return contribution{pt, ps}, contribution{nt, ns}
}

func (x *extractor) enter(ctx Context) {
	var c contribution

	switch ctx := ctx.(type) {
	case Branch:
		x.collect(ctx.Cond, x.current())

		pos, neg := x.eval(ctx.Cond)
		if ctx.Then {
			c = pos
		} else {
			c = neg
		}

	case Chain:
		c = x.chain(ctx)

	case Case:
		c = x.cases(ctx)

	case Catch:
		x.collect(ctx.Guard, x.current())
		c, _ = x.eval(ctx.Guard)

	case Block:
		c = x.block(ctx)

	default:
		return
	}

	x.known = x.known.And(c.trusting).Simplify()
	x.knownStrict = x.knownStrict.And(c.strict).Simplify()
}

func (x *extractor) chain(ctx Chain) contribution {
	var c contribution

	for _, operand := range ctx.Operands[:min(ctx.Index, len(ctx.Operands))] {
		x.collect(operand, x.current().and(c))

		pos, neg := x.eval(operand)
		if ctx.Op == AndChain {
			c = c.and(pos)
		} else {
			c = c.and(neg)
		}
	}

	return c
}

func (x *extractor) cases(ctx Case) contribution {
	var (
		c       contribution
		current Predicate
	)

	if ctx.Index >= 0 && ctx.Index < len(ctx.Clauses) {
		current = ctx.Clauses[ctx.Index]
	}

	for i, clause := range ctx.Clauses {
		if clause == nil || current != nil && i >= ctx.Index {
			continue
		}

		x.collect(clause, x.current().and(c))

		_, neg := x.eval(clause)
		c = c.and(neg)
	}

	if current != nil {
		x.collect(current, x.current().and(c))

		pos, _ := x.eval(current)
		c = c.and(pos)
	}

	if ctx.Fallthrough {
		return contribution{}
	}

	return c
}

func (x *extractor) block(ctx Block) contribution {
	var c contribution

	for _, exit := range ctx.Exits {
		x.collect(exit.Cond, x.current().and(c))

		pos, neg := x.eval(exit.Cond)
		if exit.ExitsWhen {
			c = c.and(neg)
		} else {
			c = c.and(pos)
		}
	}

	return c
}

func (x *extractor) current() contribution {
	return contribution{x.known, x.knownStrict}
}

// collect records the checks in p, each with the knowledge established before it is evaluated.
func (x *extractor) collect(p Predicate, known contribution) {
	switch p := p.(type) {
	case Compare:
		x.guards = append(x.guards, Found{
			Predicate:   p,
			Constraint:  p.Constraint(),
			Known:       known.trusting,
			KnownStrict: known.strict,
			Degenerate:  Degenerate(p, x.floor),
		})

	case Check:
		if p.Tier == HeuristicGuess {
			x.heuristic = true
		}

		x.guards = append(x.guards, Found{Predicate: p, Constraint: p.Constraint, Known: known.trusting, KnownStrict: known.strict})

	case And:
		x.collect(p.X, known)
		pos, _ := x.eval(p.X)
		x.collect(p.Y, known.and(pos))

	case Or:
		x.collect(p.X, known)
		_, neg := x.eval(p.X)
		x.collect(p.Y, known.and(neg))

	case Not:
		x.collect(p.X, known)
	}
}
