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

package verdict

import (
	"cmp"
	"context"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/apiguard/internal/constraint"
	"fillmore-labs.com/apiguard/internal/guard"
	"fillmore-labs.com/apiguard/internal/requirement"
	"fillmore-labs.com/apiguard/internal/scope"
)

// Requirements resolves the requirement of a symbol. Implementations must be safe for concurrent use.
type Requirements interface {
	RequirementOf(sym requirement.Symbol) requirement.Requirement
}

// Engine evaluates usages against a baseline and a scope arena.
type Engine struct {
	baseline constraint.Constraint
	scopes   *scope.Arena
	reqs     Requirements
	opts     guard.Options
}

// New creates an [Engine]. scopes must not be modified while the engine is in use.
func New(baseline constraint.Constraint, scopes *scope.Arena, reqs Requirements, opts guard.Options) *Engine {
	if scopes == nil {
		scopes = &scope.Arena{}
	}

	return &Engine{baseline: baseline, scopes: scopes, reqs: reqs, opts: opts}
}

// Evaluate decides whether the symbol referenced by u is available at its use site.
func (e *Engine) Evaluate(u Usage) Result {
	floor := e.scopes.Resolve(u.Scope)
	given := e.baseline.And(floor.Constraint).Simplify()
	g := guard.Extract(u.Path, given, e.opts)
	effective := given.And(g.Constraint).Simplify()

	req := e.reqs.RequirementOf(u.Symbol)

	v := Verdict{
		Required:  req.Constraint,
		Sources:   req.Sources,
		Effective: effective,
		Note:      req.Note,
	}

	switch {
	case !req.Resolved:
		v.Outcome = Unresolved

	case req.Constraint.IsNone():
		v.Outcome = Satisfied

	case effective.Implies(req.Constraint):
		v.Outcome = Satisfied
		v.Via = via(effective, req.Constraint)

		if g.Heuristic && !given.And(g.Strict).Implies(req.Constraint) {
			v.Confidence = Heuristic
		}

	default:
		v.Outcome = Violated
		v.Alternative, v.Missing = missing(effective, req.Constraint)

		if u.Symbol.Inlined {
			v.Severity = Soft
		}
	}

	return Result{
		Usage:     u,
		Verdict:   v,
		Redundant: e.redundant(g.Guards, floor),
	}
}

// Probe returns the redundant checks on the path of s.
func (e *Engine) Probe(s Site) []Redundancy {
	floor := e.scopes.Resolve(s.Scope)
	given := e.baseline.And(floor.Constraint).Simplify()
	g := guard.Extract(s.Path, given, e.opts)

	return e.redundant(g.Guards, floor)
}

// via returns the first alternative of required implied by effective on its own.
func via(effective, required constraint.Constraint) constraint.Alternative {
	for _, alt := range required.Alternatives() {
		if effective.Implies(alt.Constraint()) {
			return alt
		}
	}

	for _, x := range effective.Alternatives() {
		for _, alt := range required.Alternatives() {
			if x.Constraint().Implies(alt.Constraint()) {
				return alt
			}
		}
	}

	return constraint.Alternative{}
}

// missing chooses the alternative of required to report and its unmet bounds.
//
// The default is the first alternative constraining the primary axis. A later
// alternative over several axes that lacks a single bound is preferred.
func missing(effective, required constraint.Constraint) (alt, unmet constraint.Alternative) {
	given := effective
	for _, x := range effective.Alternatives() {
		if c := x.Constraint(); !c.Implies(required) {
			given = c

			break
		}
	}

	chosen := -1

	for i, a := range required.Alternatives() {
		if _, ok := a.Bound(constraint.Primary); ok {
			chosen = i

			break
		}
	}

	if chosen < 0 {
		chosen = 0
	}

	for i, a := range required.Alternatives() {
		if i <= chosen || a.Len() < 2 {
			continue
		}

		if a.Missing(given).Len() == 1 {
			chosen = i

			break
		}
	}

	for i, a := range required.Alternatives() {
		if i == chosen {
			return a, a.Missing(given)
		}
	}

	return constraint.Alternative{}, constraint.Alternative{}
}

// redundant finds the checks decided by the baseline, the scope floor or enclosing checks.
func (e *Engine) redundant(found []guard.Found, floor scope.Floor) []Redundancy {
	var result []Redundancy

	for _, f := range found {
		if c, ok := f.Predicate.(guard.Check); ok && c.Tier == guard.HeuristicGuess {
			continue
		}

		r := Redundancy{Check: f, Pos: guard.Position(f.Predicate), Scope: scope.NoScope}

		if f.Degenerate {
			r.Direction = Degenerate
			r.Evidence, r.Given = Annotation, e.baseline.And(floor.Constraint)

			if c, ok := f.Predicate.(guard.Compare); ok && guard.Degenerate(c, e.baseline) {
				r.Evidence, r.Given = Baseline, e.baseline
			} else {
				r.Scope = lastStep(floor)
			}

			result = append(result, r)

			continue
		}

		if dir, ok := decide(f.Constraint, e.baseline); ok {
			r.Direction, r.Evidence, r.Given = dir, Baseline, e.baseline
			result = append(result, r)

			continue
		}

		if dir, id, given, ok := e.decideByScope(f.Constraint, floor); ok {
			r.Direction, r.Evidence, r.Scope, r.Given = dir, Annotation, id, given
			result = append(result, r)

			continue
		}

		if f.KnownStrict.IsNone() {
			continue
		}

		given := e.baseline.And(floor.Constraint).And(f.KnownStrict)
		if dir, ok := decide(f.Constraint, given); ok {
			r.Direction, r.Evidence, r.Given = dir, Guard, given
			result = append(result, r)
		}
	}

	return result
}

func (e *Engine) decideByScope(c constraint.Constraint, floor scope.Floor) (Direction, scope.ID, constraint.Constraint, bool) {
	for _, s := range floor.Steps {
		given := e.baseline.And(s.Floor)
		if dir, ok := decide(c, given); ok {
			return dir, s.Scope, given, true
		}
	}

	return 0, scope.NoScope, constraint.Constraint{}, false
}

func lastStep(floor scope.Floor) scope.ID {
	if len(floor.Steps) == 0 {
		return scope.NoScope
	}

	return floor.Steps[len(floor.Steps)-1].Scope
}

func decide(c, given constraint.Constraint) (Direction, bool) {
	switch {
	case given.IsNone():
		return 0, false

	case constraint.AlwaysTrue(c, given):
		return AlwaysTrue, true

	case constraint.AlwaysFalse(c, given):
		return NeverTrue, true

	default:
		return 0, false
	}
}

// Run evaluates usages and probes sites with up to workers goroutines, then reports
// the results to sink in input order followed by the redundant checks ordered by
// position and the monotonicity violations of the arena.
//
// Cancellation of ctx stops scheduling further evaluations; the completed results are
// still reported and the context error is returned.
func (e *Engine) Run(ctx context.Context, usages []Usage, sites []Site, sink Sink, workers int) error {
	ctx, task := trace.NewTask(ctx, "apiguard.verdict")
	defer task.End()

	results := make([]Result, len(usages))
	probes := make([][]Redundancy, len(sites))
	done := make([]bool, len(usages))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	trace.WithRegion(ctx, "evaluate", func() {
		for i, u := range usages {
			if gctx.Err() != nil {
				break
			}

			g.Go(func() error {
				results[i] = e.Evaluate(u)
				done[i] = true

				return nil
			})
		}

		for i, s := range sites {
			if gctx.Err() != nil {
				break
			}

			g.Go(func() error {
				probes[i] = e.Probe(s)

				return nil
			})
		}

		_ = g.Wait()
	})

	var redundant []Redundancy

	for i, r := range results {
		if !done[i] {
			continue
		}

		sink.Verdict(r.Usage, r.Verdict)
		redundant = append(redundant, r.Redundant...)
	}

	for _, p := range probes {
		redundant = append(redundant, p...)
	}

	for _, r := range dedupe(redundant) {
		sink.Redundant(r)
	}

	for _, v := range e.scopes.Violations() {
		sink.Monotonicity(v)
	}

	return ctx.Err()
}

// dedupe orders redundancies by position and keeps the first finding per check.
func dedupe(rs []Redundancy) []Redundancy {
	slices.SortStableFunc(rs, func(a, b Redundancy) int { return cmp.Compare(a.Pos, b.Pos) })

	return slices.CompactFunc(rs, func(a, b Redundancy) bool { return a.Pos == b.Pos })
}
