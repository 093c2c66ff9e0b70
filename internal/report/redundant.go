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

package report

import (
	"fmt"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/apiguard/internal/config"
	"fillmore-labs.com/apiguard/internal/guard"
	"fillmore-labs.com/apiguard/internal/scope"
	"fillmore-labs.com/apiguard/internal/verdict"
)

// Redundant implements [verdict.Sink].
func (r *Reporter) Redundant(red verdict.Redundancy) {
	if !r.checks.Enabled(config.RedundantCheck) || !red.Pos.IsValid() {
		return
	}

	r.report(analysis.Diagnostic{
		Pos:      red.Pos,
		Category: ObsoleteCheck,
		Message:  fmt.Sprintf("Obsolete version check %s is %s: %s", r.checkText(red.Check), red.Direction, r.evidence(red)),
	})
}

func (r *Reporter) checkText(f guard.Found) string {
	switch p := f.Predicate.(type) {
	case guard.Compare:
		prefix := ""
		if !r.axes.IsPrimary(p.Axis) {
			prefix = r.axes.Name(p.Axis)
		}

		return prefix + p.Op.String() + p.Level.String()

	case guard.Check:
		return p.Name + "()"

	default:
		return r.axes.Text(f.Constraint)
	}
}

func (r *Reporter) evidence(red verdict.Redundancy) string {
	given := r.axes.Format(red.Given)

	switch red.Evidence {
	case verdict.Annotation:
		if rec, ok := r.arena.Record(red.Scope); ok {
			return fmt.Sprintf("%s %s requires %s", rec.Kind, name(rec), given)
		}

		return "enclosing declaration requires " + given

	case verdict.Guard:
		return "enclosing check establishes " + given

	default:
		return "minimum is " + given
	}
}

// Monotonicity implements [verdict.Sink].
func (r *Reporter) Monotonicity(v scope.Violation) {
	if !r.checks.Enabled(config.MonotonicityCheck) {
		return
	}

	rec, ok := r.arena.Record(v.Scope)
	if !ok {
		return
	}

	pos := v.Declared.Pos
	if !pos.IsValid() {
		pos = rec.Pos
	}

	outer := r.axes.Format(v.Outer)
	if ev, ok := r.arena.Record(v.Evidence); ok {
		outer += fmt.Sprintf(" required by %s %s", ev.Kind, name(ev))
	}

	r.report(analysis.Diagnostic{
		Pos:      pos,
		Category: Monotonicity,
		Message: fmt.Sprintf("%s %s of %s %s is weaker than %s",
			capitalize(v.Declared.Source.String()), r.axes.Text(v.Declared.Constraint), rec.Kind, name(rec), outer),
	})
}

func name(rec scope.Record) string {
	if rec.Name == "" {
		return "<anonymous>"
	}

	return rec.Name
}
