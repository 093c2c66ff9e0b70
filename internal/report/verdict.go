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
	"strings"
	"unicode"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/apiguard/internal/config"
	"fillmore-labs.com/apiguard/internal/scope"
	"fillmore-labs.com/apiguard/internal/verdict"
)

// Verdict implements [verdict.Sink].
func (r *Reporter) Verdict(u verdict.Usage, v verdict.Verdict) {
	switch v.Outcome {
	case verdict.Violated:
		if r.checks.Enabled(config.ViolationCheck) {
			r.violation(u, v)
		}

	case verdict.Satisfied:
		if v.Confidence == verdict.Heuristic && r.behavior.Enabled(config.AuditHeuristics) {
			r.report(analysis.Diagnostic{
				Pos:      u.Pos,
				End:      u.End,
				Category: HeuristicGuard,
				Message:  fmt.Sprintf("%s is only guarded by a check recognized by its name: %s", capitalize(u.Kind.String()), u.Name),
			})
		}

	case verdict.Unresolved:
		if r.behavior.Enabled(config.ReportUnresolved) {
			r.report(analysis.Diagnostic{
				Pos:      u.Pos,
				End:      u.End,
				Category: Unresolved,
				Message:  fmt.Sprintf("Requirement of %s is unresolved: %s", u.Name, v.Note),
			})
		}
	}
}

func (r *Reporter) violation(u verdict.Usage, v verdict.Verdict) {
	category, kind := NewAPI, capitalize(u.Kind.String())
	if v.Severity == verdict.Soft {
		category, kind = InlinedAPI, "Inlined "+u.Kind.String()
	}

	var msg strings.Builder

	fmt.Fprintf(&msg, "%s requires %s (current min is %s): %s",
		kind, r.axes.FormatAlternative(v.Alternative), r.axes.MinString(v.Effective), u.Name)

	if v.Note != "" {
		msg.WriteString(" (")
		msg.WriteString(v.Note)
		msg.WriteString(")")
	}

	d := analysis.Diagnostic{
		Pos:      u.Pos,
		End:      u.End,
		Category: category,
		Message:  msg.String(),
	}

	if fix, ok := r.annotate(u.Scope, v); ok {
		d.SuggestedFixes = []analysis.SuggestedFix{fix}
	}

	r.report(d)
}

// annotate suggests declaring the missing requirement on the enclosing function.
func (r *Reporter) annotate(id scope.ID, v verdict.Verdict) (analysis.SuggestedFix, bool) {
	if v.Missing.Len() == 0 {
		return analysis.SuggestedFix{}, false
	}

	for _, rec := range r.arena.Chain(id) {
		if rec.Kind != scope.Func {
			continue
		}

		if !rec.Pos.IsValid() {
			break
		}

		text := r.axes.Text(v.Missing.Constraint())

		return analysis.SuggestedFix{
			Message: fmt.Sprintf("Declare %s as requiring %s", rec.Name, text),
			TextEdits: []analysis.TextEdit{{
				Pos:     rec.Pos,
				End:     rec.Pos,
				NewText: []byte("//apiguard:requires " + text + "\n"),
			}},
		}, true
	}

	return analysis.SuggestedFix{}, false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return string(unicode.ToUpper(rune(s[0]))) + s[1:]
}
