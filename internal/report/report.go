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

// Package report renders the findings of the verdict engine as analysis diagnostics.
package report

import (
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/apiguard/internal/astutil"
	"fillmore-labs.com/apiguard/internal/axis"
	"fillmore-labs.com/apiguard/internal/config"
	"fillmore-labs.com/apiguard/internal/scope"
	"fillmore-labs.com/apiguard/internal/usage"
	"fillmore-labs.com/apiguard/internal/verdict"
)

// Diagnostic categories.
const (
	NewAPI         = "new-api"
	InlinedAPI     = "inlined-api"
	ObsoleteCheck  = "obsolete-version-check"
	Monotonicity   = "monotonicity"
	HeuristicGuard = "heuristic-guard"
	Unresolved     = "unresolved"
	Directive      = "directive"
)

// Reporter is a [verdict.Sink] emitting diagnostics to an analysis pass.
//
// Findings outside of the registered files or suppressed by a //nolint:apiguard
// comment are dropped.
type Reporter struct {
	// Pass is an embedded [analysis.Pass] for position information and reporting
	*analysis.Pass

	axes     *axis.Registry
	arena    *scope.Arena
	files    []astutil.CurrentFile
	checks   config.BitMask[config.Checks]
	behavior config.BitMask[config.Behavior]
}

var _ verdict.Sink = (*Reporter)(nil)

// New creates a [Reporter] for findings in the scopes of arena.
func New(p *analysis.Pass, axes *axis.Registry, arena *scope.Arena, checks config.BitMask[config.Checks], behavior config.BitMask[config.Behavior]) *Reporter {
	return &Reporter{Pass: p, axes: axes, arena: arena, checks: checks, behavior: behavior}
}

// AddFile registers a file whose findings are reported.
func (r *Reporter) AddFile(f astutil.CurrentFile) {
	r.files = append(r.files, f)
}

// Problem reports a malformed directive.
func (r *Reporter) Problem(p usage.Problem) {
	r.report(analysis.Diagnostic{Pos: p.Pos, Category: Directive, Message: p.Message})
}

func (r *Reporter) report(d analysis.Diagnostic) {
	f, ok := r.file(d.Pos)
	if !ok || f.NoLintComment(d.Pos) {
		return
	}

	r.Report(d)
}

func (r *Reporter) file(pos token.Pos) (astutil.CurrentFile, bool) {
	for _, f := range r.files {
		if f.Contains(pos) {
			return f, true
		}
	}

	return astutil.CurrentFile{}, false
}
