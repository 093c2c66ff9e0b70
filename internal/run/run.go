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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"go.uber.org/zap"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/apiguard/internal/astutil"
	"fillmore-labs.com/apiguard/internal/config"
	"fillmore-labs.com/apiguard/internal/guard"
	"fillmore-labs.com/apiguard/internal/report"
	"fillmore-labs.com/apiguard/internal/requirement"
	"fillmore-labs.com/apiguard/internal/usage"
	"fillmore-labs.com/apiguard/internal/verdict"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the apiguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("apiguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	platform, err := r.platformDescription()
	if err != nil {
		return nil, fmt.Errorf("apiguard: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "APIGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	logger := r.logger().With(zap.String("package", p.Pkg.Path()))
	logger.Debug("Analyzing package",
		zap.Strings("checks", config.Names(r.Checks)),
		zap.Strings("behavior", config.Names(r.Behavior)),
		zap.Stringer("baseline", platform.Baseline))

	// Stage 1: Build the scope arena and export the declared facts
	var us *usage.Collector

	trace.WithRegion(ctx, "Declarations", func() {
		us = usage.New(p, in.Root(), platform, usage.Options{Heuristics: r.Behavior.Enabled(config.RecognizeHeuristics)})
	})

	// Stage 2: Collect use sites and version checks
	files := r.collect(ctx, p, in, us)

	result := us.Result()

	reporter := report.New(p, platform.Axes, result.Arena, r.Checks, r.Behavior)
	for _, f := range files {
		reporter.AddFile(f)
	}

	for _, problem := range result.Problems {
		reporter.Problem(problem)
	}

	resolver := requirement.NewResolver(result.Requirements,
		requirement.WithDesugaring(platform.Desugared...),
		requirement.WithLogger(logger),
	)

	engine := verdict.New(platform.Baseline, result.Arena, resolver, guard.Options{
		TrustHeuristics: r.Behavior.Enabled(config.TrustHeuristics),
	})

	// Stage 3: Evaluate and report
	if err := engine.Run(ctx, result.Usages, result.Sites, reporter, r.Workers); err != nil {
		return nil, fmt.Errorf("apiguard: %w", err)
	}

	return nil, nil
}

// collect walks all function declarations of the files not excluded from analysis.
func (r *Options) collect(ctx context.Context, p *analysis.Pass, in *inspector.Inspector, us *usage.Collector) []astutil.CurrentFile {
	defer trace.StartRegion(ctx, "Collect").End()

	var files []astutil.CurrentFile

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		files = append(files, currentFile)

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if fun.Body == nil {
				continue
			}

			// Skip functions with nolint comment
			if fun.Doc != nil && astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1]) {
				continue
			}

			us.Function(c)
		}
	}

	return files
}
