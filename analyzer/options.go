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

package analyzer

import (
	"log/slog"

	"go.uber.org/zap"

	"fillmore-labs.com/apiguard/analyzer/level"
	"fillmore-labs.com/apiguard/internal/config"
	"fillmore-labs.com/apiguard/internal/run"
)

// Option configures specific behavior of a [New] apiguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithConfig is an [Option] to load the platform description from a YAML file.
func WithConfig(path string) Option { return configOption{path: path} }

type configOption struct{ path string }

func (o configOption) apply(r *run.Options) {
	r.ConfigPath = o.path
}

func (o configOption) LogAttr() slog.Attr {
	return slog.String("config", o.path)
}

// WithPlatform is an [Option] to use a preloaded platform description.
func WithPlatform(platform *config.Platform) Option { return platformOption{platform: platform} }

type platformOption struct{ platform *config.Platform }

func (o platformOption) apply(r *run.Options) {
	r.Platform = o.platform
}

func (o platformOption) LogAttr() slog.Attr {
	if o.platform == nil {
		return slog.String("platform", "<nil>")
	}

	return slog.Int("platform", len(o.platform.Symbols))
}

// WithBaseline is an [Option] to override the minimum supported versions, e.g. ">=24".
func WithBaseline(baseline string) Option { return baselineOption{baseline: baseline} }

type baselineOption struct{ baseline string }

func (o baselineOption) apply(r *run.Options) {
	r.Baseline = o.baseline
}

func (o baselineOption) LogAttr() slog.Attr {
	return slog.String("baseline", o.baseline)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithViolations is an [Option] to configure whether unguarded API uses are reported.
func WithViolations(violations bool) Option { return violationsOption{violations: violations} }

type violationsOption struct{ violations bool }

func (o violationsOption) apply(r *run.Options) {
	r.Checks.Set(config.ViolationCheck, o.violations)
}

func (o violationsOption) LogAttr() slog.Attr {
	return slog.Bool("violations", o.violations)
}

// WithRedundant is an [Option] to configure whether obsolete version checks are reported.
func WithRedundant(redundant bool) Option { return redundantOption{redundant: redundant} }

type redundantOption struct{ redundant bool }

func (o redundantOption) apply(r *run.Options) {
	r.Checks.Set(config.RedundantCheck, o.redundant)
}

func (o redundantOption) LogAttr() slog.Attr {
	return slog.Bool("redundant", o.redundant)
}

// WithMonotonicity is an [Option] to configure whether declarations weaker than their
// enclosing declarations are reported.
func WithMonotonicity(monotonicity bool) Option { return monotonicityOption{monotonicity: monotonicity} }

type monotonicityOption struct{ monotonicity bool }

func (o monotonicityOption) apply(r *run.Options) {
	r.Checks.Set(config.MonotonicityCheck, o.monotonicity)
}

func (o monotonicityOption) LogAttr() slog.Attr {
	return slog.Bool("monotonicity", o.monotonicity)
}

// WithHeuristics is an [Option] to configure how version checks recognized by their name are treated.
func WithHeuristics(heuristics level.Heuristic) Option {
	return heuristicsOption{heuristics: heuristics}
}

type heuristicsOption struct{ heuristics level.Heuristic }

func (o heuristicsOption) apply(r *run.Options) {
	o.heuristics.Apply(&r.Behavior)
}

func (o heuristicsOption) LogAttr() slog.Attr {
	return slog.Any("heuristics", o.heuristics)
}

// WithUnresolved is an [Option] to configure whether symbols with unreadable requirements are reported.
func WithUnresolved(unresolved bool) Option { return unresolvedOption{unresolved: unresolved} }

type unresolvedOption struct{ unresolved bool }

func (o unresolvedOption) apply(r *run.Options) {
	r.Behavior.Set(config.ReportUnresolved, o.unresolved)
}

func (o unresolvedOption) LogAttr() slog.Attr {
	return slog.Bool("unresolved", o.unresolved)
}

// WithWorkers is an [Option] to limit the number of parallel evaluations per package.
func WithWorkers(workers int) Option { return workersOption{workers: workers} }

type workersOption struct{ workers int }

func (o workersOption) apply(r *run.Options) {
	r.Workers = o.workers
}

func (o workersOption) LogAttr() slog.Attr {
	return slog.Int("workers", o.workers)
}

// WithLogger is an [Option] to configure the logger for operational messages.
func WithLogger(logger *zap.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *zap.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
