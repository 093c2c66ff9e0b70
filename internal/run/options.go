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
	"fmt"
	"sync"

	"go.uber.org/zap"

	"fillmore-labs.com/apiguard/internal/config"
)

// Options represent configuration options for the apiguard analyzer.
type Options struct {
	// Checks select the findings to report.
	Checks config.BitMask[config.Checks]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Behavior]

	// Platform is a preloaded platform description. It takes precedence over ConfigPath.
	Platform *config.Platform

	// ConfigPath is the YAML platform description to load on first use.
	ConfigPath string

	// Baseline overrides the minimum supported versions of the platform description.
	Baseline string

	// Workers limits the parallel evaluations per package, zero means unlimited.
	Workers int

	// Logger receives operational messages.
	Logger *zap.Logger

	once     sync.Once
	platform *config.Platform
	err      error
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Checks:   config.DefaultChecks(),
		Behavior: config.NewBitMask(config.RecognizeHeuristics, config.TrustHeuristics),
		Logger:   zap.NewNop(),
	}
}

// platformDescription loads the platform description once.
func (r *Options) platformDescription() (*config.Platform, error) {
	r.once.Do(func() { r.platform, r.err = r.loadPlatform() })

	return r.platform, r.err
}

func (r *Options) loadPlatform() (*config.Platform, error) {
	p := r.Platform

	switch {
	case p != nil:

	case r.ConfigPath != "":
		var err error
		if p, err = config.Load(r.ConfigPath, r.logger()); err != nil {
			return nil, err
		}

	default:
		p = config.Default()
	}

	if r.Baseline == "" {
		return p, nil
	}

	baseline, err := p.Axes.Parse(r.Baseline)
	if err != nil {
		return nil, fmt.Errorf("%w: baseline: %w", config.ErrInvalid, err)
	}

	overridden := *p
	overridden.Baseline = baseline

	return &overridden, nil
}

func (r *Options) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}

	return r.Logger
}
