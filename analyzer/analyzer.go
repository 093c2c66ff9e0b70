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
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/apiguard/internal/run"
	"fillmore-labs.com/apiguard/internal/usage"
)

// Public API constants for the apiguard analyzer.
const (
	name = "apiguard"
	doc  = `apiguard detects uses of platform APIs that are not available on all supported versions`
	url  = "https://pkg.go.dev/fillmore-labs.com/apiguard"
)

// New creates a new instance of the apiguard analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Analyzer] variable is typically sufficient.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:      name,
		Doc:       doc,
		URL:       url,
		Run:       r.Run,
		Requires:  []*analysis.Analyzer{inspect.Analyzer},
		FactTypes: usage.Facts(),
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer is a pre-configured *[analysis.Analyzer] for detecting unguarded platform API uses.
var Analyzer = New()
