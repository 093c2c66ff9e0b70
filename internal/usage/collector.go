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

// Package usage finds the references to versioned platform symbols and the version
// checks guarding them.
//
// A [Collector] first builds the scope arena of a package from its declarations and
// "//apiguard:" directives, then walks each function declaration. Every reference to
// a symbol with a known requirement becomes a [verdict.Usage] carrying the guard
// contexts between the reference and its function, and every version check becomes
// a [verdict.Site] probed for redundancy.
package usage

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/apiguard/internal/astutil"
	"fillmore-labs.com/apiguard/internal/config"
	"fillmore-labs.com/apiguard/internal/guard"
	"fillmore-labs.com/apiguard/internal/requirement"
	"fillmore-labs.com/apiguard/internal/scope"
	"fillmore-labs.com/apiguard/internal/verdict"
)

// Options configure a [Collector].
type Options struct {
	// Heuristics recognizes version checks by function name.
	Heuristics bool
}

// Collector collects the use sites and version checks of one package.
type Collector struct {
	// Pass is an embedded [analysis.Pass] for type information and fact export
	*analysis.Pass

	platform *config.Platform
	scopes   scopes
	facts    factIndex
	preds    predicates
	db       requirement.Layered

	usages   []verdict.Usage
	sites    []verdict.Site
	problems []Problem
}

// Result holds what a [Collector] found.
type Result struct {
	Usages []verdict.Usage
	Sites  []verdict.Site

	// Arena holds the scopes referenced by Usages and Sites.
	Arena *scope.Arena

	// Requirements are the platform symbols layered under the requirements declared
	// in this and imported packages.
	Requirements requirement.Database

	Problems []Problem
}

// New builds the scope arena of the files under root, exports the facts declared
// by directives and infers version check functions.
func New(p *analysis.Pass, root inspector.Cursor, platform *config.Platform, opts Options) *Collector {
	c := &Collector{
		Pass:     p,
		platform: platform,
		scopes: scopes{
			arena: &scope.Arena{},
			pkg:   scope.NoScope,
			nodes: make(map[astutil.NodeIndex]scope.ID),
			types: make(map[*types.TypeName]scope.ID),
		},
		facts: newFactIndex(),
	}

	c.facts.load(p)

	c.preds = predicates{
		info:      p.TypesInfo,
		versions:  platform.Versions,
		arguments: c.facts.arguments,
		recognizer: guard.Recognizer{
			Explicit:   lookup(c.facts.explicit),
			Known:      lookup(platform.Predicates, c.facts.inferred),
			Heuristics: opts.Heuristics,
			Codenames:  platform.Codenames,
		},
	}

	c.db = requirement.Layered{Overlay: c.facts.requires, Base: platform.Symbols}

	c.declarations(root)
	c.inferChecks(root)

	return c
}

// Function collects the references and version checks in a function declaration.
func (c *Collector) Function(fn inspector.Cursor) {
	c.preds.scanLocals(fn)

	nodes := []ast.Node{
		// keep-sorted start
		(*ast.AssignStmt)(nil),
		(*ast.CallExpr)(nil),
		(*ast.Ident)(nil),
		(*ast.IfStmt)(nil),
		(*ast.RangeStmt)(nil),
		(*ast.SwitchStmt)(nil),
		// keep-sorted end
	}

	for cur := range fn.Preorder(nodes...) {
		switch n := cur.Node().(type) {
		// keep-sorted start newline_separated=yes
		case *ast.AssignStmt:
			c.assignment(cur, n)

		case *ast.CallExpr:
			c.arguments(cur, n)

		case *ast.Ident:
			c.reference(cur, n)

		case *ast.IfStmt:
			c.condition(cur, n)

		case *ast.RangeStmt:
			c.rangeLoop(cur, n)

		case *ast.SwitchStmt:
			c.switchClauses(cur, n)
			// keep-sorted end
		}
	}
}

// Result returns the collected usages, sites and scopes.
func (c *Collector) Result() Result {
	return Result{
		Usages:       c.usages,
		Sites:        c.sites,
		Arena:        c.scopes.arena,
		Requirements: c.db,
		Problems:     c.problems,
	}
}

// condition records the version checks of an if statement.
func (c *Collector) condition(cur inspector.Cursor, n *ast.IfStmt) {
	cond := c.preds.of(n.Cond)
	if !guard.IsVersionCheck(cond) {
		return
	}

	path := append([]guard.Context{guard.Branch{Cond: cond, Then: true}}, c.path(cur)...)
	c.sites = append(c.sites, verdict.Site{Path: path, Scope: c.scopes.of(cur)})
}

// switchClauses records the version checks of an expression switch.
func (c *Collector) switchClauses(cur inspector.Cursor, n *ast.SwitchStmt) {
	clauses := c.clauses(n)

	last := -1
	for i, p := range clauses {
		if p != nil && guard.IsVersionCheck(p) {
			last = i
		}
	}

	if last < 0 {
		return
	}

	path := append([]guard.Context{guard.Case{Clauses: clauses, Index: last}}, c.path(cur)...)
	c.sites = append(c.sites, verdict.Site{Path: path, Scope: c.scopes.of(cur)})
}
