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

package guard_test

import (
	"testing"

	"fillmore-labs.com/apiguard/internal/constraint"
	. "fillmore-labs.com/apiguard/internal/guard"
)

func cmpOp(op Op, n int32) Compare {
	return Compare{Axis: constraint.Primary, Op: op, Level: constraint.Major(n)}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	atLeast21 := constraint.AtLeast(constraint.Primary, constraint.Major(21))
	heuristic := Check{Name: "isAtLeastS", Constraint: constraint.AtLeast(constraint.Primary, constraint.Major(31)), Tier: HeuristicGuess}

	tests := [...]struct {
		name       string
		path       []Context
		floor      constraint.Constraint
		trust      bool
		want       string
		wantStrict string
	}{
		{
			name: "then",
			path: []Context{Branch{Cond: cmpOp(GE, 23), Then: true}},
			want: ">=23",
		},
		{
			name: "else",
			path: []Context{Branch{Cond: cmpOp(GE, 23), Then: false}},
			want: "<23",
		},
		{
			name: "nested",
			path: []Context{Branch{Cond: cmpOp(GE, 26), Then: true}, Branch{Cond: cmpOp(GE, 23), Then: true}},
			want: ">=26",
		},
		{
			name: "reversed operands",
			path: []Context{Branch{Cond: NewCompare(constraint.Primary, LT, constraint.Major(23), false, false, 0), Then: true}},
			want: ">=24",
		},
		{
			name: "and chain",
			path: []Context{Chain{Op: AndChain, Operands: []Predicate{cmpOp(GE, 23), Opaque{}}, Index: 1}},
			want: ">=23",
		},
		{
			name: "and chain first operand",
			path: []Context{Chain{Op: AndChain, Operands: []Predicate{cmpOp(GE, 23), Opaque{}}, Index: 0}},
			want: "any",
		},
		{
			name: "or chain",
			path: []Context{Chain{Op: OrChain, Operands: []Predicate{cmpOp(LT, 23), Opaque{}}, Index: 1}},
			want: ">=23",
		},
		{
			name: "not negatable",
			path: []Context{Branch{Cond: And{cmpOp(GE, 23), Opaque{}}, Then: false}},
			want: "any",
		},
		{
			name: "negated or",
			path: []Context{Branch{Cond: Not{Or{cmpOp(LT, 23), Opaque{}}}, Then: true}},
			want: ">=23",
		},
		{
			name: "early exit",
			path: []Context{Block{Exits: []Exit{{Cond: cmpOp(LT, 23), ExitsWhen: true}}}},
			want: ">=23",
		},
		{
			name: "else exit",
			path: []Context{Block{Exits: []Exit{{Cond: cmpOp(GE, 23), ExitsWhen: false}}}},
			want: ">=23",
		},
		{
			name: "case",
			path: []Context{Case{Clauses: []Predicate{cmpOp(GE, 30), cmpOp(GE, 26), nil}, Index: 1}},
			want: ">=26 && <30",
		},
		{
			name: "default case",
			path: []Context{Case{Clauses: []Predicate{cmpOp(GE, 30), nil, cmpOp(GE, 26)}, Index: 1}},
			want: "<26",
		},
		{
			name: "fallthrough",
			path: []Context{Case{Clauses: []Predicate{cmpOp(GE, 30), cmpOp(GE, 26)}, Index: 1, Fallthrough: true}},
			want: "any",
		},
		{
			name: "catch",
			path: []Context{Catch{Guard: cmpOp(GE, 23)}},
			want: ">=23",
		},
		{
			name:       "trusted heuristic",
			path:       []Context{Branch{Cond: heuristic, Then: true}},
			trust:      true,
			want:       ">=31",
			wantStrict: "any",
		},
		{
			name: "untrusted heuristic",
			path: []Context{Branch{Cond: heuristic, Then: true}},
			want: "any",
		},
		{
			name:  "degenerate not equal",
			path:  []Context{Branch{Cond: cmpOp(NE, 21), Then: true}},
			floor: atLeast21,
			want:  "any",
		},
		{
			name:  "not equal at exact floor",
			path:  []Context{Branch{Cond: cmpOp(NE, 21), Then: true}},
			floor: constraint.Exactly(constraint.Primary, constraint.Major(21), false),
			want:  "<21 || >=22",
		},
		{
			name:  "equal does not raise floor",
			path:  []Context{Branch{Cond: cmpOp(EQ, 21), Then: true}},
			floor: atLeast21,
			want:  "==21",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Extract(tt.path, tt.floor, Options{TrustHeuristics: tt.trust})

			if s := got.Constraint.String(); s != tt.want {
				t.Errorf("Extract() = %q, want %q", s, tt.want)
			}

			wantStrict := tt.wantStrict
			if wantStrict == "" {
				wantStrict = tt.want
			}

			if s := got.Strict.String(); s != wantStrict {
				t.Errorf("Extract() strict = %q, want %q", s, wantStrict)
			}
		})
	}
}

func TestExtractGuards(t *testing.T) {
	t.Parallel()

	floor := constraint.AtLeast(constraint.Primary, constraint.Major(21))
	path := []Context{
		Branch{Cond: And{cmpOp(GE, 26), cmpOp(NE, 21)}, Then: true},
		Branch{Cond: cmpOp(GE, 23), Then: true},
	}

	got := Extract(path, floor, Options{})

	want := [...]struct {
		constraint, known string
		degenerate        bool
	}{
		{">=23", "any", false},
		{">=26", ">=23", false},
		{"<21 || >=22", ">=26", true},
	}

	if len(got.Guards) != len(want) {
		t.Fatalf("Got %d guards, want %d", len(got.Guards), len(want))
	}

	for i, w := range want {
		g := got.Guards[i]

		if s := g.Constraint.String(); s != w.constraint {
			t.Errorf("Guard %d constraint = %q, want %q", i, s, w.constraint)
		}

		if s := g.Known.String(); s != w.known {
			t.Errorf("Guard %d known = %q, want %q", i, s, w.known)
		}

		if g.Degenerate != w.degenerate {
			t.Errorf("Guard %d degenerate = %t, want %t", i, g.Degenerate, w.degenerate)
		}
	}
}

func TestExtractGuardsHeuristic(t *testing.T) {
	t.Parallel()

	floor := constraint.AtLeast(constraint.Primary, constraint.Major(21))
	heuristic := Check{Name: "isAtLeastApi26", Constraint: constraint.AtLeast(constraint.Primary, constraint.Major(26)), Tier: HeuristicGuess}
	path := []Context{
		Branch{Cond: cmpOp(GE, 24), Then: true},
		Branch{Cond: heuristic, Then: true},
	}

	got := Extract(path, floor, Options{TrustHeuristics: true})

	if len(got.Guards) != 2 {
		t.Fatalf("Got %d guards, want 2", len(got.Guards))
	}

	g := got.Guards[1]

	if s := g.Known.String(); s != ">=26" {
		t.Errorf("Known = %q, want %q", s, ">=26")
	}

	if s := g.KnownStrict.String(); s != "any" {
		t.Errorf("KnownStrict = %q, want %q", s, "any")
	}
}
