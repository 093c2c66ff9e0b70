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

package requirement

import (
	"iter"
	"slices"

	"go.uber.org/zap"

	"fillmore-labs.com/apiguard/internal/constraint"
)

// Category groups symbols a desugaring or backport step can provide on older versions.
type Category string

// Symbol is a resolved reference target.
type Symbol struct {
	// Key is the stable symbol key.
	Key string

	// Owner is the key of the declaring type, if any.
	Owner string

	// Overrides are the keys of members this symbol shadows or implements.
	Overrides []string

	// Category is the desugaring category, if any.
	Category Category

	// Inlined marks compile-time constants copied into the caller.
	Inlined bool
}

// Requirement is the constraint a symbol needs.
type Requirement struct {
	Constraint constraint.Constraint

	// Sources are the keys whose declarations make up Constraint.
	Sources []string

	// Resolved is false when a declaration exists but could not be read.
	Resolved bool

	// Note explains an unresolved or relaxed requirement.
	Note string
}

// Resolver computes [Requirement]s from a [Database]. It is safe for concurrent use.
type Resolver struct {
	db        Database
	desugared map[Category]struct{}
	logger    *zap.Logger
}

// Option configures a [Resolver].
type Option func(r *Resolver)

// WithDesugaring relaxes the requirements of symbols in the given categories.
func WithDesugaring(categories ...Category) Option {
	return func(r *Resolver) {
		for _, c := range categories {
			r.desugared[c] = struct{}{}
		}
	}
}

// WithLogger sets the logger for unresolved entries.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// NewResolver creates a [Resolver] over db.
func NewResolver(db Database, opts ...Option) *Resolver {
	r := &Resolver{
		db:        db,
		desugared: make(map[Category]struct{}),
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

type declared struct {
	key        string
	constraint constraint.Constraint
}

// RequirementOf returns the minimal combined requirement of sym, its owner and the members it overrides.
//
// Declarations implied by another declaration are dropped, the rest must all hold.
func (r *Resolver) RequirementOf(sym Symbol) Requirement {
	if _, ok := r.desugared[sym.Category]; ok && sym.Category != "" {
		return Requirement{Resolved: true, Note: "provided by desugaring of " + string(sym.Category)}
	}

	var (
		found []declared
		note  string
	)

	for key := range candidateKeys(sym) {
		if c, ok := r.db.Lookup(key); ok {
			found = append(found, declared{key, c})

			continue
		}

		if u, ok := r.db.(unresolver); ok {
			if err := u.Unresolved(key); err != nil {
				r.logger.Debug("Unresolved requirement", zap.String("key", key), zap.Error(err))

				if note == "" {
					note = err.Error()
				}
			}
		}
	}

	if len(found) == 0 {
		return Requirement{Resolved: note == "", Note: note}
	}

	kept := minimal(found)

	result := Requirement{Resolved: true, Sources: make([]string, 0, len(kept))}
	cs := make([]constraint.Constraint, 0, len(kept))

	for _, d := range kept {
		result.Sources = append(result.Sources, d.key)
		cs = append(cs, d.constraint)
	}

	result.Constraint = constraint.Conjunction(cs...)

	return result
}

// candidateKeys yields the distinct, non-empty candidate keys in lookup order.
func candidateKeys(sym Symbol) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make([]string, 0, 2+len(sym.Overrides))

		for _, key := range append([]string{sym.Key, sym.Owner}, sym.Overrides...) {
			if key == "" || slices.Contains(seen, key) {
				continue
			}

			seen = append(seen, key)

			if !yield(key) {
				return
			}
		}
	}
}

// minimal drops declarations implied by another one, keeping the first of equivalent declarations.
func minimal(ds []declared) []declared {
	kept := make([]declared, 0, len(ds))

	for i, d := range ds {
		weaker := false

		for j, o := range ds {
			if i == j || !o.constraint.Implies(d.constraint) {
				continue
			}

			if j < i || !d.constraint.Implies(o.constraint) {
				weaker = true

				break
			}
		}

		if !weaker {
			kept = append(kept, d)
		}
	}

	return kept
}
