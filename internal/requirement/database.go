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

// Package requirement determines which platform versions a referenced symbol needs.
package requirement

import "fillmore-labs.com/apiguard/internal/constraint"

// Database maps stable symbol keys to declared requirements.
// Implementations must be safe for concurrent reads.
type Database interface {
	Lookup(key string) (constraint.Constraint, bool)
}

// unresolver is implemented by databases that keep entries they could not parse.
type unresolver interface {
	Unresolved(key string) error
}

// Entry is a database record. A non-nil Err marks an entry whose requirement could not be read.
type Entry struct {
	Constraint constraint.Constraint
	Err        error
}

// Map is an in-memory [Database].
type Map map[string]Entry

// Lookup implements [Database].
func (m Map) Lookup(key string) (constraint.Constraint, bool) {
	e, ok := m[key]
	if !ok || e.Err != nil {
		return constraint.Constraint{}, false
	}

	return e.Constraint, true
}

// Unresolved returns the error recorded for key, if any.
func (m Map) Unresolved(key string) error {
	if e, ok := m[key]; ok {
		return e.Err
	}

	return nil
}

// Add records c as the requirement of key.
func (m Map) Add(key string, c constraint.Constraint) { m[key] = Entry{Constraint: c} }

// Layered consults Overlay before Base. Either may be nil.
type Layered struct {
	Overlay Database
	Base    Database
}

// Lookup implements [Database].
func (l Layered) Lookup(key string) (constraint.Constraint, bool) {
	for _, db := range [...]Database{l.Overlay, l.Base} {
		if db == nil {
			continue
		}

		if c, ok := db.Lookup(key); ok {
			return c, true
		}
	}

	return constraint.Constraint{}, false
}

// Unresolved returns the first recorded error for key.
func (l Layered) Unresolved(key string) error {
	for _, db := range [...]Database{l.Overlay, l.Base} {
		if u, ok := db.(unresolver); ok {
			if err := u.Unresolved(key); err != nil {
				return err
			}
		}
	}

	return nil
}
