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

// Package scope folds the version requirements declared by enclosing
// declarations into the floor that holds inside them.
package scope

import (
	"go/token"
	"iter"

	"fillmore-labs.com/apiguard/internal/constraint"
)

// ID identifies a record in an [Arena].
type ID int32

// NoScope is the parent of outermost scopes.
const NoScope ID = -1

//go:generate go tool stringer -type Kind,Source -linecomment -output kind_string.go

// Kind is the declaration a scope belongs to.
type Kind uint8

const (
	Package Kind = iota // package
	File                // file
	Type                // type
	Func                // function
	FuncLit             // function literal
)

// Source is the origin of a declared requirement.
type Source uint8

const (
	// Annotation is an explicit requirement that callers have to meet as well.
	Annotation Source = iota // annotation

	// Marker states the versions a declaration is written for without requiring them from callers.
	Marker // marker

	// Build is a minimum configured for a package.
	Build // build
)

// Declared is a requirement declared on a scope.
type Declared struct {
	Constraint constraint.Constraint
	Source     Source
	Pos        token.Pos
}

// Record is a scope in an [Arena].
type Record struct {
	Parent   ID
	Kind     Kind
	Name     string
	Pos      token.Pos
	Declared []Declared
}

// Arena stores scope records with parent indices.
//
// Records are added parents first and never modified, so a completely built arena
// is safe for concurrent use.
type Arena struct {
	records []Record
}

// Add appends a scope under parent and returns its ID.
func (a *Arena) Add(parent ID, kind Kind, name string, pos token.Pos, declared ...Declared) ID {
	if parent != NoScope && !a.valid(parent) {
		parent = NoScope
	}

	id := ID(len(a.records))
	a.records = append(a.records, Record{
		Parent:   parent,
		Kind:     kind,
		Name:     name,
		Pos:      pos,
		Declared: declared,
	})

	return id
}

// Len returns the number of records.
func (a *Arena) Len() int { return len(a.records) }

// Record returns the record for id.
func (a *Arena) Record(id ID) (Record, bool) {
	if !a.valid(id) {
		return Record{}, false
	}

	return a.records[id], true
}

func (a *Arena) valid(id ID) bool { return id >= 0 && int(id) < len(a.records) }

// Chain yields id and its ancestors, innermost first.
func (a *Arena) Chain(id ID) iter.Seq2[ID, Record] {
	return func(yield func(ID, Record) bool) {
		for ; a.valid(id); id = a.records[id].Parent {
			if !yield(id, a.records[id]) {
				return
			}
		}
	}
}

// Own returns the conjunction of the requirements declared on r.
func (r Record) Own() constraint.Constraint {
	own := constraint.None()
	for _, d := range r.Declared {
		own = own.And(d.Constraint)
	}

	return own.Simplify()
}
