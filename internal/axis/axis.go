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

// Package axis names the versioned platform dimensions constraints range over.
package axis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fillmore-labs.com/apiguard/internal/constraint"
)

// Kind distinguishes the primary platform version from extension versions.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Primary is the platform version axis.
	Primary Kind = iota // primary

	// Extension is an independently versioned extension axis.
	Extension // extension
)

// Info describes one axis.
type Info struct {
	ID      constraint.Axis
	Name    string
	Display string
	Kind    Kind
}

var (
	// ErrNoPrimary is returned when a registry does not have exactly one primary axis.
	ErrNoPrimary = errors.New("registry needs exactly one primary axis")

	// ErrDuplicate is returned for axes registered twice.
	ErrDuplicate = errors.New("duplicate axis")
)

// Registry resolves axis names and ids. It is immutable after construction.
type Registry struct {
	infos   map[constraint.Axis]Info
	byName  map[string]constraint.Axis
	primary constraint.Axis
}

// NewRegistry validates and indexes infos.
func NewRegistry(infos ...Info) (*Registry, error) {
	r := &Registry{
		infos:  make(map[constraint.Axis]Info, len(infos)),
		byName: make(map[string]constraint.Axis, len(infos)),
	}

	primaries := 0

	for _, info := range infos {
		if info.Name == "" {
			info.Name = strconv.FormatInt(int64(info.ID), 10)
		}

		if info.Display == "" {
			info.Display = info.Name
		}

		key := strings.ToLower(info.Name)

		if _, ok := r.infos[info.ID]; ok {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicate, info.ID)
		}

		if _, ok := r.byName[key]; ok {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicate, info.Name)
		}

		if info.Kind == Primary {
			if info.ID != constraint.Primary {
				return nil, fmt.Errorf("%w: primary axis %q must have id %d", ErrNoPrimary, info.Name, constraint.Primary)
			}

			primaries++
			r.primary = info.ID
		}

		r.infos[info.ID] = info
		r.byName[key] = info.ID
	}

	if primaries != 1 {
		return nil, fmt.Errorf("%w, got %d", ErrNoPrimary, primaries)
	}

	return r, nil
}

// Default returns a registry with only the primary "api" axis.
func Default() *Registry {
	r, _ := NewRegistry(Info{ID: constraint.Primary, Name: "api", Display: "API level", Kind: Primary})

	return r
}

// Lookup resolves a case-insensitive axis name or a numeric id.
func (r *Registry) Lookup(name string) (constraint.Axis, bool) {
	if id, ok := r.byName[strings.ToLower(name)]; ok {
		return id, true
	}

	if n, err := strconv.ParseInt(name, 10, 32); err == nil {
		if _, ok := r.infos[constraint.Axis(n)]; ok {
			return constraint.Axis(n), true
		}
	}

	return 0, false
}

// Info returns the description of axis a.
func (r *Registry) Info(a constraint.Axis) (Info, bool) {
	info, ok := r.infos[a]

	return info, ok
}

// Name returns the short name of axis a, or its id for unknown axes.
func (r *Registry) Name(a constraint.Axis) string {
	if info, ok := r.infos[a]; ok {
		return info.Name
	}

	return strconv.FormatInt(int64(a), 10)
}

// Display returns the human readable name of axis a.
func (r *Registry) Display(a constraint.Axis) string {
	if info, ok := r.infos[a]; ok {
		return info.Display
	}

	return "axis " + strconv.FormatInt(int64(a), 10)
}

// Primary returns the primary axis.
func (r *Registry) Primary() constraint.Axis { return r.primary }

// IsPrimary reports whether a is the primary axis.
func (r *Registry) IsPrimary(a constraint.Axis) bool { return a == r.primary }

// Parse reads constraint text with named axes.
func (r *Registry) Parse(text string) (constraint.Constraint, error) {
	return constraint.Parse(text, r.Lookup)
}

// Text renders c in parseable form with axis names.
func (r *Registry) Text(c constraint.Constraint) string {
	return c.Format(r.Name)
}
