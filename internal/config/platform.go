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

package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/apiguard/internal/axis"
	"fillmore-labs.com/apiguard/internal/constraint"
	"fillmore-labs.com/apiguard/internal/requirement"
)

// ErrInvalid is returned for configuration files that cannot be used at all.
var ErrInvalid = errors.New("invalid configuration")

// VersionExpr describes an expression evaluating to the running platform version.
type VersionExpr struct {
	Axis constraint.Axis

	// Scale encodes minor levels as major*Scale+minor. Zero means the value is a major level.
	Scale int32

	// AxisArgument marks functions taking the axis id as their first argument.
	AxisArgument bool
}

// Level converts a compared constant to a level. The result is dotted for scaled expressions.
func (v VersionExpr) Level(n int64) (level constraint.Level, dotted bool) {
	if v.Scale <= 0 {
		return constraint.Major(clamp(n)), false
	}

	return constraint.Level{Major: clamp(n / int64(v.Scale)), Minor: clamp(n % int64(v.Scale))}, true
}

func clamp(n int64) int32 {
	return int32(max(0, min(n, int64(constraint.Infinity.Major-1))))
}

// Platform is the description of the platform surface and the analyzed build.
type Platform struct {
	Axes       *axis.Registry
	Baseline   constraint.Constraint
	Codenames  map[string]constraint.Level
	Desugared  []requirement.Category
	Versions   map[string]VersionExpr
	Packages   map[string]constraint.Constraint
	Symbols    requirement.Map
	Categories map[string]requirement.Category
	Predicates map[string]constraint.Constraint
}

// Default returns an empty platform with the default axis registry.
func Default() *Platform {
	return &Platform{
		Axes:       axis.Default(),
		Codenames:  make(map[string]constraint.Level),
		Versions:   make(map[string]VersionExpr),
		Packages:   make(map[string]constraint.Constraint),
		Symbols:    make(requirement.Map),
		Categories: make(map[string]requirement.Category),
		Predicates: make(map[string]constraint.Constraint),
	}
}

type file struct {
	Axes       []axisEntry            `yaml:"axes"`
	Baseline   string                 `yaml:"baseline"`
	Codenames  map[string]string      `yaml:"codenames"`
	Desugar    []string               `yaml:"desugar"`
	Versions   []versionEntry         `yaml:"versions"`
	Packages   map[string]string      `yaml:"packages"`
	Symbols    map[string]symbolEntry `yaml:"symbols"`
	Predicates map[string]string      `yaml:"predicates"`
}

type axisEntry struct {
	Name    string `yaml:"name"`
	ID      int32  `yaml:"id"`
	Display string `yaml:"display"`
	Primary bool   `yaml:"primary"`
}

type versionEntry struct {
	Symbol       string `yaml:"symbol"`
	Axis         string `yaml:"axis"`
	Scale        int32  `yaml:"scale"`
	AxisArgument bool   `yaml:"axis-argument"`
}

// symbolEntry is either a plain constraint or a mapping with details.
type symbolEntry struct {
	Requires string `yaml:"requires"`
	Category string `yaml:"category"`
}

func (s *symbolEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&s.Requires)
	}

	type plain symbolEntry

	return node.Decode((*plain)(s))
}

// Load reads a platform description from the YAML file at path.
func Load(path string, logger *zap.Logger) (*Platform, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read platform description: %w", err)
	}

	p, err := Decode(data, logger.With(zap.String("file", path)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Decode parses a YAML platform description.
//
// Malformed entries are logged and skipped; malformed symbol requirements are kept
// as unresolved entries. Errors are only returned for unusable documents.
func Decode(data []byte, logger *zap.Logger) (*Platform, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	p := Default()

	if len(f.Axes) > 0 {
		reg, err := registry(f.Axes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}

		p.Axes = reg
	}

	if f.Baseline != "" {
		c, err := p.Axes.Parse(f.Baseline)
		if err != nil {
			return nil, fmt.Errorf("%w: baseline: %w", ErrInvalid, err)
		}

		p.Baseline = c
	}

	d := decoder{Platform: p, logger: logger}
	d.codenames(f.Codenames)
	d.versions(f.Versions)
	d.packages(f.Packages)
	d.symbols(f.Symbols)
	d.predicates(f.Predicates)

	for _, c := range f.Desugar {
		p.Desugared = append(p.Desugared, requirement.Category(c))
	}

	return p, nil
}

func registry(entries []axisEntry) (*axis.Registry, error) {
	infos := make([]axis.Info, 0, len(entries))

	for _, e := range entries {
		info := axis.Info{ID: constraint.Axis(e.ID), Name: e.Name, Display: e.Display, Kind: axis.Extension}
		if e.Primary {
			info.Kind = axis.Primary
		}

		infos = append(infos, info)
	}

	return axis.NewRegistry(infos...)
}

type decoder struct {
	*Platform
	logger *zap.Logger
}

func (d decoder) skip(section, key string, err error) {
	d.logger.Warn("Skipping configuration entry", zap.String("section", section), zap.String("key", key), zap.Error(err))
}

func (d decoder) codenames(m map[string]string) {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		level, err := constraint.ParseLevel(m[name])
		if err != nil {
			d.skip("codenames", name, err)

			continue
		}

		d.Codenames[name] = level
	}
}

func (d decoder) versions(entries []versionEntry) {
	for _, e := range entries {
		v := VersionExpr{Axis: d.Axes.Primary(), Scale: e.Scale, AxisArgument: e.AxisArgument}

		if e.Axis != "" {
			a, ok := d.Axes.Lookup(e.Axis)
			if !ok {
				d.skip("versions", e.Symbol, fmt.Errorf("%w %q", constraint.ErrUnknownAxis, e.Axis))

				continue
			}

			v.Axis = a
		}

		d.Versions[e.Symbol] = v
	}
}

func (d decoder) packages(m map[string]string) {
	for _, path := range slices.Sorted(maps.Keys(m)) {
		c, err := d.Axes.Parse(m[path])
		if err != nil {
			d.skip("packages", path, err)

			continue
		}

		d.Packages[path] = c
	}
}

func (d decoder) symbols(m map[string]symbolEntry) {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		e := m[key]

		if e.Category != "" {
			d.Categories[key] = requirement.Category(e.Category)
		}

		if e.Requires == "" {
			continue
		}

		c, err := d.Axes.Parse(e.Requires)
		if err != nil {
			d.skip("symbols", key, err)
			d.Symbols[key] = requirement.Entry{Err: err}

			continue
		}

		d.Symbols.Add(key, c)
	}
}

func (d decoder) predicates(m map[string]string) {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		c, err := d.Axes.Parse(m[key])
		if err != nil {
			d.skip("predicates", key, err)

			continue
		}

		d.Predicates[key] = c
	}
}
