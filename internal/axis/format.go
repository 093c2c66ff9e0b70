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

package axis

import (
	"strings"

	"fillmore-labs.com/apiguard/internal/constraint"
)

// Format renders c for humans, e.g. "API level ≥ 24 or R Extensions ≥ 4".
func (r *Registry) Format(c constraint.Constraint) string {
	switch {
	case c.IsNever():
		return "no version"

	case c.IsNone():
		return "any version"
	}

	var sb strings.Builder

	for i, a := range c.Alternatives() {
		if i > 0 {
			sb.WriteString(" or ")
		}

		r.formatAlternative(&sb, a)
	}

	return sb.String()
}

// FormatAlternative renders a single alternative for humans.
func (r *Registry) FormatAlternative(a constraint.Alternative) string {
	var sb strings.Builder
	r.formatAlternative(&sb, a)

	return sb.String()
}

func (r *Registry) formatAlternative(sb *strings.Builder, a constraint.Alternative) {
	if a.Len() == 0 {
		sb.WriteString("any version")

		return
	}

	first := true
	for b := range a.Bounds() {
		if !first {
			sb.WriteString(" and ")
		}

		first = false

		r.formatBound(sb, b)
	}
}

func (r *Registry) formatBound(sb *strings.Builder, b constraint.Bound) {
	sb.WriteString(r.Display(b.Axis))

	switch {
	case b.LowerOnly():
		sb.WriteString(" ≥ ")
		sb.WriteString(b.Min.String())

	case b.Min == constraint.Floor:
		sb.WriteString(" < ")
		sb.WriteString(b.Max.String())

	default:
		sb.WriteString(" in [")
		sb.WriteString(b.Min.String())
		sb.WriteString(", ")
		sb.WriteString(b.Max.String())
		sb.WriteString(")")
	}
}

// MinString renders the lowest primary level admitted by c, as used in
// "current min is 21" messages.
func (r *Registry) MinString(c constraint.Constraint) string {
	lo, ok := c.MinOn(r.primary)
	if !ok {
		return "none"
	}

	return lo.String()
}
