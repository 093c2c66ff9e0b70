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

package constraint

import (
	"strconv"
	"strings"
)

// String renders c in the text form accepted by [Parse], using numeric axis ids.
func (c Constraint) String() string {
	return c.Format(nil)
}

// MarshalText implements [encoding.TextMarshaler].
func (c Constraint) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Constraint) UnmarshalText(text []byte) error {
	p, err := Parse(string(text), nil)
	if err != nil {
		return err
	}

	*c = p

	return nil
}

// Format renders c, naming extension axes with name. A nil name uses numeric ids.
func (c Constraint) Format(name func(Axis) string) string {
	if c.never {
		return "never"
	}

	var sb strings.Builder

	for i, a := range c.alternatives() {
		if i > 0 {
			sb.WriteString(" || ")
		}

		a.format(&sb, name)
	}

	return sb.String()
}

// Format renders a like [Constraint.Format].
func (a Alternative) Format(name func(Axis) string) string {
	var sb strings.Builder
	a.format(&sb, name)

	return sb.String()
}

func (a Alternative) String() string { return a.Format(nil) }

func (a Alternative) format(sb *strings.Builder, name func(Axis) string) {
	if a.universal() {
		sb.WriteString("any")

		return
	}

	for i, b := range a.bounds {
		if i > 0 {
			sb.WriteString(" && ")
		}

		b.format(sb, name)
	}
}

func (b Bound) String() string {
	var sb strings.Builder
	b.format(&sb, nil)

	return sb.String()
}

func (b Bound) format(sb *strings.Builder, name func(Axis) string) {
	var prefix string

	switch {
	case b.Axis == Primary:

	case name != nil:
		prefix = name(b.Axis)

	default:
		prefix = strconv.FormatInt(int64(b.Axis), 10)
	}

	term := func(op string, l Level) {
		sb.WriteString(prefix)
		sb.WriteString(op)
		sb.WriteString(l.String())
	}

	switch {
	case b.Max == Infinity:
		term(">=", b.Min)

	case b.Min == Floor:
		term("<", b.Max)

	case b.Min.Minor == 0 && b.Max == b.Min.nextMajor(),
		b.Min.Minor != 0 && b.Max == b.Min.nextMinor():
		term("==", b.Min)

	default:
		term(">=", b.Min)
		sb.WriteString(" && ")
		term("<", b.Max)
	}
}
