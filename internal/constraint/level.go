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
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// Axis identifies a versioned platform dimension.
type Axis int32

// Primary is the main platform version axis.
const Primary Axis = 0

// Level is a version on one axis, ordered by major, then minor.
type Level struct {
	Major int32
	Minor int32
}

var (
	// Floor is the smallest representable level on every axis.
	Floor = Level{Major: 1}

	// Infinity is the open upper end of a [Bound].
	Infinity = Level{Major: math.MaxInt32}
)

// Major returns the whole level n.
func Major(n int32) Level { return Level{Major: n} }

// Compare returns -1, 0 or +1 depending on whether l is lower, equal or higher than o.
func (l Level) Compare(o Level) int {
	if c := cmp.Compare(l.Major, o.Major); c != 0 {
		return c
	}

	return cmp.Compare(l.Minor, o.Minor)
}

// Less reports whether l is lower than o.
func (l Level) Less(o Level) bool { return l.Compare(o) < 0 }

func (l Level) nextMajor() Level {
	if l.Major >= Infinity.Major-1 {
		return Infinity
	}

	return Level{Major: l.Major + 1}
}

func (l Level) nextMinor() Level {
	if l == Infinity {
		return Infinity
	}

	return Level{Major: l.Major, Minor: l.Minor + 1}
}

func (l Level) String() string {
	switch {
	case l == Infinity:
		return "∞"

	case l.Minor == 0:
		return strconv.FormatInt(int64(l.Major), 10)

	default:
		return fmt.Sprintf("%d.%d", l.Major, l.Minor)
	}
}

// ErrInvalidLevel is returned for version literals that are not a level.
var ErrInvalidLevel = errors.New("invalid level")

// ParseLevel parses a level literal like "23" or "36.1".
func ParseLevel(s string) (Level, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return Level{}, fmt.Errorf("%w %q: %w", ErrInvalidLevel, s, err)
	}

	if v.Patch() != 0 || v.Prerelease() != "" || v.Metadata() != "" {
		return Level{}, fmt.Errorf("%w %q: only major and minor parts are allowed", ErrInvalidLevel, s)
	}

	if v.Major() >= uint64(Infinity.Major) || v.Minor() >= math.MaxInt32 {
		return Level{}, fmt.Errorf("%w %q: out of range", ErrInvalidLevel, s)
	}

	return Level{Major: int32(v.Major()), Minor: int32(v.Minor())}, nil
}
