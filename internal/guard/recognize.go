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

package guard

import (
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"fillmore-labs.com/apiguard/internal/constraint"
)

// Lookup returns the constraint a function checks, keyed by its stable symbol key.
type Lookup func(key string) (constraint.Constraint, bool)

// Recognizer identifies calls of version check functions.
type Recognizer struct {
	// Explicit resolves functions annotated with the version they check.
	Explicit Lookup

	// Known resolves functions listed by the platform database or inferred from their body.
	Known Lookup

	// Heuristics enables guessing from function names like "isAtLeastApi23".
	Heuristics bool

	// Codenames map release code names to primary levels.
	Codenames map[string]constraint.Level
}

// Recognize classifies a call of the function with the given key and simple name.
// Explicit annotations take precedence over known functions, which take precedence over names.
func (r Recognizer) Recognize(key, name string, pos token.Pos) (Check, bool) {
	for _, source := range [...]struct {
		lookup Lookup
		tier   Tier
	}{
		{r.Explicit, Explicit},
		{r.Known, PlatformKnown},
	} {
		if source.lookup == nil {
			continue
		}

		if c, ok := source.lookup(key); ok {
			return Check{Name: name, Constraint: c, Tier: source.tier, Pos: pos}, true
		}
	}

	if !r.Heuristics {
		return Check{}, false
	}

	level, ok := LevelFromName(name, r.Codenames)
	if !ok {
		return Check{}, false
	}

	c := constraint.AtLeast(constraint.Primary, level)

	return Check{Name: name, Constraint: c, Tier: HeuristicGuess, Pos: pos}, true
}

var (
	namePrefixes = [...]string{"isAtLeast", "isRunning", "is", "runningOn", "running", "has"}
	nameSuffixes = [...]string{"OrLater", "OrAbove", "OrHigher", "OrNewer", "Sdk"}
)

// LevelFromName guesses the level checked by a function from its name, e.g.
// "isAtLeastApi23", "IsRunningTOrLater" or "hasApi_26".
func LevelFromName(name string, codenames map[string]constraint.Level) (constraint.Level, bool) {
	rest, prefix, ok := trimPrefix(name)
	if !ok {
		return constraint.Level{}, false
	}

	suffix := ""

	for _, s := range nameSuffixes {
		if len(rest) > len(s) && strings.EqualFold(rest[len(rest)-len(s):], s) {
			suffix = s

			break
		}
	}

	if suffix == "" && prefix == "is" {
		return constraint.Level{}, false
	}

	code := rest[:len(rest)-len(suffix)]
	if code == "" {
		return constraint.Level{}, false
	}

	if level, ok := codenames[code]; ok {
		return level, true
	}

	return levelFromAPIName(code)
}

// trimPrefix removes the first matching prefix, accepting an exported spelling.
func trimPrefix(name string) (rest, prefix string, ok bool) {
	for _, p := range namePrefixes {
		if len(name) <= len(p) {
			continue
		}

		head := name[:len(p)]
		if head != p && head != upperFirst(p) {
			continue
		}

		return name[len(p):], p, true
	}

	return "", "", false
}

func upperFirst(s string) string {
	return string(unicode.ToUpper(rune(s[0]))) + s[1:]
}

// levelFromAPIName reads "Api23", "API_23" or "api23".
func levelFromAPIName(code string) (constraint.Level, bool) {
	if len(code) < 4 || !strings.EqualFold(code[:3], "api") {
		return constraint.Level{}, false
	}

	digits := strings.TrimPrefix(code[3:], "_")

	end := 0
	for end < len(digits) && '0' <= digits[end] && digits[end] <= '9' {
		end++
	}

	if end == 0 {
		return constraint.Level{}, false
	}

	n, err := strconv.ParseInt(digits[:end], 10, 32)
	if err != nil || n < 1 {
		return constraint.Level{}, false
	}

	return constraint.Major(int32(n)), true
}
