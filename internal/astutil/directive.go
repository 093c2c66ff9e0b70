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

package astutil

import (
	"go/ast"
	"go/token"
	"iter"
	"strings"
)

// Directive verbs understood in doc comments.
const (
	// Requires declares the platform versions a declaration needs, e.g. "//apiguard:requires >=26".
	Requires = "requires"

	// Target raises the floor of a declaration without exporting a requirement.
	Target = "target"

	// ChecksAtLeast marks a boolean function returning whether the platform satisfies its argument.
	ChecksAtLeast = "checks-at-least"
)

const directivePrefix = "//" + apiguard + ":"

// Directive is a "//apiguard:verb argument" comment. A trailing "// comment" is ignored.
type Directive struct {
	Verb     string
	Argument string
	Pos      token.Pos
}

// Directives yields the apiguard directives of a doc comment in source order.
func Directives(doc *ast.CommentGroup) iter.Seq[Directive] {
	return func(yield func(Directive) bool) {
		if doc == nil {
			return
		}

		for _, c := range doc.List {
			text, ok := strings.CutPrefix(c.Text, directivePrefix)
			if !ok {
				continue
			}

			verb, arg, _ := strings.Cut(text, " ")
			arg, _, _ = strings.Cut(arg, "//")

			d := Directive{Verb: verb, Argument: strings.TrimSpace(arg), Pos: c.Pos()}
			if !yield(d) {
				return
			}
		}
	}
}
