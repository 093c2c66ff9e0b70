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

	"golang.org/x/tools/go/ast/inspector"
)

// NodeIndex is the traversal index of a node, stable for the lifetime of an [inspector.Inspector].
type NodeIndex int32

// NodeIndexOf returns the [NodeIndex] of the node at c.
func NodeIndexOf(c inspector.Cursor) NodeIndex {
	return NodeIndex(c.Index())
}

// EnclosingScope returns the innermost function literal, function declaration or file
// at or around c.
func EnclosingScope(c inspector.Cursor) (inspector.Cursor, NodeIndex, bool) {
	for cur := range c.Enclosing((*ast.FuncLit)(nil), (*ast.FuncDecl)(nil), (*ast.File)(nil)) {
		return cur, NodeIndexOf(cur), true
	}

	return inspector.Cursor{}, 0, false
}
