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
)

// AssignedIdents yields the identifiers a statement writes to, skipping blanks.
// Increments and decrements count as writes.
func AssignedIdents(stmt ast.Stmt) iter.Seq[*ast.Ident] {
	var lhs []ast.Expr

	switch stmt := stmt.(type) {
	case *ast.AssignStmt:
		if stmt.Tok == token.DEFINE {
			return func(func(*ast.Ident) bool) {}
		}

		lhs = stmt.Lhs

	case *ast.IncDecStmt:
		lhs = []ast.Expr{stmt.X}

	case *ast.RangeStmt:
		if stmt.Tok != token.ASSIGN {
			return func(func(*ast.Ident) bool) {}
		}

		lhs = []ast.Expr{stmt.Key, stmt.Value}
	}

	return func(yield func(*ast.Ident) bool) {
		for _, expr := range lhs {
			id, ok := ast.Unparen(expr).(*ast.Ident)
			if !ok || id.Name == "_" {
				continue // blank identifier
			}

			if !yield(id) {
				return
			}
		}
	}
}

// DefinedValue returns the value assigned to a single identifier by a short variable
// declaration or a one-name var specification.
func DefinedValue(n ast.Node) (*ast.Ident, ast.Expr, bool) {
	switch n := n.(type) {
	case *ast.AssignStmt:
		if n.Tok != token.DEFINE || len(n.Lhs) != 1 || len(n.Rhs) != 1 {
			return nil, nil, false
		}

		id, ok := n.Lhs[0].(*ast.Ident)

		return id, n.Rhs[0], ok

	case *ast.ValueSpec:
		if len(n.Names) != 1 || len(n.Values) != 1 {
			return nil, nil, false
		}

		return n.Names[0], n.Values[0], true

	default:
		return nil, nil, false
	}
}
