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

package flow

import (
	"go/ast"
	"go/token"
	"go/types"
)

// Leaves reports whether executing stmt never continues with the statement after it.
//
// Returns, break and continue statements and calls of non-returning functions
// leave. A goto does not, its target may follow stmt. Blocks and if statements leave when their last statement, and all branches
// of an if statement with else, leave.
func Leaves(info *types.Info, stmt ast.Stmt) bool {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		return true

	case *ast.BranchStmt:
		return s.Tok == token.BREAK || s.Tok == token.CONTINUE

	case *ast.ExprStmt:
		call, ok := ast.Unparen(s.X).(*ast.CallExpr)

		return ok && CantReturn(info, call)

	case *ast.BlockStmt:
		return LeavesBlock(info, s)

	case *ast.IfStmt:
		if s.Else == nil {
			return false
		}

		return LeavesBlock(info, s.Body) && Leaves(info, s.Else)

	case *ast.LabeledStmt:
		return Leaves(info, s.Stmt)

	default:
		return false
	}
}

// LeavesBlock reports whether the last statement of block leaves.
func LeavesBlock(info *types.Info, block *ast.BlockStmt) bool {
	if block == nil || len(block.List) == 0 {
		return false
	}

	return Leaves(info, block.List[len(block.List)-1])
}
