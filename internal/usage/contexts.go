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

package usage

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/apiguard/internal/flow"
	"fillmore-labs.com/apiguard/internal/guard"
)

// path returns the guard contexts between c and its function declaration, innermost first.
//
// Function literals are transparent: guards around a closure apply to its body.
func (c *Collector) path(cur inspector.Cursor) []guard.Context {
	var path []guard.Context

	for {
		kind, index := cur.ParentEdge()
		parent := cur.Parent()

		switch kind {
		case edge.Invalid, edge.File_Decls, edge.FuncDecl_Body, edge.FuncDecl_Type, edge.FuncDecl_Recv:
			return path

		case edge.IfStmt_Body:
			path = append(path, guard.Branch{Cond: c.preds.of(parent.Node().(*ast.IfStmt).Cond), Then: true})

		case edge.IfStmt_Else:
			path = append(path, guard.Branch{Cond: c.preds.of(parent.Node().(*ast.IfStmt).Cond), Then: false})

		case edge.CallExpr_Args:
			if ctx, ok := c.callback(parent.Node().(*ast.CallExpr), index); ok {
				path = append(path, ctx)
			}

				case edge.BinaryExpr_Y:
			if ctx, ok := c.chain(parent.Node().(*ast.BinaryExpr)); ok {
				path = append(path, ctx)
			}

		case edge.BlockStmt_List:
			path = c.appendExits(path, parent.Node().(*ast.BlockStmt).List, index)

		case edge.CommClause_Body:
			path = c.appendExits(path, parent.Node().(*ast.CommClause).Body, index)

		case edge.CaseClause_Body:
			path = c.appendExits(path, parent.Node().(*ast.CaseClause).Body, index)

			if ctx, ok := c.caseClause(parent); ok {
				path = append(path, ctx)
			}
		}

		cur = parent
	}
}

func (c *Collector) chain(b *ast.BinaryExpr) (guard.Chain, bool) {
	var op guard.ChainOp

	switch b.Op {
	case token.LAND:
		op = guard.AndChain

	case token.LOR:
		op = guard.OrChain

	default:
		return guard.Chain{}, false
	}

	return guard.Chain{Op: op, Operands: []guard.Predicate{c.preds.of(b.X)}, Index: 1}, true
}

// appendExits adds the version checks among stmts[:index] that leave the block on
// one branch. Checks before a label up to and including stmts[index] are skipped.
func (c *Collector) appendExits(path []guard.Context, stmts []ast.Stmt, index int) []guard.Context {
	var exits []guard.Exit

	for i, stmt := range stmts[:index+1] {
		if _, ok := stmt.(*ast.LabeledStmt); ok {
			exits = exits[:0]
		}

		if i == index {
			break
		}

		ifs, ok := stmt.(*ast.IfStmt)
		if !ok {
			continue
		}

		cond := c.preds.of(ifs.Cond)
		if !guard.IsVersionCheck(cond) {
			continue
		}

		switch {
		case flow.LeavesBlock(c.TypesInfo, ifs.Body):
			exits = append(exits, guard.Exit{Cond: cond, ExitsWhen: true, Pos: ifs.Pos()})

		case ifs.Else != nil && flow.Leaves(c.TypesInfo, ifs.Else):
			exits = append(exits, guard.Exit{Cond: cond, ExitsWhen: false, Pos: ifs.Pos()})
		}
	}

	if len(exits) == 0 {
		return path
	}

	return append(path, guard.Block{Exits: exits})
}

// caseClause returns the switch context of an expression switch clause.
func (c *Collector) caseClause(clause inspector.Cursor) (guard.Case, bool) {
	sw, ok := clause.Parent().Parent().Node().(*ast.SwitchStmt)
	if !ok {
		return guard.Case{}, false
	}

	current := clause.Node().(*ast.CaseClause)
	ctx := guard.Case{Clauses: c.clauses(sw), Index: -1}

	for i, stmt := range sw.Body.List {
		if stmt != current {
			continue
		}

		ctx.Index = i

		if i > 0 {
			ctx.Fallthrough = fallsThrough(sw.Body.List[i-1].(*ast.CaseClause))
		}
	}

	return ctx, ctx.Index >= 0
}

// clauses returns the conditions of the clauses of sw. The default clause is nil.
func (c *Collector) clauses(sw *ast.SwitchStmt) []guard.Predicate {
	clauses := make([]guard.Predicate, len(sw.Body.List))

	for i, stmt := range sw.Body.List {
		cc := stmt.(*ast.CaseClause)
		if cc.List == nil {
			continue // default
		}

		var p guard.Predicate
		for _, e := range cc.List {
			var q guard.Predicate
			if sw.Tag == nil {
				q = c.preds.of(e)
			} else {
				q = c.tagEquals(sw.Tag, e)
			}

			if p == nil {
				p = q
			} else {
				p = guard.Or{X: p, Y: q}
			}
		}

		clauses[i] = p
	}

	return clauses
}

// tagEquals is the comparison "tag == e" of a switch on the platform version.
func (c *Collector) tagEquals(tag, e ast.Expr) guard.Predicate {
	v, ok := c.preds.version(tag)
	if !ok {
		return guard.Opaque{}
	}

	n, ok := c.preds.constant(e)
	if !ok {
		return guard.Opaque{}
	}

	level, dotted := v.Level(n)

	return guard.NewCompare(v.Axis, guard.EQ, level, dotted, true, e.Pos())
}

func fallsThrough(cc *ast.CaseClause) bool {
	if len(cc.Body) == 0 {
		return false
	}

	b, ok := cc.Body[len(cc.Body)-1].(*ast.BranchStmt)

	return ok && b.Tok == token.FALLTHROUGH
}
