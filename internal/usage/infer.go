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
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/apiguard/internal/constraint"
	"fillmore-labs.com/apiguard/internal/guard"
	"fillmore-labs.com/apiguard/internal/symbol"
)

// inferChecks exports a [CheckFact] for boolean functions whose body only returns
// a version check, like
//
//	func isAtLeastT() bool { return build.SDKInt >= 33 }
//
// Functions checking a level passed as argument are handled by [Collector.inferArguments].
func (c *Collector) inferChecks(root inspector.Cursor) {
	for fn := range root.Preorder((*ast.FuncDecl)(nil)) {
		decl := fn.Node().(*ast.FuncDecl)

		obj, ok := c.TypesInfo.Defs[decl.Name].(*types.Func)
		if !ok || c.facts.declared(symbol.FuncKey(obj).String()) {
			continue
		}

		value, ok := singleReturn(decl.Body)
		if !ok || !returnsBool(obj) {
			c.inferArguments(decl, obj)

			continue
		}

		p := c.preds.of(value)
		if !guard.IsVersionCheck(p) {
			c.inferArguments(decl, obj)

			continue
		}

		pos, neg := guard.Eval(p, constraint.None(), false)
		if pos.IsNone() || !pos.Not().Equivalent(neg) {
			continue // opaque operands
		}

		c.export(obj, newCheckFact(pos.Simplify(), true))
	}
}

func singleReturn(body *ast.BlockStmt) (ast.Expr, bool) {
	if body == nil || len(body.List) != 1 {
		return nil, false
	}

	ret, ok := body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return nil, false
	}

	return ret.Results[0], true
}
