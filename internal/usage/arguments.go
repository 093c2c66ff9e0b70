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
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/apiguard/internal/astutil"
	"fillmore-labs.com/apiguard/internal/config"
	"fillmore-labs.com/apiguard/internal/constraint"
	"fillmore-labs.com/apiguard/internal/guard"
	"fillmore-labs.com/apiguard/internal/symbol"
)

// NoArgument marks an unused argument index of a [CheckFact].
const NoArgument = -1

var errArgument = errors.New("invalid argument index")

// checkOptions splits the "param=N" and "lambda=N" options from a checks-at-least argument.
func checkOptions(arg string) (rest string, param, lambda int, err error) {
	param, lambda = NoArgument, NoArgument

	var fields []string

	for _, f := range strings.Fields(arg) {
		name, value, ok := strings.Cut(f, "=")

		var index *int

		switch {
		case ok && name == "param":
			index = &param

		case ok && name == "lambda":
			index = &lambda

		default:
			fields = append(fields, f)

			continue
		}

		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return "", 0, 0, fmt.Errorf("%w %q", errArgument, f)
		}

		*index = n
	}

	return strings.Join(fields, " "), param, lambda, nil
}

// validCheck reports a problem when a checks-at-least directive does not fit the signature of obj.
func (c *Collector) validCheck(decl *ast.FuncDecl, obj *types.Func, fact *CheckFact) bool {
	params := obj.Signature().Params()

	if fact.Param >= 0 && (fact.Param >= params.Len() || !isInteger(params.At(fact.Param).Type())) {
		c.problemf(decl.Name.Pos(), "Parameter %d of %s is not an integer level", fact.Param, decl.Name.Name)

		return false
	}

	if fact.Lambda >= 0 {
		if fact.Lambda >= params.Len() || !isFunc(params.At(fact.Lambda).Type()) {
			c.problemf(decl.Name.Pos(), "Parameter %d of %s is not a function", fact.Lambda, decl.Name.Name)

			return false
		}

		return true
	}

	if !returnsBool(obj) {
		c.problemf(decl.Name.Pos(), "%s directive on %s, which does not return a boolean", astutil.ChecksAtLeast, decl.Name.Name)

		return false
	}

	return true
}

// argumentCheck is the check performed by a call of a function taking the level
// as an argument or calling back only on supported versions.
func (p *predicates) argumentCheck(call *ast.CallExpr) (guard.Check, *CheckFact, bool) {
	fn := typeutil.StaticCallee(p.info, call)
	if fn == nil {
		return guard.Check{}, nil, false
	}

	fact, ok := p.arguments[symbol.FuncKey(fn).String()]
	if !ok {
		return guard.Check{}, nil, false
	}

	cons := fact.Constraint

	if fact.Param >= 0 {
		if fact.Param >= len(call.Args) {
			return guard.Check{}, nil, false
		}

		n, ok := p.constant(call.Args[fact.Param])
		if !ok {
			return guard.Check{}, nil, false
		}

		level, _ := config.VersionExpr{Axis: fact.Axis, Scale: fact.Scale}.Level(n)
		cons = constraint.AtLeast(fact.Axis, level)
	}

	tier := guard.Explicit
	if fact.Inferred {
		tier = guard.PlatformKnown
	}

	return guard.Check{Name: fn.Name(), Constraint: cons, Tier: tier, Pos: call.Pos()}, fact, true
}

// callback returns the guard of a function literal passed as argument index of call.
func (c *Collector) callback(call *ast.CallExpr, index int) (guard.Branch, bool) {
	check, fact, ok := c.preds.argumentCheck(call)
	if !ok || fact.Lambda != index {
		return guard.Branch{}, false
	}

	return guard.Branch{Cond: check, Then: true}, true
}

// inferArguments exports a [CheckFact] for functions comparing the platform version
// with a parameter, or calling a function parameter under a version check:
//
//	func atLeast(level int) bool { return build.SDKInt >= level }
//
//	func runIfAtLeast(level int, f func()) {
//		if build.SDKInt >= level {
//			f()
//		}
//	}
func (c *Collector) inferArguments(decl *ast.FuncDecl, obj *types.Func) {
	if value, ok := singleReturn(decl.Body); ok {
		if !returnsBool(obj) {
			return
		}

		if fact, ok := c.paramCompare(value, obj); ok {
			c.export(obj, fact)
		}

		return
	}

	cond, fun, ok := guardedCall(decl.Body)
	if !ok {
		return
	}

	lambda := paramIndex(c.TypesInfo, obj, fun)
	if lambda < 0 {
		return
	}

	fact, ok := c.paramCompare(cond, obj)
	if !ok {
		p := c.preds.of(cond)
		if !guard.IsVersionCheck(p) {
			return
		}

		pos, _ := guard.Eval(p, constraint.None(), false)
		if pos.IsNone() {
			return
		}

		fact = newCheckFact(pos.Simplify(), true)
	}

	fact.Lambda = lambda
	c.export(obj, fact)
}

// paramCompare matches "version >= param" and "param <= version".
func (c *Collector) paramCompare(e ast.Expr, obj *types.Func) (*CheckFact, bool) {
	b, ok := ast.Unparen(e).(*ast.BinaryExpr)
	if !ok {
		return nil, false
	}

	version, param := b.X, b.Y

	switch b.Op {
	case token.GEQ:

	case token.LEQ:
		version, param = param, version

	default:
		return nil, false
	}

	v, ok := c.preds.version(version)
	if !ok {
		return nil, false
	}

	i := paramIndex(c.TypesInfo, obj, param)
	if i < 0 {
		return nil, false
	}

	return &CheckFact{Param: i, Lambda: NoArgument, Axis: v.Axis, Scale: v.Scale, Inferred: true}, true
}

// guardedCall matches a body consisting of "if cond { f() }".
func guardedCall(body *ast.BlockStmt) (cond, fun ast.Expr, ok bool) {
	if body == nil || len(body.List) != 1 {
		return nil, nil, false
	}

	ifs, ok := body.List[0].(*ast.IfStmt)
	if !ok || ifs.Init != nil || ifs.Else != nil || len(ifs.Body.List) != 1 {
		return nil, nil, false
	}

	stmt, ok := ifs.Body.List[0].(*ast.ExprStmt)
	if !ok {
		return nil, nil, false
	}

	call, ok := ast.Unparen(stmt.X).(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return nil, nil, false
	}

	return ifs.Cond, call.Fun, true
}

// paramIndex returns the index of the parameter of obj e refers to, or -1.
func paramIndex(info *types.Info, obj *types.Func, e ast.Expr) int {
	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok {
		return NoArgument
	}

	v, ok := info.Uses[id].(*types.Var)
	if !ok {
		return NoArgument
	}

	params := obj.Signature().Params()
	for i := range params.Len() {
		if params.At(i) == v {
			return i
		}
	}

	return NoArgument
}

func isInteger(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Info()&types.IsInteger != 0
}

func isFunc(t types.Type) bool {
	_, ok := t.Underlying().(*types.Signature)

	return ok
}
