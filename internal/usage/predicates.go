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
	"go/constant"
	"go/token"
	"go/types"
	"math"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/apiguard/internal/astutil"
	"fillmore-labs.com/apiguard/internal/config"
	"fillmore-labs.com/apiguard/internal/constraint"
	"fillmore-labs.com/apiguard/internal/guard"
	"fillmore-labs.com/apiguard/internal/symbol"
)

// predicates converts conditions into [guard.Predicate] trees.
type predicates struct {
	info       *types.Info
	versions   map[string]config.VersionExpr
	recognizer guard.Recognizer

	// arguments holds the checks taking their level as an argument or guarding a callback.
	arguments map[string]*CheckFact

	// locals maps boolean variables that are assigned once to their version check.
	locals map[*types.Var]ast.Expr
}

var comparisons = map[token.Token]guard.Op{
	token.GEQ: guard.GE,
	token.GTR: guard.GT,
	token.LEQ: guard.LE,
	token.LSS: guard.LT,
	token.EQL: guard.EQ,
	token.NEQ: guard.NE,
}

// of returns the predicate tree of a boolean expression.
func (p *predicates) of(e ast.Expr) guard.Predicate {
	switch e := ast.Unparen(e).(type) {
	case *ast.UnaryExpr:
		if e.Op == token.NOT {
			return guard.Not{X: p.of(e.X)}
		}

	case *ast.BinaryExpr:
		switch e.Op {
		case token.LAND:
			return guard.And{X: p.of(e.X), Y: p.of(e.Y)}

		case token.LOR:
			return guard.Or{X: p.of(e.X), Y: p.of(e.Y)}

		default:
			if op, ok := comparisons[e.Op]; ok {
				return p.compare(op, e)
			}
		}

	case *ast.CallExpr:
		return p.call(e)

	case *ast.Ident:
		if v, ok := p.info.Uses[e].(*types.Var); ok {
			if init, ok := p.locals[v]; ok {
				return p.of(init)
			}
		}
	}

	return guard.Opaque{}
}

func (p *predicates) compare(op guard.Op, e *ast.BinaryExpr) guard.Predicate {
	if v, ok := p.version(e.X); ok {
		if n, ok := p.constant(e.Y); ok {
			level, dotted := v.Level(n)

			return guard.NewCompare(v.Axis, op, level, dotted, true, e.Pos())
		}
	}

	if v, ok := p.version(e.Y); ok {
		if n, ok := p.constant(e.X); ok {
			level, dotted := v.Level(n)

			return guard.NewCompare(v.Axis, op, level, dotted, false, e.Pos())
		}
	}

	return guard.Opaque{}
}

func (p *predicates) call(e *ast.CallExpr) guard.Predicate {
	if c, fact, ok := p.argumentCheck(e); ok {
		if fact.Lambda >= 0 {
			return guard.Opaque{}
		}

		return c
	}

	fn := typeutil.StaticCallee(p.info, e)
	if fn == nil || !returnsBool(fn) {
		return guard.Opaque{}
	}

	c, ok := p.recognizer.Recognize(symbol.FuncKey(fn).String(), fn.Name(), e.Pos())
	if !ok {
		return guard.Opaque{}
	}

	return c
}

// version reports whether e evaluates to the running platform version on some axis.
func (p *predicates) version(e ast.Expr) (config.VersionExpr, bool) {
	e = ast.Unparen(e)

	call, isCall := e.(*ast.CallExpr)
	if isCall && len(call.Args) == 1 && p.info.Types[call.Fun].IsType() {
		return p.version(call.Args[0]) // conversion
	}

	if isCall {
		fn := typeutil.StaticCallee(p.info, call)
		if fn == nil {
			return config.VersionExpr{}, false
		}

		v, ok := p.versions[symbol.FuncKey(fn).String()]
		if !ok {
			return config.VersionExpr{}, false
		}

		if !v.AxisArgument {
			return v, len(call.Args) == 0
		}

		if len(call.Args) != 1 {
			return config.VersionExpr{}, false
		}

		n, ok := p.constant(call.Args[0])
		if !ok || n < 0 || n > math.MaxInt32 {
			return config.VersionExpr{}, false
		}

		v.Axis = constraint.Axis(n)

		return v, true
	}

	key, ok := p.varKey(e)
	if !ok {
		return config.VersionExpr{}, false
	}

	v, ok := p.versions[key.String()]

	return v, ok && !v.AxisArgument
}

// varKey returns the key of a package variable or a field selection.
func (p *predicates) varKey(e ast.Expr) (symbol.Key, bool) {
	var id *ast.Ident

	switch e := e.(type) {
	case *ast.Ident:
		id = e

	case *ast.SelectorExpr:
		if sel, ok := p.info.Selections[e]; ok && sel.Kind() == types.FieldVal {
			return symbol.MemberKey(fieldOwner(sel), e.Sel.Name), true
		}

		id = e.Sel

	default:
		return symbol.Key{}, false
	}

	v, ok := p.info.Uses[id].(*types.Var)
	if !ok {
		return symbol.Key{}, false
	}

	return symbol.ObjectKey(v)
}

func (p *predicates) constant(e ast.Expr) (int64, bool) {
	tv, ok := p.info.Types[e]
	if !ok || tv.Value == nil {
		return 0, false
	}

	v := constant.ToInt(tv.Value)
	if v.Kind() != constant.Int {
		return 0, false
	}

	return constant.Int64Val(v)
}

// scanLocals records the boolean variables in fn holding a version check
// that are never written after their declaration.
func (p *predicates) scanLocals(fn inspector.Cursor) {
	p.locals = make(map[*types.Var]ast.Expr)
	written := make(map[*types.Var]bool)

	nodes := []ast.Node{
		// keep-sorted start
		(*ast.AssignStmt)(nil),
		(*ast.IncDecStmt)(nil),
		(*ast.RangeStmt)(nil),
		(*ast.UnaryExpr)(nil),
		(*ast.ValueSpec)(nil),
		// keep-sorted end
	}

	for c := range fn.Preorder(nodes...) {
		n := c.Node()

		if id, value, ok := astutil.DefinedValue(n); ok {
			if v, ok := p.info.Defs[id].(*types.Var); ok && guard.IsVersionCheck(p.of(value)) {
				p.locals[v] = value
			}

			continue
		}

		switch n := n.(type) {
		case *ast.UnaryExpr:
			if n.Op != token.AND {
				continue
			}

			if id, ok := ast.Unparen(n.X).(*ast.Ident); ok {
				if v, ok := p.info.Uses[id].(*types.Var); ok {
					written[v] = true // address taken
				}
			}

		case ast.Stmt:
			for id := range astutil.AssignedIdents(n) {
				if v, ok := p.info.Uses[id].(*types.Var); ok {
					written[v] = true
				}
			}
		}
	}

	for v := range written {
		delete(p.locals, v)
	}
}

func returnsBool(fn *types.Func) bool {
	res := fn.Signature().Results()
	if res.Len() != 1 {
		return false
	}

	b, ok := res.At(0).Type().Underlying().(*types.Basic)

	return ok && b.Info()&types.IsBoolean != 0
}

// fieldOwner returns the type declaring the selected field.
func fieldOwner(sel *types.Selection) types.Type {
	t := sel.Recv()
	path := sel.Index()

	for _, i := range path[:len(path)-1] {
		st, ok := deref(t).Underlying().(*types.Struct)
		if !ok {
			return t
		}

		t = st.Field(i).Type()
	}

	return t
}

func deref(t types.Type) types.Type {
	t = types.Unalias(t)
	if p, ok := t.(*types.Pointer); ok {
		return types.Unalias(p.Elem())
	}

	return t
}
