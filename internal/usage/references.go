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
	"path"
	"strings"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/apiguard/internal/requirement"
	"fillmore-labs.com/apiguard/internal/symbol"
	"fillmore-labs.com/apiguard/internal/verdict"
)

var errorType = types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

// reference records a use of a symbol with a known requirement.
func (c *Collector) reference(cur inspector.Cursor, id *ast.Ident) {
	obj := c.TypesInfo.Uses[id]
	if obj == nil || obj.Pkg() == nil {
		return // universe
	}

	key, ok := c.keyOf(cur, obj)
	if !ok {
		return
	}

	sym := c.symbolOf(key)

	switch obj := obj.(type) {
	case *types.Func:
		if alt, ok := c.receiverKey(cur, obj); ok && alt != key {
			sym.Overrides = append(sym.Overrides, alt.String())
		}

	case *types.Const:
		sym.Inlined = true
	}

	if !c.known(sym, key) {
		return
	}

	expr := referenceExpr(cur)
	c.add(kindOf(expr, obj), sym, displayName(key), expr)
}

// keyOf returns the key of a referenced object. Fields are keyed by their declaring type.
func (c *Collector) keyOf(cur inspector.Cursor, obj types.Object) (symbol.Key, bool) {
	v, ok := obj.(*types.Var)
	if !ok || !v.IsField() {
		return symbol.ObjectKey(obj)
	}

	switch kind, _ := cur.ParentEdge(); kind {
	case edge.SelectorExpr_Sel:
		sel, ok := c.TypesInfo.Selections[cur.Parent().Node().(*ast.SelectorExpr)]
		if !ok {
			return symbol.Key{}, false
		}

		return symbol.MemberKey(fieldOwner(sel), v.Name()), true

	case edge.KeyValueExpr_Key:
		lit, ok := cur.Parent().Parent().Node().(*ast.CompositeLit)
		if !ok {
			return symbol.Key{}, false
		}

		return symbol.MemberKey(c.TypesInfo.TypeOf(lit), v.Name()), true

	default:
		return symbol.Key{}, false
	}
}

// receiverKey returns the key of a method as selected on the static receiver type,
// which differs from the declaring type for promoted methods.
func (c *Collector) receiverKey(cur inspector.Cursor, fn *types.Func) (symbol.Key, bool) {
	if kind, _ := cur.ParentEdge(); kind != edge.SelectorExpr_Sel {
		return symbol.Key{}, false
	}

	sel, ok := c.TypesInfo.Selections[cur.Parent().Node().(*ast.SelectorExpr)]
	if !ok || sel.Kind() == types.FieldVal {
		return symbol.Key{}, false
	}

	return symbol.MemberKey(sel.Recv(), fn.Name()), true
}

func (c *Collector) symbolOf(key symbol.Key) requirement.Symbol {
	sym := requirement.Symbol{Key: key.String()}

	if owner := key.OwnerKey(); !owner.IsZero() {
		sym.Owner = owner.String()
	}

	sym.Category = c.platform.Categories[sym.Key]
	if sym.Category == "" && sym.Owner != "" {
		sym.Category = c.platform.Categories[sym.Owner]
	}

	return sym
}

// known reports whether any key of sym has a requirement, possibly unresolved.
// Symbols of the analyzed package only count when declared by a directive.
func (c *Collector) known(sym requirement.Symbol, key symbol.Key) bool {
	var db requirement.Database = c.db
	if key.Path == c.Pkg.Path() {
		db = c.facts.requires
	}

	keys := append([]string{sym.Key, sym.Owner}, sym.Overrides...)

	for _, k := range keys {
		if k == "" {
			continue
		}

		if _, ok := db.Lookup(k); ok {
			return true
		}

		if u, ok := db.(interface{ Unresolved(key string) error }); ok && u.Unresolved(k) != nil {
			return true
		}
	}

	return false
}

func (c *Collector) add(kind verdict.Kind, sym requirement.Symbol, name string, at inspector.Cursor) {
	n := at.Node()

	c.usages = append(c.usages, verdict.Usage{
		Kind:   kind,
		Symbol: sym,
		Name:   name,
		Path:   c.path(at),
		Scope:  c.scopes.of(at),
		Pos:    n.Pos(),
		End:    n.End(),
	})
}

// referenceExpr climbs from an identifier to the expression naming the symbol.
func referenceExpr(cur inspector.Cursor) inspector.Cursor {
	for {
		switch kind, _ := cur.ParentEdge(); kind {
		case edge.SelectorExpr_Sel, edge.ParenExpr_X, edge.IndexExpr_X, edge.IndexListExpr_X, edge.StarExpr_X:
			cur = cur.Parent()

		default:
			return cur
		}
	}
}

func kindOf(expr inspector.Cursor, obj types.Object) verdict.Kind {
	kind, _ := expr.ParentEdge()

	switch obj := obj.(type) {
	case *types.Func:
		if kind == edge.CallExpr_Fun {
			return verdict.Call
		}

		return verdict.MethodRef

	case *types.Const:
		if kind == edge.CaseClause_List {
			return verdict.SwitchCase
		}

		return verdict.FieldRead

	case *types.TypeName:
		switch kind {
		case edge.CompositeLit_Type:
			return verdict.Constructor

		case edge.CaseClause_List:
			_, ok := expr.Parent().Parent().Parent().Node().(*ast.TypeSwitchStmt)
			if ok && implementsError(obj.Type()) {
				return verdict.CatchType
			}
		}

		return verdict.TypeRef

	default:
		return verdict.FieldRead
	}
}

func implementsError(t types.Type) bool {
	return types.Implements(t, errorType) || types.Implements(types.NewPointer(t), errorType)
}

// displayName is the key shortened to the package name, like "platform.Camera.Open".
func displayName(key symbol.Key) string {
	var sb strings.Builder

	if key.Path != "" {
		sb.WriteString(path.Base(key.Path))
		sb.WriteByte('.')
	}

	if key.Owner != "" {
		sb.WriteString(key.Owner)
		sb.WriteByte('.')
	}

	sb.WriteString(key.Name)

	return sb.String()
}

// arguments records arguments implicitly converted to platform interfaces.
func (c *Collector) arguments(cur inspector.Cursor, call *ast.CallExpr) {
	t := c.TypesInfo.TypeOf(call.Fun)
	if t == nil {
		return
	}

	sig, ok := t.Underlying().(*types.Signature)
	if !ok {
		return // conversion or builtin
	}

	params := sig.Params()

	for i, arg := range call.Args {
		var target types.Type

		switch last := params.Len() - 1; {
		case sig.Variadic() && i >= last && !call.Ellipsis.IsValid():
			s, ok := params.At(last).Type().Underlying().(*types.Slice)
			if !ok {
				continue
			}

			target = s.Elem()

		case i < params.Len():
			target = params.At(i).Type()

		default:
			continue
		}

		c.conversion(cur.ChildAt(edge.CallExpr_Args, i), target, arg)
	}
}

// assignment records values implicitly converted to platform interfaces by assignment.
func (c *Collector) assignment(cur inspector.Cursor, n *ast.AssignStmt) {
	if len(n.Lhs) != len(n.Rhs) {
		return
	}

	for i, lhs := range n.Lhs {
		t := c.TypesInfo.TypeOf(lhs)
		if t == nil {
			continue // blank identifier
		}

		c.conversion(cur.ChildAt(edge.AssignStmt_Rhs, i), t, n.Rhs[i])
	}
}

func (c *Collector) conversion(at inspector.Cursor, target types.Type, e ast.Expr) {
	if !types.IsInterface(target) {
		return
	}

	t := c.TypesInfo.TypeOf(e)
	if t == nil || types.IsInterface(t) {
		return
	}

	switch t := t.(type) {
	case *types.Tuple:
		return

	case *types.Basic:
		if t.Kind() == types.UntypedNil {
			return
		}
	}

	key, ok := symbol.TypeKey(target)
	if !ok {
		return
	}

	sym := c.symbolOf(key)
	if !c.known(sym, key) {
		return
	}

	c.add(verdict.ImplicitCast, sym, displayName(key), at)
}

// rangeLoop records loops over values of platform types.
func (c *Collector) rangeLoop(cur inspector.Cursor, n *ast.RangeStmt) {
	key, ok := symbol.TypeKey(c.TypesInfo.TypeOf(n.X))
	if !ok {
		return
	}

	sym := c.symbolOf(key)
	if !c.known(sym, key) {
		return
	}

	c.add(verdict.ForEach, sym, displayName(key), cur.ChildAt(edge.RangeStmt_X, -1))
}
