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
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/apiguard/internal/astutil"
	"fillmore-labs.com/apiguard/internal/constraint"
	"fillmore-labs.com/apiguard/internal/scope"
)

// Problem is a malformed or misplaced directive.
type Problem struct {
	Pos     token.Pos
	Message string
}

// scopes maps the declarations of a package to records of a [scope.Arena].
type scopes struct {
	arena *scope.Arena
	pkg   scope.ID
	nodes map[astutil.NodeIndex]scope.ID
	types map[*types.TypeName]scope.ID
}

// of returns the scope of the innermost function enclosing c.
func (s *scopes) of(c inspector.Cursor) scope.ID {
	cur, idx, ok := astutil.EnclosingScope(c)
	if !ok {
		return s.pkg
	}

	if id, ok := s.nodes[idx]; ok {
		return id
	}

	// function literals are added on first use
	id := s.arena.Add(s.of(cur.Parent()), scope.FuncLit, "", cur.Node().Pos())
	s.nodes[idx] = id

	return id
}

// directives are the requirements declared in a doc comment.
type directives struct {
	declared []scope.Declared
	requires constraint.Constraint
	hasReq   bool
	check    *CheckFact
}

// declarations builds the scope arena of the package and exports the facts declared by directives.
func (c *Collector) declarations(root inspector.Cursor) {
	s := &c.scopes

	var build []scope.Declared
	if floor, ok := c.platform.Packages[c.Pkg.Path()]; ok {
		build = append(build, scope.Declared{Constraint: floor, Source: scope.Build})
	}

	s.pkg = s.arena.Add(scope.NoScope, scope.Package, c.Pkg.Path(), token.NoPos, build...)

	// types first, so methods find the scope of their receiver
	for f := range root.Children() {
		file := f.Node().(*ast.File)

		d := c.directives(file.Doc, false)
		id := s.arena.Add(s.pkg, scope.File, filepath.Base(c.Fset.File(file.FileStart).Name()), file.Package, d.declared...)
		s.nodes[astutil.NodeIndexOf(f)] = id

		for t := range f.Preorder((*ast.TypeSpec)(nil)) {
			if k, _ := t.Parent().ParentEdge(); k != edge.File_Decls {
				continue // local type
			}

			c.typeSpec(id, t)
		}
	}

	for f := range root.Children() {
		for fn := range f.Preorder((*ast.FuncDecl)(nil)) {
			c.funcDecl(fn)
		}
	}
}

func (c *Collector) typeSpec(file scope.ID, t inspector.Cursor) {
	spec := t.Node().(*ast.TypeSpec)

	doc := spec.Doc
	if gen := t.Parent().Node().(*ast.GenDecl); doc == nil && !gen.Lparen.IsValid() {
		doc = gen.Doc
	}

	obj, ok := c.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return
	}

	d := c.directives(doc, false)
	c.scopes.types[obj] = c.scopes.arena.Add(file, scope.Type, spec.Name.Name, spec.Pos(), d.declared...)

	if d.hasReq {
		c.export(obj, &RequirementFact{Constraint: d.requires})
	}
}

func (c *Collector) funcDecl(fn inspector.Cursor) {
	decl := fn.Node().(*ast.FuncDecl)

	parent := c.scopes.of(fn.Parent())

	obj, ok := c.TypesInfo.Defs[decl.Name].(*types.Func)
	if ok {
		if recv := obj.Signature().Recv(); recv != nil {
			if n, ok := deref(recv.Type()).(*types.Named); ok {
				if id, ok := c.scopes.types[n.Origin().Obj()]; ok {
					parent = id
				}
			}
		}
	}

	d := c.directives(decl.Doc, true)
	c.scopes.nodes[astutil.NodeIndexOf(fn)] = c.scopes.arena.Add(parent, scope.Func, decl.Name.Name, decl.Pos(), d.declared...)

	if !ok {
		return
	}

	if d.hasReq {
		c.export(obj, &RequirementFact{Constraint: d.requires})
	}

	if d.check != nil && c.validCheck(decl, obj, d.check) {
		c.export(obj, d.check)
	}
}

// directives parses the apiguard directives of a doc comment.
func (c *Collector) directives(doc *ast.CommentGroup, function bool) directives {
	var d directives

	for dir := range astutil.Directives(doc) {
		switch dir.Verb {
		case astutil.Requires, astutil.Target, astutil.ChecksAtLeast:
		default:
			c.problemf(dir.Pos, "Unknown directive %q", dir.Verb)

			continue
		}

		if dir.Verb == astutil.ChecksAtLeast && !function {
			c.problemf(dir.Pos, "%s directive is only valid on functions", dir.Verb)

			continue
		}

		arg := dir.Argument

		var check *CheckFact

		if dir.Verb == astutil.ChecksAtLeast {
			rest, param, lambda, err := checkOptions(arg)
			if err != nil {
				c.problemf(dir.Pos, "Invalid %s directive: %v", dir.Verb, err)

				continue
			}

			check = &CheckFact{Param: param, Lambda: lambda, Axis: c.platform.Axes.Primary()}

			if param >= 0 {
				if rest != "" {
					c.problemf(dir.Pos, "Invalid %s directive: level %q and parameter both given", dir.Verb, rest)
				} else {
					d.check = check
				}

				continue
			}

			arg = rest
		}

		cons, err := c.platform.Axes.Parse(arg)
		if err != nil {
			c.problemf(dir.Pos, "Invalid %s directive: %v", dir.Verb, err)

			continue
		}

		switch dir.Verb {
		case astutil.Requires:
			d.declared = append(d.declared, scope.Declared{Constraint: cons, Source: scope.Annotation, Pos: dir.Pos})
			d.requires = d.requires.And(cons)
			d.hasReq = true

		case astutil.Target:
			d.declared = append(d.declared, scope.Declared{Constraint: cons, Source: scope.Marker, Pos: dir.Pos})

		case astutil.ChecksAtLeast:
			check.Constraint = cons
			d.check = check
		}
	}

	d.requires = d.requires.Simplify()

	return d
}

func (c *Collector) export(obj types.Object, fact analysis.Fact) {
	c.ExportObjectFact(obj, fact)
	c.facts.add(obj, fact)
}

func (c *Collector) problemf(pos token.Pos, format string, args ...any) {
	c.problems = append(c.problems, Problem{Pos: pos, Message: fmt.Sprintf(format, args...)})
}
