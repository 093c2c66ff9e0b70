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

// Package symbol derives the stable keys requirements are stored under.
//
// Package members are keyed "path.Name", members of named types
// "(path.Type).Name", so the method Open of the type Camera in
// example.com/platform becomes "(example.com/platform.Camera).Open".
package symbol

import (
	"go/types"
	"strings"
)

// Key identifies a declaration across packages.
type Key struct {
	Path  string // package path
	Owner string // named receiver or declaring type, if any
	Name  string
}

func (k Key) String() string {
	var sb strings.Builder

	if k.Owner != "" {
		sb.WriteByte('(')
	}

	if k.Path != "" {
		sb.WriteString(k.Path)
		sb.WriteByte('.')
	}

	if k.Owner != "" {
		sb.WriteString(k.Owner)
		sb.WriteString(").")
	}

	sb.WriteString(k.Name)

	return sb.String()
}

// OwnerKey returns the key of the type owning k, or the zero key for package members.
func (k Key) OwnerKey() Key {
	if k.Owner == "" {
		return Key{}
	}

	return Key{Path: k.Path, Name: k.Owner}
}

// IsZero reports whether k is the zero key.
func (k Key) IsZero() bool { return k == Key{} }

// FuncKey returns the key of a function or method.
func FuncKey(fun *types.Func) Key {
	fun = fun.Origin()

	recv := fun.Signature().Recv()
	if recv == nil {
		return Key{Path: pkgPath(fun.Pkg()), Name: fun.Name()}
	}

	return MemberKey(recv.Type(), fun.Name())
}

// MemberKey returns the key of the field or method name of owner.
func MemberKey(owner types.Type, name string) Key {
	t := types.Unalias(owner)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}

	switch t := t.(type) {
	case *types.Named:
		obj := t.Origin().Obj()

		return Key{Path: pkgPath(obj.Pkg()), Owner: obj.Name(), Name: name}

	case *types.Interface:
		return Key{Owner: "interface", Name: name}

	default:
		return Key{Owner: "<invalid>", Name: name}
	}
}

// ObjectKey returns the key of a package-level object or method. Fields and
// local objects have no key, use [MemberKey] with the selected type.
func ObjectKey(obj types.Object) (Key, bool) {
	switch obj := obj.(type) {
	case *types.Func:
		return FuncKey(obj), true

	case *types.TypeName, *types.Const, *types.Var:
		if obj.Pkg() == nil || obj.Parent() != obj.Pkg().Scope() {
			return Key{}, false
		}

		return Key{Path: obj.Pkg().Path(), Name: obj.Name()}, true

	default:
		return Key{}, false
	}
}

// TypeKey returns the key of a named type, after removing pointers.
func TypeKey(t types.Type) (Key, bool) {
	t = types.Unalias(t)
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}

	n, ok := t.(*types.Named)
	if !ok {
		return Key{}, false
	}

	obj := n.Origin().Obj()
	if obj.Pkg() == nil {
		return Key{}, false
	}

	return Key{Path: obj.Pkg().Path(), Name: obj.Name()}, true
}

func pkgPath(pkg *types.Package) string {
	if pkg == nil {
		return ""
	}

	return pkg.Path()
}
