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

package symbol_test

import (
	"go/token"
	"go/types"
	"testing"

	. "fillmore-labs.com/apiguard/internal/symbol"
)

func TestFuncKey(t *testing.T) {
	t.Parallel()

	pkg := types.NewPackage("example.com/platform", "platform")

	typeName := types.NewTypeName(token.NoPos, pkg, "Camera", nil)
	emptystruct := types.NewStruct(nil, nil)
	named := types.NewNamed(typeName, emptystruct, nil)
	aliasName := types.NewTypeName(token.NoPos, pkg, "CameraRef", nil)
	alias := types.NewAlias(aliasName, types.NewPointer(named))

	method := func(recvType types.Type) *types.Func {
		recv := types.NewParam(token.NoPos, pkg, "", recvType)
		sig := types.NewSignatureType(recv, nil, nil, nil, nil, false)

		return types.NewFunc(token.NoPos, pkg, "Open", sig)
	}

	tests := [...]struct {
		name string
		fun  *types.Func
		want string
	}{
		{
			name: "function",
			fun:  types.NewFunc(token.NoPos, pkg, "NewCamera", types.NewSignatureType(nil, nil, nil, nil, nil, false)),
			want: "example.com/platform.NewCamera",
		},
		{
			name: "value method",
			fun:  method(named),
			want: "(example.com/platform.Camera).Open",
		},
		{
			name: "pointer method",
			fun:  method(types.NewPointer(named)),
			want: "(example.com/platform.Camera).Open",
		},
		{
			name: "alias receiver",
			fun:  method(alias),
			want: "(example.com/platform.Camera).Open",
		},
		{
			name: "interface method",
			fun: func() *types.Func {
				sig := types.NewSignatureType(nil, nil, nil, nil, nil, false)
				iface := types.NewInterfaceType([]*types.Func{
					types.NewFunc(token.NoPos, pkg, "Open", sig),
				}, nil).Complete()

				return iface.Method(0)
			}(),
			want: "(interface).Open",
		},
		{
			name: "function without package",
			fun:  types.NewFunc(token.NoPos, nil, "open", types.NewSignatureType(nil, nil, nil, nil, nil, false)),
			want: "open",
		},
		{
			name: "universe method",
			fun:  types.Universe.Lookup("error").Type().Underlying().(*types.Interface).Method(0),
			want: "(error).Error",
		},
		{
			name: "invalid receiver",
			fun:  method(emptystruct),
			want: "(<invalid>).Open",
		},
		{
			name: "invalid pointer receiver",
			fun:  method(types.NewPointer(emptystruct)),
			want: "(<invalid>).Open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if key := FuncKey(tt.fun); key.String() != tt.want {
				t.Errorf("FuncKey() = %q, want %q", key, tt.want)
			}
		})
	}
}

func TestObjectKey(t *testing.T) {
	t.Parallel()

	pkg := types.NewPackage("example.com/platform", "platform")

	level := types.NewConst(token.NoPos, pkg, "LevelT", types.Typ[types.Int], nil)
	pkg.Scope().Insert(level)

	field := types.NewField(token.NoPos, pkg, "Flash", types.Typ[types.Bool], false)

	if key, ok := ObjectKey(level); !ok || key.String() != "example.com/platform.LevelT" {
		t.Errorf("ObjectKey(const) = %q, %t", key, ok)
	}

	if _, ok := ObjectKey(field); ok {
		t.Error("ObjectKey(field) returned a key")
	}

	member := MemberKey(types.NewPointer(types.NewNamed(types.NewTypeName(token.NoPos, pkg, "Camera", nil), types.NewStruct(nil, nil), nil)), "Flash")
	if got, want := member.String(), "(example.com/platform.Camera).Flash"; got != want {
		t.Errorf("MemberKey() = %q, want %q", got, want)
	}

	if got, want := member.OwnerKey().String(), "example.com/platform.Camera"; got != want {
		t.Errorf("OwnerKey() = %q, want %q", got, want)
	}
}
