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

// Package flow recognizes statements that leave their block for good.
package flow

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/apiguard/internal/symbol"
)

// _noReturn are functions that do not return.
var _noReturn = map[symbol.Key]struct{}{
	{Path: "log", Name: "Fatal"}:   {},
	{Path: "log", Name: "Fatalf"}:  {},
	{Path: "log", Name: "Fatalln"}: {},
	{Path: "log", Name: "Panic"}:   {},
	{Path: "log", Name: "Panicf"}:  {},
	{Path: "log", Name: "Panicln"}: {},

	{Path: "log", Owner: "Logger", Name: "Fatal"}:   {},
	{Path: "log", Owner: "Logger", Name: "Fatalf"}:  {},
	{Path: "log", Owner: "Logger", Name: "Fatalln"}: {},
	{Path: "log", Owner: "Logger", Name: "Panic"}:   {},
	{Path: "log", Owner: "Logger", Name: "Panicf"}:  {},
	{Path: "log", Owner: "Logger", Name: "Panicln"}: {},

	{Path: "os", Name: "Exit"}:        {},
	{Path: "syscall", Name: "Exit"}:   {},
	{Path: "runtime", Name: "Goexit"}: {},

	{Path: "testing", Owner: "common", Name: "Fatal"}:   {},
	{Path: "testing", Owner: "common", Name: "Fatalf"}:  {},
	{Path: "testing", Owner: "common", Name: "FailNow"}: {},
	{Path: "testing", Owner: "common", Name: "Skip"}:    {},
	{Path: "testing", Owner: "common", Name: "Skipf"}:   {},
	{Path: "testing", Owner: "common", Name: "SkipNow"}: {},

	{Path: "testing", Owner: "TB", Name: "Fatal"}:   {},
	{Path: "testing", Owner: "TB", Name: "Fatalf"}:  {},
	{Path: "testing", Owner: "TB", Name: "FailNow"}: {},
	{Path: "testing", Owner: "TB", Name: "Skip"}:    {},
	{Path: "testing", Owner: "TB", Name: "Skipf"}:   {},
	{Path: "testing", Owner: "TB", Name: "SkipNow"}: {},

	{Path: "go.uber.org/zap", Owner: "Logger", Name: "Fatal"}:          {},
	{Path: "go.uber.org/zap", Owner: "Logger", Name: "Panic"}:          {},
	{Path: "go.uber.org/zap", Owner: "SugaredLogger", Name: "Fatal"}:   {},
	{Path: "go.uber.org/zap", Owner: "SugaredLogger", Name: "Fatalf"}:  {},
	{Path: "go.uber.org/zap", Owner: "SugaredLogger", Name: "Fatalln"}: {},
	{Path: "go.uber.org/zap", Owner: "SugaredLogger", Name: "Fatalw"}:  {},
	{Path: "go.uber.org/zap", Owner: "SugaredLogger", Name: "Panic"}:   {},
	{Path: "go.uber.org/zap", Owner: "SugaredLogger", Name: "Panicf"}:  {},
	{Path: "go.uber.org/zap", Owner: "SugaredLogger", Name: "Panicln"}: {},
	{Path: "go.uber.org/zap", Owner: "SugaredLogger", Name: "Panicw"}:  {},
}

// CantReturn reports whether the call never returns to its caller, either because it
// panics or because it ends the goroutine or the process.
func CantReturn(info *types.Info, call *ast.CallExpr) bool {
	ex := call.Fun

unwrap:
	switch e := ex.(type) {
	case *ast.Ident:
		return cantReturnFunc(info, e)

	case *ast.SelectorExpr:
		return cantReturnFunc(info, e.Sel)

	case *ast.IndexExpr: // f[T]
		ex = e.X
		goto unwrap

	case *ast.IndexListExpr: // f[T, U]
		ex = e.X
		goto unwrap

	case *ast.ParenExpr:
		ex = e.X
		goto unwrap

	default:
		return false
	}
}

func cantReturnFunc(info *types.Info, id *ast.Ident) bool {
	use := info.Uses[id]
	if fun, ok := use.(*types.Func); ok {
		_, ok := _noReturn[symbol.FuncKey(fun)]

		return ok
	}

	return use == builtinPanic
}

var builtinPanic = types.Universe.Lookup("panic").(*types.Builtin)
