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

package app

import (
	"os"

	"test/platform"
)

func guarded() {
	if platform.SDK >= 23 {
		_ = platform.NewCamera() // want "call platform.NewCamera: >=23"
	}

	if platform.SDK < 23 {
		platform.NewCamera() // want "call platform.NewCamera: <23"
	} else {
		platform.NewCamera() // want "call platform.NewCamera: >=23"
	}
}

func earlyExit() {
	if platform.SDK < 23 {
		return
	}

	platform.NewCamera() // want "call platform.NewCamera: >=23"
}

func field() {
	if platform.SDK >= 26 {
		c := platform.NewCamera() // want "call platform.NewCamera: >=26"
		_ = c.Flash               // want "field read platform.Camera.Flash: >=26"
	}
}

func constant() int {
	return platform.LevelT // want "field read platform.LevelT: any"
}

func tagged() {
	switch platform.SDK {
	case 30:
		platform.NewCamera() // want "call platform.NewCamera: ==30"
	}
}

func tagless() {
	switch {
	case platform.SDK >= 28:
		platform.NewCamera() // want "call platform.NewCamera: >=28"

	case platform.SDK >= 23:
		platform.NewCamera() // want "call platform.NewCamera: >=23 && <28"
	}
}

func chains() {
	if platform.SDK >= 24 && platform.NewCamera() != nil { // want "call platform.NewCamera: >=24"
		return
	}

	if platform.SDK < 24 || platform.NewCamera() == nil { // want "call platform.NewCamera: >=24"
		return
	}

	if !(platform.SDK < 26) {
		platform.NewCamera() // want "call platform.NewCamera: >=26"
	}
}

func locals() {
	ok := platform.SDK >= 26
	if ok {
		platform.NewCamera() // want "call platform.NewCamera: >=26"
	}

	changed := platform.SDK >= 26
	changed = len(os.Args) > 1

	if changed {
		platform.NewCamera() // want "call platform.NewCamera: any"
	}
}

func extension() {
	if platform.Extension(30) >= 4 {
		platform.NewCamera() // want "call platform.NewCamera: 30>=4"
	}
}

func predicates() {
	if platform.IsAtLeastT() {
		platform.NewCamera() // want "call platform.NewCamera: >=33"
	}

	if isAtLeastS() {
		platform.NewCamera() // want "call platform.NewCamera: >=31"
	}

	if customCheck() {
		platform.NewCamera() // want "call platform.NewCamera: >=29"
	}
}

func isAtLeastS() bool { return platform.SDK >= 31 } // want isAtLeastS:`checks >=31 \(inferred\)`

//apiguard:checks-at-least >=29
func customCheck() bool { return len(os.Args) > 29 } // want customCheck:"checks >=29"

//apiguard:requires >=26
func openCamera() { // want openCamera:"requires >=26"
	platform.NewCamera() // want "call platform.NewCamera: >=26"
}

func useOpen() {
	openCamera() // want "call app.openCamera: any"
}

//apiguard:target >=28
func written() {
	platform.NewCamera() // want "call platform.NewCamera: >=28"
}

func closure() {
	if platform.SDK >= 23 {
		go func() {
			platform.NewCamera() // want "call platform.NewCamera: >=23"
		}()
	}
}

type listener struct{}

func (listener) OnEvent() {}

func kinds(err error) {
	switch err.(type) {
	case platform.CameraError: // want "catch type platform.CameraError: any"
	}

	platform.Register(listener{}) // want "implicit conversion platform.Listener: any"

	for range platform.All() { // want "range loop platform.Cameras: any"
	}

	if platform.SDK >= 24 {
		_ = platform.Camera{} // want "constructor call platform.Camera: >=24"
	}
}

func references(x any, n int) {
	_ = x.(*platform.Camera)  // want "type reference platform.Camera: any"
	_ = platform.Cameras(nil) // want "type reference platform.Cameras: any"

	switch n {
	case platform.LevelT: // want "switch case platform.LevelT: any"
	}

	open := platform.NewCamera().Open // want "call platform.NewCamera: any" "method reference platform.Camera.Open: any"
	_ = open
}

//apiguard:checks-at-least param=0
func atLeast(level int) bool { return len(os.Args) >= level } // want atLeast:"checks argument 0"

func sdkAtLeast(level int) bool { return platform.SDK >= level } // want sdkAtLeast:`checks argument 0 \(inferred\)`

//apiguard:checks-at-least >=30 lambda=0
func onR(f func()) { go f() } // want onR:"checks >=30 before calling argument 0"

func runIfAtLeast(level int, f func()) { // want runIfAtLeast:`checks argument 0 before calling argument 1 \(inferred\)`
	if platform.SDK >= level {
		f()
	}
}

func arguments(level int) {
	if atLeast(26) {
		platform.NewCamera() // want "call platform.NewCamera: >=26"
	}

	if sdkAtLeast(27) {
		platform.NewCamera() // want "call platform.NewCamera: >=27"
	}

	if atLeast(level) {
		platform.NewCamera() // want "call platform.NewCamera: any"
	}

	onR(func() {
		platform.NewCamera() // want "call platform.NewCamera: >=30"
	})

	runIfAtLeast(31, func() {
		platform.NewCamera() // want "call platform.NewCamera: >=31"
	})
}

//apiguard:checks-at-least param=1
func badParam(level int) bool { return level > 0 } // want "Parameter 1 of badParam is not an integer level"

//apiguard:checks-at-least >=30 param=0 // want "Invalid checks-at-least directive"
func twice(level int) bool { return level > 0 }

//apiguard:requires bogus // want "Invalid requires directive"
func invalid() {}

//apiguard:frobnicate // want "Unknown directive"
func unknown() {}
