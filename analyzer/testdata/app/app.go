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

func unguarded() {
	platform.NewCamera() // want `Call requires API level ≥ 23 \(current min is 21\): platform\.NewCamera`
}

func guarded() {
	if platform.SDK >= 23 {
		platform.NewCamera()
	}
}

func earlyExit() {
	if platform.SDK < 23 {
		return
	}

	platform.NewCamera()
}

func insufficient() {
	if platform.SDK >= 23 {
		c := platform.NewCamera()
		_ = c.Flash // want `Field read requires API level ≥ 26 \(current min is 23\): platform\.Camera\.Flash`
	}
}

func closure() func() {
	if platform.SDK >= 23 {
		return func() { platform.NewCamera() }
	}

	return nil
}

func inlined() int {
	return platform.LevelT // want `Inlined field read requires API level ≥ 33 \(current min is 21\): platform\.LevelT`
}

func obsolete() {
	if platform.SDK >= 21 { // want `Obsolete version check >=21 is always true: minimum is API level ≥ 21`
		println("always")
	}

	if platform.SDK < 21 { // want `Obsolete version check <21 is never true: minimum is API level ≥ 21`
		println("never")
	}
}

func nested() {
	if platform.SDK >= 26 {
		if platform.SDK >= 24 { // want `Obsolete version check >=24 is always true: enclosing check establishes API level ≥ 26`
			println("nested")
		}
	}
}

//apiguard:requires >=26
func annotated() { // want annotated:"requires >=26"
	if platform.SDK >= 24 { // want `Obsolete version check >=24 is always true: function annotated requires API level ≥ 26`
		println("annotated")
	}

	c := platform.NewCamera()
	_ = c.Flash
}

func caller() {
	annotated() // want `Call requires API level ≥ 26 \(current min is 21\): app\.annotated`

	if platform.SDK >= 26 {
		annotated()
	}
}

func isModern() bool { return platform.SDK >= 26 } // want isModern:`checks >=26 \(inferred\)`

//apiguard:checks-at-least >=28
func supportsBurst() bool { // want supportsBurst:"checks >=28"
	return len(os.Args) > 1
}

func predicates() {
	if isModern() {
		c := platform.NewCamera()
		_ = c.Flash
	}

	if supportsBurst() {
		c := platform.NewCamera()
		_ = c.Flash
	}
}

//apiguard:requires >=26
type Modern struct{} // want Modern:"requires >=26"

//apiguard:requires >=24 // want `Annotation >=24 of function Old is weaker than API level ≥ 26 required by type Modern`
func (Modern) Old() {} // want Old:"requires >=24"

//apiguard:requires bogus // want `Invalid requires directive`
func invalid() {}

func skipped() {
	if platform.SDK < 23 {
		goto skip
	}

	println("supported")

skip:
	platform.NewCamera() // want `Call requires API level ≥ 23 \(current min is 21\): platform\.NewCamera`
}

func relabeled() {
	if platform.SDK < 23 {
		return
	}

again:
	platform.NewCamera() // want `Call requires API level ≥ 23 \(current min is 21\): platform\.NewCamera`

	if len(os.Args) > 3 {
		goto again
	}
}

func isAtLeastApi26() bool { return len(os.Args) > 2 }

func heuristicNesting() {
	if isAtLeastApi26() {
		if platform.SDK >= 24 {
			platform.NewCamera()
		}
	}
}

func references(x any, mode int) {
	_ = platform.Lens(3)  // want `Type reference requires API level ≥ 24 \(current min is 21\): platform\.Lens`
	_ = x.(platform.Lens) // want `Type reference requires API level ≥ 24 \(current min is 21\): platform\.Lens`

	switch mode {
	case platform.ModeHDR: // want `Inlined switch case requires API level ≥ 28 \(current min is 21\): platform\.ModeHDR`
	}

	if platform.SDK >= 23 {
		open := platform.NewCamera().Open // want `Method reference requires API level ≥ 25 \(current min is 23\): platform\.Camera\.Open`
		open()
	}
}

//apiguard:checks-at-least param=0
func supports(level int) bool { return len(os.Args) >= level } // want supports:"checks argument 0"

func runIfAtLeast(level int, f func()) { // want runIfAtLeast:`checks argument 0 before calling argument 1 \(inferred\)`
	if platform.SDK >= level {
		f()
	}
}

func arguments() {
	if supports(26) {
		c := platform.NewCamera()
		_ = c.Flash
	}

	runIfAtLeast(23, func() { platform.NewCamera() })

	runIfAtLeast(22, func() {
		platform.NewCamera() // want `Call requires API level ≥ 23 \(current min is 22\): platform\.NewCamera`
	})
}

func suppressed() {
	platform.NewCamera() //nolint:apiguard
}
