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

// Package analyzer implements the apiguard static analysis pass.
//
// # Overview
//
// APIGuard detects uses of platform symbols that are newer than the oldest
// platform version a program supports, unless the use is guarded by a version
// check or an enclosing declaration requiring a sufficient version.
//
// # Example
//
// With a minimum API level of 21:
//
//	func snapshot() {
//	    cam := camera.Open() // Call requires API level ≥ 23 (current min is 21): camera.Open
//	    ...
//	}
//
// Either guard the use:
//
//	func snapshot() {
//	    if build.SDKInt >= 23 {
//	        cam := camera.Open()
//	        ...
//	    }
//	}
//
// or declare the requirement, moving the obligation to the callers:
//
//	//apiguard:requires >=23
//	func snapshot() {
//	    cam := camera.Open()
//	    ...
//	}
//
// # Directives
//
//   - //apiguard:requires <constraint> declares a requirement for a function or type
//   - //apiguard:target <constraint> assumes a constraint without exporting it to callers
//   - //apiguard:checks-at-least <constraint> marks a boolean function as a version check
//   - //apiguard:checks-at-least param=N checks the level passed as argument N
//   - //apiguard:checks-at-least <constraint> lambda=N calls the function argument N
//     only when the check holds; param=N may replace the constraint
//
// Functions whose body is a single return of a version check are recognized automatically,
// as are "return version >= level" with a parameter level and "if check { f() }" with a
// function parameter f.
package analyzer
