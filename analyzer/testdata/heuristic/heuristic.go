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

package heuristic

import "test/platform"

var cached = platform.SDK

func isAtLeastApi26() bool {
	ok := cached >= 26

	return ok
}

func audited() {
	if isAtLeastApi26() {
		c := platform.NewCamera() // want `Call is only guarded by a check recognized by its name: platform\.NewCamera`
		_ = c.Flash               // want `Field read is only guarded by a check recognized by its name: platform\.Camera\.Flash`
	}

	if platform.SDK >= 23 && isAtLeastApi26() {
		platform.NewCamera()
	}
}
