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

package exits

import "go.uber.org/zap"

func zapLog() {
	log := zap.NewNop()

	log.Fatal("") // want "Can't return"
	log.Panic("") // want "Can't return"

	sugaredlog := log.Sugar()

	sugaredlog.Fatal()    // want "Can't return"
	sugaredlog.Fatalf("") // want "Can't return"
	sugaredlog.Fatalln()  // want "Can't return"
	sugaredlog.Fatalw("") // want "Can't return"
	sugaredlog.Panic()    // want "Can't return"
	sugaredlog.Panicf("") // want "Can't return"
	sugaredlog.Panicln()  // want "Can't return"
	sugaredlog.Panicw("") // want "Can't return"
}
