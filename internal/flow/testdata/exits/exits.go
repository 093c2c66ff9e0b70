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

import (
	"errors"
	"log"
	"os"
	"runtime"
	"syscall"
	"testing"
)

func logFatal() {
	log.Fatal() // want "Can't return"
}

func builtinPanic() {
	panic("") // want "Can't return"
}

func loggerFatalf() {
	l := log.Default()

	l.Fatalf("") // want "Can't return"
}

func osExit() {
	os.Exit(1) // want "Can't return"
}

func syscallExit() {
	syscall.Exit(1) // want "Can't return"
}

func runtimeGoexit() {
	runtime.Goexit() // want "Can't return"
}

func skip(t *testing.T) {
	t.SkipNow() // want "Can't return"
}

func normalReturn() {
	println("hello")
}

func shadowed() {
	panic := log.Print

	panic("hello")
}

func early(level int) error {
	if level < 23 { // want "Exit branch"
		return errors.New("unsupported")
	}

	for i := range level {
		if i == 3 { // want "Exit branch"
			break
		}

		if i == 5 {
			println(i)
		}
	}

	if level < 24 { // want "Exit branch"
		if level == 21 { // want "Exit branch"
			return nil
		} else {
			panic("no") // want "Can't return"
		}
	}

	if level < 26 { // want "Exit branch"
		os.Exit(2) // want "Can't return"
	}

	if level < 27 {
		goto done
	}

	println(level)

done:
	return nil
}
