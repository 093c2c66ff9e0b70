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

package guard

import "go/token"

// Context is one element of the path from a use site up to its function.
type Context interface{ context() }

// Branch is the then (or else) branch of a conditional.
type Branch struct {
	Cond Predicate
	Then bool
}

// ChainOp is the operator of a short-circuit chain.
type ChainOp uint8

const (
	// AndChain evaluates later operands only when earlier ones are true.
	AndChain ChainOp = iota

	// OrChain evaluates later operands only when earlier ones are false.
	OrChain
)

// Chain places a use site in operand Index of a short-circuit chain.
// Only the operands before Index have been evaluated.
type Chain struct {
	Op       ChainOp
	Operands []Predicate
	Index    int
}

// Case places a use site in clause Index of a switch. A nil clause is the default clause.
//
// Clauses are tested in order, the default clause last. Fallthrough marks a clause
// that can also be entered from the previous one.
type Case struct {
	Clauses     []Predicate
	Index       int
	Fallthrough bool
}

// Catch is an error handler guarded by a type test.
type Catch struct {
	Guard Predicate
}

// Block lists the early exits preceding a use site in its enclosing block.
type Block struct {
	Exits []Exit
}

// Exit is a conditional statement with a branch that unconditionally leaves the block.
// The block continues only when Cond evaluates to !ExitsWhen.
type Exit struct {
	Cond      Predicate
	ExitsWhen bool
	Pos       token.Pos
}

func (Branch) context() {}
func (Chain) context()  {}
func (Case) context()   {}
func (Catch) context()  {}
func (Block) context()  {}
