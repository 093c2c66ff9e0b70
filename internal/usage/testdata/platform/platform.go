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

// Package platform stands in for a versioned platform surface.
package platform

// SDK is the running platform version.
var SDK int

// Extension returns the version of an extension axis.
func Extension(axis int) int { return axis }

type Camera struct {
	Flash bool
	Zoom  float64
}

func NewCamera() *Camera { return nil }

func (c *Camera) Open() error { return nil }

const LevelT = 33

type Listener interface{ OnEvent() }

func Register(l Listener) {}

type CameraError struct{}

func (CameraError) Error() string { return "camera" }

type Cameras []int

func All() Cameras { return nil }

func IsAtLeastT() bool { return SDK >= 33 } // want IsAtLeastT:`checks >=33 \(inferred\)`
