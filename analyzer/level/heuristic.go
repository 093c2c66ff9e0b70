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

package level

import (
	"fmt"
	"strings"

	"fillmore-labs.com/apiguard/internal/config"
)

// Heuristic specifies how version checks recognized by their name are treated.
type Heuristic uint8

const (
	// HeuristicTrust recognizes checks by name and lets them satisfy requirements.
	HeuristicTrust Heuristic = iota

	// HeuristicAudit trusts checks recognized by name, but reports every use they guard.
	HeuristicAudit

	// HeuristicOff does not recognize checks by name.
	HeuristicOff
)

// Apply sets the behavior flags corresponding to h.
func (h Heuristic) Apply(b *config.BitMask[config.Behavior]) {
	b.Set(config.RecognizeHeuristics, h != HeuristicOff)
	b.Set(config.TrustHeuristics, h != HeuristicOff)
	b.Set(config.AuditHeuristics, h == HeuristicAudit)
}

// String implements [fmt.Stringer].
func (h Heuristic) String() string {
	text, err := h.MarshalText()
	if err != nil {
		return fmt.Sprintf("Heuristic(%d)", h)
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (h Heuristic) MarshalText() ([]byte, error) {
	switch h {
	case HeuristicTrust:
		return []byte("trust"), nil

	case HeuristicAudit:
		return []byte("audit"), nil

	case HeuristicOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown heuristic level %d", h)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (h *Heuristic) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "true", "on", "trust":
		*h = HeuristicTrust

	case "audit":
		*h = HeuristicAudit

	case "off", "false":
		*h = HeuristicOff

	default:
		return fmt.Errorf("unknown heuristic level %q", string(text))
	}

	return nil
}
