// SPDX-License-Identifier: MIT
// Package: github.com/gomcis/mcis/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn        = decimalID          ("0","1","2",...)
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • weightFn    = constant defaultConstWeight
//
// AI-Hints:
//   • Set WithSeed for a reproducible weight distribution.
//   • Override WithIDScheme for human-readable labels in examples/golden tests.
//   • Weight policy matters only if the core graph is weighted.

package builder

import (
	"math/rand" // RNG for stochastic weight generators
	"strconv"   // decimal vertex IDs ("0","1",...)
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn func(*rand.Rand) int64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultConstWeight = int64(1) // constant edge weight when weighted
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// Start with strict, deterministic defaults.
	cfg := builderConfig{
		idFn:     decimalID,                                            // "0","1","2",...
		rng:      nil,                                                  // no RNG unless explicitly set
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight }, // constant weight
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
// Deterministic and allocation-light; suitable for golden tests.
func decimalID(i int) string {
	return strconv.Itoa(i)
}
