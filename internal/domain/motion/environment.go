package motion

import (
	"fmt"
	"strings"
)

// EnvironmentState is an immutable snapshot of the observed environment
// predicates. Both fields are always populated together.
type EnvironmentState struct {
	ReducedMotion  bool `json:"reduced_motion" yaml:"reduced_motion"`
	NarrowViewport bool `json:"narrow_viewport" yaml:"narrow_viewport"`
}

// DefaultEnvironment is the state assumed when no predicate can be observed:
// full motion on a wide viewport.
func DefaultEnvironment() EnvironmentState {
	return EnvironmentState{}
}

// String renders the state as a compact label.
func (e EnvironmentState) String() string {
	return fmt.Sprintf("reduced_motion=%t narrow_viewport=%t", e.ReducedMotion, e.NarrowViewport)
}

// Tier is a coarse classification of how much animation richness a context
// should receive.
type Tier string

const (
	TierFull    Tier = "full"
	TierReduced Tier = "reduced"
)

// ParseTier converts user input into a Tier. An empty string means full.
func ParseTier(value string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(TierFull):
		return TierFull, nil
	case string(TierReduced):
		return TierReduced, nil
	default:
		return "", NewConfigError(fmt.Sprintf("unknown capability tier %q", value), map[string]interface{}{
			"tier": value,
		})
	}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t == TierFull || t == TierReduced
}
