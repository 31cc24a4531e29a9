// Package variant decides which rendition of an effect an element receives.
package variant

import (
	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
	"github.com/alexisbeaulieu97/cadence/internal/resolver"
)

// Select returns the variant for env and the requested capability tier.
// Reduced motion always yields the static fallback.
func Select(env motion.EnvironmentState, requested motion.Tier) motion.Variant {
	switch {
	case env.ReducedMotion:
		return motion.VariantDisabled
	case requested == motion.TierReduced || env.NarrowViewport:
		return motion.VariantReduced
	default:
		return motion.VariantFull
	}
}

// Selector pairs the variant decision with the configuration resolved for the
// same inputs.
type Selector struct {
	resolver *resolver.Resolver
}

// NewSelector creates a Selector. A nil resolver uses the built-in profiles.
func NewSelector(r *resolver.Resolver) *Selector {
	if r == nil {
		r = resolver.Default()
	}
	return &Selector{resolver: r}
}

// Choose selects the variant and attaches the effective configuration.
func (s *Selector) Choose(env motion.EnvironmentState, base motion.EffectConfig, requested motion.Tier) (motion.VariantChoice, error) {
	cfg, err := s.resolver.Resolve(env, base, requested)
	if err != nil {
		return motion.VariantChoice{}, err
	}
	return motion.VariantChoice{Variant: Select(env, requested), Config: cfg}, nil
}
