// Package resolver maps an environment snapshot, a base effect configuration
// and a capability tier to the effective configuration a renderer should use.
package resolver

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

// Resolver resolves configurations against a fixed set of profiles. It holds
// no mutable state; the same inputs always produce identical outputs.
type Resolver struct {
	profiles map[string]Profile
	order    []string
}

// New builds a Resolver for the given profiles. Later profiles replace earlier
// ones with the same kind.
func New(profiles ...Profile) *Resolver {
	r := &Resolver{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if _, exists := r.profiles[p.Kind]; !exists {
			r.order = append(r.order, p.Kind)
		}
		r.profiles[p.Kind] = p
	}
	return r
}

var defaultResolver = New(DefaultProfiles()...)

// Default returns the resolver backed by the built-in profiles.
func Default() *Resolver {
	return defaultResolver
}

// Resolve resolves base with the built-in profiles.
func Resolve(env motion.EnvironmentState, base motion.EffectConfig, tier motion.Tier) (motion.EffectConfig, error) {
	return defaultResolver.Resolve(env, base, tier)
}

// Profile returns the profile registered for kind.
func (r *Resolver) Profile(kind string) (Profile, bool) {
	p, ok := r.profiles[kind]
	return p, ok
}

// Profiles returns the registered profiles in registration order.
func (r *Resolver) Profiles() []Profile {
	out := make([]Profile, 0, len(r.order))
	for _, kind := range r.order {
		out = append(out, r.profiles[kind])
	}
	return out
}

// Resolve validates base and applies, in order of precedence:
//  1. reduced motion: every motion-affecting parameter is zeroed;
//  2. narrow viewport or reduced tier: the profile's lighter tier;
//  3. otherwise base is returned unchanged.
//
// The reduced tier extends rule 2: a device that declares itself low-powered
// gets the lighter config even on a wide viewport.
func (r *Resolver) Resolve(env motion.EnvironmentState, base motion.EffectConfig, tier motion.Tier) (motion.EffectConfig, error) {
	if tier == "" {
		tier = motion.TierFull
	}
	if !tier.Valid() {
		return motion.EffectConfig{}, motion.NewConfigError(fmt.Sprintf("unknown capability tier %q", tier), map[string]interface{}{"tier": string(tier)})
	}

	profile, err := r.Validate(base)
	if err != nil {
		return motion.EffectConfig{}, err
	}

	switch {
	case env.ReducedMotion:
		return stillConfig(profile, base), nil
	case env.NarrowViewport || tier == motion.TierReduced:
		return lighterConfig(profile, base), nil
	default:
		return base, nil
	}
}

func stillConfig(profile Profile, base motion.EffectConfig) motion.EffectConfig {
	values := base.Values()
	for key := range values {
		if profile.Params[key].Class.MotionAffecting() {
			values[key] = 0
		}
	}
	return motion.NewEffectConfig(base.Kind(), values)
}

func lighterConfig(profile Profile, base motion.EffectConfig) motion.EffectConfig {
	values := base.Values()
	for key, value := range values {
		param := profile.Params[key]
		switch param.Class {
		case ClassCount:
			if profile.HideOnNarrow {
				values[key] = 0
				continue
			}
			values[key] = scaleCount(value, profile.NarrowCountRatio)
		case ClassSpeed:
			if profile.NarrowSpeedCap > 0 && value > profile.NarrowSpeedCap {
				values[key] = profile.NarrowSpeedCap
			}
		case ClassComplexity:
			values[key] = math.Max(param.Min, value-profile.ComplexityStep)
		case ClassMotion:
			values[key] = value * profile.NarrowMotionRatio
		}
	}
	return motion.NewEffectConfig(base.Kind(), values)
}

// scaleCount never takes a positive count below one; profiles that drop a
// layer entirely set HideOnNarrow instead.
func scaleCount(value, ratio float64) float64 {
	if value <= 0 {
		return 0
	}
	scaled := math.Round(value * ratio)
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}
