package variant

import "github.com/alexisbeaulieu97/cadence/internal/domain/motion"

// Machine tracks the variant of one element across environment changes. It
// only moves when Apply is called with a new state; there are no timers.
type Machine struct {
	tier    motion.Tier
	current motion.Variant
	env     motion.EnvironmentState
}

// NewMachine starts a machine in the variant selected for env.
func NewMachine(tier motion.Tier, env motion.EnvironmentState) *Machine {
	return &Machine{tier: tier, env: env, current: Select(env, tier)}
}

// Current returns the active variant.
func (m *Machine) Current() motion.Variant {
	return m.current
}

// Apply feeds a new environment snapshot and reports whether the variant
// changed.
func (m *Machine) Apply(env motion.EnvironmentState) (motion.Variant, bool) {
	m.env = env
	next := Select(env, m.tier)
	changed := next != m.current
	m.current = next
	return next, changed
}

// SetTier changes the requested capability tier and re-selects against the
// last applied environment.
func (m *Machine) SetTier(tier motion.Tier) (motion.Variant, bool) {
	m.tier = tier
	return m.Apply(m.env)
}
