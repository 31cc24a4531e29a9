package motion

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// EffectConfig maps symbolic parameter keys (particleCount, speed, ...) to
// numeric values for one component kind. Values are copied on construction
// and never mutated afterwards; every derivation yields a new instance.
type EffectConfig struct {
	kind   string
	values map[string]float64
}

// NewEffectConfig builds an EffectConfig for kind from a copy of values.
func NewEffectConfig(kind string, values map[string]float64) EffectConfig {
	copied := make(map[string]float64, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return EffectConfig{kind: kind, values: copied}
}

// Kind returns the component kind the configuration belongs to.
func (c EffectConfig) Kind() string {
	return c.kind
}

// Len returns the number of parameters.
func (c EffectConfig) Len() int {
	return len(c.values)
}

// Get returns the value stored under key.
func (c EffectConfig) Get(key string) (float64, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Int returns the value under key rounded to the nearest integer, or 0 when
// the key is absent.
func (c EffectConfig) Int(key string) int {
	return int(math.Round(c.values[key]))
}

// Flag reports whether the value under key is non-zero.
func (c EffectConfig) Flag(key string) bool {
	return c.values[key] != 0
}

// Keys returns the parameter keys in lexical order.
func (c EffectConfig) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns a copy of the parameter map.
func (c EffectConfig) Values() map[string]float64 {
	out := make(map[string]float64, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// With returns a new configuration with key set to value.
func (c EffectConfig) With(key string, value float64) EffectConfig {
	next := NewEffectConfig(c.kind, c.values)
	next.values[key] = value
	return next
}

// Equal reports whether both configurations have the same kind and
// bit-identical values.
func (c EffectConfig) Equal(other EffectConfig) bool {
	if c.kind != other.kind || len(c.values) != len(other.values) {
		return false
	}
	for k, v := range c.values {
		ov, ok := other.values[k]
		if !ok || math.Float64bits(v) != math.Float64bits(ov) {
			return false
		}
	}
	return true
}

// String renders the configuration as kind{key=value,...}.
func (c EffectConfig) String() string {
	parts := make([]string, 0, len(c.values))
	for _, k := range c.Keys() {
		parts = append(parts, fmt.Sprintf("%s=%g", k, c.values[k]))
	}
	return fmt.Sprintf("%s{%s}", c.kind, strings.Join(parts, ","))
}

type effectConfigJSON struct {
	Kind   string             `json:"kind" yaml:"kind"`
	Params map[string]float64 `json:"params" yaml:"params"`
}

// MarshalJSON exposes the configuration as {"kind":..,"params":{..}}.
func (c EffectConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(effectConfigJSON{Kind: c.kind, Params: c.Values()})
}

// MarshalYAML mirrors MarshalJSON for yaml.v3 encoders.
func (c EffectConfig) MarshalYAML() (interface{}, error) {
	return effectConfigJSON{Kind: c.kind, Params: c.Values()}, nil
}
