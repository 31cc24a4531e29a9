package motion

import "encoding/json"

// Variant tags which rendition of an effect applies to an element.
type Variant int

const (
	// VariantDisabled is the static fallback: no animation at all.
	VariantDisabled Variant = iota
	// VariantReduced is the lighter rendition used on narrow viewports or
	// reduced capability tiers.
	VariantReduced
	// VariantFull is the complete desktop rendition.
	VariantFull
)

// String returns the lowercase variant name.
func (v Variant) String() string {
	switch v {
	case VariantDisabled:
		return "disabled"
	case VariantReduced:
		return "reduced"
	case VariantFull:
		return "full"
	default:
		return "unknown"
	}
}

// Animated reports whether the variant runs any animation.
func (v Variant) Animated() bool {
	return v == VariantReduced || v == VariantFull
}

// MarshalJSON encodes the variant by name.
func (v Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// MarshalYAML encodes the variant by name.
func (v Variant) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// VariantChoice is the per-element decision handed to the renderer. It is
// recomputed wholesale on every environment change.
type VariantChoice struct {
	Variant Variant      `json:"variant" yaml:"variant"`
	Config  EffectConfig `json:"config" yaml:"config"`
}
