package resolver

import "sort"

// ParamClass groups parameters by how the environment rules treat them.
type ParamClass string

const (
	// ClassCount is an element count; zeroed under reduced motion and scaled
	// by the profile's narrow ratio.
	ClassCount ParamClass = "count"
	// ClassSpeed is an animation speed; zeroed under reduced motion and capped
	// on the lighter tier.
	ClassSpeed ParamClass = "speed"
	// ClassComplexity is a visual complexity level; lowered one step on the
	// lighter tier, untouched by reduced motion.
	ClassComplexity ParamClass = "complexity"
	// ClassMotion is a displacement amplitude or strength; zeroed under
	// reduced motion and scaled by the narrow motion ratio.
	ClassMotion ParamClass = "motion"
	// ClassTiming is a delay or duration in milliseconds; zeroed under reduced
	// motion so content appears immediately.
	ClassTiming ParamClass = "timing"
	// ClassFlag is an on/off animation toggle; cleared under reduced motion.
	ClassFlag ParamClass = "flag"
	// ClassVisual is a static styling parameter that no rule changes.
	ClassVisual ParamClass = "visual"
)

// MotionAffecting reports whether reduced motion zeroes parameters of the class.
func (c ParamClass) MotionAffecting() bool {
	switch c {
	case ClassCount, ClassSpeed, ClassMotion, ClassTiming, ClassFlag:
		return true
	default:
		return false
	}
}

// Param documents the accepted range of one parameter.
type Param struct {
	Class ParamClass
	Min   float64
	Max   float64
}

// Profile holds the tuning constants of one component kind. Ratios differ per
// component, so they are declared here rather than derived from a formula.
type Profile struct {
	Kind        string
	Description string
	Params      map[string]Param

	// NarrowCountRatio scales counts on the lighter tier.
	NarrowCountRatio float64
	// HideOnNarrow zeroes counts on the lighter tier, removing the layer.
	HideOnNarrow bool
	// NarrowSpeedCap caps speeds on the lighter tier; zero leaves them alone.
	NarrowSpeedCap float64
	// ComplexityStep is subtracted from complexity levels on the lighter tier.
	ComplexityStep float64
	// NarrowMotionRatio scales motion amplitudes on the lighter tier.
	NarrowMotionRatio float64
}

// Keys returns the profile's parameter names in lexical order.
func (p Profile) Keys() []string {
	keys := make([]string, 0, len(p.Params))
	for k := range p.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	speedParam  = Param{Class: ClassSpeed, Min: 0, Max: 2}
	delayParam  = Param{Class: ClassTiming, Min: 0, Max: 10000}
	lengthParam = Param{Class: ClassTiming, Min: 0, Max: 10000}
)

// DefaultProfiles returns the built-in component catalog.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Kind:        "particles",
			Description: "floating particle field with optional connecting lines",
			Params: map[string]Param{
				"particleCount": {Class: ClassCount, Min: 0, Max: 500},
				"speed":         speedParam,
				"connections":   {Class: ClassFlag, Min: 0, Max: 1},
			},
			NarrowCountRatio:  0.30,
			NarrowSpeedCap:    0.5,
			ComplexityStep:    1,
			NarrowMotionRatio: 1,
		},
		{
			Kind:        "starfield",
			Description: "layered parallax star field",
			Params: map[string]Param{
				"starCount": {Class: ClassCount, Min: 0, Max: 1000},
				"speed":     speedParam,
				"layers":    {Class: ClassComplexity, Min: 1, Max: 6},
			},
			NarrowCountRatio:  1.0 / 3.0,
			NarrowSpeedCap:    0.3,
			ComplexityStep:    1,
			NarrowMotionRatio: 1,
		},
		{
			Kind:        "gradientMesh",
			Description: "flowing multi-stop gradient mesh",
			Params: map[string]Param{
				"speed":      speedParam,
				"complexity": {Class: ClassComplexity, Min: 1, Max: 8},
			},
			NarrowCountRatio:  1,
			NarrowSpeedCap:    0.2,
			ComplexityStep:    2,
			NarrowMotionRatio: 1,
		},
		{
			Kind:        "waves",
			Description: "stacked sine wave layers",
			Params: map[string]Param{
				"waveCount": {Class: ClassCount, Min: 0, Max: 8},
				"amplitude": {Class: ClassMotion, Min: 0, Max: 200},
				"speed":     speedParam,
			},
			NarrowCountRatio:  0.5,
			NarrowSpeedCap:    0.4,
			ComplexityStep:    1,
			NarrowMotionRatio: 0.6,
		},
		{
			Kind:        "aurora",
			Description: "slow aurora color bands",
			Params: map[string]Param{
				"speed":     speedParam,
				"intensity": {Class: ClassVisual, Min: 0, Max: 1},
			},
			NarrowCountRatio:  1,
			NarrowSpeedCap:    0.3,
			ComplexityStep:    1,
			NarrowMotionRatio: 1,
		},
		{
			Kind:        "gridPattern",
			Description: "static line grid",
			Params: map[string]Param{
				"gridSize": {Class: ClassVisual, Min: 1, Max: 200},
			},
			NarrowCountRatio:  1,
			ComplexityStep:    1,
			NarrowMotionRatio: 1,
		},
		{
			Kind:        "dotPattern",
			Description: "static dot lattice",
			Params: map[string]Param{
				"dotSize": {Class: ClassVisual, Min: 0, Max: 20},
				"spacing": {Class: ClassVisual, Min: 1, Max: 200},
			},
			NarrowCountRatio:  1,
			ComplexityStep:    1,
			NarrowMotionRatio: 1,
		},
		{
			Kind:        "fadeIn",
			Description: "opacity entrance",
			Params: map[string]Param{
				"delay":    delayParam,
				"duration": lengthParam,
			},
			NarrowCountRatio:  1,
			ComplexityStep:    1,
			NarrowMotionRatio: 1,
		},
		{
			Kind:        "scaleIn",
			Description: "scale entrance from a fraction of full size",
			Params: map[string]Param{
				"delay":    delayParam,
				"duration": lengthParam,
				"from":     {Class: ClassVisual, Min: 0, Max: 1},
			},
			NarrowCountRatio:  1,
			ComplexityStep:    1,
			NarrowMotionRatio: 1,
		},
		{
			Kind:        "textReveal",
			Description: "per-character text entrance",
			Params: map[string]Param{
				"delay":    delayParam,
				"duration": lengthParam,
			},
			NarrowCountRatio:  1,
			ComplexityStep:    1,
			NarrowMotionRatio: 1,
		},
		{
			Kind:        "animatedCard",
			Description: "hover lift or float on a card",
			Params: map[string]Param{
				"lift":  {Class: ClassMotion, Min: 0, Max: 40},
				"float": {Class: ClassFlag, Min: 0, Max: 1},
			},
			NarrowCountRatio:  1,
			ComplexityStep:    1,
			NarrowMotionRatio: 0.5,
		},
		{
			Kind:        "glowingCard",
			Description: "pulsing glow around a card",
			Params: map[string]Param{
				"intensity": {Class: ClassMotion, Min: 0, Max: 1},
			},
			NarrowCountRatio:  1,
			ComplexityStep:    1,
			NarrowMotionRatio: 1,
		},
		{
			Kind:        "magneticButton",
			Description: "button pulled toward the pointer",
			Params: map[string]Param{
				"strength": {Class: ClassMotion, Min: 0, Max: 1},
				"radius":   {Class: ClassVisual, Min: 0, Max: 500},
			},
			NarrowCountRatio:  1,
			ComplexityStep:    1,
			NarrowMotionRatio: 0,
		},
	}
}
