package config

import (
	"time"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

// Catalog is a named set of animated elements and entrance sequences, the
// equivalent of one page worth of motion.
type Catalog struct {
	Version     string     `yaml:"version" json:"version" validate:"required,semver"`
	Name        string     `yaml:"name" json:"name" validate:"required,min=1,max=100"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Tier        string     `yaml:"tier,omitempty" json:"tier,omitempty" validate:"omitempty,tier"`
	Elements    []Element  `yaml:"elements,omitempty" json:"elements,omitempty" validate:"omitempty,dive"`
	Sequences   []Sequence `yaml:"sequences,omitempty" json:"sequences,omitempty" validate:"omitempty,dive"`
}

// Element is one animated component instance with its base parameters.
type Element struct {
	ID     string             `yaml:"id" json:"id" validate:"required,element_id"`
	Kind   string             `yaml:"kind" json:"kind" validate:"required"`
	Params map[string]float64 `yaml:"params,omitempty" json:"params,omitempty"`
}

// Config returns the element's base effect configuration.
func (e Element) Config() motion.EffectConfig {
	return motion.NewEffectConfig(e.Kind, e.Params)
}

// MaxMillis bounds every millisecond value a catalog or flag may carry (one
// hour). The validator tags on Sequence and Step repeat it.
const MaxMillis int64 = 3_600_000

// Sequence is an ordered entrance choreography played for Items elements.
type Sequence struct {
	ID        string `yaml:"id" json:"id" validate:"required,element_id"`
	Items     int    `yaml:"items" json:"items" validate:"min=0,max=1000"`
	StaggerMS int64  `yaml:"stagger_ms,omitempty" json:"stagger_ms,omitempty" validate:"min=0,max=3600000"`
	Steps     []Step `yaml:"steps,omitempty" json:"steps,omitempty" validate:"omitempty,dive"`
}

// Stagger returns the per-item offset.
func (s Sequence) Stagger() time.Duration {
	return time.Duration(s.StaggerMS) * time.Millisecond
}

// SequenceSteps converts the catalog steps into scheduler input.
func (s Sequence) SequenceSteps() []motion.SequenceStep {
	steps := make([]motion.SequenceStep, len(s.Steps))
	for i, step := range s.Steps {
		steps[i] = step.SequenceStep()
	}
	return steps
}

// Step is one named phase of a sequence. Times are in milliseconds.
type Step struct {
	Name       string `yaml:"name" json:"name" validate:"required"`
	DelayMS    int64  `yaml:"delay_ms,omitempty" json:"delay_ms,omitempty" validate:"min=0,max=3600000"`
	DurationMS int64  `yaml:"duration_ms" json:"duration_ms" validate:"min=0,max=3600000"`
	After      string `yaml:"after,omitempty" json:"after,omitempty"`
}

// SequenceStep converts the step into scheduler input.
func (s Step) SequenceStep() motion.SequenceStep {
	return motion.SequenceStep{
		Name:     s.Name,
		Delay:    time.Duration(s.DelayMS) * time.Millisecond,
		Duration: time.Duration(s.DurationMS) * time.Millisecond,
		After:    s.After,
	}
}

// Element returns the element with the given id.
func (c *Catalog) Element(id string) (Element, bool) {
	for _, e := range c.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// Sequence returns the sequence with the given id.
func (c *Catalog) Sequence(id string) (Sequence, bool) {
	for _, s := range c.Sequences {
		if s.ID == id {
			return s, true
		}
	}
	return Sequence{}, false
}

// DefaultTier returns the catalog's tier, full when unset.
func (c *Catalog) DefaultTier() motion.Tier {
	if c.Tier == "" {
		return motion.TierFull
	}
	return motion.Tier(c.Tier)
}
