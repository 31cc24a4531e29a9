// Package orchestrator runs the resolve, select and schedule pass over a
// catalog every time the environment changes.
package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/cadence/internal/config"
	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
	"github.com/alexisbeaulieu97/cadence/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/cadence/internal/ports"
	"github.com/alexisbeaulieu97/cadence/internal/resolver"
	"github.com/alexisbeaulieu97/cadence/internal/sequence"
	"github.com/alexisbeaulieu97/cadence/internal/variant"
)

// EnvironmentSource delivers environment snapshots until ctx ends.
type EnvironmentSource interface {
	Watch(ctx context.Context, fn func(motion.EnvironmentState)) error
}

// ElementPlan is the rendition chosen for one catalog element.
type ElementPlan struct {
	ID        string              `json:"id" yaml:"id"`
	Kind      string              `json:"kind" yaml:"kind"`
	Variant   motion.Variant      `json:"variant" yaml:"variant"`
	Base      motion.EffectConfig `json:"base" yaml:"base"`
	Effective motion.EffectConfig `json:"effective" yaml:"effective"`
}

// SequencePlan is the timeline computed for one catalog sequence.
type SequencePlan struct {
	ID       string          `json:"id" yaml:"id"`
	Items    int             `json:"items" yaml:"items"`
	Stagger  time.Duration   `json:"stagger" yaml:"stagger"`
	Static   bool            `json:"static" yaml:"static"`
	Timeline motion.Timeline `json:"timeline" yaml:"timeline"`
}

// Plan is the outcome of one recomputation pass.
type Plan struct {
	Catalog     string                  `json:"catalog" yaml:"catalog"`
	Environment motion.EnvironmentState `json:"environment" yaml:"environment"`
	Tier        motion.Tier             `json:"tier" yaml:"tier"`
	Elements    []ElementPlan           `json:"elements" yaml:"elements"`
	Sequences   []SequencePlan          `json:"sequences" yaml:"sequences"`
}

// Element returns the plan of the element with the given id.
func (p *Plan) Element(id string) (ElementPlan, bool) {
	for _, e := range p.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return ElementPlan{}, false
}

// Sequence returns the plan of the sequence with the given id.
func (p *Plan) Sequence(id string) (SequencePlan, bool) {
	for _, s := range p.Sequences {
		if s.ID == id {
			return s, true
		}
	}
	return SequencePlan{}, false
}

// Option configures a Controller.
type Option func(*Controller)

// WithResolver replaces the built-in component profiles.
func WithResolver(r *resolver.Resolver) Option {
	return func(c *Controller) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithTier overrides the catalog's capability tier.
func WithTier(tier motion.Tier) Option {
	return func(c *Controller) {
		if tier != "" {
			c.tier = tier
		}
	}
}

// WithLogger sets the controller logger.
func WithLogger(logger ports.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEvents sets the publisher that receives plan events.
func WithEvents(events ports.EventPublisher) Option {
	return func(c *Controller) {
		c.events = events
	}
}

// Controller owns a catalog and recomputes its plan on demand. It holds no
// state between passes.
type Controller struct {
	catalog  *config.Catalog
	resolver *resolver.Resolver
	tier     motion.Tier
	logger   ports.Logger
	events   ports.EventPublisher
}

// NewController builds a Controller for catalog.
func NewController(catalog *config.Catalog, opts ...Option) (*Controller, error) {
	if catalog == nil {
		return nil, fmt.Errorf("orchestrator: catalog is required")
	}

	c := &Controller{
		catalog:  catalog,
		resolver: resolver.Default(),
		tier:     catalog.DefaultTier(),
		logger:   logging.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.tier.Valid() {
		return nil, motion.NewConfigError(fmt.Sprintf("unknown capability tier %q", c.tier), map[string]interface{}{"tier": string(c.tier)})
	}
	c.logger = c.logger.With("layer", "application", "component", "orchestrator")
	return c, nil
}

// Tier returns the controller's default capability tier.
func (c *Controller) Tier() motion.Tier {
	return c.tier
}

// Catalog returns the catalog the controller plans.
func (c *Controller) Catalog() *config.Catalog {
	return c.catalog
}

// Plan runs one pass for env at the controller's tier.
func (c *Controller) Plan(ctx context.Context, env motion.EnvironmentState) (*Plan, error) {
	return c.PlanWithTier(ctx, env, c.tier)
}

// PlanWithTier runs one pass for env at tier. Under reduced motion every
// sequence collapses to an empty timeline so content appears at once.
func (c *Controller) PlanWithTier(ctx context.Context, env motion.EnvironmentState, tier motion.Tier) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	selector := variant.NewSelector(c.resolver)
	plan := &Plan{
		Catalog:     c.catalog.Name,
		Environment: env,
		Tier:        tier,
		Elements:    make([]ElementPlan, 0, len(c.catalog.Elements)),
		Sequences:   make([]SequencePlan, 0, len(c.catalog.Sequences)),
	}

	for _, element := range c.catalog.Elements {
		base := element.Config()
		choice, err := selector.Choose(env, base, tier)
		if err != nil {
			return nil, c.fail(ctx, env, fmt.Errorf("element %s: %w", element.ID, err))
		}
		plan.Elements = append(plan.Elements, ElementPlan{
			ID:        element.ID,
			Kind:      element.Kind,
			Variant:   choice.Variant,
			Base:      base,
			Effective: choice.Config,
		})
	}

	for _, seq := range c.catalog.Sequences {
		sp := SequencePlan{ID: seq.ID, Items: seq.Items, Stagger: seq.Stagger(), Static: env.ReducedMotion}
		if !env.ReducedMotion {
			scheduled, err := sequence.GeneratePlan(sequence.Request{
				Name:    seq.ID,
				Steps:   seq.SequenceSteps(),
				Items:   seq.Items,
				Stagger: seq.Stagger(),
			})
			if err != nil {
				return nil, c.fail(ctx, env, err)
			}
			sp.Timeline = scheduled.Timeline
		}
		plan.Sequences = append(plan.Sequences, sp)
	}

	c.logger.Debug(ctx, "plan computed",
		"catalog", plan.Catalog,
		"reduced_motion", env.ReducedMotion,
		"narrow_viewport", env.NarrowViewport,
		"tier", string(tier),
		"elements", len(plan.Elements),
		"sequences", len(plan.Sequences),
	)
	publishEvent(ctx, c.events, c.logger, ports.EventPlanComputed, map[string]interface{}{
		"catalog":     plan.Catalog,
		"environment": env.String(),
		"tier":        string(tier),
		"elements":    len(plan.Elements),
		"sequences":   len(plan.Sequences),
	})
	return plan, nil
}

func (c *Controller) fail(ctx context.Context, env motion.EnvironmentState, err error) error {
	c.logger.Error(ctx, "plan failed", "catalog", c.catalog.Name, "error", err)
	publishEvent(ctx, c.events, c.logger, ports.EventPlanFailed, map[string]interface{}{
		"catalog":     c.catalog.Name,
		"environment": env.String(),
		"error":       err,
	})
	return err
}

// Run recomputes the plan for every snapshot source delivers and hands the
// result to fn, until ctx ends. Each delivery is one synchronous pass.
func (c *Controller) Run(ctx context.Context, source EnvironmentSource, fn func(*Plan, error)) error {
	if source == nil {
		return fmt.Errorf("orchestrator: environment source is required")
	}

	var (
		mu      sync.Mutex
		machine *variant.Machine
	)

	return source.Watch(ctx, func(env motion.EnvironmentState) {
		mu.Lock()
		defer mu.Unlock()

		changed := true
		current := variant.Select(env, c.tier)
		if machine == nil {
			machine = variant.NewMachine(c.tier, env)
		} else {
			current, changed = machine.Apply(env)
		}

		publishEvent(ctx, c.events, c.logger, ports.EventEnvironmentChanged, map[string]interface{}{
			"catalog":         c.catalog.Name,
			"reduced_motion":  env.ReducedMotion,
			"narrow_viewport": env.NarrowViewport,
			"variant":         current.String(),
			"variant_changed": changed,
		})

		plan, err := c.Plan(ctx, env)
		if fn != nil {
			fn(plan, err)
		}
	})
}
