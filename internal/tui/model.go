// Package tui implements the interactive plan preview.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cadence/internal/app/orchestrator"
	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
	"github.com/alexisbeaulieu97/cadence/internal/environment"
	"github.com/alexisbeaulieu97/cadence/internal/ports"
)

const frameInterval = 50 * time.Millisecond

// EnvironmentMsg carries a snapshot delivered by the environment source.
type EnvironmentMsg struct {
	State motion.EnvironmentState
}

type tickMsg struct{}

// Model is the bubbletea state of the preview.
type Model struct {
	ctx        context.Context
	controller *orchestrator.Controller
	logger     ports.Logger

	reduced *environment.ManualPredicate
	narrow  *environment.ManualPredicate
	feed    *environmentFeed

	env  motion.EnvironmentState
	tier motion.Tier
	plan *orchestrator.Plan
	err  error

	playing  bool
	playhead time.Duration

	keys keyMap
	help help.Model

	width    int
	height   int
	finished bool
}

// NewModel builds a preview for controller starting from initial. Toggling
// the environment flips manual predicates behind a Source, so every change
// reaches the model through a subscription.
func NewModel(ctx context.Context, controller *orchestrator.Controller, initial motion.EnvironmentState, logger ports.Logger) Model {
	reduced := environment.NewManualPredicate("reduced-motion", initial.ReducedMotion)
	narrow := environment.NewManualPredicate("narrow-viewport", initial.NarrowViewport)
	source := environment.NewSource(reduced, narrow, environment.WithLogger(logger))

	return Model{
		ctx:        ctx,
		controller: controller,
		logger:     logger,
		reduced:    reduced,
		narrow:     narrow,
		feed:       subscribeFeed(source),
		env:        initial,
		tier:       controller.Tier(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      100,
		height:     30,
	}
}

// Init waits for the first environment delivery.
func (m Model) Init() tea.Cmd {
	return m.feed.next()
}

// Close releases the environment subscription.
func (m Model) Close() {
	m.feed.close()
}

// Plan returns the plan currently shown.
func (m Model) Plan() *orchestrator.Plan {
	return m.plan
}

// Playhead returns the playback position.
func (m Model) Playhead() time.Duration {
	return m.playhead
}

// IsFinished reports whether the user quit.
func (m Model) IsFinished() bool {
	return m.finished
}

func (m *Model) recompute() {
	plan, err := m.controller.PlanWithTier(m.ctx, m.env, m.tier)
	if err != nil {
		m.err = err
		m.plan = nil
		m.playing = false
		return
	}
	m.err = nil
	m.plan = plan
	m.playhead = 0
}

func (m Model) total() time.Duration {
	if m.plan == nil {
		return 0
	}
	var total time.Duration
	for _, seq := range m.plan.Sequences {
		if t := seq.Timeline.Total(); t > total {
			total = t
		}
	}
	return total
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return tickMsg{} })
}
