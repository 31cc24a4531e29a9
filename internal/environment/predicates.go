package environment

import (
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/cadence/internal/config"
	"github.com/alexisbeaulieu97/cadence/internal/ports"
)

var (
	_ ports.Predicate = (*ManualPredicate)(nil)
	_ ports.Predicate = (*StaticPredicate)(nil)
	_ ports.Predicate = (*EnvPredicate)(nil)
	_ ports.Predicate = (*TerminalWidthPredicate)(nil)
)

// ManualPredicate is a predicate whose value is set programmatically.
type ManualPredicate struct {
	name string

	mu       sync.Mutex
	value    bool
	watchers map[int]func(bool)
	nextID   int
}

// NewManualPredicate returns a ManualPredicate starting at initial.
func NewManualPredicate(name string, initial bool) *ManualPredicate {
	return &ManualPredicate{name: name, value: initial, watchers: make(map[int]func(bool))}
}

// Name implements ports.Predicate.
func (p *ManualPredicate) Name() string { return p.name }

// Matches implements ports.Predicate.
func (p *ManualPredicate) Matches() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, nil
}

// Watch implements ports.Predicate.
func (p *ManualPredicate) Watch(onChange func(bool)) (func(), error) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.watchers[id] = onChange
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.watchers, id)
			p.mu.Unlock()
		})
	}, nil
}

// Set changes the value and notifies watchers when it differs.
func (p *ManualPredicate) Set(value bool) {
	p.mu.Lock()
	if p.value == value {
		p.mu.Unlock()
		return
	}
	p.value = value
	watchers := make([]func(bool), 0, len(p.watchers))
	for _, w := range p.watchers {
		watchers = append(watchers, w)
	}
	p.mu.Unlock()

	for _, w := range watchers {
		w(value)
	}
}

// Toggle flips the value and returns the new one.
func (p *ManualPredicate) Toggle() bool {
	p.mu.Lock()
	next := !p.value
	p.mu.Unlock()
	p.Set(next)
	return next
}

// StaticPredicate never changes.
type StaticPredicate struct {
	name  string
	value bool
}

// NewStaticPredicate returns a predicate fixed at value.
func NewStaticPredicate(name string, value bool) *StaticPredicate {
	return &StaticPredicate{name: name, value: value}
}

// Name implements ports.Predicate.
func (p *StaticPredicate) Name() string { return p.name }

// Matches implements ports.Predicate.
func (p *StaticPredicate) Matches() (bool, error) { return p.value, nil }

// Watch implements ports.Predicate.
func (p *StaticPredicate) Watch(func(bool)) (func(), error) { return func() {}, nil }

// EnvPredicate reads the reduced-motion preference from CADENCE_REDUCED_MOTION
// on every query.
type EnvPredicate struct {
	load func() (config.Settings, error)
}

// NewEnvPredicate returns a predicate backed by the process environment.
func NewEnvPredicate() *EnvPredicate {
	return &EnvPredicate{load: config.LoadSettings}
}

// Name implements ports.Predicate.
func (p *EnvPredicate) Name() string { return "env:CADENCE_REDUCED_MOTION" }

// Matches implements ports.Predicate.
func (p *EnvPredicate) Matches() (bool, error) {
	settings, err := p.load()
	if err != nil {
		return false, err
	}
	return settings.ReducedMotion, nil
}

// Watch implements ports.Predicate. Environment variables have no change
// notification.
func (p *EnvPredicate) Watch(func(bool)) (func(), error) { return func() {}, nil }

// TerminalWidthPredicate matches when the terminal is narrower than a column
// threshold. Output that is not a terminal is treated as wide.
type TerminalWidthPredicate struct {
	fd      int
	columns int

	isTerminal func(fd int) bool
	size       func(fd int) (width, height int, err error)
}

// NewTerminalWidthPredicate watches stdout against the given threshold.
func NewTerminalWidthPredicate(columns int) *TerminalWidthPredicate {
	return &TerminalWidthPredicate{
		fd:         int(os.Stdout.Fd()),
		columns:    columns,
		isTerminal: term.IsTerminal,
		size:       term.GetSize,
	}
}

// Name implements ports.Predicate.
func (p *TerminalWidthPredicate) Name() string { return "terminal-width" }

// Matches implements ports.Predicate.
func (p *TerminalWidthPredicate) Matches() (bool, error) {
	if !p.isTerminal(p.fd) {
		return false, nil
	}
	width, _, err := p.size(p.fd)
	if err != nil {
		return false, err
	}
	return width < p.columns, nil
}

// Watch implements ports.Predicate using terminal resize notifications where
// the platform provides them.
func (p *TerminalWidthPredicate) Watch(onChange func(bool)) (func(), error) {
	return watchResize(func() {
		if value, err := p.Matches(); err == nil {
			onChange(value)
		}
	})
}
