// Package environment tracks the user's motion preference and viewport width
// and notifies subscribers whenever either changes.
package environment

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
	"github.com/alexisbeaulieu97/cadence/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/cadence/internal/ports"
)

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger used for predicate failures and transitions.
func WithLogger(logger ports.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type field int

const (
	fieldMotion field = iota
	fieldViewport
)

// Source merges two predicates into an EnvironmentState. Predicates are
// watched only while at least one subscriber exists.
type Source struct {
	motion   ports.Predicate
	viewport ports.Predicate
	logger   ports.Logger

	// regMu serializes predicate registration and teardown.
	regMu sync.Mutex

	mu         sync.Mutex
	state      motion.EnvironmentState
	subs       map[uint64]*subscriber
	nextID     uint64
	generation uint64
	registered bool
	stops      []func()
}

// NewSource builds a Source over the reduced-motion and narrow-viewport
// predicates.
func NewSource(reducedMotion, narrowViewport ports.Predicate, opts ...Option) *Source {
	s := &Source{
		motion:   reducedMotion,
		viewport: narrowViewport,
		logger:   logging.NewNoOpLogger(),
		subs:     make(map[uint64]*subscriber),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "environment")
	return s
}

// Current returns the latest known state. Without subscribers the predicates
// are queried directly.
func (s *Source) Current() motion.EnvironmentState {
	s.mu.Lock()
	if s.registered {
		state := s.state
		s.mu.Unlock()
		return state
	}
	s.mu.Unlock()

	return motion.EnvironmentState{
		ReducedMotion:  s.query(s.motion),
		NarrowViewport: s.query(s.viewport),
	}
}

// Subscribe delivers the current state to fn before returning, then delivers
// every later transition from a dedicated goroutine. States that arrive while
// fn is busy are coalesced; fn always sees the latest one next.
func (s *Source) Subscribe(fn func(motion.EnvironmentState)) *Subscription {
	s.regMu.Lock()
	s.register()

	sub := newSubscriber(fn)
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = sub
	state := s.state
	s.mu.Unlock()
	s.regMu.Unlock()

	handle := &Subscription{source: s, id: id, sub: sub}
	sub.deliverInitial(state)
	go sub.run()
	return handle
}

// Watch subscribes fn for the lifetime of ctx and always unsubscribes before
// returning.
func (s *Source) Watch(ctx context.Context, fn func(motion.EnvironmentState)) error {
	sub := s.Subscribe(fn)
	defer sub.Unsubscribe()

	<-ctx.Done()
	return nil
}

// SubscriberCount reports the number of live subscriptions.
func (s *Source) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// register queries and watches both predicates. Callers hold regMu.
func (s *Source) register() {
	s.mu.Lock()
	if s.registered {
		s.mu.Unlock()
		return
	}
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	initial := motion.EnvironmentState{
		ReducedMotion:  s.query(s.motion),
		NarrowViewport: s.query(s.viewport),
	}

	s.mu.Lock()
	s.state = initial
	s.registered = true
	s.mu.Unlock()

	stops := make([]func(), 0, 2)
	for _, w := range []struct {
		pred  ports.Predicate
		field field
	}{{s.motion, fieldMotion}, {s.viewport, fieldViewport}} {
		if w.pred == nil {
			continue
		}
		f := w.field
		stop, err := w.pred.Watch(func(value bool) { s.update(gen, f, value) })
		if err != nil {
			s.logger.Warn(context.Background(), "predicate watch failed", "predicate", w.pred.Name(), "error", err)
			s.update(gen, f, false)
			continue
		}
		stops = append(stops, stop)

		// pick up any change between the first query and the watch
		if value, err := w.pred.Matches(); err == nil {
			s.update(gen, f, value)
		}
	}

	s.mu.Lock()
	s.stops = stops
	s.mu.Unlock()
}

func (s *Source) query(pred ports.Predicate) bool {
	if pred == nil {
		return false
	}
	value, err := pred.Matches()
	if err != nil {
		s.logger.Warn(context.Background(), "predicate query failed", "predicate", pred.Name(), "error", err)
		return false
	}
	return value
}

func (s *Source) update(gen uint64, f field, value bool) {
	s.mu.Lock()
	if gen != s.generation || !s.registered {
		s.mu.Unlock()
		return
	}

	next := s.state
	switch f {
	case fieldMotion:
		next.ReducedMotion = value
	case fieldViewport:
		next.NarrowViewport = value
	}
	if next == s.state {
		s.mu.Unlock()
		return
	}

	s.state = next
	for _, sub := range s.subs {
		sub.offer(next)
	}
	subscribers := len(s.subs)
	s.mu.Unlock()

	s.logger.Debug(context.Background(), "environment changed",
		"reduced_motion", next.ReducedMotion,
		"narrow_viewport", next.NarrowViewport,
		"subscribers", subscribers,
	)
}

func (s *Source) remove(id uint64) {
	s.regMu.Lock()
	defer s.regMu.Unlock()

	s.mu.Lock()
	delete(s.subs, id)
	var stops []func()
	if len(s.subs) == 0 && s.registered {
		s.registered = false
		s.generation++
		stops = s.stops
		s.stops = nil
	}
	s.mu.Unlock()

	for _, stop := range stops {
		stop()
	}
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	source *Source
	id     uint64
	sub    *subscriber
	once   sync.Once
}

// Unsubscribe stops deliveries. It is idempotent and may be called from
// inside the callback. Called from any other goroutine it waits for a callback
// in progress to return, so no invocation runs once it returns.
func (h *Subscription) Unsubscribe() {
	h.once.Do(func() {
		h.sub.close()
		h.source.remove(h.id)
	})
}

type subscriber struct {
	fn func(motion.EnvironmentState)

	// deliver is held for the whole of every asynchronous callback.
	deliver sync.Mutex
	// dispatcher is the id of the goroutine running run.
	dispatcher atomic.Uint64

	mu         sync.Mutex
	pending    motion.EnvironmentState
	hasPending bool
	closed     bool

	wake chan struct{}
}

func newSubscriber(fn func(motion.EnvironmentState)) *subscriber {
	return &subscriber{fn: fn, wake: make(chan struct{}, 1)}
}

func (s *subscriber) deliverInitial(state motion.EnvironmentState) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if !closed {
		s.fn(state)
	}
}

func (s *subscriber) offer(state motion.EnvironmentState) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.pending = state
	s.hasPending = true
	s.mu.Unlock()
	s.signal()
}

// close marks the subscriber closed and, unless called from within a
// callback, waits until no callback is running.
func (s *subscriber) close() {
	s.mu.Lock()
	s.closed = true
	s.hasPending = false
	s.mu.Unlock()
	s.signal()

	if s.dispatcher.Load() == goroutineID() {
		return
	}
	s.deliver.Lock()
	s.deliver.Unlock()
}

func (s *subscriber) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber) run() {
	s.dispatcher.Store(goroutineID())
	for range s.wake {
		for s.deliverNext() {
		}
		s.mu.Lock()
		closed := s.closed
		s.mu.Unlock()
		if closed {
			return
		}
	}
}

// deliverNext runs the callback for the pending state, if any. The closed
// check and the callback happen under deliver, so close cannot slip between
// them.
func (s *subscriber) deliverNext() bool {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	s.mu.Lock()
	if s.closed || !s.hasPending {
		s.mu.Unlock()
		return false
	}
	state := s.pending
	s.hasPending = false
	s.mu.Unlock()

	s.fn(state)
	return true
}
