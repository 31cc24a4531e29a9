package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
	"github.com/alexisbeaulieu97/cadence/internal/environment"
)

// environmentFeed bridges Source deliveries into bubbletea messages. The
// callback blocks until the program reads, so the Source coalesces whatever
// arrives meanwhile.
type environmentFeed struct {
	updates chan motion.EnvironmentState
	done    chan struct{}
	once    sync.Once
	sub     *environment.Subscription
}

func subscribeFeed(source *environment.Source) *environmentFeed {
	f := &environmentFeed{
		updates: make(chan motion.EnvironmentState, 1),
		done:    make(chan struct{}),
	}
	f.sub = source.Subscribe(func(state motion.EnvironmentState) {
		select {
		case f.updates <- state:
		case <-f.done:
		}
	})
	return f
}

// next waits for the following delivery.
func (f *environmentFeed) next() tea.Cmd {
	return func() tea.Msg {
		select {
		case state := <-f.updates:
			return EnvironmentMsg{State: state}
		case <-f.done:
			return nil
		}
	}
}

func (f *environmentFeed) close() {
	f.once.Do(func() {
		close(f.done)
		f.sub.Unsubscribe()
	})
}
