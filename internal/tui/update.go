package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

// Update handles bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EnvironmentMsg:
		m.env = msg.State
		m.recompute()
		return m, m.feed.next()
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		m.playhead += frameInterval
		if total := m.total(); m.playhead >= total {
			m.playhead = total
			m.playing = false
			return m, nil
		}
		return m, tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finished = true
		m.feed.close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Motion):
		m.reduced.Toggle()
	case key.Matches(msg, m.keys.Narrow):
		m.narrow.Toggle()
	case key.Matches(msg, m.keys.Tier):
		if m.tier == motion.TierFull {
			m.tier = motion.TierReduced
		} else {
			m.tier = motion.TierFull
		}
		m.recompute()
	case key.Matches(msg, m.keys.Play):
		if m.playing {
			m.playing = false
			return m, nil
		}
		if m.total() == 0 {
			return m, nil
		}
		if m.playhead >= m.total() {
			m.playhead = 0
		}
		m.playing = true
		return m, tick()
	case key.Matches(msg, m.keys.Restart):
		m.playhead = 0
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}
