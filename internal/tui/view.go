package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cadence/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	sections = append(sections,
		titleStyle.Render(fmt.Sprintf("cadence • %s", m.controller.Catalog().Name)),
		components.EnvironmentBadges(m.env, m.tier),
	)

	if m.err != nil {
		sections = append(sections, failureStyle.Render(m.err.Error()))
	} else if m.plan == nil {
		sections = append(sections, mutedStyle.Render("waiting for environment…"))
	} else {
		sections = append(sections, sectionStyle.Render("Elements"), components.ElementTable(m.plan.Elements))

		sections = append(sections, sectionStyle.Render("Timeline"), components.NewPlayhead(m.total()).View(m.playhead))
		for _, seq := range m.plan.Sequences {
			heading := fmt.Sprintf("%s (%d items, stagger %dms)", seq.ID, seq.Items, seq.Stagger.Milliseconds())
			sections = append(sections, mutedStyle.Render(heading), components.Gantt(seq.Timeline, m.width, m.playhead))
		}
	}

	sections = append(sections, footerStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
