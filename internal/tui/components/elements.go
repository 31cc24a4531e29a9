package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cadence/internal/app/orchestrator"
	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

var (
	fullStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	reducedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	badgeOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("212")).Padding(0, 1)
	badgeOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")).Padding(0, 1)
)

// VariantBadge renders a variant name in its status colour.
func VariantBadge(v motion.Variant) string {
	switch v {
	case motion.VariantFull:
		return fullStyle.Render(v.String())
	case motion.VariantReduced:
		return reducedStyle.Render(v.String())
	default:
		return disabledStyle.Render(v.String())
	}
}

// ElementTable renders one line per element: id, kind, variant and the
// effective parameters.
func ElementTable(elements []orchestrator.ElementPlan) string {
	if len(elements) == 0 {
		return mutedStyle.Render("no elements")
	}

	idWidth, kindWidth := 0, 0
	for _, e := range elements {
		idWidth = max(idWidth, len(e.ID))
		kindWidth = max(kindWidth, len(e.Kind))
	}

	lines := make([]string, 0, len(elements))
	for _, e := range elements {
		variant := VariantBadge(e.Variant) + strings.Repeat(" ", max(0, 8-len(e.Variant.String())))
		lines = append(lines, fmt.Sprintf("%-*s  %-*s  %s  %s",
			idWidth, e.ID,
			kindWidth, e.Kind,
			variant,
			formatParams(e.Effective),
		))
	}
	return strings.Join(lines, "\n")
}

func formatParams(cfg motion.EffectConfig) string {
	keys := cfg.Keys()
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value, _ := cfg.Get(key)
		parts = append(parts, fmt.Sprintf("%s=%g", key, value))
	}
	return strings.Join(parts, " ")
}

// EnvironmentBadges renders the environment flags and the requested tier.
func EnvironmentBadges(env motion.EnvironmentState, tier motion.Tier) string {
	badge := func(label string, on bool) string {
		if on {
			return badgeOnStyle.Render(label + ": on")
		}
		return badgeOffStyle.Render(label + ": off")
	}
	return lipgloss.JoinHorizontal(lipgloss.Left,
		badge("reduced motion", env.ReducedMotion), " ",
		badge("narrow", env.NarrowViewport), " ",
		badgeOffStyle.Render("tier: "+string(tier)),
	)
}
