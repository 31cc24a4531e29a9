package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/cadence/internal/app/orchestrator"
	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func bindOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", string(outputText), "Output format (text, json or yaml)")
}

func parseOutputFormat(value string) (outputFormat, error) {
	switch format := outputFormat(strings.ToLower(strings.TrimSpace(value))); format {
	case outputText, outputJSON, outputYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q", value)
	}
}

// writeStructured encodes payload as JSON or YAML.
func writeStructured(w io.Writer, format outputFormat, payload interface{}) error {
	switch format {
	case outputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case outputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(payload); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("format %q is not structured", format)
	}
}

func writeField(w io.Writer, label string, value interface{}) {
	fmt.Fprintf(w, "%s %v\n", labelStyle.Render(fmt.Sprintf("%-16s", label+":")), value)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Output views report durations in milliseconds.

type environmentView struct {
	ReducedMotion  bool `json:"reduced_motion" yaml:"reduced_motion"`
	NarrowViewport bool `json:"narrow_viewport" yaml:"narrow_viewport"`
}

func newEnvironmentView(env motion.EnvironmentState) environmentView {
	return environmentView{ReducedMotion: env.ReducedMotion, NarrowViewport: env.NarrowViewport}
}

type choiceView struct {
	Kind        string             `json:"kind" yaml:"kind"`
	Variant     string             `json:"variant" yaml:"variant"`
	Tier        string             `json:"tier" yaml:"tier"`
	Environment environmentView    `json:"environment" yaml:"environment"`
	Base        map[string]float64 `json:"base" yaml:"base"`
	Effective   map[string]float64 `json:"effective" yaml:"effective"`
}

type entryView struct {
	Item    int    `json:"item" yaml:"item"`
	Name    string `json:"name" yaml:"name"`
	StartMS int64  `json:"start_ms" yaml:"start_ms"`
	EndMS   int64  `json:"end_ms" yaml:"end_ms"`
}

func newEntryViews(tl motion.Timeline) []entryView {
	out := make([]entryView, 0, tl.Len())
	for _, e := range tl.Entries {
		out = append(out, entryView{
			Item:    e.Item,
			Name:    e.Name,
			StartMS: e.Start.Milliseconds(),
			EndMS:   e.End.Milliseconds(),
		})
	}
	return out
}

type timelineView struct {
	TotalMS int64       `json:"total_ms" yaml:"total_ms"`
	Entries []entryView `json:"entries" yaml:"entries"`
}

type elementView struct {
	ID        string             `json:"id" yaml:"id"`
	Kind      string             `json:"kind" yaml:"kind"`
	Variant   string             `json:"variant" yaml:"variant"`
	Base      map[string]float64 `json:"base" yaml:"base"`
	Effective map[string]float64 `json:"effective" yaml:"effective"`
}

type sequenceView struct {
	ID        string      `json:"id" yaml:"id"`
	Items     int         `json:"items" yaml:"items"`
	StaggerMS int64       `json:"stagger_ms" yaml:"stagger_ms"`
	Static    bool        `json:"static" yaml:"static"`
	TotalMS   int64       `json:"total_ms" yaml:"total_ms"`
	Entries   []entryView `json:"entries" yaml:"entries"`
}

type planView struct {
	Catalog     string          `json:"catalog" yaml:"catalog"`
	Tier        string          `json:"tier" yaml:"tier"`
	Environment environmentView `json:"environment" yaml:"environment"`
	Elements    []elementView   `json:"elements" yaml:"elements"`
	Sequences   []sequenceView  `json:"sequences" yaml:"sequences"`
}

func newPlanView(plan *orchestrator.Plan) planView {
	view := planView{
		Catalog:     plan.Catalog,
		Tier:        string(plan.Tier),
		Environment: newEnvironmentView(plan.Environment),
		Elements:    make([]elementView, 0, len(plan.Elements)),
		Sequences:   make([]sequenceView, 0, len(plan.Sequences)),
	}
	for _, e := range plan.Elements {
		view.Elements = append(view.Elements, elementView{
			ID:        e.ID,
			Kind:      e.Kind,
			Variant:   e.Variant.String(),
			Base:      e.Base.Values(),
			Effective: e.Effective.Values(),
		})
	}
	for _, s := range plan.Sequences {
		view.Sequences = append(view.Sequences, sequenceView{
			ID:        s.ID,
			Items:     s.Items,
			StaggerMS: s.Stagger.Milliseconds(),
			Static:    s.Static,
			TotalMS:   s.Timeline.Total().Milliseconds(),
			Entries:   newEntryViews(s.Timeline),
		})
	}
	return view
}
