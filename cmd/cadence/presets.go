package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cadence/internal/config"
	"github.com/alexisbeaulieu97/cadence/internal/ports"
)

type presetView struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Elements    int    `json:"elements" yaml:"elements"`
	Sequences   int    `json:"sequences" yaml:"sequences"`
}

func newPresetsCmd(app *AppContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "presets")

			format, err := parseOutputFormat(output)
			if err != nil {
				return newCommandError("list presets", "reading --output", err, "Use text, json or yaml.")
			}

			names := config.PresetNames()
			views := make([]presetView, 0, len(names))
			for _, name := range names {
				cat, err := app.Catalogs.Load(ctx, ports.CatalogRef{Preset: name})
				if err != nil {
					return newCommandError("list presets", fmt.Sprintf("loading preset %q", name), err, "Reinstall cadence; the built-in presets are corrupt.")
				}
				views = append(views, presetView{
					Name:        name,
					Description: cat.Description,
					Elements:    len(cat.Elements),
					Sequences:   len(cat.Sequences),
				})
			}

			if format != outputText {
				return writeStructured(cmd.OutOrStdout(), format, views)
			}
			for _, view := range views {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", headingStyle.Render(view.Name), view.Description)
			}
			return nil
		},
	}

	bindOutputFlag(cmd, &output)
	return cmd
}
