package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cadence/internal/resolver"
)

type paramView struct {
	Name  string  `json:"name" yaml:"name"`
	Class string  `json:"class" yaml:"class"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
}

type kindView struct {
	Kind        string      `json:"kind" yaml:"kind"`
	Description string      `json:"description" yaml:"description"`
	Params      []paramView `json:"params" yaml:"params"`
}

func newKindsCmd(app *AppContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List component kinds and the parameters they accept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return newCommandError("list kinds", "reading --output", err, "Use text, json or yaml.")
			}

			views := kindViews(resolver.Default())
			if format != outputText {
				return writeStructured(cmd.OutOrStdout(), format, views)
			}

			out := cmd.OutOrStdout()
			for i, view := range views {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s  %s\n", headingStyle.Render(view.Kind), labelStyle.Render(view.Description))
				for _, p := range view.Params {
					fmt.Fprintf(out, "  %-14s %-11s [%g, %g]\n", p.Name, p.Class, p.Min, p.Max)
				}
			}
			return nil
		},
	}

	bindOutputFlag(cmd, &output)
	return cmd
}

func kindViews(r *resolver.Resolver) []kindView {
	profiles := r.Profiles()
	views := make([]kindView, 0, len(profiles))
	for _, profile := range profiles {
		view := kindView{Kind: profile.Kind, Description: profile.Description}
		for _, key := range profile.Keys() {
			param := profile.Params[key]
			view.Params = append(view.Params, paramView{
				Name:  key,
				Class: string(param.Class),
				Min:   param.Min,
				Max:   param.Max,
			})
		}
		views = append(views, view)
	}
	return views
}
