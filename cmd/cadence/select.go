package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cadence/internal/variant"
)

type selectOptions struct {
	env    envFlags
	output string
}

type selectionView struct {
	Variant     string          `json:"variant" yaml:"variant"`
	Animated    bool            `json:"animated" yaml:"animated"`
	Tier        string          `json:"tier" yaml:"tier"`
	Environment environmentView `json:"environment" yaml:"environment"`
}

func newSelectCmd(app *AppContext) *cobra.Command {
	opts := &selectOptions{}

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Show which variant the current environment selects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, app, opts)
		},
	}

	opts.env.bind(cmd)
	bindOutputFlag(cmd, &opts.output)

	return cmd
}

func runSelect(cmd *cobra.Command, app *AppContext, opts *selectOptions) error {
	ctx, logger := app.CommandContext(cmd, "select")

	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return newCommandError("select", "reading --output", err, "Use text, json or yaml.")
	}
	tier, err := opts.env.resolveTier(cmd, app, "")
	if err != nil {
		return newCommandError("select", "reading --tier", err, "Use --tier full or --tier reduced.")
	}

	env := opts.env.environment(cmd, app, logger)
	selected := variant.Select(env, tier)
	logger.Debug(ctx, "variant selected", "variant", selected.String(), "tier", string(tier))

	view := selectionView{
		Variant:     selected.String(),
		Animated:    selected.Animated(),
		Tier:        string(tier),
		Environment: newEnvironmentView(env),
	}
	if format != outputText {
		return writeStructured(cmd.OutOrStdout(), format, view)
	}

	out := cmd.OutOrStdout()
	writeField(out, "variant", view.Variant)
	writeField(out, "reduced motion", onOff(env.ReducedMotion))
	writeField(out, "narrow", onOff(env.NarrowViewport))
	writeField(out, "tier", view.Tier)
	return nil
}
