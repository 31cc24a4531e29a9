package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
	"github.com/alexisbeaulieu97/cadence/internal/variant"
)

type resolveOptions struct {
	env    envFlags
	kind   string
	params []string
	output string
}

func newResolveCmd(app *AppContext) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve one effect configuration for the current environment",
		Example: `  cadence resolve --kind particles --param particleCount=100 --param speed=0.5 --narrow
  cadence resolve --kind waves --param waveCount=4 --param amplitude=60 --reduced-motion -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, app, opts)
		},
	}

	opts.env.bind(cmd)
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "Component kind (see 'cadence kinds')")
	cmd.Flags().StringArrayVar(&opts.params, "param", nil, "Base parameter as key=value (repeatable)")
	bindOutputFlag(cmd, &opts.output)

	return cmd
}

func runResolve(cmd *cobra.Command, app *AppContext, opts *resolveOptions) error {
	ctx, logger := app.CommandContext(cmd, "resolve")

	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return newCommandError("resolve", "reading --output", err, "Use text, json or yaml.")
	}
	if strings.TrimSpace(opts.kind) == "" {
		return newCommandError("resolve", "reading --kind", errors.New("component kind is required"), "Run 'cadence kinds' to list the available kinds.")
	}
	params, err := parseParams(opts.params)
	if err != nil {
		return newCommandError("resolve", "reading --param", err, "Pass parameters as --param name=value.")
	}
	tier, err := opts.env.resolveTier(cmd, app, "")
	if err != nil {
		return newCommandError("resolve", "reading --tier", err, "Use --tier full or --tier reduced.")
	}

	env := opts.env.environment(cmd, app, logger)
	base := motion.NewEffectConfig(opts.kind, params)

	choice, err := variant.NewSelector(nil).Choose(env, base, tier)
	if err != nil {
		logger.Error(ctx, "resolve failed", "kind", opts.kind, "error", err)
		return newCommandError("resolve", fmt.Sprintf("resolving %s", opts.kind), err, "Run 'cadence kinds' to see accepted parameters and ranges.")
	}
	logger.Debug(ctx, "configuration resolved", "kind", opts.kind, "variant", choice.Variant.String())

	view := choiceView{
		Kind:        base.Kind(),
		Variant:     choice.Variant.String(),
		Tier:        string(tier),
		Environment: newEnvironmentView(env),
		Base:        base.Values(),
		Effective:   choice.Config.Values(),
	}
	if format != outputText {
		return writeStructured(cmd.OutOrStdout(), format, view)
	}

	out := cmd.OutOrStdout()
	writeField(out, "kind", view.Kind)
	writeField(out, "variant", view.Variant)
	writeField(out, "reduced motion", onOff(env.ReducedMotion))
	writeField(out, "narrow", onOff(env.NarrowViewport))
	writeField(out, "tier", view.Tier)
	writeField(out, "base", base.String())
	writeField(out, "effective", choice.Config.String())
	return nil
}
