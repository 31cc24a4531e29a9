package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cadence/internal/app/orchestrator"
	"github.com/alexisbeaulieu97/cadence/internal/config"
	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
	"github.com/alexisbeaulieu97/cadence/internal/ports"
	"github.com/alexisbeaulieu97/cadence/internal/tui/components"
)

type planOptions struct {
	env     envFlags
	catalog catalogFlags
	output  string
}

func newPlanCmd(app *AppContext) *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute variants and timelines for every element of a catalog",
		Example: `  cadence plan --preset dashboard --narrow
  cadence plan --file ./landing.yaml --reduced-motion -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, app, opts)
		},
	}

	opts.env.bind(cmd)
	opts.catalog.bind(cmd)
	bindOutputFlag(cmd, &opts.output)

	return cmd
}

func runPlan(cmd *cobra.Command, app *AppContext, opts *planOptions) error {
	ctx, logger := app.CommandContext(cmd, "plan")

	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return newCommandError("plan", "reading --output", err, "Use text, json or yaml.")
	}

	controller, err := buildController(ctx, cmd, app, &opts.env, &opts.catalog, logger, app.Events)
	if err != nil {
		return err
	}

	env := opts.env.environment(cmd, app, logger)
	plan, err := controller.Plan(ctx, env)
	if err != nil {
		return newCommandError("plan", fmt.Sprintf("planning catalog %q", controller.Catalog().Name), err, "Run 'cadence kinds' to check element parameters.")
	}

	if format != outputText {
		return writeStructured(cmd.OutOrStdout(), format, newPlanView(plan))
	}
	renderPlanText(cmd.OutOrStdout(), plan)
	return nil
}

// buildController loads the selected catalog and wires a controller. The tier
// comes from --tier, then the catalog, then CADENCE_TIER.
func buildController(ctx context.Context, cmd *cobra.Command, app *AppContext, env *envFlags, catalog *catalogFlags, logger ports.Logger, publisher ports.EventPublisher) (*orchestrator.Controller, error) {
	ref := ports.CatalogRef{Preset: catalog.preset, Path: catalog.file}

	cat, err := app.Catalogs.Load(ctx, ref)
	if err != nil {
		return nil, newCommandError("load catalog", ref.String(), err, fmt.Sprintf("Run 'cadence presets' for built-in catalogs; available: %v.", config.PresetNames()))
	}

	var fallback motion.Tier
	if cat.Tier != "" {
		fallback = cat.DefaultTier()
	}
	tier, err := env.resolveTier(cmd, app, fallback)
	if err != nil {
		return nil, newCommandError("load catalog", "reading --tier", err, "Use --tier full or --tier reduced.")
	}

	controller, err := orchestrator.NewController(cat,
		orchestrator.WithTier(tier),
		orchestrator.WithLogger(logger),
		orchestrator.WithEvents(publisher),
	)
	if err != nil {
		return nil, newCommandError("load catalog", ref.String(), err, "Check the catalog tier.")
	}
	return controller, nil
}

func renderPlanText(w io.Writer, plan *orchestrator.Plan) {
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("Catalog: %s", plan.Catalog)))
	fmt.Fprintln(w, components.EnvironmentBadges(plan.Environment, plan.Tier))
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render("Elements"))
	fmt.Fprintln(w, components.ElementTable(plan.Elements))

	for _, seq := range plan.Sequences {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("Sequence %s (%d items, stagger %dms, total %dms)",
			seq.ID, seq.Items, seq.Stagger.Milliseconds(), seq.Timeline.Total().Milliseconds())))
		fmt.Fprintln(w, components.Gantt(seq.Timeline, 80, -1))
	}
}
