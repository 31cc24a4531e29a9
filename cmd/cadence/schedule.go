package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cadence/internal/sequence"
	"github.com/alexisbeaulieu97/cadence/internal/tui/components"
)

type scheduleOptions struct {
	steps     []string
	items     int
	staggerMS int64
	output    string
}

func newScheduleCmd(app *AppContext) *cobra.Command {
	opts := &scheduleOptions{}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute the timeline of a staggered sequence",
		Example: `  cadence schedule --step fade:0:400 --items 3 --stagger 100
  cadence schedule --step fade:0:400 --step chart:100:800:fade --items 2 --stagger 150 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd, app, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.steps, "step", nil, "Step as name:delayMs:durationMs[:after] (repeatable)")
	cmd.Flags().IntVarP(&opts.items, "items", "n", 1, "Number of repeated items")
	cmd.Flags().Int64Var(&opts.staggerMS, "stagger", 0, "Offset between consecutive items in milliseconds")
	bindOutputFlag(cmd, &opts.output)

	return cmd
}

func runSchedule(cmd *cobra.Command, app *AppContext, opts *scheduleOptions) error {
	ctx, logger := app.CommandContext(cmd, "schedule")

	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return newCommandError("schedule", "reading --output", err, "Use text, json or yaml.")
	}
	if len(opts.steps) == 0 {
		return newCommandError("schedule", "reading --step", errors.New("at least one step is required"), "Pass steps as --step name:delay:duration.")
	}
	steps, err := parseSteps(opts.steps)
	if err != nil {
		return newCommandError("schedule", "reading --step", err, "Pass steps as --step name:delay:duration[:after].")
	}

	stagger, err := millis(opts.staggerMS)
	if err != nil {
		return newCommandError("schedule", "reading --stagger", err, "Keep --stagger within one hour.")
	}

	plan, err := sequence.GeneratePlan(sequence.Request{
		Name:    "schedule",
		Steps:   steps,
		Items:   opts.items,
		Stagger: stagger,
	})
	if err != nil {
		logger.Error(ctx, "schedule failed", "error", err)
		return newCommandError("schedule", "computing the timeline", err, "Check step names, 'after' references and that --stagger is not negative.")
	}
	logger.Debug(ctx, "timeline computed", "entries", plan.Timeline.Len(), "total_ms", plan.Timeline.Total().Milliseconds())

	if format != outputText {
		return writeStructured(cmd.OutOrStdout(), format, timelineView{
			TotalMS: plan.Timeline.Total().Milliseconds(),
			Entries: newEntryViews(plan.Timeline),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, plan.String())
	fmt.Fprintln(out)
	fmt.Fprintln(out, components.Gantt(plan.Timeline, 80, -1))
	return nil
}
