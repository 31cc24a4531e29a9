package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/cadence/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/cadence/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/cadence/internal/ports"
	"github.com/alexisbeaulieu97/cadence/internal/tui"
)

type previewOptions struct {
	env     envFlags
	catalog catalogFlags
}

func newPreviewCmd(app *AppContext) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Play a catalog's timelines interactively",
		Long: `Launch an interactive preview of a catalog. Toggle reduced motion (m),
the narrow viewport (n) and the capability tier (t) to watch variants and
timelines recompute; space plays the timeline.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, app, opts)
		},
	}

	opts.env.bind(cmd)
	opts.catalog.bind(cmd)

	return cmd
}

func runPreview(cmd *cobra.Command, app *AppContext, opts *previewOptions) error {
	ctx, logger := app.CommandContext(cmd, "preview")

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return newCommandError("preview", "opening the terminal", errors.New("stdout is not a terminal"), "Run 'cadence plan' for non-interactive output.")
	}

	// The preview owns the screen; entries logged while it runs are replayed
	// once it exits.
	buffer := logging.NewEventBuffer(0)
	screenLogger := logging.NewBufferedLogger(buffer)
	defer buffer.Flush(logger)

	publisher := events.NewLoggingPublisher(screenLogger)
	failures, err := tallyPlanFailures(publisher)
	if err != nil {
		return newCommandError("preview", "subscribing to plan events", err, "Retry the command.")
	}
	defer failures.report(ctx, logger)

	controller, err := buildController(ctx, cmd, app, &opts.env, &opts.catalog, screenLogger, publisher)
	if err != nil {
		return err
	}

	model := tui.NewModel(ctx, controller, opts.env.environment(cmd, app, logger), screenLogger)
	defer model.Close()

	logger.Info(ctx, "launching preview", "catalog", controller.Catalog().Name)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error(ctx, "preview failed", "error", err)
		return newCommandError("preview", "running the terminal UI", err, "Try a larger terminal window.")
	}
	return nil
}

// planFailures counts recomputations the preview could not plan so they can
// be summarised after the screen is released.
type planFailures struct {
	mu    sync.Mutex
	count int
	last  string
	sub   ports.Subscription
}

func tallyPlanFailures(publisher ports.EventPublisher) (*planFailures, error) {
	f := &planFailures{}
	sub, err := publisher.Subscribe(ports.EventPlanFailed, f.record)
	if err != nil {
		return nil, err
	}
	f.sub = sub
	return f, nil
}

func (f *planFailures) record(_ context.Context, event ports.DomainEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++
	if data, ok := event.Payload().(map[string]interface{}); ok && data["error"] != nil {
		f.last = fmt.Sprint(data["error"])
	}
	return nil
}

func (f *planFailures) snapshot() (int, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count, f.last
}

// report unsubscribes and warns once if any recomputation failed.
func (f *planFailures) report(ctx context.Context, logger ports.Logger) {
	f.sub.Unsubscribe()
	count, last := f.snapshot()
	if count == 0 || logger == nil {
		return
	}
	logger.Warn(ctx, "preview skipped invalid recomputations", "failures", count, "last_error", last)
}
