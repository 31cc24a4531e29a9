package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cadence/internal/config"
	infraconfig "github.com/alexisbeaulieu97/cadence/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/cadence/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/cadence/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/cadence/internal/ports"
)

// AppContext bundles long-lived services created before a command runs.
type AppContext struct {
	Settings config.Settings
	Logger   ports.Logger
	Events   ports.EventPublisher
	Catalogs ports.CatalogLoader
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return newCommandError("start", "reading CADENCE_* settings", err, "Check the CADENCE_* environment variables.")
	}

	level := settings.LogLevel
	if flags.verbose {
		level = "debug"
	}
	format := settings.LogFormat
	if flags.logFormat != "" {
		format = flags.logFormat
	}

	logger, err := logging.New(logging.Options{
		Writer:    cmd.ErrOrStderr(),
		Level:     level,
		Format:    format,
		Layer:     "application",
		Component: "cli",
	})
	if err != nil {
		return newCommandError("start", "creating logger", err, "Use --log-format console or --log-format json.")
	}

	a.Settings = settings
	a.Logger = logger
	a.Events = events.NewLoggingPublisher(logger)
	a.Catalogs = infraconfig.NewCatalogLoader(logger.With("layer", "infrastructure", "component", "catalog"))
	return nil
}

// CommandContext returns a context carrying a fresh correlation ID and a
// logger scoped to the named command.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithCorrelationID(ctx, logging.GenerateCorrelationID())

	logger := a.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return ctx, logger.With("command", name)
}
