package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "cadence",
		Short:         "Cadence adapts animation configs and sequences to the viewing environment",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format (console or json); defaults to CADENCE_LOG_FORMAT")

	cmd.AddCommand(newResolveCmd(app))
	cmd.AddCommand(newSelectCmd(app))
	cmd.AddCommand(newScheduleCmd(app))
	cmd.AddCommand(newPlanCmd(app))
	cmd.AddCommand(newKindsCmd(app))
	cmd.AddCommand(newPresetsCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
