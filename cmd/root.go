package cmd

import (
	"github.com/kintelligence/strawberry-cookie-tools/internal/config"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sct",
		Short:         "Strawberry Cookie Tools (sct): file command bridge and session state",
		Long:          "sct runs the Strawberry Cookie Tools bridge: it polls a command file, dispatches each command to the host command table, and mirrors logins into per-session JSON files.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().String(config.LogLevelFlag, "", "Log level (debug, info, warn, error); overrides log_level and SCT_LOG_LEVEL")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	if err := config.BindLogLevelFlag(app.viper, rootCmd.PersistentFlags()); err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		level, err := config.LogLevel(app.viper)
		if err != nil {
			return err
		}
		app.cfg.LogLevel = level
		return nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(app),
		newSendCmd(app),
		newSessionsCmd(app),
		newPathsCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
