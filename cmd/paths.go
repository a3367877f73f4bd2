package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the resolved file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configFile := app.cfg.ConfigFile
			if configFile == "" {
				configFile = app.cfg.ConfigPath() + " (not found)"
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "root\t%s\n", app.cfg.Root)
			_, _ = fmt.Fprintf(out, "command_file\t%s\n", app.inbox.Path())
			_, _ = fmt.Fprintf(out, "session_dir\t%s\n", app.sessions.Root())
			_, err := fmt.Fprintf(out, "config\t%s\n", configFile)
			return err
		},
	}
}
