package cmd

import (
	"encoding/json"
	"fmt"

	sessionsrender "github.com/kintelligence/strawberry-cookie-tools/internal/adapters/render/sessions"
	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect session state files",
	}

	cmd.AddCommand(
		newSessionsListCmd(app),
		newSessionsShowCmd(app),
		newSessionsRemoveCmd(app),
	)

	return cmd
}

func newSessionsListCmd(app *app) *cobra.Command {
	var (
		asJSON    bool
		showPaths bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List session state files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := app.sessions.List(cmd.Context())
			if records == nil {
				return err
			}

			unreadable := 0
			if err != nil {
				unreadable = reportUnreadableSessions(cmd, err)
			}

			return writeSessionsOutput(cmd, app, records, unreadable, showPaths, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON")
	cmd.Flags().BoolVar(&showPaths, "paths", false, "Show the file backing each record")

	return cmd
}

func newSessionsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <contentId>",
		Short: "Print one session state file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseSessionID(args[0])
			if err != nil {
				return err
			}

			record, err := app.sessions.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("session %s: %w", id, err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(record)
		},
	}
}

func newSessionsRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <contentId>",
		Short: "Delete a stale session state file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseSessionID(args[0])
			if err != nil {
				return err
			}

			return app.sessions.Delete(cmd.Context(), id)
		},
	}
}

// reportUnreadableSessions prints one warning per skipped session file and
// returns how many there were.
func reportUnreadableSessions(cmd *cobra.Command, err error) int {
	skipped := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		skipped = joined.Unwrap()
	}
	for _, skip := range skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", skip)
	}

	return len(skipped)
}

func writeSessionsOutput(cmd *cobra.Command, app *app, records []domain.SessionRecord, unreadable int, showPaths bool, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	opts := sessionsrender.RenderOptions{Unreadable: unreadable}
	if showPaths {
		opts.PathFor = app.sessions.PathFor
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), sessionsrender.Render(records, opts))
	return err
}
