package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kintelligence/strawberry-cookie-tools/internal/application"
	"github.com/kintelligence/strawberry-cookie-tools/internal/config"
	"github.com/kintelligence/strawberry-cookie-tools/internal/host"
	"github.com/kintelligence/strawberry-cookie-tools/internal/plugin"
	"github.com/kintelligence/strawberry-cookie-tools/internal/ports"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the host loop: poll the command file and track sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := app.newLogger(cmd.ErrOrStderr())

			loop := host.NewLoop(app.cfg.TickInterval, logger)
			commands := host.NewCommandRegistry()
			state := host.NewClientState()
			watcher := application.NewCommandWatcher(app.inbox, commands, ports.SystemClock{}, logger, app.cfg.PollInterval)

			p, err := plugin.New(plugin.Dependencies{
				Loop:        loop,
				Commands:    commands,
				ClientState: state,
				Watcher:     watcher,
				Sessions:    application.NewSessionStateWriter(app.sessions, state, app.pid, logger),
				CommandFile: app.inbox.Path(),
				Logger:      logger,
			})
			if err != nil {
				return fmt.Errorf("start plugin: %w", err)
			}
			defer p.Close()

			if once {
				loop.Update(cmd.Context())
				loop.Drain(cmd.Context())
				return nil
			}

			config.Watch(app.viper, logger, func(cfg config.Config) {
				watcher.SetInterval(cfg.PollInterval)
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("host loop started", "tick_interval", app.cfg.TickInterval.String(), "handoff", string(app.inbox.Mode()))
			err = loop.Run(ctx)
			logger.Info("host loop stopped")
			return err
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Run a single host frame and exit")

	return cmd
}
