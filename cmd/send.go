package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
	"github.com/spf13/cobra"
)

const sendPollInterval = 50 * time.Millisecond

var errSendTimeout = errors.New("command was not consumed in time")

// deliveryWaiter blocks until the sent command is consumed, reporting each
// stage change to observe.
type deliveryWaiter func(ctx context.Context, observe func(domain.DeliveryStage)) error

type deliveryChecker interface {
	Delivery(ctx context.Context) (domain.DeliveryStage, error)
}

func newSendCmd(app *app) *cobra.Command {
	var (
		wait  time.Duration
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "send <command> [args...]",
		Short: "Write a command into the command file",
		Example: `  sct send /sct
  sct send /login 18014398509481984 '"Strawberry Cookie"' Gilgamesh WHM 100
  sct send --wait 2s /logout`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.TrimSpace(strings.Join(args, " "))
			if !strings.HasPrefix(command, "/") {
				command = "/" + command
			}

			err := app.inbox.Send(cmd.Context(), command)
			if err != nil {
				return err
			}
			if wait <= 0 {
				return nil
			}

			waiter := func(ctx context.Context, observe func(domain.DeliveryStage)) error {
				return waitDelivered(ctx, app.inbox, wait, sendPollInterval, observe)
			}
			if quiet {
				err = waiter(cmd.Context(), func(domain.DeliveryStage) {})
			} else {
				err = runDeliverySpinner(cmd.Context(), cmd.ErrOrStderr(), command, app.inbox.Path(), waiter)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), domain.DeliveryConsumed)
			return err
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", 0, "Wait until the bridge consumes the command")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not show a spinner while waiting")

	return cmd
}

// waitDelivered polls until the command has left both the command file and,
// in rename mode, the claimed file. It gives up after timeout.
func waitDelivered(ctx context.Context, inbox deliveryChecker, timeout, every time.Duration, observe func(domain.DeliveryStage)) error {
	deadline := time.Now().Add(timeout)
	last := domain.DeliveryQueued
	for {
		stage, err := inbox.Delivery(ctx)
		if err != nil {
			return err
		}
		if stage != last {
			observe(stage)
			last = stage
		}
		if stage == domain.DeliveryConsumed {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w (%s after %s)", errSendTimeout, stage, timeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(every):
		}
	}
}
