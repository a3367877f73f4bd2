package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/kintelligence/strawberry-cookie-tools/internal/ports"
)

const DefaultPollInterval = 200 * time.Millisecond

// CommandWatcher polls the command file and forwards its content to the host
// dispatcher. Tick is safe to call at host frame rate; it throttles itself.
type CommandWatcher struct {
	inbox      ports.CommandInbox
	dispatcher ports.CommandDispatcher
	clock      ports.Clock
	logger     *slog.Logger

	mu        sync.Mutex
	interval  time.Duration
	lastCheck time.Time

	// held for the duration of a file check so overlapping ticks never race
	// on the command file.
	checkMu sync.Mutex
}

func NewCommandWatcher(inbox ports.CommandInbox, dispatcher ports.CommandDispatcher, clock ports.Clock, logger *slog.Logger, interval time.Duration) *CommandWatcher {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &CommandWatcher{
		inbox:      inbox,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     logger,
		interval:   interval,
	}
}

func (w *CommandWatcher) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	w.mu.Lock()
	w.interval = interval
	w.mu.Unlock()
}

func (w *CommandWatcher) Interval() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.interval
}

// Tick checks the command file when the poll interval has elapsed. Errors are
// logged, never returned.
func (w *CommandWatcher) Tick(ctx context.Context) {
	if !w.due() {
		return
	}

	w.checkMu.Lock()
	defer w.checkMu.Unlock()

	if err := w.check(ctx); err != nil {
		w.logger.Error("error processing command file", "error", err)
	}
}

func (w *CommandWatcher) due() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now()
	if !w.lastCheck.IsZero() && now.Sub(w.lastCheck) < w.interval {
		return false
	}
	w.lastCheck = now

	return true
}

func (w *CommandWatcher) check(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered panic: %v", r)
		}
	}()

	exists, err := w.inbox.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return w.inbox.Create(ctx)
	}

	observed, err := w.inbox.Read(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(observed) == "" {
		return nil
	}

	command, err := w.inbox.Claim(ctx, observed)
	if err != nil {
		return err
	}
	if command == "" {
		return w.inbox.Clear(ctx)
	}

	w.logger.Info("executing command from file", "command", command)
	dispatchErr := w.dispatch(ctx, command)

	if err := w.inbox.Clear(ctx); err != nil {
		if dispatchErr != nil {
			return fmt.Errorf("dispatch command %q: %w; %w", command, dispatchErr, err)
		}
		return err
	}
	if dispatchErr != nil {
		return fmt.Errorf("dispatch command %q: %w", command, dispatchErr)
	}

	return nil
}

func (w *CommandWatcher) dispatch(ctx context.Context, command string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dispatcher panic: %v", r)
		}
	}()

	return w.dispatcher.ProcessCommand(ctx, command)
}
