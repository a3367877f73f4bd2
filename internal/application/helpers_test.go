package application

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

func mockAnyContext() any {
	return mock.MatchedBy(func(ctx context.Context) bool {
		return ctx != nil
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type recordingDispatcher struct {
	mu       sync.Mutex
	commands []string
	err      error
}

func (d *recordingDispatcher) ProcessCommand(_ context.Context, raw string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.commands = append(d.commands, raw)
	return d.err
}

func (d *recordingDispatcher) Commands() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.commands...)
}
