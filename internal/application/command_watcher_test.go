package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kintelligence/strawberry-cookie-tools/internal/adapters/commandfile"
	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
	"github.com/kintelligence/strawberry-cookie-tools/internal/ports/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const commandPath = "/home/player/Kintelligence/Plugin/StrawberryCookieTools.txt"

func newFileWatcher(t *testing.T, mode domain.HandoffMode) (*CommandWatcher, afero.Fs, *recordingDispatcher, *manualClock) {
	t.Helper()

	fs := afero.NewMemMapFs()
	inbox, err := commandfile.NewInbox(fs, commandPath, mode)
	require.NoError(t, err)

	dispatcher := &recordingDispatcher{}
	clock := newManualClock()
	return NewCommandWatcher(inbox, dispatcher, clock, discardLogger(), DefaultPollInterval), fs, dispatcher, clock
}

func TestCommandWatcherDispatchesAndClears(t *testing.T) {
	watcher, fs, dispatcher, _ := newFileWatcher(t, domain.HandoffTruncate)
	require.NoError(t, afero.WriteFile(fs, commandPath, []byte("/sct"), 0o644))

	watcher.Tick(context.Background())

	assert.Equal(t, []string{"/sct"}, dispatcher.Commands())
	data, err := afero.ReadFile(fs, commandPath)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestCommandWatcherCreatesMissingFileWithoutDispatch(t *testing.T) {
	watcher, fs, dispatcher, _ := newFileWatcher(t, domain.HandoffTruncate)

	watcher.Tick(context.Background())

	exists, err := afero.Exists(fs, commandPath)
	require.NoError(t, err)
	assert.True(t, exists)
	data, err := afero.ReadFile(fs, commandPath)
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Empty(t, dispatcher.Commands())
}

func TestCommandWatcherLeavesWhitespaceOnlyFileUntouched(t *testing.T) {
	watcher, fs, dispatcher, _ := newFileWatcher(t, domain.HandoffTruncate)
	require.NoError(t, afero.WriteFile(fs, commandPath, []byte(" \n\t \r\n"), 0o644))

	watcher.Tick(context.Background())

	assert.Empty(t, dispatcher.Commands())
	data, err := afero.ReadFile(fs, commandPath)
	require.NoError(t, err)
	assert.Equal(t, " \n\t \r\n", string(data))
}

func TestCommandWatcherThrottlesChecks(t *testing.T) {
	inbox := mocks.NewMockCommandInbox(t)
	dispatcher := mocks.NewMockCommandDispatcher(t)
	clock := newManualClock()
	watcher := NewCommandWatcher(inbox, dispatcher, clock, discardLogger(), 0)
	assert.Equal(t, DefaultPollInterval, watcher.Interval())

	inbox.EXPECT().Exists(mockAnyContext()).Return(true, nil).Twice()
	inbox.EXPECT().Read(mockAnyContext()).Return("", nil).Twice()

	watcher.Tick(context.Background())
	clock.Advance(50 * time.Millisecond)
	watcher.Tick(context.Background())
	clock.Advance(149 * time.Millisecond)
	watcher.Tick(context.Background())
	clock.Advance(time.Millisecond)
	watcher.Tick(context.Background())
}

func TestCommandWatcherClearsEvenWhenDispatchFails(t *testing.T) {
	inbox := mocks.NewMockCommandInbox(t)
	dispatcher := mocks.NewMockCommandDispatcher(t)
	watcher := NewCommandWatcher(inbox, dispatcher, newManualClock(), discardLogger(), DefaultPollInterval)

	inbox.EXPECT().Exists(mockAnyContext()).Return(true, nil).Once()
	inbox.EXPECT().Read(mockAnyContext()).Return("  /unknown \n", nil).Once()
	inbox.EXPECT().Claim(mockAnyContext(), "  /unknown \n").Return("/unknown", nil).Once()
	dispatcher.EXPECT().ProcessCommand(mockAnyContext(), "/unknown").Return(domain.ErrUnknownCommand).Once()
	inbox.EXPECT().Clear(mockAnyContext()).Return(nil).Once()

	assert.NotPanics(t, func() { watcher.Tick(context.Background()) })
}

func TestCommandWatcherSwallowsFilesystemErrors(t *testing.T) {
	inbox := mocks.NewMockCommandInbox(t)
	dispatcher := mocks.NewMockCommandDispatcher(t)
	watcher := NewCommandWatcher(inbox, dispatcher, newManualClock(), discardLogger(), DefaultPollInterval)

	inbox.EXPECT().Exists(mockAnyContext()).Return(false, errors.New("permission denied")).Once()

	assert.NotPanics(t, func() { watcher.Tick(context.Background()) })
}

func TestCommandWatcherRecoversDispatcherPanic(t *testing.T) {
	inbox := mocks.NewMockCommandInbox(t)
	dispatcher := mocks.NewMockCommandDispatcher(t)
	watcher := NewCommandWatcher(inbox, dispatcher, newManualClock(), discardLogger(), DefaultPollInterval)

	inbox.EXPECT().Exists(mockAnyContext()).Return(true, nil).Once()
	inbox.EXPECT().Read(mockAnyContext()).Return("/boom", nil).Once()
	inbox.EXPECT().Claim(mockAnyContext(), "/boom").Return("/boom", nil).Once()
	dispatcher.EXPECT().ProcessCommand(mockAnyContext(), "/boom").RunAndReturn(func(context.Context, string) error {
		panic("handler exploded")
	}).Once()
	inbox.EXPECT().Clear(mockAnyContext()).Return(nil).Once()

	assert.NotPanics(t, func() { watcher.Tick(context.Background()) })
}

func TestCommandWatcherRenameHandoff(t *testing.T) {
	watcher, fs, dispatcher, _ := newFileWatcher(t, domain.HandoffRename)
	require.NoError(t, afero.WriteFile(fs, commandPath, []byte("/sct\n"), 0o644))

	watcher.Tick(context.Background())

	assert.Equal(t, []string{"/sct"}, dispatcher.Commands())
	data, err := afero.ReadFile(fs, commandPath)
	require.NoError(t, err)
	assert.Empty(t, data)
	claimedExists, err := afero.Exists(fs, commandPath+".claimed")
	require.NoError(t, err)
	assert.False(t, claimedExists)
}

func TestCommandWatcherSetIntervalTakesEffect(t *testing.T) {
	watcher, fs, dispatcher, clock := newFileWatcher(t, domain.HandoffTruncate)
	watcher.SetInterval(time.Second)
	assert.Equal(t, time.Second, watcher.Interval())

	watcher.Tick(context.Background())
	require.NoError(t, afero.WriteFile(fs, commandPath, []byte("/sct"), 0o644))

	clock.Advance(500 * time.Millisecond)
	watcher.Tick(context.Background())
	assert.Empty(t, dispatcher.Commands())

	clock.Advance(500 * time.Millisecond)
	watcher.Tick(context.Background())
	assert.Equal(t, []string{"/sct"}, dispatcher.Commands())
}

func TestCommandWatcherAlwaysEmptiesFileAfterDispatch(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fs := afero.NewMemMapFs()
		inbox, err := commandfile.NewInbox(fs, commandPath, domain.HandoffTruncate)
		if err != nil {
			t.Fatalf("new inbox: %v", err)
		}
		dispatcher := &recordingDispatcher{}
		watcher := NewCommandWatcher(inbox, dispatcher, newManualClock(), discardLogger(), DefaultPollInterval)

		padding := rapid.SampledFrom([]string{"", " ", "\t", "\n", "\r\n", "  \n "})
		body := rapid.StringMatching(`/[a-z]{1,8}( [A-Za-z0-9]{1,6}){0,3}`).Draw(t, "body")
		content := padding.Draw(t, "leading") + body + padding.Draw(t, "trailing")
		if err := afero.WriteFile(fs, commandPath, []byte(content), 0o644); err != nil {
			t.Fatalf("write command file: %v", err)
		}

		watcher.Tick(context.Background())

		data, err := afero.ReadFile(fs, commandPath)
		if err != nil {
			t.Fatalf("read command file: %v", err)
		}
		if len(data) != 0 {
			t.Fatalf("command file not emptied: %q", data)
		}
		commands := dispatcher.Commands()
		if len(commands) != 1 || commands[0] != strings.TrimSpace(content) {
			t.Fatalf("dispatched %q, want [%q]", commands, strings.TrimSpace(content))
		}
	})
}
