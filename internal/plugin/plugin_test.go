package plugin

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/kintelligence/strawberry-cookie-tools/internal/adapters/commandfile"
	"github.com/kintelligence/strawberry-cookie-tools/internal/adapters/sessionfile"
	"github.com/kintelligence/strawberry-cookie-tools/internal/application"
	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
	"github.com/kintelligence/strawberry-cookie-tools/internal/host"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pluginRoot  = "/home/player/Kintelligence/Plugin"
	commandFile = pluginRoot + "/StrawberryCookieTools.txt"
	sessionDir  = pluginRoot + "/StrawberryCookieTools"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

type harness struct {
	fs       afero.Fs
	clock    *stepClock
	loop     *host.Loop
	commands *host.CommandRegistry
	plugin   *Plugin
	sessions *sessionfile.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fs := afero.NewMemMapFs()
	clock := &stepClock{now: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)}

	inbox, err := commandfile.NewInbox(fs, commandFile, domain.HandoffTruncate)
	require.NoError(t, err)
	store := sessionfile.NewStore(fs, sessionDir)

	loop := host.NewLoop(time.Hour, logger)
	commands := host.NewCommandRegistry()
	state := host.NewClientState()

	p, err := New(Dependencies{
		Loop:        loop,
		Commands:    commands,
		ClientState: state,
		Watcher:     application.NewCommandWatcher(inbox, commands, clock, logger, application.DefaultPollInterval),
		Sessions:    application.NewSessionStateWriter(store, state, func() int { return 31337 }, logger),
		CommandFile: commandFile,
		Logger:      logger,
	})
	require.NoError(t, err)
	t.Cleanup(p.Close)

	return &harness{fs: fs, clock: clock, loop: loop, commands: commands, plugin: p, sessions: store}
}

// frame advances wall time past the poll interval and runs one host update.
func (h *harness) frame() {
	h.clock.now = h.clock.now.Add(application.DefaultPollInterval)
	h.loop.Update(context.Background())
}

func (h *harness) send(t *testing.T, command string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(h.fs, commandFile, []byte(command), 0o644))
}

func TestPluginRegistersCommands(t *testing.T) {
	h := newHarness(t)

	names := make([]string, 0)
	for _, info := range h.commands.Commands() {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"/login", "/logout", "/sct"}, names)
}

func TestPluginLoginLogoutThroughCommandFile(t *testing.T) {
	h := newHarness(t)

	h.frame()
	exists, err := afero.Exists(h.fs, commandFile)
	require.NoError(t, err)
	require.True(t, exists)

	h.send(t, `/login 18014398509481984 "Strawberry Cookie" Gilgamesh WHM 100`)
	h.frame()
	h.frame()

	record, err := h.sessions.Get(context.Background(), 18014398509481984)
	require.NoError(t, err)
	assert.Equal(t, 31337, record.Pid)
	require.NotNil(t, record.CharacterName)
	assert.Equal(t, "Strawberry Cookie", *record.CharacterName)
	require.NotNil(t, record.ClassJobAbbreviation)
	assert.Equal(t, "WHM", *record.ClassJobAbbreviation)
	assert.Equal(t, 100, record.Level)

	h.send(t, "/logout 1 0")
	h.frame()
	h.frame()

	_, err = h.sessions.Get(context.Background(), 18014398509481984)
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestPluginLoginWithZeroIDWritesNothing(t *testing.T) {
	h := newHarness(t)

	h.send(t, "/login 0")
	h.frame()
	h.frame()

	exists, err := afero.DirExists(h.fs, sessionDir)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPluginStatusCommandConsumesFile(t *testing.T) {
	h := newHarness(t)

	h.send(t, "\n  /sct  \n")
	h.frame()

	data, err := afero.ReadFile(h.fs, filepath.Clean(commandFile))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestPluginCloseReleasesRegistrations(t *testing.T) {
	h := newHarness(t)

	h.plugin.Close()
	h.plugin.Close()

	assert.Empty(t, h.commands.Commands())
	err := h.commands.ProcessCommand(context.Background(), "/sct")
	require.ErrorIs(t, err, domain.ErrUnknownCommand)

	h.frame()
	exists, err := afero.Exists(h.fs, commandFile)
	require.NoError(t, err)
	assert.False(t, exists, "watcher should no longer tick after Close")
}

func TestNewRejectsMissingDependencies(t *testing.T) {
	_, err := New(Dependencies{})
	require.Error(t, err)
}

func TestParseLoginArgs(t *testing.T) {
	testCases := []struct {
		name      string
		args      string
		wantID    domain.SessionID
		wantChar  *domain.Character
		wantError string
	}{
		{name: "id only", args: "42", wantID: 42},
		{name: "full", args: `42 "Strawberry Cookie" Gilgamesh WHM 100`, wantID: 42, wantChar: &domain.Character{
			Name: "Strawberry Cookie", WorldName: "Gilgamesh", ClassJobAbbreviation: "WHM", Level: 100,
		}},
		{name: "extra spaces", args: `42   Cookie`, wantID: 42, wantChar: &domain.Character{Name: "Cookie"}},
		{name: "empty", args: "", wantError: "usage: /login"},
		{name: "bad id", args: "abc", wantError: "parse session id"},
		{name: "bad level", args: "1 a b c lvl", wantError: "parse level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, character, err := parseLoginArgs(tc.args)
			if tc.wantError != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
			assert.Equal(t, tc.wantChar, character)
		})
	}
}
