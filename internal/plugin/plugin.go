package plugin

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/kintelligence/strawberry-cookie-tools/internal/application"
	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
	"github.com/kintelligence/strawberry-cookie-tools/internal/host"
)

const (
	Name = "StrawberryCookieTools"

	CommandName       = "/sct"
	LoginCommandName  = "/login"
	LogoutCommandName = "/logout"
)

var errLoginUsage = errors.New("usage: /login <contentId> [name] [world] [job] [level]")

type Dependencies struct {
	Loop        *host.Loop
	Commands    *host.CommandRegistry
	ClientState *host.ClientState
	Watcher     *application.CommandWatcher
	Sessions    *application.SessionStateWriter
	CommandFile string
	Logger      *slog.Logger
}

// Plugin owns every registration it makes against the host and releases all
// of them on Close.
type Plugin struct {
	deps    Dependencies
	logger  *slog.Logger
	release []func()
	once    sync.Once
}

func New(deps Dependencies) (*Plugin, error) {
	if deps.Loop == nil || deps.Commands == nil || deps.ClientState == nil {
		return nil, errors.New("plugin requires a host loop, command registry and client state")
	}
	if deps.Watcher == nil || deps.Sessions == nil {
		return nil, errors.New("plugin requires a command watcher and session writer")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p := &Plugin{deps: deps, logger: logger.With("plugin", Name)}

	commands := []struct {
		name    string
		help    string
		handler host.CommandHandler
	}{
		{name: CommandName, help: "Reports bridge status.", handler: p.onCommand},
		{name: LoginCommandName, help: "Simulates a client login.", handler: p.onLoginCommand},
		{name: LogoutCommandName, help: "Simulates a client logout.", handler: p.onLogoutCommand},
	}
	for _, command := range commands {
		if err := deps.Commands.AddHandler(command.name, command.help, command.handler); err != nil {
			p.Close()
			return nil, fmt.Errorf("register %s: %w", command.name, err)
		}
		name := command.name
		p.release = append(p.release, func() { deps.Commands.RemoveHandler(name) })
	}

	subs := []host.Subscription{
		deps.Loop.OnUpdate(deps.Watcher.Tick),
		deps.Loop.OnLogin(deps.Sessions.OnLogin),
		deps.Loop.OnLogout(deps.Sessions.OnLogout),
	}
	for _, sub := range subs {
		p.release = append(p.release, sub.Close)
	}

	p.logger.Info(fmt.Sprintf("=== Initialized %s ===", Name))
	return p, nil
}

// Close releases registrations in reverse order. Safe to call more than once.
func (p *Plugin) Close() {
	p.once.Do(func() {
		for _, release := range slices.Backward(p.release) {
			release()
		}
		p.release = nil
	})
}

func (p *Plugin) onCommand(_ context.Context, _ string, _ string) error {
	p.logger.Info("bridge status",
		"command_file", p.deps.CommandFile,
		"poll_interval", p.deps.Watcher.Interval().String(),
		"content_id", p.deps.Sessions.Current().String(),
	)
	return nil
}

func (p *Plugin) onLoginCommand(_ context.Context, _ string, args string) error {
	id, character, err := parseLoginArgs(args)
	if err != nil {
		return err
	}

	p.deps.ClientState.SetLogin(id, character)
	p.deps.Loop.Login()
	return nil
}

func (p *Plugin) onLogoutCommand(_ context.Context, _ string, args string) error {
	var event domain.LogoutEvent
	fields := strings.Fields(args)
	if len(fields) > 0 {
		value, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("parse logout type: %w", err)
		}
		event.Type = value
	}
	if len(fields) > 1 {
		value, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("parse logout code: %w", err)
		}
		event.Code = value
	}

	p.deps.ClientState.Clear()
	p.deps.Loop.Logout(event)
	return nil
}

// parseLoginArgs reads space separated fields; double quotes group words,
// e.g. 42 "Strawberry Cookie" Gilgamesh WHM 100.
func parseLoginArgs(args string) (domain.SessionID, *domain.Character, error) {
	reader := csv.NewReader(strings.NewReader(args))
	reader.Comma = ' '
	reader.LazyQuotes = true

	record, err := reader.Read()
	if err != nil {
		return domain.NoSession, nil, errLoginUsage
	}
	fields := slices.DeleteFunc(record, func(field string) bool { return field == "" })
	if len(fields) == 0 {
		return domain.NoSession, nil, errLoginUsage
	}

	id, err := domain.ParseSessionID(fields[0])
	if err != nil {
		return domain.NoSession, nil, err
	}
	if len(fields) == 1 {
		return id, nil, nil
	}

	character := &domain.Character{Name: fields[1]}
	if len(fields) > 2 {
		character.WorldName = fields[2]
	}
	if len(fields) > 3 {
		character.ClassJobAbbreviation = fields[3]
	}
	if len(fields) > 4 {
		level, err := strconv.Atoi(fields[4])
		if err != nil {
			return domain.NoSession, nil, fmt.Errorf("parse level: %w", err)
		}
		character.Level = level
	}

	return id, character, nil
}
