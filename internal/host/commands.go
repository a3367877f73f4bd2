package host

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
	"github.com/kintelligence/strawberry-cookie-tools/internal/ports"
)

type CommandHandler func(ctx context.Context, command string, args string) error

type CommandInfo struct {
	Name        string
	HelpMessage string
}

type registeredCommand struct {
	info    CommandInfo
	handler CommandHandler
}

// CommandRegistry is the host's command table.
type CommandRegistry struct {
	mu       sync.RWMutex
	commands map[string]registeredCommand
}

var _ ports.CommandDispatcher = (*CommandRegistry)(nil)

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: map[string]registeredCommand{}}
}

// AddHandler registers name (with or without the leading slash).
func (r *CommandRegistry) AddHandler(name, help string, handler CommandHandler) error {
	key, err := normalizeName(name)
	if err != nil {
		return err
	}
	if handler == nil {
		return fmt.Errorf("register %q: handler is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.commands[key]; ok {
		return fmt.Errorf("%w: /%s", domain.ErrCommandExists, key)
	}
	r.commands[key] = registeredCommand{
		info:    CommandInfo{Name: "/" + key, HelpMessage: help},
		handler: handler,
	}

	return nil
}

func (r *CommandRegistry) RemoveHandler(name string) bool {
	key, err := normalizeName(name)
	if err != nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.commands[key]; !ok {
		return false
	}
	delete(r.commands, key)
	return true
}

func (r *CommandRegistry) Commands() []CommandInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]CommandInfo, 0, len(r.commands))
	for _, command := range r.commands {
		infos = append(infos, command.info)
	}
	slices.SortFunc(infos, func(a, b CommandInfo) int {
		return strings.Compare(a.Name, b.Name)
	})

	return infos
}

// ProcessCommand parses raw as "/name args" and runs the matching handler.
func (r *CommandRegistry) ProcessCommand(ctx context.Context, raw string) error {
	name, args, err := domain.ParseCommandLine(raw)
	if err != nil {
		return fmt.Errorf("parse command %q: %w", raw, err)
	}

	r.mu.RLock()
	command, ok := r.commands[name]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: /%s", domain.ErrUnknownCommand, name)
	}

	if err := command.handler(ctx, "/"+name, args); err != nil {
		return fmt.Errorf("/%s: %w", name, err)
	}

	return nil
}

func normalizeName(name string) (string, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "/"))
	if key == "" || strings.ContainsAny(key, " \t\r\n/") {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidCommandID, name)
	}

	return key, nil
}
