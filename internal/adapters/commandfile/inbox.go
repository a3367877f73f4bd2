package commandfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
	"github.com/kintelligence/strawberry-cookie-tools/internal/ports"
	"github.com/spf13/afero"
)

const (
	inboxDirMode  = 0o755
	inboxFileMode = 0o644
	claimedSuffix = ".claimed"
)

type Inbox struct {
	fs   afero.Fs
	path string
	mode domain.HandoffMode
	mu   sync.Mutex
}

var _ ports.CommandInbox = (*Inbox)(nil)

func NewInbox(fs afero.Fs, path string, mode domain.HandoffMode) (*Inbox, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("command file path is empty")
	}
	if mode == "" {
		mode = domain.HandoffTruncate
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("unsupported handoff mode %q", mode)
	}

	return &Inbox{fs: fs, path: filepath.Clean(path), mode: mode}, nil
}

func (i *Inbox) Path() string {
	return i.path
}

func (i *Inbox) Mode() domain.HandoffMode {
	return i.mode
}

func (i *Inbox) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	exists, err := afero.Exists(i.fs, i.path)
	if err != nil {
		return false, fmt.Errorf("stat command file: %w", err)
	}

	return exists, nil
}

func (i *Inbox) Create(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	return i.createLocked()
}

func (i *Inbox) createLocked() error {
	if err := i.fs.MkdirAll(filepath.Dir(i.path), inboxDirMode); err != nil {
		return fmt.Errorf("create command file directory: %w", err)
	}

	if err := afero.WriteFile(i.fs, i.path, nil, inboxFileMode); err != nil {
		return fmt.Errorf("create command file: %w", err)
	}

	return nil
}

func (i *Inbox) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	data, err := afero.ReadFile(i.fs, i.path)
	if err != nil {
		return "", fmt.Errorf("read command file: %w", err)
	}

	return string(data), nil
}

func (i *Inbox) Claim(ctx context.Context, observed string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if i.mode == domain.HandoffTruncate {
		return strings.TrimSpace(observed), nil
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	claimed := i.claimedPath()
	if err := i.fs.Rename(i.path, claimed); err != nil {
		return "", fmt.Errorf("claim command file: %w", err)
	}
	if err := i.createLocked(); err != nil {
		return "", err
	}

	data, err := afero.ReadFile(i.fs, claimed)
	if err != nil {
		return "", fmt.Errorf("read claimed command file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (i *Inbox) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if i.mode == domain.HandoffTruncate {
		if err := afero.WriteFile(i.fs, i.path, nil, inboxFileMode); err != nil {
			return fmt.Errorf("truncate command file: %w", err)
		}
		return nil
	}

	err := i.fs.Remove(i.claimedPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove claimed command file: %w", err)
	}

	return nil
}

// Send overwrites the command file with a single command line. It is the
// writer side used by external tools.
func (i *Inbox) Send(ctx context.Context, command string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return domain.ErrEmptyCommand
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.fs.MkdirAll(filepath.Dir(i.path), inboxDirMode); err != nil {
		return fmt.Errorf("create command file directory: %w", err)
	}

	if err := afero.WriteFile(i.fs, i.path, []byte(trimmed+"\n"), inboxFileMode); err != nil {
		return fmt.Errorf("write command file: %w", err)
	}

	return nil
}

// Delivery reports where the last sent command is. A leftover claimed file
// means the bridge took the command but has not finished dispatching it,
// which only happens in rename mode.
func (i *Inbox) Delivery(ctx context.Context) (domain.DeliveryStage, error) {
	if err := ctx.Err(); err != nil {
		return domain.DeliveryQueued, err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	claimed, err := afero.Exists(i.fs, i.claimedPath())
	if err != nil {
		return domain.DeliveryQueued, fmt.Errorf("check claimed command file: %w", err)
	}
	if claimed {
		return domain.DeliveryClaimed, nil
	}

	data, err := afero.ReadFile(i.fs, i.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return domain.DeliveryQueued, fmt.Errorf("read command file: %w", err)
	}
	if strings.TrimSpace(string(data)) != "" {
		return domain.DeliveryQueued, nil
	}

	return domain.DeliveryConsumed, nil
}

func (i *Inbox) claimedPath() string {
	return i.path + claimedSuffix
}
