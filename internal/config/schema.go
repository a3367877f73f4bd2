package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const (
	configFileMode  = 0o644
	configDirMode   = 0o755
	tempFilePattern = ".config-*.toml.tmp"
)

var ErrConfigExists = errors.New("config file already exists")

type fileSchema struct {
	CommandFile  string `toml:"command_file" comment:"Command file polled by the bridge, relative to the root directory."`
	SessionDir   string `toml:"session_dir" comment:"Directory holding one <contentId>.json per logged-in session."`
	PollInterval string `toml:"poll_interval" comment:"Minimum wall-clock time between command file checks."`
	TickInterval string `toml:"tick_interval" comment:"Host update frequency."`
	Handoff      string `toml:"handoff" comment:"truncate (read then empty the file) or rename (move the file aside before dispatch)."`
	LogLevel     string `toml:"log_level"`
}

func toSchema(cfg Config) fileSchema {
	return fileSchema{
		CommandFile:  relativeTo(cfg.Root, cfg.CommandFile),
		SessionDir:   relativeTo(cfg.Root, cfg.SessionDir),
		PollInterval: cfg.PollInterval.String(),
		TickInterval: cfg.TickInterval.String(),
		Handoff:      string(cfg.Handoff),
		LogLevel:     strings.ToLower(cfg.LogLevel.String()),
	}
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}

	return filepath.ToSlash(rel)
}

// Encode renders cfg in config.toml form.
func Encode(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(toSchema(cfg))
	if err != nil {
		return nil, fmt.Errorf("encode config file: %w", err)
	}

	return data, nil
}

// Write stores cfg as config.toml under cfg.Root, replacing the file
// atomically. An existing file is kept unless force is set.
func Write(fs afero.Fs, cfg Config, force bool) (string, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	path := cfg.ConfigPath()
	if !force {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("stat config file: %w", err)
		}
		if exists {
			return "", fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := Encode(cfg)
	if err != nil {
		return "", err
	}

	if err := fs.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := afero.TempFile(fs, filepath.Dir(path), tempFilePattern)
	if err != nil {
		return "", fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = fs.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return "", fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return "", fmt.Errorf("close temp config file: %w", err)
	}

	if err := fs.Rename(tempName, path); err != nil {
		return "", fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false

	if err := fs.Chmod(path, os.FileMode(configFileMode)); err != nil {
		return "", fmt.Errorf("chmod config file: %w", err)
	}

	return path, nil
}
