package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kintelligence/strawberry-cookie-tools/internal/adapters/commandfile"
	"github.com/kintelligence/strawberry-cookie-tools/internal/adapters/sessionfile"
	"github.com/kintelligence/strawberry-cookie-tools/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

type app struct {
	cfg      config.Config
	viper    *viper.Viper
	fs       afero.Fs
	inbox    *commandfile.Inbox
	sessions *sessionfile.Store
	pid      func() int
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	fs := afero.NewOsFs()
	v := viper.New()
	cfg, err := config.Load(v, fs, homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	inbox, err := commandfile.NewInbox(fs, cfg.CommandFile, cfg.Handoff)
	if err != nil {
		return nil, fmt.Errorf("wire command inbox: %w", err)
	}

	return &app{
		cfg:      cfg,
		viper:    v,
		fs:       fs,
		inbox:    inbox,
		sessions: sessionfile.NewStore(fs, cfg.SessionDir),
		pid:      os.Getpid,
	}, nil
}

func (a *app) newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: a.cfg.LogLevel}))
}
