package application

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
	"github.com/kintelligence/strawberry-cookie-tools/internal/ports"
)

// SessionStateWriter mirrors the client's login state into one file per
// session: written on login, removed on logout.
type SessionStateWriter struct {
	store  ports.SessionStore
	source ports.SessionSource
	pid    ports.PIDFunc
	logger *slog.Logger

	mu      sync.Mutex
	current domain.SessionID
}

func NewSessionStateWriter(store ports.SessionStore, source ports.SessionSource, pid ports.PIDFunc, logger *slog.Logger) *SessionStateWriter {
	if pid == nil {
		pid = os.Getpid
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionStateWriter{
		store:  store,
		source: source,
		pid:    pid,
		logger: logger,
	}
}

func (w *SessionStateWriter) Current() domain.SessionID {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.current
}

func (w *SessionStateWriter) OnLogin(ctx context.Context) {
	id := w.source.SessionID()
	if !id.Valid() {
		return
	}

	var character *domain.Character
	if c, ok := w.source.Character(); ok {
		character = &c
	}
	record := domain.NewSessionRecord(w.pid(), id, character)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.current = id
	if err := w.store.Save(ctx, record); err != nil {
		w.logger.Error("error writing session state", "content_id", id.String(), "error", err)
		return
	}

	w.logger.Info("session state written", "content_id", id.String())
}

func (w *SessionStateWriter) OnLogout(ctx context.Context, event domain.LogoutEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.current.Valid() {
		return
	}

	id := w.current
	if err := w.store.Delete(ctx, id); err != nil {
		w.logger.Error("error deleting session state", "content_id", id.String(), "error", err)
	} else {
		w.logger.Info("session state deleted", "content_id", id.String(), "logout_type", event.Type, "logout_code", event.Code)
	}
	w.current = domain.NoSession
}
