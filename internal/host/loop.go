package host

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
)

const (
	DefaultTickInterval = 50 * time.Millisecond
	eventQueueSize      = 32
)

type (
	UpdateHandler func(ctx context.Context)
	LoginHandler  func(ctx context.Context)
	LogoutHandler func(ctx context.Context, event domain.LogoutEvent)
)

// Subscription releases a handler registration. Close is idempotent.
type Subscription interface {
	Close()
}

type subscription struct {
	once    sync.Once
	release func()
}

func (s *subscription) Close() {
	s.once.Do(s.release)
}

type event struct {
	login  bool
	logout *domain.LogoutEvent
}

// Loop is the host update loop. Every handler runs on the goroutine that
// called Run, so handlers never observe each other concurrently.
type Loop struct {
	interval time.Duration
	logger   *slog.Logger
	events   chan event

	mu      sync.Mutex
	nextID  int
	updates map[int]UpdateHandler
	logins  map[int]LoginHandler
	logouts map[int]LogoutHandler
}

func NewLoop(interval time.Duration, logger *slog.Logger) *Loop {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Loop{
		interval: interval,
		logger:   logger,
		events:   make(chan event, eventQueueSize),
		updates:  map[int]UpdateHandler{},
		logins:   map[int]LoginHandler{},
		logouts:  map[int]LogoutHandler{},
	}
}

func (l *Loop) OnUpdate(handler UpdateHandler) Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.allocLocked()
	l.updates[id] = handler
	return l.subscription(func() { delete(l.updates, id) })
}

func (l *Loop) OnLogin(handler LoginHandler) Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.allocLocked()
	l.logins[id] = handler
	return l.subscription(func() { delete(l.logins, id) })
}

func (l *Loop) OnLogout(handler LogoutHandler) Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.allocLocked()
	l.logouts[id] = handler
	return l.subscription(func() { delete(l.logouts, id) })
}

func (l *Loop) allocLocked() int {
	l.nextID++
	return l.nextID
}

func (l *Loop) subscription(release func()) Subscription {
	return &subscription{release: func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		release()
	}}
}

// Login queues a login event for the loop goroutine.
func (l *Loop) Login() {
	l.enqueue(event{login: true})
}

// Logout queues a logout event for the loop goroutine.
func (l *Loop) Logout(ev domain.LogoutEvent) {
	l.enqueue(event{logout: &ev})
}

func (l *Loop) enqueue(ev event) {
	select {
	case l.events <- ev:
	default:
		l.logger.Warn("host event queue full, dropping event", "login", ev.login, "logout", ev.logout != nil)
	}
}

// Run drives update ticks and queued events until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.Update(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-l.events:
			l.dispatch(ctx, ev)
		case <-ticker.C:
			l.Update(ctx)
		}
	}
}

// Update runs one frame: queued events first, then update handlers.
func (l *Loop) Update(ctx context.Context) {
	l.Drain(ctx)
	for _, handler := range l.snapshotUpdates() {
		handler(ctx)
	}
}

// Drain processes every queued event without ticking.
func (l *Loop) Drain(ctx context.Context) {
	for {
		select {
		case ev := <-l.events:
			l.dispatch(ctx, ev)
		default:
			return
		}
	}
}

func (l *Loop) dispatch(ctx context.Context, ev event) {
	if ev.login {
		for _, handler := range l.snapshotLogins() {
			handler(ctx)
		}
		return
	}
	if ev.logout != nil {
		for _, handler := range l.snapshotLogouts() {
			handler(ctx, *ev.logout)
		}
	}
}

func (l *Loop) snapshotUpdates() []UpdateHandler {
	l.mu.Lock()
	defer l.mu.Unlock()

	handlers := make([]UpdateHandler, 0, len(l.updates))
	for _, id := range slices.Sorted(maps.Keys(l.updates)) {
		handlers = append(handlers, l.updates[id])
	}
	return handlers
}

func (l *Loop) snapshotLogins() []LoginHandler {
	l.mu.Lock()
	defer l.mu.Unlock()

	handlers := make([]LoginHandler, 0, len(l.logins))
	for _, id := range slices.Sorted(maps.Keys(l.logins)) {
		handlers = append(handlers, l.logins[id])
	}
	return handlers
}

func (l *Loop) snapshotLogouts() []LogoutHandler {
	l.mu.Lock()
	defer l.mu.Unlock()

	handlers := make([]LogoutHandler, 0, len(l.logouts))
	for _, id := range slices.Sorted(maps.Keys(l.logouts)) {
		handlers = append(handlers, l.logouts[id])
	}
	return handlers
}
