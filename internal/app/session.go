package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-pill-timer/internal/domain"
	"github.com/KasumiMercury/primind-pill-timer/internal/infra/notification"
)

const (
	DefaultNotificationBody  = "The pill has dropped"
	DefaultNotificationSound = "default"
	DefaultTickInterval      = time.Second
)

// TickerFunc starts a ticker and returns its channel and a stop function.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

// SystemTicker is the default TickerFunc, backed by time.Ticker.
func SystemTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)

	return t.C, t.Stop
}

type SessionDeps struct {
	Events    domain.EventRepository
	Cooldown  domain.CooldownRepository
	Scheduler notification.Scheduler
}

type SessionOption func(*Session)

func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

func WithTicker(newTicker TickerFunc, interval time.Duration) SessionOption {
	return func(s *Session) {
		s.newTicker = newTicker
		s.tickInterval = interval
	}
}

func WithNotificationContent(body, sound string) SessionOption {
	return func(s *Session) {
		s.notificationBody = body
		s.notificationSound = sound
	}
}

// Session is the process-scoped context shared by the event use case and the
// countdown tracker: one store connection, one scheduler, one clock. Stop
// releases every watch and ticker opened through it.
type Session struct {
	events    domain.EventRepository
	cooldown  domain.CooldownRepository
	scheduler notification.Scheduler

	now               func() time.Time
	newTicker         TickerFunc
	tickInterval      time.Duration
	notificationBody  string
	notificationSound string

	mu       sync.Mutex
	nextID   uint64
	releases map[uint64]func()
}

func NewSession(deps SessionDeps, opts ...SessionOption) *Session {
	s := &Session{
		events:            deps.Events,
		cooldown:          deps.Cooldown,
		scheduler:         deps.Scheduler,
		now:               time.Now,
		newTicker:         SystemTicker,
		tickInterval:      DefaultTickInterval,
		notificationBody:  DefaultNotificationBody,
		notificationSound: DefaultNotificationSound,
		releases:          make(map[uint64]func()),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start asks for notification permission when it has not been decided yet.
// A refusal is logged, not returned: events can still be stored without it.
func (s *Session) Start(ctx context.Context) error {
	permission, err := s.scheduler.Permission(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if permission != notification.PermissionGranted {
		permission, err = s.scheduler.RequestPermission(ctx)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternalError, err)
		}
	}

	if permission != notification.PermissionGranted {
		slog.WarnContext(ctx, "notification permission not granted",
			"permission", string(permission),
		)

		return nil
	}

	slog.InfoContext(ctx, "session started",
		"permission", string(permission),
	)

	return nil
}

// Stop releases everything tracked by the session. It is safe to call more
// than once.
func (s *Session) Stop() {
	s.mu.Lock()
	releases := make([]func(), 0, len(s.releases))
	for id, release := range s.releases {
		releases = append(releases, release)
		delete(s.releases, id)
	}
	s.mu.Unlock()

	for _, release := range releases {
		release()
	}

	slog.Info("session stopped",
		"released", len(releases),
	)
}

// track registers release to run on Stop. The returned func drops the
// registration without running release.
func (s *Session) track(release func()) (untrack func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.releases[id] = release
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.releases, id)
		s.mu.Unlock()
	}
}

func (s *Session) GetPermission(ctx context.Context) (PermissionOutput, error) {
	permission, err := s.scheduler.Permission(ctx)
	if err != nil {
		return PermissionOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromPermission(permission), nil
}

func (s *Session) RequestPermission(ctx context.Context) (PermissionOutput, error) {
	permission, err := s.scheduler.RequestPermission(ctx)
	if err != nil {
		return PermissionOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromPermission(permission), nil
}

var _ PermissionUseCase = (*Session)(nil)
