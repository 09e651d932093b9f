package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-pill-timer/internal/observability/logging"
	"github.com/KasumiMercury/primind-pill-timer/internal/observability/metrics"
	"github.com/KasumiMercury/primind-pill-timer/internal/observability/tracing"
)

type Payload struct {
	EventID string    `json:"event_id,omitempty"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Sound   string    `json:"sound"`
	FireAt  time.Time `json:"fire_at"`
	FiredAt time.Time `json:"fired_at"`
}

type TimerSchedulerConfig struct {
	Topic      string
	Permission Permission
	Metrics    *metrics.NotificationMetrics
	Now        func() time.Time
}

// TimerScheduler holds each notification in an in-process timer and
// publishes it to Topic when the fire time arrives.
type TimerScheduler struct {
	publisher message.Publisher
	topic     string
	metrics   *metrics.NotificationMetrics
	now       func() time.Time

	mu         sync.Mutex
	permission Permission
	timers     map[*time.Timer]struct{}
	closed     bool
	wg         sync.WaitGroup
}

func NewTimerScheduler(publisher message.Publisher, cfg TimerSchedulerConfig) *TimerScheduler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	permission := cfg.Permission
	if permission == "" {
		permission = PermissionUndetermined
	}

	return &TimerScheduler{
		publisher:  publisher,
		topic:      cfg.Topic,
		metrics:    cfg.Metrics,
		now:        now,
		permission: permission,
		timers:     make(map[*time.Timer]struct{}),
	}
}

func (s *TimerScheduler) Permission(_ context.Context) (Permission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.permission, nil
}

// RequestPermission grants an undetermined permission. A denied permission
// stays denied.
func (s *TimerScheduler) RequestPermission(ctx context.Context) (Permission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.permission == PermissionUndetermined {
		s.permission = PermissionGranted

		slog.InfoContext(logging.WithModule(ctx, logging.ModuleNotification), "notification permission granted")
	}

	return s.permission, nil
}

func (s *TimerScheduler) ScheduleAt(ctx context.Context, n Notification) error {
	ctx = logging.WithModule(ctx, logging.ModuleNotification)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSchedulerClosed
	}

	if s.permission != PermissionGranted {
		return ErrPermissionNotGranted
	}

	delay := n.FireAt.Sub(s.now())
	if delay < 0 {
		delay = 0
	}

	// The timer outlives the request; keep its values but not its deadline.
	fireCtx := context.WithoutCancel(ctx)

	var timer *time.Timer

	s.wg.Add(1)
	timer = time.AfterFunc(delay, func() {
		defer s.wg.Done()

		s.mu.Lock()
		delete(s.timers, timer)
		s.mu.Unlock()

		s.fire(fireCtx, n)
	})
	s.timers[timer] = struct{}{}

	s.metrics.Record(ctx, metrics.OutcomeScheduled)

	slog.DebugContext(ctx, "notification scheduled",
		slog.String("event_id", n.EventID),
		slog.Time("fire_at", n.FireAt),
		slog.Duration("delay", delay),
	)

	return nil
}

func (s *TimerScheduler) fire(ctx context.Context, n Notification) {
	payload, err := json.Marshal(Payload{
		EventID: n.EventID,
		Title:   n.Title,
		Body:    n.Body,
		Sound:   n.Sound,
		FireAt:  n.FireAt,
		FiredAt: s.now(),
	})
	if err != nil {
		s.metrics.Record(ctx, metrics.OutcomeFailed)
		slog.ErrorContext(ctx, "failed to marshal notification",
			slog.String("event_id", n.EventID),
			slog.String("error", err.Error()),
		)

		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", "notification.fired")
	msg.Metadata.Set("event_id", n.EventID)
	tracing.InjectToMessage(ctx, msg)

	if err := s.publisher.Publish(s.topic, msg); err != nil {
		s.metrics.Record(ctx, metrics.OutcomeFailed)
		slog.ErrorContext(ctx, "failed to publish notification",
			slog.String("event_id", n.EventID),
			slog.String("error", err.Error()),
		)

		return
	}

	s.metrics.Record(ctx, metrics.OutcomeFired)
	slog.InfoContext(ctx, "notification fired",
		slog.String("event_id", n.EventID),
		slog.String("title", n.Title),
		slog.String("message_id", msg.UUID),
	)
}

// Pending reports notifications still waiting for their fire time.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.timers)
}

// Close drops notifications that have not fired yet and waits for the ones
// already firing. It does not close the publisher.
func (s *TimerScheduler) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return nil
	}

	s.closed = true

	dropped := 0
	for timer := range s.timers {
		if timer.Stop() {
			dropped++
			s.wg.Done()
		}

		delete(s.timers, timer)
	}
	s.mu.Unlock()

	for i := 0; i < dropped; i++ {
		s.metrics.Record(context.Background(), metrics.OutcomeDropped)
	}

	if dropped > 0 {
		slog.Warn("pending notifications dropped on shutdown",
			slog.Int("count", dropped),
		)
	}

	s.wg.Wait()

	return nil
}

var _ Scheduler = (*TimerScheduler)(nil)
