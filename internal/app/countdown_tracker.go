package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KasumiMercury/primind-pill-timer/internal/domain"
	"github.com/KasumiMercury/primind-pill-timer/internal/observability/logging"
)

var ErrTrackerRunning = errors.New("countdown tracker already running")

// CountdownTracker turns the stored cooldown target into a live remaining
// value. A single goroutine owns the countdown: it resets it on every store
// snapshot and decrements it on every tick, and calls subscribers from there.
type CountdownTracker struct {
	sess *Session

	mu        sync.Mutex
	countdown domain.Countdown
	subs      map[uint64]func(CountdownOutput)
	nextID    uint64
	cancel    context.CancelFunc
	done      chan struct{}
	untrack   func()
}

func NewCountdownTracker(sess *Session) *CountdownTracker {
	return &CountdownTracker{
		sess: sess,
		subs: make(map[uint64]func(CountdownOutput)),
	}
}

func (t *CountdownTracker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return ErrTrackerRunning
	}

	ctx = logging.WithModule(ctx, logging.ModuleCountdown)
	ctx, cancel := context.WithCancel(ctx)

	watch, err := t.sess.cooldown.Watch(ctx)
	if err != nil {
		cancel()

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	t.cancel = cancel
	t.done = make(chan struct{})
	t.untrack = t.sess.track(t.Stop)

	go t.run(ctx, watch, t.done)

	slog.DebugContext(ctx, "countdown tracker started",
		"tick_interval", t.sess.tickInterval,
	)

	return nil
}

// run restarts the ticker on every snapshot so the first decrement after a
// reset lands a full interval later.
func (t *CountdownTracker) run(
	ctx context.Context,
	watch domain.Watch[domain.CooldownTarget],
	done chan struct{},
) {
	ticks, stopTicker := t.sess.newTicker(t.sess.tickInterval)

	defer close(done)
	defer t.release(done)
	defer func() {
		stopTicker()
	}()
	defer func() {
		if err := watch.Close(); err != nil {
			slog.WarnContext(ctx, "failed to close cooldown watch",
				"error", err,
			)
		}
	}()

	snapshots := watch.Snapshots()

	for {
		select {
		case <-ctx.Done():
			return
		case target, ok := <-snapshots:
			if !ok {
				slog.ErrorContext(ctx, "cooldown watch ended, countdown tracker stopped",
					"remaining_seconds", t.Snapshot().RemainingSeconds,
				)

				return
			}

			stopTicker()
			ticks, stopTicker = t.sess.newTicker(t.sess.tickInterval)

			t.update(func(c *domain.Countdown) bool {
				c.Reset(target)

				return true
			})
		case <-ticks:
			t.update(func(c *domain.Countdown) bool {
				return c.Tick()
			})
		}
	}
}

// release clears the running state when the loop exits on its own, so that
// Start can be called again. It is a no-op once Stop has taken the state.
func (t *CountdownTracker) release(done chan struct{}) {
	t.mu.Lock()
	if t.done != done {
		t.mu.Unlock()

		return
	}

	cancel, untrack := t.cancel, t.untrack
	t.cancel, t.done, t.untrack = nil, nil, nil
	t.mu.Unlock()

	untrack()
	cancel()
}

func (t *CountdownTracker) update(apply func(c *domain.Countdown) bool) {
	t.mu.Lock()
	if !apply(&t.countdown) {
		t.mu.Unlock()

		return
	}

	output := FromCountdown(t.countdown)
	subs := make([]func(CountdownOutput), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	for _, fn := range subs {
		fn(output)
	}
}

// Stop cancels the ticker and the store watch. It must not be called from a
// subscriber callback.
func (t *CountdownTracker) Stop() {
	t.mu.Lock()
	cancel, done, untrack := t.cancel, t.done, t.untrack
	t.cancel, t.done, t.untrack = nil, nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}

	untrack()
	cancel()
	<-done
}

func (t *CountdownTracker) SetTarget(ctx context.Context, input SetTargetInput) error {
	slog.DebugContext(ctx, "setting cooldown target",
		"seconds", input.Seconds,
	)

	target, err := domain.NewCooldownTarget(input.Seconds)
	if err != nil {
		return NewValidationErrorFrom("seconds", err)
	}

	if err := t.sess.cooldown.SetTarget(ctx, target); err != nil {
		slog.ErrorContext(ctx, "failed to store cooldown target",
			"error", err,
			"seconds", input.Seconds,
		)

		return fmt.Errorf("%w: %v", ErrStoreWriteFailed, err)
	}

	slog.InfoContext(ctx, "cooldown target updated",
		"seconds", input.Seconds,
	)

	return nil
}

func (t *CountdownTracker) Snapshot() CountdownOutput {
	t.mu.Lock()
	defer t.mu.Unlock()

	return FromCountdown(t.countdown)
}

func (t *CountdownTracker) Subscribe(fn func(CountdownOutput)) func() {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

var _ CountdownUseCase = (*CountdownTracker)(nil)
