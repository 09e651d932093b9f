package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-pill-timer/internal/app"
	"github.com/KasumiMercury/primind-pill-timer/internal/domain"
)

func startTracker(t *testing.T) (*app.CountdownTracker, *fakeWatch[domain.CooldownTarget], *sessionMocks, <-chan app.CountdownOutput) {
	t.Helper()

	sess, mocks := setupSession(t)
	watch := newFakeWatch[domain.CooldownTarget]()

	mocks.cooldown.EXPECT().Watch(gomock.Any()).Return(watch, nil)

	tracker := app.NewCountdownTracker(sess)

	received := make(chan app.CountdownOutput, 16)
	tracker.Subscribe(func(out app.CountdownOutput) {
		received <- out
	})

	require.NoError(t, tracker.Start(context.Background()))
	t.Cleanup(sess.Stop)

	return tracker, watch, mocks, received
}

func tick(mocks *sessionMocks, n int) {
	for range n {
		mocks.ticks <- fixedNow
	}
}

// recordingTicker hands out a fresh channel per call and records stops.
type recordingTicker struct {
	mu      sync.Mutex
	tickers []chan time.Time
	stopped int
}

func (r *recordingTicker) start(time.Duration) (<-chan time.Time, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan time.Time)
	r.tickers = append(r.tickers, ch)

	return ch, func() {
		r.mu.Lock()
		r.stopped++
		r.mu.Unlock()
	}
}

func (r *recordingTicker) counts() (started, stopped int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.tickers), r.stopped
}

func (r *recordingTicker) latest() chan time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tickers[len(r.tickers)-1]
}

func TestCountdownTrackerTickSuccess(t *testing.T) {
	tests := []struct {
		name              string
		target            int64
		ticks             int
		expectedTicks     []int64
		expectedRemaining int64
		expectedState     string
	}{
		{
			name:              "three ticks from five",
			target:            5,
			ticks:             3,
			expectedTicks:     []int64{4, 3, 2},
			expectedRemaining: 2,
			expectedState:     "counting",
		},
		{
			name:              "floors at zero",
			target:            5,
			ticks:             6,
			expectedTicks:     []int64{4, 3, 2, 1, 0},
			expectedRemaining: 0,
			expectedState:     "idle",
		},
		{
			name:              "zero target stays idle",
			target:            0,
			ticks:             2,
			expectedTicks:     nil,
			expectedRemaining: 0,
			expectedState:     "idle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, watch, mocks, received := startTracker(t)

			target, err := domain.NewCooldownTarget(tt.target)
			require.NoError(t, err)

			watch.ch <- target

			reset := receive(t, received)
			assert.Equal(t, tt.target, reset.RemainingSeconds)

			tick(mocks, tt.ticks)

			for _, want := range tt.expectedTicks {
				assert.Equal(t, want, receive(t, received).RemainingSeconds)
			}

			snapshot := tracker.Snapshot()
			assert.Equal(t, tt.expectedRemaining, snapshot.RemainingSeconds)
			assert.Equal(t, tt.expectedState, snapshot.State)

			// ticks that change nothing emit nothing, so the next value is the new target
			watch.ch <- domain.CooldownTargetFromStore(42)
			assert.Equal(t, int64(42), receive(t, received).RemainingSeconds)
		})
	}
}

func TestCountdownTrackerNewTargetResetsSuccess(t *testing.T) {
	_, watch, mocks, received := startTracker(t)

	watch.ch <- domain.CooldownTargetFromStore(10)
	assert.Equal(t, int64(10), receive(t, received).RemainingSeconds)

	tick(mocks, 2)
	assert.Equal(t, int64(9), receive(t, received).RemainingSeconds)
	assert.Equal(t, int64(8), receive(t, received).RemainingSeconds)

	watch.ch <- domain.CooldownTargetFromStore(3)
	assert.Equal(t, int64(3), receive(t, received).RemainingSeconds)

	// negative values written by another client read as zero
	watch.ch <- domain.CooldownTargetFromStore(-7)
	out := receive(t, received)
	assert.Equal(t, int64(0), out.RemainingSeconds)
	assert.Equal(t, "idle", out.State)
}

func TestCountdownTrackerResetRestartsTickerSuccess(t *testing.T) {
	ticker := &recordingTicker{}
	sess, mocks := setupSession(t, app.WithTicker(ticker.start, time.Second))
	watch := newFakeWatch[domain.CooldownTarget]()

	mocks.cooldown.EXPECT().Watch(gomock.Any()).Return(watch, nil)

	tracker := app.NewCountdownTracker(sess)

	received := make(chan app.CountdownOutput, 16)
	tracker.Subscribe(func(out app.CountdownOutput) {
		received <- out
	})

	require.NoError(t, tracker.Start(context.Background()))
	t.Cleanup(sess.Stop)

	assert.Eventually(t, func() bool {
		started, _ := ticker.counts()

		return started == 1
	}, 2*time.Second, 10*time.Millisecond)

	watch.ch <- domain.CooldownTargetFromStore(5)
	assert.Equal(t, int64(5), receive(t, received).RemainingSeconds)

	started, stopped := ticker.counts()
	assert.Equal(t, 2, started)
	assert.Equal(t, 1, stopped)

	ticker.latest() <- fixedNow
	assert.Equal(t, int64(4), receive(t, received).RemainingSeconds)

	watch.ch <- domain.CooldownTargetFromStore(3)
	assert.Equal(t, int64(3), receive(t, received).RemainingSeconds)

	started, stopped = ticker.counts()
	assert.Equal(t, 3, started)
	assert.Equal(t, 2, stopped)

	tracker.Stop()

	started, stopped = ticker.counts()
	assert.Equal(t, 3, started)
	assert.Equal(t, 3, stopped)
}

func TestCountdownTrackerWatchEndedSuccess(t *testing.T) {
	tracker, watch, mocks, received := startTracker(t)

	watch.ch <- domain.CooldownTargetFromStore(7)
	assert.Equal(t, int64(7), receive(t, received).RemainingSeconds)

	next := newFakeWatch[domain.CooldownTarget]()
	mocks.cooldown.EXPECT().Watch(gomock.Any()).Return(next, nil)

	close(watch.ch)

	// the tracker can be started again once the dead watch is released
	assert.Eventually(t, func() bool {
		return tracker.Start(context.Background()) == nil
	}, 2*time.Second, 10*time.Millisecond)

	assert.True(t, watch.closed.Load())
	assert.Equal(t, int64(7), tracker.Snapshot().RemainingSeconds)

	next.ch <- domain.CooldownTargetFromStore(2)
	assert.Equal(t, int64(2), receive(t, received).RemainingSeconds)
}

func TestCountdownTrackerUnsubscribeSuccess(t *testing.T) {
	sess, mocks := setupSession(t)
	watch := newFakeWatch[domain.CooldownTarget]()

	mocks.cooldown.EXPECT().Watch(gomock.Any()).Return(watch, nil)

	tracker := app.NewCountdownTracker(sess)

	kept := make(chan app.CountdownOutput, 4)
	dropped := make(chan app.CountdownOutput, 4)

	tracker.Subscribe(func(out app.CountdownOutput) { kept <- out })
	unsubscribe := tracker.Subscribe(func(out app.CountdownOutput) { dropped <- out })
	unsubscribe()

	require.NoError(t, tracker.Start(context.Background()))
	defer tracker.Stop()

	watch.ch <- domain.CooldownTargetFromStore(1)

	assert.Equal(t, int64(1), receive(t, kept).RemainingSeconds)
	assert.Empty(t, dropped)
}

func TestCountdownTrackerStartError(t *testing.T) {
	t.Run("already running", func(t *testing.T) {
		tracker, _, _, _ := startTracker(t)

		err := tracker.Start(context.Background())

		assert.ErrorIs(t, err, app.ErrTrackerRunning)
	})

	t.Run("watch fails", func(t *testing.T) {
		sess, mocks := setupSession(t)
		mocks.cooldown.EXPECT().Watch(gomock.Any()).Return(nil, errors.New("subscribe failed"))

		err := app.NewCountdownTracker(sess).Start(context.Background())

		assert.ErrorIs(t, err, app.ErrInternalError)
	})
}

func TestCountdownTrackerStopSuccess(t *testing.T) {
	tracker, watch, _, _ := startTracker(t)

	tracker.Stop()
	tracker.Stop()

	assert.True(t, watch.closed.Load())
}

func TestSetTargetSuccess(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
	}{
		{
			name:    "positive target",
			seconds: 5,
		},
		{
			name:    "zero target",
			seconds: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, mocks := setupSession(t)

			target, err := domain.NewCooldownTarget(tt.seconds)
			require.NoError(t, err)

			mocks.cooldown.EXPECT().SetTarget(gomock.Any(), target).Return(nil)

			err = app.NewCountdownTracker(sess).SetTarget(context.Background(), app.SetTargetInput{Seconds: tt.seconds})

			assert.NoError(t, err)
		})
	}
}

func TestSetTargetError(t *testing.T) {
	tests := []struct {
		name          string
		seconds       int64
		setupMock     func(m *sessionMocks)
		expectedError error
	}{
		{
			name:          "negative target is rejected before writing",
			seconds:       -1,
			setupMock:     func(*sessionMocks) {},
			expectedError: domain.ErrInvalidDuration,
		},
		{
			name:    "store write fails",
			seconds: 30,
			setupMock: func(m *sessionMocks) {
				m.cooldown.EXPECT().SetTarget(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			expectedError: app.ErrStoreWriteFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, mocks := setupSession(t)
			tt.setupMock(mocks)

			err := app.NewCountdownTracker(sess).SetTarget(context.Background(), app.SetTargetInput{Seconds: tt.seconds})

			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}
