package repository

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-pill-timer/internal/domain"
	"github.com/KasumiMercury/primind-pill-timer/internal/observability/tracing"
)

type snapshotWatch[T any] struct {
	out    chan T
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// startWatch subscribes before the first read so that no write between the
// two is missed. The output buffer holds one snapshot; a newer snapshot
// replaces an unread one.
func startWatch[T any](
	ctx context.Context,
	feed *ChangeFeed,
	path string,
	load func(ctx context.Context) (T, error),
) (domain.Watch[T], error) {
	ctx, cancel := context.WithCancel(ctx)

	changes, err := feed.subscribe(ctx, path)
	if err != nil {
		cancel()

		return nil, err
	}

	initial, err := load(ctx)
	if err != nil {
		cancel()

		return nil, err
	}

	w := &snapshotWatch[T]{
		out:    make(chan T, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	w.out <- initial

	go w.run(ctx, path, changes, load)

	return w, nil
}

func (w *snapshotWatch[T]) run(
	ctx context.Context,
	path string,
	changes <-chan *message.Message,
	load func(ctx context.Context) (T, error),
) {
	defer close(w.done)
	defer close(w.out)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-changes:
			if !ok {
				return
			}

			msg.Ack()

			snapshot, err := load(tracing.ExtractFromMessage(ctx, msg))
			if err != nil {
				if ctx.Err() != nil {
					return
				}

				slog.ErrorContext(ctx, "failed to reload watched path",
					slog.String("path", path),
					slog.String("error", err.Error()),
				)

				continue
			}

			select {
			case <-w.out:
			default:
			}

			w.out <- snapshot
		}
	}
}

func (w *snapshotWatch[T]) Snapshots() <-chan T {
	return w.out
}

func (w *snapshotWatch[T]) Close() error {
	w.once.Do(w.cancel)
	<-w.done

	return nil
}
