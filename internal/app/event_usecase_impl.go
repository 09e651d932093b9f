package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KasumiMercury/primind-pill-timer/internal/domain"
	"github.com/KasumiMercury/primind-pill-timer/internal/infra/notification"
)

type eventUseCaseImpl struct {
	sess *Session
}

func NewEventUseCase(sess *Session) EventUseCase {
	return &eventUseCaseImpl{
		sess: sess,
	}
}

// AddEvent stores the event first and then registers its notification. The
// two steps are not transactional: when the second fails the stored event is
// returned together with ErrNotificationDenied or
// ErrNotificationScheduleFailed.
func (uc *eventUseCaseImpl) AddEvent(ctx context.Context, input AddEventInput) (EventOutput, error) {
	slog.DebugContext(ctx, "adding event",
		"timestamp", input.Timestamp,
	)

	event, err := domain.NewReminderEvent(input.Timestamp, input.Message, uc.sess.now())
	if err != nil {
		return EventOutput{}, NewValidationErrorFrom("timestamp", err)
	}

	id, err := uc.sess.events.Push(ctx, event)
	if err != nil {
		slog.ErrorContext(ctx, "failed to store event",
			"error", err,
			"timestamp", input.Timestamp,
		)

		return EventOutput{}, fmt.Errorf("%w: %v", ErrStoreWriteFailed, err)
	}

	stored := domain.Reconstitute(id, event.Timestamp(), event.Message())
	output := FromEntity(stored)

	slog.InfoContext(ctx, "event added",
		"event_id", output.ID,
		"fire_at", output.FireAt,
	)

	if err := uc.scheduleNotification(ctx, stored); err != nil {
		return output, err
	}

	return output, nil
}

func (uc *eventUseCaseImpl) scheduleNotification(ctx context.Context, event *domain.ReminderEvent) error {
	permission, err := uc.sess.scheduler.Permission(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read notification permission",
			"event_id", event.ID().String(),
			"error", err,
		)

		return fmt.Errorf("%w: %v", ErrNotificationScheduleFailed, err)
	}

	if permission != notification.PermissionGranted {
		slog.WarnContext(ctx, "notification not scheduled, permission missing",
			"event_id", event.ID().String(),
			"permission", string(permission),
		)

		return fmt.Errorf("%w: permission is %s", ErrNotificationDenied, permission)
	}

	err = uc.sess.scheduler.ScheduleAt(ctx, notification.Notification{
		EventID: event.ID().String(),
		FireAt:  event.FireAt(),
		Title:   event.Message(),
		Body:    uc.sess.notificationBody,
		Sound:   uc.sess.notificationSound,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to schedule notification",
			"event_id", event.ID().String(),
			"error", err,
		)

		if errors.Is(err, notification.ErrPermissionNotGranted) {
			return fmt.Errorf("%w: %v", ErrNotificationDenied, err)
		}

		return fmt.Errorf("%w: %v", ErrNotificationScheduleFailed, err)
	}

	slog.DebugContext(ctx, "notification scheduled",
		"event_id", event.ID().String(),
	)

	return nil
}

// RemoveEvent deletes the record only. A notification already registered for
// it still fires.
func (uc *eventUseCaseImpl) RemoveEvent(ctx context.Context, input RemoveEventInput) error {
	slog.DebugContext(ctx, "removing event",
		"event_id", input.ID,
	)

	id, err := domain.EventIDFromString(input.ID)
	if err != nil {
		return NewValidationErrorFrom("id", err)
	}

	if err := uc.sess.events.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrEventNotFound) {
			slog.ErrorContext(ctx, "failed to remove event",
				"error", err,
				"event_id", input.ID,
			)

			return fmt.Errorf("%w: %v", ErrStoreWriteFailed, err)
		}

		slog.InfoContext(ctx, "event not found for removal (idempotency)",
			"event_id", input.ID,
		)

		return nil
	}

	slog.InfoContext(ctx, "event removed",
		"event_id", input.ID,
	)

	return nil
}

func (uc *eventUseCaseImpl) ListEvents(ctx context.Context) (EventsOutput, error) {
	events, err := uc.sess.events.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list events",
			"error", err,
		)

		return EventsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromEntities(events), nil
}

// SubscribeEvents calls fn with the current collection and again after every
// change, from a single goroutine owned by the subscription.
func (uc *eventUseCaseImpl) SubscribeEvents(ctx context.Context, fn func(EventsOutput)) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	watch, err := uc.sess.events.Watch(ctx)
	if err != nil {
		cancel()

		slog.ErrorContext(ctx, "failed to watch events",
			"error", err,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	done := make(chan struct{})

	go func() {
		defer close(done)

		snapshots := watch.Snapshots()
		for {
			select {
			case <-ctx.Done():
				return
			case events, ok := <-snapshots:
				if !ok {
					return
				}

				fn(FromEntities(events))
			}
		}
	}()

	var once sync.Once

	release := func() {
		once.Do(func() {
			cancel()

			if err := watch.Close(); err != nil {
				slog.Warn("failed to close event watch",
					"error", err,
				)
			}

			<-done
		})
	}

	untrack := uc.sess.track(release)

	return func() {
		untrack()
		release()
	}, nil
}
