package repository

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-pill-timer/internal/domain"
)

type eventRepositoryImpl struct {
	db   *gorm.DB
	feed *ChangeFeed
}

func NewEventRepository(db *gorm.DB, feed *ChangeFeed) domain.EventRepository {
	return &eventRepositoryImpl{
		db:   db,
		feed: feed,
	}
}

func (r *eventRepositoryImpl) Push(ctx context.Context, event *domain.ReminderEvent) (domain.EventID, error) {
	id := domain.NewEventID()
	m := FromEntity(r.feed.Namespace(), id, event, time.Now())

	slog.DebugContext(ctx, "pushing event to store",
		"event_id", m.ID,
		"timestamp", m.Timestamp,
	)

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		slog.ErrorContext(ctx, "failed to push event to store",
			"event_id", m.ID,
			"error", err,
		)

		return domain.EventID{}, err
	}

	r.feed.Notify(ctx, PathEvents)

	return id, nil
}

func (r *eventRepositoryImpl) Delete(ctx context.Context, id domain.EventID) error {
	slog.DebugContext(ctx, "deleting event from store",
		"event_id", id.String(),
	)

	result := r.db.WithContext(ctx).
		Where("namespace = ? AND id = ?", r.feed.Namespace(), id.String()).
		Delete(&EventModel{})
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to delete event from store",
			"event_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrEventNotFound
	}

	r.feed.Notify(ctx, PathEvents)

	return nil
}

// List returns the collection in store iteration order, which is key order.
func (r *eventRepositoryImpl) List(ctx context.Context) ([]*domain.ReminderEvent, error) {
	var models []EventModel

	if err := r.db.WithContext(ctx).
		Where("namespace = ?", r.feed.Namespace()).
		Order("id ASC").
		Find(&models).Error; err != nil {
		slog.ErrorContext(ctx, "failed to list events",
			"error", err,
		)

		return nil, err
	}

	events := make([]*domain.ReminderEvent, 0, len(models))
	for _, m := range models {
		event, err := m.ToEntity()
		if err != nil {
			slog.ErrorContext(ctx, "failed to convert model to entity",
				"event_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		events = append(events, event)
	}

	return events, nil
}

func (r *eventRepositoryImpl) Watch(ctx context.Context) (domain.Watch[[]*domain.ReminderEvent], error) {
	return startWatch(ctx, r.feed, PathEvents, r.List)
}
