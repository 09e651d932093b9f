package domain

import (
	"context"
)

//go:generate mockgen -source=event_repository.go -destination=event_repository_mock.go -package=domain

// Watch is a lazy, infinite, non-restartable sequence of snapshots. The first
// snapshot is the current value; every later one follows a change in the
// store. Snapshots is closed after Close or when the watch context ends.
type Watch[T any] interface {
	Snapshots() <-chan T
	Close() error
}

type EventRepository interface {
	Push(ctx context.Context, event *ReminderEvent) (EventID, error)
	Delete(ctx context.Context, id EventID) error
	List(ctx context.Context) ([]*ReminderEvent, error)
	Watch(ctx context.Context) (Watch[[]*ReminderEvent], error)
}

type CooldownRepository interface {
	SetTarget(ctx context.Context, target CooldownTarget) error
	GetTarget(ctx context.Context) (CooldownTarget, error)
	Watch(ctx context.Context) (Watch[CooldownTarget], error)
}
