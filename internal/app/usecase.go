package app

import (
	"context"
)

//go:generate mockgen -source=usecase.go -destination=usecase_mock.go -package=app

// EventUseCase keeps reminder events in the store and registers a
// notification for each new one.
type EventUseCase interface {
	AddEvent(ctx context.Context, input AddEventInput) (EventOutput, error)
	RemoveEvent(ctx context.Context, input RemoveEventInput) error
	ListEvents(ctx context.Context) (EventsOutput, error)
	SubscribeEvents(ctx context.Context, fn func(EventsOutput)) (unsubscribe func(), err error)
}

type CountdownUseCase interface {
	SetTarget(ctx context.Context, input SetTargetInput) error
	Snapshot() CountdownOutput
	Subscribe(fn func(CountdownOutput)) (unsubscribe func())
}

type PermissionUseCase interface {
	GetPermission(ctx context.Context) (PermissionOutput, error)
	RequestPermission(ctx context.Context) (PermissionOutput, error)
}
