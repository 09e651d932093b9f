package notification

import (
	"context"
	"errors"
	"io"
	"time"
)

//go:generate mockgen -source=scheduler.go -destination=scheduler_mock.go -package=notification

var (
	ErrPermissionNotGranted = errors.New("notification permission not granted")
	ErrSchedulerClosed      = errors.New("notification scheduler closed")
)

type Permission string

const (
	PermissionGranted      Permission = "granted"
	PermissionDenied       Permission = "denied"
	PermissionUndetermined Permission = "undetermined"
)

func ParsePermission(s string) (Permission, error) {
	switch p := Permission(s); p {
	case PermissionGranted, PermissionDenied, PermissionUndetermined:
		return p, nil
	default:
		return "", errors.New("unknown notification permission: " + s)
	}
}

type Notification struct {
	EventID string
	FireAt  time.Time
	Title   string
	Body    string
	Sound   string
}

// Scheduler fires a notification at a wall-clock time. Scheduling is
// fire-and-forget: there is no way to cancel a registered notification.
type Scheduler interface {
	Permission(ctx context.Context) (Permission, error)
	RequestPermission(ctx context.Context) (Permission, error)
	ScheduleAt(ctx context.Context, n Notification) error
	io.Closer
}
