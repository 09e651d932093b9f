package app

import (
	"time"

	"github.com/KasumiMercury/primind-pill-timer/internal/domain"
	"github.com/KasumiMercury/primind-pill-timer/internal/infra/notification"
)

type EventOutput struct {
	ID        string
	Timestamp int64
	FireAt    time.Time
	Message   string
}

type EventsOutput struct {
	Events []EventOutput
	Count  int32
}

type CountdownOutput struct {
	RemainingSeconds int64
	State            string
}

type PermissionOutput struct {
	Status string
}

func FromEntity(e *domain.ReminderEvent) EventOutput {
	return EventOutput{
		ID:        e.ID().String(),
		Timestamp: e.Timestamp(),
		FireAt:    e.FireAt().UTC(),
		Message:   e.Message(),
	}
}

func FromEntities(events []*domain.ReminderEvent) EventsOutput {
	outputs := make([]EventOutput, 0, len(events))
	for _, e := range events {
		outputs = append(outputs, FromEntity(e))
	}

	return EventsOutput{
		Events: outputs,
		Count:  int32(len(outputs)), //nolint:gosec
	}
}

func FromCountdown(c domain.Countdown) CountdownOutput {
	return CountdownOutput{
		RemainingSeconds: c.Remaining(),
		State:            string(c.State()),
	}
}

func FromPermission(p notification.Permission) PermissionOutput {
	return PermissionOutput{Status: string(p)}
}
