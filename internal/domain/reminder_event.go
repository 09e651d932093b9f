package domain

import (
	"time"
)

const DefaultEventMessage = "Time to eat Pill"

// ReminderEvent is immutable once created. The ID stays zero until the
// store assigns one on push.
type ReminderEvent struct {
	id        EventID
	timestamp int64
	message   string
}

func NewReminderEvent(timestamp int64, message string, now time.Time) (*ReminderEvent, error) {
	if timestamp <= now.Unix() {
		return nil, ErrInvalidTime
	}

	if message == "" {
		message = DefaultEventMessage
	}

	return &ReminderEvent{
		timestamp: timestamp,
		message:   message,
	}, nil
}

func Reconstitute(id EventID, timestamp int64, message string) *ReminderEvent {
	return &ReminderEvent{
		id:        id,
		timestamp: timestamp,
		message:   message,
	}
}

func (e *ReminderEvent) ID() EventID {
	return e.id
}

func (e *ReminderEvent) Timestamp() int64 {
	return e.timestamp
}

func (e *ReminderEvent) FireAt() time.Time {
	return time.Unix(e.timestamp, 0)
}

func (e *ReminderEvent) Message() string {
	return e.message
}
