package domain

import (
	"github.com/google/uuid"
)

// EventID is assigned by the store when an event is pushed. UUIDv7 keeps the
// store iteration order equal to creation order.
type EventID struct {
	value uuid.UUID
}

func NewEventID() EventID {
	return EventID{value: uuid.Must(uuid.NewV7())}
}

func EventIDFromString(s string) (EventID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return EventID{}, ErrInvalidEventID
	}

	return EventID{value: id}, nil
}

func (e EventID) String() string {
	return e.value.String()
}

func (e EventID) UUID() uuid.UUID {
	return e.value
}

func (e EventID) IsZero() bool {
	return e.value == uuid.Nil
}

func (e EventID) Equals(other EventID) bool {
	return e.value == other.value
}
