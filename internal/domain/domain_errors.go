package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")

	ErrInvalidTime     = errors.New("event time must be in the future")
	ErrInvalidDuration = errors.New("cooldown duration cannot be negative")

	ErrInvalidEventID = errors.New("invalid event ID")
)
