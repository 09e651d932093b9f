package handler

import (
	"time"

	"github.com/KasumiMercury/primind-pill-timer/internal/app"
)

const (
	MessageEventAdded      = "Next event added!"
	MessageEventRemoved    = "Event removed successfully!"
	MessageCooldownUpdated = "Cooldown updated!"

	WarningNotificationDenied         = "notification_denied"
	WarningNotificationScheduleFailed = "notification_schedule_failed"
)

type EventResponse struct {
	ID        string    `json:"id"`
	Timestamp int64     `json:"timestamp"`
	FireAt    time.Time `json:"fire_at"`
	Message   string    `json:"message"`
}

type EventsResponse struct {
	Events []EventResponse `json:"events"`
	Count  int32           `json:"count"`
}

type AddEventResponse struct {
	Event   EventResponse `json:"event"`
	Message string        `json:"message"`
	// Warning is set when the event was stored but its notification was not
	// registered.
	Warning string `json:"warning,omitempty"`
}

type CountdownResponse struct {
	RemainingSeconds int64  `json:"remaining_seconds"`
	State            string `json:"state"`
}

type PermissionResponse struct {
	Status string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func FromEvent(output app.EventOutput) EventResponse {
	return EventResponse{
		ID:        output.ID,
		Timestamp: output.Timestamp,
		FireAt:    output.FireAt,
		Message:   output.Message,
	}
}

func FromEvents(output app.EventsOutput) EventsResponse {
	events := make([]EventResponse, 0, len(output.Events))
	for _, e := range output.Events {
		events = append(events, FromEvent(e))
	}

	return EventsResponse{
		Events: events,
		Count:  output.Count,
	}
}

func FromCountdown(output app.CountdownOutput) CountdownResponse {
	return CountdownResponse{
		RemainingSeconds: output.RemainingSeconds,
		State:            output.State,
	}
}

func FromPermission(output app.PermissionOutput) PermissionResponse {
	return PermissionResponse{Status: output.Status}
}
