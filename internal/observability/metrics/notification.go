package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	OutcomeScheduled = "scheduled"
	OutcomeFired     = "fired"
	OutcomeFailed    = "failed"
	OutcomeDropped   = "dropped"
)

type NotificationMetrics struct {
	notifications metric.Int64Counter
	pending       metric.Int64UpDownCounter
}

func NewNotificationMetrics(meter metric.Meter) (*NotificationMetrics, error) {
	notifications, err := meter.Int64Counter("timer.notifications",
		metric.WithDescription("Notifications by outcome"),
	)
	if err != nil {
		return nil, err
	}

	pending, err := meter.Int64UpDownCounter("timer.notifications.pending",
		metric.WithDescription("Notifications waiting for their fire time"),
	)
	if err != nil {
		return nil, err
	}

	return &NotificationMetrics{notifications: notifications, pending: pending}, nil
}

func (m *NotificationMetrics) Record(ctx context.Context, outcome string) {
	if m == nil {
		return
	}

	m.notifications.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	switch outcome {
	case OutcomeScheduled:
		m.pending.Add(ctx, 1)
	case OutcomeFired, OutcomeFailed, OutcomeDropped:
		m.pending.Add(ctx, -1)
	}
}
