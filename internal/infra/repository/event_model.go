package repository

import (
	"time"

	"github.com/KasumiMercury/primind-pill-timer/internal/domain"
)

const (
	PathEvents   = "events"
	PathCooldown = "cooldown"
)

type EventModel struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	Namespace string    `gorm:"column:namespace;type:varchar(255);not null;index:idx_timer_events_namespace"`
	Timestamp int64     `gorm:"column:timestamp;type:bigint;not null"`
	Message   string    `gorm:"column:message;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null"`
}

func (EventModel) TableName() string {
	return "timer_events"
}

func (m *EventModel) ToEntity() (*domain.ReminderEvent, error) {
	id, err := domain.EventIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	return domain.Reconstitute(id, m.Timestamp, m.Message), nil
}

func FromEntity(namespace string, id domain.EventID, e *domain.ReminderEvent, createdAt time.Time) *EventModel {
	return &EventModel{
		ID:        id.String(),
		Namespace: namespace,
		Timestamp: e.Timestamp(),
		Message:   e.Message(),
		CreatedAt: createdAt,
	}
}

// ValueModel stores scalar values under namespace/key, e.g. timer/cooldown.
type ValueModel struct {
	Namespace string    `gorm:"column:namespace;type:varchar(255);primaryKey"`
	Key       string    `gorm:"column:key;type:varchar(255);primaryKey"`
	Value     int64     `gorm:"column:value;type:bigint;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (ValueModel) TableName() string {
	return "timer_values"
}

// Models lists every table the store needs, in migration order.
func Models() []any {
	return []any{&EventModel{}, &ValueModel{}}
}
