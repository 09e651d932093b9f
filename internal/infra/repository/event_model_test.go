package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-pill-timer/internal/domain"
	"github.com/KasumiMercury/primind-pill-timer/internal/infra/repository"
)

func TestEventModelToEntitySuccess(t *testing.T) {
	id := domain.NewEventID()
	createdAt := time.Now()

	event, err := domain.NewReminderEvent(createdAt.Unix()+60, "Time to eat Pill", createdAt)
	require.NoError(t, err)

	m := repository.FromEntity("timer", id, event, createdAt)

	assert.Equal(t, id.String(), m.ID)
	assert.Equal(t, "timer", m.Namespace)
	assert.Equal(t, event.Timestamp(), m.Timestamp)
	assert.Equal(t, "Time to eat Pill", m.Message)

	restored, err := m.ToEntity()
	require.NoError(t, err)

	assert.True(t, restored.ID().Equals(id))
	assert.Equal(t, event.Timestamp(), restored.Timestamp())
	assert.Equal(t, event.Message(), restored.Message())
}

func TestEventModelToEntityError(t *testing.T) {
	tests := []struct {
		name  string
		model repository.EventModel
	}{
		{
			name:  "empty id",
			model: repository.EventModel{ID: "", Timestamp: 1, Message: "m"},
		},
		{
			name:  "non uuid id",
			model: repository.EventModel{ID: "-NxQ2vK3pL9aBcDeFgHi", Timestamp: 1, Message: "m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.model.ToEntity()

			assert.ErrorIs(t, err, domain.ErrInvalidEventID)
		})
	}
}

func TestTableNamesSuccess(t *testing.T) {
	assert.Equal(t, "timer_events", repository.EventModel{}.TableName())
	assert.Equal(t, "timer_values", repository.ValueModel{}.TableName())
	assert.Len(t, repository.Models(), 2)
}
