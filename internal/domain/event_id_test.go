package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-pill-timer/internal/domain"
)

func TestEventIDFromStringSuccess(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "store assigned UUID v7",
			input: uuid.Must(uuid.NewV7()).String(),
		},
		{
			name:  "legacy UUID v4 key",
			input: uuid.New().String(),
		},
		{
			name:  "uppercase key",
			input: "0190F4B2-7C1A-7D3E-9A55-2F0C7E1B4D21",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := domain.EventIDFromString(tt.input)

			require.NoError(t, err)
			assert.False(t, id.IsZero())
		})
	}
}

func TestEventIDFromStringError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty key",
			input: "",
		},
		{
			name:  "push key style string",
			input: "-NxQ2vK3pL9aBcDeFgHi",
		},
		{
			name:  "truncated UUID",
			input: "0190f4b2-7c1a-7d3e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.EventIDFromString(tt.input)

			assert.ErrorIs(t, err, domain.ErrInvalidEventID)
		})
	}
}

func TestNewEventIDOrderingSuccess(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{
			name:  "two ids",
			count: 2,
		},
		{
			name:  "many ids",
			count: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := domain.NewEventID()
			for i := 1; i < tt.count; i++ {
				next := domain.NewEventID()

				assert.Equal(t, uuid.Version(7), next.UUID().Version())
				assert.Less(t, prev.String(), next.String())
				assert.False(t, prev.Equals(next))

				prev = next
			}
		})
	}
}

func TestEventIDRoundTripSuccess(t *testing.T) {
	tests := []struct {
		name string
		id   domain.EventID
	}{
		{
			name: "generated id",
			id:   domain.NewEventID(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := domain.EventIDFromString(tt.id.String())

			require.NoError(t, err)
			assert.True(t, parsed.Equals(tt.id))
			assert.Equal(t, tt.id.UUID(), parsed.UUID())
		})
	}
}

func TestEventIDIsZeroSuccess(t *testing.T) {
	assert.True(t, domain.EventID{}.IsZero())
	assert.False(t, domain.NewEventID().IsZero())
}
