package pubsub_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-pill-timer/internal/infra/pubsub"
)

func TestTopicsSuccess(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "notification topic",
			got:      pubsub.NotificationTopic("timer"),
			expected: "timer.notifications",
		},
		{
			name:     "events change topic",
			got:      pubsub.ChangeTopic("timer", "events"),
			expected: "timer.changes.events",
		},
		{
			name:     "cooldown change topic in custom namespace",
			got:      pubsub.ChangeTopic("ward7", "cooldown"),
			expected: "ward7.changes.cooldown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestLocalBrokerFanOutSuccess(t *testing.T) {
	broker := pubsub.NewLocalBroker()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	topic := pubsub.ChangeTopic("timer", "events")

	first, err := broker.Subscriber.Subscribe(ctx, topic)
	require.NoError(t, err)
	second, err := broker.Subscriber.Subscribe(ctx, topic)
	require.NoError(t, err)

	require.NoError(t, broker.ChangePublisher.Publish(topic, message.NewMessage(watermill.NewUUID(), []byte("events"))))

	for _, ch := range []<-chan *message.Message{first, second} {
		select {
		case msg := <-ch:
			assert.Equal(t, []byte("events"), []byte(msg.Payload))
			msg.Ack()
		case <-time.After(2 * time.Second):
			t.Fatal("change notification was not delivered to every subscriber")
		}
	}
}
