package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

type NATSConfig struct {
	URL       string
	Namespace string
}

func notificationStreamName(namespace string) string {
	return fmt.Sprintf("%s_NOTIFICATIONS", strings.ToUpper(namespace))
}

// NewNATSBroker shares store changes with every process connected to the same
// NATS server over core subjects, and keeps fired notifications in a
// JetStream stream for downstream push gateways.
func NewNATSBroker(ctx context.Context, cfg NATSConfig) (*Broker, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	if err := ensureNotificationStream(ctx, cfg); err != nil {
		return nil, err
	}

	changePublisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream:   nats.JetStreamConfig{Disabled: true},
			Marshaler:   &nats.NATSMarshaler{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS change publisher: %w", err)
	}

	subscriber, err := nats.NewSubscriber(
		nats.SubscriberConfig{
			URL:              cfg.URL,
			SubscribersCount: 1,
			CloseTimeout:     10 * time.Second,
			AckWaitTimeout:   30 * time.Second,
			NatsOptions:      []nc.Option{nc.Timeout(10 * time.Second)},
			Unmarshaler:      &nats.NATSMarshaler{},
			JetStream:        nats.JetStreamConfig{Disabled: true},
		},
		logger,
	)
	if err != nil {
		_ = changePublisher.Close()

		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	notificationPublisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: false,
			},
			Marshaler: &nats.NATSMarshaler{},
		},
		logger,
	)
	if err != nil {
		_ = subscriber.Close()
		_ = changePublisher.Close()

		return nil, fmt.Errorf("failed to create NATS notification publisher: %w", err)
	}

	return &Broker{
		ChangePublisher:       changePublisher,
		Subscriber:            subscriber,
		NotificationPublisher: notificationPublisher,
		closers:               []func() error{changePublisher.Close, subscriber.Close, notificationPublisher.Close},
	}, nil
}

func ensureNotificationStream(ctx context.Context, cfg NATSConfig) error {
	conn, err := nc.Connect(cfg.URL, nc.Timeout(10*time.Second))
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer conn.Close()

	js, err := jetstream.New(conn)
	if err != nil {
		return fmt.Errorf("failed to create JetStream context: %w", err)
	}

	streamName := notificationStreamName(cfg.Namespace)
	subject := NotificationTopic(cfg.Namespace)

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        streamName,
		Description: "Fired reminder notifications",
		Subjects:    []string{subject},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      24 * time.Hour,
		MaxBytes:    64 * 1024 * 1024,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	slog.Info("NATS JetStream stream configured",
		slog.String("stream", streamName),
		slog.String("subject", subject),
	)

	return nil
}
