package main

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-pill-timer/internal/config"
	"github.com/KasumiMercury/primind-pill-timer/internal/infra/pubsub"
)

func initBroker(ctx context.Context, cfg config.StoreConfig) (*pubsub.Broker, error) {
	if cfg.NATSURL == "" {
		slog.Warn("NATS_URL not set, store changes and notifications stay in process")
		return pubsub.NewLocalBroker(), nil
	}

	broker, err := pubsub.NewNATSBroker(ctx, pubsub.NATSConfig{
		URL:       cfg.NATSURL,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("NATS broker initialized",
		"url", cfg.NATSURL,
		"namespace", cfg.Namespace,
	)

	return broker, nil
}
