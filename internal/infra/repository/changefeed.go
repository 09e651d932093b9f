package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-pill-timer/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-pill-timer/internal/observability/tracing"
)

// ChangeFeed announces writes under a namespace so watchers can re-read the
// path. Messages carry no data; the store stays the source of truth.
type ChangeFeed struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	namespace  string
}

func NewChangeFeed(publisher message.Publisher, subscriber message.Subscriber, namespace string) *ChangeFeed {
	return &ChangeFeed{
		publisher:  publisher,
		subscriber: subscriber,
		namespace:  namespace,
	}
}

func (f *ChangeFeed) Namespace() string {
	return f.namespace
}

// Notify never fails the write it follows: the change is already stored.
func (f *ChangeFeed) Notify(ctx context.Context, path string) {
	msg := message.NewMessage(watermill.NewUUID(), []byte(path))
	msg.Metadata.Set("namespace", f.namespace)
	msg.Metadata.Set("path", path)
	tracing.InjectToMessage(ctx, msg)

	if err := f.publisher.Publish(pubsub.ChangeTopic(f.namespace, path), msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish store change",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)

		return
	}

	slog.DebugContext(ctx, "store change published",
		slog.String("path", path),
		slog.String("message_id", msg.UUID),
	)
}

func (f *ChangeFeed) subscribe(ctx context.Context, path string) (<-chan *message.Message, error) {
	messages, err := f.subscriber.Subscribe(ctx, pubsub.ChangeTopic(f.namespace, path))
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s/%s: %w", f.namespace, path, err)
	}

	return messages, nil
}
