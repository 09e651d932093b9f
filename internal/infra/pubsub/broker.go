package pubsub

import (
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"
)

// Broker bundles the watermill endpoints the service needs. ChangePublisher
// and Subscriber carry store change notifications, which are fanned out to
// every watcher. NotificationPublisher carries fired notifications.
type Broker struct {
	ChangePublisher       message.Publisher
	Subscriber            message.Subscriber
	NotificationPublisher message.Publisher

	closers []func() error
}

func NotificationTopic(namespace string) string {
	return namespace + ".notifications"
}

func ChangeTopic(namespace, path string) string {
	return namespace + ".changes." + path
}

func (b *Broker) Close() error {
	var errs []error

	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
