package pubsub

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// NewLocalBroker keeps everything in process. Change notifications only reach
// watchers in the same process.
func NewLocalBroker() *Broker {
	logger := watermill.NewSlogLogger(slog.Default())

	ch := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 16,
	}, logger)

	return &Broker{
		ChangePublisher:       ch,
		Subscriber:            ch,
		NotificationPublisher: ch,
		closers:               []func() error{ch.Close},
	}
}
