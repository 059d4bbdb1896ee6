package events

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/config"
)

// Publisher delivers change events to a broker.
type Publisher interface {
	Publish(ctx context.Context, ev ChangeEvent) error
	Close() error
}

// NewPublisher connects the broker selected in cfg.
func NewPublisher(cfg config.EventsConfig, logger *logrus.Logger) (Publisher, error) {
	switch cfg.Backend {
	case config.EventsBackendKafka:
		return NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	case config.EventsBackendAMQP:
		return NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
	default:
		return Noop{}, nil
	}
}

// Noop discards every event.
type Noop struct{}

func (Noop) Publish(context.Context, ChangeEvent) error { return nil }
func (Noop) Close() error                               { return nil }
