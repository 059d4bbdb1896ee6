package events

import (
	"context"
	"encoding/json"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// KafkaPublisher writes events to one topic keyed by user id, so a user's
// events stay ordered within a partition.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *logrus.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *logrus.Logger) (*KafkaPublisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewKafkaConfig())
	if err != nil {
		return nil, errors.Wrap(err, "sarama.NewSyncProducer")
	}
	return NewKafkaPublisherWithProducer(producer, topic, logger), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *logrus.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, logger: logger}
}

func NewKafkaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_5_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	return cfg
}

func (p *KafkaPublisher) Publish(_ context.Context, ev ChangeEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "kafka.marshal")
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.UserID),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(ev.Type)},
		},
	})
	if err != nil {
		return errors.Wrapf(err, "kafka.send %s", p.topic)
	}

	p.logger.WithFields(logrus.Fields{
		"type":      ev.Type,
		"topic":     p.topic,
		"partition": partition,
		"offset":    offset,
	}).Debug("events.KafkaPublisher.Publish")
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
