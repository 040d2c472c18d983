package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/tinashecee/lab-center-request/internal/logx"
	"github.com/tinashecee/lab-center-request/internal/service/notify"
)

// Producer publishes request-created events to the event bus. It implements
// the intake post-commit hook.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
}

// NewProducer creates a new Kafka producer. Returns nil when the bus is not
// configured.
func NewProducer(brokers []string, topic string, logger logx.Logger) (*Producer, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return &Producer{producer: producer, topic: topic, logger: logger}, nil
}

// RequestCreated publishes one request-created event, keyed by request ID.
func (p *Producer) RequestCreated(_ context.Context, ev notify.RequestEvent) error {
	value, err := json.Marshal(FromDomain(ev))
	if err != nil {
		return fmt.Errorf("kafka marshal event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.RequestID),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("kafka publish request %q: %w", ev.RequestID, err)
	}

	p.logger.Debug("request event published",
		logx.String("request_id", ev.RequestID),
		logx.Int("partition", int(partition)),
		logx.Any("offset", offset),
	)
	return nil
}

// Close shuts the underlying producer down.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
