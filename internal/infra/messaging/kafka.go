package messaging

import (
	"context"
	"fmt"
	"time"

	"car-rental-api/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes to whichever topic each message names.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.OutboxConfig) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		MaxAttempts:            5,
		ReadTimeout:            10 * time.Second,
		WriteTimeout:           10 * time.Second,
		RequiredAcks:           kafka.RequireAll,
		Async:                  false,
		AllowAutoTopicCreation: true,
	}

	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic, kind string, key, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(kind)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write message to %s: %w", topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
