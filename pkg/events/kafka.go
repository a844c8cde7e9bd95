package events

import (
	"context"
	"fmt"
	"time"

	"handyhub/pkg/kafka"
	kafka_config "handyhub/pkg/kafka/config"
	"handyhub/pkg/logger"
	"handyhub/pkg/middleware"

	"github.com/codeGROOVE-dev/retry"
)

const schemaVersion = "1"

type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

// KafkaPublisher writes events to the events topic, retrying transient
// broker failures.
type KafkaPublisher struct {
	producer messagePublisher
	source   string
	attempts uint
	delay    time.Duration
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, cfg *kafka_config.Config, source string, log *logger.Logger) *KafkaPublisher {
	return newKafkaPublisher(producer, cfg, source, log)
}

func newKafkaPublisher(producer messagePublisher, cfg *kafka_config.Config, source string, log *logger.Logger) *KafkaPublisher {
	attempts := uint(1)
	if cfg.PublishRetries > 0 {
		attempts = uint(cfg.PublishRetries)
	}
	return &KafkaPublisher{
		producer: producer,
		source:   source,
		attempts: attempts,
		delay:    cfg.PublishRetryDelay,
		log:      log,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	msg, err := kafka.NewMessage().
		WithKey(e.Key).
		WithEventType(string(e.Type)).
		WithSource(p.source).
		WithSchemaVersion(schemaVersion).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		WithTimestamp(e.OccurredAt).
		WithValue(e).
		Build()
	if err != nil {
		return fmt.Errorf("build %s message: %w", e.Type, err)
	}

	err = retry.Do(
		func() error {
			if err := p.producer.Publish(ctx, msg); err != nil {
				if !kafka.ShouldRetry(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Attempts(p.attempts),
		retry.Delay(p.delay),
		retry.MaxDelay(5*time.Second),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			p.log.Info("Retrying event publish after error", "attempt", n, "event_type", e.Type, "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
