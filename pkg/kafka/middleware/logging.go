package kafka_middleware

import (
	"context"
	"time"

	"handyhub/pkg/kafka"
	"handyhub/pkg/logger"
)

// LoggingProducerMiddleware logs every publish attempt with its outcome.
func LoggingProducerMiddleware(log *logger.Logger) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()

		log.Debug("publishing event",
			"topic", msg.Topic,
			"key", msg.Key,
			"event_type", msg.GetEventType(),
			"event_id", msg.GetEventID(),
		)

		err := next(ctx, msg)

		if err != nil {
			log.Error("failed to publish event",
				"topic", msg.Topic,
				"key", msg.Key,
				"event_type", msg.GetEventType(),
				"event_id", msg.GetEventID(),
				"correlation_id", msg.GetCorrelationID(),
				"duration", time.Since(start),
				"error", err,
			)
			return err
		}

		log.Info("event published",
			"topic", msg.Topic,
			"key", msg.Key,
			"event_type", msg.GetEventType(),
			"event_id", msg.GetEventID(),
			"duration", time.Since(start),
		)
		return nil
	}
}
