package kafka_config

import "time"

const (
	// Publishing is off unless brokers are configured.
	DefaultKafkaBrokers = ""

	DefaultEventsTopic = "marketplace.events"
	DefaultDLQTopic    = "marketplace.events.dlq"

	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 10 * time.Millisecond
	DefaultProducerRequireAcks  = -1 // Require all replicas
	DefaultProducerCompression  = "snappy"
	DefaultProducerAsync        = false

	DefaultPublishRetries    = 3
	DefaultPublishRetryDelay = 200 * time.Millisecond
)
