package kafka_config

const (
	EnvKafkaBrokers = "KAFKA_BROKERS"

	EnvKafkaEventsTopic = "KAFKA_EVENTS_TOPIC"
	EnvKafkaDLQTopic    = "KAFKA_DLQ_TOPIC"

	EnvKafkaProducerMaxAttempts  = "KAFKA_PRODUCER_MAX_ATTEMPTS"
	EnvKafkaProducerBatchTimeout = "KAFKA_PRODUCER_BATCH_TIMEOUT"
	EnvKafkaProducerRequireAcks  = "KAFKA_PRODUCER_REQUIRE_ACKS"
	EnvKafkaProducerCompression  = "KAFKA_PRODUCER_COMPRESSION"
	EnvKafkaProducerAsync        = "KAFKA_PRODUCER_ASYNC"

	EnvKafkaPublishRetries    = "KAFKA_PUBLISH_RETRIES"
	EnvKafkaPublishRetryDelay = "KAFKA_PUBLISH_RETRY_DELAY"
)
