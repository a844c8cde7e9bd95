package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvCalendarTimeZone = "CALENDAR_TIME_ZONE"
	EnvSeedDemoData     = "SEED_DEMO_DATA"

	EnvAppointmentMinDurationMin = "APPOINTMENT_MIN_DURATION_MIN"
	EnvAppointmentMaxDurationMin = "APPOINTMENT_MAX_DURATION_MIN"
)
