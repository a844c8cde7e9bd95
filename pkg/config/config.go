package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	kafka_config "handyhub/pkg/kafka/config"
	"handyhub/pkg/logger"
)

type Config struct {
	Port string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	CalendarTimeZone string
	Location         *time.Location
	SeedDemoData     bool

	AppointmentMinDurationMin int
	AppointmentMaxDurationMin int

	Kafka *kafka_config.Config

	Log *logger.Logger

	// Clock returns the current instant; nil means time.Now.
	Clock func() time.Time
}

func Load(serviceName string) *Config {
	log := logger.New(logger.Config{
		Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
		Format:    logger.JSON,
		AddSource: true,
		Service:   serviceName,
	})

	cfg := FromEnv(log)
	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv reads every setting from the environment without validating it.
func FromEnv(log *logger.Logger) *Config {
	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		CalendarTimeZone: getEnvStr(EnvCalendarTimeZone, DefaultCalendarTimeZone),
		SeedDemoData:     getEnvBool(EnvSeedDemoData, DefaultSeedDemoData),

		AppointmentMinDurationMin: getEnvNum(EnvAppointmentMinDurationMin, DefaultAppointmentMinDurationMin),
		AppointmentMaxDurationMin: getEnvNum(EnvAppointmentMaxDurationMin, DefaultAppointmentMaxDurationMin),

		Kafka: kafka_config.FromEnv(),

		Log: log,
	}

	if loc, err := time.LoadLocation(cfg.CalendarTimeZone); err == nil {
		cfg.Location = loc
	}
	return cfg
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if cfg.Location == nil {
		errors = append(errors, fmt.Sprintf("CalendarTimeZone must be a valid IANA zone, got: %s", cfg.CalendarTimeZone))
	}

	if cfg.AppointmentMinDurationMin <= 0 {
		errors = append(errors, fmt.Sprintf("AppointmentMinDurationMin must be positive, got: %d", cfg.AppointmentMinDurationMin))
	}
	if cfg.AppointmentMaxDurationMin < cfg.AppointmentMinDurationMin {
		errors = append(errors, fmt.Sprintf("AppointmentMaxDurationMin (%d) must be >= AppointmentMinDurationMin (%d)", cfg.AppointmentMaxDurationMin, cfg.AppointmentMinDurationMin))
	}

	if cfg.Kafka != nil && cfg.Kafka.Enabled() {
		if err := cfg.Kafka.Validate(); err != nil {
			errors = append(errors, err.Error())
		}
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"calendar_time_zone", cfg.CalendarTimeZone,
		"seed_demo_data", cfg.SeedDemoData,
		"appointment_min_duration_min", cfg.AppointmentMinDurationMin,
		"appointment_max_duration_min", cfg.AppointmentMaxDurationMin,
		"events_enabled", cfg.Kafka != nil && cfg.Kafka.Enabled(),
	)
	if cfg.Kafka != nil && cfg.Kafka.Enabled() {
		cfg.Kafka.LogConfiguration(cfg.Log.Info)
	}
}

// Now returns the current time in the calendar's zone.
func (cfg *Config) Now() time.Time {
	now := time.Now()
	if cfg.Clock != nil {
		now = cfg.Clock()
	}
	if cfg.Location != nil {
		now = now.In(cfg.Location)
	}
	return now
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
