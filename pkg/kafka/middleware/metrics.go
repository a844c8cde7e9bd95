package kafka_middleware

import (
	"context"
	"sync/atomic"
	"time"

	"handyhub/pkg/kafka"
)

// Metrics counts producer outcomes.
type Metrics struct {
	published     atomic.Int64
	failed        atomic.Int64
	durationTotal atomic.Int64 // nanoseconds
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Published          int64         `json:"published"`
	Failed             int64         `json:"failed"`
	AvgPublishDuration time.Duration `json:"avg_publish_duration_ns"`
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	published := m.published.Load()
	failed := m.failed.Load()
	var avg time.Duration
	if attempts := published + failed; attempts > 0 {
		avg = time.Duration(m.durationTotal.Load() / attempts)
	}
	return MetricsSnapshot{Published: published, Failed: failed, AvgPublishDuration: avg}
}

// Middleware records the outcome and latency of each publish.
func (m *Metrics) Middleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()

		err := next(ctx, msg)

		m.durationTotal.Add(int64(time.Since(start)))
		if err != nil {
			m.failed.Add(1)
		} else {
			m.published.Add(1)
		}
		return err
	}
}
