package notifier

import (
	"time"

	"github.com/dialogs/threshold-go-lib/metric"
)

// Option customizes a counter
type Option func(*Counter)

// WithClock sets the source of ThresholdEvent.TimeReached
func WithClock(clock func() time.Time) Option {
	return func(c *Counter) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithMetrics sets the statistics collector
func WithMetrics(m metric.INotifyMetric) Option {
	return func(c *Counter) {
		if m != nil {
			c.metrics = m
		}
	}
}
