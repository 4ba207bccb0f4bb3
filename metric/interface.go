package metric

import "time"

type IObserver interface {
	// Observe adds a single observation to the histogram.
	Observe(float64)
}

type ICounter interface {
	// Inc increments the counter by 1.
	Inc()

	// Add adds the given value to the counter. It panics if the value is < 0.
	Add(val float64)
}

// INotifyMetric collects statistics of the threshold counter
type INotifyMetric interface {
	// IncAdded counts every value passed to the counter
	IncAdded()
	// IncDispatched counts qualifying values which produced an event
	IncDispatched()
	// IncFailed counts failed observer invocations
	IncFailed()
	// ObserveLatency records how long one dispatch took
	ObserveLatency(start time.Time)
}
