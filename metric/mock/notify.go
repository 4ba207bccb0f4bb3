package mock

import "time"

// NotifyMetric records threshold counter statistics for assertions in tests
type NotifyMetric struct {
	Added      *Counter
	Dispatched *Counter
	Failed     *Counter
	Latency    *Observer
}

func NewNotifyMetric() *NotifyMetric {
	return &NotifyMetric{
		Added:      NewCounter(),
		Dispatched: NewCounter(),
		Failed:     NewCounter(),
		Latency:    NewObserver(),
	}
}

func (m *NotifyMetric) IncAdded() {
	m.Added.Inc()
}

func (m *NotifyMetric) IncDispatched() {
	m.Dispatched.Inc()
}

func (m *NotifyMetric) IncFailed() {
	m.Failed.Inc()
}

func (m *NotifyMetric) ObserveLatency(start time.Time) {
	m.Latency.Observe(time.Since(start).Seconds())
}
