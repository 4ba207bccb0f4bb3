package metric

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type notifyMetrics struct {
	added      ICounter
	dispatched ICounter
	failed     ICounter
	latency    IObserver
}

// New creates prometheus metrics of the threshold counter and registers them in reg.
// prometheus.DefaultRegisterer is used when reg is nil.
func New(namespace string, reg prometheus.Registerer) (INotifyMetric, error) {

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	added := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "threshold_values_added_total",
		Help:      "Values passed to the threshold counter",
	})

	dispatched := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "threshold_events_dispatched_total",
		Help:      "Threshold events dispatched to observers",
	})

	failed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "threshold_observer_failures_total",
		Help:      "Observer invocations finished with an error or a panic",
	})

	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "threshold_dispatch_duration_seconds",
		Help:      "Duration of one dispatch to all observers",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	m := &notifyMetrics{}
	var err error
	if m.added, err = register(reg, added); err != nil {
		return nil, err
	}
	if m.dispatched, err = register(reg, dispatched); err != nil {
		return nil, err
	}
	if m.failed, err = register(reg, failed); err != nil {
		return nil, err
	}

	c, err := registerCollector(reg, latency)
	if err != nil {
		return nil, err
	}
	m.latency = c.(prometheus.Histogram)

	return m, nil
}

func (m *notifyMetrics) IncAdded() {
	m.added.Inc()
}

func (m *notifyMetrics) IncDispatched() {
	m.dispatched.Inc()
}

func (m *notifyMetrics) IncFailed() {
	m.failed.Inc()
}

func (m *notifyMetrics) ObserveLatency(start time.Time) {
	m.latency.Observe(time.Since(start).Seconds())
}

func register(reg prometheus.Registerer, c prometheus.Counter) (ICounter, error) {

	retval, err := registerCollector(reg, c)
	if err != nil {
		return nil, err
	}

	return retval.(prometheus.Counter), nil
}

// registerCollector returns the already registered collector
// when an equal one was registered before
func registerCollector(reg prometheus.Registerer, c prometheus.Collector) (prometheus.Collector, error) {

	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		return are.ExistingCollector, nil
	}

	return nil, errors.Wrap(err, "register metric")
}
