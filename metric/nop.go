package metric

import "time"

type nopMetrics struct{}

// NewNop returns metrics which discard everything
func NewNop() INotifyMetric {
	return nopMetrics{}
}

func (nopMetrics) IncAdded()                {}
func (nopMetrics) IncDispatched()           {}
func (nopMetrics) IncFailed()               {}
func (nopMetrics) ObserveLatency(time.Time) {}
