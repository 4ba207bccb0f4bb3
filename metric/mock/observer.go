package mock

import (
	"sync"
)

// Observer is an in-memory replacement of a prometheus histogram
type Observer struct {
	values []float64
	mu     sync.RWMutex
}

func NewObserver() *Observer {
	return &Observer{}
}

func (o *Observer) Observe(val float64) {

	o.mu.Lock()
	o.values = append(o.values, val)
	o.mu.Unlock()
}

func (o *Observer) Len() int {

	o.mu.RLock()
	defer o.mu.RUnlock()

	return len(o.values)
}

func (o *Observer) GetSlice() []float64 {

	o.mu.RLock()
	defer o.mu.RUnlock()

	retval := make([]float64, len(o.values))
	copy(retval, o.values)

	return retval
}

func (o *Observer) GetAvg() float64 {

	o.mu.RLock()
	defer o.mu.RUnlock()

	if len(o.values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range o.values {
		sum += v
	}

	return sum / float64(len(o.values))
}
