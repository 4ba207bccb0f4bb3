package observer

import (
	"sync"

	"github.com/dialogs/threshold-go-lib/notifier"
)

// Collector keeps received events in memory
type Collector struct {
	events []notifier.ThresholdEvent
	mu     sync.RWMutex
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) HandleThresholdEvent(e notifier.ThresholdEvent) error {
	c.mu.Lock()
	c.events = append(c.events, e)
	c.mu.Unlock()
	return nil
}

// Events returns a copy of received events in order of arrival
func (c *Collector) Events() []notifier.ThresholdEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()

	retval := make([]notifier.ThresholdEvent, len(c.events))
	copy(retval, c.events)
	return retval
}

func (c *Collector) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.events)
}
