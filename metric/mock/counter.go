package mock

import (
	"fmt"
	"sync/atomic"
)

// Counter is an in-memory replacement of a prometheus counter
type Counter struct {
	val atomic.Uint64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Inc() {
	c.val.Add(1)
}

func (c *Counter) Add(val float64) {

	if val < 0 {
		panic(fmt.Sprintf("invalid value: %v", val))
	}

	c.val.Add(uint64(val))
}

func (c *Counter) Get() uint64 {
	return c.val.Load()
}
