package producer

import (
	"context"
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// MockProducer passes messages to a buffered channel
type MockProducer struct {
	pipe chan *kafka.Message
	err  error
	mu   sync.RWMutex
}

func NewMockProducer(size int) *MockProducer {
	return &MockProducer{
		pipe: make(chan *kafka.Message, size),
	}
}

// SetError makes the next calls of Produce fail with err
func (p *MockProducer) SetError(err error) {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
}

func (p *MockProducer) Produce(ctx context.Context, msg *kafka.Message) error {

	p.mu.RLock()
	err := p.err
	p.mu.RUnlock()

	if err != nil {
		return err
	}

	select {
	case p.pipe <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *MockProducer) Pipe() <-chan *kafka.Message {
	return p.pipe
}

func (p *MockProducer) Close() {
	close(p.pipe)
}
