package producer

import (
	"context"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/pkg/errors"
)

// SyncProducer waits for the delivery report of every message
type SyncProducer struct {
	producer *kafka.Producer
}

func NewSyncProducer(config *kafka.ConfigMap) (*SyncProducer, error) {
	producer, err := kafka.NewProducer(config)
	if err != nil {
		return nil, errors.Wrap(err, "create producer failed")
	}

	return &SyncProducer{
		producer: producer,
	}, nil
}

func (s *SyncProducer) Produce(ctx context.Context, msg *kafka.Message) error {
	delivery := make(chan kafka.Event, 1)

	if err := s.producer.Produce(msg, delivery); err != nil {
		return errors.Wrap(err, "produce message failed")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-delivery:
		return deliveryError(e)
	}
}

func (s *SyncProducer) Close() {
	s.producer.Close()
}

func deliveryError(e kafka.Event) error {
	switch ev := e.(type) {
	case *kafka.Message:
		if ev.TopicPartition.Error != nil {
			return errors.Wrap(ev.TopicPartition.Error, "produce message failed")
		}
		return nil
	case kafka.Error:
		return errors.Wrap(ev, "produce message failed")
	default:
		return errors.Errorf("unknown produce event: %v", e)
	}
}
