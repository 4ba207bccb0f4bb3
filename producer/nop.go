package producer

import (
	"context"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.uber.org/zap"
)

// NopProducer drops messages, used when no brokers are configured
type NopProducer struct {
	logger *zap.Logger
}

func NewNopProducer(logger *zap.Logger) Producer {
	return &NopProducer{
		logger: logger.With(zap.String("producer", "no operation")),
	}
}

func (p *NopProducer) Produce(ctx context.Context, msg *kafka.Message) error {

	var topic string
	if msg.TopicPartition.Topic != nil {
		topic = *msg.TopicPartition.Topic
	}

	p.logger.Debug("drop message",
		zap.String("topic", topic),
		zap.ByteString("key", msg.Key),
		zap.Int("size", len(msg.Value)))

	return nil
}

func (p *NopProducer) Close() {
	// nothing do
}
