package observer

import (
	"context"
	"strconv"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/mailru/easyjson"
	"github.com/pkg/errors"

	"github.com/dialogs/threshold-go-lib/notifier"
	"github.com/dialogs/threshold-go-lib/producer"
)

// DefaultPublishTimeout limits waiting for a delivery report
const DefaultPublishTimeout = 5 * time.Second

// Publisher sends threshold events to a kafka topic as json
type Publisher struct {
	producer producer.Producer
	topic    string
	timeout  time.Duration
}

// NewPublisher creates the observer. DefaultPublishTimeout is used when timeout <= 0.
func NewPublisher(p producer.Producer, topic string, timeout time.Duration) (*Publisher, error) {

	if p == nil {
		return nil, errors.New("producer is nil")
	}

	if topic == "" {
		return nil, errors.New("topic is empty")
	}

	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}

	return &Publisher{
		producer: p,
		topic:    topic,
		timeout:  timeout,
	}, nil
}

func (p *Publisher) HandleThresholdEvent(e notifier.ThresholdEvent) error {

	value, err := easyjson.Marshal(e)
	if err != nil {
		return errors.Wrap(err, "encode threshold event")
	}

	topic := p.topic
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &topic,
			Partition: kafka.PartitionAny,
		},
		Key:       []byte(strconv.Itoa(e.Threshold)),
		Value:     value,
		Timestamp: e.TimeReached,
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.producer.Produce(ctx, msg); err != nil {
		return errors.Wrapf(err, "publish threshold event to %s", p.topic)
	}

	return nil
}
