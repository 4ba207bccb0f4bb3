package observer

import (
	"errors"
	"testing"
	"time"

	"github.com/mailru/easyjson"
	"github.com/stretchr/testify/require"

	"github.com/dialogs/threshold-go-lib/logger/memory"
	"github.com/dialogs/threshold-go-lib/notifier"
	"github.com/dialogs/threshold-go-lib/producer"
)

var reached = time.Date(2019, 10, 15, 17, 21, 10, 0, time.UTC)

func newCounter(t *testing.T) *notifier.Counter {
	t.Helper()

	c, err := notifier.New(notifier.NewConfig(), nil,
		notifier.WithClock(func() time.Time { return reached }))
	require.NoError(t, err)
	return c
}

func TestInterface(t *testing.T) {

	require.NotNil(t, (notifier.IObserver)(NewCollector()))
	require.NotNil(t, (notifier.IObserver)(NewLog(nil)))
	require.NotNil(t, (notifier.IObserver)(&Publisher{}))
}

func TestLog(t *testing.T) {

	l, buf, err := memory.New(nil)
	require.NoError(t, err)

	c := newCounter(t)
	c.AddObserver(NewLog(l))

	for _, v := range []int{4, 5, 6} {
		require.NoError(t, c.Add(v))
	}

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.Equal(t, "info", entries[0]["level"])
	require.Equal(t, "threshold reached", entries[0]["msg"])
	require.Equal(t, "log", entries[0]["observer"])
	require.Equal(t, float64(5), entries[0]["threshold"])
	require.Equal(t, "2019-10-15T17:21:10.000Z", entries[0]["time_reached"])
}

func TestCollector(t *testing.T) {

	c := newCounter(t)

	collector := NewCollector()
	sub := c.AddObserver(collector)

	require.NoError(t, c.Add(5))
	require.NoError(t, c.Add(1))
	require.NoError(t, c.Add(5))
	require.True(t, c.RemoveObserver(sub))
	require.NoError(t, c.Add(5))

	require.Equal(t, 2, collector.Count())
	require.Equal(t,
		[]notifier.ThresholdEvent{
			{Threshold: 5, TimeReached: reached},
			{Threshold: 5, TimeReached: reached},
		},
		collector.Events())

	// test: the returned slice is a copy
	events := collector.Events()
	events[0].Threshold = 0
	require.Equal(t, 5, collector.Events()[0].Threshold)
}

func TestPublisher(t *testing.T) {

	p := producer.NewMockProducer(2)
	defer p.Close()

	pub, err := NewPublisher(p, "threshold-events", 0)
	require.NoError(t, err)
	require.Equal(t, DefaultPublishTimeout, pub.timeout)

	c := newCounter(t)
	c.AddObserver(pub)

	require.NoError(t, c.Add(3))
	require.NoError(t, c.Add(5))

	msg := <-p.Pipe()
	require.Equal(t, "threshold-events", *msg.TopicPartition.Topic)
	require.Equal(t, []byte("5"), msg.Key)
	require.Equal(t, reached, msg.Timestamp)
	require.JSONEq(t, `{"threshold":5,"time_reached":"2019-10-15T17:21:10Z"}`, string(msg.Value))

	var e notifier.ThresholdEvent
	require.NoError(t, easyjson.Unmarshal(msg.Value, &e))
	require.Equal(t, 5, e.Threshold)
	require.True(t, reached.Equal(e.TimeReached))
}

func TestPublisherFailure(t *testing.T) {

	p := producer.NewMockProducer(1)
	defer p.Close()
	p.SetError(errors.New("broker is down"))

	pub, err := NewPublisher(p, "threshold-events", time.Second)
	require.NoError(t, err)

	c := newCounter(t)
	sub := c.AddObserver(pub)

	err = c.Add(5)
	require.EqualError(t, err, "observer "+sub.String()+": publish threshold event to threshold-events: broker is down")

	var oe *notifier.ObserverError
	require.True(t, errors.As(err, &oe))
	require.Equal(t, sub, oe.Subscription)
}

func TestNewPublisherInvalid(t *testing.T) {

	_, err := NewPublisher(nil, "threshold-events", 0)
	require.EqualError(t, err, "producer is nil")

	_, err = NewPublisher(producer.NewMockProducer(1), "", 0)
	require.EqualError(t, err, "topic is empty")
}
