package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dialogs/threshold-go-lib/logger/memory"
	"github.com/dialogs/threshold-go-lib/notifier"
	"github.com/dialogs/threshold-go-lib/service/info"
)

func TestReadValues(t *testing.T) {

	{
		values, err := readValues([]string{"4", "5", "-6"}, strings.NewReader("7"))
		require.NoError(t, err)
		require.Equal(t, []int{4, 5, -6}, values)
	}

	{
		values, err := readValues(nil, strings.NewReader("1 2\n\n 5\t5\n"))
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 5, 5}, values)
	}

	{
		values, err := readValues(nil, strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, []int{}, values)
	}

	{
		_, err := readValues([]string{"4", "five"}, nil)
		require.EqualError(t, err, `invalid value "five": strconv.Atoi: parsing "five": invalid syntax`)
	}
}

func TestRun(t *testing.T) {

	l, buf, err := memory.New(nil)
	require.NoError(t, err)

	out := bytes.NewBuffer(nil)
	opts := options{
		Counter: notifier.NewConfig(),
		Info:    info.New("threshold-demo", "test", "none", "unknown"),
	}

	require.NoError(t, run(context.Background(), opts, []int{4, 5, 6, 5}, out, l))
	require.Equal(t, "values: 4, threshold: 5, events: 2, observer failures: 0\n", out.String())

	entries, err := buf.Entries()
	require.NoError(t, err)

	var reached int
	for _, e := range entries {
		if e["msg"] == "threshold reached" && e["observer"] == "log" {
			reached++
		}
	}
	require.Equal(t, 2, reached)
}

func TestRunWithPublisher(t *testing.T) {

	l, _, err := memory.New(nil)
	require.NoError(t, err)

	out := bytes.NewBuffer(nil)
	opts := options{
		Counter:    notifier.NewConfig(),
		Info:       info.New("threshold-demo", "test", "none", "unknown"),
		KafkaTopic: "threshold-events",
	}
	opts.Counter.Threshold = 3

	// no brokers: events are dropped by the nop producer
	require.NoError(t, run(context.Background(), opts, []int{3, 3, 5}, out, l))
	require.Equal(t, "values: 3, threshold: 3, events: 2, observer failures: 0\n", out.String())
}

func TestRunWithMetrics(t *testing.T) {

	l, _, err := memory.New(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := bytes.NewBuffer(nil)
	opts := options{
		Counter:     notifier.NewConfig(),
		Info:        info.New("threshold-demo", "test", "none", "unknown"),
		MetricsAddr: "127.0.0.1:0",
	}

	// the context is done: the metrics service stops right after the summary
	require.NoError(t, run(ctx, opts, []int{5}, out, l))
	require.Equal(t, "values: 1, threshold: 5, events: 1, observer failures: 0\n", out.String())
}

func TestRunInvalidConfig(t *testing.T) {

	opts := options{Counter: notifier.Config{FailurePolicy: "retry"}}

	err := run(context.Background(), opts, []int{5}, bytes.NewBuffer(nil), nil)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "invalid counter config"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestRunSummaryError(t *testing.T) {

	l, _, err := memory.New(nil)
	require.NoError(t, err)

	opts := options{Counter: notifier.NewConfig()}
	require.EqualError(t,
		run(context.Background(), opts, nil, failingWriter{}, l),
		"write summary: closed pipe")
}
