package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/dialogs/threshold-go-lib/metric"
	"github.com/dialogs/threshold-go-lib/notifier"
	"github.com/dialogs/threshold-go-lib/observer"
	"github.com/dialogs/threshold-go-lib/producer"
	"github.com/dialogs/threshold-go-lib/service"
	"github.com/dialogs/threshold-go-lib/service/info"
	"github.com/dialogs/threshold-go-lib/service/router"
)

type options struct {
	Counter        notifier.Config
	Info           *info.Info
	MetricsAddr    string
	KafkaBrokers   string
	KafkaTopic     string
	PublishTimeout time.Duration
}

type summary struct {
	Values   int
	Events   int
	Failures int
}

func readValues(args []string, stdin io.Reader) ([]int, error) {

	if len(args) > 0 {
		return parseValues(args)
	}

	scanner := bufio.NewScanner(stdin)
	scanner.Split(bufio.ScanWords)

	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read values")
	}

	return parseValues(words)
}

func parseValues(words []string) ([]int, error) {

	retval := make([]int, 0, len(words))
	for _, w := range words {
		v, err := strconv.Atoi(w)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", w)
		}
		retval = append(retval, v)
	}

	return retval, nil
}

func run(ctx context.Context, opts options, values []int, out io.Writer, l *zap.Logger) (err error) {

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	m, err := metric.New("threshold_demo", reg)
	if err != nil {
		return err
	}

	counter, err := notifier.New(opts.Counter, l, notifier.WithMetrics(m))
	if err != nil {
		return err
	}

	collector := observer.NewCollector()
	counter.AddObserver(observer.NewLog(l))
	counter.AddObserver(collector)

	if opts.KafkaTopic != "" {
		p, err := newProducer(opts.KafkaBrokers, l)
		if err != nil {
			return err
		}
		defer p.Close()

		pub, err := observer.NewPublisher(p, opts.KafkaTopic, opts.PublishTimeout)
		if err != nil {
			return err
		}
		counter.AddObserver(pub)
	}

	var tasks []service.GroupTask
	if opts.MetricsAddr != "" {
		lis, err := net.Listen("tcp", opts.MetricsAddr)
		if err != nil {
			return errors.Wrap(err, "metrics listener")
		}

		tasks = append(tasks, service.NewHTTPTask(lis, router.NewAdminRouter(opts.Info, reg), time.Second, l))
	}

	chErr, cancel := service.RunGroup(ctx, tasks...)
	defer func() {
		cancel()
		for taskErr := range chErr {
			err = multierr.Append(err, taskErr)
		}
	}()

	res := summary{Values: len(values)}
	for _, v := range values {
		if addErr := counter.Add(v); addErr != nil {
			res.Failures += len(multierr.Errors(addErr))
			l.Warn("dispatch failed", zap.Int("value", v), zap.Error(addErr))
		}
	}
	res.Events = collector.Count()

	if _, err := fmt.Fprintf(out, "values: %d, threshold: %d, events: %d, observer failures: %d\n",
		res.Values, counter.Threshold(), res.Events, res.Failures); err != nil {
		return errors.Wrap(err, "write summary")
	}

	if len(tasks) > 0 {
		l.Info("serving metrics, waiting for a signal", zap.String("addr", opts.MetricsAddr))
		select {
		case <-ctx.Done():
		case taskErr, ok := <-chErr:
			if ok && taskErr != nil {
				return taskErr
			}
		}
	}

	return nil
}

func newProducer(brokers string, l *zap.Logger) (producer.Producer, error) {

	if brokers == "" {
		return producer.NewNopProducer(l), nil
	}

	p, err := producer.NewSyncProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}
