// Package notifier implements a counter which notifies observers
// when an added value equals the configured threshold.
//
// Observers are invoked synchronously on the goroutine calling Counter.Add,
// in registration order. All methods of Counter are safe for concurrent use.
package notifier

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/dialogs/threshold-go-lib/metric"
)

type registration struct {
	sub Subscription
	obs IObserver
}

// Counter accepts values one at a time and dispatches a ThresholdEvent
// to registered observers when a value equals the threshold
type Counter struct {
	threshold     int
	policy        FailurePolicy
	recoverPanics bool

	logger  *zap.Logger
	metrics metric.INotifyMetric
	clock   func() time.Time

	// copy-on-write: a published slice is never modified,
	// so Add iterates it without holding the lock
	registrations []registration
	mu            sync.RWMutex
}

// New creates a counter without observers
func New(cfg Config, logger *zap.Logger, opts ...Option) (*Counter, error) {

	policy, err := cfg.Policy()
	if err != nil {
		return nil, errors.Wrap(err, "invalid counter config")
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Counter{
		threshold:     cfg.Threshold,
		policy:        policy,
		recoverPanics: cfg.RecoverPanics,
		logger:        logger.With(zap.String("component", "threshold counter")),
		metrics:       metric.NewNop(),
		clock:         time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Threshold returns the value which triggers a dispatch
func (c *Counter) Threshold() int {
	return c.threshold
}

// AddObserver registers the observer and returns a handle for RemoveObserver.
// A nil observer is ignored and the zero Subscription is returned.
func (c *Counter) AddObserver(obs IObserver) Subscription {

	if obs == nil {
		return Subscription{}
	}

	sub := newSubscription()

	c.mu.Lock()
	c.registrations = append(c.registrations, registration{sub: sub, obs: obs})
	c.mu.Unlock()

	c.logger.Debug("observer added", zap.Stringer("subscription", sub))
	return sub
}

// AddObserverFunc registers the function as an observer
func (c *Counter) AddObserverFunc(fn func(ThresholdEvent) error) Subscription {

	if fn == nil {
		return Subscription{}
	}

	return c.AddObserver(ObserverFunc(fn))
}

// RemoveObserver deregisters the subscription.
// It reports false if the subscription is unknown or was already removed.
func (c *Counter) RemoveObserver(sub Subscription) bool {

	if sub.IsZero() {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.registrations {
		if c.registrations[i].sub != sub {
			continue
		}

		next := make([]registration, 0, len(c.registrations)-1)
		next = append(next, c.registrations[:i]...)
		next = append(next, c.registrations[i+1:]...)
		c.registrations = next

		c.logger.Debug("observer removed", zap.Stringer("subscription", sub))
		return true
	}

	return false
}

// Len returns a count of registered observers
func (c *Counter) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.registrations)
}

// Observers returns the registered subscriptions in dispatch order
func (c *Counter) Observers() []Subscription {
	c.mu.RLock()
	defer c.mu.RUnlock()

	retval := make([]Subscription, len(c.registrations))
	for i := range c.registrations {
		retval[i] = c.registrations[i].sub
	}

	return retval
}

// Add checks the value and dispatches a ThresholdEvent when it equals the threshold.
// Observers registered at the moment of the call are invoked; registrations
// changed by observers during the dispatch take effect on the next call.
// The returned error contains *ObserverError items of failed observers.
func (c *Counter) Add(value int) error {

	c.metrics.IncAdded()

	if value != c.threshold {
		return nil
	}

	event := ThresholdEvent{
		Threshold:   value,
		TimeReached: c.clock(),
	}

	c.metrics.IncDispatched()
	return c.dispatch(event)
}

func (c *Counter) dispatch(event ThresholdEvent) (retval error) {

	start := time.Now()
	defer c.metrics.ObserveLatency(start)

	c.mu.RLock()
	list := c.registrations
	c.mu.RUnlock()

	c.logger.Debug("threshold reached",
		zap.Int("threshold", event.Threshold),
		zap.Int("observers", len(list)))

	for _, item := range list {
		err := c.invoke(item, event)
		if err == nil {
			continue
		}

		c.metrics.IncFailed()
		c.logger.Warn("observer failed",
			zap.Stringer("subscription", item.sub),
			zap.Int("threshold", event.Threshold),
			zap.Stringer("policy", c.policy),
			zap.Error(err.Err))

		if c.policy == FailurePolicyStop {
			return err
		}

		retval = multierr.Append(retval, err)
	}

	return retval
}

func (c *Counter) invoke(item registration, event ThresholdEvent) (retval *ObserverError) {

	if c.recoverPanics {
		defer func() {
			if r := recover(); r != nil {
				retval = newObserverError(item.sub, event, errors.Errorf("observer panic: %v", r))
			}
		}()
	}

	if err := item.obs.HandleThresholdEvent(event); err != nil {
		return newObserverError(item.sub, event, err)
	}

	return nil
}
