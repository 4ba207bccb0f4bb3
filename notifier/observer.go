package notifier

import (
	"github.com/google/uuid"
)

// IObserver receives threshold events
type IObserver interface {
	HandleThresholdEvent(ThresholdEvent) error
}

// ObserverFunc allows using an ordinary function as an observer
type ObserverFunc func(ThresholdEvent) error

func (fn ObserverFunc) HandleThresholdEvent(e ThresholdEvent) error {
	return fn(e)
}

// Subscription identifies one registration of an observer.
// Registering the same observer twice gives two different subscriptions.
type Subscription struct {
	id uuid.UUID
}

func newSubscription() Subscription {
	return Subscription{id: uuid.New()}
}

// ID of the subscription
func (s Subscription) ID() uuid.UUID {
	return s.id
}

// IsZero reports whether the subscription was never issued by a counter
func (s Subscription) IsZero() bool {
	return s.id == uuid.Nil
}

func (s Subscription) String() string {
	return s.id.String()
}
