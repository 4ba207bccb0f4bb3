package notifier

import (
	"fmt"
)

// ObserverError describes a failed invocation of one observer
type ObserverError struct {
	Subscription Subscription
	Event        ThresholdEvent
	Err          error
}

func newObserverError(sub Subscription, e ThresholdEvent, err error) *ObserverError {
	return &ObserverError{
		Subscription: sub,
		Event:        e,
		Err:          err,
	}
}

func (e *ObserverError) Error() string {
	return fmt.Sprintf("observer %s: %v", e.Subscription, e.Err)
}

// Unwrap is used by errors.Is/errors.As
func (e *ObserverError) Unwrap() error {
	return e.Err
}

// Cause is used by github.com/pkg/errors
func (e *ObserverError) Cause() error {
	return e.Err
}
