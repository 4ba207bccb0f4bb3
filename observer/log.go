// Package observer contains ready-made observers of threshold events.
package observer

import (
	"go.uber.org/zap"

	"github.com/dialogs/threshold-go-lib/notifier"
)

// Log writes one record per threshold event
type Log struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger) *Log {

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Log{
		logger: logger.With(zap.String("observer", "log")),
	}
}

func (l *Log) HandleThresholdEvent(e notifier.ThresholdEvent) error {
	l.logger.Info("threshold reached",
		zap.Int("threshold", e.Threshold),
		zap.Time("time_reached", e.TimeReached))
	return nil
}
