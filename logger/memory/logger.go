package memory

import (
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sinkSeq atomic.Uint64

// New creates a logger which writes json records to the returned buffer.
// A production config with debug level is used when cfg is nil.
func New(cfg *zap.Config) (*zap.Logger, *Buffer, error) {

	// sink names are global for zap, so each logger gets its own scheme
	sinkID := "memory" + strconv.FormatInt(time.Now().UnixNano(), 10) + "x" + strconv.FormatUint(sinkSeq.Add(1), 10)

	buf := NewBuffer()
	err := zap.RegisterSink(sinkID, func(*url.URL) (zap.Sink, error) {
		return buf, nil
	})
	if err != nil {
		return nil, nil, err
	}

	if cfg == nil {
		prodConfig := zap.NewProductionConfig()
		cfg = &prodConfig
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.Sampling = nil
	}
	cfg.OutputPaths = []string{sinkID + "://"}

	l, err := cfg.Build()
	return l, buf, err
}
