package service

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const readHeaderTimeout = 10 * time.Second

// NewHTTPTask returns a task which serves the handler on the listener
// until the task context is done. Shutdown waits for active requests up to closeTimeout.
func NewHTTPTask(l net.Listener, handler http.Handler, closeTimeout time.Duration, logger *zap.Logger) GroupTask {
	return func(ctx context.Context) error {

		svr := &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		}

		logger := logger.With(zap.String("service", "http"), zap.Stringer("addr", l.Addr()))

		go func() {
			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
			defer cancel()

			if err := svr.Shutdown(shutdownCtx); err != nil {
				logger.Error("failed to shutdown", zap.Error(err))
			}
		}()

		logger.Info("start")
		if err := svr.Serve(l); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "http service")
		}
		logger.Info("stop")

		return nil
	}
}
