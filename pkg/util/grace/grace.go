package grace

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// NewGracefulContext returns a context cancelled by SIGINT,
// SIGTERM and SIGHUP. A second signal terminates the process
// via the default handler.
func NewGracefulContext(l *zap.Logger) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

		sig := <-ch
		signal.Stop(ch)

		l.Info("received signal, shutting down",
			zap.String("signal", sig.String()),
		)

		cancel()
	}()

	return ctx
}
