package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// NotifyContext returns a context bound to the process termination
// signals.
func NotifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}
