package cmd

import (
	"context"
	"os/signal"
	"syscall"
)

// TermSignalAwaiter returns nil on SIGTERM or SIGINT, which makes Run stop the other jobs.
func TermSignalAwaiter(ctx context.Context) error {
	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	<-signalCtx.Done()
	if ctx.Err() != nil {
		return ctx.Err()
	}

	return nil
}
