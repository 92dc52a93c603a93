package worker

import (
	"context"
	"time"

	"github.com/klwxsrx/go-session-gate/pkg/log"
)

type (
	Job        func(context.Context)
	ContextJob func(context.Context) error
)

func PeriodicalJob(job Job, every time.Duration) ContextJob {
	return periodicalImpl(job, every)
}

// PeriodicalContextJob runs job every period until ctx is done; a failed run is logged and retried on the next tick.
func PeriodicalContextJob(job ContextJob, every time.Duration, logger log.Logger) ContextJob {
	return periodicalImpl(func(ctx context.Context) {
		if err := job(ctx); err != nil {
			logger.WithError(err).Error(ctx, "periodical job completed with error")
		}
	}, every)
}

func periodicalImpl(job Job, every time.Duration) ContextJob {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				job(ctx)
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
