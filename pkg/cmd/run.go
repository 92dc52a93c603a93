package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/go-session-gate/pkg/log"
	"github.com/klwxsrx/go-session-gate/pkg/worker"
)

func MustRun(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) {
	if err := Run(ctx, logger, jobs...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

// Run starts every job and stops all of them as soon as one returns.
// A job finishing because its context was cancelled is not an error.
func Run(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) error {
	errCompleted := errors.New("job completed")
	loggingAdapter := func(ctx context.Context, job worker.ContextJob) worker.ErrorJob {
		return func() error {
			err := job(ctx)
			if err == nil || errors.Is(err, context.Canceled) && ctx.Err() != nil {
				return errCompleted
			}

			logger.WithError(err).Error(ctx, "running job completed with error")
			return err
		}
	}

	groupCtx, group := worker.NewGroup(ctx)
	for _, job := range jobs {
		group.Do(loggingAdapter(groupCtx, job))
	}

	err := group.Wait()
	if err != nil && !errors.Is(err, errCompleted) {
		return err
	}

	return nil
}
