package service

import (
	"context"

	"github.com/klwxsrx/go-session-gate/pkg/cmd"
	"github.com/klwxsrx/go-session-gate/pkg/log"
	"github.com/klwxsrx/go-session-gate/pkg/metric"
	"github.com/klwxsrx/go-session-gate/pkg/worker"
)

type (
	// Reaper bounds memory used by abandoned sessions, the gate checks expiry on its own.
	Reaper interface {
		SweepSessions(ctx context.Context) int
		SweepValidationCache(ctx context.Context) int
		SweepAll(ctx context.Context) SweepResult
	}

	SweepResult struct {
		Sessions          int `json:"sessions"`
		ValidationEntries int `json:"validationEntries"`
	}
)

type reaper struct {
	registries Registries
	metrics    metric.Metrics
	logger     log.Logger
}

func NewReaper(registries Registries, metrics metric.Metrics, logger log.Logger) Reaper {
	return reaper{
		registries: registries,
		metrics:    metrics,
		logger:     logger,
	}
}

func (r reaper) SweepSessions(ctx context.Context) int {
	return r.sweep(ctx, "sessions", r.registries.Sessions.Size, r.registries.Sessions.SweepExpired)
}

func (r reaper) SweepValidationCache(ctx context.Context) int {
	return r.sweep(ctx, "validation_cache", r.registries.Validations.Size, r.registries.Validations.SweepExpired)
}

func (r reaper) SweepAll(ctx context.Context) SweepResult {
	return SweepResult{
		Sessions:          r.SweepSessions(ctx),
		ValidationEntries: r.SweepValidationCache(ctx),
	}
}

// sweep recovers from a failed run, the next period retries it.
func (r reaper) sweep(
	ctx context.Context,
	storeName string,
	size func() int,
	sweepExpired func(context.Context) int,
) (removed int) {
	logger := r.logger.WithField("store", storeName)
	defer func() {
		if cmd.HandleAppPanic(ctx, logger, recover()) {
			removed = 0
		}
	}()

	before := size()
	removed = sweepExpired(ctx)
	after := size()

	metrics := r.metrics.WithLabel("store", storeName)
	metrics.Add("session_reaper_removed_total", float64(removed))
	metrics.Gauge("session_reaper_entries", float64(after))

	logger.With(log.Fields{
		"before":  before,
		"after":   after,
		"removed": removed,
	}).Info(ctx, "expired entries swept")
	return removed
}

func SessionSweepJob(r Reaper) worker.Job {
	return func(ctx context.Context) {
		r.SweepSessions(ctx)
	}
}

func ValidationCacheSweepJob(r Reaper) worker.Job {
	return func(ctx context.Context) {
		r.SweepValidationCache(ctx)
	}
}
