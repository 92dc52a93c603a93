package time

import (
	"context"
	"time"
)

const nowContextKey contextKey = iota

type (
	Clock interface {
		Now(context.Context) time.Time
	}

	// AdjustableClock lets callers pin or shift the current time for a single context,
	// other contexts keep reading the wall clock.
	AdjustableClock interface {
		Clock
		Set(context.Context, time.Time) context.Context
		Advance(context.Context, time.Duration) context.Context
		Freeze(context.Context) context.Context
	}

	clockImpl  struct{}
	contextKey int
)

func NewClock() Clock {
	return clockImpl{}
}

func NewAdjustableClock() AdjustableClock {
	return clockImpl{}
}

func (c clockImpl) Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(nowContextKey).(time.Time); ok {
		return t
	}

	return time.Now()
}

func (c clockImpl) Set(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, nowContextKey, t)
}

func (c clockImpl) Advance(ctx context.Context, d time.Duration) context.Context {
	return c.Set(ctx, c.Now(ctx).Add(d))
}

func (c clockImpl) Freeze(ctx context.Context) context.Context {
	if _, ok := ctx.Value(nowContextKey).(time.Time); ok {
		return ctx
	}

	return c.Set(ctx, time.Now())
}
