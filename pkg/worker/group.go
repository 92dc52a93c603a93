package worker

import (
	"context"
	"sync"
)

type ErrorJob func() error

type Group interface {
	Do(ErrorJob)
	Wait() error
}

// group keeps the first error and cancels the shared context after it.
type group struct {
	ctxCancel context.CancelFunc
	pool      Pool

	errOnce *sync.Once
	err     error
}

func NewGroup(ctx context.Context) (context.Context, Group) {
	return WithinGroup(ctx, NewPool(MaxWorkersCountUnlimited))
}

func WithinGroup(ctx context.Context, pool Pool) (context.Context, Group) {
	ctx, ctxCancel := context.WithCancel(ctx)
	return ctx, &group{
		ctxCancel: ctxCancel,
		pool:      pool,
		errOnce:   &sync.Once{},
		err:       nil,
	}
}

func (g *group) Do(job ErrorJob) {
	g.pool.Do(func() {
		err := job()
		if err == nil {
			return
		}

		g.errOnce.Do(func() {
			g.err = err
			g.ctxCancel()
		})
	})
}

func (g *group) Wait() error {
	g.pool.Wait()
	g.ctxCancel()
	return g.err
}
