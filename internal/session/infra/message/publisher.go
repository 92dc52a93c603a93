package message

import (
	"context"

	"github.com/klwxsrx/go-session-gate/internal/session/app/event"
	"github.com/klwxsrx/go-session-gate/pkg/log"
	pkgmessage "github.com/klwxsrx/go-session-gate/pkg/message"
	"github.com/klwxsrx/go-session-gate/pkg/worker"
)

// Publisher dispatches every event on its own goroutine, Wait blocks until all of them are delivered or logged.
type Publisher struct {
	dispatcher pkgmessage.EventDispatcher
	pool       worker.Pool
	logger     log.Logger
}

func NewPublisher(dispatcher pkgmessage.EventDispatcher, logger log.Logger) *Publisher {
	return &Publisher{
		dispatcher: dispatcher,
		pool:       worker.NewPool(worker.MaxWorkersCountUnlimited),
		logger:     logger,
	}
}

func (p *Publisher) Publish(ctx context.Context, evt pkgmessage.Event) {
	ctx = context.WithoutCancel(ctx)
	p.pool.Do(func() {
		err := p.dispatcher.Dispatch(ctx, evt)
		if err != nil {
			p.logger.
				With(log.Fields{
					"eventType": evt.Type(),
					"eventID":   evt.ID().String(),
				}).
				WithError(err).
				Error(ctx, "failed to publish session event")
		}
	})
}

func (p *Publisher) Wait() {
	p.pool.Wait()
}

var _ event.Publisher = (*Publisher)(nil)
