package message

import (
	"context"

	"github.com/klwxsrx/go-session-gate/pkg/log"
)

type logProducer struct {
	logger log.Logger
	level  log.Level
}

// NewLogProducer writes messages to the log, used when no broker is configured.
func NewLogProducer(logger log.Logger, level log.Level) Producer {
	return logProducer{
		logger: logger,
		level:  level,
	}
}

func (p logProducer) Produce(ctx context.Context, msg *Message) error {
	p.logger.
		With(log.Fields{
			"messageID":  msg.ID.String(),
			"topic":      msg.Topic,
			"key":        msg.Key,
			"properties": msg.Properties,
			"payload":    string(msg.Payload),
		}).
		Log(ctx, p.level, "message produced")
	return nil
}
