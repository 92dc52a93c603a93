package message

import (
	"context"

	"github.com/google/uuid"
)

type (
	Message struct {
		ID    uuid.UUID
		Topic string
		// Key is used for topic partitioning, messages with the same key fall in the same topic partition
		Key        string
		Payload    []byte
		Properties map[string]string
	}

	// Producer hands a message over to the broker, implementations may deliver it asynchronously.
	Producer interface {
		Produce(ctx context.Context, msg *Message) error
	}
)
