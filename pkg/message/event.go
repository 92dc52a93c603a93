package message

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/go-session-gate/pkg/strings"
)

const eventTypeProperty = "event_type"

type (
	Event interface {
		ID() uuid.UUID
		Type() string
		Key() string
		OccurredAt() time.Time
	}

	EventDispatcher interface {
		Dispatch(ctx context.Context, events ...Event) error
	}

	eventMessagePayload struct {
		EventType  string          `json:"event_type"`
		OccurredAt time.Time       `json:"occurred_at"`
		EventData  json.RawMessage `json:"event_data"`
	}
)

type eventDispatcher struct {
	topic    string
	producer Producer
}

func NewEventDispatcher(topic string, producer Producer) EventDispatcher {
	return eventDispatcher{
		topic:    topic,
		producer: producer,
	}
}

func (d eventDispatcher) Dispatch(ctx context.Context, events ...Event) error {
	for _, evt := range events {
		msg, err := SerializeEvent(d.topic, evt)
		if err != nil {
			return err
		}

		err = d.producer.Produce(ctx, msg)
		if err != nil {
			return fmt.Errorf("produce event %s: %w", evt.Type(), err)
		}
	}

	return nil
}

// SerializeEvent encodes an event into a JSON envelope, event type names are in snake_case.
func SerializeEvent(topic string, evt Event) (*Message, error) {
	eventType := strings.ToSnakeCase(evt.Type())

	eventEncoded, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("encode event %s: %w", eventType, err)
	}

	payload, err := json.Marshal(eventMessagePayload{
		EventType:  eventType,
		OccurredAt: evt.OccurredAt().UTC(),
		EventData:  eventEncoded,
	})
	if err != nil {
		return nil, fmt.Errorf("encode message payload for event %s: %w", eventType, err)
	}

	return &Message{
		ID:         evt.ID(),
		Topic:      topic,
		Key:        evt.Key(),
		Payload:    payload,
		Properties: map[string]string{eventTypeProperty: eventType},
	}, nil
}
