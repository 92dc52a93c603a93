package stub

import (
	"context"
	"sync"

	"github.com/klwxsrx/go-session-gate/pkg/message"
)

type Producer struct {
	mu       sync.Mutex
	messages []message.Message
}

func NewProducer() *Producer {
	return &Producer{}
}

func (p *Producer) Produce(_ context.Context, msg *message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.messages = append(p.messages, *msg)
	return nil
}

func (p *Producer) Messages() []message.Message {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := make([]message.Message, len(p.messages))
	copy(result, p.messages)
	return result
}
