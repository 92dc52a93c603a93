package pulsar

import (
	"context"
	"fmt"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/cenkalti/backoff/v4"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/klwxsrx/go-session-gate/pkg/log"
	"github.com/klwxsrx/go-session-gate/pkg/message"
)

const (
	defaultConnectionTimeout = 20 * time.Second

	messageIDPropertyName = "message_id"
	testTopic             = "non-persistent://public/default/test-topic"
)

type Config struct {
	Address           string
	ConnectionTimeout time.Duration
}

type Connection interface {
	Producer() message.Producer
	Close()
}

type connection struct {
	client    pulsar.Client
	producers *xsync.MapOf[string, *lazyProducer]
	logger    log.Logger
}

func NewConnection(config Config, logger log.Logger) (Connection, error) {
	connTimeout := defaultConnectionTimeout
	if config.ConnectionTimeout > 0 {
		connTimeout = config.ConnectionTimeout
	}

	c, err := pulsar.NewClient(pulsar.ClientOptions{
		URL:               fmt.Sprintf("pulsar://%s", config.Address),
		ConnectionTimeout: connTimeout,
		Logger:            newLoggerAdapter(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("create pulsar client: %w", err)
	}

	conn := &connection{
		client:    c,
		producers: xsync.NewMapOf[string, *lazyProducer](),
		logger:    logger,
	}

	err = conn.testCreateProducer(connTimeout)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("connect to broker %s: %w", config.Address, err)
	}

	return conn, nil
}

func (c *connection) Producer() message.Producer {
	return c
}

// Produce enqueues the message without waiting for the broker, delivery failures are logged.
func (c *connection) Produce(ctx context.Context, msg *message.Message) error {
	producer, err := c.getOrCreateProducer(msg.Topic)
	if err != nil {
		return err
	}

	properties := make(map[string]string, len(msg.Properties)+1)
	for k, v := range msg.Properties {
		properties[k] = v
	}
	properties[messageIDPropertyName] = msg.ID.String()

	producer.SendAsync(ctx, &pulsar.ProducerMessage{
		Payload:    msg.Payload,
		Key:        msg.Key,
		Properties: properties,
	}, func(_ pulsar.MessageID, _ *pulsar.ProducerMessage, err error) {
		if err == nil {
			return
		}

		c.logger.
			WithError(err).
			With(log.Fields{
				"messageID": msg.ID.String(),
				"topic":     msg.Topic,
			}).
			Error(ctx, "failed to deliver message")
	})

	return nil
}

func (c *connection) Close() {
	c.producers.Range(func(_ string, p *lazyProducer) bool {
		if p.producer != nil {
			p.producer.Close()
		}
		return true
	})
	c.client.Close()
}

type lazyProducer struct {
	producer pulsar.Producer
	err      error
}

func (c *connection) getOrCreateProducer(topic string) (pulsar.Producer, error) {
	p, _ := c.producers.Compute(topic, func(old *lazyProducer, loaded bool) (*lazyProducer, bool) {
		if loaded && old.err == nil {
			return old, false
		}

		producer, err := c.client.CreateProducer(pulsar.ProducerOptions{
			Topic: topic,
		})
		return &lazyProducer{producer: producer, err: err}, false
	})
	if p.err != nil {
		return nil, fmt.Errorf("create producer for topic %s: %w", topic, p.err)
	}

	return p.producer, nil
}

func (c *connection) testCreateProducer(connTimeout time.Duration) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = connTimeout / 4
	eb.MaxElapsedTime = connTimeout

	return backoff.Retry(func() error {
		p, err := c.client.CreateProducer(pulsar.ProducerOptions{
			Topic: testTopic,
		})
		if err == nil {
			p.Close()
		}
		return err
	}, eb)
}
