package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/go-session-gate/pkg/log"
	"github.com/klwxsrx/go-session-gate/pkg/metric"
	"github.com/klwxsrx/go-session-gate/pkg/observability"
)

const defaultClientTimeout = 10 * time.Second

type (
	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
	}
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		DestinationName: "none",
		RESTClient:      resty.New().SetTimeout(defaultClientTimeout),
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.RESTClient.NewRequest().SetContext(ctx)
}

func WithClientDestination(name string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = name
	}
}

func WithClientTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetTimeout(timeout)
	}
}

func WithRequestObservability(observer observability.Observer) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			id, ok := observer.RequestID(req.Context())
			if !ok {
				return nil
			}

			req.SetHeader(RequestIDHeader, id)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			entry := logger.With(log.Fields{
				"destinationName": c.DestinationName,
				"method":          resp.Request.Method,
				"url":             resp.Request.URL,
				"responseCode":    resp.StatusCode(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				entry.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				entry.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			logger.
				With(log.Fields{
					"destinationName": c.DestinationName,
					"method":          req.Method,
					"url":             req.URL,
				}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func WithRequestMetrics(metrics metric.Metrics) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			metrics.With(metric.Labels{
				"destination": c.DestinationName,
				"method":      resp.Request.Method,
				"code":        strconv.Itoa(resp.StatusCode()),
			}).Duration("http_client_request_duration_seconds", resp.Time())
			return nil
		})
	}
}
