package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/go-session-gate/pkg/observability"
)

const RequestIDHeader = "X-Request-ID"

type RequestIDExtractor func(*http.Request) string

func WithObservability(
	observer observability.Observer,
	extractors ...RequestIDExtractor,
) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, extractor := range extractors {
				if value := extractor(r); value != "" {
					r = r.WithContext(observer.WithRequestID(r.Context(), value))
					w.Header().Set(RequestIDHeader, value)
					break
				}
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func RequestIDHeaderExtractor(header string) RequestIDExtractor {
	return func(r *http.Request) string {
		return r.Header.Get(header)
	}
}

func RequestIDRandomUUIDExtractor() RequestIDExtractor {
	return func(_ *http.Request) string {
		return uuid.New().String()
	}
}
