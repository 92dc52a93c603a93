package http

import (
	"net/http"
)

const HealthPath = "/healthz"

func WithHealthCheck(customHandlerFunc http.HandlerFunc) ServerOption {
	defaultHandler := func(w http.ResponseWriter, r *http.Request) {
		WriteRawResponse(r.Context(), w, http.StatusOK, struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		}, nil)
	}

	return func(srv *server) {
		handler := defaultHandler
		if customHandlerFunc != nil {
			handler = customHandlerFunc
		}

		srv.RegisterRaw(http.MethodGet, HealthPath, http.HandlerFunc(handler))
	}
}
