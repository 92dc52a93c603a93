package http

import (
	"net/http"

	"github.com/klwxsrx/go-session-gate/internal/session/app/service"
	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
	"github.com/klwxsrx/go-session-gate/pkg/log"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

type HealthHandler struct {
	clock pkgtime.Clock
}

func NewHealthHandler(clock pkgtime.Clock) HealthHandler {
	return HealthHandler{clock: clock}
}

func (h HealthHandler) Method() string {
	return http.MethodGet
}

func (h HealthHandler) Path() string {
	return "/api/diagnostic/health"
}

func (h HealthHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	w.SetJSONBody(healthOut{
		Status:    "UP",
		Timestamp: h.clock.Now(r.Context()).UnixMilli(),
	})
	return nil
}

type DatabaseStatusHandler struct {
	diagnostics service.Diagnostics
	logger      log.Logger
}

func NewDatabaseStatusHandler(diagnostics service.Diagnostics, logger log.Logger) DatabaseStatusHandler {
	return DatabaseStatusHandler{
		diagnostics: diagnostics,
		logger:      logger,
	}
}

func (h DatabaseStatusHandler) Method() string {
	return http.MethodGet
}

func (h DatabaseStatusHandler) Path() string {
	return "/api/diagnostic/database-status"
}

// Handle answers 503 with the failure in the body when the directory is unreachable.
func (h DatabaseStatusHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	count, err := h.diagnostics.CountUsers(r.Context())
	if err != nil {
		h.logger.WithError(err).Error(r.Context(), "database status check failed")
		w.SetStatusCode(http.StatusServiceUnavailable).SetJSONBody(databaseStatusOut{
			DatabaseConnection: "Failed",
			Error:              err.Error(),
		})
		return nil
	}

	w.SetJSONBody(databaseStatusOut{
		DatabaseConnection: "Successful",
		UserCount:          &count,
	})
	return nil
}

type (
	healthOut struct {
		Status    string `json:"status"`
		Timestamp int64  `json:"timestamp"`
	}

	databaseStatusOut struct {
		DatabaseConnection string `json:"databaseConnection"`
		UserCount          *int   `json:"userCount,omitempty"`
		Error              string `json:"error,omitempty"`
	}
)
