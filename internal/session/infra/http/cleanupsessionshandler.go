package http

import (
	"net/http"

	"github.com/klwxsrx/go-session-gate/internal/session/app/service"
	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
)

type CleanupSessionsHandler struct {
	administration service.Administration
}

func NewCleanupSessionsHandler(administration service.Administration) CleanupSessionsHandler {
	return CleanupSessionsHandler{administration: administration}
}

func (h CleanupSessionsHandler) Method() string {
	return http.MethodPost
}

func (h CleanupSessionsHandler) Path() string {
	return "/api/admin/sessions/cleanup"
}

func (h CleanupSessionsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	result, err := h.administration.CleanupSessions(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(cleanupOut{
		Removed: result,
		Message: "Session cleanup completed",
	})
	return nil
}

type cleanupOut struct {
	Removed service.SweepResult `json:"removed"`
	Message string              `json:"message"`
}
