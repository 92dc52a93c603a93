package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/klwxsrx/go-session-gate/internal/session/app/service"
	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
)

type ActivityHandler struct {
	authService service.Authentication
	retryAfter  string
}

// NewActivityHandler answers rate limited pings with Retry-After equal to the limiter window.
func NewActivityHandler(authService service.Authentication, window time.Duration) ActivityHandler {
	return ActivityHandler{
		authService: authService,
		retryAfter:  strconv.Itoa(int(window.Seconds())),
	}
}

func (h ActivityHandler) Method() string {
	return http.MethodPost
}

func (h ActivityHandler) Path() string {
	return "/api/auth/activity"
}

func (h ActivityHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	err := h.authService.RecordActivity(r.Context(), r.UserAgent())
	if errors.Is(err, domain.ErrRateLimited) {
		w.SetHeader("Retry-After", h.retryAfter)
		return err
	}
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
