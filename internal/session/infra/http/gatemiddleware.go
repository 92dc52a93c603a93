package http

import (
	"net/http"

	"github.com/klwxsrx/go-session-gate/internal/session/app/service"
	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
)

// NewGateMiddleware runs every routed request through the session gate.
// Rejected requests get 401 with the rejection reason, active ones carry the principal in the context.
func NewGateMiddleware(gate service.Gate, cookies CookieFactory) pkghttp.ServerMiddleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, _ := pkghttp.ParseRequest(r, pkghttp.CookieValue[string](SessionCookieName), nil)
			decision := gate.Evaluate(r.Context(), r.URL.Path, credential)
			if decision.ClearCredential {
				http.SetCookie(w, cookies.Cleared())
			}
			if decision.RefreshedToken != nil {
				http.SetCookie(w, cookies.Session(*decision.RefreshedToken))
			}

			switch {
			case !decision.Allowed():
				pkghttp.WriteRawResponse(
					r.Context(),
					w,
					http.StatusUnauthorized,
					pkghttp.ErrorResponse{Error: decision.Reason.Error()},
					decision.Reason,
				)
			case decision.Principal != nil:
				next.ServeHTTP(w, pkghttp.WithPrincipal(r, *decision.Principal))
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
