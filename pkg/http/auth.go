package http

import (
	"net/http"

	"github.com/klwxsrx/go-session-gate/pkg/auth"
)

// WithPrincipal attaches an authenticated principal to the request,
// the principal ID is added to the request log entry.
func WithPrincipal[T auth.Principal](r *http.Request, principal T) *http.Request {
	id := principal.ID()
	meta := getHandlerMetadata(r.Context())
	meta.PrincipalID = &id

	return r.WithContext(auth.WithPrincipal(r.Context(), principal))
}
