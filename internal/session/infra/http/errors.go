package http

import (
	"net/http"

	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	pkgauth "github.com/klwxsrx/go-session-gate/pkg/auth"
)

// ErrorMapping maps session errors returned by handlers to response codes.
func ErrorMapping() map[int][]error {
	return map[int][]error{
		http.StatusBadRequest: {
			domain.ErrInvitationNotFound,
			domain.ErrInvitationUsed,
			domain.ErrInvitationExpired,
			domain.ErrInvitationEmailMismatch,
			domain.ErrUserAlreadyExists,
		},
		http.StatusUnauthorized: {
			pkgauth.ErrUnauthenticated,
			domain.ErrInvalidIdentityAssertion,
		},
		http.StatusForbidden: {
			pkgauth.ErrPermissionDenied,
			domain.ErrRequiresInvitation,
		},
		http.StatusTooManyRequests: {
			domain.ErrRateLimited,
		},
	}
}
