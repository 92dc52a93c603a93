package http

import (
	"net/http"

	"github.com/klwxsrx/go-session-gate/internal/session/app/service"
	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
)

type CompleteInvitationHandler struct {
	authService service.Authentication
	cookies     CookieFactory
}

func NewCompleteInvitationHandler(authService service.Authentication, cookies CookieFactory) CompleteInvitationHandler {
	return CompleteInvitationHandler{
		authService: authService,
		cookies:     cookies,
	}
}

func (h CompleteInvitationHandler) Method() string {
	return http.MethodPost
}

func (h CompleteInvitationHandler) Path() string {
	return "/api/auth/complete-invitation"
}

func (h CompleteInvitationHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	assertion, err := pkghttp.ParseRequest(r, pkghttp.BearerToken(), nil)
	if err != nil {
		return domain.ErrInvalidIdentityAssertion
	}

	in, err := parseTokenIn(r)
	if err != nil {
		w.SetStatusCode(http.StatusBadRequest)
		return err
	}

	session, err := h.authService.CompleteInvitation(r.Context(), assertion, in.Token)
	if err != nil {
		return err
	}

	w.SetCookie(h.cookies.Session(session.Token)).SetJSONBody(sessionOut{
		User:       toUserOut(session.User),
		Message:    "Invitation completed successfully",
		TokenValid: true,
	})
	return nil
}
