package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/go-session-gate/internal/session/app/service"
	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
)

type ExchangeTokenHandler struct {
	authService service.Authentication
	cookies     CookieFactory
}

func NewExchangeTokenHandler(authService service.Authentication, cookies CookieFactory) ExchangeTokenHandler {
	return ExchangeTokenHandler{
		authService: authService,
		cookies:     cookies,
	}
}

func (h ExchangeTokenHandler) Method() string {
	return http.MethodPost
}

func (h ExchangeTokenHandler) Path() string {
	return "/api/auth/exchange-token"
}

func (h ExchangeTokenHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := parseTokenIn(r)
	if err != nil {
		w.SetStatusCode(http.StatusBadRequest)
		return err
	}

	session, err := h.authService.ExchangeToken(r.Context(), in.Token)
	if errors.Is(err, domain.ErrRequiresInvitation) {
		w.SetStatusCode(http.StatusForbidden).SetJSONBody(requiresInvitationOut{
			Error:              err.Error(),
			RequiresInvitation: true,
		})
		return err
	}
	if err != nil {
		return err
	}

	w.SetCookie(h.cookies.Session(session.Token)).SetJSONBody(sessionOut{
		User:       toUserOut(session.User),
		Message:    "Token exchanged successfully",
		TokenValid: true,
	})
	return nil
}

type (
	sessionOut struct {
		User       UserOut `json:"user"`
		Message    string  `json:"message"`
		TokenValid bool    `json:"tokenValid"`
	}

	requiresInvitationOut struct {
		Error              string `json:"error"`
		RequiresInvitation bool   `json:"requires_invitation"`
	}
)
