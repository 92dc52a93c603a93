package http

import (
	"net/http"

	"github.com/klwxsrx/go-session-gate/internal/session/app/service"
	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
)

type LogoutHandler struct {
	authService service.Authentication
	cookies     CookieFactory
}

func NewLogoutHandler(authService service.Authentication, cookies CookieFactory) LogoutHandler {
	return LogoutHandler{
		authService: authService,
		cookies:     cookies,
	}
}

func (h LogoutHandler) Method() string {
	return http.MethodPost
}

func (h LogoutHandler) Path() string {
	return "/api/auth/logout"
}

func (h LogoutHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	err := h.authService.Logout(r.Context())
	if err != nil {
		return err
	}

	w.SetCookie(h.cookies.Cleared()).SetJSONBody(messageOut{Message: "Logged out successfully"})
	return nil
}
