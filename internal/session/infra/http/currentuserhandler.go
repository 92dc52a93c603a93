package http

import (
	"net/http"

	"github.com/klwxsrx/go-session-gate/internal/session/app/service"
	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
)

type CurrentUserHandler struct {
	authService service.Authentication
}

func NewCurrentUserHandler(authService service.Authentication) CurrentUserHandler {
	return CurrentUserHandler{authService: authService}
}

func (h CurrentUserHandler) Method() string {
	return http.MethodGet
}

func (h CurrentUserHandler) Path() string {
	return "/api/auth/current-user"
}

func (h CurrentUserHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	user, err := h.authService.CurrentUser(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(currentUserOut{
		User: toUserOut(user),
		Role: user.Role,
	})
	return nil
}

type currentUserOut struct {
	User UserOut `json:"user"`
	Role string  `json:"role"`
}
