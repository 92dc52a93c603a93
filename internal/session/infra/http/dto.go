package http

import (
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
)

type (
	UserOut struct {
		ID        uuid.UUID `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		Role      string    `json:"role"`
		Active    bool      `json:"active"`
		CreatedAt time.Time `json:"createdAt"`
	}

	tokenIn struct {
		Token string `json:"token"`
	}

	messageOut struct {
		Message string `json:"message"`
	}
)

func (in tokenIn) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Token, validation.Required),
	)
}

func parseTokenIn(r *http.Request) (tokenIn, error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[tokenIn](), nil)
	if err != nil {
		return tokenIn{}, err
	}

	in.Token = strings.TrimSpace(in.Token)
	return in, in.Validate()
}

func toUserOut(user domain.User) UserOut {
	return UserOut{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}
