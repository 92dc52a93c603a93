package http

import (
	"net/http"

	"github.com/klwxsrx/go-session-gate/internal/session/app/token"
)

const SessionCookieName = "JWT_TOKEN"

// CookieFactory builds the session credential cookie, development mode relaxes Secure and SameSite.
type CookieFactory struct {
	devMode bool
}

func NewCookieFactory(devMode bool) CookieFactory {
	return CookieFactory{devMode: devMode}
}

func (f CookieFactory) Session(tok token.Token) *http.Cookie {
	return f.cookie(tok.Value, int(token.Validity.Seconds()))
}

func (f CookieFactory) Cleared() *http.Cookie {
	// negative MaxAge is rendered as Max-Age=0
	return f.cookie("", -1)
}

func (f CookieFactory) cookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if f.devMode {
		sameSite = http.SameSiteLaxMode
	}

	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   !f.devMode,
		SameSite: sameSite,
	}
}
