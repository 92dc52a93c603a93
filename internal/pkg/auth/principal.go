package auth

import (
	"slices"
	"strings"

	pkgauth "github.com/klwxsrx/go-session-gate/pkg/auth"
)

// Principal is the authenticated session owner, Subject is the account email.
type Principal struct {
	Subject    string
	Role       string
	Provider   string
	ExternalID string
}

func (p Principal) ID() string {
	return p.Subject
}

func HasAnyRole(roles ...string) pkgauth.Permission[Principal] {
	return func(principal Principal) (bool, error) {
		return slices.ContainsFunc(roles, func(role string) bool {
			return strings.EqualFold(role, principal.Role)
		}), nil
	}
}
