package service

import "strings"

var (
	publicPaths = map[string]struct{}{
		"/api/auth/exchange-token": {},
		"/login":                   {},
		"/register":                {},
		"/healthz":                 {},
		"/metrics":                 {},
		"/api/diagnostic/health":   {},
	}

	publicPathPrefixes = []string{
		"/api/auth/login",
		"/api/auth/complete-invitation",
		"/api/auth/exchange-token/",
		"/api/auth/refresh",
		"/api/auth/public",
		"/static/",
		"/assets/",
		"/favicon.ico",
		"/api/auth/forgot-password",
		"/api/auth/reset-password",
		"/api/invitations/verify",
		"/api/invitations/complete",
	}

	publicPathSuffixes = []string{
		".png",
		".jpg",
		".jpeg",
		".gif",
		".css",
		".js",
	}
)

func IsPublicPath(path string) bool {
	if _, ok := publicPaths[path]; ok {
		return true
	}

	for _, prefix := range publicPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	for _, suffix := range publicPathSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}

	return false
}
