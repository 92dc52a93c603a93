package auth

import (
	"context"
	"errors"
)

var (
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrPermissionDenied = errors.New("permission denied")
)

type Principal interface {
	ID() string
}

const principalContextKey contextKey = iota

type contextKey int

func WithPrincipal[T Principal](ctx context.Context, principal T) context.Context {
	return context.WithValue(ctx, principalContextKey, Principal(principal))
}

func GetPrincipal[T Principal](ctx context.Context) (T, bool) {
	var empty T
	principal, ok := ctx.Value(principalContextKey).(Principal)
	if !ok {
		return empty, false
	}

	concrete, ok := principal.(T)
	if !ok {
		return empty, false
	}

	return concrete, true
}

func IsAuthenticated(ctx context.Context) bool {
	_, ok := ctx.Value(principalContextKey).(Principal)
	return ok
}
