package auth

import (
	"context"
	"fmt"
)

type (
	PermissionService[T Principal] interface {
		Check(context.Context, Permission[T]) error
	}

	Permission[T Principal] func(T) (bool, error)

	permissionService[T Principal] struct{}
)

func NewPermissionService[T Principal]() PermissionService[T] {
	return permissionService[T]{}
}

func (p permissionService[T]) Check(ctx context.Context, permission Permission[T]) error {
	principal, ok := GetPrincipal[T](ctx)
	if !ok {
		return ErrUnauthenticated
	}

	allowed, err := permission(principal)
	if err != nil {
		return fmt.Errorf("check permission: %w", err)
	}
	if !allowed {
		return ErrPermissionDenied
	}

	return nil
}
