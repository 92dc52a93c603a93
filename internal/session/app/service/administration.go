//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names Administration=Administration,Diagnostics=Diagnostics
package service

import (
	"context"
	"fmt"

	"github.com/klwxsrx/go-session-gate/internal/pkg/auth"
	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	pkgauth "github.com/klwxsrx/go-session-gate/pkg/auth"
	"github.com/klwxsrx/go-session-gate/pkg/log"
)

var DefaultAdminRoles = []string{"SUPER_ADMIN", "ADMIN"}

type (
	Administration interface {
		CleanupSessions(ctx context.Context) (SweepResult, error)
	}

	Diagnostics interface {
		CountUsers(ctx context.Context) (int, error)
	}
)

type administrationService struct {
	reaper      Reaper
	permissions pkgauth.PermissionService[auth.Principal]
	adminRoles  []string
	logger      log.Logger
}

func NewAdministration(
	reaper Reaper,
	permissions pkgauth.PermissionService[auth.Principal],
	adminRoles []string,
	logger log.Logger,
) Administration {
	if len(adminRoles) == 0 {
		adminRoles = DefaultAdminRoles
	}

	return administrationService{
		reaper:      reaper,
		permissions: permissions,
		adminRoles:  adminRoles,
		logger:      logger,
	}
}

func (s administrationService) CleanupSessions(ctx context.Context) (SweepResult, error) {
	err := s.permissions.Check(ctx, auth.HasAnyRole(s.adminRoles...))
	if err != nil {
		return SweepResult{}, err
	}

	result := s.reaper.SweepAll(ctx)
	s.logger.With(log.Fields{
		"sessions":          result.Sessions,
		"validationEntries": result.ValidationEntries,
	}).Info(ctx, "manual session cleanup completed")
	return result, nil
}

type diagnosticsService struct {
	users domain.UserDirectory
}

func NewDiagnostics(users domain.UserDirectory) Diagnostics {
	return diagnosticsService{users: users}
}

func (s diagnosticsService) CountUsers(ctx context.Context) (int, error) {
	count, err := s.users.CountUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}
