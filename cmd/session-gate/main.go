package main

import (
	"context"
	"fmt"

	"github.com/klwxsrx/go-session-gate/internal/pkg/cmd"
	"github.com/klwxsrx/go-session-gate/internal/pkg/config"
	"github.com/klwxsrx/go-session-gate/internal/session"
	"github.com/klwxsrx/go-session-gate/internal/session/infra/http"
	pkgcmd "github.com/klwxsrx/go-session-gate/pkg/cmd"
	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
)

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("load config: %w", err))
	}

	infra := cmd.NewInfrastructureContainer(ctx, cfg, pkghttp.WithErrorMapping(http.ErrorMapping()))
	defer infra.Close(ctx)

	logger := infra.Logger.MustLoad()
	if cfg.UsesDefaultJWTSecret() {
		logger.Warn(ctx, "JWT_SECRET is not set, session tokens are signed with the built-in secret")
	}

	container := session.NewDependencyContainer(
		cfg,
		infra.DB,
		infra.DBMigrations,
		infra.EventDispatcher,
		infra.HTTPClientFactory,
		infra.Clock,
		infra.Metrics,
		infra.Logger,
	)
	defer container.Close()
	container.MustInitIdentityKeys(ctx)

	httpServer := infra.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer)

	jobs := append(container.BackgroundJobs(), pkgcmd.TermSignalAwaiter, httpServer.Listener)
	pkgcmd.MustRun(ctx, logger, jobs...)
}
