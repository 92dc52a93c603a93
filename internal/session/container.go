package session

import (
	"context"
	"time"

	"github.com/klwxsrx/go-session-gate/data/sql/user"
	"github.com/klwxsrx/go-session-gate/internal/pkg/auth"
	"github.com/klwxsrx/go-session-gate/internal/pkg/cmd"
	"github.com/klwxsrx/go-session-gate/internal/pkg/config"
	"github.com/klwxsrx/go-session-gate/internal/session/app/identity"
	"github.com/klwxsrx/go-session-gate/internal/session/app/service"
	"github.com/klwxsrx/go-session-gate/internal/session/app/token"
	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	"github.com/klwxsrx/go-session-gate/internal/session/infra/http"
	identityinfra "github.com/klwxsrx/go-session-gate/internal/session/infra/identity"
	"github.com/klwxsrx/go-session-gate/internal/session/infra/jwt"
	"github.com/klwxsrx/go-session-gate/internal/session/infra/memory"
	"github.com/klwxsrx/go-session-gate/internal/session/infra/message"
	"github.com/klwxsrx/go-session-gate/internal/session/infra/sql"
	pkgauth "github.com/klwxsrx/go-session-gate/pkg/auth"
	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
	"github.com/klwxsrx/go-session-gate/pkg/lazy"
	"github.com/klwxsrx/go-session-gate/pkg/log"
	pkgmessage "github.com/klwxsrx/go-session-gate/pkg/message"
	"github.com/klwxsrx/go-session-gate/pkg/metric"
	pkgsql "github.com/klwxsrx/go-session-gate/pkg/sql"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
	"github.com/klwxsrx/go-session-gate/pkg/worker"
)

const (
	transactionInstanceName = "session"
	jwksDestinationName     = "identity_jwks"
	jwksRequestTimeout      = 10 * time.Second
)

type DependencyContainer struct {
	Gate           lazy.Loader[service.Gate]
	Authentication lazy.Loader[service.Authentication]
	Reaper         lazy.Loader[service.Reaper]

	config     config.Config
	keySet     lazy.Loader[*identityinfra.JWKSKeySet]
	publisher  lazy.Loader[*message.Publisher]
	handlers   []lazy.Loader[pkghttp.Handler]
	logger     lazy.Loader[log.Logger]
	middleware lazy.Loader[pkghttp.ServerMiddleware]
}

func NewDependencyContainer(
	cfg config.Config,
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	eventDispatcher lazy.Loader[pkgmessage.EventDispatcher],
	httpClients lazy.Loader[cmd.HTTPClientFactory],
	clock lazy.Loader[pkgtime.Clock],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) *DependencyContainer {
	registries := registriesProvider(clock)
	codec := codecProvider(cfg, clock)
	publisher := publisherProvider(eventDispatcher, logger)
	users := userDirectoryProvider(db, dbMigrations)
	transaction := transactionProvider(db)
	keySet := jwksKeySetProvider(cfg, httpClients, logger)
	verifier := verifierProvider(cfg, keySet, clock)
	cookies := lazy.New(func() (http.CookieFactory, error) {
		return http.NewCookieFactory(cfg.DevMode()), nil
	})

	gate := gateProvider(cfg, codec, registries, publisher, clock, metrics, logger)
	authentication := authenticationProvider(cfg, verifier, codec, users, transaction, registries, publisher, clock, metrics, logger)
	reaper := reaperProvider(registries, metrics, logger)
	administration := lazy.New(func() (service.Administration, error) {
		return service.NewAdministration(
			reaper.MustLoad(),
			pkgauth.NewPermissionService[auth.Principal](),
			cfg.AdminRoles,
			logger.MustLoad(),
		), nil
	})
	diagnostics := lazy.New(func() (service.Diagnostics, error) {
		return service.NewDiagnostics(users.MustLoad()), nil
	})

	return &DependencyContainer{
		Gate:           gate,
		Authentication: authentication,
		Reaper:         reaper,
		config:         cfg,
		keySet:         keySet,
		publisher:      publisher,
		logger:         logger,
		middleware: lazy.New(func() (pkghttp.ServerMiddleware, error) {
			return http.NewGateMiddleware(gate.MustLoad(), cookies.MustLoad()), nil
		}),
		handlers: []lazy.Loader[pkghttp.Handler]{
			handler(func() pkghttp.Handler {
				return http.NewExchangeTokenHandler(authentication.MustLoad(), cookies.MustLoad())
			}),
			handler(func() pkghttp.Handler {
				return http.NewCompleteInvitationHandler(authentication.MustLoad(), cookies.MustLoad())
			}),
			handler(func() pkghttp.Handler {
				return http.NewLogoutHandler(authentication.MustLoad(), cookies.MustLoad())
			}),
			handler(func() pkghttp.Handler {
				return http.NewCurrentUserHandler(authentication.MustLoad())
			}),
			handler(func() pkghttp.Handler {
				return http.NewActivityHandler(authentication.MustLoad(), memory.DefaultActivityWindow)
			}),
			handler(func() pkghttp.Handler {
				return http.NewCleanupSessionsHandler(administration.MustLoad())
			}),
			handler(func() pkghttp.Handler {
				return http.NewHealthHandler(clock.MustLoad())
			}),
			handler(func() pkghttp.Handler {
				return http.NewDatabaseStatusHandler(diagnostics.MustLoad(), logger.MustLoad())
			}),
		},
	}
}

// MustRegisterHTTPHandlers puts every route behind the session gate, the gate itself lets public paths through.
func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Use(c.middleware.MustLoad())
	for _, h := range c.handlers {
		registry.Register(h.MustLoad())
	}
}

// MustInitIdentityKeys fetches the identity provider keys once, startup fails when they are unavailable.
func (c *DependencyContainer) MustInitIdentityKeys(ctx context.Context) {
	keySet := c.keySet.MustLoad()
	if keySet == nil {
		c.logger.MustLoad().Warn(ctx, "identity provider key set is not configured, "+
			"assertion signatures are expected to be verified by an upstream proxy")
		return
	}

	err := keySet.Refresh(ctx)
	if err != nil {
		panic(err)
	}
}

func (c *DependencyContainer) BackgroundJobs() []worker.ContextJob {
	reaper := c.Reaper.MustLoad()
	jobs := []worker.ContextJob{
		worker.PeriodicalJob(service.SessionSweepJob(reaper), c.config.SessionSweepInterval),
		worker.PeriodicalJob(service.ValidationCacheSweepJob(reaper), c.config.ValidationCacheSweepInterval),
	}

	if keySet := c.keySet.MustLoad(); keySet != nil {
		jobs = append(jobs, worker.PeriodicalContextJob(keySet.Refresh, c.config.IdentityJWKSRefreshInterval, c.logger.MustLoad()))
	}

	return jobs
}

// Close waits for session events still being published.
func (c *DependencyContainer) Close() {
	c.publisher.IfLoaded(func(publisher *message.Publisher) { publisher.Wait() })
}

func handler(provider func() pkghttp.Handler) lazy.Loader[pkghttp.Handler] {
	return lazy.New(func() (pkghttp.Handler, error) {
		return provider(), nil
	})
}

func registriesProvider(clock lazy.Loader[pkgtime.Clock]) lazy.Loader[service.Registries] {
	return lazy.New(func() (service.Registries, error) {
		return service.Registries{
			Sessions:    memory.NewSessionStore(clock.MustLoad()),
			Validations: memory.NewValidationCache(memory.DefaultValidationCacheTTL, clock.MustLoad()),
			Activity:    memory.NewActivityLimiter(memory.DefaultActivityWindow, memory.DefaultMaxActivityPerWindow, clock.MustLoad()),
		}, nil
	})
}

func codecProvider(cfg config.Config, clock lazy.Loader[pkgtime.Clock]) lazy.Loader[token.Codec] {
	return lazy.New(func() (token.Codec, error) {
		return jwt.NewCodec(cfg.JWTSecret, clock.MustLoad()), nil
	})
}

func publisherProvider(
	eventDispatcher lazy.Loader[pkgmessage.EventDispatcher],
	logger lazy.Loader[log.Logger],
) lazy.Loader[*message.Publisher] {
	return lazy.New(func() (*message.Publisher, error) {
		return message.NewPublisher(eventDispatcher.MustLoad(), logger.MustLoad()), nil
	})
}

func userDirectoryProvider(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[domain.UserDirectory] {
	return lazy.New(func() (domain.UserDirectory, error) {
		dbMigrations.MustLoad().MustRegister(user.Migrations)
		return sql.NewUserDirectory(pkgsql.NewTransactionalClient(db.MustLoad())), nil
	})
}

func transactionProvider(db lazy.Loader[pkgsql.Database]) lazy.Loader[pkgsql.Transaction] {
	return lazy.New(func() (pkgsql.Transaction, error) {
		return pkgsql.NewTransaction(db.MustLoad(), transactionInstanceName), nil
	})
}

// jwksKeySetProvider loads nil when no key set URL is configured.
func jwksKeySetProvider(
	cfg config.Config,
	httpClients lazy.Loader[cmd.HTTPClientFactory],
	logger lazy.Loader[log.Logger],
) lazy.Loader[*identityinfra.JWKSKeySet] {
	return lazy.New(func() (*identityinfra.JWKSKeySet, error) {
		if cfg.IdentityJWKSURL == "" {
			return nil, nil
		}

		client := httpClients.MustLoad().NewClient(jwksDestinationName, jwksRequestTimeout)
		return identityinfra.NewJWKSKeySet(cfg.IdentityJWKSURL, client, logger.MustLoad()), nil
	})
}

func verifierProvider(
	cfg config.Config,
	keySet lazy.Loader[*identityinfra.JWKSKeySet],
	clock lazy.Loader[pkgtime.Clock],
) lazy.Loader[identity.Verifier] {
	return lazy.New(func() (identity.Verifier, error) {
		var keys identityinfra.KeySet
		if loaded := keySet.MustLoad(); loaded != nil {
			keys = loaded
		}

		return identityinfra.NewVerifier(identityinfra.Config{
			Audience:   cfg.IdentityAudience,
			IssuerHost: cfg.IdentityIssuerHost,
		}, keys, clock.MustLoad()), nil
	})
}

func gateProvider(
	cfg config.Config,
	codec lazy.Loader[token.Codec],
	registries lazy.Loader[service.Registries],
	publisher lazy.Loader[*message.Publisher],
	clock lazy.Loader[pkgtime.Clock],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[service.Gate] {
	return lazy.New(func() (service.Gate, error) {
		return service.NewGate(
			service.GateConfig{InactivityTimeout: cfg.InactivityTimeout()},
			codec.MustLoad(),
			registries.MustLoad(),
			publisher.MustLoad(),
			clock.MustLoad(),
			metrics.MustLoad(),
			logger.MustLoad(),
		), nil
	})
}

func authenticationProvider(
	cfg config.Config,
	verifier lazy.Loader[identity.Verifier],
	codec lazy.Loader[token.Codec],
	users lazy.Loader[domain.UserDirectory],
	transaction lazy.Loader[pkgsql.Transaction],
	registries lazy.Loader[service.Registries],
	publisher lazy.Loader[*message.Publisher],
	clock lazy.Loader[pkgtime.Clock],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[service.Authentication] {
	return lazy.New(func() (service.Authentication, error) {
		return service.NewAuthentication(
			service.AuthConfig{SessionTimeout: cfg.SessionTimeout()},
			verifier.MustLoad(),
			codec.MustLoad(),
			users.MustLoad(),
			transaction.MustLoad(),
			registries.MustLoad(),
			publisher.MustLoad(),
			clock.MustLoad(),
			metrics.MustLoad(),
			logger.MustLoad(),
		), nil
	})
}

func reaperProvider(
	registries lazy.Loader[service.Registries],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[service.Reaper] {
	return lazy.New(func() (service.Reaper, error) {
		return service.NewReaper(registries.MustLoad(), metrics.MustLoad(), logger.MustLoad()), nil
	})
}
