package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/klwxsrx/go-session-gate/internal/pkg/config"
	"github.com/klwxsrx/go-session-gate/pkg/cmd"
	"github.com/klwxsrx/go-session-gate/pkg/http"
	"github.com/klwxsrx/go-session-gate/pkg/lazy"
	"github.com/klwxsrx/go-session-gate/pkg/log"
	"github.com/klwxsrx/go-session-gate/pkg/message"
	"github.com/klwxsrx/go-session-gate/pkg/metric"
	"github.com/klwxsrx/go-session-gate/pkg/observability"
	"github.com/klwxsrx/go-session-gate/pkg/pulsar"
	"github.com/klwxsrx/go-session-gate/pkg/sql"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

const metricsNamespace = "session_gate"

var corsAllowedHeaders = []string{"Content-Type", "Authorization", http.RequestIDHeader}

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[http.Server]
	HTTPClientFactory lazy.Loader[HTTPClientFactory]
	EventDispatcher   lazy.Loader[message.EventDispatcher]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	Clock             lazy.Loader[pkgtime.Clock]
	Metrics           lazy.Loader[metric.Metrics]
	Logger            lazy.Loader[log.Logger]

	pulsarConnection lazy.Loader[pulsar.Connection]
}

func NewInfrastructureContainer(ctx context.Context, cfg config.Config, serverOpts ...http.ServerOption) *InfrastructureContainer {
	prometheus := prometheusProvider()
	metrics := lazy.New(func() (metric.Metrics, error) { return prometheus.Load() })
	logger := loggerProvider(cfg)
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(cfg, logger)
	pulsarConn := pulsarConnectionProvider(cfg, logger)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(cfg, prometheus, observer, logger, serverOpts),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		EventDispatcher:   eventDispatcherProvider(cfg, pulsarConn, logger),
		DBMigrations:      sqlMigrationsProvider(ctx, db, logger),
		DB:                db,
		Clock:             lazy.New(func() (pkgtime.Clock, error) { return pkgtime.NewClock(), nil }),
		Metrics:           metrics,
		Logger:            logger,
		pulsarConnection:  pulsarConn,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad(), recover()) {
		defer os.Exit(1)
	}

	i.pulsarConnection.IfLoaded(func(conn pulsar.Connection) {
		if conn != nil {
			conn.Close()
		}
	})
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func prometheusProvider() lazy.Loader[metric.Prometheus] {
	return lazy.New(func() (metric.Prometheus, error) {
		return metric.NewPrometheus(metricsNamespace), nil
	})
}

func loggerProvider(cfg config.Config) lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		return log.New(cfg.Level()), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID),
		), nil
	})
}

func sqlDatabaseProvider(
	cfg config.Config,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		db, err := sql.NewDatabase(sql.Config{
			DSN: sql.DSN{
				User:     cfg.SQLUser,
				Password: cfg.SQLPassword,
				Address:  cfg.SQLAddress,
				Database: cfg.SQLDatabase,
			},
			ConnectionTimeout:  cfg.SQLConnectionTimeout,
			MaxOpenConnections: cfg.SQLMaxOpenConnections,
			MaxIdleConnections: cfg.SQLMaxIdleConnections,
		}, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func httpServerProvider(
	cfg config.Config,
	prometheus lazy.Loader[metric.Prometheus],
	observer lazy.Loader[observability.Observer],
	logger lazy.Loader[log.Logger],
	extraOpts []http.ServerOption,
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		opts := append([]http.ServerOption{
			http.WithHealthCheck(nil),
			http.WithMetricsHandler(prometheus.MustLoad().Handler()),
			http.WithCORSHandler(cfg.CORSOrigins, corsAllowedHeaders...),
			http.WithObservability(
				observer.MustLoad(),
				http.RequestIDHeaderExtractor(http.RequestIDHeader),
				http.RequestIDRandomUUIDExtractor(),
			),
			http.WithMetrics(prometheus.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn, log.LevelError, http.HealthPath, http.MetricsPath),
		}, extraOpts...)

		return http.NewServer(cfg.HTTPAddress, opts...), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		return NewHTTPClientFactory(observer.MustLoad(), metrics.MustLoad(), logger.MustLoad()), nil
	})
}

// pulsarConnectionProvider loads nil when no broker address is configured.
func pulsarConnectionProvider(
	cfg config.Config,
	logger lazy.Loader[log.Logger],
) lazy.Loader[pulsar.Connection] {
	return lazy.New(func() (pulsar.Connection, error) {
		if cfg.PulsarAddress == "" {
			return nil, nil
		}

		conn, err := pulsar.NewConnection(pulsar.Config{
			Address:           cfg.PulsarAddress,
			ConnectionTimeout: cfg.PulsarConnectionTimeout,
		}, logger.MustLoad().WithField("component", "pulsar"))
		if err != nil {
			panic(fmt.Errorf("open pulsar connection: %w", err))
		}

		return conn, nil
	})
}

func eventDispatcherProvider(
	cfg config.Config,
	pulsarConn lazy.Loader[pulsar.Connection],
	logger lazy.Loader[log.Logger],
) lazy.Loader[message.EventDispatcher] {
	return lazy.New(func() (message.EventDispatcher, error) {
		conn := pulsarConn.MustLoad()
		if conn == nil {
			logger.MustLoad().Info(context.Background(), "no message broker configured, session events are written to the debug log")
			return message.NewEventDispatcher(cfg.SessionEventsTopic, message.NewLogProducer(logger.MustLoad(), log.LevelDebug)), nil
		}

		return message.NewEventDispatcher(cfg.SessionEventsTopic, conn.Producer()), nil
	})
}
