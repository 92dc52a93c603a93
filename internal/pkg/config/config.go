// Package config loads the service configuration from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"

	"github.com/klwxsrx/go-session-gate/pkg/log"
)

const defaultJWTSecret = "session-gate-default-secret-change-me"

type Config struct {
	HTTPAddress string   `mapstructure:"HTTP_ADDRESS"`
	LogLevel    string   `mapstructure:"LOG_LEVEL"`
	AppEnv      string   `mapstructure:"APP_ENV"`
	CORSOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	JWTSecret                       string        `mapstructure:"JWT_SECRET"`
	SessionTimeoutMinutes           int           `mapstructure:"SESSION_TIMEOUT_MINUTES"`
	SessionInactivityTimeoutMinutes int           `mapstructure:"SESSION_INACTIVITY_TIMEOUT_MINUTES"`
	SessionSweepInterval            time.Duration `mapstructure:"SESSION_SWEEP_INTERVAL"`
	ValidationCacheSweepInterval    time.Duration `mapstructure:"VALIDATION_CACHE_SWEEP_INTERVAL"`
	AdminRoles                      []string      `mapstructure:"ADMIN_ROLES"`

	IdentityAudience            string        `mapstructure:"IDENTITY_AUDIENCE"`
	IdentityIssuerHost          string        `mapstructure:"IDENTITY_ISSUER_HOST"`
	IdentityJWKSURL             string        `mapstructure:"IDENTITY_JWKS_URL"`
	IdentityJWKSRefreshInterval time.Duration `mapstructure:"IDENTITY_JWKS_REFRESH_INTERVAL"`

	SQLUser               string        `mapstructure:"SQL_USER"`
	SQLPassword           string        `mapstructure:"SQL_PASSWORD"`
	SQLAddress            string        `mapstructure:"SQL_ADDRESS"`
	SQLDatabase           string        `mapstructure:"SQL_DATABASE"`
	SQLMaxOpenConnections int           `mapstructure:"SQL_MAX_OPEN_CONNECTIONS"`
	SQLMaxIdleConnections int           `mapstructure:"SQL_MAX_IDLE_CONNECTIONS"`
	SQLConnectionTimeout  time.Duration `mapstructure:"SQL_CONNECTION_TIMEOUT"`

	PulsarAddress           string        `mapstructure:"PULSAR_ADDRESS"`
	PulsarConnectionTimeout time.Duration `mapstructure:"PULSAR_CONNECTION_TIMEOUT"`
	SessionEventsTopic      string        `mapstructure:"SESSION_EVENTS_TOPIC"`
}

var defaults = map[string]any{
	"HTTP_ADDRESS":         ":8080",
	"LOG_LEVEL":            "info",
	"APP_ENV":              "production",
	"CORS_ALLOWED_ORIGINS": []string{"http://localhost:3000"},

	"JWT_SECRET":                         defaultJWTSecret,
	"SESSION_TIMEOUT_MINUTES":            1,
	"SESSION_INACTIVITY_TIMEOUT_MINUTES": 1,
	"SESSION_SWEEP_INTERVAL":             "5m",
	"VALIDATION_CACHE_SWEEP_INTERVAL":    "2m",
	"ADMIN_ROLES":                        []string{"SUPER_ADMIN", "ADMIN"},

	"IDENTITY_AUDIENCE":              "",
	"IDENTITY_ISSUER_HOST":           "securetoken.google.com",
	"IDENTITY_JWKS_URL":              "",
	"IDENTITY_JWKS_REFRESH_INTERVAL": "1h",

	"SQL_USER":                 "",
	"SQL_PASSWORD":             "",
	"SQL_ADDRESS":              "",
	"SQL_DATABASE":             "",
	"SQL_MAX_OPEN_CONNECTIONS": 10,
	"SQL_MAX_IDLE_CONNECTIONS": 5,
	"SQL_CONNECTION_TIMEOUT":   "20s",

	"PULSAR_ADDRESS":            "",
	"PULSAR_CONNECTION_TIMEOUT": "20s",
	"SESSION_EVENTS_TOPIC":      "persistent://public/default/session-events",
}

// Load reads .env when present, the environment overrides it.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	err = v.Unmarshal(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.HTTPAddress, validation.Required),
		validation.Field(&c.LogLevel, validation.Required, validation.By(isLogLevel)),
		validation.Field(&c.JWTSecret, validation.Required),
		validation.Field(&c.SessionTimeoutMinutes, validation.Required, validation.Min(1)),
		validation.Field(&c.SessionInactivityTimeoutMinutes, validation.Required, validation.Min(1)),
		validation.Field(&c.SessionSweepInterval, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.ValidationCacheSweepInterval, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.AdminRoles, validation.Required),
		validation.Field(&c.IdentityAudience, validation.Required),
		validation.Field(&c.IdentityIssuerHost, validation.Required),
		validation.Field(&c.IdentityJWKSRefreshInterval, validation.Required, validation.Min(time.Minute)),
		validation.Field(&c.SQLUser, validation.Required),
		validation.Field(&c.SQLPassword, validation.Required),
		validation.Field(&c.SQLAddress, validation.Required),
		validation.Field(&c.SQLDatabase, validation.Required),
		validation.Field(&c.SQLMaxOpenConnections, validation.Min(1)),
		validation.Field(&c.SQLMaxIdleConnections, validation.Min(0)),
		validation.Field(&c.SessionEventsTopic, validation.Required),
	)
}

func (c Config) DevMode() bool {
	env := strings.ToLower(strings.TrimSpace(c.AppEnv))
	return env == "dev" || env == "development"
}

func (c Config) Level() log.Level {
	level, ok := log.ParseLevel(c.LogLevel)
	if !ok {
		return log.LevelInfo
	}

	return level
}

func (c Config) SessionTimeout() time.Duration {
	return time.Duration(c.SessionTimeoutMinutes) * time.Minute
}

func (c Config) InactivityTimeout() time.Duration {
	return time.Duration(c.SessionInactivityTimeoutMinutes) * time.Minute
}

// UsesDefaultJWTSecret reports the built-in secret, tokens signed with it are forgeable by anyone reading the source.
func (c Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

func isLogLevel(value any) error {
	str, _ := value.(string)
	if _, ok := log.ParseLevel(str); !ok {
		return fmt.Errorf("unknown log level %q", str)
	}

	return nil
}
