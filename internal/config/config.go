// Package config loads the service configuration from the environment.
//
// Variables use the QUIZ_ prefix and a double underscore for nesting, so
// QUIZ_DATABASE__MAX_OPEN_CONNS sets database.max_open_conns. A .env file in the
// working directory is loaded first when present. Unset values keep the defaults
// from Default.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"quiz_backend/internal/platform/db"
	httpserver "quiz_backend/internal/platform/http"
)

const envPrefix = "QUIZ_"

// Config is the root configuration of the service.
type Config struct {
	Env      string         `koanf:"env" validate:"oneof=development test production"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	Log      LogConfig      `koanf:"log"`
}

// ServerConfig groups settings for the HTTP server runtime.
type ServerConfig struct {
	Addr               string        `koanf:"addr" validate:"required"`
	ReadHeaderTimeout  time.Duration `koanf:"read_header_timeout" validate:"gte=0"`
	ReadTimeout        time.Duration `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout       time.Duration `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout        time.Duration `koanf:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`
	// TrustedProxies lists the proxy IPs or CIDRs whose X-Forwarded-For is honoured.
	// Empty means the client IP is always the socket peer.
	TrustedProxies     []string      `koanf:"trusted_proxies" validate:"dive,ip|cidr"`
}

// DatabaseConfig contains connection parameters and pool tuning.
// Host, user and name are only required for PostgreSQL.
type DatabaseConfig struct {
	Driver             string        `koanf:"driver" validate:"oneof=postgres sqlite"`
	Host               string        `koanf:"host" validate:"required_if=Driver postgres"`
	Port               string        `koanf:"port"`
	User               string        `koanf:"user" validate:"required_if=Driver postgres"`
	Password           string        `koanf:"password"`
	Name               string        `koanf:"name" validate:"required_if=Driver postgres"`
	SSLMode            string        `koanf:"ssl_mode"`
	Path               string        `koanf:"path"`
	MaxOpenConns       int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns       int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime    time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
	ConnectTimeout     time.Duration `koanf:"connect_timeout" validate:"gte=0"`
	RetryInterval      time.Duration `koanf:"retry_interval" validate:"gte=0"`
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold" validate:"gte=0"`

	// RunMigrations creates the schema at startup. For development databases only.
	RunMigrations bool `koanf:"run_migrations"`
	// AtomicSave wraps each insert and its read-back in one transaction.
	AtomicSave bool `koanf:"atomic_save"`
}

// AuthConfig stores the token signing settings.
type AuthConfig struct {
	JWTSecret string        `koanf:"jwt_secret" validate:"required,min=16"`
	TokenTTL  time.Duration `koanf:"token_ttl" validate:"gt=0"`
	// RateLimit caps /signup and /login requests per client within RateWindow. Zero disables it.
	RateLimit  int           `koanf:"rate_limit" validate:"gte=0"`
	RateWindow time.Duration `koanf:"rate_window" validate:"required_with=RateLimit"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

// Default returns the configuration used for every value the environment leaves unset.
func Default() *Config {
	return &Config{
		Env: "development",
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       90 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:             db.DriverPostgres,
			Host:               "localhost",
			Port:               "5432",
			User:               "quiz",
			Name:               "quiz",
			SSLMode:            "disable",
			MaxOpenConns:       10,
			MaxIdleConns:       5,
			ConnMaxLifetime:    30 * time.Minute,
			ConnectTimeout:     60 * time.Second,
			RetryInterval:      3 * time.Second,
			SlowQueryThreshold: 200 * time.Millisecond,
		},
		Auth: AuthConfig{
			TokenTTL:   time.Hour,
			RateLimit:  10,
			RateWindow: time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the environment over Default and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           cfg,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DB converts the settings into the form db.OpenDB takes.
func (c DatabaseConfig) DB() db.Config {
	return db.Config{
		Driver:             c.Driver,
		Host:               c.Host,
		Port:               c.Port,
		User:               c.User,
		Password:           c.Password,
		Name:               c.Name,
		SSLMode:            c.SSLMode,
		Path:               c.Path,
		MaxOpenConns:       c.MaxOpenConns,
		MaxIdleConns:       c.MaxIdleConns,
		ConnMaxLifetime:    c.ConnMaxLifetime,
		ConnectTimeout:     c.ConnectTimeout,
		RetryInterval:      c.RetryInterval,
		SlowQueryThreshold: c.SlowQueryThreshold,
	}
}

// HTTP converts the settings into the form httpserver.NewServer takes.
func (c ServerConfig) HTTP() httpserver.ServerConfig {
	return httpserver.ServerConfig{
		Addr:              c.Addr,
		ReadHeaderTimeout: c.ReadHeaderTimeout,
		ReadTimeout:       c.ReadTimeout,
		WriteTimeout:      c.WriteTimeout,
		IdleTimeout:       c.IdleTimeout,
	}
}
