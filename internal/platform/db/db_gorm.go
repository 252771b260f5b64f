// Package db opens the catalog database and provides the gateway every repository runs its
// statements through.
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Supported values of Config.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	defaultConnectTimeout = 60 * time.Second
	defaultRetryInterval  = 3 * time.Second
	defaultSQLitePath     = "quiz.db"
)

// Config は接続先データベースの設定を保持します。
type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// Path is the database file used by the sqlite driver.
	Path string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// ConnectTimeout bounds the startup retry loop.
	ConnectTimeout time.Duration
	RetryInterval  time.Duration

	SlowQueryThreshold time.Duration
}

// Opener opens a gorm handle for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN はドライバーに応じた接続文字列を生成します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		if cfg.Path == "" {
			return defaultSQLitePath
		}
		return cfg.Path
	}

	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslMode)
}

// NewOpener returns the Opener for driver.
func NewOpener(driver string, gormCfg *gorm.Config) (Opener, error) {
	switch driver {
	case DriverPostgres, "":
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gormCfg)
		}, nil
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gormCfg)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// ConnectWithRetry calls open until it succeeds or timeout elapses, sleeping interval between attempts.
func ConnectWithRetry(dsn string, timeout, interval time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "interval", interval)
		time.Sleep(interval)
	}
}

// OpenDB connects to the database described by cfg and applies the pool settings.
func OpenDB(cfg Config, logger *slog.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	open, err := NewOpener(cfg.Driver, &gorm.Config{
		Logger: NewGormLogger(logger, cfg.SlowQueryThreshold),
	})
	if err != nil {
		return nil, err
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = defaultRetryInterval
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), timeout, interval, open)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	logger.Info("database connected", "driver", cfg.Driver)
	return db, nil
}

// Migrate creates or updates the tables for models.
// The production schema is managed outside the service; this is for development databases and tests.
func Migrate(db *gorm.DB, models ...any) error {
	if len(models) == 0 {
		return errors.New("no models to migrate")
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
