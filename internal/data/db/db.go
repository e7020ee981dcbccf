package db

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver string

	// Postgres
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite
	SQLitePath string

	SlowThreshold   time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to the configured store. Driver errors are translated into
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated where the dialect supports it.
func Open(cfg Config, baseLog *logger.Logger) (*gorm.DB, error) {
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	log := baseLog.With("service", "Database")

	gcfg := &gorm.Config{
		Logger:         NewGormLogger(log, cfg.SlowThreshold),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var (
		gdb *gorm.DB
		err error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case DriverPostgres, "":
		gdb, err = openPostgres(cfg, gcfg)
	case DriverSQLite:
		gdb, err = openSQLite(cfg, gcfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if DriverName(cfg.Driver) == DriverPostgres {
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql pool: %w", err)
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
	}

	log.Info("Database connected", "driver", DriverName(cfg.Driver))
	return gdb, nil
}

// Close releases the underlying sql pool.
func Close(gdb *gorm.DB) error {
	if gdb == nil {
		return nil
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DriverName normalizes a configured driver name.
func DriverName(driver string) string {
	d := strings.ToLower(strings.TrimSpace(driver))
	if d == "" {
		return DriverPostgres
	}
	return d
}
