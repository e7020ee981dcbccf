package db

import (
	"fmt"
	"net/url"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openPostgres(cfg Config, gcfg *gorm.Config) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(PostgresDSN(cfg)), gcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}
	return gdb, nil
}

// PostgresDSN returns cfg.DSN when set, else builds a URL from the parts.
func PostgresDSN(cfg Config) string {
	if dsn := strings.TrimSpace(cfg.DSN); dsn != "" {
		return dsn
	}
	host := firstNonEmpty(cfg.Host, "localhost")
	port := firstNonEmpty(cfg.Port, "5432")
	sslMode := firstNonEmpty(cfg.SSLMode, "disable")

	u := url.URL{
		Scheme:   "postgres",
		Host:     host + ":" + port,
		Path:     "/" + firstNonEmpty(cfg.Name, "records"),
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	user := firstNonEmpty(cfg.User, "postgres")
	if cfg.Password != "" {
		u.User = url.UserPassword(user, cfg.Password)
	} else {
		u.User = url.User(user)
	}
	return u.String()
}

func firstNonEmpty(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
