package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mpac-commercial/course-design-assessment/internal/data/db"
	"github.com/mpac-commercial/course-design-assessment/internal/observability"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/envutil"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	Env     string        `yaml:"env"`
	LogMode string        `yaml:"log_mode"`
	HTTP    HTTPConfig    `yaml:"http"`
	DB      DBConfig      `yaml:"db"`
	Metrics MetricsConfig `yaml:"metrics"`
	Otel    OtelConfig    `yaml:"otel"`
}

type HTTPConfig struct {
	Addr             string        `yaml:"addr"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
	CORSAllowOrigins []string      `yaml:"cors_allow_origins"`
}

type DBConfig struct {
	Driver          string        `yaml:"driver"`
	DSN             string        `yaml:"dsn"`
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"sslmode"`
	SQLitePath      string        `yaml:"sqlite_path"`
	AutoMigrate     bool          `yaml:"auto_migrate"`
	SlowQuery       time.Duration `yaml:"slow_query"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type MetricsConfig struct {
	Enabled         bool          `yaml:"enabled"`
	DBStatsInterval time.Duration `yaml:"db_stats_interval"`
}

type OtelConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	Version     string  `yaml:"version"`
	Endpoint    string  `yaml:"endpoint"`
	Headers     string  `yaml:"headers"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
	Stdout      bool    `yaml:"stdout"`
}

func DefaultConfig() Config {
	return Config{
		Env:     "development",
		LogMode: "development",
		HTTP: HTTPConfig{
			Addr:            ":8000",
			ShutdownTimeout: 10 * time.Second,
		},
		DB: DBConfig{
			Driver:          db.DriverPostgres,
			Host:            "localhost",
			Port:            "5432",
			User:            "postgres",
			Name:            "records",
			SSLMode:         "disable",
			AutoMigrate:     true,
			SlowQuery:       200 * time.Millisecond,
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Metrics: MetricsConfig{
			DBStatsInterval: 15 * time.Second,
		},
		Otel: OtelConfig{
			ServiceName: "course-records",
			SampleRatio: 0.1,
		},
	}
}

// LoadConfig layers defaults, an optional YAML file and environment
// overrides, then validates the result. An empty path falls back to
// RECORDS_CONFIG_PATH and then to config/config.yaml when that file exists.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	path = strings.TrimSpace(path)
	explicit := path != ""
	if !explicit {
		path = envutil.String("RECORDS_CONFIG_PATH", "")
		explicit = path != ""
	}
	if !explicit {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}
	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Env = envutil.String("APP_ENV", cfg.Env)
	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)

	cfg.HTTP.Addr = envutil.String("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.ShutdownTimeout = envutil.Duration("HTTP_SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout)
	cfg.HTTP.CORSAllowOrigins = envutil.List("CORS_ALLOW_ORIGINS", cfg.HTTP.CORSAllowOrigins)

	cfg.DB.Driver = envutil.String("DB_DRIVER", cfg.DB.Driver)
	cfg.DB.DSN = envutil.String("POSTGRES_DSN", cfg.DB.DSN)
	cfg.DB.Host = envutil.String("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envutil.String("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envutil.String("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Password = envutil.String("POSTGRES_PASSWORD", cfg.DB.Password)
	cfg.DB.Name = envutil.String("POSTGRES_NAME", cfg.DB.Name)
	cfg.DB.SSLMode = envutil.String("POSTGRES_SSLMODE", cfg.DB.SSLMode)
	cfg.DB.SQLitePath = envutil.String("SQLITE_PATH", cfg.DB.SQLitePath)
	cfg.DB.AutoMigrate = envutil.Bool("DB_AUTO_MIGRATE", cfg.DB.AutoMigrate)
	if ms := envutil.Int("DB_SLOW_QUERY_MS", -1); ms >= 0 {
		cfg.DB.SlowQuery = time.Duration(ms) * time.Millisecond
	}
	cfg.DB.MaxOpenConns = envutil.Int("DB_MAX_OPEN_CONNS", cfg.DB.MaxOpenConns)
	cfg.DB.MaxIdleConns = envutil.Int("DB_MAX_IDLE_CONNS", cfg.DB.MaxIdleConns)

	cfg.Metrics.Enabled = envutil.Bool("METRICS_ENABLED", cfg.Metrics.Enabled)
	cfg.Metrics.DBStatsInterval = envutil.Duration("METRICS_DB_STATS_INTERVAL", cfg.Metrics.DBStatsInterval)

	cfg.Otel.Enabled = envutil.Bool("OTEL_ENABLED", cfg.Otel.Enabled)
	cfg.Otel.ServiceName = envutil.String("OTEL_SERVICE_NAME", cfg.Otel.ServiceName)
	cfg.Otel.Version = envutil.String("OTEL_SERVICE_VERSION", cfg.Otel.Version)
	cfg.Otel.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Otel.Endpoint)
	cfg.Otel.Headers = envutil.String("OTEL_EXPORTER_OTLP_HEADERS", cfg.Otel.Headers)
	cfg.Otel.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Otel.Insecure)
	cfg.Otel.SampleRatio = envutil.Float("OTEL_SAMPLER_RATIO", cfg.Otel.SampleRatio)
	cfg.Otel.Stdout = envutil.Bool("OTEL_STDOUT", cfg.Otel.Stdout)
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []error
	switch db.DriverName(c.DB.Driver) {
	case db.DriverPostgres:
		if c.DB.DSN == "" && c.DB.Host == "" {
			errs = append(errs, errors.New("db: postgres needs a dsn or a host"))
		}
	case db.DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("db: unknown driver %q (want postgres or sqlite)", c.DB.Driver))
	}
	if c.DB.MaxOpenConns < 0 || c.DB.MaxIdleConns < 0 {
		errs = append(errs, errors.New("db: connection pool sizes must not be negative"))
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		errs = append(errs, errors.New("http: addr is required"))
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("http: shutdown_timeout must be positive"))
	}
	for _, o := range c.HTTP.CORSAllowOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			errs = append(errs, fmt.Errorf("http: cors origin %q must start with http:// or https://", o))
		}
	}
	if c.Otel.SampleRatio < 0 || c.Otel.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("otel: sample_ratio %v must be within [0, 1]", c.Otel.SampleRatio))
	}
	return errors.Join(errs...)
}

func (c Config) StoreConfig() db.Config {
	return db.Config{
		Driver:          db.DriverName(c.DB.Driver),
		DSN:             c.DB.DSN,
		Host:            c.DB.Host,
		Port:            c.DB.Port,
		User:            c.DB.User,
		Password:        c.DB.Password,
		Name:            c.DB.Name,
		SSLMode:         c.DB.SSLMode,
		SQLitePath:      c.DB.SQLitePath,
		SlowThreshold:   c.DB.SlowQuery,
		MaxOpenConns:    c.DB.MaxOpenConns,
		MaxIdleConns:    c.DB.MaxIdleConns,
		ConnMaxLifetime: c.DB.ConnMaxLifetime,
	}
}

func (c Config) TracingConfig() observability.OtelConfig {
	return observability.OtelConfig{
		Enabled:     c.Otel.Enabled,
		ServiceName: c.Otel.ServiceName,
		Environment: c.Env,
		Version:     c.Otel.Version,
		Endpoint:    c.Otel.Endpoint,
		Headers:     observability.ParseHeaders(c.Otel.Headers),
		Insecure:    c.Otel.Insecure,
		SampleRatio: c.Otel.SampleRatio,
		Stdout:      c.Otel.Stdout,
	}
}
