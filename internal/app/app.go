package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/mpac-commercial/course-design-assessment/internal/data/db"
	"github.com/mpac-commercial/course-design-assessment/internal/http"
	"github.com/mpac-commercial/course-design-assessment/internal/observability"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Server   *http.Server
	Cfg      Config
	Metrics  *observability.Metrics
	Repos    Repos
	Services Services

	otelShutdown func(context.Context) error
}

// New loads the config and wires the whole process.
func New(ctx context.Context) (*App, error) {
	cfg, err := LoadConfig("")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	a, err := NewWithConfig(ctx, cfg, log)
	if err != nil {
		log.Sync()
		return nil, err
	}
	return a, nil
}

func NewWithConfig(ctx context.Context, cfg Config, log *logger.Logger) (*App, error) {
	if strings.EqualFold(cfg.LogMode, "production") || strings.EqualFold(cfg.LogMode, "prod") {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := observability.Init(log, cfg.Metrics.Enabled)
	otelShutdown := observability.InitOTel(ctx, log, cfg.TracingConfig())

	theDB, err := db.Open(cfg.StoreConfig(), log)
	if err != nil {
		_ = otelShutdown(ctx)
		return nil, fmt.Errorf("init db: %w", err)
	}
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrateAll(theDB); err != nil {
			_ = db.Close(theDB)
			_ = otelShutdown(ctx)
			return nil, fmt.Errorf("db automigrate: %w", err)
		}
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, metrics, reposet)
	handlerset := wireHandlers(log, theDB, serviceset)
	router := wireRouter(log, cfg, metrics, handlerset)

	return &App{
		Log:          log,
		DB:           theDB,
		Router:       router,
		Server:       http.NewServer(cfg.HTTP.Addr, router),
		Cfg:          cfg,
		Metrics:      metrics,
		Repos:        reposet,
		Services:     serviceset,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down within
// the configured timeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Server.Addr())
		return a.Server.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})
	if a.Metrics != nil {
		g.Go(func() error {
			return a.Metrics.RunDBCollector(gctx, a.Log, a.DB, a.Cfg.Metrics.DBStatsInterval)
		})
	}
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.DB != nil {
		if err := db.Close(a.DB); err != nil && a.Log != nil {
			a.Log.Warn("db close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
