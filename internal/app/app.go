package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/aedb-backend/internal/data/db"
	"github.com/yungbote/aedb-backend/internal/data/db/migrations"
	apphttp "github.com/yungbote/aedb-backend/internal/http"
	"github.com/yungbote/aedb-backend/internal/observability"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
	"github.com/yungbote/aedb-backend/internal/platform/objstore"
)

const (
	ServiceName = "aedb-backend"

	dbStatsInterval = 15 * time.Second
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Settings
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics
	Server   *apphttp.Server

	dbService     *db.Service
	shutdownTrace func(context.Context) error
}

// New connects the database and wires every layer. No listener is opened.
func New(ctx context.Context, cfg Settings, log *logger.Logger) (*App, error) {
	return newApp(ctx, cfg, log, nil)
}

func newApp(ctx context.Context, cfg Settings, log *logger.Logger, bucket objstore.BucketService) (*App, error) {
	if log == nil {
		return nil, errors.New("app: logger is required")
	}

	shutdownTrace := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.OTelEnabled,
		ServiceName: ServiceName,
		Environment: cfg.LogMode,
		Endpoint:    cfg.OTelEndpoint,
		Headers:     observability.ParseHeaders(cfg.OTelHeaders),
		Insecure:    cfg.OTelInsecure,
		SampleRatio: cfg.OTelSampleRate,
	})

	log.Info("Connecting database...")
	dbService, err := db.NewService(log, db.Options{DSN: cfg.DSN})
	if err != nil {
		_ = shutdownTrace(ctx)
		return nil, fmt.Errorf("init database: %w", err)
	}
	theDB := dbService.DB()
	sqlDB, err := theDB.DB()
	if err != nil {
		_ = dbService.Close()
		_ = shutdownTrace(ctx)
		return nil, fmt.Errorf("database handle: %w", err)
	}

	checkSchema(ctx, theDB, log)

	reposet := wireRepos(theDB, log)
	serviceset, err := wireServices(theDB, log, cfg, reposet, bucket)
	if err != nil {
		_ = dbService.Close()
		_ = shutdownTrace(ctx)
		return nil, err
	}
	handlerset, err := wireHandlers(log, sqlDB, serviceset)
	if err != nil {
		_ = dbService.Close()
		_ = shutdownTrace(ctx)
		return nil, err
	}
	middleware := wireMiddleware(log, serviceset)
	metrics := observability.Init(log, cfg.MetricsEnabled)
	server := apphttp.NewServer(wireRouterConfig(log, cfg, metrics, handlerset, middleware), cfg.Addr())

	return &App{
		Log:           log,
		DB:            theDB,
		Cfg:           cfg,
		Repos:         reposet,
		Services:      serviceset,
		Metrics:       metrics,
		Server:        server,
		dbService:     dbService,
		shutdownTrace: shutdownTrace,
	}, nil
}

// checkSchema warns when the database is not at the newest revision. The
// server never migrates on its own.
func checkSchema(ctx context.Context, gdb *gorm.DB, log *logger.Logger) {
	runner, err := migrations.NewRunner(gdb, log, migrations.All())
	if err != nil {
		log.Warn("Revision history is invalid", "error", err)
		return
	}
	current, err := runner.Current(ctx)
	if err != nil {
		log.Warn("Could not read schema revision", "error", err)
		return
	}
	heads := runner.Heads()
	if current != heads[0] {
		log.Warn("Database schema is not at head, run `migrate upgrade`",
			"current", current, "head", strings.Join(heads, ","))
	}
}

// Run serves HTTP until ctx is cancelled or the server fails.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Server.Run(gctx)
	})
	if a.Metrics != nil {
		g.Go(func() error {
			a.Metrics.CollectDB(gctx, a.Log, a.DB, dbStatsInterval)
			return nil
		})
	}
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.shutdownTrace != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.shutdownTrace(ctx); err != nil {
			a.Log.Warn("Trace shutdown failed", "error", err)
		}
		cancel()
	}
	if a.dbService != nil {
		if err := a.dbService.Close(); err != nil {
			a.Log.Warn("Database close failed", "error", err)
		}
	}
	a.Log.Sync()
}
